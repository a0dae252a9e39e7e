package compressor

import (
	"bytes"
	"hash/crc32"
	"io"
	"testing"

	"github.com/klauspost/compress/flate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filepress-io/filepress/internal/core/domain"
	"github.com/filepress-io/filepress/pkg/errors"
)

func TestDeflateStream(t *testing.T) {
	t.Parallel()

	content := bytes.Repeat([]byte("streaming deflate across several buffer refills "), 100)
	c := newTestCompressor(t, &Options{BufferSize: 256})

	var out bytes.Buffer
	crc, err := c.deflateStream(bytes.NewReader(content), &out, int64(len(content)), domain.DefaultLevel)
	require.NoError(t, err)
	assert.Equal(t, crc32.ChecksumIEEE(content), crc)

	r := flate.NewReader(bytes.NewReader(out.Bytes()))
	decoded, err := io.ReadAll(r)
	require.NoError(t, err)
	require.NoError(t, r.Close())
	assert.Equal(t, content, decoded)
}

func TestDeflateStreamEmptyInput(t *testing.T) {
	t.Parallel()

	c := newTestCompressor(t, nil)

	var out bytes.Buffer
	crc, err := c.deflateStream(bytes.NewReader(nil), &out, 0, domain.DefaultLevel)
	require.NoError(t, err)
	assert.Equal(t, crc32.ChecksumIEEE(nil), crc)

	// Even empty input produces a terminating DEFLATE block.
	require.NotZero(t, out.Len())
	r := flate.NewReader(bytes.NewReader(out.Bytes()))
	decoded, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Empty(t, decoded)
}

func TestDeflateStreamStoreLevel(t *testing.T) {
	t.Parallel()

	content := []byte("stored, not squeezed")
	c := newTestCompressor(t, nil)

	var out bytes.Buffer
	_, err := c.deflateStream(bytes.NewReader(content), &out, int64(len(content)), domain.MinLevel)
	require.NoError(t, err)

	r := flate.NewReader(bytes.NewReader(out.Bytes()))
	decoded, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, content, decoded)
}

func TestDeflateStreamShortRead(t *testing.T) {
	t.Parallel()

	c := newTestCompressor(t, nil)

	// The source claims 100 bytes but only delivers 10.
	var out bytes.Buffer
	_, err := c.deflateStream(bytes.NewReader(make([]byte, 10)), &out, 100, domain.DefaultLevel)
	require.Error(t, err)
	assert.Equal(t, errors.CodeCodec, errors.Code(err))
}

func TestDeflateStreamInvalidLevel(t *testing.T) {
	t.Parallel()

	c := newTestCompressor(t, nil)

	var out bytes.Buffer
	_, err := c.deflateStream(bytes.NewReader([]byte("x")), &out, 1, 42)
	require.Error(t, err)
	assert.Equal(t, errors.CodeCodec, errors.Code(err))
}

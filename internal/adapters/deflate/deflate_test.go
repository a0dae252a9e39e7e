package deflate

import (
	"bytes"
	"io"
	"testing"

	"github.com/klauspost/compress/flate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRoundTrip(t *testing.T) {
	t.Parallel()

	content := bytes.Repeat([]byte("raw deflate payload "), 64)

	var out bytes.Buffer
	session, err := NewCodec().NewSession(&out, DefaultLevel)
	require.NoError(t, err)

	_, err = session.Write(content)
	require.NoError(t, err)
	require.NoError(t, session.Close())

	// The output must be a bare stream: flate decodes it directly,
	// without any container framing to skip.
	r := flate.NewReader(bytes.NewReader(out.Bytes()))
	decoded, err := io.ReadAll(r)
	require.NoError(t, err)
	require.NoError(t, r.Close())
	assert.Equal(t, content, decoded)
}

func TestNewSessionRejectsInvalidLevel(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	_, err := NewCodec().NewSession(&out, -1)
	assert.Error(t, err)

	_, err = NewCodec().NewSession(&out, BestLevel+1)
	assert.Error(t, err)
}

func TestValidateLevel(t *testing.T) {
	t.Parallel()

	for level := StoreLevel; level <= BestLevel; level++ {
		assert.NoError(t, ValidateLevel(level))
	}
	assert.Error(t, ValidateLevel(StoreLevel-1))
	assert.Error(t, ValidateLevel(BestLevel+1))
}

package compressor

import (
	"bufio"
	"fmt"
	"io"

	"github.com/filepress-io/filepress/internal/core/ports"
	"github.com/filepress-io/filepress/pkg/errors"
)

// streamState owns the per-call resources of one streaming compression:
// the two fixed-size buffers, the codec session and the running checksum.
// The buffers live on the heap and are scoped to a single deflateStream
// call; nothing here is shared across invocations.
type streamState struct {
	in        []byte
	out       *bufio.Writer
	session   ports.DeflateSession
	crc       uint32
	remaining int64
}

// deflateStream pushes size bytes from src through a raw DEFLATE session
// into dest, in bounded memory regardless of file size, and returns the
// CRC32 of the uncompressed bytes.
//
// Each iteration refills the input buffer with min(bufferSize, remaining)
// bytes, folds exactly those bytes into the running checksum, and feeds
// them to the codec; compressed output accumulates in the output buffer
// and reaches dest whenever the buffer fills, plus once more after the
// codec finishes the stream. A short read, a failed write, or any codec
// error aborts the whole compression; there are no retries.
func (c *Compressor) deflateStream(src io.Reader, dest io.Writer, size int64, level int) (uint32, error) {
	const op = "deflate stream"

	state := &streamState{
		in:        make([]byte, c.options.BufferSize),
		out:       bufio.NewWriterSize(dest, c.options.BufferSize),
		crc:       c.checksum.Initial(),
		remaining: size,
	}

	session, err := c.codec.NewSession(state.out, level)
	if err != nil {
		return 0, errors.NewCodecInitError(op, err)
	}
	state.session = session

	for state.remaining > 0 {
		n := len(state.in)
		if state.remaining < int64(n) {
			n = int(state.remaining)
		}

		if _, err := io.ReadFull(src, state.in[:n]); err != nil {
			state.session.Close()
			return 0, errors.NewIOError(op, fmt.Errorf("failed reading from input file: %w", err))
		}

		state.crc = c.checksum.Update(state.crc, state.in[:n])
		state.remaining -= int64(n)
		c.log.Debugw("input bytes remaining", "bytes", state.remaining)

		if _, err := state.session.Write(state.in[:n]); err != nil {
			state.session.Close()
			return 0, errors.NewCodecStepError(op, err)
		}
	}

	// Finish the stream; the final block only reaches the output buffer
	// on Close, even for empty input.
	if err := state.session.Close(); err != nil {
		return 0, errors.NewCodecStepError(op, err)
	}

	if err := state.out.Flush(); err != nil {
		return 0, errors.NewIOError(op, fmt.Errorf("failed writing to output file: %w", err))
	}

	return state.crc, nil
}

// Package deflate provides raw DEFLATE compression sessions backed by
// github.com/klauspost/compress/flate. A flate stream carries no zlib or
// gzip framing, which is exactly what the GZIP container needs between
// its header and trailer.
package deflate

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/flate"

	"github.com/filepress-io/filepress/internal/core/ports"
)

// Codec implements ports.DeflateCodec on klauspost's flate encoder.
type Codec struct{}

var _ ports.DeflateCodec = (*Codec)(nil)

// NewCodec creates a raw-DEFLATE codec.
func NewCodec() *Codec {
	return &Codec{}
}

// NewSession starts an incremental compression session writing to w.
//
// Returns an error if:
// - The compression level is outside 0-9
// - The underlying encoder cannot be created
func (c *Codec) NewSession(w io.Writer, level int) (ports.DeflateSession, error) {
	if err := ValidateLevel(level); err != nil {
		return nil, err
	}

	fw, err := flate.NewWriter(w, level)
	if err != nil {
		return nil, fmt.Errorf("failed to create deflate encoder: %w", err)
	}

	return &session{w: fw}, nil
}

// session wraps one flate stream. Not safe for concurrent use; it lives
// for the duration of a single compression call.
type session struct {
	w *flate.Writer
}

// Write feeds uncompressed bytes into the stream.
func (s *session) Write(p []byte) (int, error) {
	return s.w.Write(p)
}

// Close emits the final DEFLATE block and tears the session down.
func (s *session) Close() error {
	if err := s.w.Close(); err != nil {
		return fmt.Errorf("failed to finish deflate stream: %w", err)
	}
	return nil
}

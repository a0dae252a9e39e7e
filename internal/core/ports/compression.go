package ports

import "io"

// DeflateCodec creates incremental raw-DEFLATE compression sessions.
// This allows us to swap the compression backend without changing the
// streaming driver. Implementations must emit a bare DEFLATE stream with
// no zlib or gzip framing, since the GZIP container supplies its own
// header and trailer around the body.
type DeflateCodec interface {
	// NewSession starts a compression session that writes compressed
	// bytes to w. level ranges from 0 (store) to 9 (best compression).
	// Returns an error if the level is invalid or the encoder cannot
	// be created.
	NewSession(w io.Writer, level int) (DeflateSession, error)
}

// DeflateSession is one incremental compression stream. It is not safe
// for concurrent use and is owned by a single compression call.
type DeflateSession interface {
	// Write feeds uncompressed bytes into the session. Compressed
	// output is produced as internal blocks fill.
	io.Writer

	// Close finishes the stream, emitting the final block, and releases
	// session resources. The session is unusable afterwards.
	Close() error
}

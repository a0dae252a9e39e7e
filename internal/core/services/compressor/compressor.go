// Package compressor implements single-file compression into GZIP
// streams or ZIP archives, and flat extraction of ZIP archives. The
// GZIP container (fixed header, raw DEFLATE body, trailer) is assembled
// here around a bounded-memory streaming driver; ZIP encoding is
// delegated to the archive codec.
package compressor

import (
	"go.uber.org/zap"

	"github.com/filepress-io/filepress/internal/core/domain"
	"github.com/filepress-io/filepress/internal/core/ports"
)

// Compressor orchestrates compression and extraction. All operations are
// synchronous and blocking; every call owns its file handles, buffers and
// codec sessions exclusively and releases them before returning. Callers
// are responsible for serializing operations against the same path.
type Compressor struct {
	options *Options

	// Collaborators for file access, raw deflate, checksumming and ZIP
	// central-directory encoding.
	fs       ports.FileSystem
	codec    ports.DeflateCodec
	checksum ports.Checksum
	archive  ports.ArchiveCodec

	log *zap.SugaredLogger
}

// New creates a Compressor with the provided options. Nil options or
// zero-valued fields fall back to the local filesystem, the flate codec,
// CRC32-IEEE checksums and the ZIP archive codec.
func New(opts *Options) (*Compressor, error) {
	opts = prepareDefaults(opts)
	if err := Validate(opts); err != nil {
		return nil, err
	}

	return &Compressor{
		options:  opts,
		fs:       opts.FileSystem,
		codec:    opts.Codec,
		checksum: opts.Checksum,
		archive:  opts.Archive,
		log:      opts.Logger,
	}, nil
}

// Compress compresses req.FileName from req.SourceDir into req.DestDir
// under the name CompressedFilename derives for the request's format.
// The format set is closed, so dispatch happens exactly once, into two
// independent code paths.
//
// Returns a categorized error; errors.Code maps it to the result code
// reported to users.
func (c *Compressor) Compress(req domain.CompressionRequest) error {
	if err := validateRequest(&req); err != nil {
		return err
	}

	if req.DestDir == "" {
		req.DestDir = "."
	}

	switch req.Format {
	case domain.FormatGzip:
		return c.compressGzip(req)
	default:
		return c.compressZip(req)
	}
}

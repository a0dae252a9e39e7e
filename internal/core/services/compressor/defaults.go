package compressor

import (
	"go.uber.org/zap"

	"github.com/filepress-io/filepress/internal/adapters/archive"
	"github.com/filepress-io/filepress/internal/adapters/checksum"
	"github.com/filepress-io/filepress/internal/adapters/deflate"
	"github.com/filepress-io/filepress/internal/core/ports"
	"github.com/filepress-io/filepress/pkg/fs"
)

const (
	// DefaultBufferSize sizes the streaming input and output buffers.
	// Large enough to keep syscall counts low on big files, small enough
	// to keep one compression call bounded at a couple of megabytes.
	DefaultBufferSize = 1024 * 1024 // 1MB

	// defaultEntryComment is stored on every archive entry the ZIP
	// writer produces.
	defaultEntryComment = "Zipped with filepress! Invalid chars replaced with _"
)

// Options configures a Compressor. Zero values select the defaults.
type Options struct {
	// BufferSize is the size in bytes of each of the two streaming
	// buffers. Defaults to DefaultBufferSize.
	BufferSize int

	// EntryComment is the per-entry comment the ZIP writer stores.
	EntryComment string

	// Collaborator overrides, mainly for tests.
	FileSystem ports.FileSystem
	Codec      ports.DeflateCodec
	Checksum   ports.Checksum
	Archive    ports.ArchiveCodec

	// Logger receives progress and diagnostic output. Defaults to a
	// no-op logger.
	Logger *zap.SugaredLogger
}

func prepareDefaults(opts *Options) *Options {
	if opts == nil {
		opts = &Options{}
	}

	if opts.BufferSize == 0 {
		opts.BufferSize = DefaultBufferSize
	}

	if opts.EntryComment == "" {
		opts.EntryComment = defaultEntryComment
	}

	if opts.FileSystem == nil {
		opts.FileSystem = fs.NewLocalFileSystem()
	}

	if opts.Codec == nil {
		opts.Codec = deflate.NewCodec()
	}

	if opts.Checksum == nil {
		opts.Checksum = checksum.NewCRC32IEEE()
	}

	if opts.Archive == nil {
		opts.Archive = archive.NewCodec()
	}

	if opts.Logger == nil {
		opts.Logger = zap.NewNop().Sugar()
	}

	return opts
}

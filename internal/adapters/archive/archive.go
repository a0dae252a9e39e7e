// Package archive adapts github.com/klauspost/compress/zip to the archive
// ports used by the compressor service: a writer that builds an archive
// entry by entry and finalizes the central directory, and a reader that
// enumerates and extracts entries by index.
package archive

import (
	"github.com/filepress-io/filepress/internal/core/ports"
)

// Codec implements ports.ArchiveCodec for ZIP archives on the local
// filesystem.
type Codec struct{}

var _ ports.ArchiveCodec = (*Codec)(nil)

// NewCodec creates a ZIP archive codec.
func NewCodec() *Codec {
	return &Codec{}
}

// NewWriter creates a new archive file at path; entries added later are
// deflated at the given level.
func (c *Codec) NewWriter(path string, level int) (ports.ArchiveWriter, error) {
	return NewWriter(path, level)
}

// NewReader opens the archive at path for extraction.
func (c *Codec) NewReader(path string) (ports.ArchiveReader, error) {
	return NewReader(path)
}

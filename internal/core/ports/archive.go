package ports

import "github.com/filepress-io/filepress/internal/core/domain"

// ArchiveCodec opens ZIP archives for writing or reading. It is the seam
// between the compressor service and the low-level central-directory
// encoding.
type ArchiveCodec interface {
	// NewWriter creates a new archive file at path. Entries added later
	// are compressed at the given level.
	NewWriter(path string, level int) (ArchiveWriter, error)

	// NewReader opens an existing archive for extraction.
	NewReader(path string) (ArchiveReader, error)
}

// ArchiveWriter adds entries to a ZIP archive. Finalize and Close are
// distinct, separately-fallible steps: Finalize encodes the central
// directory, Close releases the underlying archive file.
type ArchiveWriter interface {
	// AddFileEntry stores the on-disk content of sourcePath under
	// entryName, with the given per-entry comment.
	AddFileEntry(entryName, sourcePath, comment string) error

	// Finalize writes the central directory.
	Finalize() error

	// Close releases the archive file.
	Close() error
}

// ArchiveReader enumerates and extracts ZIP entries by index.
type ArchiveReader interface {
	// Len reports the number of entries in the archive.
	Len() int

	// Stat returns the metadata of the entry at index.
	Stat(index int) (*domain.ArchiveEntry, error)

	// Extract decompresses the entry at index to destPath, overwriting
	// any existing file at that path.
	Extract(index int, destPath string) error

	// Close releases the archive.
	Close() error
}

package domain

import "time"

// ArchiveEntry is the metadata of one entry inside a ZIP archive, as
// reported by the archive codec. The writer produces exactly one entry
// per archive; the reader enumerates an arbitrary count.
type ArchiveEntry struct {
	// Name is the path stored in the archive. It may contain directory
	// components; extraction only ever uses the base name.
	Name string

	// IsDir marks directory entries, which extraction skips.
	IsDir bool

	// UncompressedSize is the entry's original byte count.
	UncompressedSize uint64

	// CompressedSize is the entry's stored byte count.
	CompressedSize uint64

	// Modified is the entry's recorded modification time.
	Modified time.Time

	// Comment is the per-entry comment stored by the writer.
	Comment string
}

package ports

import "os"

// FileSystem is the filesystem collaborator of the compressor. Each
// compression call owns the handles it opens through this interface and
// closes them before returning.
type FileSystem interface {
	// Exists reports whether path names an existing file.
	Exists(path string) (bool, error)

	// Open opens path for reading.
	Open(path string) (*os.File, error)

	// Create creates or truncates path for writing.
	Create(path string) (*os.File, error)

	// Stat returns file metadata: size and modification time.
	Stat(path string) (os.FileInfo, error)
}

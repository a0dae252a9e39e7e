// Package fs provides the local filesystem adapter the compressor works
// against.
package fs

import (
	"errors"
	"os"

	"github.com/filepress-io/filepress/internal/core/ports"
)

// LocalFileSystem implements ports.FileSystem on the host filesystem.
type LocalFileSystem struct{}

var _ ports.FileSystem = (*LocalFileSystem)(nil)

func NewLocalFileSystem() *LocalFileSystem {
	return &LocalFileSystem{}
}

// Checks if a file exists or not.
func (lfs *LocalFileSystem) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// Opens a file for reading.
func (lfs *LocalFileSystem) Open(path string) (*os.File, error) {
	return os.Open(path)
}

// Creates or truncates a file for writing.
func (lfs *LocalFileSystem) Create(path string) (*os.File, error) {
	return os.Create(path)
}

// Retrieves file metadata.
func (lfs *LocalFileSystem) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

package archive

import (
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zip"

	"github.com/filepress-io/filepress/internal/core/domain"
	"github.com/filepress-io/filepress/internal/core/ports"
)

// Reader opens a ZIP archive and extracts entries by index. Entry payload
// CRCs are verified by the underlying reader during extraction.
type Reader struct {
	rc *zip.ReadCloser
}

var _ ports.ArchiveReader = (*Reader)(nil)

// NewReader opens the archive at path.
func NewReader(path string) (*Reader, error) {
	rc, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive %s: %w", path, err)
	}
	return &Reader{rc: rc}, nil
}

// Len reports the number of entries in the archive.
func (r *Reader) Len() int {
	return len(r.rc.File)
}

// Stat returns the metadata of the entry at index.
func (r *Reader) Stat(index int) (*domain.ArchiveEntry, error) {
	if index < 0 || index >= len(r.rc.File) {
		return nil, fmt.Errorf("entry index %d out of range [0,%d)", index, len(r.rc.File))
	}

	f := r.rc.File[index]
	return &domain.ArchiveEntry{
		Name:             f.Name,
		IsDir:            f.FileInfo().IsDir(),
		UncompressedSize: f.UncompressedSize64,
		CompressedSize:   f.CompressedSize64,
		Modified:         f.Modified,
		Comment:          f.Comment,
	}, nil
}

// Extract decompresses the entry at index to destPath, overwriting any
// existing file at that path.
func (r *Reader) Extract(index int, destPath string) error {
	if index < 0 || index >= len(r.rc.File) {
		return fmt.Errorf("entry index %d out of range [0,%d)", index, len(r.rc.File))
	}

	src, err := r.rc.File[index].Open()
	if err != nil {
		return fmt.Errorf("failed to open entry %d: %w", index, err)
	}
	defer src.Close()

	dest, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", destPath, err)
	}

	if _, err := io.Copy(dest, src); err != nil {
		dest.Close()
		return fmt.Errorf("failed to extract entry %d to %s: %w", index, destPath, err)
	}

	if err := dest.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", destPath, err)
	}

	return nil
}

// Close releases the archive.
func (r *Reader) Close() error {
	if err := r.rc.Close(); err != nil {
		return fmt.Errorf("failed to close archive: %w", err)
	}
	return nil
}

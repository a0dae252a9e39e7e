package archive

import (
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zip"

	"github.com/filepress-io/filepress/internal/core/ports"
)

// Writer creates a ZIP archive on disk and adds file entries to it.
// Finalizing the central directory and closing the archive file are two
// separate steps; both must succeed for the archive to be usable.
type Writer struct {
	file *os.File
	zw   *zip.Writer
}

var _ ports.ArchiveWriter = (*Writer)(nil)

// NewWriter creates the archive file at path. Entries added later are
// deflated at the given level.
func NewWriter(path string, level int) (*Writer, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create archive %s: %w", path, err)
	}

	zw := zip.NewWriter(file)
	zw.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, level)
	})

	return &Writer{file: file, zw: zw}, nil
}

// AddFileEntry stores the on-disk content of sourcePath under entryName,
// carrying the source file's modification time and the given comment.
func (w *Writer) AddFileEntry(entryName, sourcePath, comment string) error {
	src, err := os.Open(sourcePath)
	if err != nil {
		return fmt.Errorf("failed to open entry source %s: %w", sourcePath, err)
	}
	defer src.Close()

	info, err := src.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat entry source %s: %w", sourcePath, err)
	}

	entry, err := w.zw.CreateHeader(&zip.FileHeader{
		Name:     entryName,
		Method:   zip.Deflate,
		Modified: info.ModTime(),
		Comment:  comment,
	})
	if err != nil {
		return fmt.Errorf("failed to add entry %s: %w", entryName, err)
	}

	if _, err := io.Copy(entry, src); err != nil {
		return fmt.Errorf("failed to write entry %s: %w", entryName, err)
	}

	return nil
}

// Finalize writes the central directory.
func (w *Writer) Finalize() error {
	if err := w.zw.Close(); err != nil {
		return fmt.Errorf("failed to finalize central directory: %w", err)
	}
	return nil
}

// Close releases the archive file.
func (w *Writer) Close() error {
	if err := w.file.Close(); err != nil {
		return fmt.Errorf("failed to close archive file: %w", err)
	}
	return nil
}

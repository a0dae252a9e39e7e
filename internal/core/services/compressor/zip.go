package compressor

import (
	"fmt"
	"path"
	"path/filepath"

	"go.uber.org/multierr"

	"github.com/filepress-io/filepress/internal/core/domain"
	"github.com/filepress-io/filepress/pkg/errors"
)

// compressZip writes the source file as the single entry of a new ZIP
// archive. The entry is stored under the sanitized file name; the
// archive file itself additionally carries the ".zip" suffix. A failure
// at any step aborts the operation and leaves any partially-written
// archive on disk.
func (c *Compressor) compressZip(req domain.CompressionRequest) error {
	const op = "compress zip"

	entryName := SanitizeEntryName(req.FileName)
	srcPath := ResolvePath(req.SourceDir, req.FileName)
	destPath := ResolvePath(req.DestDir, CompressedFilename(req.FileName, domain.FormatZip))

	c.log.Infow("compressing file", "format", "zip", "file", req.FileName, "dest", destPath)

	ok, err := c.fs.Exists(srcPath)
	if err != nil || !ok {
		return errors.NewSourceNotFound(op, fmt.Errorf("cannot find file to compress: %s", srcPath))
	}

	writer, err := c.archive.NewWriter(destPath, req.Level)
	if err != nil {
		return errors.NewArchiveError(op, err)
	}

	if err := writer.AddFileEntry(entryName, srcPath, c.options.EntryComment); err != nil {
		return errors.NewArchiveError(op, multierr.Append(err, writer.Close()))
	}

	// Central directory and file close are distinct steps; both must
	// succeed.
	if err := writer.Finalize(); err != nil {
		return errors.NewArchiveError(op, multierr.Append(err, writer.Close()))
	}

	if err := writer.Close(); err != nil {
		return errors.NewArchiveError(op, err)
	}
	return nil
}

// ExtractZip extracts every file entry of the archive flat into destDir,
// which defaults to the current working directory when empty. Stored
// directory components are discarded, directory entries are skipped, and
// existing files at the destination are overwritten without warning.
// Any metadata or extraction failure aborts the whole operation; files
// extracted before the failure remain on disk.
func (c *Compressor) ExtractZip(archivePath, destDir string) error {
	const op = "extract zip"

	c.log.Infow("uncompressing file", "format", "zip", "archive", archivePath)

	reader, err := c.archive.NewReader(archivePath)
	if err != nil {
		return errors.NewArchiveError(op, err)
	}

	// An archive with zero entries is valid.
	if reader.Len() == 0 {
		if err := reader.Close(); err != nil {
			return errors.NewArchiveError(op, err)
		}
		return nil
	}

	if destDir == "" {
		destDir = "."
	}

	for i := 0; i < reader.Len(); i++ {
		entry, err := reader.Stat(i)
		if err != nil {
			return errors.NewArchiveError(op, multierr.Append(err, reader.Close()))
		}

		if entry.IsDir {
			continue
		}

		destPath := ResolvePath(destDir, path.Base(filepath.ToSlash(entry.Name)))
		if err := reader.Extract(i, destPath); err != nil {
			return errors.NewArchiveError(op, multierr.Append(err, reader.Close()))
		}
	}

	if err := reader.Close(); err != nil {
		return errors.NewArchiveError(op, err)
	}
	return nil
}

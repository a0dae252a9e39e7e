package compressor

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/filepress-io/filepress/internal/core/domain"
	"github.com/filepress-io/filepress/pkg/errors"
)

// GZIP member layout (RFC 1952):
//
//	+---+---+---+---+---+---+---+---+---+---+=====================+---+---+---+---+---+---+---+---+
//	|ID1|ID2|CM |FLG|     MTIME     |XFL|OS | ...DEFLATE data...  |     CRC32     |     ISIZE     |
//	+---+---+---+---+---+---+---+---+---+---+=====================+---+---+---+---+---+---+---+---+
//
// The 10-byte header is fixed, CRC32 covers the uncompressed bytes and
// ISIZE is the uncompressed size truncated to 32 bits. The format holds
// exactly one member, so one invocation compresses one file.
const (
	gzipID1           = 0x1F
	gzipID2           = 0x8B
	gzipDeflateMethod = 8 // CM: deflate is the only method the format defines

	gzipOSFat  = 0 // DOS/Windows
	gzipOSUnix = 3
)

// compressGzip is the GZIP orchestration: resolve names, open files,
// write the header with the source's modification time, stream the body
// through the deflate driver, then write the trailer from the driver's
// final CRC and the source size.
func (c *Compressor) compressGzip(req domain.CompressionRequest) error {
	const op = "compress gzip"

	srcPath := ResolvePath(req.SourceDir, req.FileName)
	destPath := ResolvePath(req.DestDir, CompressedFilename(req.FileName, domain.FormatGzip))

	c.log.Infow("compressing file", "format", "gzip", "file", req.FileName, "dest", destPath)

	ok, err := c.fs.Exists(srcPath)
	if err != nil || !ok {
		return errors.NewSourceNotFound(op, fmt.Errorf("cannot find file to compress: %s", srcPath))
	}

	src, err := c.fs.Open(srcPath)
	if err != nil {
		return errors.NewOpenError(op, false, err)
	}
	defer src.Close()

	info, err := src.Stat()
	if err != nil {
		return errors.NewOpenError(op, false, err)
	}

	dest, err := c.fs.Create(destPath)
	if err != nil {
		return errors.NewOpenError(op, true, err)
	}

	if err := c.writeGzipStream(src, dest, info, req.Level); err != nil {
		dest.Close()
		return err
	}

	if err := dest.Close(); err != nil {
		return errors.NewIOError(op, err)
	}
	return nil
}

// writeGzipStream assembles the container: header, deflated body, trailer.
func (c *Compressor) writeGzipStream(src io.Reader, dest io.Writer, info os.FileInfo, level int) error {
	const op = "write gzip stream"

	if err := writeGzipHeader(dest, uint32(info.ModTime().Unix())); err != nil {
		return errors.NewIOError(op, err)
	}

	crc, err := c.deflateStream(src, dest, info.Size(), level)
	if err != nil {
		return err
	}

	if err := writeGzipFooter(dest, crc, info.Size()); err != nil {
		return errors.NewIOError(op, err)
	}
	return nil
}

// writeGzipHeader writes the fixed 10-byte member header, field by field
// in wire order. MTIME is little-endian POSIX seconds; FLG and XFL stay
// zero because no optional fields are used.
func writeGzipHeader(w io.Writer, mtime uint32) error {
	fields := [][]byte{
		{gzipID1},
		{gzipID2},
		{gzipDeflateMethod},
		{0}, // FLG
		leUint32(mtime),
		{0}, // XFL
		{osByte()},
	}

	for _, field := range fields {
		if _, err := w.Write(field); err != nil {
			return fmt.Errorf("failed to write gzip header: %w", err)
		}
	}
	return nil
}

// writeGzipFooter writes CRC32 then ISIZE, 4 little-endian bytes each.
// ISIZE is the uncompressed size mod 2^32, the truncation the 4-byte
// field mandates.
func writeGzipFooter(w io.Writer, crc uint32, size int64) error {
	for _, field := range [][]byte{leUint32(crc), leUint32(uint32(size))} {
		if _, err := w.Write(field); err != nil {
			return fmt.Errorf("failed to write gzip footer: %w", err)
		}
	}
	return nil
}

// leUint32 splits v into its four little-endian bytes.
func leUint32(v uint32) []byte {
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, v)
	return buf
}

// osByte reports the header OS code for the running platform. Only the
// DOS/Windows and Unix codes are distinguished.
func osByte() byte {
	if runtime.GOOS == "windows" {
		return gzipOSFat
	}
	return gzipOSUnix
}

package compressor

import (
	"path/filepath"
	"strings"

	"github.com/filepress-io/filepress/internal/core/domain"
)

const (
	gzipExt = ".gz"
	zipExt  = ".zip"
)

// entryNameSanitizer replaces the characters the ZIP entry namespace
// cannot carry: '\', '/' and ':' all become '_'.
var entryNameSanitizer = strings.NewReplacer(`\`, "_", "/", "_", ":", "_")

// SanitizeEntryName returns name with every '\', '/' and ':' replaced by
// '_'. This is the name a file is stored under inside a ZIP archive.
// Pure function, no side effects.
func SanitizeEntryName(name string) string {
	return entryNameSanitizer.Replace(name)
}

// CompressedFilename returns the name the compressed artifact is written
// under. GZIP appends ".gz" to the name unmodified; ZIP sanitizes the
// name first and appends ".zip"; FormatNone returns the name unchanged.
func CompressedFilename(name string, format domain.Format) string {
	switch format {
	case domain.FormatGzip:
		return name + gzipExt
	case domain.FormatZip:
		return SanitizeEntryName(name) + zipExt
	default:
		return name
	}
}

// ResolvePath joins dir and name with exactly one forward slash between
// them, normalizing any native separators in dir.
func ResolvePath(dir, name string) string {
	dir = filepath.ToSlash(dir)
	if !strings.HasSuffix(dir, "/") {
		dir += "/"
	}
	return dir + name
}

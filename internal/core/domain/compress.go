package domain

// Format identifies the container format a file is compressed into.
// The set is closed: the dispatcher switches over it exactly once per
// request and there is no dynamic registration of new formats.
type Format uint8

const (
	// FormatNone stores the file without a compression container.
	// It only participates in filename resolution; the compression
	// entry point rejects it.
	FormatNone Format = iota

	// FormatGzip wraps the file in a single-member GZIP stream:
	// 10-byte header, raw DEFLATE body, 8-byte trailer.
	FormatGzip

	// FormatZip stores the file as the single entry of a ZIP archive.
	FormatZip
)

// Compression levels accepted by both formats. Level 0 stores the data
// without compression, 9 trades CPU for the smallest output.
const (
	MinLevel     = 0
	DefaultLevel = 6
	MaxLevel     = 9
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatNone:
		return "none"
	case FormatGzip:
		return "gzip"
	case FormatZip:
		return "zip"
	default:
		return "unknown"
	}
}

// IsValid checks if the format is a known valid format.
func (f Format) IsValid() bool {
	return f == FormatNone || f == FormatGzip || f == FormatZip
}

// ParseFormat maps a format name to its Format value.
// Returns FormatNone and false for unknown names.
func ParseFormat(name string) (Format, bool) {
	switch name {
	case "none":
		return FormatNone, true
	case "gzip":
		return FormatGzip, true
	case "zip":
		return FormatZip, true
	default:
		return FormatNone, false
	}
}

// CompressionRequest describes one compression invocation. It is built by
// the caller, consumed once, and never mutated by the compressor.
type CompressionRequest struct {
	// FileName is the name of the file to compress, without path
	// components. Separators are tolerated; the ZIP path replaces them
	// when deriving entry and archive names.
	FileName string

	// SourceDir is the directory holding FileName.
	SourceDir string

	// DestDir is the directory the compressed file is written into.
	// Empty means the current working directory.
	DestDir string

	// Format selects the container format. Must be FormatGzip or
	// FormatZip for compression.
	Format Format

	// Level is the compression level, MinLevel to MaxLevel.
	Level int
}

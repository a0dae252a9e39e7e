package compressor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/filepress-io/filepress/internal/core/domain"
)

func TestCompressedFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		file   string
		format domain.Format
		want   string
	}{
		{name: "gzip appends extension", file: "report.txt", format: domain.FormatGzip, want: "report.txt.gz"},
		{name: "gzip keeps separators", file: "a/b:c.txt", format: domain.FormatGzip, want: "a/b:c.txt.gz"},
		{name: "zip sanitizes then appends", file: "a/b:c.txt", format: domain.FormatZip, want: "a_b_c.txt.zip"},
		{name: "zip sanitizes backslash", file: `a\b.txt`, format: domain.FormatZip, want: "a_b.txt.zip"},
		{name: "zip plain name", file: "report.txt", format: domain.FormatZip, want: "report.txt.zip"},
		{name: "none unchanged", file: "a/b:c.txt", format: domain.FormatNone, want: "a/b:c.txt"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, CompressedFilename(tc.file, tc.format))
		})
	}
}

func TestSanitizeEntryName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a_b_c.txt", SanitizeEntryName("a/b:c.txt"))
	assert.Equal(t, "a_b_c", SanitizeEntryName(`a\b/c`))
	assert.Equal(t, "plain.txt", SanitizeEntryName("plain.txt"))
}

func TestResolvePath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/tmp/dst/a.txt", ResolvePath("/tmp/dst", "a.txt"))
	assert.Equal(t, "/tmp/dst/a.txt", ResolvePath("/tmp/dst/", "a.txt"))
	assert.Equal(t, "./a.txt", ResolvePath(".", "a.txt"))
}

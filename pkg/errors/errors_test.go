package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeMapping(t *testing.T) {
	t.Parallel()

	cause := fmt.Errorf("boom")

	assert.Equal(t, CodeOK, Code(nil))
	assert.Equal(t, CodeSourceNotOpen, Code(NewSourceNotFound("compress", cause)))
	assert.Equal(t, CodeSourceNotOpen, Code(NewOpenError("compress", false, cause)))
	assert.Equal(t, CodeDestNotWritable, Code(NewOpenError("compress", true, cause)))
	assert.Equal(t, CodeCodec, Code(NewCodecInitError("compress", cause)))
	assert.Equal(t, CodeCodec, Code(NewCodecStepError("compress", cause)))
	assert.Equal(t, CodeCodec, Code(NewIOError("compress", cause)))
	assert.Equal(t, CodeArchive, Code(NewArchiveError("extract", cause)))

	// Uncategorized errors fall back to the generic fault code.
	assert.Equal(t, CodeArchive, Code(cause))
}

func TestCompressErrorWrapping(t *testing.T) {
	t.Parallel()

	cause := fmt.Errorf("disk on fire")
	err := NewIOError("write footer", cause)

	assert.True(t, stderrors.Is(err, cause))
	assert.Contains(t, err.Error(), "write footer")
	assert.Contains(t, err.Error(), "disk on fire")
	assert.Contains(t, err.Error(), ErrorIO.String())

	// Codes survive wrapping.
	wrapped := fmt.Errorf("outer: %w", err)
	assert.Equal(t, CodeCodec, Code(wrapped))
}

func TestCategoryString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "source-not-found", ErrorSourceNotFound.String())
	assert.Equal(t, "archive", ErrorArchive.String())
	assert.Equal(t, "unknown", ErrorCategory(99).String())
}

func TestValidationError(t *testing.T) {
	t.Parallel()

	ve := NewValidationError("level", 42, fmt.Errorf("out of range"))
	assert.True(t, IsValidationError(ve))
	assert.Equal(t, "out of range", ve.Error())

	assert.False(t, IsValidationError(fmt.Errorf("plain")))
	assert.Nil(t, AsValidationError(fmt.Errorf("plain")))
	assert.Equal(t, ve, AsValidationError(fmt.Errorf("wrap: %w", ve)))
}

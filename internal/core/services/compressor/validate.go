package compressor

import (
	"fmt"
	"strings"

	"github.com/filepress-io/filepress/internal/adapters/deflate"
	"github.com/filepress-io/filepress/internal/core/domain"
	"github.com/filepress-io/filepress/pkg/errors"
)

// Validate checks compressor options after defaults have been applied.
func Validate(opts *Options) error {
	if opts.BufferSize <= 0 {
		return errors.NewValidationError(
			"bufferSize", opts.BufferSize, fmt.Errorf("buffer size must be greater than 0, got %d", opts.BufferSize),
		)
	}
	return nil
}

func validateRequest(req *domain.CompressionRequest) error {
	if strings.TrimSpace(req.FileName) == "" {
		return errors.NewValidationError("fileName", req.FileName, fmt.Errorf("file name is required"))
	}

	if !req.Format.IsValid() || req.Format == domain.FormatNone {
		return errors.NewValidationError(
			"format", req.Format, fmt.Errorf("compression requires %q or %q, got %q", domain.FormatGzip, domain.FormatZip, req.Format),
		)
	}

	if err := deflate.ValidateLevel(req.Level); err != nil {
		return errors.NewValidationError("level", req.Level, err)
	}

	return nil
}

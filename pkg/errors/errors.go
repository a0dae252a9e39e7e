// Package errors defines the error taxonomy of the compressor. Every
// failure is detected at the point of occurrence and terminates the
// current operation; there is no local recovery and no retry. Callers get
// a categorized error that carries the failing operation, the underlying
// diagnostic, and the numeric result code surfaced to users.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCategory classifies the failures a compression or extraction call
// can hit.
type ErrorCategory int

const (
	// ErrorSourceNotFound indicates the file to compress does not exist.
	ErrorSourceNotFound ErrorCategory = iota + 1

	// ErrorOpen indicates the source or destination file could not be
	// opened.
	ErrorOpen

	// ErrorCodecInit indicates the compression codec session could not
	// be created.
	ErrorCodecInit

	// ErrorCodecStep indicates an incremental compress step failed
	// mid-stream.
	ErrorCodecStep

	// ErrorIO indicates a short read from the source or a failed write
	// to the destination while streaming.
	ErrorIO

	// ErrorArchive indicates an archive-codec call failed; the wrapped
	// error carries the collaborator's own diagnostic.
	ErrorArchive
)

// String returns the string representation of the error category.
func (c ErrorCategory) String() string {
	switch c {
	case ErrorSourceNotFound:
		return "source-not-found"
	case ErrorOpen:
		return "open"
	case ErrorCodecInit:
		return "codec-init"
	case ErrorCodecStep:
		return "codec-step"
	case ErrorIO:
		return "io"
	case ErrorArchive:
		return "archive"
	default:
		return "unknown"
	}
}

// Result codes reported to callers. Compression entry points resolve
// every error to one of these.
const (
	CodeOK              = 0  // success
	CodeSourceNotOpen   = -1 // source file missing or not openable
	CodeDestNotWritable = -2 // destination file not writable
	CodeCodec           = -3 // compression codec or streaming I/O failure
	CodeArchive         = 1  // archive writer/reader fault
)

// CompressError ties a failure to the operation that hit it.
type CompressError struct {
	Err       error
	Operation string
	Category  ErrorCategory
	code      int
}

func (e *CompressError) Error() string {
	return fmt.Sprintf("[%v] %s: %v", e.Category, e.Operation, e.Err)
}

func (e *CompressError) Unwrap() error {
	return e.Err
}

// Code returns the numeric result code for this error.
func (e *CompressError) Code() int {
	return e.code
}

// NewSourceNotFound reports a missing source file.
func NewSourceNotFound(op string, err error) *CompressError {
	return &CompressError{Err: err, Operation: op, Category: ErrorSourceNotFound, code: CodeSourceNotOpen}
}

// NewOpenError reports a file that could not be opened. dest selects the
// destination result code over the source one.
func NewOpenError(op string, dest bool, err error) *CompressError {
	code := CodeSourceNotOpen
	if dest {
		code = CodeDestNotWritable
	}
	return &CompressError{Err: err, Operation: op, Category: ErrorOpen, code: code}
}

// NewCodecInitError reports a failed codec session initialization.
func NewCodecInitError(op string, err error) *CompressError {
	return &CompressError{Err: err, Operation: op, Category: ErrorCodecInit, code: CodeCodec}
}

// NewCodecStepError reports a failed incremental compress step.
func NewCodecStepError(op string, err error) *CompressError {
	return &CompressError{Err: err, Operation: op, Category: ErrorCodecStep, code: CodeCodec}
}

// NewIOError reports a short read or failed write while streaming.
func NewIOError(op string, err error) *CompressError {
	return &CompressError{Err: err, Operation: op, Category: ErrorIO, code: CodeCodec}
}

// NewArchiveError reports a failed archive-codec call.
func NewArchiveError(op string, err error) *CompressError {
	return &CompressError{Err: err, Operation: op, Category: ErrorArchive, code: CodeArchive}
}

// Code extracts the result code from any error. nil maps to CodeOK and
// uncategorized errors to the generic archive fault code.
func Code(err error) int {
	if err == nil {
		return CodeOK
	}

	var ce *CompressError
	if errors.As(err, &ce) {
		return ce.Code()
	}

	return CodeArchive
}

package huffzip

import (
	"errors"
	"fmt"
)

// ErrCapacityExceeded is matched (via errors.Is) by the error Compress returns
// when the input has more than MaxDistinctSymbols distinct byte values.
var ErrCapacityExceeded = errors.New("too many distinct symbols")

// ErrFormat is matched (via errors.Is) by every error Decompress returns for a
// malformed, truncated, or self-inconsistent container.
var ErrFormat = errors.New("malformed container")

// CapacityExceededError reports an alphabet too large for the container's
// symbol table.
type CapacityExceededError struct {
	Distinct int
	Max      int
}

// Error fulfills the error interface.
func (err *CapacityExceededError) Error() string {
	return fmt.Sprintf("huffzip: %v: input has %d distinct symbols, max %d", ErrCapacityExceeded, err.Distinct, err.Max)
}

// Is returns true for ErrCapacityExceeded.
func (err *CapacityExceededError) Is(target error) bool {
	return target == ErrCapacityExceeded
}

// FormatError reports a container that cannot be decoded.
type FormatError struct {
	// Field names the part of the container that failed to validate.
	Field string

	// Msg describes the problem.
	Msg string

	// Err is the underlying cause, if any.
	Err error
}

// Error fulfills the error interface.
func (err *FormatError) Error() string {
	if err.Err != nil {
		return fmt.Sprintf("huffzip: %v: %s: %s: %v", ErrFormat, err.Field, err.Msg, err.Err)
	}
	return fmt.Sprintf("huffzip: %v: %s: %s", ErrFormat, err.Field, err.Msg)
}

// Is returns true for ErrFormat.
func (err *FormatError) Is(target error) bool {
	return target == ErrFormat
}

// Unwrap returns the underlying cause.
func (err *FormatError) Unwrap() error {
	return err.Err
}

func formatErrorf(field string, format string, args ...interface{}) error {
	return &FormatError{Field: field, Msg: fmt.Sprintf(format, args...)}
}

func wrapFormatError(field string, msg string, cause error) error {
	return &FormatError{Field: field, Msg: msg, Err: cause}
}

var (
	_ error = (*CapacityExceededError)(nil)
	_ error = (*FormatError)(nil)
)

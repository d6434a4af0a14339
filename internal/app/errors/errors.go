package errors

import (
	"fmt"
)

// Common error types
var (
	// Configuration errors
	ErrMissingAPIKey = New("API key is required")
	ErrInvalidConfig = New("invalid configuration")

	// Strategy errors
	ErrUnknownStrategy    = New("unknown strategy")
	ErrStrategySkipped    = New("strategy not available")
	ErrChainExhausted     = New("all strategies failed")
	ErrModelUnavailable   = New("local model unavailable")
	ErrEmptyTranscription = New("empty transcription")
	ErrEmptyCompletion    = New("empty completion")
	ErrPipelineFailed     = New("pipeline failed")

	// File errors
	ErrFileNotFound = New("file not found")
	ErrEmptyUpload  = New("uploaded file is empty")
	ErrFileTooLarge = New("uploaded file is too large")

	// Network errors
	ErrRequestFailed   = New("request failed")
	ErrResponseInvalid = New("invalid response")
)

// Error represents a standardized error
type Error struct {
	message string
	cause   error
}

// New creates a new error
func New(message string) *Error {
	return &Error{message: message}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		message: message,
		cause:   err,
	}
}

// Wrapf wraps an error with formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &Error{
		message: fmt.Sprintf(format, args...),
		cause:   err,
	}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.cause
}

// Is checks if the error matches target
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.message == t.message
}

package strategy

import (
	"errors"
	"fmt"
)

// Error codes shared by strategy implementations
const (
	CodeAuth        = "AUTH_ERROR"
	CodeRateLimit   = "RATE_LIMIT"
	CodeBadRequest  = "BAD_REQUEST"
	CodeServerError = "SERVER_ERROR"
	CodeTimeout     = "TIMEOUT"
	CodeUnavailable = "UNAVAILABLE"
	CodeBadResponse = "BAD_RESPONSE"
)

// Error is a strategy failure annotated with whether another attempt may help
type Error struct {
	Code      string
	Message   string
	Strategy  string
	Retryable bool
	Cause     error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Strategy, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Strategy, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// NewError builds an Error
func NewError(strategy, code, message string, retryable bool, cause error) *Error {
	return &Error{
		Code:      code,
		Message:   message,
		Strategy:  strategy,
		Retryable: retryable,
		Cause:     cause,
	}
}

// FromHTTPStatus classifies an HTTP status code the way remote collaborators
// report failures. 429 and 5xx are retryable.
func FromHTTPStatus(strategy string, status int, body string) *Error {
	switch {
	case status == 401 || status == 403:
		return NewError(strategy, CodeAuth, fmt.Sprintf("authentication failed (status %d): %s", status, body), false, nil)
	case status == 429:
		return NewError(strategy, CodeRateLimit, "rate limit exceeded: "+body, true, nil)
	case status >= 500:
		return NewError(strategy, CodeServerError, fmt.Sprintf("server error (status %d): %s", status, body), true, nil)
	default:
		return NewError(strategy, CodeBadRequest, fmt.Sprintf("request rejected (status %d): %s", status, body), false, nil)
	}
}

// IsRetryable reports whether err is worth another attempt.
// Errors that are not strategy errors are treated as transient.
func IsRetryable(err error) bool {
	var se *Error
	if errors.As(err, &se) {
		return se.Retryable
	}
	return true
}

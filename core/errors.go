package core

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// APIError is the structured form of a non-2xx response from the EMS backend.
// The body fields mirror the two error shapes the backend emits:
// {"message": "..."} and {"error": "..."}, optionally with per-field errors.
type APIError struct {
	StatusCode int
	Method     string
	Path       string
	Message    string            // body "message"
	ErrMessage string            // body "error"
	Fields     map[string]string // body "errors"
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.StatusCode, http.StatusText(e.StatusCode))
}

// UserMessage extracts a human-readable message from err for display,
// checking in order: the structured body "message" field, the body "error"
// field, the HTTP status text, the transport error message, then fallback.
func UserMessage(err error, fallback string) string {
	if err == nil {
		return ""
	}
	if apiErr, ok := errors.Cause(err).(*APIError); ok {
		if apiErr.Message != "" {
			return apiErr.Message
		}
		if apiErr.ErrMessage != "" {
			return apiErr.ErrMessage
		}
		if txt := http.StatusText(apiErr.StatusCode); txt != "" {
			return txt
		}
		return fallback
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return fallback
}

// IsAPIStatus reports whether err is an APIError with the given status code.
func IsAPIStatus(err error, status int) bool {
	apiErr, ok := errors.Cause(err).(*APIError)
	return ok && apiErr.StatusCode == status
}

// FieldError is used to indicate an error with a specific struct field.
type FieldError struct {
	Field string
	Error string
}

type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}

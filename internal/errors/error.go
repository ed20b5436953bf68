package errors

import (
	"errors"
	"fmt"
)

// Category represents the type of error.
type Category string

const (
	CategoryConfig  Category = "config"
	CategoryCLI     Category = "cli"
	CategoryPublish Category = "publish"
	CategoryRuntime Category = "runtime"
)

// SiteError is a structured error with a code, explanation and hint.
type SiteError struct {
	// Code is a unique error identifier (e.g., "W001").
	Code string

	// Category is the error type.
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of this occurrence.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *SiteError) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *SiteError) Unwrap() error {
	return e.Wrapped
}

// WithDetail adds an explanation of this occurrence.
func (e *SiteError) WithDetail(format string, args ...any) *SiteError {
	e.Detail = fmt.Sprintf(format, args...)
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *SiteError) WithSuggestion(s string) *SiteError {
	e.Suggestion = s
	return e
}

// Wrap wraps another error.
func (e *SiteError) Wrap(err error) *SiteError {
	e.Wrapped = err
	return e
}

// New creates a SiteError from a registered error code.
func New(code string) *SiteError {
	template, ok := registry[code]
	if !ok {
		return &SiteError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &SiteError{
		Code:       code,
		Category:   template.Category,
		Message:    template.Message,
		Suggestion: template.Suggestion,
	}
}

// FromError wraps a standard error in a SiteError. Errors that already
// contain a SiteError are returned as that SiteError.
func FromError(err error, code string) *SiteError {
	if err == nil {
		return nil
	}
	var se *SiteError
	if errors.As(err, &se) {
		return se
	}
	return New(code).Wrap(err)
}

// Join combines errors; a nil result means there were none.
func Join(errs ...error) error {
	return errors.Join(errs...)
}

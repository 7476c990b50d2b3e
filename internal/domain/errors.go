package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound         = errors.New("not found")
	ErrValidation       = errors.New("validation error")
	ErrSpanOutOfRange   = errors.New("span out of range")
	ErrTransient        = errors.New("transient remote failure")
	ErrRetriesExhausted = errors.New("retries exhausted")
)

// SpanError reports a highlighted span that cannot be applied to its text.
type SpanError struct {
	Start int
	End   int
	Len   int
	Empty bool
}

func (e *SpanError) Error() string {
	if e.Empty {
		return "span: no highlighted range"
	}
	return fmt.Sprintf("span: [%d:%d] outside text of length %d", e.Start, e.End, e.Len)
}

func (e *SpanError) Unwrap() error { return ErrSpanOutOfRange }

// UpstreamError is a non-200 response from the remote service.
// 429 and gateway failures count as transient.
type UpstreamError struct {
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("upstream: status %d", e.Status)
	}
	return fmt.Sprintf("upstream: status %d: %s", e.Status, e.Message)
}

func (e *UpstreamError) Unwrap() error {
	switch e.Status {
	case http.StatusTooManyRequests, http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return ErrTransient
	}
	return nil
}

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	msg := fmt.Sprintf("validation: %d errors", len(e.Errors))
	for _, fe := range e.Errors {
		msg += fmt.Sprintf("; %s: %s", fe.Field, fe.Message)
	}
	return msg
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvoiceNotFound        = errors.New("invoice_not_found")
	ErrDuplicateInvoiceNumber = errors.New("duplicate_invoice_number")
	ErrValidation             = errors.New("validation_error")

	// ErrRendererUnavailable is returned when the printable-document
	// capability was not selected at startup.
	ErrRendererUnavailable = errors.New("renderer_unavailable")
)

// ValidationError reports a single user-correctable input problem. It
// unwraps to ErrValidation so callers can match the whole family.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

func requiredError(field string) error {
	return &ValidationError{Field: field, Message: "must not be empty"}
}

package service

import (
	"errors"
	"fmt"
)

// Error kinds the HTTP and CLI layers translate for the user.
var (
	// ErrInvalidInput marks a request the service cannot act on.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound marks a lookup of a draft key that was never saved.
	ErrNotFound = errors.New("not found")
	// ErrExternalService marks a failed call to the PDF rendering service.
	ErrExternalService = errors.New("external service error")
)

// ValidationError names the request field to fix, such as an empty export
// filename. Message is shown to the user as is.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field %s: %s", e.Field, e.Message)
}

// WrapError prefixes err with msg. A nil err stays nil.
func WrapError(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

package snipbook

import (
	"fmt"
)

// Wrap wraps an error by prepending additional text.
// The text can contain formatting parameters.
func Wrap(err error, msg string, v ...interface{}) error {
	msg = fmt.Sprintf(msg, v...)
	return fmt.Errorf("%v: %v", msg, err)
}

type notFound struct {
	message string
}

// NewNotFound creates a new "not found" error.
func NewNotFound(s string, v ...interface{}) error {
	return notFound{fmt.Sprintf("Not found: %v", fmt.Errorf(s, v...))}
}

func (n notFound) Error() string {
	return n.message
}

// IsNotFound checks if the given error is a "not found" error.
func IsNotFound(err error) bool {
	_, ok := err.(notFound)
	return ok
}

type maskingFailed struct {
	message string
}

// NewMaskingFailed creates the error that is reported when a photo could
// not be cut to a shape, e.g. because the source image does not decode.
func NewMaskingFailed(s string, v ...interface{}) error {
	return maskingFailed{fmt.Sprintf("Masking failed: %v", fmt.Errorf(s, v...))}
}

func (m maskingFailed) Error() string {
	return m.message
}

// IsMaskingFailed checks if the given error is a "masking failed" error.
func IsMaskingFailed(err error) bool {
	_, ok := err.(maskingFailed)
	return ok
}

type validationError struct {
	message string
}

func (v validationError) Error() string {
	return v.message
}

// NewValidationError creates an error of from the given format string.
func NewValidationError(msg string, v ...interface{}) error {
	return validationError{fmt.Sprintf(msg, v...)}
}

// IsValidationError checks if the given error is a validation error.
func IsValidationError(err error) bool {
	_, ok := err.(validationError)
	return ok
}

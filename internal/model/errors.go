package model

import (
	"errors"
	"fmt"
)

var (
	ErrRequired    = errors.New("required")
	ErrNotNumeric  = errors.New("not a number")
	ErrOutOfRange  = errors.New("out of range")
	ErrInvalidType = errors.New("invalid value")
)

// FieldError ties a validation failure to the field that caused it.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

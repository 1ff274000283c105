// Package apperrors defines sentinel errors shared across domains.
package apperrors

import (
	"errors"
	"fmt"
)

// ErrInvalidInput marks a request rejected before it reached the store.
// HTTP handlers map it to 400 with the error message as the body; every
// other error from a write path is a store failure and surfaces as 500
// with a generic body.
var ErrInvalidInput = errors.New("invalid input")

// InvalidInput builds a validation error. The message is returned verbatim
// by Error(); errors.Is(err, ErrInvalidInput) reports true.
func InvalidInput(format string, args ...interface{}) error {
	return &invalidInputError{msg: fmt.Sprintf(format, args...)}
}

type invalidInputError struct {
	msg string
}

func (e *invalidInputError) Error() string { return e.msg }

func (e *invalidInputError) Is(target error) bool { return target == ErrInvalidInput }

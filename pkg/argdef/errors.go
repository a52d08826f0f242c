// SPDX-License-Identifier: MPL-2.0

package argdef

import (
	"errors"
	"fmt"
)

var (
	// ErrDefinition is the sentinel wrapped by DefinitionError. A definition
	// error means the declared argument shape is internally inconsistent; it is
	// detected before any user input is read and is always fatal.
	ErrDefinition = errors.New("definition error")

	// ErrUser is the sentinel wrapped by UserError. A user error means the
	// supplied input cannot satisfy the declared shape.
	ErrUser = errors.New("user error")
)

type (
	// DefinitionError reports an inconsistency in the declared argument shape.
	DefinitionError struct {
		Message string
	}

	// UserError reports input that cannot satisfy the declared shape.
	UserError struct {
		Message string
	}
)

// Error implements the error interface.
func (e *DefinitionError) Error() string { return e.Message }

// Unwrap returns ErrDefinition so callers can use errors.Is for classification.
func (e *DefinitionError) Unwrap() error { return ErrDefinition }

// Error implements the error interface.
func (e *UserError) Error() string { return e.Message }

// Unwrap returns ErrUser so callers can use errors.Is for classification.
func (e *UserError) Unwrap() error { return ErrUser }

// Definitionf creates a DefinitionError with a formatted message.
func Definitionf(format string, args ...any) error {
	return &DefinitionError{Message: fmt.Sprintf(format, args...)}
}

// Userf creates a UserError with a formatted message.
func Userf(format string, args ...any) error {
	return &UserError{Message: fmt.Sprintf(format, args...)}
}

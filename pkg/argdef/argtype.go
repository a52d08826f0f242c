// SPDX-License-Identifier: MPL-2.0

package argdef

import (
	"errors"
	"fmt"
)

const (
	// TypeString is the identity type; any raw value is accepted as-is.
	TypeString ArgumentType = "string"
	// TypeBool is for boolean arguments (true/false, bare flag means true).
	TypeBool ArgumentType = "bool"
	// TypeInt is for 64-bit signed integer arguments.
	TypeInt ArgumentType = "int"
	// TypeFloat is for 64-bit IEEE floating-point arguments.
	TypeFloat ArgumentType = "float"
	// TypeChoice is for arguments restricted to a declared option set.
	TypeChoice ArgumentType = "choice"
)

// ErrInvalidArgumentType is returned when an ArgumentType value is not one of the defined types.
var ErrInvalidArgumentType = errors.New("invalid argument type")

type (
	// ArgumentType represents the data type of a declared argument. The set is
	// closed: validation and help rendering switch exhaustively over it.
	ArgumentType string

	// InvalidArgumentTypeError is returned when an ArgumentType value is not recognized.
	// It wraps ErrInvalidArgumentType for errors.Is() compatibility.
	InvalidArgumentTypeError struct {
		Value ArgumentType
	}
)

// Error implements the error interface for InvalidArgumentTypeError.
func (e *InvalidArgumentTypeError) Error() string {
	return fmt.Sprintf("invalid argument type %q (valid: string, bool, int, float, choice)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidArgumentTypeError) Unwrap() error {
	return ErrInvalidArgumentType
}

// IsValid returns whether the ArgumentType is one of the defined types,
// and a list of validation errors if it is not.
func (t ArgumentType) IsValid() (bool, []error) {
	switch t {
	case TypeString, TypeBool, TypeInt, TypeFloat, TypeChoice:
		return true, nil
	default:
		return false, []error{&InvalidArgumentTypeError{Value: t}}
	}
}

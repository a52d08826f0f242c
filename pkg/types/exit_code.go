// SPDX-License-Identifier: MPL-2.0

// Package types holds small shared value types used across the CLI and the
// emission layer.
package types

import (
	"errors"
	"fmt"
	"strconv"
)

const (
	// CodeSuccess means every definition resolved and validated.
	CodeSuccess ExitCode = 0
	// CodeHelpDisplayed means help was rendered instead of assignments.
	// Help is not an error, but the calling script must not proceed as if
	// values were assigned.
	CodeHelpDisplayed ExitCode = 1
	// CodeDefinitionError means the declared argument shape is inconsistent.
	CodeDefinitionError ExitCode = 2
	// CodeUserError means the supplied input cannot satisfy the declared shape.
	CodeUserError ExitCode = 3
)

// ErrInvalidExitCode is the sentinel error wrapped by InvalidExitCodeError.
var ErrInvalidExitCode = errors.New("invalid exit code")

type (
	// ExitCode represents a process exit status code.
	// Exit codes are in the range 0-255 on POSIX systems.
	// The zero value (0) means success.
	ExitCode int

	// InvalidExitCodeError is returned when an ExitCode is outside the
	// valid range (0-255).
	InvalidExitCodeError struct {
		Value ExitCode
	}
)

// Error implements the error interface.
func (e *InvalidExitCodeError) Error() string {
	return fmt.Sprintf("invalid exit code %d (must be in range 0-255)", e.Value)
}

// Unwrap returns ErrInvalidExitCode so callers can use errors.Is for programmatic detection.
func (e *InvalidExitCodeError) Unwrap() error { return ErrInvalidExitCode }

// Validate returns an error if the ExitCode is outside the valid range (0-255).
func (c ExitCode) Validate() error {
	if c < 0 || c > 255 {
		return &InvalidExitCodeError{Value: c}
	}
	return nil
}

// IsSuccess returns true if the exit code indicates successful execution.
func (c ExitCode) IsSuccess() bool { return c == CodeSuccess }

// String returns the decimal string representation of the ExitCode.
func (c ExitCode) String() string { return strconv.Itoa(int(c)) }

// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"shargs-cli/pkg/types"
)

// ExitError signals a specific exit code without forcing os.Exit in RunE
// handlers. The help path uses it too: help exits with code 1 even though
// it is not a failure, so the calling script can tell the cases apart.
type ExitError struct {
	Code types.ExitCode
	Err  error
}

// Error returns the error message for ExitError.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap returns the underlying error, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// SPDX-License-Identifier: MPL-2.0

// Package script renders the engine's results as shell statements on an
// io.Writer: variable assignments (optionally exported and prefixed), echo
// trace lines when debugging is enabled, error reports with their exit
// codes, and the pager-wrapped help block. The output is the tool's whole
// contract with the calling script - it is meant to be eval'd, so nothing
// else may be written to the same stream.
package script

// SPDX-License-Identifier: MPL-2.0

// Package help renders the help document for a definition set: NAME,
// DESCRIPTION, and OPTIONS sections with man-page style indentation and
// greedy column-aware word wrapping. The renderer returns a slice of lines
// rather than a joined blob so callers can page or wrap them in shell
// scaffolding without re-deriving width logic.
package help

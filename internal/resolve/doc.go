// SPDX-License-Identifier: MPL-2.0

// Package resolve implements the argument resolution engine: matching raw
// user tokens against a sealed argdef.Set, assigning leftover positional
// tokens to ordinal and catch-all definitions, applying defaults, and
// validating every explicitly supplied value per its declared type.
//
// The pipeline is one synchronous pass: MatchTokens produces flag matches
// plus the residual token list, Resolve turns those into per-definition
// value lists, and Validate converts each explicit raw value. Run wires the
// three stages together for the CLI driver. Each stage consumes an immutable
// snapshot of the previous stage's output, so the engine can be invoked any
// number of times in tests with different sets and settings.
package resolve

// SPDX-License-Identifier: MPL-2.0

package resolve

import (
	"shargs-cli/pkg/argdef"
)

type (
	// Match is one recognized flag occurrence: the definition it belongs to,
	// the flag token that matched, and the raw value it carried.
	Match struct {
		Def  *argdef.Definition
		Flag string
		Raw  string
	}

	// MatchOutcome is the token matcher's output: the flag matches in input
	// order, the residual unflagged tokens awaiting positional assignment,
	// and whether the help trigger short-circuited processing.
	MatchOutcome struct {
		Matches       []Match
		Residual      []string
		HelpRequested bool
	}

	// ResolvedValue is the per-definition outcome after resolution. Raw holds
	// the values the user actually supplied, in arrival order; Origins holds a
	// matching trace tag per raw value (flag token, ordinal slot, or
	// catch-all) used for debug output. FromDefault marks a value taken from
	// the declared default, which bypasses validation and choice mapping
	// entirely. Values holds the final typed/normalized values once
	// validation has run.
	ResolvedValue struct {
		Def         *argdef.Definition
		Raw         []string
		Origins     []string
		FromDefault bool
		Values      []string
	}

	// Binding is one emit-ready record: variable name (without prefix), the
	// final values, and whether the argument was declared repeated.
	Binding struct {
		Name     string
		Values   []string
		Repeated bool
	}

	// Result is the full engine outcome for one invocation. When
	// HelpRequested is set the other fields are empty and the caller should
	// render help instead.
	Result struct {
		Values        []*ResolvedValue
		Bindings      []Binding
		HelpRequested bool
	}
)

// supplied reports whether the definition received any explicit value,
// through a flag or a positional token.
func (rv *ResolvedValue) supplied() bool {
	return len(rv.Raw) > 0
}

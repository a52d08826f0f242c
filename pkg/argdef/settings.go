// SPDX-License-Identifier: MPL-2.0

package argdef

const (
	// HelpModeNone disables help rendering entirely.
	HelpModeNone HelpMode = "none"
	// HelpModeAuto renders help when the user passes the --help trigger token.
	HelpModeAuto HelpMode = "auto"
	// HelpModeFunction emits the help text as a named shell function on
	// successful runs, in addition to the auto trigger.
	HelpModeFunction HelpMode = "function"
)

// DefaultColumns is the help column width used when neither the definition
// stream nor the ambient configuration provides one.
const DefaultColumns = 80

type (
	// HelpMode selects how help text is made available to the calling script.
	HelpMode string

	// Settings are the global runtime options parsed from the definition
	// stream. They are carried by the Set so the engine stays callable multiple
	// times with different prefixes and column widths without ambient state.
	Settings struct {
		// Prefix is prepended to every emitted variable name, including the
		// indexed names of repeated arguments.
		Prefix string
		// Export emits assignments with the `export` keyword.
		Export bool
		// Debug emits trace lines alongside the assignments.
		Debug bool

		ProgramName        string
		ProgramSummary     string
		ProgramDescription string

		// Columns is the help text column width.
		Columns int

		// HelpMode selects the help trigger behavior; HelpFunction names the
		// emitted shell function when HelpMode is HelpModeFunction.
		HelpMode     HelpMode
		HelpFunction string
	}
)

// DefaultSettings returns Settings with the baked-in defaults applied.
// Ambient configuration and the definition stream both layer on top of it.
func DefaultSettings() Settings {
	return Settings{
		Columns:  DefaultColumns,
		HelpMode: HelpModeNone,
	}
}

// HelpEnabled reports whether the --help trigger token is active.
func (s *Settings) HelpEnabled() bool {
	return s.HelpMode == HelpModeAuto || s.HelpMode == HelpModeFunction
}

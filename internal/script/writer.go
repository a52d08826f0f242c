// SPDX-License-Identifier: MPL-2.0

package script

import (
	"fmt"
	"io"
	"strconv"

	"shargs-cli/internal/resolve"
	"shargs-cli/pkg/argdef"
	"shargs-cli/pkg/types"

	"mvdan.cc/sh/v3/syntax"
)

// tracePrefix marks the echo lines emitted when --debug is active.
const tracePrefix = "[shargs] "

// Writer emits shell statements for one invocation. All methods write to the
// underlying stream; write errors are ignored because the consumer is a
// shell eval of our stdout - there is no recovery path past a broken pipe.
type Writer struct {
	w        io.Writer
	settings argdef.Settings
}

// NewWriter creates a Writer bound to the given stream and settings.
func NewWriter(w io.Writer, settings argdef.Settings) *Writer {
	return &Writer{w: w, settings: settings}
}

// Echo emits an `echo "text"` statement.
func (s *Writer) Echo(text string) {
	fmt.Fprintf(s.w, "echo \"%s\"\n", text)
}

// Debugf emits a trace echo line when debugging is enabled.
func (s *Writer) Debugf(format string, args ...any) {
	if !s.settings.Debug {
		return
	}
	s.Echo(tracePrefix + fmt.Sprintf(format, args...))
}

// Assign emits one variable assignment, applying the configured prefix and
// export mode. The value is shell-quoted so the calling script sees it
// byte-for-byte.
func (s *Writer) Assign(name, value string) {
	s.Debugf("Setting %s%s = \\\"%s\\\"", s.settings.Prefix, name, value)

	export := ""
	if s.settings.Export {
		export = "export "
	}
	fmt.Fprintf(s.w, "%s%s%s=%s\n", export, s.settings.Prefix, name, quoteValue(value))
}

// WriteSetup emits the leading trace block describing the parsed settings
// and every definition. A no-op unless debugging is enabled.
func (s *Writer) WriteSetup(set *argdef.Set) {
	if !s.settings.Debug {
		return
	}

	s.Debugf("debugging enabled with --debug flag")
	if s.settings.Export {
		s.Debugf("Arguments are exported to child processes")
	} else {
		s.Debugf("Arguments are not exported to child processes")
	}
	if s.settings.Prefix != "" {
		s.Debugf("All variables will be prefixed with '%s'", s.settings.Prefix)
	}
	if s.settings.HelpEnabled() {
		s.Debugf("Help text will be printed if '--help' is found in arguments")
	}
	s.Debugf("Help text will be formatted with %d columns", s.settings.Columns)
	s.Echo("")

	for _, def := range set.Definitions() {
		s.Debugf("Definition - %s", def.DebugInfo())
	}
	s.Echo("")
}

// WriteResult emits the assignments for a successful resolution. Repeated
// arguments assign the element count to the base name and each element to
// <name>_<index>.
func (s *Writer) WriteResult(res *resolve.Result) {
	for _, rv := range res.Values {
		for i, raw := range rv.Raw {
			s.Debugf("Parsed argument %s = '%s' [%s]", rv.Def.Name, raw, rv.Origins[i])
		}
	}

	for _, b := range res.Bindings {
		if b.Repeated {
			s.Assign(b.Name, strconv.Itoa(len(b.Values)))
			for i, value := range b.Values {
				s.Assign(fmt.Sprintf("%s_%d", b.Name, i), value)
			}
			continue
		}
		s.Assign(b.Name, b.Values[0])
	}

	s.Debugf("")
	s.Debugf("completed successfully")
}

// WriteError reports a failure as echo statements plus a subshell exit, so
// an eval'ing script can inspect $? without being terminated itself.
func (s *Writer) WriteError(code types.ExitCode, message string) {
	s.Echo("")
	s.Echo(fmt.Sprintf("!!! shargs error: %s !!!", message))
	s.Echo("")
	s.WriteExitStatus(code)
}

// WriteExitStatus emits a subshell exit so an eval'ing script observes the
// status in $? without terminating.
func (s *Writer) WriteExitStatus(code types.ExitCode) {
	fmt.Fprintf(s.w, "( exit %s )\n", code)
}

// WriteHelp wraps the rendered help lines in a subshell block that resolves
// tput bold sequences on terminals and pipes the text through the user's
// pager.
func (s *Writer) WriteHelp(lines []string) {
	fmt.Fprintln(s.w, "(")
	fmt.Fprintln(s.w, "if [ -t 1 ]; then")
	fmt.Fprintln(s.w, "  bold=\"$(tput bold)\"")
	fmt.Fprintln(s.w, "  unbold=\"$(tput sgr0)\"")
	fmt.Fprintln(s.w, "else")
	fmt.Fprintln(s.w, "  bold=\"\"")
	fmt.Fprintln(s.w, "  unbold=\"\"")
	fmt.Fprintln(s.w, "fi")
	fmt.Fprintln(s.w, "HELP_PAGER=\"${PAGER:-\"less -R\"}\"")
	fmt.Fprintln(s.w, "HELP_TEXT=\"")
	for _, line := range lines {
		fmt.Fprintln(s.w, line)
	}
	fmt.Fprintln(s.w, "\"")
	fmt.Fprintln(s.w, "echo \"$HELP_TEXT\" | $HELP_PAGER")
	fmt.Fprintln(s.w, ")")
}

// WriteHelpFunction emits the help block wrapped in a named shell function
// the calling script can invoke later.
func (s *Writer) WriteHelpFunction(name string, lines []string) {
	fmt.Fprintf(s.w, "%s () {\n", name)
	s.WriteHelp(lines)
	fmt.Fprintln(s.w, "}")
}

// Bold is the header decorator for help text destined for the shell block:
// it expands to the tput variables set up by WriteHelp.
func Bold(text string) string {
	return "${bold}" + text + "${unbold}"
}

// quoteValue renders a value for the right-hand side of an assignment.
// Values that need no escaping keep the plain double-quoted form; anything
// with shell-special characters goes through syntax.Quote so the assignment
// round-trips exactly.
func quoteValue(value string) string {
	quoted, err := syntax.Quote(value, syntax.LangPOSIX)
	if err != nil {
		// Unrepresentable values (NUL bytes) degrade to the naive form.
		return "\"" + value + "\""
	}
	if quoted == value {
		return "\"" + value + "\""
	}
	return quoted
}

// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"shargs-cli/internal/config"
	"shargs-cli/internal/help"
	"shargs-cli/internal/resolve"
	"shargs-cli/internal/script"
	"shargs-cli/pkg/argdef"
	"shargs-cli/pkg/types"

	"github.com/charmbracelet/log"
)

// run drives one invocation: parse the definition stream, resolve the user
// arguments against it, and emit shell statements on stdout. Failures are
// reported twice - as echo statements for the eval'ing script, and as an
// ExitError so the process exits with the matching code.
func run(stdout io.Writer, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+err.Error())
		cfg = &config.Config{}
	}

	base := argdef.DefaultSettings()
	if cfg.Columns > 0 {
		base.Columns = cfg.Columns
	}
	base.Prefix = cfg.Prefix
	base.Export = cfg.Export
	base.Debug = cfg.Debug

	set, userArgs, err := argdef.Parse(args, base)
	if err != nil {
		// The set may not exist yet; report with the base settings.
		out := script.NewWriter(stdout, base)
		return reportFailure(out, err)
	}

	settings := set.Settings()
	setupLogging(settings.Debug)
	out := script.NewWriter(stdout, settings)
	out.WriteSetup(set)

	result, err := resolve.Run(set, userArgs)
	if err != nil {
		return reportFailure(out, err)
	}

	if result.HelpRequested {
		out.WriteHelp(renderHelp(set))
		out.WriteExitStatus(types.CodeHelpDisplayed)
		return &ExitError{Code: types.CodeHelpDisplayed}
	}

	out.WriteResult(result)

	if settings.HelpMode == argdef.HelpModeFunction {
		out.WriteHelpFunction(settings.HelpFunction, renderHelp(set))
	}

	return nil
}

// renderHelp renders the help document with the shell bold decorator, at the
// width configured for this invocation.
func renderHelp(set *argdef.Set) []string {
	return help.Render(set, help.Options{Bold: script.Bold})
}

// reportFailure classifies an engine error, writes the echo report for the
// calling script, and wraps the error with its exit code.
func reportFailure(out *script.Writer, err error) error {
	code := types.CodeDefinitionError
	if errors.Is(err, argdef.ErrUser) {
		code = types.CodeUserError
	}
	out.WriteError(code, err.Error())
	return &ExitError{Code: code, Err: err}
}

// setupLogging installs a charmbracelet logger as the slog default so the
// engine's trace lines land on stderr, away from the eval'd stdout.
func setupLogging(debug bool) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "shargs",
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	slog.SetDefault(slog.New(logger))
}

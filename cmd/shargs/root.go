// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the shargs CLI entry point.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// rootCmd is the whole CLI: shargs has no subcommands, and flag parsing
	// is disabled because the entire argument vector is engine input (the
	// definition stream, "--", then the script's own arguments).
	rootCmd = &cobra.Command{
		Use:                "shargs [definitions...] -- [arguments...]",
		Short:              "Typed command-line parsing for shell scripts",
		Long: TitleStyle.Render("shargs") + SubtitleStyle.Render(" - typed command-line parsing for shell scripts") + `

shargs lets a shell script declare a typed command-line interface and
receive the parsed, validated values as environment-variable assignments:

  eval "$(shargs \
    --string first_name f --required \
    --int retries --default 3 \
    --bool verbose --negative-flag quiet \
    -- "$@")"

Everything before the literal -- declares arguments and runtime options;
everything after it is matched, resolved, and validated against those
declarations. stdout carries the resulting shell statements, and the exit
code distinguishes success (0), help displayed (1), a broken declaration
(2), and invalid input (3).`,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), args)
		},
	}
)

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the CLI and translates ExitError into the process exit code.
// This is called by main.main().
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(int(exitErr.Code))
		}
		os.Exit(1)
	}
}

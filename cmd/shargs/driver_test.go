// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"strings"
	"testing"

	"shargs-cli/internal/config"
	"shargs-cli/pkg/types"
)

// isolateConfig points the config loader at an empty directory so the tests
// never see the invoking user's real config. The tests share process-wide
// state (config override, slog default), so they do not run in parallel.
func isolateConfig(t *testing.T) {
	t.Helper()
	config.SetConfigDirOverride(t.TempDir())
	t.Cleanup(config.Reset)
}

func runScript(t *testing.T, args []string) (string, error) {
	t.Helper()
	var buf strings.Builder
	err := run(&buf, args)
	return buf.String(), err
}

func TestRunEmitsAssignments(t *testing.T) {
	isolateConfig(t)

	out, err := runScript(t, []string{
		"--string", "first_name", "f",
		"--int", "retries", "--default", "3",
		"--",
		"--f", "Alice",
	})
	if err != nil {
		t.Fatalf("run() = %v", err)
	}

	for _, want := range []string{
		"FIRST_NAME=\"Alice\"\n",
		"RETRIES=\"3\"\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunRepeatedCatchAll(t *testing.T) {
	isolateConfig(t)

	out, err := runScript(t, []string{
		"--string", "name", "--repeated", "--catch-all",
		"--",
		"Bob", "Carol",
	})
	if err != nil {
		t.Fatalf("run() = %v", err)
	}

	for _, want := range []string{
		"NAME=\"2\"\n",
		"NAME_0=\"Bob\"\n",
		"NAME_1=\"Carol\"\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunUserError(t *testing.T) {
	isolateConfig(t)

	out, err := runScript(t, []string{
		"--int", "count",
		"--",
		"--count", "lots",
	})
	if err == nil {
		t.Fatal("run() accepted a non-integer value")
	}

	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("error is not an ExitError: %v", err)
	}
	if exitErr.Code != types.CodeUserError {
		t.Errorf("exit code = %v, want %v", exitErr.Code, types.CodeUserError)
	}
	if !strings.Contains(out, "!!! shargs error: non-integer value \"lots\" provided for argument COUNT !!!") {
		t.Errorf("error report missing:\n%s", out)
	}
	if !strings.Contains(out, "( exit 3 )\n") {
		t.Errorf("exit status missing:\n%s", out)
	}
}

func TestRunDefinitionError(t *testing.T) {
	isolateConfig(t)

	_, err := runScript(t, []string{"--bool", "verbose", "--repeated", "--"})
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("error is not an ExitError: %v", err)
	}
	if exitErr.Code != types.CodeDefinitionError {
		t.Errorf("exit code = %v, want %v", exitErr.Code, types.CodeDefinitionError)
	}
}

func TestRunHelpRequested(t *testing.T) {
	isolateConfig(t)

	out, err := runScript(t, []string{
		"--autohelp",
		"--program-name", "demo",
		"--string", "target",
		"--",
		"--help",
	})

	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("error is not an ExitError: %v", err)
	}
	if exitErr.Code != types.CodeHelpDisplayed {
		t.Errorf("exit code = %v, want %v", exitErr.Code, types.CodeHelpDisplayed)
	}

	for _, want := range []string{
		"${bold}NAME${unbold}",
		"demo",
		"echo \"$HELP_TEXT\" | $HELP_PAGER",
		"( exit 1 )\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("help output missing %q:\n%s", want, out)
		}
	}
}

func TestRunHelpFunction(t *testing.T) {
	isolateConfig(t)

	out, err := runScript(t, []string{
		"--help-function", "usage",
		"--string", "target",
		"--",
		"--target", "here",
	})
	if err != nil {
		t.Fatalf("run() = %v", err)
	}

	if !strings.Contains(out, "TARGET=\"here\"\n") {
		t.Errorf("assignment missing:\n%s", out)
	}
	if !strings.Contains(out, "usage () {\n") {
		t.Errorf("help function missing:\n%s", out)
	}
}

func TestRunConfigPrefixApplied(t *testing.T) {
	t.Setenv("SHARGS_PREFIX", "CFG_")
	config.SetConfigDirOverride(t.TempDir())
	t.Cleanup(config.Reset)

	out, err := runScript(t, []string{
		"--string", "name",
		"--",
		"--name", "x",
	})
	if err != nil {
		t.Fatalf("run() = %v", err)
	}
	if !strings.Contains(out, "CFG_NAME=\"x\"\n") {
		t.Errorf("configured prefix not applied:\n%s", out)
	}
}

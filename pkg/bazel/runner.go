// Package bazel runs bazel subprocesses and parses their output.
package bazel

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	log "github.com/sirupsen/logrus"
)

// DefaultExecutable is used when no executable is configured and $BAZEL
// is unset.
const DefaultExecutable = "bazel"

// Runner invokes bazel for one workspace. The extra environment is passed
// explicitly on every invocation; the process environment is never
// mutated.
type Runner struct {
	// Executable is the bazel binary to invoke.
	Executable string
	// Dir is the working directory for invocations; "" means the current
	// directory.
	Dir string
	// Env holds extra environment entries appended to the inherited
	// environment of every invocation.
	Env []string
}

// NewRunner returns a Runner for the given executable, falling back to
// $BAZEL and then "bazel".
func NewRunner(executable, dir string) *Runner {
	if executable == "" {
		executable = os.Getenv("BAZEL")
	}
	if executable == "" {
		executable = DefaultExecutable
	}
	r := &Runner{Executable: executable, Dir: dir}
	// Tell MSYS2 not to rewrite absolute package paths in command line
	// arguments. Don't override a more aggressive setting.
	if os.Getenv("MSYS2_ARG_CONV_EXCL") != "*" {
		r.Env = append(r.Env, "MSYS2_ARG_CONV_EXCL=//")
	}
	return r
}

// Path returns the resolved location of the bazel executable, for
// embedding into generated build command lines. Falls back to the
// configured name when resolution fails.
func (r *Runner) Path() string {
	if p, err := exec.LookPath(r.Executable); err == nil {
		return p
	}
	return r.Executable
}

// run executes bazel with args and returns its stdout. A non-zero exit
// surfaces as an *exec.ExitError with stderr captured.
func (r *Runner) run(args ...string) ([]byte, error) {
	cmd := r.command(args...)
	log.Debugf("running %s", cmd)
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("bazel %s: %w", args[0], err)
	}
	return out, nil
}

// runThrough executes bazel with args, streaming output to the caller's
// stdout and stderr. Used for builds, where progress belongs on the
// terminal.
func (r *Runner) runThrough(args ...string) error {
	cmd := r.command(args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	log.Debugf("running %s", cmd)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("bazel %s: %w", args[0], err)
	}
	return nil
}

func (r *Runner) command(args ...string) *exec.Cmd {
	cmd := exec.Command(r.Executable, args...)
	cmd.Dir = r.Dir
	cmd.Env = append(os.Environ(), r.Env...)
	return cmd
}

// Stderr extracts captured stderr from a failed invocation, or "" when
// none is available.
func Stderr(err error) string {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return string(exitErr.Stderr)
	}
	return ""
}

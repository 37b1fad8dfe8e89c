// Package runner executes the external tools operations depend on
// (brew, bundle, rbenv, go, shell snippets).
package runner

import (
	"context"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/arthur-debert/omni/pkg/errors"
	"github.com/arthur-debert/omni/pkg/logging"
	"github.com/rs/zerolog"
)

// Runner runs external commands on behalf of operations
type Runner interface {
	// Run executes name with args in dir, streaming its output.
	// A non-zero exit status is returned as an ErrCommandFailed error.
	Run(ctx context.Context, dir, name string, args ...string) error

	// Succeeds executes name with args in dir quietly and reports whether it exited zero
	Succeeds(ctx context.Context, dir, name string, args ...string) bool
}

// Exec is the os/exec backed Runner
type Exec struct {
	Stdout io.Writer
	Stderr io.Writer
	Logger zerolog.Logger
}

// NewExec creates an Exec runner writing command output to the terminal
func NewExec() *Exec {
	return &Exec{
		Stdout: os.Stderr,
		Stderr: os.Stderr,
		Logger: logging.GetLogger("runner"),
	}
}

// Run implements Runner
func (e *Exec) Run(ctx context.Context, dir, name string, args ...string) error {
	logging.LogCommand(e.Logger, dir, name, args)

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr
	cmd.Stdin = os.Stdin

	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, errors.ErrCommandFailed, "command failed: %s", commandLine(name, args)).
			WithDetail("command", name).
			WithDetail("dir", dir)
	}
	return nil
}

// Succeeds implements Runner
func (e *Exec) Succeeds(ctx context.Context, dir, name string, args ...string) bool {
	logging.LogCommand(e.Logger, dir, name, args)

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	err := cmd.Run()

	e.Logger.Trace().
		Str("command", commandLine(name, args)).
		Bool("success", err == nil).
		Msg("Check command finished")
	return err == nil
}

func commandLine(name string, args []string) string {
	return strings.TrimSpace(name + " " + strings.Join(args, " "))
}

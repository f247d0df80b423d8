// Package shell provides the shell executor adapter.
package shell

import (
	"context"
	"errors"
	"io"
	"os/exec"

	"go.trai.ch/xmk/internal/core/domain"
	"go.trai.ch/zerr"
)

// Executor implements ports.Executor using os/exec.
type Executor struct{}

// NewExecutor creates a new Executor.
func NewExecutor() *Executor {
	return &Executor{}
}

// Execute runs argv in dir, streaming process output to the given writers.
// The process inherits the parent environment. A non-zero exit is returned
// as an error carrying the exit code.
func (e *Executor) Execute(ctx context.Context, argv []string, dir string, stdout, stderr io.Writer) error {
	if len(argv) == 0 {
		return nil
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...) //nolint:gosec // user provided command
	cmd.Dir = dir
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return zerr.With(
			zerr.With(zerr.Wrap(err, domain.ErrCommandFailed.Error()), "command", argv[0]),
			"exit_code", exitCode,
		)
	}
	return nil
}

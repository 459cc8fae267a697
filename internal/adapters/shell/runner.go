// Package shell provides the process execution adapter.
package shell

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"

	"go.trai.ch/rcdb/internal/core/domain"
	"go.trai.ch/rcdb/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Runner = (*Runner)(nil)

// Runner implements ports.Runner using os/exec.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{
		logger: logger,
	}
}

// Run executes the command and blocks until it exits, capturing stdout and
// stderr. A non-zero exit status is reported through the result, not as an
// error; the returned error is reserved for spawn failures (binary not
// found, bad working directory).
func (r *Runner) Run(ctx context.Context, name string, args, env []string, dir string) (domain.ProcessResult, error) {
	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec // Command comes from configuration

	if dir != "" {
		cmd.Dir = dir
	}
	if len(env) > 0 {
		cmd.Env = env
	} else {
		cmd.Env = os.Environ()
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := domain.ProcessResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return result, zerr.With(zerr.Wrap(err, "failed to spawn command"), "command", name)
	}
	return result, nil
}

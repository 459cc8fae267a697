// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/rcdb/internal/core/domain"
)

// Runner spawns external commands and captures their output.
//
// The env parameter contains environment variables in "KEY=VALUE" format; an
// empty slice means the process environment. A non-zero exit status is not
// an error: it is reported through the returned ProcessResult so callers can
// apply their own degradation policy.
//
//go:generate mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type Runner interface {
	// Run executes name with args in dir and blocks until it exits.
	Run(ctx context.Context, name string, args, env []string, dir string) (domain.ProcessResult, error)
}

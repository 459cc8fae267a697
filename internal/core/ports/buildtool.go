package ports

import (
	"context"

	"go.trai.ch/rcdb/internal/core/domain"
)

// BuildTool integrates with the native R build driver. All operations run in
// a simulate-don't-link mode: they show the compile command that would be
// executed without producing artifacts.
//
//go:generate mockgen -source=buildtool.go -destination=mocks/mock_buildtool.go -package=mocks
type BuildTool interface {
	// IncludesFor returns the -I arguments implied by depending on the
	// given package (its installed include directories).
	IncludesFor(ctx context.Context, env []string, dependency string) (domain.ArgumentSet, error)

	// DryRunSharedLib simulates "compile srcPath into a shared object" with
	// the project's native build (R CMD SHLIB --dry-run). The working
	// directory is the directory containing srcPath.
	DryRunSharedLib(ctx context.Context, env []string, srcPath string) (domain.ProcessResult, error)

	// DryRunSourceCpp simulates building one annotated standalone file
	// (Rcpp::sourceCpp with dryRun) and returns the captured output.
	DryRunSourceCpp(ctx context.Context, env []string, srcPath string) (domain.ProcessResult, error)
}

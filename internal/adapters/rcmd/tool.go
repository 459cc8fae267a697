// Package rcmd integrates with the R build driver. Every operation shells
// out through ports.Runner in a simulation mode: R CMD SHLIB with --dry-run
// for package builds, Rcpp::sourceCpp with dryRun for standalone files.
package rcmd

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"go.trai.ch/rcdb/internal/core/domain"
	"go.trai.ch/rcdb/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.BuildTool = (*Tool)(nil)

// Tool implements ports.BuildTool against the R and Rscript binaries.
type Tool struct {
	runner  ports.Runner
	rBin    string
	rscript string
}

// NewTool creates a new Tool using the binaries named in cfg.
func NewTool(runner ports.Runner, cfg *domain.Config) *Tool {
	return &Tool{
		runner:  runner,
		rBin:    cfg.RBin,
		rscript: cfg.RScriptBin,
	}
}

// IncludesFor asks R where the dependency's headers are installed and
// returns the implied -I arguments.
func (t *Tool) IncludesFor(ctx context.Context, env []string, dependency string) (domain.ArgumentSet, error) {
	expr := fmt.Sprintf("cat(system.file('include', package='%s'))", rQuote(dependency))
	result, err := t.runner.Run(ctx, t.rscript, []string{"--vanilla", "-e", expr}, env, "")
	if err != nil {
		return nil, err
	}
	if !result.Success() {
		return nil, zerr.With(
			zerr.With(domain.ErrToolInvocationFailed, "exit_code", result.ExitCode),
			"dependency", dependency,
		)
	}

	includeDir := strings.TrimSpace(result.Stdout)
	if includeDir == "" {
		// Installed package without a native include directory.
		return nil, nil
	}
	return domain.ArgumentSet{"-I" + includeDir}, nil
}

// DryRunSharedLib simulates compiling srcPath into a shared object with the
// project's native build. The dry run executes in the directory containing
// srcPath, which is where make resolves relative include paths.
func (t *Tool) DryRunSharedLib(ctx context.Context, env []string, srcPath string) (domain.ProcessResult, error) {
	args := []string{"CMD", "SHLIB", "--dry-run", filepath.Base(srcPath)}
	return t.runner.Run(ctx, t.rBin, args, env, filepath.Dir(srcPath))
}

// DryRunSourceCpp simulates building one annotated standalone file. The
// dryRun flag makes sourceCpp show, but not execute, its underlying compile
// command.
func (t *Tool) DryRunSourceCpp(ctx context.Context, env []string, srcPath string) (domain.ProcessResult, error) {
	expr := fmt.Sprintf("Rcpp::sourceCpp('%s', showOutput = TRUE, dryRun = TRUE)", rQuote(srcPath))
	return t.runner.Run(ctx, t.rscript, []string{"--vanilla", "-e", expr}, env, "")
}

// rQuote escapes a string for interpolation into a single-quoted R literal.
func rQuote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `'`, `\'`)
}

// Package probe drives throwaway simulated builds against the native build
// tool to recover the compiler command line it would use.
package probe

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/rcdb/internal/core/domain"
	"go.trai.ch/rcdb/internal/core/ports"
	"go.trai.ch/rcdb/internal/engine/dryrun"
	"go.trai.ch/zerr"
)

// probeSource is a trivially-compilable translation unit. The dry run never
// compiles it; it only has to be a plausible input for the build tool.
const probeSource = "void foo() {}\n"

// Prober recovers shared-library compile arguments by dry-running the native
// build against a disposable source file.
type Prober struct {
	tool   ports.BuildTool
	parser dryrun.Parser
}

// NewProber creates a new Prober.
func NewProber(tool ports.BuildTool, parser dryrun.Parser) *Prober {
	return &Prober{
		tool:   tool,
		parser: parser,
	}
}

// SharedLibArgs writes a disposable source file into dir, dry-runs the
// native "compile a shared object" build against it, and returns the flags
// scraped from the simulated compile line. The probe file is removed on
// every path, so no build artifacts leak into the project tree.
func (p *Prober) SharedLibArgs(ctx context.Context, env []string, dir string) (domain.ArgumentSet, error) {
	name := fmt.Sprintf("rcdb-%d.cpp", time.Now().UnixNano())
	probePath := filepath.Join(dir, name)

	if err := os.WriteFile(probePath, []byte(probeSource), domain.FilePerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrProbeWriteFailed.Error()), "path", probePath)
	}
	defer os.Remove(probePath) //nolint:errcheck // Best effort cleanup

	result, err := p.tool.DryRunSharedLib(ctx, env, probePath)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrToolInvocationFailed.Error()), "path", probePath)
	}
	if !result.Success() {
		return nil, zerr.With(
			zerr.With(domain.ErrToolInvocationFailed, "exit_code", result.ExitCode),
			"stderr", result.Stderr,
		)
	}

	args := p.parser.ExtractFlags(name, result.Output())
	if args.Empty() {
		return nil, zerr.With(domain.ErrNoCompileLine, "path", probePath)
	}
	return args, nil
}

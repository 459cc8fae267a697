// Package clang adapts a clang binary as the indexing front end. The
// resolver consumes it for base toolchain arguments, toolchain version
// identification, and precompiled-header production; full semantic indexing
// happens downstream and is out of scope here.
package clang

import (
	"context"
	"os"
	"regexp"
	"strings"
	"sync"

	"go.trai.ch/rcdb/internal/core/domain"
	"go.trai.ch/rcdb/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SourceIndex = (*Index)(nil)

// versionPattern extracts the version number from "clang version X.Y.Z".
var versionPattern = regexp.MustCompile(`version\s+([0-9][0-9a-zA-Z.\-]*)`)

// Index implements ports.SourceIndex by driving a clang binary.
type Index struct {
	runner ports.Runner
	bin    string

	versionOnce sync.Once
	version     string
	versionErr  error
}

// NewIndex creates a new Index around the configured compiler binary.
func NewIndex(runner ports.Runner, cfg *domain.Config) *Index {
	return &Index{
		runner: runner,
		bin:    cfg.ClangBin,
	}
}

// CompileArgs returns the base toolchain arguments every parse starts
// from. With pch set, the arguments additionally enable the detailed
// preprocessing record that precompiled-header consumers rely on.
func (i *Index) CompileArgs(pch bool) domain.ArgumentSet {
	args := domain.ArgumentSet{"-Qunused-arguments", "-Wno-unknown-pragmas"}
	if pch {
		args = args.Append("-Xclang", "-detailed-preprocessing-record")
	}
	return args
}

// Version identifies the front end toolchain version. The result is cached
// for the process lifetime; the binary does not change underneath a
// session.
func (i *Index) Version(ctx context.Context) (string, error) {
	i.versionOnce.Do(func() {
		result, err := i.runner.Run(ctx, i.bin, []string{"--version"}, nil, "")
		if err != nil {
			i.versionErr = err
			return
		}
		if !result.Success() {
			i.versionErr = zerr.With(domain.ErrToolInvocationFailed, "exit_code", result.ExitCode)
			return
		}
		if m := versionPattern.FindStringSubmatch(result.Stdout); m != nil {
			i.version = m[1]
			return
		}
		i.version = strings.TrimSpace(firstLine(result.Stdout))
	})
	return i.version, i.versionErr
}

// ParseForSerialization parses srcPath for serialization only. The heavy
// lifting is deferred to Save, which emits the precompiled header in one
// compiler invocation; parse failures therefore surface when the artifact
// is written.
func (i *Index) ParseForSerialization(ctx context.Context, srcPath string, args domain.ArgumentSet) (ports.ParseContext, error) {
	if _, err := os.Stat(srcPath); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrParseFailed.Error()), "path", srcPath)
	}
	return &parseContext{
		ctx:    ctx,
		runner: i.runner,
		bin:    i.bin,
		src:    srcPath,
		args:   args,
	}, nil
}

type parseContext struct {
	ctx    context.Context
	runner ports.Runner
	bin    string
	src    string
	args   domain.ArgumentSet
}

// Save serializes the parse context as a precompiled header at path. The
// generator translation unit is a bare include of the dependency header, so
// it is precompiled in header mode.
func (p *parseContext) Save(path string) error {
	args := domain.ArgumentSet{"-x", "c++-header"}
	args = append(args, p.args...)
	args = append(args, p.src, "-o", path)
	result, err := p.runner.Run(p.ctx, p.bin, args, nil, "")
	if err != nil {
		return zerr.Wrap(err, domain.ErrSaveFailed.Error())
	}
	if !result.Success() {
		return zerr.With(
			zerr.With(domain.ErrSaveFailed, "exit_code", result.ExitCode),
			"stderr", result.Stderr,
		)
	}
	return nil
}

// Dispose releases the parse context. The subprocess-backed implementation
// holds no resources.
func (p *parseContext) Dispose() {}

func firstLine(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		return s[:idx]
	}
	return s
}

// Package resolver computes compiler arguments for translation units.
//
// A translation unit is either a member of the active package project, in
// which case its arguments come from a dry run of the package's native
// build, or a free-standing annotated source file resolved through the
// single-file build driver. Results are cached against fingerprints so
// repeated lookups spawn no external processes.
package resolver

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"go.trai.ch/rcdb/internal/core/domain"
	"go.trai.ch/rcdb/internal/core/ports"
	"go.trai.ch/rcdb/internal/engine/dryrun"
	"go.trai.ch/rcdb/internal/engine/pch"
	"go.trai.ch/rcdb/internal/engine/probe"
)

// Database resolves and caches compile arguments for translation units. It
// owns the package cache slot and the standalone cache map; construct a
// fresh Database per session for clean isolation.
type Database struct {
	logger  ports.Logger
	project ports.Project
	tool    ports.BuildTool
	index   ports.SourceIndex
	locator ports.ToolchainLocator
	parser  dryrun.Parser
	prober  *probe.Prober
	headers *pch.Manager

	mu      sync.Mutex
	pkg     domain.PackageEntry
	sources map[string]domain.SourceEntry
}

// NewDatabase creates a new Database.
func NewDatabase(
	logger ports.Logger,
	project ports.Project,
	tool ports.BuildTool,
	index ports.SourceIndex,
	locator ports.ToolchainLocator,
	parser dryrun.Parser,
	prober *probe.Prober,
	headers *pch.Manager,
) *Database {
	return &Database{
		logger:  logger,
		project: project,
		tool:    tool,
		index:   index,
		locator: locator,
		parser:  parser,
		prober:  prober,
		headers: headers,
		sources: make(map[string]domain.SourceEntry),
	}
}

// Resolve returns the best-known compiler arguments for the translation
// unit at path, plus whether the base arguments were served from cache. An
// empty set is a normal outcome meaning "do not attempt a semantic parse".
func (d *Database) Resolve(ctx context.Context, path string) (domain.ArgumentSet, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	var (
		args      domain.ArgumentSet
		headerPkg string
		cached    bool
	)
	if d.isPackageMember(path) {
		args, headerPkg, cached = d.packageArgs(ctx)
	} else {
		args, cached = d.standaloneArgs(ctx, path)
		if !args.Empty() {
			headerPkg = rcppPackage
		}
	}

	if args.Empty() {
		return nil, cached
	}

	if headerPkg != "" && isCppFile(path) {
		pchArgs := d.headers.HeaderArgs(ctx, headerPkg, args.StdFlag())
		args = args.Append(pchArgs...)
		return args, cached
	}

	return args.Clone(), cached
}

// TranslationUnits lists the source files currently known to belong to the
// active project. Non-package projects have none.
func (d *Database) TranslationUnits() []string {
	if d.project.Type() != domain.BuildTypePackage {
		return nil
	}

	srcDir := domain.SrcPath(d.project.Dir())
	entries, err := os.ReadDir(srcDir)
	if err != nil {
		d.logger.Error(err)
		return nil
	}

	var units []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if isTranslationUnit(name) {
			units = append(units, filepath.Join(srcDir, name))
		}
	}
	sort.Strings(units)
	return units
}

// isPackageMember reports whether path is a native source file of the
// active package project.
func (d *Database) isPackageMember(path string) bool {
	if d.project.Type() != domain.BuildTypePackage {
		return false
	}
	rel, err := filepath.Rel(domain.SrcPath(d.project.Dir()), path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func isCppFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".cc", ".cpp":
		return true
	default:
		return false
	}
}

func isTranslationUnit(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".c", ".cc", ".cpp", ".m", ".mm":
		return true
	default:
		return false
	}
}

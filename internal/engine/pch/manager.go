// Package pch manages the on-disk precompiled-header cache.
//
// Artifacts live under <cacheDir>/precompiled/<dependency>/<platformDir>/,
// where platformDir encodes the platform and front-end toolchain version.
// For a given dependency only artifacts matching the current platform key
// are retained: stale-key siblings are deleted eagerly, which bounds storage
// to one generation per dependency (an artifact can run to tens of
// megabytes).
package pch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"go.trai.ch/rcdb/internal/core/domain"
	"go.trai.ch/rcdb/internal/core/ports"
	"go.trai.ch/rcdb/internal/engine/probe"
	"go.trai.ch/zerr"
)

// Manager produces, stores, and invalidates precompiled-header artifacts.
type Manager struct {
	logger   ports.Logger
	tool     ports.BuildTool
	index    ports.SourceIndex
	locator  ports.ToolchainLocator
	prober   *probe.Prober
	cacheDir string
}

// NewManager creates a new Manager rooted at cfg.CacheDir.
func NewManager(
	logger ports.Logger,
	tool ports.BuildTool,
	index ports.SourceIndex,
	locator ports.ToolchainLocator,
	prober *probe.Prober,
	cfg *domain.Config,
) *Manager {
	return &Manager{
		logger:   logger,
		tool:     tool,
		index:    index,
		locator:  locator,
		prober:   prober,
		cacheDir: cfg.CacheDir,
	}
}

// HeaderArgs returns the two-flag precompiled-header argument pair for the
// given dependency, generating the artifact first if it is absent. Any
// failure is logged and yields an empty set; nothing partial is cached, so
// generation is retried on the next lookup.
func (m *Manager) HeaderArgs(ctx context.Context, dependency, stdFlag string) domain.ArgumentSet {
	version, err := m.index.Version(ctx)
	if err != nil {
		m.logger.Error(zerr.Wrap(err, "failed to identify front end version"))
		return nil
	}

	platformPath, err := m.preparePlatformDir(dependency, version)
	if err != nil {
		m.logger.Error(err)
		return nil
	}

	pchPath := filepath.Join(platformPath, dependency+stdFlag+".pch")
	if _, err := os.Stat(pchPath); err != nil {
		if err := m.generate(ctx, dependency, stdFlag, platformPath, pchPath); err != nil {
			m.logger.Error(err)
			return nil
		}
	}

	return domain.ArgumentSet{"-include-pch", pchPath}
}

// preparePlatformDir ensures the platform/toolchain-version directory exists
// beneath the dependency's cache root. A missing directory means the cached
// generation is stale: the entire root for this dependency is deleted before
// the new directory is created.
func (m *Manager) preparePlatformDir(dependency, version string) (string, error) {
	root := domain.PrecompiledRoot(m.cacheDir, dependency)
	platformPath := filepath.Join(root, platformDir(version))

	if _, err := os.Stat(platformPath); err == nil {
		return platformPath, nil
	}

	if err := os.RemoveAll(root); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrCacheDirFailed.Error()), "path", root)
	}
	if err := os.MkdirAll(platformPath, domain.DirPerm); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrCacheDirFailed.Error()), "path", platformPath)
	}
	return platformPath, nil
}

func (m *Manager) generate(ctx context.Context, dependency, stdFlag, platformPath, pchPath string) error {
	// Generator translation unit: a single include of the dependency's
	// primary header.
	cppPath := filepath.Join(platformPath, dependency+stdFlag+".cpp")
	contents := fmt.Sprintf("#include <%s.h>\n", dependency)
	if err := os.WriteFile(cppPath, []byte(contents), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrProbeWriteFailed.Error()), "path", cppPath)
	}

	args := m.index.CompileArgs(true)
	if stdFlag != "" {
		args = args.Append(stdFlag)
	}

	env := probe.Environment(m.locator)

	// The package build's simulated compile line supplies the flags the
	// native toolchain would use; run the probe in a scratch directory so
	// no project build configuration interferes.
	scratch, err := os.MkdirTemp("", "rcdb-pch")
	if err != nil {
		return zerr.Wrap(err, domain.ErrCacheDirFailed.Error())
	}
	defer os.RemoveAll(scratch) //nolint:errcheck // Best effort cleanup

	if probeArgs, err := m.prober.SharedLibArgs(ctx, env, scratch); err != nil {
		m.logger.Warn("shared library probe failed, generating without native build flags: " + err.Error())
	} else {
		args = args.Append(probeArgs...)
	}

	if includes, err := m.tool.IncludesFor(ctx, env, dependency); err != nil {
		m.logger.Warn("failed to resolve includes for " + dependency + ": " + err.Error())
	} else {
		args = args.Append(includes...)
	}

	tu, err := m.index.ParseForSerialization(ctx, cppPath, args)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrParseFailed.Error()), "path", cppPath)
	}
	defer tu.Dispose()

	if err := tu.Save(pchPath); err != nil {
		// Leave no partial artifact behind; the next lookup regenerates.
		_ = os.Remove(pchPath)
		return zerr.With(zerr.Wrap(err, domain.ErrSaveFailed.Error()), "path", pchPath)
	}
	return nil
}

// platformDir derives the platform/toolchain generation directory name.
func platformDir(version string) string {
	name := runtime.GOOS + "-" + runtime.GOARCH + "-" + version
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, name)
}

//go:build windows

package toolchain

import (
	"os"
	"path/filepath"
	"sort"

	"go.trai.ch/rcdb/internal/core/domain"
	"go.trai.ch/rcdb/internal/core/ports"
)

var _ ports.ToolchainLocator = (*rtoolsLocator)(nil)

// rtoolsRoots are the conventional Rtools install locations, newest
// generation first.
var rtoolsRoots = []string{
	`C:\rtools45`,
	`C:\rtools44`,
	`C:\rtools43`,
	`C:\rtools42`,
	`C:\Rtools`,
}

type rtoolsLocator struct{}

func newPlatformLocator() ports.ToolchainLocator {
	return &rtoolsLocator{}
}

// Locate scans for the most recent compatible Rtools installation and
// returns its system include and bin directories. RTOOLS_HOME overrides the
// conventional install locations.
func (l *rtoolsLocator) Locate() (domain.Toolchain, bool) {
	roots := rtoolsRoots
	if home := os.Getenv("RTOOLS_HOME"); home != "" {
		roots = append([]string{home}, roots...)
	}

	for _, root := range roots {
		tc, ok := inspectRoot(root)
		if ok {
			return tc, true
		}
	}
	return domain.Toolchain{}, false
}

// inspectRoot checks one candidate install root for a mingw toolchain and
// collects its include and bin directories.
func inspectRoot(root string) (domain.Toolchain, bool) {
	matches, err := filepath.Glob(filepath.Join(root, "*mingw*"))
	if err != nil || len(matches) == 0 {
		return domain.Toolchain{}, false
	}
	// Prefer the lexically last match: 64-bit toolchains sort after 32-bit.
	sort.Strings(matches)
	mingw := matches[len(matches)-1]

	includeDir := filepath.Join(mingw, "include")
	if _, err := os.Stat(includeDir); err != nil {
		return domain.Toolchain{}, false
	}

	tc := domain.Toolchain{
		IncludeArgs: domain.ArgumentSet{"-I" + includeDir},
	}
	if cppDirs, err := filepath.Glob(filepath.Join(mingw, "include", "c++", "*")); err == nil {
		sort.Strings(cppDirs)
		for _, dir := range cppDirs {
			tc.IncludeArgs = append(tc.IncludeArgs, "-I"+dir)
		}
	}
	if binDir := filepath.Join(mingw, "bin"); dirExists(binDir) {
		tc.BinDirs = append(tc.BinDirs, binDir)
	}
	if usrBin := filepath.Join(root, "usr", "bin"); dirExists(usrBin) {
		tc.BinDirs = append(tc.BinDirs, usrBin)
	}
	return tc, true
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

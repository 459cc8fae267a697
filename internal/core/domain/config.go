package domain

import (
	"os"
	"path/filepath"
)

// Config holds the tool configuration loaded from rcdb.yaml.
type Config struct {
	// ProjectDir is the project root. Defaults to the working directory.
	ProjectDir string
	// RBin is the R front-end binary used for dry-run builds.
	RBin string
	// RScriptBin is the Rscript binary used for one-liner queries.
	RScriptBin string
	// ClangBin is the front-end compiler binary used for PCH generation.
	ClangBin string
	// CacheDir is the root for persisted precompiled-header artifacts.
	CacheDir string
	// WarmJobs bounds the parallelism of the pre-warm operation.
	WarmJobs int
}

// DefaultConfig returns the configuration used when no rcdb.yaml is present.
func DefaultConfig(cwd string) *Config {
	cacheDir := filepath.Join(cwd, ".rcdb")
	if userCache, err := os.UserCacheDir(); err == nil {
		cacheDir = filepath.Join(userCache, "rcdb")
	}
	return &Config{
		ProjectDir: cwd,
		RBin:       "R",
		RScriptBin: "Rscript",
		ClangBin:   "clang++",
		CacheDir:   cacheDir,
		WarmJobs:   4,
	}
}

package domain

import "go.trai.ch/zerr"

var (
	// ErrNotPackageProject is returned when a package-level operation is
	// requested for a project that is not an R package.
	ErrNotPackageProject = zerr.New("project is not a package")

	// ErrManifestReadFailed is returned when the package DESCRIPTION file
	// cannot be read or parsed.
	ErrManifestReadFailed = zerr.New("failed to read package manifest")

	// ErrToolInvocationFailed is returned when an external build tool cannot
	// be spawned or exits with a non-zero status.
	ErrToolInvocationFailed = zerr.New("build tool invocation failed")

	// ErrNoCompileLine is returned when a dry-run log contains no usable
	// compile invocation for the probe source file.
	ErrNoCompileLine = zerr.New("no compile line found in dry-run output")

	// ErrParseFailed is returned when the source index cannot parse a
	// translation unit for serialization.
	ErrParseFailed = zerr.New("failed to parse translation unit")

	// ErrSaveFailed is returned when a parsed translation unit cannot be
	// serialized to disk.
	ErrSaveFailed = zerr.New("failed to save translation unit")

	// ErrCacheDirFailed is returned when a precompiled-header cache
	// directory cannot be created or removed.
	ErrCacheDirFailed = zerr.New("failed to prepare precompiled header cache directory")

	// ErrProbeWriteFailed is returned when the throwaway dry-run probe
	// source file cannot be written.
	ErrProbeWriteFailed = zerr.New("failed to write probe source file")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")
)

package domain

import "path/filepath"

const (
	// ManifestFileName is the name of the package manifest file.
	ManifestFileName = "DESCRIPTION"

	// SrcDirName is the name of the native source directory inside a package.
	SrcDirName = "src"

	// MakevarsFileName is the name of the per-package build configuration file.
	MakevarsFileName = "Makevars"

	// MakevarsWinFileName is the Windows variant of the build configuration file.
	MakevarsWinFileName = "Makevars.win"

	// PrecompiledDirName is the directory beneath the cache root that holds
	// precompiled header artifacts, one subdirectory per dependency.
	PrecompiledDirName = "precompiled"

	// ConfigFileName is the name of the tool configuration file.
	ConfigFileName = "rcdb.yaml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// ManifestPath returns the path of the manifest file for a package directory.
func ManifestPath(pkgDir string) string {
	return filepath.Join(pkgDir, ManifestFileName)
}

// SrcPath returns the native source directory for a package directory.
func SrcPath(pkgDir string) string {
	return filepath.Join(pkgDir, SrcDirName)
}

// PrecompiledRoot returns the cache root directory for one dependency's
// precompiled headers.
func PrecompiledRoot(cacheDir, dependency string) string {
	return filepath.Join(cacheDir, PrecompiledDirName, dependency)
}

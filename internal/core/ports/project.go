package ports

import "go.trai.ch/rcdb/internal/core/domain"

// Project exposes metadata about the active project.
//
//go:generate mockgen -source=project.go -destination=mocks/mock_project.go -package=mocks
type Project interface {
	// Dir returns the absolute path of the project build target directory.
	Dir() string

	// Type returns the declared build type of the project.
	Type() domain.BuildType

	// Manifest reads the package manifest. It returns
	// domain.ErrNotPackageProject for non-package projects.
	Manifest() (domain.Manifest, error)
}

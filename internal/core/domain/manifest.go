package domain

// BuildType identifies how the active project is built.
type BuildType string

const (
	// BuildTypeNone indicates a project without a recognized native build.
	BuildTypeNone BuildType = "none"
	// BuildTypePackage indicates an R package project built with R CMD SHLIB.
	BuildTypePackage BuildType = "package"
)

// Manifest holds the build-relevant fields of a package DESCRIPTION file.
type Manifest struct {
	// Package is the declared package name.
	Package string
	// LinkingTo lists the packages whose headers this package compiles
	// against, with any version constraints stripped.
	LinkingTo []string
	// SystemRequirements is the free-text system requirements field.
	SystemRequirements string
}

// HasLinkingTo reports whether the manifest declares the given dependency.
func (m Manifest) HasLinkingTo(name string) bool {
	for _, dep := range m.LinkingTo {
		if dep == name {
			return true
		}
	}
	return false
}

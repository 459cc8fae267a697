// Package project provides the project metadata adapter. It detects R
// package projects by their DESCRIPTION manifest and parses the build
// relevant fields out of it.
package project

import (
	"errors"
	"io/fs"
	"os"
	"regexp"
	"strings"

	"go.trai.ch/rcdb/internal/core/domain"
	"go.trai.ch/rcdb/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Project = (*Context)(nil)

// versionConstraint strips "(>= 1.2.3)" style suffixes from LinkingTo
// entries.
var versionConstraint = regexp.MustCompile(`\s*\(.*?\)\s*$`)

// Context implements ports.Project for a directory on disk.
type Context struct {
	dir string
}

// New creates a project context rooted at cfg.ProjectDir.
func New(cfg *domain.Config) *Context {
	return &Context{dir: cfg.ProjectDir}
}

// Dir returns the project build target directory.
func (c *Context) Dir() string {
	return c.dir
}

// Type reports whether the project is a buildable package. A directory is a
// package project when its DESCRIPTION declares a package name.
func (c *Context) Type() domain.BuildType {
	manifest, err := c.Manifest()
	if err != nil || manifest.Package == "" {
		return domain.BuildTypeNone
	}
	return domain.BuildTypePackage
}

// Manifest reads and parses the DESCRIPTION file. A directory without one
// is not a package project.
func (c *Context) Manifest() (domain.Manifest, error) {
	data, err := os.ReadFile(domain.ManifestPath(c.dir)) //nolint:gosec // Path is rooted at the project dir
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.Manifest{}, zerr.With(domain.ErrNotPackageProject, "dir", c.dir)
		}
		return domain.Manifest{}, zerr.With(
			zerr.Wrap(err, domain.ErrManifestReadFailed.Error()),
			"path", domain.ManifestPath(c.dir),
		)
	}

	fields := parseDCF(string(data))
	return domain.Manifest{
		Package:            fields["Package"],
		LinkingTo:          splitLinkingTo(fields["LinkingTo"]),
		SystemRequirements: fields["SystemRequirements"],
	}, nil
}

// parseDCF parses the Debian-control-file format used by DESCRIPTION:
// "Field: value" records, values continued on indented lines.
func parseDCF(contents string) map[string]string {
	fields := make(map[string]string)
	var current string

	for _, line := range strings.Split(contents, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			current = ""
			continue
		}

		// Continuation lines start with whitespace.
		if line[0] == ' ' || line[0] == '\t' {
			if current != "" {
				fields[current] += " " + strings.TrimSpace(line)
			}
			continue
		}

		name, value, found := strings.Cut(line, ":")
		if !found {
			current = ""
			continue
		}
		current = strings.TrimSpace(name)
		fields[current] = strings.TrimSpace(value)
	}
	return fields
}

// splitLinkingTo splits a comma-separated LinkingTo field and strips
// version constraints.
func splitLinkingTo(value string) []string {
	if value == "" {
		return nil
	}
	var deps []string
	for _, part := range strings.Split(value, ",") {
		dep := versionConstraint.ReplaceAllString(strings.TrimSpace(part), "")
		if dep != "" {
			deps = append(deps, dep)
		}
	}
	return deps
}

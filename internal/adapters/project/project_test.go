package project_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rcdb/internal/adapters/project"
	"go.trai.ch/rcdb/internal/core/domain"
)

func newContext(t *testing.T, manifest string) *project.Context {
	t.Helper()
	dir := t.TempDir()
	if manifest != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, domain.ManifestFileName), []byte(manifest), domain.FilePerm))
	}
	return project.New(&domain.Config{ProjectDir: dir})
}

func TestManifest(t *testing.T) {
	ctx := newContext(t, `Package: testpkg
Version: 1.0.0
LinkingTo: Rcpp (>= 1.0.11), BH,
 RcppArmadillo (>= 0.12)
SystemRequirements: C++11
`)

	manifest, err := ctx.Manifest()
	require.NoError(t, err)

	assert.Equal(t, "testpkg", manifest.Package)
	assert.Equal(t, []string{"Rcpp", "BH", "RcppArmadillo"}, manifest.LinkingTo)
	assert.Equal(t, "C++11", manifest.SystemRequirements)
	assert.True(t, manifest.HasLinkingTo("Rcpp"))
	assert.False(t, manifest.HasLinkingTo("Rcpp11"))
}

func TestManifest_Missing(t *testing.T) {
	ctx := newContext(t, "")

	_, err := ctx.Manifest()

	assert.ErrorIs(t, err, domain.ErrNotPackageProject)
}

func TestType(t *testing.T) {
	tests := []struct {
		name     string
		manifest string
		want     domain.BuildType
	}{
		{
			name:     "package project",
			manifest: "Package: testpkg\n",
			want:     domain.BuildTypePackage,
		},
		{
			name:     "manifest without package name",
			manifest: "Title: Not a package\n",
			want:     domain.BuildTypeNone,
		},
		{
			name:     "no manifest",
			manifest: "",
			want:     domain.BuildTypeNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, newContext(t, tt.manifest).Type())
		})
	}
}

func TestManifest_WindowsLineEndings(t *testing.T) {
	ctx := newContext(t, "Package: testpkg\r\nLinkingTo: Rcpp\r\n")

	manifest, err := ctx.Manifest()
	require.NoError(t, err)

	assert.Equal(t, "testpkg", manifest.Package)
	assert.Equal(t, []string{"Rcpp"}, manifest.LinkingTo)
}

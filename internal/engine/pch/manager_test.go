package pch_test

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rcdb/internal/core/domain"
	"go.trai.ch/rcdb/internal/core/ports/mocks"
	"go.trai.ch/rcdb/internal/engine/dryrun"
	"go.trai.ch/rcdb/internal/engine/pch"
	"go.trai.ch/rcdb/internal/engine/probe"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	logger  *mocks.MockLogger
	tool    *mocks.MockBuildTool
	index   *mocks.MockSourceIndex
	locator *mocks.MockToolchainLocator
	ctrl    *gomock.Controller
	manager *pch.Manager

	cacheDir string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		ctrl:     ctrl,
		logger:   mocks.NewMockLogger(ctrl),
		tool:     mocks.NewMockBuildTool(ctrl),
		index:    mocks.NewMockSourceIndex(ctrl),
		locator:  mocks.NewMockToolchainLocator(ctrl),
		cacheDir: t.TempDir(),
	}

	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	f.logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	f.logger.EXPECT().Error(gomock.Any()).AnyTimes()
	f.locator.EXPECT().Locate().Return(domain.Toolchain{}, false).AnyTimes()

	prober := probe.NewProber(f.tool, dryrun.NewParser())
	f.manager = pch.NewManager(f.logger, f.tool, f.index, f.locator, prober, &domain.Config{
		CacheDir: f.cacheDir,
	})
	return f
}

// platformDir mirrors the generation directory name for version "18.1.0".
func platformDir() string {
	return runtime.GOOS + "-" + runtime.GOARCH + "-18.1.0"
}

// expectGeneration wires the mocks for one full artifact generation.
func (f *fixture) expectGeneration(t *testing.T) {
	t.Helper()
	f.index.EXPECT().CompileArgs(true).Return(domain.ArgumentSet{"-Qunused-arguments"})
	f.tool.EXPECT().
		DryRunSharedLib(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ []string, srcPath string) (domain.ProcessResult, error) {
			name := filepath.Base(srcPath)
			stem := name[:len(name)-len(filepath.Ext(name))]
			return domain.ProcessResult{
				Stdout: "g++ -I/usr/lib/R/include -c " + name + " -o " + stem + ".o",
			}, nil
		})
	f.tool.EXPECT().
		IncludesFor(gomock.Any(), gomock.Any(), "Rcpp").
		Return(domain.ArgumentSet{"-I/opt/Rcpp/include"}, nil)

	tu := mocks.NewMockParseContext(f.ctrl)
	tu.EXPECT().Save(gomock.Any()).DoAndReturn(func(path string) error {
		return os.WriteFile(path, []byte("pch"), domain.FilePerm)
	})
	tu.EXPECT().Dispose()

	f.index.EXPECT().
		ParseForSerialization(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, srcPath string, args domain.ArgumentSet) (*mocks.MockParseContext, error) {
			assert.Contains(t, args, "-std=c++11")
			assert.Contains(t, args, "-I/usr/lib/R/include")
			assert.Contains(t, args, "-I/opt/Rcpp/include")

			// The generator unit is a bare include of the dependency header.
			data, err := os.ReadFile(srcPath)
			require.NoError(t, err)
			assert.Equal(t, "#include <Rcpp.h>\n", string(data))
			return tu, nil
		})
}

func TestHeaderArgs_GeneratesArtifact(t *testing.T) {
	f := newFixture(t)
	f.index.EXPECT().Version(gomock.Any()).Return("18.1.0", nil)
	f.expectGeneration(t)

	args := f.manager.HeaderArgs(context.Background(), "Rcpp", "-std=c++11")

	pchPath := filepath.Join(f.cacheDir, "precompiled", "Rcpp", platformDir(), "Rcpp-std=c++11.pch")
	assert.Equal(t, domain.ArgumentSet{"-include-pch", pchPath}, args)
	assert.FileExists(t, pchPath)
}

func TestHeaderArgs_ReusesExistingArtifact(t *testing.T) {
	f := newFixture(t)
	f.index.EXPECT().Version(gomock.Any()).Return("18.1.0", nil).Times(2)
	f.expectGeneration(t)

	ctx := context.Background()
	first := f.manager.HeaderArgs(ctx, "Rcpp", "-std=c++11")
	require.NotEmpty(t, first)

	// The artifact exists now; nothing is regenerated.
	second := f.manager.HeaderArgs(ctx, "Rcpp", "-std=c++11")
	assert.Equal(t, first, second)
}

func TestHeaderArgs_WipesStaleGeneration(t *testing.T) {
	f := newFixture(t)

	staleDir := filepath.Join(f.cacheDir, "precompiled", "Rcpp", "linux-amd64-17.0.0")
	require.NoError(t, os.MkdirAll(staleDir, domain.DirPerm))
	require.NoError(t, os.WriteFile(filepath.Join(staleDir, "Rcpp.pch"), []byte("old"), domain.FilePerm))

	f.index.EXPECT().Version(gomock.Any()).Return("18.1.0", nil)
	f.expectGeneration(t)

	f.manager.HeaderArgs(context.Background(), "Rcpp", "-std=c++11")

	assert.NoDirExists(t, staleDir, "stale platform generations must be deleted")
}

func TestHeaderArgs_SaveFailureLeavesNoArtifact(t *testing.T) {
	f := newFixture(t)
	f.index.EXPECT().Version(gomock.Any()).Return("18.1.0", nil)
	f.index.EXPECT().CompileArgs(true).Return(domain.ArgumentSet{"-Qunused-arguments"})
	f.tool.EXPECT().
		DryRunSharedLib(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.ProcessResult{ExitCode: 1}, nil)
	f.tool.EXPECT().
		IncludesFor(gomock.Any(), gomock.Any(), "Rcpp").
		Return(domain.ArgumentSet{"-I/opt/Rcpp/include"}, nil)

	tu := mocks.NewMockParseContext(f.ctrl)
	tu.EXPECT().Save(gomock.Any()).Return(domain.ErrSaveFailed)
	tu.EXPECT().Dispose()
	f.index.EXPECT().
		ParseForSerialization(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(tu, nil)

	args := f.manager.HeaderArgs(context.Background(), "Rcpp", "-std=c++11")

	assert.Nil(t, args)
	pchPath := filepath.Join(f.cacheDir, "precompiled", "Rcpp", platformDir(), "Rcpp-std=c++11.pch")
	assert.NoFileExists(t, pchPath)
}

func TestHeaderArgs_VersionFailure(t *testing.T) {
	f := newFixture(t)
	f.index.EXPECT().Version(gomock.Any()).Return("", domain.ErrToolInvocationFailed)

	args := f.manager.HeaderArgs(context.Background(), "Rcpp", "-std=c++11")

	assert.Nil(t, args)
}

package probe_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rcdb/internal/core/domain"
	"go.trai.ch/rcdb/internal/core/ports/mocks"
	"go.trai.ch/rcdb/internal/engine/dryrun"
	"go.trai.ch/rcdb/internal/engine/probe"
	"go.uber.org/mock/gomock"
)

func TestSharedLibArgs(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockTool := mocks.NewMockBuildTool(ctrl)

	dir := t.TempDir()

	mockTool.EXPECT().
		DryRunSharedLib(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ []string, srcPath string) (domain.ProcessResult, error) {
			// The probe file must exist while the dry run executes.
			_, err := os.Stat(srcPath)
			require.NoError(t, err)

			name := filepath.Base(srcPath)
			stem := name[:len(name)-len(filepath.Ext(name))]
			return domain.ProcessResult{
				Stdout: "cc -I/usr/lib/R/include -DNDEBUG -c " + name + " -o " + stem + ".o",
			}, nil
		})

	prober := probe.NewProber(mockTool, dryrun.NewParser())
	args, err := prober.SharedLibArgs(context.Background(), nil, dir)
	require.NoError(t, err)

	assert.Equal(t, domain.ArgumentSet{"-I/usr/lib/R/include", "-DNDEBUG"}, args)

	// The probe file is removed after the run.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSharedLibArgs_ToolFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockTool := mocks.NewMockBuildTool(ctrl)

	dir := t.TempDir()

	mockTool.EXPECT().
		DryRunSharedLib(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.ProcessResult{ExitCode: 1, Stderr: "no Makevars"}, nil)

	prober := probe.NewProber(mockTool, dryrun.NewParser())
	args, err := prober.SharedLibArgs(context.Background(), nil, dir)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrToolInvocationFailed)
	assert.Nil(t, args)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "probe file must be removed on failure too")
}

func TestSharedLibArgs_NoCompileLine(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockTool := mocks.NewMockBuildTool(ctrl)

	mockTool.EXPECT().
		DryRunSharedLib(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.ProcessResult{Stdout: "make: Nothing to be done for 'all'."}, nil)

	prober := probe.NewProber(mockTool, dryrun.NewParser())
	_, err := prober.SharedLibArgs(context.Background(), nil, t.TempDir())

	assert.ErrorIs(t, err, domain.ErrNoCompileLine)
}

func TestSharedLibArgs_UnwritableDir(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockTool := mocks.NewMockBuildTool(ctrl)

	prober := probe.NewProber(mockTool, dryrun.NewParser())
	_, err := prober.SharedLibArgs(context.Background(), nil, filepath.Join(t.TempDir(), "missing"))

	assert.ErrorIs(t, err, domain.ErrProbeWriteFailed)
}

func TestEnvironment_PrependsToolchainPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLocator := mocks.NewMockToolchainLocator(ctrl)
	mockLocator.EXPECT().Locate().Return(domain.Toolchain{
		BinDirs: []string{"/opt/rtools/bin"},
	}, true)

	t.Setenv("PATH", "/usr/bin")

	env := probe.Environment(mockLocator, "USE_CXX1X=1")

	assert.Contains(t, env, "PATH=/opt/rtools/bin"+string(os.PathListSeparator)+"/usr/bin")
	assert.Equal(t, "USE_CXX1X=1", env[len(env)-1])
}

func TestEnvironment_NoToolchain(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLocator := mocks.NewMockToolchainLocator(ctrl)
	mockLocator.EXPECT().Locate().Return(domain.Toolchain{}, false)

	t.Setenv("PATH", "/usr/bin")

	env := probe.Environment(mockLocator)

	assert.Contains(t, env, "PATH=/usr/bin")
}

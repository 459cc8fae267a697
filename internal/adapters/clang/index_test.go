package clang_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rcdb/internal/adapters/clang"
	"go.trai.ch/rcdb/internal/core/domain"
	"go.trai.ch/rcdb/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newIndex(t *testing.T) (*clang.Index, *mocks.MockRunner) {
	t.Helper()
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockRunner(ctrl)
	index := clang.NewIndex(runner, &domain.Config{ClangBin: "clang++"})
	return index, runner
}

func TestCompileArgs(t *testing.T) {
	index, _ := newIndex(t)

	assert.Equal(t, domain.ArgumentSet{
		"-Qunused-arguments",
		"-Wno-unknown-pragmas",
	}, index.CompileArgs(false))

	assert.Equal(t, domain.ArgumentSet{
		"-Qunused-arguments",
		"-Wno-unknown-pragmas",
		"-Xclang",
		"-detailed-preprocessing-record",
	}, index.CompileArgs(true))
}

func TestVersion(t *testing.T) {
	index, runner := newIndex(t)

	runner.EXPECT().
		Run(gomock.Any(), "clang++", []string{"--version"}, gomock.Nil(), "").
		Return(domain.ProcessResult{
			Stdout: "Ubuntu clang version 18.1.3 (1ubuntu1)\nTarget: x86_64-pc-linux-gnu\n",
		}, nil).
		Times(1)

	ctx := context.Background()
	version, err := index.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, "18.1.3", version)

	// Cached for the process lifetime.
	version, err = index.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, "18.1.3", version)
}

func TestVersion_UnparseableFallsBackToFirstLine(t *testing.T) {
	index, runner := newIndex(t)

	runner.EXPECT().
		Run(gomock.Any(), "clang++", []string{"--version"}, gomock.Nil(), "").
		Return(domain.ProcessResult{Stdout: "experimental toolchain\nmore\n"}, nil)

	version, err := index.Version(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "experimental toolchain", version)
}

func TestVersion_NonZeroExit(t *testing.T) {
	index, runner := newIndex(t)

	runner.EXPECT().
		Run(gomock.Any(), "clang++", []string{"--version"}, gomock.Nil(), "").
		Return(domain.ProcessResult{ExitCode: 1}, nil)

	_, err := index.Version(context.Background())

	assert.ErrorIs(t, err, domain.ErrToolInvocationFailed)
}

func TestParseForSerialization_Save(t *testing.T) {
	index, runner := newIndex(t)

	src := filepath.Join(t.TempDir(), "Rcpp-std=c++11.cpp")
	require.NoError(t, os.WriteFile(src, []byte("#include <Rcpp.h>\n"), domain.FilePerm))
	out := filepath.Join(t.TempDir(), "Rcpp-std=c++11.pch")

	runner.EXPECT().
		Run(gomock.Any(), "clang++",
			[]string{"-x", "c++-header", "-I/opt/Rcpp/include", "-std=c++11", src, "-o", out},
			gomock.Nil(), "").
		Return(domain.ProcessResult{}, nil)

	tu, err := index.ParseForSerialization(context.Background(), src, domain.ArgumentSet{"-I/opt/Rcpp/include", "-std=c++11"})
	require.NoError(t, err)
	defer tu.Dispose()

	assert.NoError(t, tu.Save(out))
}

func TestParseForSerialization_MissingSource(t *testing.T) {
	index, _ := newIndex(t)

	_, err := index.ParseForSerialization(context.Background(), filepath.Join(t.TempDir(), "missing.cpp"), nil)

	assert.ErrorIs(t, err, domain.ErrParseFailed)
}

func TestSave_CompilerFailure(t *testing.T) {
	index, runner := newIndex(t)

	src := filepath.Join(t.TempDir(), "gen.cpp")
	require.NoError(t, os.WriteFile(src, []byte("#include <Rcpp.h>\n"), domain.FilePerm))

	runner.EXPECT().
		Run(gomock.Any(), "clang++", gomock.Any(), gomock.Nil(), "").
		Return(domain.ProcessResult{ExitCode: 1, Stderr: "fatal error: 'Rcpp.h' file not found"}, nil)

	tu, err := index.ParseForSerialization(context.Background(), src, nil)
	require.NoError(t, err)
	defer tu.Dispose()

	assert.ErrorIs(t, tu.Save(filepath.Join(t.TempDir(), "gen.pch")), domain.ErrSaveFailed)
}

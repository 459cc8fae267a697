package rcmd_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rcdb/internal/adapters/rcmd"
	"go.trai.ch/rcdb/internal/core/domain"
	"go.trai.ch/rcdb/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newTool(t *testing.T) (*rcmd.Tool, *mocks.MockRunner) {
	t.Helper()
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockRunner(ctrl)
	tool := rcmd.NewTool(runner, &domain.Config{RBin: "R", RScriptBin: "Rscript"})
	return tool, runner
}

func TestIncludesFor(t *testing.T) {
	tool, runner := newTool(t)

	runner.EXPECT().
		Run(gomock.Any(), "Rscript",
			[]string{"--vanilla", "-e", "cat(system.file('include', package='Rcpp'))"},
			gomock.Nil(), "").
		Return(domain.ProcessResult{Stdout: "/opt/R/library/Rcpp/include\n"}, nil)

	args, err := tool.IncludesFor(context.Background(), nil, "Rcpp")
	require.NoError(t, err)

	assert.Equal(t, domain.ArgumentSet{"-I/opt/R/library/Rcpp/include"}, args)
}

func TestIncludesFor_NoIncludeDir(t *testing.T) {
	tool, runner := newTool(t)

	runner.EXPECT().
		Run(gomock.Any(), "Rscript", gomock.Any(), gomock.Any(), "").
		Return(domain.ProcessResult{Stdout: ""}, nil)

	args, err := tool.IncludesFor(context.Background(), nil, "base")
	require.NoError(t, err)

	assert.Nil(t, args)
}

func TestIncludesFor_NonZeroExit(t *testing.T) {
	tool, runner := newTool(t)

	runner.EXPECT().
		Run(gomock.Any(), "Rscript", gomock.Any(), gomock.Any(), "").
		Return(domain.ProcessResult{ExitCode: 1, Stderr: "Error: unexpected input"}, nil)

	_, err := tool.IncludesFor(context.Background(), nil, "Rcpp")

	assert.ErrorIs(t, err, domain.ErrToolInvocationFailed)
}

func TestDryRunSharedLib(t *testing.T) {
	tool, runner := newTool(t)

	env := []string{"USE_CXX1X=1"}
	runner.EXPECT().
		Run(gomock.Any(), "R", []string{"CMD", "SHLIB", "--dry-run", "probe.cpp"}, env, "/tmp/pkg/src").
		Return(domain.ProcessResult{Stdout: "make output"}, nil)

	result, err := tool.DryRunSharedLib(context.Background(), env, "/tmp/pkg/src/probe.cpp")
	require.NoError(t, err)

	assert.Equal(t, "make output", result.Stdout)
}

func TestDryRunSourceCpp(t *testing.T) {
	tool, runner := newTool(t)

	runner.EXPECT().
		Run(gomock.Any(), "Rscript",
			[]string{"--vanilla", "-e", "Rcpp::sourceCpp('/tmp/kernel.cpp', showOutput = TRUE, dryRun = TRUE)"},
			gomock.Nil(), "").
		Return(domain.ProcessResult{Stdout: "g++ -c kernel.cpp -o kernel.o"}, nil)

	result, err := tool.DryRunSourceCpp(context.Background(), nil, "/tmp/kernel.cpp")
	require.NoError(t, err)

	assert.True(t, result.Success())
}

func TestDryRunSourceCpp_QuotesPath(t *testing.T) {
	tool, runner := newTool(t)

	runner.EXPECT().
		Run(gomock.Any(), "Rscript",
			[]string{"--vanilla", "-e", `Rcpp::sourceCpp('/tmp/o\'brien.cpp', showOutput = TRUE, dryRun = TRUE)`},
			gomock.Nil(), "").
		Return(domain.ProcessResult{}, nil)

	_, err := tool.DryRunSourceCpp(context.Background(), nil, "/tmp/o'brien.cpp")

	assert.NoError(t, err)
}

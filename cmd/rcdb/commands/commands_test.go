package commands_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rcdb/cmd/rcdb/commands"
	"go.trai.ch/rcdb/internal/app"
	"go.trai.ch/rcdb/internal/build"
	"go.trai.ch/rcdb/internal/core/domain"
	"go.trai.ch/rcdb/internal/core/ports/mocks"
	"go.trai.ch/rcdb/internal/engine/dryrun"
	"go.trai.ch/rcdb/internal/engine/pch"
	"go.trai.ch/rcdb/internal/engine/probe"
	"go.trai.ch/rcdb/internal/engine/resolver"
	"go.uber.org/mock/gomock"
)

// newCLI builds a CLI over a package project with one translation unit.
func newCLI(t *testing.T) (*commands.CLI, *bytes.Buffer, string) {
	t.Helper()
	ctrl := gomock.NewController(t)

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	logger.EXPECT().Error(gomock.Any()).AnyTimes()

	pkgDir := t.TempDir()
	srcDir := domain.SrcPath(pkgDir)
	require.NoError(t, os.Mkdir(srcDir, domain.DirPerm))
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "foo.c"), []byte("void f() {}\n"), domain.FilePerm))

	project := mocks.NewMockProject(ctrl)
	project.EXPECT().Type().Return(domain.BuildTypePackage).AnyTimes()
	project.EXPECT().Dir().Return(pkgDir).AnyTimes()

	tool := mocks.NewMockBuildTool(ctrl)
	index := mocks.NewMockSourceIndex(ctrl)
	locator := mocks.NewMockToolchainLocator(ctrl)
	telemetry := mocks.NewMockTelemetry(ctrl)

	cfg := &domain.Config{
		ProjectDir: pkgDir,
		CacheDir:   filepath.Join(t.TempDir(), "cache"),
		WarmJobs:   1,
	}

	parser := dryrun.NewParser()
	prober := probe.NewProber(tool, parser)
	headers := pch.NewManager(logger, tool, index, locator, prober, cfg)
	db := resolver.NewDatabase(logger, project, tool, index, locator, parser, prober, headers)
	a := app.New(logger, db, telemetry, cfg)

	cli := commands.New(a)
	out := &bytes.Buffer{}
	cli.SetOutput(out)
	return cli, out, srcDir
}

func TestVersionCommand(t *testing.T) {
	cli, out, _ := newCLI(t)
	cli.SetArgs([]string{"version"})

	require.NoError(t, cli.Execute(context.Background()))

	assert.Equal(t, "rcdb version "+build.Version+"\n", out.String())
}

func TestUnitsCommand(t *testing.T) {
	cli, out, srcDir := newCLI(t)
	cli.SetArgs([]string{"units"})

	require.NoError(t, cli.Execute(context.Background()))

	assert.Equal(t, filepath.Join(srcDir, "foo.c")+"\n", out.String())
}

func TestArgsCommand_RequiresFile(t *testing.T) {
	cli, _, _ := newCLI(t)
	cli.SetArgs([]string{"args"})

	assert.Error(t, cli.Execute(context.Background()))
}

func TestUnknownCommand(t *testing.T) {
	cli, _, _ := newCLI(t)
	cli.SetArgs([]string{"nope"})

	assert.Error(t, cli.Execute(context.Background()))
}

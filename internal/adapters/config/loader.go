// Package config provides the configuration loader for rcdb.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/rcdb/internal/core/domain"
	"go.trai.ch/rcdb/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*FileLoader)(nil)

// FileLoader implements ports.ConfigLoader using a YAML file.
type FileLoader struct {
	Filename string
}

// NewLoader creates a loader for the default config file name.
func NewLoader() *FileLoader {
	return &FileLoader{Filename: domain.ConfigFileName}
}

// configFile represents the structure of the rcdb.yaml configuration file.
type configFile struct {
	ProjectDir string `yaml:"projectDir"`
	RBin       string `yaml:"rBin"`
	RScriptBin string `yaml:"rscriptBin"`
	ClangBin   string `yaml:"clangBin"`
	CacheDir   string `yaml:"cacheDir"`
	WarmJobs   int    `yaml:"warmJobs"`
}

// Load reads the configuration from the given working directory. A missing
// file yields the defaults; a present but malformed file is an error.
func (l *FileLoader) Load(cwd string) (*domain.Config, error) {
	cfg := domain.DefaultConfig(cwd)

	path := filepath.Join(cwd, l.Filename)
	data, err := os.ReadFile(path) //nolint:gosec // Path is rooted at the working directory
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var file configFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	apply(cfg, file, cwd)
	return cfg, nil
}

func apply(cfg *domain.Config, file configFile, cwd string) {
	if file.ProjectDir != "" {
		cfg.ProjectDir = absolutize(file.ProjectDir, cwd)
	}
	if file.RBin != "" {
		cfg.RBin = file.RBin
	}
	if file.RScriptBin != "" {
		cfg.RScriptBin = file.RScriptBin
	}
	if file.ClangBin != "" {
		cfg.ClangBin = file.ClangBin
	}
	if file.CacheDir != "" {
		cfg.CacheDir = absolutize(file.CacheDir, cwd)
	}
	if file.WarmJobs > 0 {
		cfg.WarmJobs = file.WarmJobs
	}
}

func absolutize(path, cwd string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(cwd, path)
}

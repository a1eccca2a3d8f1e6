// Package config provides the configuration loader for lockcheck.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/lockcheck/internal/core/domain"
	"go.trai.ch/lockcheck/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the config file looked up in the working directory.
const DefaultFilename = "lockcheck.yaml"

var _ ports.ConfigLoader = (*FileConfigLoader)(nil)

// FileConfigLoader implements ports.ConfigLoader using an optional YAML file.
type FileConfigLoader struct {
	Filename string
}

// NewLoader creates a loader for the default config filename.
func NewLoader() *FileConfigLoader {
	return &FileConfigLoader{Filename: DefaultFilename}
}

// lockcheckFile represents the structure of the lockcheck.yaml file. Every
// field is optional; unset fields keep their defaults.
type lockcheckFile struct {
	RequirementsDir string   `yaml:"requirements_dir"`
	CacheFile       string   `yaml:"cache_file"`
	CompileCommand  []string `yaml:"compile_command"`
	OutputFlag      string   `yaml:"output_flag"`
	DocsURL         string   `yaml:"docs_url"`
}

// Load reads the configuration from the given working directory. A missing
// config file yields the defaults, preserving the zero-flag CLI contract.
func (l *FileConfigLoader) Load(cwd string) (*domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(cwd, l.Filename)
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, zerr.Wrap(err, "failed to read config file")
	}

	var file lockcheckFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, "failed to parse config file")
	}

	if file.RequirementsDir != "" {
		cfg.RequirementsDir = file.RequirementsDir
	}
	if file.CacheFile != "" {
		cfg.CacheFile = file.CacheFile
	}
	if len(file.CompileCommand) > 0 {
		cfg.CompileCommand = file.CompileCommand
	}
	if file.OutputFlag != "" {
		cfg.OutputFlag = file.OutputFlag
	}
	if file.DocsURL != "" {
		cfg.DocsURL = file.DocsURL
	}

	return cfg, nil
}

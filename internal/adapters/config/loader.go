// Package config provides the configuration loader for xmk.
package config

import (
	"os"
	"path/filepath"

	"go.trai.ch/xmk/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Default values applied when the corresponding field is absent from xmk.yaml.
const (
	defaultCaptureCommand = "xcodebuild"
	defaultTracePath      = ".xmk/build.log"
	defaultMakefilePath   = "Makefile.xmk"
	defaultMakeCommand    = "make"
)

// FileConfigLoader implements ports.ConfigLoader using a YAML file.
type FileConfigLoader struct {
	Filename string
}

// Load reads the configuration from the given working directory.
func (l *FileConfigLoader) Load(cwd string) (*domain.Config, error) {
	return Load(filepath.Join(cwd, l.Filename))
}

// Xmkfile represents the structure of the xmk.yaml configuration file.
type Xmkfile struct {
	Version string     `yaml:"version"`
	Capture CaptureDTO `yaml:"capture"`
	Trace   string     `yaml:"trace"`
	Make    MakeDTO    `yaml:"make"`
	// BuildData is the build tool's incremental-state directory, moved aside
	// while make runs.
	BuildData string `yaml:"build_data"`
	// Manifests are project files that participate in the staleness
	// fingerprint.
	Manifests []string `yaml:"manifests"`
}

// CaptureDTO describes the full build invocation that produces the trace.
type CaptureDTO struct {
	Command string   `yaml:"command"`
	Args    []string `yaml:"args"`
}

// MakeDTO describes the incremental build executor.
type MakeDTO struct {
	Command string `yaml:"command"`
	File    string `yaml:"file"`
	Jobs    int    `yaml:"jobs"`
}

// Load reads a configuration file from the given path and returns a
// domain.Config with defaults applied.
func Load(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var file Xmkfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	cfg := &domain.Config{
		CaptureCommand: file.Capture.Command,
		CaptureArgs:    file.Capture.Args,
		TracePath:      file.Trace,
		MakefilePath:   file.Make.File,
		BuildDataDir:   file.BuildData,
		MakeCommand:    file.Make.Command,
		MakeJobs:       file.Jobs(),
		Manifests:      file.Manifests,
	}
	if cfg.CaptureCommand == "" {
		cfg.CaptureCommand = defaultCaptureCommand
	}
	if cfg.TracePath == "" {
		cfg.TracePath = defaultTracePath
	}
	if cfg.MakefilePath == "" {
		cfg.MakefilePath = defaultMakefilePath
	}
	if cfg.MakeCommand == "" {
		cfg.MakeCommand = defaultMakeCommand
	}
	return cfg, nil
}

// Jobs returns the configured make parallelism, defaulting to 1.
func (f *Xmkfile) Jobs() int {
	if f.Make.Jobs <= 0 {
		return 1
	}
	return f.Make.Jobs
}

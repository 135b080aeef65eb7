package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type projectManifest struct {
	Path   string
	Root   string
	Config projectConfig
}

type projectConfig struct {
	Package      packageConfig      `toml:"package"`
	Preprocessor preprocessorConfig `toml:"preprocessor"`
	Check        checkConfig        `toml:"check"`
}

type packageConfig struct {
	Name string `toml:"name"`
}

type preprocessorConfig struct {
	Defines []string `toml:"defines"`
}

type checkConfig struct {
	MaxDiagnostics int `toml:"max_diagnostics"`
}

// findEmberToml walks up from startDir looking for ember.toml.
func findEmberToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "ember.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// loadProjectManifest loads the nearest ember.toml above startDir, if
// any.
func loadProjectManifest(startDir string) (*projectManifest, bool, error) {
	manifestPath, ok, err := findEmberToml(startDir)
	if err != nil || !ok {
		return nil, false, err
	}

	var cfg projectConfig
	if _, err := toml.DecodeFile(manifestPath, &cfg); err != nil {
		return nil, false, fmt.Errorf("failed to parse %s: %w", manifestPath, err)
	}
	return &projectManifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
	}, true, nil
}

// resolveDefines merges manifest defines with the --defines flag.
func resolveDefines(flagDefines []string, startDir string) []string {
	out := append([]string(nil), flagDefines...)
	if manifest, ok, err := loadProjectManifest(startDir); err == nil && ok {
		out = append(out, manifest.Config.Preprocessor.Defines...)
	}
	return out
}

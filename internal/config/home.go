package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// DirName is the per-project configuration directory
	DirName = ".sgrep"
	// FileName is the configuration file inside DirName
	FileName = "config.yaml"
	// EnvConfig names an explicit configuration file
	EnvConfig = "SGREP_CONFIG"
)

// FindConfigPath returns the configuration file to load.
// Priority order:
//  1. SGREP_CONFIG environment variable (if set)
//  2. The nearest .sgrep/config.yaml in startDir or one of its parents
//
// An empty path means no configuration file was found.
func FindConfigPath(startDir string) (string, error) {
	if path := os.Getenv(EnvConfig); path != "" {
		return path, nil
	}

	current, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolve start directory: %w", err)
	}

	for {
		candidate := filepath.Join(current, DirName, FileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}

		parent := filepath.Dir(current)
		if parent == current {
			return "", nil
		}
		current = parent
	}
}

// Load resolves and loads the configuration for startDir.
// explicitPath, when non-empty, wins over discovery and must exist.
func Load(explicitPath, startDir string) (*Config, error) {
	if explicitPath != "" {
		if _, err := os.Stat(explicitPath); err != nil {
			return nil, fmt.Errorf("config file %s: %w", explicitPath, err)
		}
		return LoadConfig(explicitPath)
	}

	path, err := FindConfigPath(startDir)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return DefaultConfig(), nil
	}
	return LoadConfig(path)
}

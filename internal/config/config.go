// Package config provides framework configuration loading for the serpent CLI.
// Config is read from config/config.yml under the workspace root. A missing
// file returns sane defaults without error. A .env file in the workspace root
// (loaded via godotenv) and process environment variables override config file
// values at the highest precedence.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Default values for Config fields, relative to the workspace root.
const (
	DefaultPluginsPath  = "plugins"
	DefaultDatasetsPath = "datasets"
	DefaultManifestPath = "plugins.yml"
)

// Environment variable names recognized as overrides.
const (
	EnvPluginsPath  = "SERPENT_PLUGINS_PATH"
	EnvDatasetsPath = "SERPENT_DATASETS_PATH"
	EnvManifestPath = "SERPENT_MANIFEST_PATH"
)

// Config holds all configuration for a serpent workspace.
// Paths are resolved against the workspace root at load time.
type Config struct {
	PluginsPath  string `yaml:"plugins_path"`
	DatasetsPath string `yaml:"datasets_path"`
	ManifestPath string `yaml:"manifest_path"`
}

// partialConfig is used during YAML parsing to distinguish between a field
// being absent (nil pointer) and a field being explicitly set to its zero value.
type partialConfig struct {
	PluginsPath  *string `yaml:"plugins_path"`
	DatasetsPath *string `yaml:"datasets_path"`
	ManifestPath *string `yaml:"manifest_path"`
}

func defaults(root string) Config {
	return Config{
		PluginsPath:  filepath.Join(root, DefaultPluginsPath),
		DatasetsPath: filepath.Join(root, DefaultDatasetsPath),
		ManifestPath: filepath.Join(root, DefaultManifestPath),
	}
}

// Load reads config/config.yml under root and returns a Config.
// If the file does not exist, defaults are returned without error.
// Fields absent from the file are filled with their default values.
// Environment variables (optionally sourced from a .env file in root)
// override both, at the highest precedence.
func Load(root string) (*Config, error) {
	cfg := defaults(root)

	data, err := os.ReadFile(filepath.Join(root, "config", "config.yml"))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	if err == nil {
		var partial partialConfig
		if err := yaml.Unmarshal(data, &partial); err != nil {
			return nil, err
		}

		if partial.PluginsPath != nil {
			cfg.PluginsPath = resolve(root, *partial.PluginsPath)
		}
		if partial.DatasetsPath != nil {
			cfg.DatasetsPath = resolve(root, *partial.DatasetsPath)
		}
		if partial.ManifestPath != nil {
			cfg.ManifestPath = resolve(root, *partial.ManifestPath)
		}
	}

	// Best-effort .env load; a missing .env is not an error.
	_ = godotenv.Load(filepath.Join(root, ".env"))

	if v := os.Getenv(EnvPluginsPath); v != "" {
		cfg.PluginsPath = resolve(root, v)
	}
	if v := os.Getenv(EnvDatasetsPath); v != "" {
		cfg.DatasetsPath = resolve(root, v)
	}
	if v := os.Getenv(EnvManifestPath); v != "" {
		cfg.ManifestPath = resolve(root, v)
	}

	return &cfg, nil
}

// resolve anchors a relative path at the workspace root; absolute paths pass through.
func resolve(root, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}

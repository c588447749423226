package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Backend names accepted for storage.backend.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Config defines CLI configuration.
type Config struct {
	Storage  StorageConfig `yaml:"storage"`
	Log      LogConfig     `yaml:"log"`
	Language string        `yaml:"language"`
}

type StorageConfig struct {
	// Dir is the data directory holding every collection.
	Dir string `yaml:"dir"`
	// Backend selects the storage implementation: "json" (flat files,
	// single-process use) or "sqlite" (safe for overlapping invocations).
	Backend string `yaml:"backend"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Load reads configuration from an optional YAML file and environment variables.
func Load() (Config, error) {
	cfg := Config{
		Storage: StorageConfig{
			Dir:     "data",
			Backend: BackendJSON,
		},
		Log: LogConfig{
			Level: "info",
		},
		Language: "de",
	}

	if path := os.Getenv("DOCGEN_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if dir := os.Getenv("DOCGEN_DATA_DIR"); dir != "" {
		cfg.Storage.Dir = dir
	}
	if backend := os.Getenv("DOCGEN_BACKEND"); backend != "" {
		cfg.Storage.Backend = backend
	}
	if level := os.Getenv("DOCGEN_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if lang := os.Getenv("DOCGEN_LANGUAGE"); lang != "" {
		cfg.Language = lang
	}

	switch cfg.Storage.Backend {
	case BackendJSON, BackendSQLite:
	default:
		return Config{}, fmt.Errorf("invalid storage backend %q (expected %q or %q)",
			cfg.Storage.Backend, BackendJSON, BackendSQLite)
	}

	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

// ClientsPath returns the flat-file clients collection path.
func (c Config) ClientsPath() string { return filepath.Join(c.Storage.Dir, "clients.json") }

// ProjectsPath returns the flat-file projects collection path.
func (c Config) ProjectsPath() string { return filepath.Join(c.Storage.Dir, "projects.json") }

// DocumentsPath returns the flat-file documents collection path.
func (c Config) DocumentsPath() string { return filepath.Join(c.Storage.Dir, "documents.json") }

// CountersPath returns the flat-file counters path.
func (c Config) CountersPath() string { return filepath.Join(c.Storage.Dir, "counters.json") }

// DBPath returns the sqlite database path.
func (c Config) DBPath() string { return filepath.Join(c.Storage.Dir, "docgen.db") }

// Package config provides configuration loading and structs for the
// prepsearch server.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/prepstack/prepsearch/internal/scoring"
)

// Config holds all configuration for the application.
type Config struct {
	Debug    bool           `yaml:"debug"`
	Server   ServerConfig   `yaml:"server"`
	Storage  StorageConfig  `yaml:"storage"`
	Cache    CacheConfig    `yaml:"cache"`
	Scoring  scoring.Config `yaml:"scoring"`
	Datasets DatasetsConfig `yaml:"datasets"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`

	// RequestsPerSecond and Burst configure the search rate limiter.
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`
}

// StorageConfig selects and configures the question store backend.
type StorageConfig struct {
	// Backend is one of "sqlite", "dynamodb", or "memory".
	Backend      string `yaml:"backend"`
	DatabasePath string `yaml:"database_path"`
	DynamoTable  string `yaml:"dynamo_table"`
	AWSRegion    string `yaml:"aws_region"`
}

// CacheConfig holds corpus cache settings.
type CacheConfig struct {
	TTLMinutes int `yaml:"ttl_minutes"`
}

// DatasetsConfig holds dataset directories watched for question JSON files.
type DatasetsConfig struct {
	Directories []string `yaml:"directories"`
}

// Load reads and parses the config file at path, expands paths, and applies
// defaults. Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	ApplyDefaults(&cfg)

	configDir := filepath.Dir(path)
	cfg.Storage.DatabasePath = expandPath(cfg.Storage.DatabasePath, configDir)
	for i := range cfg.Datasets.Directories {
		cfg.Datasets.Directories[i] = expandPath(cfg.Datasets.Directories[i], configDir)
	}

	return &cfg, nil
}

// expandPath converts a path to absolute. Paths starting with "./" are
// relative to configDir; other relative paths are relative to the home
// directory.
func expandPath(path string, configDir string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	if strings.HasPrefix(path, "./") || path == "." {
		return filepath.Join(configDir, path)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, path)
	}
	return path
}

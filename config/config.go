package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config aggregates the configuration of every package.
type Config struct {
	Chain    ChainConfig    `json:"chain" yaml:"chain" envPrefix:"CHAIN_"`
	Pipeline PipelineConfig `json:"pipeline" yaml:"pipeline" envPrefix:"PIPELINE_"`
	Store    StoreConfig    `json:"store" yaml:"store" envPrefix:"STORE_"`
}

// DefaultConfig returns a Config with defaults for all packages.
func DefaultConfig() Config {
	return Config{
		Chain:    DefaultChainConfig(),
		Pipeline: DefaultPipelineConfig("default"),
		Store:    DefaultStoreConfig(),
	}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	c.Chain.Merge(&source.Chain)
	c.Pipeline.Merge(&source.Pipeline)
	c.Store.Merge(&source.Store)
}

// LoadConfig reads a JSON or YAML config file (by extension), merges it with
// defaults, and returns the resulting Config.
func LoadConfig(filename string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var loaded Config
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &loaded); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &loaded); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	cfg.Merge(&loaded)
	return &cfg, nil
}

// EnvPrefix prefixes every environment variable read by ApplyEnv.
const EnvPrefix = "STATECHAIN_"

// ApplyEnv merges STATECHAIN_* environment variables over cfg.
//
// Example: STATECHAIN_CHAIN_OBSERVER=slog, STATECHAIN_STORE_BACKEND=badger,
// STATECHAIN_STORE_SYNC_WRITES=false.
func ApplyEnv(cfg *Config) error {
	var loaded Config
	if err := env.ParseWithOptions(&loaded, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	cfg.Merge(&loaded)
	return nil
}

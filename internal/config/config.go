// Package config loads the site configuration that decides, among other
// things, which data backend the process wires at startup.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// ConfigFileName is the name of the config file.
const ConfigFileName = "orderdesk.yaml"

// ConfigFileNameAlt is the alternate name of the config file.
const ConfigFileNameAlt = "orderdesk.yml"

// Recognized data_source_type tokens.
const (
	SourceLocal  = "LOCAL" // embedded SQLite store
	SourceRemote = "ALS"   // remote JSON:API resource server
)

// EnvDataSource is the environment variable that overrides
// data_source_type. It wins over the config file, but only when set to
// one of the recognized tokens.
const EnvDataSource = "DATA_SOURCE_TYPE"

// Defaults applied before any file or environment value.
const (
	DefaultAPIBaseURL   = "http://localhost:5656/api"
	DefaultDatabasePath = "data/orderdesk.db"
)

// Config is the flat site configuration document.
type Config struct {
	StoreName      string `koanf:"store_name"`
	StoreLogo      string `koanf:"store_logo"`
	APIBaseURL     string `koanf:"api_base_url"`
	DataSourceType string `koanf:"data_source_type"`
	Database       string `koanf:"database"`

	// StrictStatusFlow opts in to order-lifecycle validation: illegal
	// status transitions are rejected instead of applied.
	StrictStatusFlow bool `koanf:"strict_status_flow"`
}

// Remote reports whether the remote JSON:API backend is selected.
func (c *Config) Remote() bool {
	return c.DataSourceType == SourceRemote
}

// Load reads configuration with the precedence defaults < config file <
// environment. cfgFile may be empty, in which case orderdesk.yaml or
// orderdesk.yml in the current directory is used when present; a missing
// config file is not an error.
func Load(cfgFile string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]interface{}{
		"store_name":         "",
		"store_logo":         "",
		"api_base_url":       DefaultAPIBaseURL,
		"data_source_type":   SourceLocal,
		"database":           DefaultDatabasePath,
		"strict_status_flow": false,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if cfgFile == "" {
		cfgFile = findConfigFile(".")
	}
	if cfgFile != "" {
		if err := k.Load(file.Provider(cfgFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", cfgFile, err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// The environment override applies to the data source only, and only
	// for tokens the selector understands.
	if v := os.Getenv(EnvDataSource); v == SourceLocal || v == SourceRemote {
		cfg.DataSourceType = v
	}

	return &cfg, nil
}

// findConfigFile finds the config file in the given directory.
// Returns empty string if not found.
func findConfigFile(dir string) string {
	yamlPath := filepath.Join(dir, ConfigFileName)
	if _, err := os.Stat(yamlPath); err == nil {
		return yamlPath
	}

	ymlPath := filepath.Join(dir, ConfigFileNameAlt)
	if _, err := os.Stat(ymlPath); err == nil {
		return ymlPath
	}

	return ""
}

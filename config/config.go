package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// TomlSource selects the active data source variant
type TomlSource struct {
	Kind string `toml:"kind"` // one of remote, bluesky, cache
}

// TomlRemote configures the RSS/Atom source
type TomlRemote struct {
	URLs           []string `toml:"urls"`
	TimeoutSeconds int      `toml:"timeout_seconds"`
}

// TomlBluesky configures the Bluesky timeline source
type TomlBluesky struct {
	Host  string `toml:"host"`
	Limit int64  `toml:"limit"`
}

// TomlCache configures the local SQLite cache source
type TomlCache struct {
	Database string `toml:"database"`
	Limit    int    `toml:"limit"`
}

// TomlFilter holds the optional language filter applied at the worker
type TomlFilter struct {
	Languages []string `toml:"languages"`
}

// TomlConfig represents the top-level configuration
type TomlConfig struct {
	Source  TomlSource  `toml:"source"`
	Remote  TomlRemote  `toml:"remote"`
	Bluesky TomlBluesky `toml:"bluesky"`
	Cache   TomlCache   `toml:"cache"`
	Filter  TomlFilter  `toml:"filter"`
}

func LoadConfig(path string) (*TomlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config TomlConfig
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	applyDefaults(&config)

	return &config, nil
}

func applyDefaults(config *TomlConfig) {
	if config.Source.Kind == "" {
		config.Source.Kind = "remote"
	}
	if config.Remote.TimeoutSeconds <= 0 {
		config.Remote.TimeoutSeconds = 20
	}
	if config.Bluesky.Limit <= 0 {
		config.Bluesky.Limit = 50
	}
	if config.Cache.Database == "" {
		config.Cache.Database = "feeds.db"
	}
	if config.Cache.Limit <= 0 {
		config.Cache.Limit = 100
	}
}

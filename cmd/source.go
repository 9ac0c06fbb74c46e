package cmd

import (
	"fmt"
	"time"

	"feedview/config"
	"feedview/datasource"
	"feedview/db"
)

// sourceFromConfig builds the data source variant selected in the config.
// The returned closer is non-nil for sources holding a database handle.
func sourceFromConfig(cfg *config.TomlConfig) (datasource.Source, func() error, error) {
	switch cfg.Source.Kind {
	case "remote":
		source := datasource.NewRemoteSource(cfg.Remote.URLs, time.Duration(cfg.Remote.TimeoutSeconds)*time.Second)
		return source, nil, nil
	case "bluesky":
		return datasource.NewBlueskySource(cfg.Bluesky.Host, cfg.Bluesky.Limit), nil, nil
	case "cache":
		reader, err := db.NewReader(cfg.Cache.Database)
		if err != nil {
			return nil, nil, err
		}
		return datasource.NewCacheSource(reader, cfg.Cache.Limit), reader.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown source kind: %s", cfg.Source.Kind)
	}
}

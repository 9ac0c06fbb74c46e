package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feedview/config"
)

const sampleConfig = `
[source]
kind = "cache"

[remote]
urls = ["https://example.com/feed.xml"]
timeout_seconds = 5

[bluesky]
host = "https://pds.example.com"
limit = 25

[cache]
database = "test.db"
limit = 10

[filter]
languages = ["en", "nb"]
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "feedview.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	cfg, err := config.LoadConfig(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "cache", cfg.Source.Kind)
	assert.Equal(t, []string{"https://example.com/feed.xml"}, cfg.Remote.URLs)
	assert.Equal(t, 5, cfg.Remote.TimeoutSeconds)
	assert.Equal(t, "https://pds.example.com", cfg.Bluesky.Host)
	assert.EqualValues(t, 25, cfg.Bluesky.Limit)
	assert.Equal(t, "test.db", cfg.Cache.Database)
	assert.Equal(t, 10, cfg.Cache.Limit)
	assert.Equal(t, []string{"en", "nb"}, cfg.Filter.Languages)
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := config.LoadConfig(writeConfig(t, ""))
	require.NoError(t, err)

	assert.Equal(t, "remote", cfg.Source.Kind)
	assert.Equal(t, 20, cfg.Remote.TimeoutSeconds)
	assert.EqualValues(t, 50, cfg.Bluesky.Limit)
	assert.Equal(t, "feeds.db", cfg.Cache.Database)
	assert.Equal(t, 100, cfg.Cache.Limit)
	assert.Empty(t, cfg.Filter.Languages)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := config.LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

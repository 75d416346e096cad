package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	// Change to temp dir so no config.yaml is found
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "data/analysis_results.json", cfg.Data.URL)
	assert.Equal(t, "data/india.geojson", cfg.Map.GeometryURL)
	assert.Empty(t, cfg.Map.AliasFile)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 60, cfg.Server.ClockRefresh)
	assert.Equal(t, 30, cfg.Fetch.TimeoutSecs)
	assert.Equal(t, "risk-atlas/1.0", cfg.Fetch.UserAgent)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadFromYAML(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })

	yaml := `
data:
  url: https://atlas.example.com/analysis_results.json
map:
  geometry_url: https://atlas.example.com/regions.geojson
  alias_file: aliases.yaml
server:
  port: 9090
log:
  level: debug
  format: console
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://atlas.example.com/analysis_results.json", cfg.Data.URL)
	assert.Equal(t, "https://atlas.example.com/regions.geojson", cfg.Map.GeometryURL)
	assert.Equal(t, "aliases.yaml", cfg.Map.AliasFile)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoadFromEnv(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })

	t.Setenv("ATLAS_DATA_URL", "https://env.example.com/results.json")
	t.Setenv("ATLAS_LOG_LEVEL", "warn")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://env.example.com/results.json", cfg.Data.URL)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestDurationHelpers(t *testing.T) {
	cfg := Config{
		Fetch:  FetchConfig{TimeoutSecs: 10},
		Server: ServerConfig{ClockRefresh: 90},
	}
	assert.Equal(t, 10*time.Second, cfg.Fetch.Timeout())
	assert.Equal(t, 90*time.Second, cfg.Server.ClockInterval())
}

func TestInitLoggerBadLevel(t *testing.T) {
	err := InitLogger(LogConfig{Level: "shouting", Format: "json"})
	assert.Error(t, err)
}

func TestInitLoggerConsole(t *testing.T) {
	require.NoError(t, InitLogger(LogConfig{Level: "debug", Format: "console"}))
}

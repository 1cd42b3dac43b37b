package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile_Defaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, DataSourceCSV, cfg.Data.Source)
	assert.Equal(t, "route_info_vibrations", cfg.Data.DefaultDataset)
	assert.Equal(t, "Cambridge", cfg.Map.StartLabel)
	assert.Equal(t, "London Kings Cross", cfg.Map.EndLabel)
	assert.Equal(t, 7, cfg.Map.Zoom)
	assert.InDelta(t, 51.8537, cfg.Map.CenterLat, 1e-4)
	assert.Equal(t, "facebook/blenderbot-400M-distill", cfg.TextGen.Model)
	assert.Equal(t, 30*time.Second, cfg.TextGen.Timeout)
	assert.Equal(t, 10*time.Minute, cfg.Cache.LayerCacheTTL)
	assert.False(t, cfg.TextGenEnabled())
	assert.Equal(t, 3, cfg.Worker.MaxRetries)
}

func TestLoadFile_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "API_PORT=9090\nDATA_SOURCE=SQLite\nTEXTGEN_URL=http://textgen:8000/\nMEDIA_BASE_URL=/assets/\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, DataSourceSQLite, cfg.Data.Source)
	assert.Equal(t, "http://textgen:8000", cfg.TextGen.URL)
	assert.Equal(t, "/assets", cfg.Media.BaseURL)
	assert.True(t, cfg.TextGenEnabled())
	assert.Equal(t, "0.0.0.0:9090", cfg.GetServerAddr())
}

func TestLoadFile_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("API_PORT=9090\n"), 0o600))
	t.Setenv("API_PORT", "7070")

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
}

func TestLoadFile_UnknownDataSource(t *testing.T) {
	t.Setenv("DATA_SOURCE", "mongo")

	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestConnectionStrings(t *testing.T) {
	db := DatabaseConfig{
		Host:     "db",
		Port:     5432,
		User:     "twin",
		Password: "p@ss:word",
		DBName:   "visual_twin",
		SSLMode:  "disable",
	}
	assert.Equal(t, "postgres://twin:p%40ss%3Aword@db:5432/visual_twin?sslmode=disable", db.DSN())

	r := RedisConfig{Host: "cache", Port: 6380}
	assert.Equal(t, "cache:6380", r.Addr())
}

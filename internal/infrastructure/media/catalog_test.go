package media

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/visual-twin/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	repo, err := Load(&config.MediaConfig{BaseURL: "/media"}, zap.NewNop())
	require.NoError(t, err)

	url, ok := repo.StationVideo("Cambridge")
	require.True(t, ok)
	assert.Equal(t, "/media/cambridge_1.mp4", url)

	_, ok = repo.StationVideo("Peterborough")
	assert.False(t, ok)

	images := repo.ZoneImages()
	require.Len(t, images, 3)
	assert.Contains(t, images[0], "https://github.com/")
	assert.Equal(t, "/media/measure_3.png", images[1])
	assert.Equal(t, "/media/measure_2.png", images[2])

	images[0] = "mutated"
	assert.NotEqual(t, "mutated", repo.ZoneImages()[0])
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "media.yml")
	content := `station_videos:
  Stevenage: clips/stevenage.mp4
  Hitchin: https://cdn.example.org/hitchin.mp4
zone_images:
  - zone_a.png
  - /static/zone_b.png
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	repo, err := Load(&config.MediaConfig{Catalog: path, BaseURL: "https://media.example.org"}, zap.NewNop())
	require.NoError(t, err)

	url, ok := repo.StationVideo("Stevenage")
	require.True(t, ok)
	assert.Equal(t, "https://media.example.org/clips/stevenage.mp4", url)

	url, _ = repo.StationVideo("Hitchin")
	assert.Equal(t, "https://cdn.example.org/hitchin.mp4", url)

	assert.Equal(t, []string{"https://media.example.org/zone_a.png", "/static/zone_b.png"}, repo.ZoneImages())
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(&config.MediaConfig{Catalog: filepath.Join(dir, "missing.yml")}, zap.NewNop())
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.yml")
	require.NoError(t, os.WriteFile(bad, []byte("zone_images: [\n"), 0o600))
	_, err = Load(&config.MediaConfig{Catalog: bad}, zap.NewNop())
	assert.ErrorContains(t, err, "parse")

	empty := filepath.Join(dir, "empty_entry.yml")
	require.NoError(t, os.WriteFile(empty, []byte("zone_images:\n  - \"\"\n"), 0o600))
	_, err = Load(&config.MediaConfig{Catalog: empty}, zap.NewNop())
	assert.ErrorContains(t, err, "invalid media catalog")
}

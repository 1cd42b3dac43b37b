package csvsource_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/visual-twin/internal/domain"
	"github.com/visual-twin/internal/repository/csvsource"
)

const sampleCSV = `latitude,longitude,station,entries_exits,vibration
52.1943,0.1373,Cambridge,11000000,0.10
52.1000,0.1000,0,0,0.50
51.9000,0.0000,0,0,0.50
51.8000,-0.0500,0,0,0.10
51.7000,-0.0800,Stevenage,4500000,0.45
51.5320,-0.1233,London Kings Cross,33000000,0.95
`

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func TestRouteRepository_GetDataset(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "route_info_vibrations.csv", sampleCSV)
	repo := csvsource.NewRouteRepository(dir, zap.NewNop())
	ctx := context.Background()

	t.Run("loads aligned dataset", func(t *testing.T) {
		d, err := repo.GetDataset(ctx, "route_info_vibrations")
		require.NoError(t, err)

		assert.Equal(t, "route_info_vibrations", d.ID)
		assert.Len(t, d.Route, 6)
		assert.Equal(t, []float64{0.10, 0.50, 0.50, 0.10, 0.45}, d.Vibrations)
		assert.NoError(t, d.Validate())

		require.Len(t, d.Stations, 3)
		assert.Equal(t, "Cambridge", d.Stations[0].Name)
		assert.Equal(t, 4, d.Stations[1].Index)
		assert.Equal(t, 33000000.0, d.Stations[2].Activity)
		assert.Equal(t, domain.Point{Lat: 51.5320, Lon: -0.1233}, d.Route[5])
	})

	t.Run("missing dataset", func(t *testing.T) {
		_, err := repo.GetDataset(ctx, "unknown")
		assert.True(t, errors.Is(err, domain.ErrDatasetNotFound))
	})

	t.Run("path traversal is rejected", func(t *testing.T) {
		_, err := repo.GetDataset(ctx, "../secret")
		assert.ErrorIs(t, err, domain.ErrInvalidDatasetID)

		_, err = repo.ReadFile(ctx, "../secret.csv", "secret")
		assert.ErrorIs(t, err, domain.ErrInvalidFileName)
	})

	t.Run("malformed file", func(t *testing.T) {
		writeFile(t, dir, "broken.csv", "h\n51.0,north,0,0,0.2\n")
		_, err := repo.GetDataset(ctx, "broken")
		assert.ErrorIs(t, err, domain.ErrMalformedData)
		assert.Contains(t, err.Error(), "line 2")
	})

	t.Run("coordinates out of range", func(t *testing.T) {
		writeFile(t, dir, "far.csv", "h\n999,0,0,0,0.2\n52,0,0,0,0.1\n")
		_, err := repo.GetDataset(ctx, "far")
		assert.ErrorIs(t, err, domain.ErrMalformedData)
		assert.Contains(t, err.Error(), "point 0")
	})

	t.Run("header only file", func(t *testing.T) {
		writeFile(t, dir, "blank.csv", "lat,lon,station,value,vibration\n")
		_, err := repo.GetDataset(ctx, "blank")
		assert.ErrorIs(t, err, domain.ErrEmptyRoute)
	})
}

func TestRouteRepository_ListDatasets(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.csv", sampleCSV)
	writeFile(t, dir, "a.csv", sampleCSV)
	writeFile(t, dir, "notes.txt", "ignored")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.csv"), 0o700))

	repo := csvsource.NewRouteRepository(dir, zap.NewNop())
	ids, err := repo.ListDatasets(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ids)

	missing := csvsource.NewRouteRepository(filepath.Join(dir, "nope"), zap.NewNop())
	ids, err = missing.ListDatasets(context.Background())
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestParseRecords(t *testing.T) {
	t.Run("header only", func(t *testing.T) {
		records, err := csvsource.ParseRecords(strings.NewReader("lat,lon,station,value,vibration\n"))
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("empty input", func(t *testing.T) {
		records, err := csvsource.ParseRecords(strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("bad number reports line", func(t *testing.T) {
		_, err := csvsource.ParseRecords(strings.NewReader("h\n51.0,0.1,0,0,0.2\n51.1,abc,0,0,0.2\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "line 3")
		assert.Contains(t, err.Error(), "longitude")
	})

	t.Run("non finite values are rejected", func(t *testing.T) {
		for _, value := range []string{"NaN", "Inf", "-Inf", "+Inf"} {
			_, err := csvsource.ParseRecords(strings.NewReader("h\n51,0,A,10," + value + "\n52,0,0,0,0.1\n"))
			require.Error(t, err, value)
			assert.Contains(t, err.Error(), "vibration")
		}

		_, err := csvsource.ParseRecords(strings.NewReader("h\nNaN,0,0,0,0.1\n"))
		assert.ErrorContains(t, err, "latitude")
	})

	t.Run("short row", func(t *testing.T) {
		_, err := csvsource.ParseRecords(strings.NewReader("h\n51.0,0.1,0\n"))
		assert.Error(t, err)
	})
}

package usecase_test

import (
	"context"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/visual-twin/internal/domain"
	"github.com/visual-twin/internal/usecase"
	"github.com/visual-twin/internal/usecase/dto"
)

func countKinds(fc *geojson.FeatureCollection) map[string]int {
	counts := map[string]int{}
	for _, f := range fc.Features {
		counts[f.Properties.MustString("kind")]++
	}
	return counts
}

func TestAnnotationUseCase_BuildGeoJSON(t *testing.T) {
	routes := &MockRouteStore{}
	cache := &MockCacheRepository{}
	uc := newAnnotationUseCase(routes, cache)

	cache.On("Get", mock.Anything, mock.Anything).Return(nil, nil)
	cache.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	routes.On("GetDataset", mock.Anything, "route_info_vibrations").Return(fixtureDataset(), nil)

	fc, err := uc.BuildGeoJSON(context.Background(), "route_info_vibrations", dto.GeoJSONRequest{
		LayerRequest: dto.LayerRequest{ColorRoute: true, ShowStations: true},
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]int{"edge": 5, "zone": 2, "station": 3, "start": 1, "end": 1}, countKinds(fc))

	for _, f := range fc.Features {
		if f.Properties["kind"] != "zone" {
			continue
		}
		poly, ok := f.Geometry.(orb.Polygon)
		require.True(t, ok)
		assert.Len(t, poly[0], 5, "closed rectangle ring")
	}

	data, err := fc.MarshalJSON()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"FeatureCollection"`)
}

func TestLayerToGeoJSON_PlainRouteSimplified(t *testing.T) {
	route := []domain.Point{
		{Lat: 52.0, Lon: 0.0},
		{Lat: 52.00001, Lon: 0.1},
		{Lat: 52.0, Lon: 0.2},
		{Lat: 52.0, Lon: 0.3},
	}
	layer := &dto.LayerResponse{
		DatasetID: "demo",
		Route:     route,
		Polyline:  &dto.Polyline{Color: "darkgreen", Weight: 5, Opacity: 0.8},
	}

	full := usecase.LayerToGeoJSON(layer, 0)
	require.Len(t, full.Features, 1)
	assert.Len(t, full.Features[0].Geometry.(orb.LineString), 4)
	assert.Equal(t, "darkgreen", full.Features[0].Properties["stroke"])

	simplified := usecase.LayerToGeoJSON(layer, 0.001)
	require.Len(t, simplified.Features, 1)
	assert.Len(t, simplified.Features[0].Geometry.(orb.LineString), 2)
}

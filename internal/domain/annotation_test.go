package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func annotationFixture() *Dataset {
	return &Dataset{
		ID: "fixture",
		Route: []Point{
			{Lat: 52.1943, Lon: 0.1373},
			{Lat: 52.1500, Lon: 0.1200},
			{Lat: 52.1000, Lon: 0.1000},
			{Lat: 52.0500, Lon: 0.0800},
			{Lat: 52.0000, Lon: 0.0600},
			{Lat: 51.9500, Lon: 0.0400},
		},
		Vibrations: []float64{0.1, 0.5, 0.5, 0.1, 0.45},
		Stations: []Station{
			{Index: 0, Name: "Cambridge", Lat: 52.1943, Lon: 0.1373, Activity: 12000},
			{Index: 5, Name: "London Kings Cross", Lat: 51.9500, Lon: 0.0400, Activity: 34000},
		},
	}
}

func TestAnnotate_AllLayers(t *testing.T) {
	d := annotationFixture()

	a, err := Annotate(d, AnnotateOptions{
		ColorRoute:   true,
		ShowStations: true,
		ZoneImages:   []string{"a.png", "b.png"},
	})
	require.NoError(t, err)

	require.Len(t, a.Edges, 5)
	assert.Equal(t, BandLow, a.Edges[0].Band)
	assert.Equal(t, BandHigh, a.Edges[1].Band)
	assert.Equal(t, d.Route[4], a.Edges[4].From)
	assert.Equal(t, d.Route[5], a.Edges[4].To)

	require.Len(t, a.Zones, 2)
	assert.Equal(t, Segment{Start: 1, End: 3}, a.Zones[0].Segment)
	assert.Equal(t, Segment{Start: 4, End: 5}, a.Zones[1].Segment)
	assert.Equal(t, "a.png", a.Zones[0].Image)
	assert.Equal(t, "b.png", a.Zones[1].Image)
	for _, z := range a.Zones {
		for i := z.Start; i <= z.End; i++ {
			assert.True(t, z.Bounds.Contains(d.Route[i]))
		}
	}

	require.Len(t, a.Stations, 2)
	assert.InDelta(t, MinStationRadius, a.Stations[0].Radius, 1e-9)
	assert.InDelta(t, MaxStationRadius, a.Stations[1].Radius, 1e-9)
	assert.Zero(t, d.Stations[0].Radius, "dataset stations stay untouched")
}

func TestAnnotate_TogglesOff(t *testing.T) {
	a, err := Annotate(annotationFixture(), AnnotateOptions{})
	require.NoError(t, err)

	assert.Len(t, a.Route, 6)
	assert.Empty(t, a.Edges)
	assert.Empty(t, a.Zones)
	assert.Empty(t, a.Stations)
}

func TestAnnotate_InvalidDataset(t *testing.T) {
	d := annotationFixture()
	d.Vibrations = d.Vibrations[:3]

	_, err := Annotate(d, AnnotateOptions{ColorRoute: true})
	assert.ErrorIs(t, err, ErrLengthMismatch)

	_, err = Annotate(&Dataset{}, AnnotateOptions{})
	assert.ErrorIs(t, err, ErrEmptyRoute)
}

func TestAnnotate_SinglePointRoute(t *testing.T) {
	a, err := Annotate(&Dataset{Route: []Point{{Lat: 1, Lon: 2}}}, AnnotateOptions{ColorRoute: true})
	require.NoError(t, err)
	assert.Empty(t, a.Edges)
	assert.Empty(t, a.Zones)
}

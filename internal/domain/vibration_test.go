package domain

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyVibration(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected Band
	}{
		{name: "zero", value: 0, expected: BandLow},
		{name: "negative", value: -1, expected: BandLow},
		{name: "just below moderate", value: 0.1999, expected: BandLow},
		{name: "moderate boundary", value: 0.2, expected: BandModerate},
		{name: "moderate", value: 0.25, expected: BandModerate},
		{name: "elevated boundary", value: 0.3, expected: BandElevated},
		{name: "elevated", value: 0.35, expected: BandElevated},
		{name: "high boundary", value: 0.4, expected: BandHigh},
		{name: "high", value: 0.9, expected: BandHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyVibration(tt.value))
		})
	}
}

func TestClassifyVibration_Monotonic(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 1000; i++ {
		a := rng.Float64()
		b := rng.Float64()
		if a > b {
			a, b = b, a
		}
		assert.LessOrEqual(t, ClassifyVibration(a).Level(), ClassifyVibration(b).Level(),
			"classify(%v) must not exceed classify(%v)", a, b)
	}
}

func TestBand_Color(t *testing.T) {
	assert.Equal(t, "blue", BandLow.Color())
	assert.Equal(t, "green", BandModerate.Color())
	assert.Equal(t, "yellow", BandElevated.Color())
	assert.Equal(t, "red", BandHigh.Color())
}

func TestHighVibrationSegments(t *testing.T) {
	tests := []struct {
		name       string
		vibrations []float64
		expected   []Segment
	}{
		{
			name:       "two runs",
			vibrations: []float64{0.1, 0.5, 0.5, 0.1, 0.45},
			expected:   []Segment{{Start: 1, End: 3}, {Start: 4, End: 5}},
		},
		{
			name:       "empty input",
			vibrations: nil,
			expected:   []Segment{},
		},
		{
			name:       "no high edges",
			vibrations: []float64{0.1, 0.2, 0.3},
			expected:   []Segment{},
		},
		{
			name:       "whole route",
			vibrations: []float64{0.5, 0.6, 0.7},
			expected:   []Segment{{Start: 0, End: 3}},
		},
		{
			name:       "exactly threshold is red but not a zone",
			vibrations: []float64{0.5, 0.4, 0.5},
			expected:   []Segment{{Start: 0, End: 1}, {Start: 2, End: 3}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HighVibrationSegments(tt.vibrations))
		})
	}
}

func TestHighVibrationSegments_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for iter := 0; iter < 200; iter++ {
		n := rng.Intn(40)
		vibrations := make([]float64, n)
		for i := range vibrations {
			// значения на сетке 0.05 без ровно 0.4
			v := float64(rng.Intn(20)) * 0.05
			if v == 0.4 {
				v = 0.45
			}
			vibrations[i] = v
		}

		segments := HighVibrationSegments(vibrations)

		covered := make(map[int]bool)
		for k, seg := range segments {
			require.Less(t, seg.Start, seg.End)
			if k > 0 {
				// упорядочены, не пересекаются и не склеиваются
				assert.Greater(t, seg.Start, segments[k-1].End)
			}
			for i := seg.Start; i < seg.End; i++ {
				assert.False(t, covered[i])
				covered[i] = true
			}
		}

		for i, v := range vibrations {
			assert.Equal(t, ClassifyVibration(v) == BandHigh, covered[i], "edge %d (v=%v)", i, v)
		}

		// повторный запуск даёт тот же результат
		assert.Equal(t, segments, HighVibrationSegments(vibrations))
	}
}

func TestSegmentBounds(t *testing.T) {
	route := []Point{
		{Lat: 52.0, Lon: 0.10},
		{Lat: 51.9, Lon: 0.05},
		{Lat: 51.8, Lon: 0.07},
		{Lat: 51.7, Lon: -0.01},
	}

	t.Run("multi point segment", func(t *testing.T) {
		seg := Segment{Start: 1, End: 3}
		b := SegmentBounds(route, seg)

		assert.InDelta(t, 51.7-ZonePadding, b.MinLat, 1e-12)
		assert.InDelta(t, -0.01-ZonePadding, b.MinLon, 1e-12)
		assert.InDelta(t, 51.9+ZonePadding, b.MaxLat, 1e-12)
		assert.InDelta(t, 0.07+ZonePadding, b.MaxLon, 1e-12)

		for i := seg.Start; i <= seg.End; i++ {
			assert.True(t, b.Contains(route[i]))
		}
		assert.False(t, b.Contains(route[0]))
	})

	t.Run("single point still has area", func(t *testing.T) {
		b := SegmentBounds(route, Segment{Start: 3, End: 3})
		assert.InDelta(t, 2*ZonePadding, b.MaxLat-b.MinLat, 1e-12)
		assert.InDelta(t, 2*ZonePadding, b.MaxLon-b.MinLon, 1e-12)
	})
}

func TestCycleAsset(t *testing.T) {
	images := []string{"a", "b", "c"}

	got := make([]string, 5)
	for i := range got {
		got[i] = CycleAsset(images, i)
	}

	assert.Equal(t, []string{"a", "b", "c", "a", "b"}, got)
	assert.Equal(t, "", CycleAsset(nil, 3))
}

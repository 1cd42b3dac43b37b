package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeStationRadii(t *testing.T) {
	t.Run("affine range 6..20", func(t *testing.T) {
		stations := []Station{
			{Name: "Cambridge", Activity: 1000},
			{Name: "Stevenage", Activity: 500},
			{Name: "London Kings Cross", Activity: 2500},
		}

		NormalizeStationRadii(stations)

		assert.InDelta(t, 6+14*500.0/2000, stations[0].Radius, 1e-9)
		assert.InDelta(t, MinStationRadius, stations[1].Radius, 1e-9)
		assert.InDelta(t, MaxStationRadius, stations[2].Radius, 1e-9)
	})

	t.Run("monotonic in activity", func(t *testing.T) {
		stations := []Station{{Activity: 3}, {Activity: 1}, {Activity: 7}, {Activity: 5}}
		NormalizeStationRadii(stations)

		for i := range stations {
			for j := range stations {
				if stations[i].Activity < stations[j].Activity {
					assert.Less(t, stations[i].Radius, stations[j].Radius)
				}
			}
		}
	})

	t.Run("equal values use fixed radius", func(t *testing.T) {
		stations := []Station{{Activity: 42}, {Activity: 42}}
		NormalizeStationRadii(stations)

		for _, s := range stations {
			assert.Equal(t, DegenerateStationRadius, s.Radius)
		}
		assert.Equal(t, 13.0, DegenerateStationRadius)
	})

	t.Run("empty set", func(t *testing.T) {
		assert.NotPanics(t, func() { NormalizeStationRadii(nil) })
	})
}

func TestIsStationName(t *testing.T) {
	assert.True(t, IsStationName("Cambridge"))
	assert.False(t, IsStationName("0"))
	assert.False(t, IsStationName(""))
}

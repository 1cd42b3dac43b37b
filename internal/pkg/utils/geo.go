package utils

import (
	"github.com/golang/geo/s2"
)

const earthRadiusMeters = 6371008.8

// HaversineDistance вычисляет расстояние между двумя точками в метрах
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lon1)
	p2 := s2.LatLngFromDegrees(lat2, lon2)
	return p1.Distance(p2).Radians() * earthRadiusMeters
}

// PathLength суммирует длины отрезков ломаной, координаты в порядке (lat, lon)
func PathLength(lats, lons []float64) float64 {
	n := len(lats)
	if len(lons) < n {
		n = len(lons)
	}

	var total float64
	for i := 1; i < n; i++ {
		total += HaversineDistance(lats[i-1], lons[i-1], lats[i], lons[i])
	}
	return total
}

// ValidateCoordinates проверяет валидность координат
func ValidateCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

package domain

import "github.com/paulmach/orb"

// Point - точка маршрута (lat, lon), порядок точек в маршруте значим
type Point struct {
	Lat float64 `json:"lat" db:"lat"`
	Lon float64 `json:"lon" db:"lon"`
}

// Orb переводит точку в orb.Point (порядок lon, lat)
func (p Point) Orb() orb.Point {
	return orb.Point{p.Lon, p.Lat}
}

// Valid проверяет диапазон широты [-90, 90] и долготы [-180, 180], NaN невалиден
func (p Point) Valid() bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lon >= -180 && p.Lon <= 180
}

type BoundingBox struct {
	MinLat float64 `json:"min_lat" db:"min_lat"`
	MinLon float64 `json:"min_lon" db:"min_lon"`
	MaxLat float64 `json:"max_lat" db:"max_lat"`
	MaxLon float64 `json:"max_lon" db:"max_lon"`
}

// BoundingBoxFromOrb конвертирует orb.Bound в BoundingBox
func BoundingBoxFromOrb(b orb.Bound) BoundingBox {
	return BoundingBox{
		MinLat: b.Min.Lat(),
		MinLon: b.Min.Lon(),
		MaxLat: b.Max.Lat(),
		MaxLon: b.Max.Lon(),
	}
}

// Orb возвращает прямоугольник как orb.Bound
func (b BoundingBox) Orb() orb.Bound {
	return orb.Bound{
		Min: orb.Point{b.MinLon, b.MinLat},
		Max: orb.Point{b.MaxLon, b.MaxLat},
	}
}

// Contains проверяет, что точка лежит внутри прямоугольника (границы включительно)
func (b BoundingBox) Contains(p Point) bool {
	return p.Lat >= b.MinLat && p.Lat <= b.MaxLat &&
		p.Lon >= b.MinLon && p.Lon <= b.MaxLon
}

// Corners возвращает пару (юго-запад, северо-восток) в формате Leaflet bounds
func (b BoundingBox) Corners() [2]Point {
	return [2]Point{
		{Lat: b.MinLat, Lon: b.MinLon},
		{Lat: b.MaxLat, Lon: b.MaxLon},
	}
}

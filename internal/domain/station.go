package domain

// StationSentinel - значение колонки станции для точек, которые не являются станциями
const StationSentinel = "0"

const (
	MinStationRadius = 6.0
	MaxStationRadius = 20.0

	// DegenerateStationRadius - радиус для всех станций, когда активность у них одинаковая
	DegenerateStationRadius = (MinStationRadius + MaxStationRadius) / 2
)

// Station - станция на маршруте с пассажиропотоком (entries/exits)
// Index - номер точки маршрута, на которой стоит станция.
type Station struct {
	Index    int     `json:"index"`
	Name     string  `json:"name"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	Activity float64 `json:"activity"`
	Radius   float64 `json:"radius"`
}

// Point возвращает координаты станции
func (s Station) Point() Point {
	return Point{Lat: s.Lat, Lon: s.Lon}
}

// IsStationName - true, если значение колонки обозначает станцию, а не сентинел "0"
func IsStationName(name string) bool {
	return name != "" && name != StationSentinel
}

// NormalizeStationRadii проставляет радиус 6 + 14*(value-min)/(max-min) каждой станции.
// Если все значения равны, каждая станция получает DegenerateStationRadius.
func NormalizeStationRadii(stations []Station) {
	if len(stations) == 0 {
		return
	}

	minValue, maxValue := stations[0].Activity, stations[0].Activity
	for _, s := range stations[1:] {
		if s.Activity < minValue {
			minValue = s.Activity
		}
		if s.Activity > maxValue {
			maxValue = s.Activity
		}
	}

	span := maxValue - minValue
	for i := range stations {
		if span == 0 {
			stations[i].Radius = DegenerateStationRadius
			continue
		}
		stations[i].Radius = MinStationRadius +
			(MaxStationRadius-MinStationRadius)*(stations[i].Activity-minValue)/span
	}
}

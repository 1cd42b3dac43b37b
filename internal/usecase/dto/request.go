package dto

import "github.com/visual-twin/internal/domain"

// LayerRequest - переключатели слоя карты (query: color, stations)
type LayerRequest struct {
	ColorRoute   bool `query:"color" json:"color_route"`
	ShowStations bool `query:"stations" json:"show_stations"`
}

// GeoJSONRequest - параметры экспорта слоя в GeoJSON.
// Simplify - допуск Douglas-Peucker в градусах для неокрашенной линии маршрута, 0 - без упрощения.
type GeoJSONRequest struct {
	LayerRequest
	Simplify float64 `query:"simplify" validate:"min=0,max=0.1"`
}

// AnnotateRequest - аннотация маршрута, переданного в теле запроса.
// Vibrations[i] относится к ребру Route[i] -> Route[i+1].
type AnnotateRequest struct {
	Route        []Point        `json:"route" validate:"required,min=1,max=20000,dive"`
	Vibrations   []float64      `json:"vibrations" validate:"max=20000"`
	Stations     []StationInput `json:"stations,omitempty" validate:"omitempty,max=5000,dive"`
	ColorRoute   bool           `json:"color_route"`
	ShowStations bool           `json:"show_stations"`
}

// Point - координаты точки
type Point struct {
	Lat float64 `json:"lat" validate:"min=-90,max=90"`
	Lon float64 `json:"lon" validate:"min=-180,max=180"`
}

// StationInput - станция в составе AnnotateRequest
type StationInput struct {
	Index    int     `json:"index" validate:"min=0"`
	Name     string  `json:"name" validate:"required,max=200"`
	Activity float64 `json:"activity" validate:"min=0"`
}

// ToDataset собирает domain.Dataset из запроса. Координаты станции берутся из точки маршрута,
// станции с именем "0" и индексом за пределами маршрута пропускаются.
func (r *AnnotateRequest) ToDataset() *domain.Dataset {
	d := &domain.Dataset{
		ID:         "inline",
		Route:      make([]domain.Point, len(r.Route)),
		Vibrations: r.Vibrations,
		Stations:   make([]domain.Station, 0, len(r.Stations)),
	}
	for i, p := range r.Route {
		d.Route[i] = domain.Point{Lat: p.Lat, Lon: p.Lon}
	}
	for _, s := range r.Stations {
		if s.Index >= len(d.Route) || !domain.IsStationName(s.Name) {
			continue
		}
		d.Stations = append(d.Stations, domain.Station{
			Index:    s.Index,
			Name:     s.Name,
			Lat:      d.Route[s.Index].Lat,
			Lon:      d.Route[s.Index].Lon,
			Activity: s.Activity,
		})
	}
	return d
}

// ChatRequest - сообщение чат-боту. Пустой SessionID открывает новую сессию.
type ChatRequest struct {
	SessionID string `json:"session_id,omitempty" validate:"omitempty,uuid"`
	Message   string `json:"message" validate:"required,min=1,max=500"`
	Bot       string `json:"bot,omitempty" validate:"omitempty,oneof=simple advanced"`
}

// ImportRequest - запрос на импорт CSV из DATA_DIR в SQL хранилище
type ImportRequest struct {
	DatasetID string `json:"dataset_id,omitempty" validate:"omitempty,max=64"`
	File      string `json:"file" validate:"required,max=255"`
}

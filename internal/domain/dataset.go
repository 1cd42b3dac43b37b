package domain

import (
	"errors"
	"fmt"
	"math"
	"regexp"
)

var (
	ErrEmptyRoute       = errors.New("route has no points")
	ErrLengthMismatch   = errors.New("vibration count must be exactly one less than route point count")
	ErrInvalidDatasetID = errors.New("dataset id must match [A-Za-z0-9_-]{1,64}")
	ErrEmptyImportFile  = errors.New("import file is required")
	ErrInvalidFileName  = errors.New("file name must not contain path separators")
	ErrMalformedData    = errors.New("malformed dataset")
	ErrDatasetNotFound  = errors.New("dataset not found")
)

var datasetIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// Dataset - маршрут, вибрация по рёбрам и станции одного набора данных.
// Vibrations[i] относится к ребру Route[i] -> Route[i+1].
type Dataset struct {
	ID         string    `json:"id"`
	Route      []Point   `json:"route"`
	Vibrations []float64 `json:"vibrations"`
	Stations   []Station `json:"stations"`
}

// Validate проверяет выравнивание len(Vibrations) == len(Route)-1,
// диапазон координат и конечность вибрации и пассажиропотока
func (d *Dataset) Validate() error {
	if len(d.Route) == 0 {
		return ErrEmptyRoute
	}
	if len(d.Vibrations) != len(d.Route)-1 {
		return fmt.Errorf("%w: %d points, %d vibrations", ErrLengthMismatch, len(d.Route), len(d.Vibrations))
	}
	for i, p := range d.Route {
		if !p.Valid() {
			return fmt.Errorf("%w: point %d has coordinates out of range (%v, %v)", ErrMalformedData, i, p.Lat, p.Lon)
		}
	}
	for i, v := range d.Vibrations {
		if !isFinite(v) {
			return fmt.Errorf("%w: vibration of edge %d is %v", ErrMalformedData, i, v)
		}
	}
	for _, s := range d.Stations {
		if !isFinite(s.Activity) {
			return fmt.Errorf("%w: station %q activity is %v", ErrMalformedData, s.Name, s.Activity)
		}
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// ValidateDatasetID защищает файловые и SQL источники от произвольных идентификаторов
func ValidateDatasetID(id string) error {
	if !datasetIDPattern.MatchString(id) {
		return fmt.Errorf("%w: %q", ErrInvalidDatasetID, id)
	}
	return nil
}

// Record - строка входной таблицы: координаты, станция или "0", пассажиропоток, вибрация
type Record struct {
	Lat       float64
	Lon       float64
	Station   string
	Activity  float64
	Vibration float64
}

// NewDatasetFromRecords собирает набор данных из строк таблицы.
// Вибрация строки i относится к ребру i -> i+1, у последней строки ребра нет и значение отбрасывается.
func NewDatasetFromRecords(id string, records []Record) *Dataset {
	d := &Dataset{
		ID:         id,
		Route:      make([]Point, 0, len(records)),
		Vibrations: make([]float64, 0, len(records)),
		Stations:   make([]Station, 0),
	}

	for i, r := range records {
		d.Route = append(d.Route, Point{Lat: r.Lat, Lon: r.Lon})
		if i < len(records)-1 {
			d.Vibrations = append(d.Vibrations, r.Vibration)
		}
		if IsStationName(r.Station) {
			d.Stations = append(d.Stations, Station{
				Index:    i,
				Name:     r.Station,
				Lat:      r.Lat,
				Lon:      r.Lon,
				Activity: r.Activity,
			})
		}
	}

	return d
}

// Records раскладывает набор данных обратно в строки таблицы.
// Пассажиропоток хранится только у станций, у строк "0" Activity равен нулю.
func (d *Dataset) Records() []Record {
	records := make([]Record, len(d.Route))
	for i, p := range d.Route {
		records[i] = Record{Lat: p.Lat, Lon: p.Lon, Station: StationSentinel}
		if i < len(d.Vibrations) {
			records[i].Vibration = d.Vibrations[i]
		}
	}
	for _, s := range d.Stations {
		if s.Index < 0 || s.Index >= len(records) {
			continue
		}
		records[s.Index].Station = s.Name
		records[s.Index].Activity = s.Activity
	}
	return records
}

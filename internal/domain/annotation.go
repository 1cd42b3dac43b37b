package domain

// AnnotateOptions - переключатели слоя, передаются явно на каждый вызов
type AnnotateOptions struct {
	ColorRoute   bool
	ShowStations bool
	ZoneImages   []string
}

// ColoredEdge - ребро маршрута с классом вибрации
type ColoredEdge struct {
	Index     int     `json:"index"`
	From      Point   `json:"from"`
	To        Point   `json:"to"`
	Vibration float64 `json:"vibration"`
	Band      Band    `json:"band"`
}

// Zone - зона высокой вибрации: сегмент, его прямоугольник и картинка
type Zone struct {
	Segment
	Bounds BoundingBox `json:"bounds"`
	Image  string      `json:"image,omitempty"`
}

// Annotation - результат одного прохода аннотатора
type Annotation struct {
	Route    []Point       `json:"route"`
	Edges    []ColoredEdge `json:"edges"`
	Zones    []Zone        `json:"zones"`
	Stations []Station     `json:"stations"`
}

// Annotate классифицирует рёбра, собирает зоны и нормализует станции.
// Без ColorRoute рёбра и зоны не строятся, без ShowStations не возвращаются станции.
// Станции набора данных не изменяются: радиусы считаются на копии.
func Annotate(d *Dataset, opts AnnotateOptions) (*Annotation, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	a := &Annotation{
		Route:    d.Route,
		Edges:    make([]ColoredEdge, 0),
		Zones:    make([]Zone, 0),
		Stations: make([]Station, 0),
	}

	if opts.ColorRoute {
		for i, band := range ClassifyEdges(d.Vibrations) {
			a.Edges = append(a.Edges, ColoredEdge{
				Index:     i,
				From:      d.Route[i],
				To:        d.Route[i+1],
				Vibration: d.Vibrations[i],
				Band:      band,
			})
		}
		for i, seg := range HighVibrationSegments(d.Vibrations) {
			a.Zones = append(a.Zones, Zone{
				Segment: seg,
				Bounds:  SegmentBounds(d.Route, seg),
				Image:   CycleAsset(opts.ZoneImages, i),
			})
		}
	}

	if opts.ShowStations {
		a.Stations = append(a.Stations, d.Stations...)
		NormalizeStationRadii(a.Stations)
	}

	return a, nil
}

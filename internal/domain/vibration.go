package domain

import "github.com/paulmach/orb"

// Band - класс вибрации участка пути
type Band string

const (
	BandLow      Band = "low"
	BandModerate Band = "moderate"
	BandElevated Band = "elevated"
	BandHigh     Band = "high"
)

const (
	moderateThreshold = 0.2
	elevatedThreshold = 0.3
	highThreshold     = 0.4

	// HighVibrationThreshold - порог зоны высокой вибрации. Сравнение строгое (v > 0.4),
	// тогда как красный цвет начинается с v >= 0.4: ребро ровно с 0.4 красное, но в зону не входит.
	HighVibrationThreshold = highThreshold

	// ZonePadding - отступ прямоугольника зоны в градусах
	ZonePadding = 0.001
)

var bandColors = map[Band]string{
	BandLow:      "blue",
	BandModerate: "green",
	BandElevated: "yellow",
	BandHigh:     "red",
}

var bandLevels = map[Band]int{
	BandLow:      0,
	BandModerate: 1,
	BandElevated: 2,
	BandHigh:     3,
}

// ClassifyVibration относит значение к одному из четырёх полуинтервалов,
// граничное значение принадлежит верхнему классу
func ClassifyVibration(v float64) Band {
	switch {
	case v < moderateThreshold:
		return BandLow
	case v < elevatedThreshold:
		return BandModerate
	case v < highThreshold:
		return BandElevated
	default:
		return BandHigh
	}
}

// Color - цвет линии на карте
func (b Band) Color() string {
	return bandColors[b]
}

// Level - порядковый номер класса, 0 для low
func (b Band) Level() int {
	return bandLevels[b]
}

// ClassifyEdges классифицирует каждое ребро маршрута
func ClassifyEdges(vibrations []float64) []Band {
	bands := make([]Band, len(vibrations))
	for i, v := range vibrations {
		bands[i] = ClassifyVibration(v)
	}
	return bands
}

// Segment - максимальная серия подряд идущих рёбер с высокой вибрацией.
// Start - индекс первого ребра (и первой точки), End - индекс за последним ребром,
// то есть последняя точка серии включительно: рёбра [Start, End), точки [Start, End].
type Segment struct {
	Start int `json:"start_index"`
	End   int `json:"end_index"`
}

// Edges - количество рёбер в сегменте
func (s Segment) Edges() int {
	return s.End - s.Start
}

// GroupRuns за один проход собирает максимальные серии индексов [0, n), для которых match истинно
func GroupRuns(n int, match func(i int) bool) []Segment {
	segments := make([]Segment, 0)
	for i := 0; i < n; i++ {
		if !match(i) {
			continue
		}
		if last := len(segments) - 1; last >= 0 && segments[last].End == i {
			segments[last].End = i + 1
			continue
		}
		segments = append(segments, Segment{Start: i, End: i + 1})
	}
	return segments
}

// HighVibrationSegments группирует рёбра с вибрацией строго выше HighVibrationThreshold
func HighVibrationSegments(vibrations []float64) []Segment {
	return GroupRuns(len(vibrations), func(i int) bool {
		return vibrations[i] > HighVibrationThreshold
	})
}

// SegmentBounds строит прямоугольник по точкам [Start, End] сегмента с отступом ZonePadding
func SegmentBounds(route []Point, seg Segment) BoundingBox {
	points := make(orb.MultiPoint, 0, seg.Edges()+1)
	for i := seg.Start; i <= seg.End && i < len(route); i++ {
		points = append(points, route[i].Orb())
	}
	return BoundingBoxFromOrb(points.Bound().Pad(ZonePadding))
}

// CycleAsset выбирает ресурс по кругу: сегмент i получает assets[i mod len(assets)]
func CycleAsset(assets []string, i int) string {
	if len(assets) == 0 || i < 0 {
		return ""
	}
	return assets[i%len(assets)]
}

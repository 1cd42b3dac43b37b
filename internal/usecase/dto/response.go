package dto

import (
	"github.com/google/uuid"
	"github.com/visual-twin/internal/domain"
)

// LayerResponse - всё, что нужно карте для отрисовки набора данных
type LayerResponse struct {
	DatasetID string         `json:"dataset_id"`
	Center    MapView        `json:"center"`
	Route     []domain.Point `json:"route"`
	Start     *Marker        `json:"start,omitempty"`
	End       *Marker        `json:"end,omitempty"`
	Polyline  *Polyline      `json:"polyline,omitempty"`
	Edges     []EdgeLayer    `json:"edges"`
	Zones     []ZoneLayer    `json:"zones"`
	Stations  []StationLayer `json:"stations"`
	Legend    []LegendItem   `json:"legend"`
	Stats     LayerStats     `json:"stats"`
	Cached    bool           `json:"-"`
}

// MapView - центр и масштаб карты
type MapView struct {
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
	Zoom int     `json:"zoom"`
}

// Marker - маркер начала или конца маршрута
type Marker struct {
	Label string       `json:"label"`
	Point domain.Point `json:"point"`
	Color string       `json:"color"`
}

// Polyline - неокрашенная линия маршрута целиком
type Polyline struct {
	Color   string  `json:"color"`
	Weight  int     `json:"weight"`
	Opacity float64 `json:"opacity"`
}

// EdgeLayer - окрашенное ребро маршрута
type EdgeLayer struct {
	Index     int          `json:"index"`
	From      domain.Point `json:"from"`
	To        domain.Point `json:"to"`
	Vibration float64      `json:"vibration"`
	Band      domain.Band  `json:"band"`
	Color     string       `json:"color"`
	Weight    int          `json:"weight"`
	Opacity   float64      `json:"opacity"`
}

// ZoneLayer - прямоугольник зоны высокой вибрации
type ZoneLayer struct {
	StartIndex   int                `json:"start_index"`
	EndIndex     int                `json:"end_index"`
	Box          domain.BoundingBox `json:"box"`
	Bounds       [2]domain.Point    `json:"bounds"`
	Image        string             `json:"image,omitempty"`
	PopupHTML    string             `json:"popup_html"`
	LengthMeters float64            `json:"length_m"`
	MaxVibration float64            `json:"max_vibration"`
}

// StationLayer - кружок станции, радиус нормализован по пассажиропотоку
type StationLayer struct {
	Name        string  `json:"name"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	Activity    float64 `json:"activity"`
	Radius      float64 `json:"radius"`
	FillColor   string  `json:"fill_color"`
	FillOpacity float64 `json:"fill_opacity"`
	Tooltip     string  `json:"tooltip"`
	PopupHTML   string  `json:"popup_html"`
	Video       string  `json:"video,omitempty"`
}

// LegendItem - строка легенды цветов
type LegendItem struct {
	Band  domain.Band `json:"band"`
	Color string      `json:"color"`
	Label string      `json:"label"`
}

// LayerStats - сводка по слою
type LayerStats struct {
	Points         int     `json:"points"`
	Edges          int     `json:"edges"`
	Zones          int     `json:"zones"`
	Stations       int     `json:"stations"`
	RouteLengthM   float64 `json:"route_length_m"`
	HighVibrationM float64 `json:"high_vibration_m"`
}

// DatasetListResponse - доступные наборы данных
type DatasetListResponse struct {
	Datasets []string `json:"datasets"`
	Default  string   `json:"default"`
}

// ChatResponse - ответ чат-бота вместе с историей сессии
type ChatResponse struct {
	SessionID uuid.UUID         `json:"session_id"`
	Reply     string            `json:"reply"`
	Bot       domain.Bot        `json:"bot"`
	Model     string            `json:"model,omitempty"`
	Cached    bool              `json:"cached"`
	History   []domain.ChatTurn `json:"history"`
}

// ChatHistoryResponse - история сессии чата
type ChatHistoryResponse struct {
	SessionID uuid.UUID         `json:"session_id"`
	Turns     []domain.ChatTurn `json:"turns"`
}

// ImportResponse - импорт поставлен в очередь
type ImportResponse struct {
	RequestID uuid.UUID `json:"request_id"`
	DatasetID string    `json:"dataset_id"`
	File      string    `json:"file"`
	Stream    string    `json:"stream"`
}

// HealthResponse - состояние сервиса и зависимостей
type HealthResponse struct {
	Status       string            `json:"status"`
	Service      string            `json:"service"`
	Dependencies map[string]string `json:"dependencies"`
}

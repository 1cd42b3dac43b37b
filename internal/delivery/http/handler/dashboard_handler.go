package handler

import (
	"bytes"
	"html/template"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/visual-twin/internal/config"
	"go.uber.org/zap"
)

const dashboardTemplate = "index.html"

// DashboardPage - данные для шаблона дашборда
type DashboardPage struct {
	Title          string
	Description    string
	DefaultDataset string
	MapCenter      MapCenterCoords
	MapZoom        int
	AdvancedBot    bool
}

// MapCenterCoords - координаты центра карты
type MapCenterCoords struct {
	Lat float64
	Lon float64
}

// NewDashboardPage собирает данные страницы из конфигурации
func NewDashboardPage(cfg *config.Config) DashboardPage {
	return DashboardPage{
		Title: "Railway 'Visual Twin'",
		Description: "Explore a dynamic and interactive representation of the railway network between " +
			cfg.Map.StartLabel + " and " + cfg.Map.EndLabel + ". " +
			"This app visualizes route data, station activity, and vibration metrics, " +
			"helping you avoid jams, identify key insights, and high-risk areas.",
		DefaultDataset: cfg.Data.DefaultDataset,
		MapCenter: MapCenterCoords{
			Lat: cfg.Map.CenterLat,
			Lon: cfg.Map.CenterLon,
		},
		MapZoom:     cfg.Map.Zoom,
		AdvancedBot: cfg.TextGenEnabled(),
	}
}

// DashboardHandler - рендеринг страницы дашборда (карта + чат)
type DashboardHandler struct {
	templates *template.Template
	page      DashboardPage
	logger    *zap.Logger
}

// NewDashboardHandler загружает шаблоны из dir (обычно templates/dashboard)
func NewDashboardHandler(dir string, page DashboardPage, logger *zap.Logger) (*DashboardHandler, error) {
	tmpl, err := template.ParseGlob(filepath.Join(dir, "*.html"))
	if err != nil {
		return nil, err
	}

	return &DashboardHandler{
		templates: tmpl,
		page:      page,
		logger:    logger,
	}, nil
}

// Render - рендеринг страницы дашборда
func (h *DashboardHandler) Render(c *fiber.Ctx) error {
	var buf bytes.Buffer
	if err := h.templates.ExecuteTemplate(&buf, dashboardTemplate, h.page); err != nil {
		h.logger.Error("Failed to render dashboard", zap.Error(err))
		return fiber.ErrInternalServerError
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(buf.Bytes())
}

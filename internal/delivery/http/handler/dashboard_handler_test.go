package handler_test

import (
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/visual-twin/internal/config"
	"github.com/visual-twin/internal/delivery/http/handler"
)

func testConfig() *config.Config {
	return &config.Config{
		Data: config.DataConfig{DefaultDataset: "route_info_vibrations"},
		Map: config.MapConfig{
			CenterLat:  51.85,
			CenterLon:  -0.1,
			Zoom:       7,
			StartLabel: "Cambridge",
			EndLabel:   "London Kings Cross",
		},
	}
}

func TestNewDashboardPage(t *testing.T) {
	cfg := testConfig()

	page := handler.NewDashboardPage(cfg)
	assert.Equal(t, "Railway 'Visual Twin'", page.Title)
	assert.Contains(t, page.Description, "between Cambridge and London Kings Cross")
	assert.Equal(t, "route_info_vibrations", page.DefaultDataset)
	assert.Equal(t, 7, page.MapZoom)
	assert.False(t, page.AdvancedBot)

	cfg.TextGen.URL = "http://textgen.local"
	assert.True(t, handler.NewDashboardPage(cfg).AdvancedBot)
}

func TestDashboardHandler_Render(t *testing.T) {
	dir := t.TempDir()
	tmpl := `<h1>{{.Title}}</h1><script>const datasetID = {{.DefaultDataset}};</script>`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte(tmpl), 0o600))

	h, err := handler.NewDashboardHandler(dir, handler.NewDashboardPage(testConfig()), zap.NewNop())
	require.NoError(t, err)

	app := fiber.New()
	app.Get("/", h.Render)

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "<h1>Railway &#39;Visual Twin&#39;</h1>")
	assert.Contains(t, string(body), `const datasetID = "route_info_vibrations";`)
}

func TestDashboardHandler_MissingTemplates(t *testing.T) {
	_, err := handler.NewDashboardHandler(t.TempDir(), handler.DashboardPage{}, zap.NewNop())
	assert.Error(t, err)
}

func TestDashboardHandler_ShippedTemplate(t *testing.T) {
	dir := filepath.Join("..", "..", "..", "..", "templates", "dashboard")
	h, err := handler.NewDashboardHandler(dir, handler.NewDashboardPage(testConfig()), zap.NewNop())
	require.NoError(t, err)

	app := fiber.New()
	app.Get("/", h.Render)

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "Avoiding Congestion")
	assert.Contains(t, string(body), "Track Assessment")
	assert.Contains(t, string(body), "Interactive Chatbot")
}

package media

import (
	"fmt"
	"os"
	"strings"

	"github.com/visual-twin/internal/config"
	"github.com/visual-twin/internal/domain/repository"
	"github.com/visual-twin/internal/pkg/validator"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// CatalogFile - формат YAML каталога медиа
type CatalogFile struct {
	StationVideos map[string]string `yaml:"station_videos" validate:"dive,keys,required,endkeys,required"`
	ZoneImages    []string          `yaml:"zone_images" validate:"dive,required"`
}

// DefaultCatalog - видео станций и картинки зон по умолчанию
func DefaultCatalog() CatalogFile {
	return CatalogFile{
		StationVideos: map[string]string{
			"Cambridge":          "cambridge_1.mp4",
			"London Kings Cross": "london_kings_cross_1.mp4",
		},
		ZoneImages: []string{
			"https://github.com/yjq349825834/VisualTwin/blob/144507ad041e3d12429d5f6123f9ff8e5932bb21/data/measure_1.png",
			"measure_3.png",
			"measure_2.png",
		},
	}
}

type catalog struct {
	videos map[string]string
	images []string
}

// NewCatalog строит каталог: относительные пути резолвятся от baseURL, абсолютные URL не меняются
func NewCatalog(file CatalogFile, baseURL string) repository.MediaRepository {
	c := &catalog{
		videos: make(map[string]string, len(file.StationVideos)),
		images: make([]string, 0, len(file.ZoneImages)),
	}
	for name, ref := range file.StationVideos {
		c.videos[name] = resolve(baseURL, ref)
	}
	for _, ref := range file.ZoneImages {
		c.images = append(c.images, resolve(baseURL, ref))
	}
	return c
}

// Load читает каталог из cfg.Catalog; без файла используется DefaultCatalog
func Load(cfg *config.MediaConfig, logger *zap.Logger) (repository.MediaRepository, error) {
	if cfg.Catalog == "" {
		logger.Info("Media catalog not configured, using defaults")
		return NewCatalog(DefaultCatalog(), cfg.BaseURL), nil
	}

	data, err := os.ReadFile(cfg.Catalog)
	if err != nil {
		return nil, fmt.Errorf("failed to read media catalog: %w", err)
	}

	var file CatalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse media catalog: %w", err)
	}
	if err := validator.Validate(&file); err != nil {
		return nil, fmt.Errorf("invalid media catalog: %w", err)
	}

	logger.Info("Media catalog loaded",
		zap.String("path", cfg.Catalog),
		zap.Int("station_videos", len(file.StationVideos)),
		zap.Int("zone_images", len(file.ZoneImages)))

	return NewCatalog(file, cfg.BaseURL), nil
}

func (c *catalog) StationVideo(station string) (string, bool) {
	url, ok := c.videos[station]
	return url, ok
}

func (c *catalog) ZoneImages() []string {
	out := make([]string, len(c.images))
	copy(out, c.images)
	return out
}

func resolve(baseURL, ref string) string {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") || strings.HasPrefix(ref, "/") {
		return ref
	}
	return baseURL + "/" + strings.TrimPrefix(ref, "./")
}

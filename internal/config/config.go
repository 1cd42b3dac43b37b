package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Data sources
const (
	DataSourceCSV      = "csv"
	DataSourcePostgres = "postgres"
	DataSourceSQLite   = "sqlite"
)

type Config struct {
	Server   ServerConfig
	Data     DataConfig
	Database DatabaseConfig
	SQLite   SQLiteConfig
	Redis    RedisConfig
	Cache    CacheConfig
	Map      MapConfig
	Media    MediaConfig
	TextGen  TextGenConfig
	Log      LogConfig
	Worker   WorkerConfig
}

type ServerConfig struct {
	Host        string
	Port        int
	Env         string
	CORSOrigins string
}

type DataConfig struct {
	Source         string
	Dir            string
	DefaultDataset string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type SQLiteConfig struct {
	Path string
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	LayerCacheTTL  time.Duration
	ChatCacheTTL   time.Duration
	ChatHistoryTTL time.Duration
}

type MapConfig struct {
	CenterLat  float64
	CenterLon  float64
	Zoom       int
	StartLabel string
	EndLabel   string
}

type MediaConfig struct {
	Dir     string
	Catalog string
	BaseURL string
}

type TextGenConfig struct {
	URL     string
	Model   string
	Token   string
	Timeout time.Duration
}

type LogConfig struct {
	Level string
}

type WorkerConfig struct {
	Enabled       bool
	ConsumerGroup string
	MaxRetries    int
}

func setDefaults() {
	viper.SetDefault("API_HOST", "0.0.0.0")
	viper.SetDefault("API_PORT", 8080)
	viper.SetDefault("API_ENV", "development")
	viper.SetDefault("CORS_ORIGINS", "http://localhost:3000,http://localhost:8501")

	viper.SetDefault("DATA_SOURCE", DataSourceCSV)
	viper.SetDefault("DATA_DIR", "data")
	viper.SetDefault("DATA_DEFAULT_DATASET", "route_info_vibrations")

	viper.SetDefault("DB_PORT", 5432)
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("DB_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DB_CONN_MAX_LIFETIME", 300)
	viper.SetDefault("DB_CONN_MAX_IDLE_TIME", 60)

	viper.SetDefault("SQLITE_PATH", "data/visual_twin.db")

	viper.SetDefault("REDIS_HOST", "localhost")
	viper.SetDefault("REDIS_PORT", 6379)

	viper.SetDefault("LAYER_CACHE_TTL", 600)
	viper.SetDefault("CHAT_CACHE_TTL", 3600)
	viper.SetDefault("CHAT_HISTORY_TTL", 86400)

	viper.SetDefault("MAP_CENTER_LAT", 51.853749549356415)
	viper.SetDefault("MAP_CENTER_LON", -0.10878609932857745)
	viper.SetDefault("MAP_ZOOM", 7)
	viper.SetDefault("ROUTE_START_LABEL", "Cambridge")
	viper.SetDefault("ROUTE_END_LABEL", "London Kings Cross")

	viper.SetDefault("MEDIA_DIR", "data")
	viper.SetDefault("MEDIA_BASE_URL", "/media")

	viper.SetDefault("TEXTGEN_MODEL", "facebook/blenderbot-400M-distill")
	viper.SetDefault("TEXTGEN_TIMEOUT", 30)

	viper.SetDefault("LOG_LEVEL", "info")

	viper.SetDefault("WORKER_CONSUMER_GROUP", "route-import-workers")
	viper.SetDefault("WORKER_MAX_RETRIES", 3)
}

// Load читает .env (если он есть) и переменные окружения
func Load() (*Config, error) {
	return LoadFile(".env")
}

// LoadFile - то же, что Load, но с явным путём к .env
func LoadFile(path string) (*Config, error) {
	viper.Reset()
	setDefaults()
	viper.SetConfigFile(path)
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var pathErr *fs.PathError
		if !errors.As(err, &pathErr) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:        viper.GetString("API_HOST"),
			Port:        viper.GetInt("API_PORT"),
			Env:         viper.GetString("API_ENV"),
			CORSOrigins: viper.GetString("CORS_ORIGINS"),
		},
		Data: DataConfig{
			Source:         strings.ToLower(viper.GetString("DATA_SOURCE")),
			Dir:            viper.GetString("DATA_DIR"),
			DefaultDataset: viper.GetString("DATA_DEFAULT_DATASET"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			DBName:          viper.GetString("DB_NAME"),
			SSLMode:         viper.GetString("DB_SSLMODE"),
			MaxConns:        viper.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(viper.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		SQLite: SQLiteConfig{
			Path: viper.GetString("SQLITE_PATH"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			LayerCacheTTL:  time.Duration(viper.GetInt("LAYER_CACHE_TTL")) * time.Second,
			ChatCacheTTL:   time.Duration(viper.GetInt("CHAT_CACHE_TTL")) * time.Second,
			ChatHistoryTTL: time.Duration(viper.GetInt("CHAT_HISTORY_TTL")) * time.Second,
		},
		Map: MapConfig{
			CenterLat:  viper.GetFloat64("MAP_CENTER_LAT"),
			CenterLon:  viper.GetFloat64("MAP_CENTER_LON"),
			Zoom:       viper.GetInt("MAP_ZOOM"),
			StartLabel: viper.GetString("ROUTE_START_LABEL"),
			EndLabel:   viper.GetString("ROUTE_END_LABEL"),
		},
		Media: MediaConfig{
			Dir:     viper.GetString("MEDIA_DIR"),
			Catalog: viper.GetString("MEDIA_CATALOG"),
			BaseURL: strings.TrimRight(viper.GetString("MEDIA_BASE_URL"), "/"),
		},
		TextGen: TextGenConfig{
			URL:     strings.TrimRight(viper.GetString("TEXTGEN_URL"), "/"),
			Model:   viper.GetString("TEXTGEN_MODEL"),
			Token:   viper.GetString("TEXTGEN_TOKEN"),
			Timeout: time.Duration(viper.GetInt("TEXTGEN_TIMEOUT")) * time.Second,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Worker: WorkerConfig{
			Enabled:       viper.GetBool("WORKER_ENABLED"),
			ConsumerGroup: viper.GetString("WORKER_CONSUMER_GROUP"),
			MaxRetries:    viper.GetInt("WORKER_MAX_RETRIES"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Data.Source {
	case DataSourceCSV, DataSourcePostgres, DataSourceSQLite:
	default:
		return fmt.Errorf("unknown DATA_SOURCE %q (expected csv, postgres or sqlite)", c.Data.Source)
	}
	if c.Server.Port <= 0 {
		return fmt.Errorf("invalid API_PORT %d", c.Server.Port)
	}
	return nil
}

// TextGenEnabled - true, если настроен endpoint генерации текста
func (c *Config) TextGenEnabled() bool {
	return c.TextGen.URL != ""
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// DSN - строка подключения pgx в формате URL, пароль экранируется
func (c DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": []string{c.SSLMode}}.Encode(),
	}
	return u.String()
}

// Addr - host:port для go-redis
func (c RedisConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

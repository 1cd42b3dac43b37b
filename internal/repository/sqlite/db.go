package sqlite

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/visual-twin/internal/config"
	"github.com/visual-twin/internal/domain/repository"
	"github.com/visual-twin/internal/repository/sqlstore"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

func init() {
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

// DB - встроенное хранилище наборов данных на SQLite
type DB struct {
	*sqlx.DB
	path   string
	logger *zap.Logger
}

// New открывает (или создает) файл базы и таблицу route_points
func New(cfg *config.SQLiteConfig, logger *zap.Logger) (*DB, error) {
	if dir := filepath.Dir(cfg.Path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create sqlite dir: %w", err)
		}
	}

	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", cfg.Path)
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping sqlite: %w", err)
	}

	if err := sqlstore.EnsureSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	logger.Info("SQLite opened", zap.String("path", cfg.Path))

	return &DB{DB: db, path: cfg.Path, logger: logger}, nil
}

func (db *DB) Close() error {
	db.logger.Info("Closing SQLite", zap.String("path", db.path))
	return db.DB.Close()
}

func (db *DB) Health(ctx context.Context) error {
	return db.PingContext(ctx)
}

// NewRouteRepository создает хранилище наборов данных маршрута в SQLite
func NewRouteRepository(db *DB) repository.RouteStore {
	return sqlstore.NewRouteStore(db.DB, db.logger)
}

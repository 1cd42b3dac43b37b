// Package sqlstore хранит наборы данных маршрута в SQL таблице route_points.
// Запросы пишутся с плейсхолдерами "?" и переводятся в диалект драйвера через sqlx.Rebind,
// поэтому один и тот же store работает поверх PostgreSQL (pgx) и SQLite.
package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/visual-twin/internal/domain"
	"github.com/visual-twin/internal/domain/repository"
	"go.uber.org/zap"
)

// Schema - DDL таблицы точек маршрута, совместимый с PostgreSQL и SQLite
const Schema = `
CREATE TABLE IF NOT EXISTS route_points (
	dataset_id TEXT             NOT NULL,
	seq        INTEGER          NOT NULL,
	lat        DOUBLE PRECISION NOT NULL,
	lon        DOUBLE PRECISION NOT NULL,
	station    TEXT             NOT NULL DEFAULT '0',
	activity   DOUBLE PRECISION NOT NULL DEFAULT 0,
	vibration  DOUBLE PRECISION,
	PRIMARY KEY (dataset_id, seq)
)`

type routePointRow struct {
	DatasetID string          `db:"dataset_id"`
	Seq       int             `db:"seq"`
	Lat       float64         `db:"lat"`
	Lon       float64         `db:"lon"`
	Station   string          `db:"station"`
	Activity  float64         `db:"activity"`
	Vibration sql.NullFloat64 `db:"vibration"`
}

type routeStore struct {
	db     *sqlx.DB
	logger *zap.Logger
}

// NewRouteStore создает RouteStore поверх подключения sqlx
func NewRouteStore(db *sqlx.DB, logger *zap.Logger) repository.RouteStore {
	return &routeStore{
		db:     db,
		logger: logger,
	}
}

// EnsureSchema создает таблицу route_points, если её нет
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("create route_points: %w", err)
	}
	return nil
}

func (r *routeStore) GetDataset(ctx context.Context, id string) (*domain.Dataset, error) {
	query := r.db.Rebind(`
		SELECT dataset_id, seq, lat, lon, station, activity, vibration
		FROM route_points
		WHERE dataset_id = ?
		ORDER BY seq`)

	var rows []routePointRow
	if err := r.db.SelectContext(ctx, &rows, query, id); err != nil {
		r.logger.Error("Failed to select route points", zap.String("dataset_id", id), zap.Error(err))
		return nil, fmt.Errorf("select route points: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrDatasetNotFound, id)
	}

	records := make([]domain.Record, len(rows))
	for i, row := range rows {
		if i < len(rows)-1 && !row.Vibration.Valid {
			return nil, fmt.Errorf("dataset %s: missing vibration at seq %d", id, row.Seq)
		}
		records[i] = domain.Record{
			Lat:       row.Lat,
			Lon:       row.Lon,
			Station:   row.Station,
			Activity:  row.Activity,
			Vibration: row.Vibration.Float64,
		}
	}

	return domain.NewDatasetFromRecords(id, records), nil
}

func (r *routeStore) ListDatasets(ctx context.Context) ([]string, error) {
	ids := make([]string, 0)
	if err := r.db.SelectContext(ctx, &ids,
		`SELECT DISTINCT dataset_id FROM route_points ORDER BY dataset_id`); err != nil {
		r.logger.Error("Failed to list datasets", zap.Error(err))
		return nil, fmt.Errorf("list datasets: %w", err)
	}
	return ids, nil
}

func (r *routeStore) SaveDataset(ctx context.Context, dataset *domain.Dataset) error {
	if err := domain.ValidateDatasetID(dataset.ID); err != nil {
		return err
	}
	if err := dataset.Validate(); err != nil {
		return err
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, tx.Rebind(`DELETE FROM route_points WHERE dataset_id = ?`), dataset.ID); err != nil {
		return fmt.Errorf("delete old points: %w", err)
	}

	stmt, err := tx.PreparexContext(ctx, tx.Rebind(`
		INSERT INTO route_points (dataset_id, seq, lat, lon, station, activity, vibration)
		VALUES (?, ?, ?, ?, ?, ?, ?)`))
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	records := dataset.Records()
	for i, rec := range records {
		vibration := sql.NullFloat64{Float64: rec.Vibration, Valid: i < len(dataset.Vibrations)}
		if _, err := stmt.ExecContext(ctx,
			dataset.ID, i, rec.Lat, rec.Lon, rec.Station, rec.Activity, vibration,
		); err != nil {
			return fmt.Errorf("insert point %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	r.logger.Info("Dataset saved",
		zap.String("dataset_id", dataset.ID),
		zap.Int("points", len(records)),
		zap.Int("stations", len(dataset.Stations)))
	return nil
}

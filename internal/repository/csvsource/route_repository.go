package csvsource

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/visual-twin/internal/domain"
	"go.uber.org/zap"
)

const (
	fileExt    = ".csv"
	minColumns = 5
)

// RouteRepository читает наборы данных из CSV файлов <dir>/<id>.csv
type RouteRepository struct {
	dir    string
	logger *zap.Logger
}

// NewRouteRepository создает репозиторий поверх директории с CSV
func NewRouteRepository(dir string, logger *zap.Logger) *RouteRepository {
	return &RouteRepository{
		dir:    dir,
		logger: logger,
	}
}

// GetDataset читает <dir>/<id>.csv
func (r *RouteRepository) GetDataset(ctx context.Context, id string) (*domain.Dataset, error) {
	if err := domain.ValidateDatasetID(id); err != nil {
		return nil, err
	}
	return r.ReadFile(ctx, id+fileExt, id)
}

// ReadFile читает файл name из директории репозитория как набор данных id.
// Имя не может содержать разделителей пути.
func (r *RouteRepository) ReadFile(ctx context.Context, name, id string) (*domain.Dataset, error) {
	if name != filepath.Base(name) || name == "." || name == ".." {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidFileName, name)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := filepath.Join(r.dir, name)
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrDatasetNotFound, name)
		}
		r.logger.Error("Failed to open dataset file", zap.String("path", path), zap.Error(err))
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	records, err := ParseRecords(f)
	if err != nil {
		r.logger.Error("Failed to parse dataset file", zap.String("path", path), zap.Error(err))
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrMalformedData, name, err)
	}

	dataset := domain.NewDatasetFromRecords(id, records)
	if err := dataset.Validate(); err != nil {
		r.logger.Error("Invalid dataset file", zap.String("path", path), zap.Error(err))
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	r.logger.Debug("Dataset loaded from csv",
		zap.String("dataset_id", id),
		zap.Int("points", len(dataset.Route)),
		zap.Int("stations", len(dataset.Stations)))

	return dataset, nil
}

// ListDatasets возвращает имена CSV файлов без расширения
func (r *RouteRepository) ListDatasets(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("read data dir: %w", err)
	}

	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), fileExt) {
			continue
		}
		id := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
		if domain.ValidateDatasetID(id) == nil {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

// ParseRecords разбирает CSV: заголовок, затем lat, lon, station|"0", activity, vibration
func ParseRecords(src io.Reader) ([]domain.Record, error) {
	reader := csv.NewReader(src)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return []domain.Record{}, nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	records := make([]domain.Record, 0, 256)
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		line, _ := reader.FieldPos(0)
		rec, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, rec)
	}

	return records, nil
}

func parseRow(row []string) (domain.Record, error) {
	if len(row) < minColumns {
		return domain.Record{}, fmt.Errorf("expected %d columns, got %d", minColumns, len(row))
	}

	var (
		rec domain.Record
		err error
	)
	if rec.Lat, err = parseFloat(row[0], "latitude"); err != nil {
		return rec, err
	}
	if rec.Lon, err = parseFloat(row[1], "longitude"); err != nil {
		return rec, err
	}
	rec.Station = strings.TrimSpace(row[2])
	if rec.Activity, err = parseFloat(row[3], "entries/exits"); err != nil {
		return rec, err
	}
	if rec.Vibration, err = parseFloat(row[4], "vibration"); err != nil {
		return rec, err
	}
	return rec, nil
}

func parseFloat(s, field string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid %s %q", field, s)
	}
	return v, nil
}

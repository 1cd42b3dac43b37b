package postgres

import (
	"github.com/visual-twin/internal/domain/repository"
	"github.com/visual-twin/internal/repository/sqlstore"
)

// NewRouteRepository создает хранилище наборов данных маршрута в PostgreSQL
func NewRouteRepository(db *DB) repository.RouteStore {
	return sqlstore.NewRouteStore(db.DB, db.logger)
}

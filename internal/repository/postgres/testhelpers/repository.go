package testhelpers

import (
	"github.com/jmoiron/sqlx"
	"github.com/visual-twin/internal/domain/repository"
	"github.com/visual-twin/internal/repository/postgres"
	"go.uber.org/zap"
)

// NewDBForTest creates a postgres.DB with test database and logger
func NewDBForTest(db *sqlx.DB, logger *zap.Logger) *postgres.DB {
	return postgres.NewDBForTest(db, logger)
}

// NewRouteRepositoryForTest creates a route repository with test database and logger
func NewRouteRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.RouteStore {
	pgDB := NewDBForTest(db, logger)
	return postgres.NewRouteRepository(pgDB)
}

package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/visual-twin/internal/domain"
	"github.com/visual-twin/internal/domain/repository"
	"github.com/visual-twin/internal/repository/postgres/testhelpers"
)

// RouteRepositoryTestSuite тестирует RouteStore поверх PostgreSQL
type RouteRepositoryTestSuite struct {
	suite.Suite
	testDB *testhelpers.TestDB
	repo   repository.RouteStore
	ctx    context.Context
}

func (s *RouteRepositoryTestSuite) SetupSuite() {
	s.testDB = testhelpers.SetupTestDB(s.T())
	s.ctx = context.Background()
	s.repo = testhelpers.NewRouteRepositoryForTest(s.testDB.DB, s.testDB.Logger)
}

func (s *RouteRepositoryTestSuite) SetupTest() {
	s.Require().NoError(s.testDB.Cleanup(s.ctx))
}

func (s *RouteRepositoryTestSuite) TearDownSuite() {
	if s.testDB != nil {
		s.testDB.Close()
	}
}

func (s *RouteRepositoryTestSuite) dataset(id string) *domain.Dataset {
	return domain.NewDatasetFromRecords(id, []domain.Record{
		{Lat: 52.1943, Lon: 0.1373, Station: "Cambridge", Activity: 11000000, Vibration: 0.1},
		{Lat: 52.0000, Lon: 0.0500, Station: "0", Vibration: 0.5},
		{Lat: 51.5320, Lon: -0.1233, Station: "London Kings Cross", Activity: 33000000, Vibration: 0.7},
	})
}

func (s *RouteRepositoryTestSuite) TestSaveAndGet() {
	s.Require().NoError(s.repo.SaveDataset(s.ctx, s.dataset("cam-kgx")))

	got, err := s.repo.GetDataset(s.ctx, "cam-kgx")
	s.Require().NoError(err)

	s.Equal("cam-kgx", got.ID)
	s.Len(got.Route, 3)
	s.Equal([]float64{0.1, 0.5}, got.Vibrations)
	s.Require().Len(got.Stations, 2)
	s.Equal("London Kings Cross", got.Stations[1].Name)
	s.Equal(2, got.Stations[1].Index)
}

func (s *RouteRepositoryTestSuite) TestSaveReplaces() {
	s.Require().NoError(s.repo.SaveDataset(s.ctx, s.dataset("cam-kgx")))

	shorter := domain.NewDatasetFromRecords("cam-kgx", []domain.Record{
		{Lat: 52.0, Lon: 0.1, Station: "0", Vibration: 0.2},
		{Lat: 51.9, Lon: 0.0, Station: "0"},
	})
	s.Require().NoError(s.repo.SaveDataset(s.ctx, shorter))

	got, err := s.repo.GetDataset(s.ctx, "cam-kgx")
	s.Require().NoError(err)
	s.Len(got.Route, 2)
	s.Empty(got.Stations)
}

func (s *RouteRepositoryTestSuite) TestGetMissing() {
	_, err := s.repo.GetDataset(s.ctx, "missing")
	s.ErrorIs(err, domain.ErrDatasetNotFound)
}

func (s *RouteRepositoryTestSuite) TestListDatasets() {
	s.Require().NoError(s.repo.SaveDataset(s.ctx, s.dataset("b")))
	s.Require().NoError(s.repo.SaveDataset(s.ctx, s.dataset("a")))

	ids, err := s.repo.ListDatasets(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"a", "b"}, ids)
}

func TestRouteRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RouteRepositoryTestSuite))
}

package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/visual-twin/internal/domain"
)

// MockRouteStore is a mock of RouteStore (and RouteRepository)
type MockRouteStore struct {
	mock.Mock
}

func (m *MockRouteStore) GetDataset(ctx context.Context, id string) (*domain.Dataset, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dataset), args.Error(1)
}

func (m *MockRouteStore) ListDatasets(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockRouteStore) SaveDataset(ctx context.Context, dataset *domain.Dataset) error {
	args := m.Called(ctx, dataset)
	return args.Error(0)
}

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, keys ...string) error {
	args := m.Called(ctx, keys)
	return args.Error(0)
}

func (m *MockCacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

// MockChatHistoryRepository is a mock of ChatHistoryRepository
type MockChatHistoryRepository struct {
	mock.Mock
}

func (m *MockChatHistoryRepository) AppendTurns(ctx context.Context, sessionID string, turns []domain.ChatTurn, ttl time.Duration) error {
	args := m.Called(ctx, sessionID, turns, ttl)
	return args.Error(0)
}

func (m *MockChatHistoryRepository) GetHistory(ctx context.Context, sessionID string) ([]domain.ChatTurn, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ChatTurn), args.Error(1)
}

// MockTextGenerator is a mock of TextGenerator
type MockTextGenerator struct {
	mock.Mock
}

func (m *MockTextGenerator) Generate(ctx context.Context, text string) (string, error) {
	args := m.Called(ctx, text)
	return args.String(0), args.Error(1)
}

func (m *MockTextGenerator) Model() string {
	return "facebook/blenderbot-400M-distill"
}

// MockStreamRepository is a mock of StreamRepository
type MockStreamRepository struct {
	mock.Mock
}

func (m *MockStreamRepository) ConsumeStream(ctx context.Context, stream, group, consumer string) (<-chan domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(<-chan domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) ConsumeBatch(ctx context.Context, stream, group, consumer string, maxCount int) ([]domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer, maxCount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) ClaimPending(ctx context.Context, stream, group, consumer string, minIdle time.Duration, maxCount int) ([]domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer, minIdle, maxCount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) AckMessage(ctx context.Context, stream, group, messageID string) error {
	args := m.Called(ctx, stream, group, messageID)
	return args.Error(0)
}

func (m *MockStreamRepository) AckMessages(ctx context.Context, stream, group string, messageIDs []string) error {
	args := m.Called(ctx, stream, group, messageIDs)
	return args.Error(0)
}

func (m *MockStreamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	args := m.Called(ctx, stream, group)
	return args.Error(0)
}

func (m *MockStreamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	args := m.Called(ctx, stream, data)
	return args.Error(0)
}

// stubMedia is a fixed media catalog
type stubMedia struct {
	videos map[string]string
	images []string
}

func (s stubMedia) StationVideo(name string) (string, bool) {
	v, ok := s.videos[name]
	return v, ok
}

func (s stubMedia) ZoneImages() []string {
	return s.images
}

func fixtureDataset() *domain.Dataset {
	return &domain.Dataset{
		ID: "route_info_vibrations",
		Route: []domain.Point{
			{Lat: 52.1943, Lon: 0.1373},
			{Lat: 52.1000, Lon: 0.1000},
			{Lat: 51.9000, Lon: 0.0000},
			{Lat: 51.8000, Lon: -0.0500},
			{Lat: 51.7000, Lon: -0.0800},
			{Lat: 51.5320, Lon: -0.1233},
		},
		Vibrations: []float64{0.1, 0.5, 0.5, 0.1, 0.45},
		Stations: []domain.Station{
			{Index: 0, Name: "Cambridge", Lat: 52.1943, Lon: 0.1373, Activity: 11000000},
			{Index: 4, Name: "Stevenage", Lat: 51.7000, Lon: -0.0800, Activity: 4500000},
			{Index: 5, Name: "London Kings Cross", Lat: 51.5320, Lon: -0.1233, Activity: 33000000},
		},
	}
}

package handler

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/aldenjg/cornharvest/internal/domain"
	"github.com/aldenjg/cornharvest/internal/event"
	"github.com/aldenjg/cornharvest/internal/eventlog"
	"github.com/aldenjg/cornharvest/internal/game"
)

// MockGameService is a mock of game.Service
type MockGameService struct {
	mock.Mock
}

func (m *MockGameService) Create(ctx context.Context, seed int64) (*game.Snapshot, error) {
	args := m.Called(ctx, seed)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*game.Snapshot), args.Error(1)
}

func (m *MockGameService) Get(ctx context.Context, id string) (*game.Snapshot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*game.Snapshot), args.Error(1)
}

func (m *MockGameService) SetAction(ctx context.Context, id string, kind domain.ActionKind) (*game.Snapshot, error) {
	args := m.Called(ctx, id, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*game.Snapshot), args.Error(1)
}

func (m *MockGameService) Select(ctx context.Context, id string, plots []int) (*game.Snapshot, error) {
	args := m.Called(ctx, id, plots)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*game.Snapshot), args.Error(1)
}

func (m *MockGameService) Execute(ctx context.Context, id string) (*game.ExecuteResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*game.ExecuteResult), args.Error(1)
}

func (m *MockGameService) Cancel(ctx context.Context, id string) (*game.Snapshot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*game.Snapshot), args.Error(1)
}

func (m *MockGameService) Purchase(ctx context.Context, id string, order map[domain.ItemKind]int) (*game.PurchaseResult, error) {
	args := m.Called(ctx, id, order)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*game.PurchaseResult), args.Error(1)
}

func (m *MockGameService) EndDay(ctx context.Context, id string) (*game.DayReport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*game.DayReport), args.Error(1)
}

func (m *MockGameService) Forecast(ctx context.Context, id string) ([]string, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockGameService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockGameService) Shutdown(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

var _ game.Service = (*MockGameService)(nil)

// MockJournal is a mock of eventlog.Service
type MockJournal struct {
	mock.Mock
}

func (m *MockJournal) Subscribe(bus event.Bus) error {
	return m.Called(bus).Error(0)
}

func (m *MockJournal) Journal(ctx context.Context, sessionID string, limit int) ([]eventlog.Entry, error) {
	args := m.Called(ctx, sessionID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]eventlog.Entry), args.Error(1)
}

func (m *MockJournal) CleanupOldEvents(ctx context.Context, retention time.Duration) (int64, error) {
	args := m.Called(ctx, retention)
	return args.Get(0).(int64), args.Error(1)
}

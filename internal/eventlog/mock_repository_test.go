package eventlog

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/aldenjg/cornharvest/internal/event"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Append(ctx context.Context, entry Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockRepository) List(ctx context.Context, sessionID string, limit int) ([]Entry, error) {
	args := m.Called(ctx, sessionID, limit)
	return args.Get(0).([]Entry), args.Error(1)
}

func (m *MockRepository) CleanupOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

// MockEventBus is a mock implementation of event.Bus
type MockEventBus struct {
	mock.Mock
}

func (m *MockEventBus) Publish(ctx context.Context, evt event.Event) error {
	args := m.Called(ctx, evt)
	return args.Error(0)
}

func (m *MockEventBus) Subscribe(eventType event.Type, handler event.Handler) {
	m.Called(eventType, handler)
}

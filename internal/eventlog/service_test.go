package eventlog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/aldenjg/cornharvest/internal/domain"
	"github.com/aldenjg/cornharvest/internal/event"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestService(repo Repository) *service {
	svc := NewService(repo).(*service)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func TestService_Subscribe(t *testing.T) {
	bus := new(MockEventBus)
	for _, et := range []event.Type{event.SessionStarted, event.ActionApplied, event.ItemsPurchased, event.DayEnded, event.GameOver} {
		bus.On("Subscribe", et, mock.Anything).Return()
	}

	require.NoError(t, NewService(new(MockRepository)).Subscribe(bus))
	bus.AssertExpectations(t)
}

func TestService_HandleEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("appends typed payload as map", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newTestService(repo)

		evt := event.NewGameOverEvent("s1", domain.OutcomeWin, 12000, 30)
		repo.On("Append", ctx, mock.MatchedBy(func(e Entry) bool {
			return e.SessionID == "s1" &&
				e.EventType == string(event.GameOver) &&
				e.Payload["outcome"] == string(domain.OutcomeWin) &&
				e.CreatedAt.Equal(fixedNow)
		})).Return(nil)

		require.NoError(t, svc.handleEvent(ctx, evt))
		repo.AssertExpectations(t)
	})

	t.Run("skips events without session", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newTestService(repo)

		require.NoError(t, svc.handleEvent(ctx, event.Event{Type: event.DayEnded, Payload: map[string]interface{}{}}))
		repo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
	})

	t.Run("repository error is returned", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newTestService(repo)
		repo.On("Append", ctx, mock.Anything).Return(errors.New("full"))

		err := svc.handleEvent(ctx, event.NewSessionStartedEvent("s1", 1, 500, 25))
		assert.EqualError(t, err, "full")
	})
}

func TestService_JournalLimits(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		asked, want int
	}{
		{0, DefaultJournalLimit},
		{-3, DefaultJournalLimit},
		{10, 10},
		{MaxEntriesPerSession + 1, MaxEntriesPerSession},
	}
	for _, tt := range tests {
		repo := new(MockRepository)
		repo.On("List", ctx, "s1", tt.want).Return([]Entry{}, nil)

		_, err := NewService(repo).Journal(ctx, "s1", tt.asked)
		require.NoError(t, err)
		repo.AssertExpectations(t)
	}
}

func TestService_CleanupUsesRetention(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo)
	repo.On("CleanupOlderThan", mock.Anything, fixedNow.Add(-time.Hour)).Return(int64(4), nil)

	n, err := svc.CleanupOldEvents(context.Background(), time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
}

func TestService_WithMemoryBus(t *testing.T) {
	bus := event.NewMemoryBus()
	svc := NewService(NewMemoryRepository(0))
	require.NoError(t, svc.Subscribe(bus))

	ctx := context.Background()
	require.NoError(t, bus.Publish(ctx, event.NewSessionStartedEvent("s1", 7, 500, 25)))
	require.NoError(t, bus.Publish(ctx, event.NewActionAppliedEvent("s1", domain.ActionPlant, 3, 0, 500, "Planted 3 corn seeds.")))
	require.NoError(t, bus.Publish(ctx, event.NewSessionStartedEvent("s2", 8, 500, 25)))

	entries, err := svc.Journal(ctx, "s1", 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, string(event.SessionStarted), entries[0].EventType)
	assert.Equal(t, string(event.ActionApplied), entries[1].EventType)
	assert.Equal(t, "Planted 3 corn seeds.", entries[1].Payload["message"])
	assert.Less(t, entries[0].ID, entries[1].ID)
}

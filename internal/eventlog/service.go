package eventlog

import (
	"context"
	"time"

	"github.com/aldenjg/cornharvest/internal/event"
	"github.com/aldenjg/cornharvest/internal/logger"
)

// Service keeps a per-session journal of farm events
type Service interface {
	// Subscribe registers the journal on every farm event type
	Subscribe(bus event.Bus) error

	// Journal returns up to limit of the newest entries for a session
	Journal(ctx context.Context, sessionID string, limit int) ([]Entry, error)

	// CleanupOldEvents removes entries older than retention
	CleanupOldEvents(ctx context.Context, retention time.Duration) (int64, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

// NewService creates a journal over repo
func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) Subscribe(bus event.Bus) error {
	for _, eventType := range []event.Type{
		event.SessionStarted,
		event.ActionApplied,
		event.ItemsPurchased,
		event.DayEnded,
		event.GameOver,
	} {
		bus.Subscribe(eventType, s.handleEvent)
	}
	return nil
}

func (s *service) handleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	sessionID := evt.SessionID()
	if sessionID == "" {
		log.Debug(LogMsgEventMissingSession, LogFieldType, evt.Type)
		return nil
	}

	payload, err := event.DecodePayload[map[string]interface{}](evt.Payload)
	if err != nil {
		log.Warn(LogMsgFailedToLogEvent, LogFieldType, evt.Type, LogFieldError, err)
		return nil
	}

	entry := Entry{
		SessionID: sessionID,
		EventType: string(evt.Type),
		Payload:   payload,
		CreatedAt: s.now(),
	}
	if err := s.repo.Append(ctx, entry); err != nil {
		log.Error(LogMsgFailedToLogEvent, LogFieldError, err, LogFieldType, evt.Type)
		return err
	}

	log.Debug(LogMsgEventLogged, LogFieldType, evt.Type, LogFieldSessionID, sessionID)
	return nil
}

func (s *service) Journal(ctx context.Context, sessionID string, limit int) ([]Entry, error) {
	switch {
	case limit <= 0:
		limit = DefaultJournalLimit
	case limit > MaxEntriesPerSession:
		limit = MaxEntriesPerSession
	}
	return s.repo.List(ctx, sessionID, limit)
}

func (s *service) CleanupOldEvents(ctx context.Context, retention time.Duration) (int64, error) {
	return s.repo.CleanupOlderThan(ctx, s.now().Add(-retention))
}

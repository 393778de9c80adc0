package eventlog

import (
	"context"
	"sync"
	"time"
)

// Entry is one journaled farm event
type Entry struct {
	ID        int64                  `json:"id"`
	SessionID string                 `json:"session_id"`
	EventType string                 `json:"event_type"`
	Payload   map[string]interface{} `json:"payload"`
	CreatedAt time.Time              `json:"created_at"`
}

// Repository stores journal entries
type Repository interface {
	// Append stores an entry and assigns its ID
	Append(ctx context.Context, entry Entry) error

	// List returns up to limit of the newest entries for a session, oldest first
	List(ctx context.Context, sessionID string, limit int) ([]Entry, error)

	// CleanupOlderThan removes entries created before cutoff
	CleanupOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type memoryRepository struct {
	mu       sync.RWMutex
	nextID   int64
	max      int
	sessions map[string][]Entry
}

// NewMemoryRepository keeps at most maxPerSession entries for each session
func NewMemoryRepository(maxPerSession int) Repository {
	if maxPerSession <= 0 {
		maxPerSession = MaxEntriesPerSession
	}
	return &memoryRepository{
		max:      maxPerSession,
		sessions: make(map[string][]Entry),
	}
}

func (r *memoryRepository) Append(_ context.Context, entry Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	entry.ID = r.nextID

	entries := append(r.sessions[entry.SessionID], entry)
	if over := len(entries) - r.max; over > 0 {
		entries = append([]Entry(nil), entries[over:]...)
	}
	r.sessions[entry.SessionID] = entries
	return nil
}

func (r *memoryRepository) List(_ context.Context, sessionID string, limit int) ([]Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := r.sessions[sessionID]
	if limit > 0 && len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}
	return append([]Entry(nil), entries...), nil
}

func (r *memoryRepository) CleanupOlderThan(_ context.Context, cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var removed int64
	for id, entries := range r.sessions {
		keep := entries[:0]
		for _, e := range entries {
			if e.CreatedAt.Before(cutoff) {
				removed++
				continue
			}
			keep = append(keep, e)
		}
		if len(keep) == 0 {
			delete(r.sessions, id)
			continue
		}
		r.sessions[id] = keep
	}
	return removed, nil
}

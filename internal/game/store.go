package game

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/aldenjg/cornharvest/internal/concurrency"
	"github.com/aldenjg/cornharvest/internal/logger"
)

// sessionStore is a bounded, expiring map of live sessions. Evicted
// sessions also drop their lock.
type sessionStore struct {
	mu    sync.Mutex // serializes writes
	lru   *expirable.LRU[string, *Session]
	locks *concurrency.LockManager
}

func newSessionStore(size int, ttl time.Duration, locks *concurrency.LockManager) *sessionStore {
	if size <= 0 {
		size = DefaultSessionCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	onEvict := func(id string, s *Session) {
		locks.Remove(id)
		logger.Debug(LogMsgSessionEvicted, "session_id", id, "day", s.Day())
	}
	return &sessionStore{
		lru:   expirable.NewLRU[string, *Session](size, onEvict, ttl),
		locks: locks,
	}
}

func (st *sessionStore) Get(id string) (*Session, bool) { return st.lru.Get(id) }
func (st *sessionStore) Contains(id string) bool       { return st.lru.Contains(id) }
func (st *sessionStore) Len() int                      { return st.lru.Len() }

// Put stores s and restarts its TTL. Adding may evict the least recently
// used session.
func (st *sessionStore) Put(s *Session) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.lru.Add(s.ID(), s)
}

// Touch restarts the TTL of s if it is still stored. A session evicted or
// deleted in the meantime stays gone.
func (st *sessionStore) Touch(s *Session) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	if cur, ok := st.lru.Peek(s.ID()); !ok || cur != s {
		return false
	}
	st.lru.Add(s.ID(), s)
	return true
}

func (st *sessionStore) Remove(id string) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.lru.Remove(id)
}

func (st *sessionStore) Purge() {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.lru.Purge()
}

package concurrency

import (
	"sync"
)

// LockManager hands out one mutex per key, typically a session ID
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

// GetLock returns a mutex for the given key
func (lm *LockManager) GetLock(key string) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// Remove forgets the mutex for key. Callers must not hold it.
func (lm *LockManager) Remove(key string) {
	lm.locks.Delete(key)
}

// Len counts the keys currently tracked.
func (lm *LockManager) Len() int {
	n := 0
	lm.locks.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

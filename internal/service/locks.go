package service

import "sync"

// shopLocks hands out one mutex per shop id. Admissions and bulk removals
// against the same shop serialize on it so the read-decide-write sequence
// (occupancy check, max-id computation, insert) cannot interleave; different
// shops proceed independently. Locks are never held across requests, only for
// the duration of a single operation.
type shopLocks struct {
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func newShopLocks() *shopLocks {
	return &shopLocks{locks: make(map[int64]*sync.Mutex)}
}

// acquire locks the shop's mutex and returns it; the caller must Unlock it.
func (l *shopLocks) acquire(shopID int64) *sync.Mutex {
	l.mu.Lock()
	m, ok := l.locks[shopID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[shopID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m
}

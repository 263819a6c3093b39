package cache

import (
	"sync"
	"time"

	"statusio-go/internal/status"
)

type entry struct {
	records   []status.Record
	expiresAt time.Time
}

// Memory is the process-wide result cache: a mutex-protected keyed store
// with lazy expiry. It bounds outbound call volume per configuration
// fingerprint within a sliding window; it makes no consistency promise
// beyond that, and a read immediately after expiry recomputes everything.
type Memory struct {
	mu    sync.Mutex
	items map[string]entry
	now   func() time.Time
}

// NewMemory creates an empty cache using the wall clock.
func NewMemory() *Memory {
	return NewMemoryWithClock(time.Now)
}

// NewMemoryWithClock creates a cache with an injectable clock for tests.
func NewMemoryWithClock(now func() time.Time) *Memory {
	if now == nil {
		now = time.Now
	}
	return &Memory{items: make(map[string]entry), now: now}
}

// Get returns the cached records for key. An entry whose expiry has passed
// behaves as a miss and is evicted on the spot; there is no background
// sweep.
func (m *Memory) Get(key string) ([]status.Record, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.items[key]
	if !ok {
		return nil, false
	}
	if m.now().After(e.expiresAt) {
		delete(m.items, key)
		return nil, false
	}
	return e.records, true
}

// Put stores records under key for ttl. A non-positive ttl stores nothing.
func (m *Memory) Put(key string, records []status.Record, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = entry{records: records, expiresAt: m.now().Add(ttl)}
}

// Len reports the live entry count, expired entries included until read.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}

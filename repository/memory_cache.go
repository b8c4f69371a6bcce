package repository

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	value     string
	storedAt  time.Time
	expiresAt time.Time
}

func (e memoryEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

// MemoryCache is a process-local CacheRepository. Expired entries are dropped
// on read and by a periodic sweep. When maxEntries is reached, storing a new
// key evicts the oldest entry.
type MemoryCache struct {
	mu         sync.RWMutex
	data       map[string]memoryEntry
	maxEntries int
	now        func() time.Time

	done     chan struct{}
	stopOnce sync.Once
}

// NewMemoryCache creates a cache holding at most maxEntries keys (<= 0 means
// unbounded). A positive sweepInterval starts a background sweeper; call Stop
// to release it.
func NewMemoryCache(maxEntries int, sweepInterval time.Duration) *MemoryCache {
	m := newMemoryCache(maxEntries, time.Now)
	if sweepInterval > 0 {
		go m.sweepLoop(sweepInterval)
	}
	return m
}

func newMemoryCache(maxEntries int, now func() time.Time) *MemoryCache {
	return &MemoryCache{
		data:       make(map[string]memoryEntry),
		maxEntries: maxEntries,
		now:        now,
		done:       make(chan struct{}),
	}
}

func (m *MemoryCache) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	entry, ok := m.data[key]
	m.mu.RUnlock()
	if !ok {
		return "", false, nil
	}

	if entry.expired(m.now()) {
		m.mu.Lock()
		if current, still := m.data[key]; still && current.expiresAt.Equal(entry.expiresAt) {
			delete(m.data, key)
		}
		m.mu.Unlock()
		return "", false, nil
	}
	return entry.value, true, nil
}

// Set stores value; ttl <= 0 keeps it until it is evicted or the process exits.
func (m *MemoryCache) Set(_ context.Context, key string, value string, ttl time.Duration) error {
	now := m.now()
	entry := memoryEntry{value: value, storedAt: now}
	if ttl > 0 {
		entry.expiresAt = now.Add(ttl)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.data[key]; !exists && m.maxEntries > 0 && len(m.data) >= m.maxEntries {
		m.removeExpiredLocked(now)
		if len(m.data) >= m.maxEntries {
			m.evictOldestLocked()
		}
	}
	m.data[key] = entry
	return nil
}

func (m *MemoryCache) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

func (m *MemoryCache) sweepLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.sweep()
		case <-m.done:
			return
		}
	}
}

// sweep drops every expired entry, read or not.
func (m *MemoryCache) sweep() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.removeExpiredLocked(m.now())
}

func (m *MemoryCache) removeExpiredLocked(now time.Time) {
	for key, entry := range m.data {
		if entry.expired(now) {
			delete(m.data, key)
		}
	}
}

func (m *MemoryCache) evictOldestLocked() {
	var (
		oldestKey string
		oldestAt  time.Time
		found     bool
	)
	for key, entry := range m.data {
		if !found || entry.storedAt.Before(oldestAt) {
			oldestKey, oldestAt, found = key, entry.storedAt, true
		}
	}
	if found {
		delete(m.data, oldestKey)
	}
}

// Stop ends the sweeper. Safe to call more than once.
func (m *MemoryCache) Stop() {
	m.stopOnce.Do(func() { close(m.done) })
}

package cache

import (
	"sync"
	"sync/atomic"
	"time"
)

// Memory is an in-process TTL set keyed by opaque strings. The token
// revocation list uses it to remember blacklisted token IDs until their
// natural expiry.
type Memory struct {
	entries map[string]time.Time // key -> expiry
	mu      sync.RWMutex
	maxSize int

	// counters
	hits      int64
	misses    int64
	sets      int64
	deletes   int64
	evictions int64
}

// Stats are simple counters for cache behavior.
// These are intended for diagnostics and monitoring.
type Stats struct {
	Hits      int64 `json:"hits"`
	Misses    int64 `json:"misses"`
	Sets      int64 `json:"sets"`
	Deletes   int64 `json:"deletes"`
	Evictions int64 `json:"evictions"`
	Size      int   `json:"size"`
}

const defaultMaxSize = 10_000

func NewMemory(maxSize int) *Memory {
	if maxSize <= 0 {
		maxSize = defaultMaxSize
	}

	return &Memory{
		entries: make(map[string]time.Time),
		maxSize: maxSize,
	}
}

// Set records key for ttl. A non-positive ttl is a no-op since the entry
// would already be expired.
func (m *Memory) Set(key string, ttl time.Duration) {
	if ttl <= 0 {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// Simple eviction if full: drop expired entries first, then an
	// arbitrary one.
	if len(m.entries) >= m.maxSize {
		now := time.Now()
		for k, exp := range m.entries {
			if exp.Before(now) {
				delete(m.entries, k)
				atomic.AddInt64(&m.evictions, 1)
			}
		}
		if len(m.entries) >= m.maxSize {
			for k := range m.entries {
				delete(m.entries, k)
				atomic.AddInt64(&m.evictions, 1)
				break
			}
		}
	}

	m.entries[key] = time.Now().Add(ttl)
	atomic.AddInt64(&m.sets, 1)
}

// Has reports whether key is present and not expired.
func (m *Memory) Has(key string) bool {
	m.mu.RLock()
	exp, ok := m.entries[key]
	m.mu.RUnlock()

	if !ok || time.Now().After(exp) {
		atomic.AddInt64(&m.misses, 1)
		if ok {
			m.Delete(key)
		}
		return false
	}

	atomic.AddInt64(&m.hits, 1)
	return true
}

func (m *Memory) Delete(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.entries[key]; ok {
		delete(m.entries, key)
		atomic.AddInt64(&m.deletes, 1)
	}
}

func (m *Memory) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = make(map[string]time.Time)
}

func (m *Memory) Stats() Stats {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return Stats{
		Hits:      atomic.LoadInt64(&m.hits),
		Misses:    atomic.LoadInt64(&m.misses),
		Sets:      atomic.LoadInt64(&m.sets),
		Deletes:   atomic.LoadInt64(&m.deletes),
		Evictions: atomic.LoadInt64(&m.evictions),
		Size:      len(m.entries),
	}
}

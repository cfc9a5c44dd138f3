// Package cache provides the in-memory resource cache used by the query
// layer. Entries carry two windows: a freshness window after which a read
// must refetch, and an eviction window after which the entry is dropped
// entirely. Entries are tagged with a scope so that a write can invalidate
// every entry of one resource kind in a single call.
package cache

import (
	"sync"
	"time"
)

// Entry is a single cached value with its timing metadata.
type Entry struct {
	Key        string        // Unique cache key
	Scope      string        // Invalidation scope, e.g. "scans:list"
	Value      any           // Cached value, opaque to the cache
	FetchedAt  time.Time     // When the value was fetched from the network
	StaleAfter time.Duration // Freshness window; a read past this refetches
	EvictAfter time.Duration // Retention window; the entry is dropped past this
}

// Store is a scoped TTL cache. All methods are safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	entries map[string]*Entry
	nowTime func() time.Time
}

// StoreOption modifies a Store instance.
type StoreOption func(*Store)

// WithNowTime sets the now time function (primarily for testing)
func WithNowTime(nowFunc func() time.Time) StoreOption {
	return func(s *Store) {
		s.nowTime = nowFunc
	}
}

// NewStore creates an empty cache store.
func NewStore(options ...StoreOption) *Store {
	s := &Store{
		entries: make(map[string]*Entry),
		nowTime: time.Now,
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

// Put stores value under key within scope. An existing entry under the same
// key is replaced. StaleAfter must not exceed EvictAfter; it is clamped up
// if it does.
func (s *Store) Put(key, scope string, value any, staleAfter, evictAfter time.Duration) {
	if evictAfter < staleAfter {
		evictAfter = staleAfter
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = &Entry{
		Key:        key,
		Scope:      scope,
		Value:      value,
		FetchedAt:  s.nowTime(),
		StaleAfter: staleAfter,
		EvictAfter: evictAfter,
	}
}

// Get returns the value under key if the entry is still fresh. A stale entry
// is never served: once the freshness window elapses the caller refetches.
// Entries past their eviction window are removed lazily on access.
func (s *Store) Get(key string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ent, ok := s.entries[key]
	if !ok {
		return nil, false
	}
	age := s.nowTime().Sub(ent.FetchedAt)
	if age >= ent.EvictAfter {
		delete(s.entries, key)
		return nil, false
	}
	if age >= ent.StaleAfter {
		return nil, false
	}
	return ent.Value, true
}

// Invalidate removes every entry tagged with scope. Removing from an empty
// or unmatched scope is a no-op.
func (s *Store) Invalidate(scope string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, ent := range s.entries {
		if ent.Scope == scope {
			delete(s.entries, key)
		}
	}
}

// Remove deletes a single key. Idempotent.
func (s *Store) Remove(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
}

// Len returns the number of entries currently held, including stale ones
// that have not yet been evicted.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

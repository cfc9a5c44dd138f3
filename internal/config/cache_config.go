package config

import "time"

type Cache struct{}

var _ CacheConfig = Cache{}

// GetStaleAfter is the window during which a cached read is served without
// touching the network.
func (Cache) GetStaleAfter() time.Duration {
	return GetEnvDuration("SCAN_CACHE_STALE_AFTER", 5*time.Minute)
}

// GetEvictAfter is the window after which a cached entry is dropped
// entirely. Never shorter than the staleness window.
func (Cache) GetEvictAfter() time.Duration {
	return GetEnvDuration("SCAN_CACHE_EVICT_AFTER", 10*time.Minute)
}

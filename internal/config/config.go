package config

import "time"

type Config interface {
	EnvConfig
	APIConfig
	CacheConfig
}

type EnvConfig interface {
	GetAppName() string
	GetEnv() string
}

// APIConfig describes where and how to reach the scan API. Paths are
// configuration, not hard-coded server identity.
type APIConfig interface {
	GetBaseURL() string
	GetHTTPTimeout() time.Duration
	GetRegisterPath() string
	GetLoginPath() string
	GetScansPath() string
}

// CacheConfig sets the freshness and retention windows for cached reads.
type CacheConfig interface {
	GetStaleAfter() time.Duration
	GetEvictAfter() time.Duration
}

type mainConfig struct {
	EnvVars
	API
	Cache
}

func New() Config {
	return mainConfig{}
}

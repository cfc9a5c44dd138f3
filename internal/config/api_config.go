package config

import (
	"time"
)

const (
	baseURLVar     = "SCAN_API_BASE_URL"
	httpTimeoutVar = "SCAN_API_TIMEOUT"
)

type API struct{}

var _ APIConfig = API{}

// GetBaseURL returns the base URL of the scan API (e.g. "https://api.example.com").
// All request paths are resolved against it.
func (API) GetBaseURL() string {
	return GetEnv(baseURLVar, "http://localhost:8000")
}

func (API) GetHTTPTimeout() time.Duration {
	return GetEnvDuration(httpTimeoutVar, 30*time.Second)
}

func (API) GetRegisterPath() string {
	return GetEnv("SCAN_API_REGISTER_PATH", "/auth/register")
}

func (API) GetLoginPath() string {
	return GetEnv("SCAN_API_LOGIN_PATH", "/auth/login")
}

func (API) GetScansPath() string {
	return GetEnv("SCAN_API_SCANS_PATH", "/scans")
}

// GetEnvDuration reads a duration env var ("30s", "5m"), falling back to
// defaultValue when unset or unparseable.
func GetEnvDuration(envVar string, defaultValue time.Duration) time.Duration {
	value := GetEnv(envVar, "")
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}

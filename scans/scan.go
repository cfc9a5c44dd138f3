// Package scans holds the scan resource model and the client-side operations
// over it: listing, fetching, creating and deleting scans against the remote
// API, with cached reads and write-triggered invalidation.
package scans

import "time"

// ScanStatus is the overall outcome of a scan.
type ScanStatus string

const (
	StatusVulnerable ScanStatus = "vulnerable"
	StatusSafe       ScanStatus = "safe"
	StatusError      ScanStatus = "error"
)

// Severity grades an individual finding or the scan overall.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
	SeverityInfo     Severity = "info"
)

// TestType selects which security test a scan runs.
type TestType string

const (
	TestRateLimit TestType = "rate_limit"
	TestAuth      TestType = "auth"
	TestSQLI      TestType = "sqli"
	TestIDOR      TestType = "idor"
)

// Finding is one issue a scan surfaced.
type Finding struct {
	Title    string   `json:"title"`
	Severity Severity `json:"severity"`
	Detail   string   `json:"detail"`
}

// Scan is a server-owned resource. Identity is the server-assigned ID; the
// client never changes it.
type Scan struct {
	ID        int        `json:"id"`
	TargetURL string     `json:"target_url"`
	TestType  TestType   `json:"test_type"`
	Status    ScanStatus `json:"status"`
	Severity  *Severity  `json:"severity,omitempty"` // Highest finding severity; unset for safe scans
	Findings  []Finding  `json:"findings,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// CreateScanRequest is the payload for launching a new scan.
type CreateScanRequest struct {
	TargetURL string   `json:"target_url"`
	TestType  TestType `json:"test_type"`
}

// ScanList is the shape the list endpoint returns.
type ScanList struct {
	Scans []Scan `json:"scans"`
	Total int    `json:"total"`
}

package scans

import "errors"

var (
	// Contract failures, one per read/write shape. Fixed messages so a
	// server/client mismatch is recognizable in the notification stream.
	ErrInvalidListResponse   = errors.New("invalid scan list response")
	ErrInvalidScanResponse   = errors.New("invalid scan response")
	ErrInvalidCreateResponse = errors.New("invalid created scan response")
)

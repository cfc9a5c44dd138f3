// Package apierr normalizes the heterogeneous failures an operation can hit
// (transport errors, non-2xx responses, contract mismatches) into one
// user-facing message per failure.
package apierr

import (
	"errors"
	"fmt"
)

// Context identifies the logical operation an error originated from. It is
// used to build the fallback message when nothing better is available.
type Context string

const (
	ContextLogin      Context = "Login"
	ContextRegister   Context = "Registration"
	ContextListScans  Context = "Fetching scans"
	ContextGetScan    Context = "Fetching scan"
	ContextCreateScan Context = "Scan creation"
	ContextDeleteScan Context = "Scan deletion"
)

// APIError is a completed request that came back with a non-2xx status.
// Detail carries the server-authored "detail" field of the error payload,
// when the server sent one.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// OperationError is the single failure value an operation boundary returns.
// It is produced exactly once per failed operation, handed to the
// notification sink, and not retained.
type OperationError struct {
	Context Context
	Message string
}

func (e *OperationError) Error() string {
	return e.Message
}

// Translate maps a failed operation's error into the one message shown to
// the user. Precedence is strict and must not be reordered:
//
//  1. a server payload with a non-empty "detail" string wins,
//  2. otherwise any non-empty error message is used as-is,
//  3. otherwise the fallback "<context> failed".
//
// The ordering decides whether server-authored text or generic client text
// reaches the user.
func Translate(operation Context, err error) *OperationError {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return &OperationError{Context: operation, Message: apiErr.Detail}
	}
	if err != nil && err.Error() != "" {
		return &OperationError{Context: operation, Message: err.Error()}
	}
	return &OperationError{Context: operation, Message: fmt.Sprintf("%s failed", operation)}
}

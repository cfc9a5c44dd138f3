// Package session holds the current authenticated session for the client.
// At most one session exists at a time; a login replaces it wholesale and a
// logout removes it. The transport layer reads it to attach the bearer
// credential to outbound requests.
package session

import (
	"sync"
	"time"
)

// Session is the record of the currently authenticated user.
type Session struct {
	UserID    int       // Server-side user ID (0 when the login response carries no profile)
	Email     string    // Email the user authenticated with
	IsActive  bool      // Always true for a session created by a successful login
	CreatedAt time.Time // When the session was established client-side
	Token     string    // Opaque bearer credential issued by the server
}

// Store owns the single process-wide Session. All methods are safe for
// concurrent use.
type Store struct {
	mu      sync.RWMutex
	current *Session
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

// NewStore creates an empty session store.
func NewStore(options ...StoreOption) *Store {
	s := &Store{nowTime: time.Now}
	for _, opt := range options {
		opt(s)
	}
	return s
}

// Set replaces any existing session atomically. The session is synthesized
// client-side: the server's login response carries only the credential, so
// the profile is minimal.
func (s *Store) Set(userID int, email, token string) Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := Session{
		UserID:    userID,
		Email:     email,
		IsActive:  true,
		CreatedAt: s.nowTime(),
		Token:     token,
	}
	s.current = &sess
	return sess
}

// Clear removes the session. Clearing an empty store is a no-op.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
}

// Get returns the current session, if any. Never blocks on I/O.
func (s *Store) Get() (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return Session{}, false
	}
	return *s.current, true
}

// Token returns the stored bearer credential. It satisfies the transport
// layer's TokenSource: between Set and the matching Clear every outbound
// request attaches this token, afterwards none do.
func (s *Store) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return "", false
	}
	return s.current.Token, true
}

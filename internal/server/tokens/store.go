// Package tokens holds the live sessions of the service: an in-memory map from
// opaque bearer tokens to the session they identify.
package tokens

import (
	"sync"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
)

// Store maps tokens to sessions. It is safe for concurrent use. Lookups share
// a read lock; inserts and removals hold the write lock for a single map
// operation.
type Store struct {
	mu       sync.RWMutex
	sessions map[models.Token]models.Session
	ttl      time.Duration
	now      func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithTTL makes sessions older than ttl behave as absent. Zero disables expiry.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) { s.ttl = ttl }
}

// WithClock overrides the time source used for expiry checks.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore returns an empty store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		sessions: make(map[models.Token]models.Session),
		now:      time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// TTL returns the configured session lifetime; zero means sessions never expire.
func (s *Store) TTL() time.Duration {
	return s.ttl
}

// Insert records the session for token, replacing any previous entry.
func (s *Store) Insert(token models.Token, session models.Session) {
	s.mu.Lock()
	s.sessions[token] = session
	s.mu.Unlock()
}

// Lookup returns the session for token. Unknown or expired tokens fail with
// common.ErrInvalidToken tagged as KindInvalidToken.
func (s *Store) Lookup(token models.Token) (models.Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok || session.ExpiredAt(s.now(), s.ttl) {
		return models.Session{}, common.KindInvalidToken.Wrap(common.ErrInvalidToken)
	}
	return session, nil
}

// Remove deletes the session for token. Removing an unknown token fails with
// common.ErrInvalidToken, so only the first of two removals succeeds.
func (s *Store) Remove(token models.Token) error {
	s.mu.Lock()
	_, ok := s.sessions[token]
	if ok {
		delete(s.sessions, token)
	}
	s.mu.Unlock()

	if !ok {
		return common.KindInvalidToken.Wrap(common.ErrInvalidToken)
	}
	return nil
}

// Len returns the number of stored sessions, expired ones included until swept.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Sweep removes sessions that have expired at now and returns how many were
// dropped. It is a no-op when no TTL is configured.
func (s *Store) Sweep(now time.Time) int {
	if s.ttl <= 0 {
		return 0
	}

	s.mu.RLock()
	var expired []models.Token
	for token, session := range s.sessions {
		if session.ExpiredAt(now, s.ttl) {
			expired = append(expired, token)
		}
	}
	s.mu.RUnlock()

	removed := 0
	for _, token := range expired {
		s.mu.Lock()
		// the token may have been reissued since the read pass
		if session, ok := s.sessions[token]; ok && session.ExpiredAt(now, s.ttl) {
			delete(s.sessions, token)
			removed++
		}
		s.mu.Unlock()
	}
	return removed
}

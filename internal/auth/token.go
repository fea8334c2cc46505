package auth

import (
	"context"
	"sync"
	"time"
)

// TokenManager provides a currently-valid bearer token.
type TokenManager interface {
	// GetToken returns a valid access token, refreshing it if necessary.
	GetToken(ctx context.Context) (string, error)
}

// Token is a cached vendor access token.
type Token struct {
	// AccessToken is the bearer credential.
	AccessToken string
	// RefreshAt is the time at which the token should be refreshed. It is
	// set to half the server-reported lifetime so refresh happens well
	// before real expiry, tolerating clock drift and in-flight latency.
	RefreshAt time.Time
}

// Valid reports whether the token can still be presented.
func (t *Token) Valid() bool {
	if t == nil || t.AccessToken == "" {
		return false
	}

	if t.RefreshAt.IsZero() {
		return true
	}

	return time.Now().Before(t.RefreshAt)
}

// TokenStore is a thread-safe slot holding the current token.
type TokenStore struct {
	mu    sync.RWMutex
	token *Token
}

// NewTokenStore creates an empty token store.
func NewTokenStore() *TokenStore {
	return &TokenStore{}
}

// Get returns the current token, or nil when none is stored.
func (s *TokenStore) Get() *Token {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.token
}

// Set replaces the current token.
func (s *TokenStore) Set(token *Token) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
}

// Clear removes the current token.
func (s *TokenStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = nil
}

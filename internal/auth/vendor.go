package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/frontegg-community/frontegg-go/internal/constants"
	"github.com/frontegg-community/frontegg-go/pkg/frontegg"
)

// authenticationRequest is the body of the vendor token request.
type authenticationRequest struct {
	ClientID string `json:"clientId"`
	Secret   string `json:"secret"`
}

// authenticationResponse is the body of a successful vendor token response.
type authenticationResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expiresIn"`
}

// VendorConfig configures a VendorTokenManager.
type VendorConfig struct {
	// AuthURL is the full URL of the vendor token endpoint.
	AuthURL string
	// ClientID is the vendor client ID.
	ClientID string
	// SecretKey is the vendor secret key.
	SecretKey string
	// HTTPClient optionally overrides the HTTP client used for the token
	// request. When nil a plain client with the default timeout is used; the
	// token request is never retried automatically, so a transient blip does
	// not trigger a burst of re-authentication.
	HTTPClient *http.Client
	// UserAgent optionally overrides the User-Agent header.
	UserAgent string
}

// VendorTokenManager obtains and caches a vendor bearer token, refreshing it
// at half of its server-reported lifetime.
//
// The check-refresh-store sequence runs under one exclusive lock, so any
// number of concurrent callers produce at most one in-flight authentication
// request; the rest wait and observe the refreshed token.
type VendorTokenManager struct {
	config     *VendorConfig
	httpClient *http.Client

	mu    sync.Mutex
	store *TokenStore
}

// NewVendorTokenManager creates a token manager for the vendor token
// endpoint.
func NewVendorTokenManager(config *VendorConfig) *VendorTokenManager {
	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: constants.DefaultHTTPTimeout}
	}

	return &VendorTokenManager{
		config:     config,
		httpClient: httpClient,
		store:      NewTokenStore(),
	}
}

// GetToken implements TokenManager.
func (m *VendorTokenManager) GetToken(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if token := m.store.Get(); token.Valid() {
		return token.AccessToken, nil
	}

	token, err := m.authenticate(ctx)
	if err != nil {
		// The slot is left untouched: the next caller retries fresh.
		return "", err
	}

	m.store.Set(token)

	return token.AccessToken, nil
}

// SetToken manually seeds the cached token.
func (m *VendorTokenManager) SetToken(accessToken string, refreshAt time.Time) {
	m.store.Set(&Token{
		AccessToken: accessToken,
		RefreshAt:   refreshAt,
	})
}

// RefreshAt returns the cached token's scheduled refresh time, or the zero
// time when no token is cached.
func (m *VendorTokenManager) RefreshAt() time.Time {
	token := m.store.Get()
	if token == nil {
		return time.Time{}
	}

	return token.RefreshAt
}

// authenticate performs the vendor token request.
func (m *VendorTokenManager) authenticate(ctx context.Context) (*Token, error) {
	body, err := json.Marshal(&authenticationRequest{
		ClientID: m.config.ClientID,
		Secret:   m.config.SecretKey,
	})
	if err != nil {
		return nil, fmt.Errorf("encoding authentication request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.config.AuthURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating authentication request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	if m.config.UserAgent != "" {
		req.Header.Set("User-Agent", m.config.UserAgent)
	}

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting vendor token: %w", err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading authentication response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, frontegg.ParseAPIError(resp.StatusCode, respBody)
	}

	var authResp authenticationResponse

	err = json.Unmarshal(respBody, &authResp)
	if err != nil {
		return nil, fmt.Errorf("parsing authentication response: %w", err)
	}

	// Refresh twice as frequently as strictly needed, to be safe.
	refreshAt := time.Now().Add(time.Duration(authResp.ExpiresIn) * time.Second / 2)

	return &Token{
		AccessToken: authResp.Token,
		RefreshAt:   refreshAt,
	}, nil
}

// Package client contains the concrete frontegg.Client implementation and
// the per-resource clients built on the request dispatcher.
package client

import (
	nethttp "net/http"

	"github.com/frontegg-community/frontegg-go/internal/auth"
	"github.com/frontegg-community/frontegg-go/internal/constants"
	"github.com/frontegg-community/frontegg-go/internal/http"
	"github.com/frontegg-community/frontegg-go/pkg/frontegg"
)

// Client implements the frontegg.Client interface.
type Client struct {
	httpClient   *http.Client
	tokenManager auth.TokenManager
	baseURL      string

	tenants frontegg.TenantsClient
	users   frontegg.UsersClient
	roles   frontegg.RolesClient
}

// New creates a client from an already-validated and normalized config.
func New(config *frontegg.Config) *Client {
	vendorConfig := &auth.VendorConfig{
		AuthURL:   config.VendorEndpoint + constants.AuthVendorPath,
		ClientID:  config.ClientID,
		SecretKey: config.SecretKey,
		UserAgent: config.UserAgent,
	}

	// The per-request timeout covers the auth exchange too.
	if config.HTTPTimeout > 0 {
		vendorConfig.HTTPClient = &nethttp.Client{Timeout: config.HTTPTimeout}
	}

	tokenManager := auth.NewVendorTokenManager(vendorConfig)

	httpClient := http.NewClient(config.VendorEndpoint, tokenManager, httpClientOptions(config)...)

	client := &Client{
		httpClient:   httpClient,
		tokenManager: tokenManager,
		baseURL:      config.VendorEndpoint,
	}

	client.tenants = NewTenantsClient(httpClient)
	client.users = NewUsersClient(httpClient)
	client.roles = NewRolesClient(httpClient)

	return client
}

// NewWithTokenManager creates a client with a custom token manager, used by
// tests and by callers that manage credentials themselves.
func NewWithTokenManager(config *frontegg.Config, tokenManager auth.TokenManager) *Client {
	httpClient := http.NewClient(config.VendorEndpoint, tokenManager, httpClientOptions(config)...)

	client := &Client{
		httpClient:   httpClient,
		tokenManager: tokenManager,
		baseURL:      config.VendorEndpoint,
	}

	client.tenants = NewTenantsClient(httpClient)
	client.users = NewUsersClient(httpClient)
	client.roles = NewRolesClient(httpClient)

	return client
}

// httpClientOptions builds dispatcher options from config.
func httpClientOptions(config *frontegg.Config) []http.Option {
	var opts []http.Option

	if config.Logger != nil {
		opts = append(opts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		opts = append(opts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		opts = append(opts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		opts = append(opts, http.WithHTTPTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		waitMin := constants.DefaultRetryWaitMin
		waitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			waitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			waitMax = config.RetryWaitMax
		}

		opts = append(opts, http.WithRetryConfig(config.RetryMax, waitMin, waitMax))
	}

	return opts
}

// Tenants implements frontegg.Client.Tenants.
func (c *Client) Tenants() frontegg.TenantsClient {
	return c.tenants
}

// Users implements frontegg.Client.Users.
func (c *Client) Users() frontegg.UsersClient {
	return c.users
}

// Roles implements frontegg.Client.Roles.
func (c *Client) Roles() frontegg.RolesClient {
	return c.roles
}

// TokenManager returns the client's token manager.
func (c *Client) TokenManager() auth.TokenManager {
	return c.tokenManager
}

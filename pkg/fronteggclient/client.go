// Package fronteggclient provides the entry point for creating Frontegg API
// clients.
package fronteggclient

import (
	"context"
	"strings"

	"github.com/frontegg-community/frontegg-go/internal/client"
	"github.com/frontegg-community/frontegg-go/internal/constants"
	"github.com/frontegg-community/frontegg-go/pkg/frontegg"
)

// New creates a Frontegg API client. ClientID and SecretKey are required;
// other Config fields default sensibly. The returned client is safe for
// concurrent use and authenticates lazily on the first call.
//
// The ctx parameter is reserved for construction-time work such as endpoint
// validation; per-call contexts govern individual requests.
func New(ctx context.Context, config *frontegg.Config) (frontegg.Client, error) {
	if config == nil {
		return nil, frontegg.ErrConfigRequired
	}

	if config.ClientID == "" {
		return nil, frontegg.ErrClientIDRequired
	}

	if config.SecretKey == "" {
		return nil, frontegg.ErrSecretKeyRequired
	}

	cfg := *config
	cfg.VendorEndpoint = normalizeEndpoint(cfg.VendorEndpoint)

	if cfg.RetryMax == 0 {
		cfg.RetryMax = constants.DefaultRetryMax
	}

	return client.New(&cfg), nil
}

// NewWithCredentials creates a client against the default vendor endpoint.
func NewWithCredentials(ctx context.Context, clientID, secretKey string) (frontegg.Client, error) {
	return New(ctx, &frontegg.Config{
		ClientID:  clientID,
		SecretKey: secretKey,
	})
}

// NewWithEndpoint creates a client against a custom vendor endpoint, useful
// for regional Frontegg deployments and test servers.
func NewWithEndpoint(ctx context.Context, endpoint, clientID, secretKey string) (frontegg.Client, error) {
	return New(ctx, &frontegg.Config{
		ClientID:       clientID,
		SecretKey:      secretKey,
		VendorEndpoint: endpoint,
	})
}

// normalizeEndpoint applies the default endpoint, trims a trailing slash,
// and assumes https when no scheme is present.
func normalizeEndpoint(endpoint string) string {
	if endpoint == "" {
		return constants.DefaultVendorEndpoint
	}

	endpoint = strings.TrimSuffix(endpoint, "/")

	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	return endpoint
}

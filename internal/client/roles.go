package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/frontegg-community/frontegg-go/internal/constants"
	"github.com/frontegg-community/frontegg-go/internal/http"
	"github.com/frontegg-community/frontegg-go/pkg/frontegg"
)

// RolesClient implements frontegg.RolesClient.
type RolesClient struct {
	httpClient *http.Client
}

// NewRolesClient creates a new roles client.
func NewRolesClient(httpClient *http.Client) *RolesClient {
	return &RolesClient{httpClient: httpClient}
}

// List implements frontegg.RolesClient.List.
func (c *RolesClient) List(ctx context.Context) ([]frontegg.Role, error) {
	resp, err := c.httpClient.Get(ctx, constants.RolesPath, nil)
	if err != nil {
		return nil, fmt.Errorf("listing roles: %w", err)
	}

	var roles []frontegg.Role

	err = json.Unmarshal(resp.Body, &roles)
	if err != nil {
		return nil, fmt.Errorf("parsing roles: %w", err)
	}

	return roles, nil
}

// ListPermissions implements frontegg.RolesClient.ListPermissions.
func (c *RolesClient) ListPermissions(ctx context.Context) ([]frontegg.Permission, error) {
	resp, err := c.httpClient.Get(ctx, constants.PermissionsPath, nil)
	if err != nil {
		return nil, fmt.Errorf("listing permissions: %w", err)
	}

	var permissions []frontegg.Permission

	err = json.Unmarshal(resp.Body, &permissions)
	if err != nil {
		return nil, fmt.Errorf("parsing permissions: %w", err)
	}

	return permissions, nil
}

package client

import (
	"context"
	"encoding/json"
	"fmt"
	nethttp "net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/frontegg-community/frontegg-go/internal/constants"
	"github.com/frontegg-community/frontegg-go/internal/http"
	"github.com/frontegg-community/frontegg-go/pkg/frontegg"
)

// TenantsClient implements frontegg.TenantsClient.
type TenantsClient struct {
	httpClient *http.Client
}

// NewTenantsClient creates a new tenants client.
func NewTenantsClient(httpClient *http.Client) *TenantsClient {
	return &TenantsClient{httpClient: httpClient}
}

// List implements frontegg.TenantsClient.List.
func (c *TenantsClient) List(ctx context.Context) ([]frontegg.Tenant, error) {
	resp, err := c.httpClient.Get(ctx, constants.TenantsPath, nil)
	if err != nil {
		return nil, fmt.Errorf("listing tenants: %w", err)
	}

	var tenants []frontegg.Tenant

	err = json.Unmarshal(resp.Body, &tenants)
	if err != nil {
		return nil, fmt.Errorf("parsing tenants: %w", err)
	}

	return tenants, nil
}

// Create implements frontegg.TenantsClient.Create.
func (c *TenantsClient) Create(ctx context.Context, req *frontegg.TenantRequest) (*frontegg.Tenant, error) {
	resp, err := c.httpClient.Post(ctx, constants.TenantsPath, req)
	if err != nil {
		return nil, fmt.Errorf("creating tenant: %w", err)
	}

	var tenant frontegg.Tenant

	err = json.Unmarshal(resp.Body, &tenant)
	if err != nil {
		return nil, fmt.Errorf("parsing tenant: %w", err)
	}

	return &tenant, nil
}

// Get implements frontegg.TenantsClient.Get. The endpoint answers with an
// array filtered to the requested ID; an empty array is translated into a
// 404 API error rather than an empty success.
func (c *TenantsClient) Get(ctx context.Context, id uuid.UUID) (*frontegg.Tenant, error) {
	resp, err := c.httpClient.Get(ctx, constants.TenantsPath+"/"+id.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("getting tenant: %w", err)
	}

	var tenants []frontegg.Tenant

	err = json.Unmarshal(resp.Body, &tenants)
	if err != nil {
		return nil, fmt.Errorf("parsing tenant: %w", err)
	}

	if len(tenants) == 0 {
		return nil, &frontegg.APIError{
			StatusCode: nethttp.StatusNotFound,
			Messages:   []string{"Tenant not found"},
		}
	}

	return &tenants[len(tenants)-1], nil
}

// Delete implements frontegg.TenantsClient.Delete.
func (c *TenantsClient) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := c.httpClient.Delete(ctx, constants.TenantsPath+"/"+id.String())
	if err != nil {
		return fmt.Errorf("deleting tenant: %w", err)
	}

	return nil
}

// SetMetadata implements frontegg.TenantsClient.SetMetadata.
func (c *TenantsClient) SetMetadata(ctx context.Context, id uuid.UUID, metadata any) (*frontegg.Tenant, error) {
	path := constants.TenantsPath + "/" + id.String() + "/metadata"
	body := map[string]any{"metadata": metadata}

	resp, err := c.httpClient.Post(ctx, path, body)
	if err != nil {
		return nil, fmt.Errorf("setting tenant metadata: %w", err)
	}

	var tenant frontegg.Tenant

	err = json.Unmarshal(resp.Body, &tenant)
	if err != nil {
		return nil, fmt.Errorf("parsing tenant: %w", err)
	}

	return &tenant, nil
}

// DeleteMetadata implements frontegg.TenantsClient.DeleteMetadata.
func (c *TenantsClient) DeleteMetadata(ctx context.Context, id uuid.UUID, key string) (*frontegg.Tenant, error) {
	path := constants.TenantsPath + "/" + id.String() + "/metadata/" + url.PathEscape(key)

	resp, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("deleting tenant metadata: %w", err)
	}

	var tenant frontegg.Tenant

	err = json.Unmarshal(resp.Body, &tenant)
	if err != nil {
		return nil, fmt.Errorf("parsing tenant: %w", err)
	}

	return &tenant, nil
}

package client

import (
	"context"
	"encoding/json"
	"fmt"
	nethttp "net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"github.com/frontegg-community/frontegg-go/internal/constants"
	"github.com/frontegg-community/frontegg-go/internal/http"
	"github.com/frontegg-community/frontegg-go/pkg/frontegg"
)

// UsersClient implements frontegg.UsersClient.
type UsersClient struct {
	httpClient *http.Client
}

// NewUsersClient creates a new users client.
func NewUsersClient(httpClient *http.Client) *UsersClient {
	return &UsersClient{httpClient: httpClient}
}

// userPageLister fetches one page of the users listing for the pagination
// iterator.
type userPageLister struct {
	httpClient *http.Client
	tenantID   *uuid.UUID
}

// ListPage implements frontegg.PageLister.
func (l *userPageLister) ListPage(ctx context.Context, page, pageSize int) (*frontegg.Paginated[frontegg.User], error) {
	query := url.Values{}
	query.Set(constants.LimitParam, strconv.Itoa(pageSize))
	query.Set(constants.OffsetParam, strconv.Itoa(page*pageSize))

	req := &http.Request{
		Method: nethttp.MethodGet,
		Path:   constants.UsersPath,
		Query:  query,
	}

	if l.tenantID != nil {
		req.Headers = map[string]string{constants.TenantIDHeader: l.tenantID.String()}
	}

	resp, err := l.httpClient.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}

	var envelope frontegg.Paginated[frontegg.User]

	err = json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing users page: %w", err)
	}

	return &envelope, nil
}

// List implements frontegg.UsersClient.List.
func (c *UsersClient) List(ctx context.Context, opts *frontegg.ListOptions) *frontegg.PageIterator[frontegg.User] {
	pageSize := constants.DefaultPageSize

	lister := &userPageLister{httpClient: c.httpClient}

	if opts != nil {
		lister.tenantID = opts.TenantID

		if opts.PageSize > 0 {
			pageSize = opts.PageSize
		}
	}

	return frontegg.NewPageIterator(ctx, lister, pageSize)
}

// Create implements frontegg.UsersClient.Create. The tenant is named by the
// scope header, not the body.
func (c *UsersClient) Create(ctx context.Context, req *frontegg.UserRequest) (*frontegg.CreatedUser, error) {
	httpReq := &http.Request{
		Method:  nethttp.MethodPost,
		Path:    constants.UsersPath,
		Headers: map[string]string{constants.TenantIDHeader: req.TenantID.String()},
		Body:    req,
	}

	resp, err := c.httpClient.Do(ctx, httpReq)
	if err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	var user frontegg.CreatedUser

	err = json.Unmarshal(resp.Body, &user)
	if err != nil {
		return nil, fmt.Errorf("parsing created user: %w", err)
	}

	return &user, nil
}

// Get implements frontegg.UsersClient.Get using the vendor-only lookup
// endpoint, which resolves a user regardless of tenant scope.
func (c *UsersClient) Get(ctx context.Context, id uuid.UUID) (*frontegg.User, error) {
	resp, err := c.httpClient.Get(ctx, constants.VendorUsersPath+"/"+id.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("getting user: %w", err)
	}

	var user frontegg.User

	err = json.Unmarshal(resp.Body, &user)
	if err != nil {
		return nil, fmt.Errorf("parsing user: %w", err)
	}

	return &user, nil
}

// Delete implements frontegg.UsersClient.Delete.
func (c *UsersClient) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := c.httpClient.Delete(ctx, constants.UsersPath+"/"+id.String())
	if err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}

	return nil
}

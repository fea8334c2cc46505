package frontegg

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TenantsClient manages tenant resources.
type TenantsClient interface {
	// List returns all tenants in the workspace.
	List(ctx context.Context) ([]Tenant, error)
	// Create creates a new tenant.
	Create(ctx context.Context, req *TenantRequest) (*Tenant, error)
	// Get returns a tenant by ID.
	Get(ctx context.Context, id uuid.UUID) (*Tenant, error)
	// Delete deletes a tenant by ID.
	Delete(ctx context.Context, id uuid.UUID) error
	// SetMetadata merges metadata into the tenant's metadata document.
	// Existing keys omitted from the document are left in place.
	SetMetadata(ctx context.Context, id uuid.UUID, metadata any) (*Tenant, error)
	// DeleteMetadata removes one key from the tenant's metadata document.
	DeleteMetadata(ctx context.Context, id uuid.UUID, key string) (*Tenant, error)
}

// UsersClient manages user resources.
type UsersClient interface {
	// List returns an iterator over users, either across all tenants or
	// scoped to one tenant. Pages are fetched lazily as the iterator is
	// consumed; each call to List starts a fresh scan from the first page.
	List(ctx context.Context, opts *ListOptions) *PageIterator[User]
	// Create creates a new user in the tenant named by req.TenantID. Only
	// partial information about the user is returned; fetch the full record
	// with Get.
	Create(ctx context.Context, req *UserRequest) (*CreatedUser, error)
	// Get returns a user by ID.
	Get(ctx context.Context, id uuid.UUID) (*User, error)
	// Delete deletes a user by ID.
	Delete(ctx context.Context, id uuid.UUID) error
}

// RolesClient reads role and permission definitions.
type RolesClient interface {
	// List returns all roles in the workspace.
	List(ctx context.Context) ([]Role, error)
	// ListPermissions returns all permissions in the workspace.
	ListPermissions(ctx context.Context) ([]Permission, error)
}

// Client is a typed client for the Frontegg vendor API. Implementations are
// safe for use from multiple goroutines; a successful authentication is
// shared by all callers.
type Client interface {
	Tenants() TenantsClient
	Users() UsersClient
	Roles() RolesClient
}

// Logger is the logging interface accepted by the client. It matches
// structured loggers with level methods and a field map.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config configures a Client.
//
// ClientID and SecretKey are required; everything else has a sensible
// default. Retry settings govern only GET and HEAD requests: mutating
// requests are issued exactly once and left to the caller to retry, since
// blind retries of writes can duplicate effects. The authentication request
// is write-classified as well, so a transient blip never triggers a burst of
// re-authentication.
type Config struct {
	// ClientID is the vendor client ID to authenticate as.
	ClientID string
	// SecretKey is the vendor secret key to authenticate with.
	SecretKey string

	// VendorEndpoint is the base URL for the vendor API. Defaults to
	// "https://api.frontegg.com". A trailing slash is trimmed and "https://"
	// is assumed when no scheme is present.
	VendorEndpoint string

	// RetryMax is the maximum number of retries for transient GET/HEAD
	// failures (429, 5xx, connection errors). If 0, a default is applied.
	RetryMax int
	// RetryWaitMin is the minimum backoff between retries.
	RetryWaitMin time.Duration
	// RetryWaitMax is the maximum backoff between retries.
	RetryWaitMax time.Duration

	// HTTPTimeout is the fixed per-request timeout applied to every HTTP
	// exchange, including authentication. Defaults to 60s.
	HTTPTimeout time.Duration

	// UserAgent overrides the default User-Agent header.
	UserAgent string

	// Debug enables request/response logging when a Logger is provided.
	Debug bool
	// Logger is an optional structured logger used by the HTTP layer.
	Logger Logger
}

// ListOptions configures a paginated listing.
type ListOptions struct {
	// TenantID restricts the listing to a single tenant. When nil, results
	// span all tenants.
	TenantID *uuid.UUID
	// PageSize is the number of items fetched per page. Defaults to 50.
	PageSize int
}

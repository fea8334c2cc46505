package constants

import "time"

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the fixed per-request timeout applied to every
	// HTTP exchange, including authentication.
	DefaultHTTPTimeout = 60 * time.Second
)

// Retry bounds for the retryable (GET/HEAD) transport.
const (
	// DefaultRetryMax is the default maximum number of retries.
	DefaultRetryMax = 3

	// DefaultRetryWaitMin is the minimum backoff between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum backoff between retries.
	DefaultRetryWaitMax = 30 * time.Second
)

// Pagination defaults.
const (
	// DefaultPageSize is the page size used for paginated listings when the
	// caller does not specify one.
	DefaultPageSize = 50
)

// Vendor API paths.
const (
	// AuthVendorPath is the vendor token endpoint.
	AuthVendorPath = "/auth/vendor"

	// TenantsPath is the tenants resource collection.
	TenantsPath = "/tenants/resources/tenants/v1"

	// UsersPath is the users resource collection.
	UsersPath = "/identity/resources/users/v1"

	// VendorUsersPath is the vendor-only user lookup collection.
	VendorUsersPath = "/identity/resources/vendor-only/users/v1"

	// RolesPath is the roles resource collection.
	RolesPath = "/identity/resources/roles/v1"

	// PermissionsPath is the permissions resource collection.
	PermissionsPath = "/identity/resources/permissions/v1"
)

// Header and query parameter names.
const (
	// TenantIDHeader scopes a request to a single tenant.
	TenantIDHeader = "Frontegg-Tenant-Id"

	// LimitParam is the page size query parameter.
	LimitParam = "_limit"

	// OffsetParam is the item offset query parameter.
	OffsetParam = "_offset"
)

// DefaultVendorEndpoint is the production Frontegg API endpoint.
const DefaultVendorEndpoint = "https://api.frontegg.com"

// Cache defaults.
const (
	// DefaultCacheSize is the maximum entry count for the memory cache.
	DefaultCacheSize = 1000

	// DefaultCacheTTL is the default time-to-live for cache entries.
	DefaultCacheTTL = 5 * time.Minute
)

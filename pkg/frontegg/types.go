package frontegg

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Metadata is the arbitrary JSON document attached to a tenant or user. The
// API sometimes returns it double-encoded as a JSON string; UnmarshalJSON
// accepts both forms, so the stored bytes are always the document itself.
type Metadata json.RawMessage

// UnmarshalJSON implements json.Unmarshaler.
func (m *Metadata) UnmarshalJSON(data []byte) error {
	var nested string
	if err := json.Unmarshal(data, &nested); err == nil {
		if json.Valid([]byte(nested)) {
			*m = Metadata(nested)

			return nil
		}
	}

	*m = Metadata(append([]byte(nil), data...))

	return nil
}

// MarshalJSON implements json.Marshaler.
func (m Metadata) MarshalJSON() ([]byte, error) {
	if len(m) == 0 {
		return []byte("null"), nil
	}

	return []byte(m), nil
}

// Decode unmarshals the metadata document into v.
func (m Metadata) Decode(v any) error {
	if len(m) == 0 {
		return nil
	}

	//nolint:wrapcheck // decode errors are returned verbatim for the caller
	return json.Unmarshal([]byte(m), v)
}

// TenantRequest is the subset of Tenant used in create requests.
type TenantRequest struct {
	// ID is the ID of the tenant.
	ID uuid.UUID `json:"tenantId" yaml:"tenantId"`
	// Name is the name of the tenant.
	Name string `json:"name" yaml:"name"`
	// Metadata is arbitrary metadata to attach to the tenant.
	Metadata any `json:"metadata,omitempty" yaml:"metadata,omitempty"`
	// CreatorName is the name of the person creating the tenant.
	CreatorName string `json:"creatorName,omitempty" yaml:"creatorName,omitempty"`
	// CreatorEmail is the email of the person creating the tenant.
	CreatorEmail string `json:"creatorEmail,omitempty" yaml:"creatorEmail,omitempty"`
}

// Tenant is a Frontegg tenant.
type Tenant struct {
	// ID is the ID of the tenant.
	ID uuid.UUID `json:"tenantId" yaml:"tenantId"`
	// Name is the name of the tenant.
	Name string `json:"name" yaml:"name"`
	// Metadata is arbitrary metadata attached to the tenant.
	Metadata Metadata `json:"metadata,omitempty" yaml:"metadata,omitempty"`
	// CreatorName is the name of the person who created the tenant.
	CreatorName string `json:"creatorName,omitempty" yaml:"creatorName,omitempty"`
	// CreatorEmail is the email of the person who created the tenant.
	CreatorEmail string `json:"creatorEmail,omitempty" yaml:"creatorEmail,omitempty"`
	// CreatedAt is the time at which the tenant was created.
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
	// UpdatedAt is the time at which the tenant was last updated.
	UpdatedAt time.Time `json:"updatedAt" yaml:"updatedAt"`
	// DeletedAt is the time at which the tenant was deleted, if it was.
	DeletedAt *time.Time `json:"deletedAt,omitempty" yaml:"deletedAt,omitempty"`
}

// UserRequest is the subset of User used in create requests. The tenant ID
// travels in the Frontegg-Tenant-Id header, not the body.
type UserRequest struct {
	// TenantID is the ID of the tenant to which the user will belong.
	TenantID uuid.UUID `json:"-" yaml:"tenantId"`
	// Name is the name of the user.
	Name string `json:"name" yaml:"name"`
	// Email is the email for the user.
	Email string `json:"email" yaml:"email"`
	// Metadata is arbitrary metadata to attach to the user.
	Metadata any `json:"metadata,omitempty" yaml:"metadata,omitempty"`
	// SkipInviteEmail controls whether the invitation email is suppressed.
	SkipInviteEmail bool `json:"skipInviteEmail" yaml:"skipInviteEmail"`
}

// User is a Frontegg user.
type User struct {
	// ID is the ID of the user.
	ID uuid.UUID `json:"id" yaml:"id"`
	// Name is the name of the user.
	Name string `json:"name" yaml:"name"`
	// Email is the email for the user.
	Email string `json:"email" yaml:"email"`
	// Metadata is arbitrary metadata attached to the user.
	Metadata Metadata `json:"metadata,omitempty" yaml:"metadata,omitempty"`
	// Tenants are the tenants to which this user belongs.
	Tenants []TenantBinding `json:"tenants" yaml:"tenants"`
	// CreatedAt is the time at which the user was created.
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
}

// CreatedUser is the partial User shape returned by user creation. Fetch the
// full record with UsersClient.Get.
type CreatedUser struct {
	// ID is the ID of the user.
	ID uuid.UUID `json:"id" yaml:"id"`
	// Name is the name of the user.
	Name string `json:"name" yaml:"name"`
	// Email is the email for the user.
	Email string `json:"email" yaml:"email"`
	// Metadata is arbitrary metadata attached to the user.
	Metadata Metadata `json:"metadata,omitempty" yaml:"metadata,omitempty"`
	// Roles are the roles to which this user belongs.
	Roles []Role `json:"roles" yaml:"roles"`
	// Permissions are the permissions which this user holds.
	Permissions []Permission `json:"permissions" yaml:"permissions"`
	// CreatedAt is the time at which the user was created.
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
}

// TenantBinding binds a User to a Tenant.
type TenantBinding struct {
	// TenantID is the ID of the tenant.
	TenantID uuid.UUID `json:"tenantId" yaml:"tenantId"`
	// Roles are the roles the user holds in this tenant.
	Roles []Role `json:"roles" yaml:"roles"`
}

// Role is a Frontegg role.
type Role struct {
	// ID is the ID of the role.
	ID uuid.UUID `json:"id" yaml:"id"`
	// Key is the machine-readable name for the role.
	Key string `json:"key" yaml:"key"`
	// Name is the human-readable name for the role.
	Name string `json:"name" yaml:"name"`
	// Description describes the role.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	// Level is the level of the role.
	Level int64 `json:"level" yaml:"level"`
	// IsDefault reports whether the role is assigned to new users.
	IsDefault bool `json:"isDefault" yaml:"isDefault"`
	// PermissionIDs are the IDs of the permissions granted by the role.
	PermissionIDs []uuid.UUID `json:"permissions" yaml:"permissions"`
	// CreatedAt is the time at which the role was created.
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
}

// Permission is a Frontegg permission.
type Permission struct {
	// ID is the ID of the permission.
	ID uuid.UUID `json:"id" yaml:"id"`
	// CategoryID is the ID of the category to which the permission belongs.
	CategoryID string `json:"categoryId" yaml:"categoryId"`
	// Key is the machine-readable name for the permission.
	Key string `json:"key" yaml:"key"`
	// Name is the human-readable name for the permission.
	Name string `json:"name" yaml:"name"`
	// Description describes the permission.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	// CreatedAt is the time at which the permission was created.
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
	// UpdatedAt is the time at which the permission was last updated.
	UpdatedAt time.Time `json:"updatedAt" yaml:"updatedAt"`
}

// WebhookTenantBinding binds a user to a tenant in a frontegg.user.* webhook
// payload. Roles is missing on enrolledMFA events.
type WebhookTenantBinding struct {
	TenantID uuid.UUID `json:"tenantId" yaml:"tenantId"`
	Roles    []Role    `json:"roles,omitempty" yaml:"roles,omitempty"`
}

// WebhookUser is the user shape delivered by frontegg.user.* webhook events.
// Decode-only; the client issues no webhook operations.
type WebhookUser struct {
	ID                  uuid.UUID              `json:"id" yaml:"id"`
	Name                string                 `json:"name,omitempty" yaml:"name,omitempty"`
	Email               string                 `json:"email" yaml:"email"`
	Metadata            Metadata               `json:"metadata,omitempty" yaml:"metadata,omitempty"`
	Roles               []Role                 `json:"roles" yaml:"roles"`
	Permissions         []Permission           `json:"permissions" yaml:"permissions"`
	CreatedAt           time.Time              `json:"createdAt" yaml:"createdAt"`
	ActivatedForTenant  *bool                  `json:"activatedForTenant,omitempty" yaml:"activatedForTenant,omitempty"`
	IsLocked            *bool                  `json:"isLocked,omitempty" yaml:"isLocked,omitempty"`
	ManagedBy           string                 `json:"managedBy" yaml:"managedBy"`
	MFAEnrolled         bool                   `json:"mfaEnrolled" yaml:"mfaEnrolled"`
	MFABypass           *bool                  `json:"mfaBypass,omitempty" yaml:"mfaBypass,omitempty"`
	PhoneNumber         string                 `json:"phoneNumber,omitempty" yaml:"phoneNumber,omitempty"`
	ProfilePictureURL   string                 `json:"profilePictureUrl,omitempty" yaml:"profilePictureUrl,omitempty"`
	Provider            string                 `json:"provider" yaml:"provider"`
	Sub                 uuid.UUID              `json:"sub" yaml:"sub"`
	TenantID            uuid.UUID              `json:"tenantId" yaml:"tenantId"`
	TenantIDs           []uuid.UUID            `json:"tenantIds,omitempty" yaml:"tenantIds,omitempty"`
	Tenants             []WebhookTenantBinding `json:"tenants,omitempty" yaml:"tenants,omitempty"`
	Verified            *bool                  `json:"verified,omitempty" yaml:"verified,omitempty"`
}

package models

import "time"

// Role is the closed set of access levels a user can hold.
// It is attached to the user at registration time and is read-only
// afterwards; route-level authorization compares it with exact match
// (premium does not imply basic).
type Role string

const (
	// RoleBasic is the default role assigned at registration.
	RoleBasic Role = "basic"

	// RolePremium grants access to premium-only routes.
	RolePremium Role = "premium"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleBasic || r == RolePremium
}

// User represents an account entity used for authentication and
// authorization. Sensitive fields must never be exposed outside
// trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Username is the unique handle used during authentication and as
	// the subject claim of issued access tokens.
	Username string `json:"username"`

	// Email is the unique contact address of the account. Also used to
	// map externally-issued identities onto local users.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value MUST be a hash, never plaintext. Set once at
	// registration and immutable afterwards.
	PasswordHash string `json:"-"`

	// Role is the access level of the account.
	Role Role `json:"role"`

	// TOTPSecret is the base32-encoded shared secret for the TOTP
	// second factor. Empty until MFA is enabled. Never exposed via JSON
	// except through the one-time provisioning response.
	TOTPSecret string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// MFAEnabled reports whether a TOTP secret has been provisioned for
// the user.
func (u User) MFAEnabled() bool {
	return u.TOTPSecret != ""
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

package models

// TokenResponse is the body returned by the token endpoint on
// successful authentication.
type TokenResponse struct {
	// AccessToken is the compact JWS form of the issued bearer token.
	AccessToken string `json:"access_token"`

	// TokenType is always "bearer".
	TokenType string `json:"token_type"`
}

// UserCreateResponse echoes the public identity attributes of a newly
// registered account. The password hash and role are deliberately not
// included.
type UserCreateResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// RegisterResponse is the body returned by the registration endpoint.
type RegisterResponse struct {
	Message string             `json:"message"`
	User    UserCreateResponse `json:"user"`
}

// MFAEnableResponse carries the one-time provisioning material returned
// when MFA is enabled. The secret is shown exactly once; afterwards it
// lives only on the server and in the user's authenticator device.
type MFAEnableResponse struct {
	// TOTPURI is the otpauth:// provisioning URI for enrollment in an
	// authenticator app (QR-code source).
	TOTPURI string `json:"totp_uri"`

	// Secret is the raw base32 secret, for manual entry.
	Secret string `json:"secret-numbers"`
}

// DescriptionResponse is the body of the identity echo endpoint.
type DescriptionResponse struct {
	Description string `json:"description"`
}

// MessageResponse is a generic single-message body used by endpoints
// that only need to acknowledge an action.
type MessageResponse struct {
	Message string `json:"message"`
}

// SongCreateResponse acknowledges a catalog insertion and returns the
// minted song ID.
type SongCreateResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

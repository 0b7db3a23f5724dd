package service

import "errors"

// Expected, client-recoverable failure conditions of the auth and
// application services. The HTTP boundary maps each of these to a
// distinct status code; anything else surfaces as a generic server
// error.
var (
	// ErrInvalidDataProvided signals a request payload missing required
	// fields.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrBadCredentials signals a username/password pair that does not
	// match a stored account. Unknown username and wrong password are
	// deliberately indistinguishable.
	ErrBadCredentials = errors.New("incorrect username or password")

	// ErrTokenInvalidOrExpired signals a bearer token that failed
	// validation for any reason: bad signature, malformed, expired,
	// wrong issuer, missing subject, or a subject that no longer
	// resolves to a user.
	ErrTokenInvalidOrExpired = errors.New("token is expired or invalid")

	// ErrRoleNotAllowed signals an authenticated user whose role does
	// not match the one a route requires.
	ErrRoleNotAllowed = errors.New("user role is not allowed")

	// ErrMFANotEnabled signals a TOTP verification attempt against an
	// account that has no second factor provisioned.
	ErrMFANotEnabled = errors.New("mfa is not enabled")

	// ErrMFACodeMismatch signals a TOTP code that does not match the
	// current time window for the account's secret.
	ErrMFACodeMismatch = errors.New("totp code is not valid")

	// ErrExternalAccountNotLinked signals an externally-issued token
	// that resolved to an identity with no matching local account.
	ErrExternalAccountNotLinked = errors.New("external account is not linked to any user")

	// ErrTokenCreationFailed wraps low-level signing failures. This is
	// an internal fault, not a client error.
	ErrTokenCreationFailed = errors.New("token creation failed")
)

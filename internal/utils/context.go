// Package utils provides general-purpose helper utilities used across
// different parts of the application: context keys, password hashing,
// HTTP response writing, and JWT token generation and validation.
package utils

import (
	"context"

	"github.com/showpass/showpass/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key
// collisions with other packages that may use string-based keys in the
// context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserCtxKey is the key used to store the authenticated user in the
// request context. The auth middleware resolves the bearer token to a
// full [models.User] once; downstream handlers retrieve it with
// GetUserFromContext instead of re-validating the token.
var UserCtxKey = contextKey("currentUser")

// GetUserFromContext retrieves the authenticated user from the context.
//
// Returns the user and an ok flag:
//   - ok == true  — a user was resolved by the auth middleware
//   - ok == false — value is missing or has an unexpected type
func GetUserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(UserCtxKey).(models.User)
	return user, ok
}

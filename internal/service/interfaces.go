package service

import (
	"context"

	"github.com/showpass/showpass/models"
)

// AuthService covers the primary authentication flow: registration,
// credential verification, token issuance, token resolution, and the
// role gate.
type AuthService interface {
	// RegisterUser creates an account with a hashed password and the
	// default role.
	RegisterUser(ctx context.Context, body models.UserCreateBody) (models.User, error)

	// Authenticate verifies a username/password pair against the
	// credential store. Returns ErrBadCredentials on any mismatch.
	Authenticate(ctx context.Context, username, password string) (models.User, error)

	// CreateToken issues a signed, time-limited bearer token for the
	// user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// CurrentUser validates a raw bearer token and resolves its subject
	// back to a stored user. Fails closed with
	// ErrTokenInvalidOrExpired.
	CurrentUser(ctx context.Context, tokenString string) (models.User, error)

	// RequireRole passes the user through when its role matches exactly
	// and returns ErrRoleNotAllowed otherwise.
	RequireRole(user models.User, role models.Role) error
}

// MFAService covers the TOTP second factor, gated independently of the
// primary token flow.
type MFAService interface {
	// Enable provisions a fresh TOTP secret for the user, overwriting
	// any previous one, and returns the secret plus the provisioning
	// URI.
	Enable(ctx context.Context, user models.User) (models.MFAEnableResponse, error)

	// Verify checks a 6-digit code against the account's stored secret
	// for the current time window.
	Verify(ctx context.Context, username, code string) error
}

// GitHubResolver maps externally-issued GitHub access tokens to local
// user accounts.
type GitHubResolver interface {
	ResolveUser(ctx context.Context, accessToken string) (models.User, error)
}

// TicketService covers ticket and event CRUD.
type TicketService interface {
	CreateTicket(ctx context.Context, body models.TicketCreateBody) (int64, error)
	GetTicket(ctx context.Context, ticketID int64) (models.Ticket, error)
	GetTicketsForShow(ctx context.Context, show string) ([]models.Ticket, error)
	UpdateTicketPrice(ctx context.Context, ticketID int64, price float64) error
	UpdateTicket(ctx context.Context, ticketID int64, update models.TicketUpdate) error
	UpdateTicketDetails(ctx context.Context, ticketID int64, details models.TicketDetails) error
	DeleteTicket(ctx context.Context, ticketID int64) error
	CreateEvent(ctx context.Context, body models.EventCreateBody) (int64, error)
}

// CatalogService covers the document-style song catalog.
type CatalogService interface {
	AddSong(ctx context.Context, song models.Song) (string, error)
	GetSong(ctx context.Context, songID string) (models.Song, error)
	UpdateSong(ctx context.Context, songID string, update models.SongUpdate) error
	DeleteSong(ctx context.Context, songID string) error
}

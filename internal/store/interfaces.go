package store

import (
	"context"

	"github.com/showpass/showpass/models"
)

// UserRepository is the credential store: it exclusively owns user
// records and their secret material.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	SetTOTPSecret(ctx context.Context, username string, secret string) error
}

// TicketRepository provides CRUD access to tickets and events.
type TicketRepository interface {
	CreateTicket(ctx context.Context, ticket models.Ticket) (int64, error)
	GetTicket(ctx context.Context, ticketID int64) (models.Ticket, error)
	GetTicketsForShow(ctx context.Context, show string) ([]models.Ticket, error)
	UpdateTicketPrice(ctx context.Context, ticketID int64, price float64) error
	UpdateTicket(ctx context.Context, ticketID int64, update models.TicketUpdate) error
	UpdateTicketDetails(ctx context.Context, ticketID int64, details models.TicketDetails) error
	DeleteTicket(ctx context.Context, ticketID int64) error
	CreateEvent(ctx context.Context, name string, nbTickets int) (int64, error)
}

// SongCatalog provides document-style CRUD access to the song catalog.
type SongCatalog interface {
	AddSong(ctx context.Context, song models.Song) (string, error)
	GetSong(ctx context.Context, songID string) (models.Song, error)
	UpdateSong(ctx context.Context, songID string, update models.SongUpdate) error
	DeleteSong(ctx context.Context, songID string) error
}

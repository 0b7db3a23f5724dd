package service

import (
	"context"
	"fmt"

	"github.com/showpass/showpass/internal/logger"
	"github.com/showpass/showpass/internal/store"
	"github.com/showpass/showpass/models"
)

type ticketService struct {
	ticketRepository store.TicketRepository
	logger           *logger.Logger
}

// NewTicketService creates a TicketService over the relational ticket
// repository.
func NewTicketService(ticketRepository store.TicketRepository, logger *logger.Logger) TicketService {
	return &ticketService{ticketRepository: ticketRepository, logger: logger}
}

func (s *ticketService) CreateTicket(ctx context.Context, body models.TicketCreateBody) (int64, error) {
	if body.Show == "" {
		return 0, fmt.Errorf("%w: show is required", ErrInvalidDataProvided)
	}

	ticket := models.Ticket{Show: &body.Show}
	if body.User != "" {
		ticket.User = &body.User
	}
	if body.Price != 0 {
		ticket.Price = &body.Price
	}

	ticketID, err := s.ticketRepository.CreateTicket(ctx, ticket)
	if err != nil {
		logger.FromContext(ctx).Error().Err(err).Str("show", body.Show).Msg("ticket creation failed")
		return 0, fmt.Errorf("error occurred during creating ticket: %w", err)
	}

	return ticketID, nil
}

func (s *ticketService) GetTicket(ctx context.Context, ticketID int64) (models.Ticket, error) {
	return s.ticketRepository.GetTicket(ctx, ticketID)
}

func (s *ticketService) GetTicketsForShow(ctx context.Context, show string) ([]models.Ticket, error) {
	if show == "" {
		return nil, fmt.Errorf("%w: show is required", ErrInvalidDataProvided)
	}
	return s.ticketRepository.GetTicketsForShow(ctx, show)
}

func (s *ticketService) UpdateTicketPrice(ctx context.Context, ticketID int64, price float64) error {
	if price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidDataProvided)
	}
	return s.ticketRepository.UpdateTicketPrice(ctx, ticketID, price)
}

// UpdateTicket applies a partial update. An update with no fields set
// is rejected before touching the database.
func (s *ticketService) UpdateTicket(ctx context.Context, ticketID int64, update models.TicketUpdate) error {
	if update.Empty() {
		return fmt.Errorf("%w: update carries no fields", ErrInvalidDataProvided)
	}
	return s.ticketRepository.UpdateTicket(ctx, ticketID, update)
}

func (s *ticketService) UpdateTicketDetails(ctx context.Context, ticketID int64, details models.TicketDetails) error {
	if details.Seat == nil && details.TicketType == nil {
		return fmt.Errorf("%w: update carries no fields", ErrInvalidDataProvided)
	}
	return s.ticketRepository.UpdateTicketDetails(ctx, ticketID, details)
}

func (s *ticketService) DeleteTicket(ctx context.Context, ticketID int64) error {
	return s.ticketRepository.DeleteTicket(ctx, ticketID)
}

// CreateEvent creates the event row and its pre-seeded ticket batch in
// a single transaction.
func (s *ticketService) CreateEvent(ctx context.Context, body models.EventCreateBody) (int64, error) {
	if body.Name == "" {
		return 0, fmt.Errorf("%w: name is required", ErrInvalidDataProvided)
	}
	if body.NbTickets < 0 {
		return 0, fmt.Errorf("%w: nb_tickets must not be negative", ErrInvalidDataProvided)
	}

	eventID, err := s.ticketRepository.CreateEvent(ctx, body.Name, body.NbTickets)
	if err != nil {
		logger.FromContext(ctx).Error().Err(err).Str("name", body.Name).Msg("event creation failed")
		return 0, fmt.Errorf("error occurred during creating event: %w", err)
	}

	return eventID, nil
}

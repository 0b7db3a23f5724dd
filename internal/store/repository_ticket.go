package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/showpass/showpass/internal/logger"
	"github.com/showpass/showpass/models"
)

// ticketRepository is the PostgreSQL-backed implementation of
// [TicketRepository]. Single-row operations rely on the database's own
// atomicity; the only multi-statement write (event creation with
// pre-seeded tickets) runs inside one explicit transaction. That is the
// one transaction discipline used across the whole repository.
type ticketRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTicketRepository constructs a [TicketRepository] backed by the
// provided database connection and logger.
func NewTicketRepository(db *DB, logger *logger.Logger) TicketRepository {
	logger.Debug().Msg("creating ticket repository")
	return &ticketRepository{
		db:     db,
		logger: logger,
	}
}

// CreateTicket inserts a standalone ticket and returns its
// server-assigned ID.
func (r *ticketRepository) CreateTicket(ctx context.Context, ticket models.Ticket) (int64, error) {
	log := logger.FromContext(ctx)

	var ticketID int64
	row := r.db.QueryRowContext(ctx, createTicket,
		ticket.Show, ticket.User, ticket.Price, ticket.Sold,
		ticket.Details.Seat, ticket.Details.TicketType, ticket.EventID)

	if err := row.Scan(&ticketID); err != nil {
		log.Err(err).Str("func", "*ticketRepository.CreateTicket").Msg("error: creating ticket")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return ticketID, nil
}

// GetTicket retrieves a single ticket by ID.
// Returns [ErrTicketNotFound] when no row matches.
func (r *ticketRepository) GetTicket(ctx context.Context, ticketID int64) (models.Ticket, error) {
	log := logger.FromContext(ctx)

	var ticket models.Ticket
	row := r.db.QueryRowContext(ctx, getTicket, ticketID)

	if err := row.Scan(&ticket.ID, &ticket.Show, &ticket.User, &ticket.Price, &ticket.Sold,
		&ticket.Details.Seat, &ticket.Details.TicketType, &ticket.EventID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Ticket{}, ErrTicketNotFound
		}

		log.Err(err).Str("func", "*ticketRepository.GetTicket").Int64("ticket_id", ticketID).Msg("error: scanning ticket row")
		return models.Ticket{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return ticket, nil
}

// GetTicketsForShow retrieves every ticket that belongs to the given
// show. Returns an empty slice when no tickets match.
func (r *ticketRepository) GetTicketsForShow(ctx context.Context, show string) ([]models.Ticket, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getTicketsForShow, show)
	if err != nil {
		log.Err(err).Str("func", "*ticketRepository.GetTicketsForShow").Str("show", show).Msg("error: querying tickets")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	tickets := make([]models.Ticket, 0, 16)
	for rows.Next() {
		var ticket models.Ticket
		if scanErr := rows.Scan(&ticket.ID, &ticket.Show, &ticket.User, &ticket.Price, &ticket.Sold,
			&ticket.Details.Seat, &ticket.Details.TicketType, &ticket.EventID); scanErr != nil {
			log.Err(scanErr).Str("func", "*ticketRepository.GetTicketsForShow").Msg("error: scanning ticket row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		tickets = append(tickets, ticket)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*ticketRepository.GetTicketsForShow").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return tickets, nil
}

// UpdateTicketPrice sets a new price on the ticket.
// Returns [ErrTicketNotFound] when the ticket does not exist.
func (r *ticketRepository) UpdateTicketPrice(ctx context.Context, ticketID int64, price float64) error {
	return r.execExpectingRow(ctx, "*ticketRepository.UpdateTicketPrice", ticketID, updateTicketPrice, ticketID, price)
}

// UpdateTicket applies a partial update built dynamically from the
// non-nil fields of update.
//
// Returns [ErrEmptyUpdate] when no fields are set and
// [ErrTicketNotFound] when the ticket does not exist.
func (r *ticketRepository) UpdateTicket(ctx context.Context, ticketID int64, update models.TicketUpdate) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateTicketQuery(ticketID, update)
	if err != nil {
		log.Err(err).Str("func", "*ticketRepository.UpdateTicket").Int64("ticket_id", ticketID).Msg("failed to create query")
		return err
	}

	return r.execExpectingRow(ctx, "*ticketRepository.UpdateTicket", ticketID, query, args...)
}

// UpdateTicketDetails overwrites the seat attributes of a ticket.
// Nil fields are left unchanged (COALESCE at the SQL level).
func (r *ticketRepository) UpdateTicketDetails(ctx context.Context, ticketID int64, details models.TicketDetails) error {
	return r.execExpectingRow(ctx, "*ticketRepository.UpdateTicketDetails", ticketID, updateTicketDetails, ticketID, details.Seat, details.TicketType)
}

// DeleteTicket removes a ticket.
// Returns [ErrTicketNotFound] when the ticket does not exist.
func (r *ticketRepository) DeleteTicket(ctx context.Context, ticketID int64) error {
	return r.execExpectingRow(ctx, "*ticketRepository.DeleteTicket", ticketID, deleteTicket, ticketID)
}

// CreateEvent inserts an event and pre-seeds nbTickets tickets seated
// "0A".."<n-1>A", all inside a single transaction so a partially
// created event is never visible.
func (r *ticketRepository) CreateEvent(ctx context.Context, name string, nbTickets int) (int64, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*ticketRepository.CreateEvent").Msg("error: beginning transaction")
		return 0, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	var eventID int64
	if err := tx.QueryRowContext(ctx, createEvent, name).Scan(&eventID); err != nil {
		log.Err(err).Str("func", "*ticketRepository.CreateEvent").Str("name", name).Msg("error: creating event")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	for n := 0; n < nbTickets; n++ {
		seat := fmt.Sprintf("%dA", n)
		if _, err := tx.ExecContext(ctx, createEventTicket, name, seat, eventID); err != nil {
			log.Err(err).Str("func", "*ticketRepository.CreateEvent").Int64("event_id", eventID).Str("seat", seat).Msg("error: seeding event ticket")
			return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*ticketRepository.CreateEvent").Int64("event_id", eventID).Msg("error: committing transaction")
		return 0, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return eventID, nil
}

// execExpectingRow runs a DML statement that must affect exactly one
// ticket row and maps "zero rows affected" to [ErrTicketNotFound].
func (r *ticketRepository) execExpectingRow(ctx context.Context, caller string, ticketID int64, query string, args ...any) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", caller).Int64("ticket_id", ticketID).Msg("error: executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrTicketNotFound
	}

	return nil
}

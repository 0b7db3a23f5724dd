package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/showpass/showpass/models"
)

const (
	createUser = `INSERT INTO users (username, email, password_hash, role)
    VALUES ($1, $2, $3, $4)
    RETURNING user_id, username, email, password_hash, role, totp_secret, created_at;`

	findUserByUsername = `SELECT user_id, username, email, password_hash, role, totp_secret, created_at
    FROM users
    WHERE username = $1;`

	findUserByEmail = `SELECT user_id, username, email, password_hash, role, totp_secret, created_at
    FROM users
    WHERE email = $1;`

	setTOTPSecret = `UPDATE users
    SET totp_secret = $2
    WHERE username = $1;`

	createTicket = `INSERT INTO tickets (show, buyer, price, sold, seat, ticket_type, event_id)
    VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, 0))
    RETURNING ticket_id;`

	getTicket = `SELECT ticket_id, show, buyer, price, sold, seat, ticket_type, COALESCE(event_id, 0)
    FROM tickets
    WHERE ticket_id = $1;`

	getTicketsForShow = `SELECT ticket_id, show, buyer, price, sold, seat, ticket_type, COALESCE(event_id, 0)
    FROM tickets
    WHERE show = $1;`

	updateTicketPrice = `UPDATE tickets
    SET price = $2
    WHERE ticket_id = $1;`

	updateTicketDetails = `UPDATE tickets
    SET seat = COALESCE($2, seat), ticket_type = COALESCE($3, ticket_type)
    WHERE ticket_id = $1;`

	deleteTicket = `DELETE FROM tickets
    WHERE ticket_id = $1;`

	createEvent = `INSERT INTO events (name)
    VALUES ($1)
    RETURNING event_id;`

	createEventTicket = `INSERT INTO tickets (show, seat, event_id)
    VALUES ($1, $2, $3);`
)

// buildUpdateTicketQuery builds a dynamic UPDATE for a partial ticket
// update. Only non-nil fields of update become SET clauses.
func buildUpdateTicketQuery(ticketID int64, update models.TicketUpdate) (string, []any, error) {
	if update.Empty() {
		return "", nil, ErrEmptyUpdate
	}

	builder := sq.Update("tickets").
		PlaceholderFormat(sq.Dollar).
		Where(sq.Eq{"ticket_id": ticketID})

	if update.Show != nil {
		builder = builder.Set("show", *update.Show)
	}
	if update.User != nil {
		builder = builder.Set("buyer", *update.User)
	}
	if update.Price != nil {
		builder = builder.Set("price", *update.Price)
	}
	if update.Sold != nil {
		builder = builder.Set("sold", *update.Sold)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

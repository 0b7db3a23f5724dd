package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/showpass/showpass/internal/logger"
	"github.com/showpass/showpass/models"
)

func newTestTicketRepo(t *testing.T) (*ticketRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &ticketRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func strPtr(s string) *string       { return &s }
func floatPtr(f float64) *float64   { return &f }
func ticketColumns() []string {
	return []string{"ticket_id", "show", "buyer", "price", "sold", "seat", "ticket_type", "event_id"}
}

func TestCreateTicket_Success(t *testing.T) {
	repo, mock, db := newTestTicketRepo(t)
	defer db.Close()

	ctx := context.Background()
	ticket := models.Ticket{
		Show:  strPtr("The Rolling Scones"),
		User:  strPtr("alice"),
		Price: floatPtr(42.5),
	}

	mock.ExpectQuery("INSERT INTO tickets").
		WillReturnRows(sqlmock.NewRows([]string{"ticket_id"}).AddRow(11))

	id, err := repo.CreateTicket(ctx, ticket)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 11 {
		t.Errorf("expected ticket id 11, got %d", id)
	}
}

func TestGetTicket_Success(t *testing.T) {
	repo, mock, db := newTestTicketRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.NewRows(ticketColumns()).
		AddRow(11, "The Rolling Scones", "alice", 42.5, false, "3A", "standard", 0)

	mock.ExpectQuery("SELECT (.+) FROM tickets").
		WithArgs(int64(11)).
		WillReturnRows(rows)

	ticket, err := repo.GetTicket(ctx, 11)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ticket.ID != 11 {
		t.Errorf("expected id 11, got %d", ticket.ID)
	}
	if ticket.Details.Seat == nil || *ticket.Details.Seat != "3A" {
		t.Errorf("expected seat 3A, got %v", ticket.Details.Seat)
	}
}

func TestGetTicket_NotFound(t *testing.T) {
	repo, mock, db := newTestTicketRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM tickets").
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetTicket(ctx, 404)
	if !errors.Is(err, ErrTicketNotFound) {
		t.Fatalf("expected ErrTicketNotFound, got %v", err)
	}
}

func TestGetTicketsForShow_Empty(t *testing.T) {
	repo, mock, db := newTestTicketRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM tickets").
		WithArgs("Nobody Plays Here").
		WillReturnRows(sqlmock.NewRows(ticketColumns()))

	tickets, err := repo.GetTicketsForShow(ctx, "Nobody Plays Here")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tickets) != 0 {
		t.Errorf("expected no tickets, got %d", len(tickets))
	}
}

func TestUpdateTicketPrice_NotFound(t *testing.T) {
	repo, mock, db := newTestTicketRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("UPDATE tickets").
		WithArgs(int64(404), 10.0).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateTicketPrice(ctx, 404, 10.0)
	if !errors.Is(err, ErrTicketNotFound) {
		t.Fatalf("expected ErrTicketNotFound, got %v", err)
	}
}

func TestUpdateTicket_EmptyUpdate(t *testing.T) {
	repo, _, db := newTestTicketRepo(t)
	defer db.Close()

	err := repo.UpdateTicket(context.Background(), 1, models.TicketUpdate{})
	if !errors.Is(err, ErrEmptyUpdate) {
		t.Fatalf("expected ErrEmptyUpdate, got %v", err)
	}
}

func TestUpdateTicket_Success(t *testing.T) {
	repo, mock, db := newTestTicketRepo(t)
	defer db.Close()

	ctx := context.Background()
	sold := true

	mock.ExpectExec("UPDATE tickets").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateTicket(ctx, 11, models.TicketUpdate{User: strPtr("bob"), Sold: &sold})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteTicket_Success(t *testing.T) {
	repo, mock, db := newTestTicketRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM tickets").
		WithArgs(int64(11)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteTicket(ctx, 11); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCreateEvent_SeedsTicketsInOneTransaction(t *testing.T) {
	repo, mock, db := newTestTicketRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO events").
		WithArgs("Summer Fest").
		WillReturnRows(sqlmock.NewRows([]string{"event_id"}).AddRow(3))
	mock.ExpectExec("INSERT INTO tickets").
		WithArgs("Summer Fest", "0A", int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO tickets").
		WithArgs("Summer Fest", "1A", int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	eventID, err := repo.CreateEvent(ctx, "Summer Fest", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if eventID != 3 {
		t.Errorf("expected event id 3, got %d", eventID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreateEvent_RollsBackOnSeedFailure(t *testing.T) {
	repo, mock, db := newTestTicketRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO events").
		WithArgs("Broken Fest").
		WillReturnRows(sqlmock.NewRows([]string{"event_id"}).AddRow(4))
	mock.ExpectExec("INSERT INTO tickets").
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	_, err := repo.CreateEvent(ctx, "Broken Fest", 1)
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

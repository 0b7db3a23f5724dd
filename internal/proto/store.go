package proto

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"github.com/showpass/showpass/internal/logger"
)

// ErrItemNotFound is returned when the requested item does not exist.
var ErrItemNotFound = errors.New("item was not found")

const createItemsTable = `
	CREATE TABLE IF NOT EXISTS items (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		name        TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT ''
	);`

// ItemStore persists items in a local SQLite file.
type ItemStore struct {
	db     *sql.DB
	logger *logger.Logger
}

// NewItemStore opens (creating if necessary) the SQLite file at dsn and
// ensures the items table exists.
func NewItemStore(ctx context.Context, dsn string, log *logger.Logger) (*ItemStore, error) {
	if err := createLocalDBFileIfNotExists(dsn); err != nil {
		log.Err(err).Str("func", "NewItemStore").Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file")
	}

	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		log.Err(err).Str("func", "NewItemStore").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB")
	}

	if err := conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewItemStore").Msg("error connecting database (ping)")
		return nil, err
	}

	if _, err := conn.ExecContext(ctx, createItemsTable); err != nil {
		log.Err(err).Str("func", "NewItemStore").Msg("error creating items table")
		return nil, err
	}

	log.Debug().Str("func", "NewItemStore").Msg("connected to database successfully")

	return &ItemStore{db: conn, logger: log}, nil
}

// Close closes the underlying database handle.
func (s *ItemStore) Close() error {
	return s.db.Close()
}

func (s *ItemStore) AddItem(ctx context.Context, item Item) (int64, error) {
	result, err := s.db.ExecContext(ctx,
		`INSERT INTO items (name, description) VALUES (?, ?)`, item.Name, item.Description)
	if err != nil {
		return 0, fmt.Errorf("error occurred during inserting item: %w", err)
	}

	itemID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("error occurred during getting inserted item id: %w", err)
	}

	return itemID, nil
}

func (s *ItemStore) GetItem(ctx context.Context, itemID int64) (Item, error) {
	var item Item
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, description FROM items WHERE id = ?`, itemID).
		Scan(&item.ID, &item.Name, &item.Description)
	if errors.Is(err, sql.ErrNoRows) {
		return Item{}, ErrItemNotFound
	}
	if err != nil {
		return Item{}, fmt.Errorf("error occurred during scanning item: %w", err)
	}

	return item, nil
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	return nil
}

package store

import (
	"context"

	"github.com/showpass/showpass/internal/config"
	"github.com/showpass/showpass/internal/logger"
)

// Storages aggregates every persistence backend the application talks
// to: the relational credential/ticket store and the document-style
// song catalog.
type Storages struct {
	UserRepository   UserRepository
	TicketRepository TicketRepository
	SongCatalog      SongCatalog
}

// NewStorages connects to all configured backends, runs the relational
// migrations, and returns the assembled repositories. Any connection
// failure is returned to the caller, which is expected to treat it as
// fatal at startup.
//
// The song catalog is optional: when no Redis URL is configured the
// catalog stays nil and the catalog routes are not mounted.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		return nil, err
	}

	storages := &Storages{
		UserRepository:   NewUserRepository(db, log),
		TicketRepository: NewTicketRepository(db, log),
	}

	if cfg.Catalog.RedisURL != "" {
		catalog, err := NewSongCatalog(ctx, cfg.Catalog, log)
		if err != nil {
			return nil, err
		}
		storages.SongCatalog = catalog
	}

	return storages, nil
}

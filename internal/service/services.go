package service

import (
	"github.com/showpass/showpass/internal/config"
	"github.com/showpass/showpass/internal/logger"
	"github.com/showpass/showpass/internal/store"
)

// Services aggregates every application service behind one value so the
// transport layer receives a single dependency.
type Services struct {
	Auth    AuthService
	MFA     MFAService
	GitHub  GitHubResolver
	Tickets TicketService
	Catalog CatalogService
}

// NewServices wires all services on top of the storage layer. Catalog
// stays nil when no song catalog backend is configured; the HTTP layer
// skips the catalog routes in that case.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, log *logger.Logger) *Services {
	services := &Services{
		Auth:    NewAuthService(storages.UserRepository, cfg.App, log),
		MFA:     NewMFAService(storages.UserRepository, cfg.App, log),
		GitHub:  NewGitHubResolver(storages.UserRepository, cfg.GitHub, log),
		Tickets: NewTicketService(storages.TicketRepository, log),
	}

	if storages.SongCatalog != nil {
		services.Catalog = NewCatalogService(storages.SongCatalog, log)
	}

	return services
}

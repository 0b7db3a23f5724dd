package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/register/user", h.register)
		r.Post("/token", h.token)
		r.Post("/verify-totp", h.verifyTOTP)
		r.Get("/github/welcome", h.githubWelcome)
	})

	// routes behind the bearer-token gate
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/users/me", h.usersMe)
		r.Get("/welcome/all-users", h.welcomeAllUsers)
		r.With(h.requireRole(premiumRole)).Get("/welcome/premium-users", h.welcomePremiumUsers)
		r.Post("/user/enable-mfa", h.enableMFA)

		r.Route("/ticket", func(r chi.Router) {
			r.Post("/", h.createTicket)
			r.Get("/{ticketID}", h.getTicket)
			r.Get("/show/{show}", h.getTicketsForShow)
			r.Put("/{ticketID}", h.updateTicket)
			r.Put("/{ticketID}/price/{price}", h.updateTicketPrice)
			r.Put("/{ticketID}/details", h.updateTicketDetails)
			r.Delete("/{ticketID}", h.deleteTicket)
		})
		r.Post("/event", h.createEvent)

		// the song catalog is optional; without a configured backend the
		// routes are simply not mounted
		if h.services.Catalog != nil {
			r.Route("/song", func(r chi.Router) {
				r.Post("/", h.addSong)
				r.Get("/{songID}", h.getSong)
				r.Put("/{songID}", h.updateSong)
				r.Delete("/{songID}", h.deleteSong)
			})
		}
	})

	return router
}

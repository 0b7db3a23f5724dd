package http

import (
	"fmt"
	"net/http"

	"github.com/showpass/showpass/internal/utils"
	"github.com/showpass/showpass/models"
)

var premiumRole = models.RolePremium

// requireRole builds a middleware that admits only users whose role
// matches exactly. It must be mounted after the auth middleware, which
// places the user in the request context.
func (h *Handler) requireRole(role models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := utils.GetUserFromContext(r.Context())
			if !ok {
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}

			if err := h.services.Auth.RequireRole(user, role); err != nil {
				handleError(w, r, err)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (h *Handler) welcomeAllUsers(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{
		Message: fmt.Sprintf("Hello %s, welcome to showpass!", user.Username),
	}, http.StatusOK)
}

func (h *Handler) welcomePremiumUsers(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{
		Message: fmt.Sprintf("Hello %s, welcome to the premium lounge!", user.Username),
	}, http.StatusOK)
}

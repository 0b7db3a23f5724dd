package http

import (
	"fmt"
	"net/http"

	"github.com/showpass/showpass/internal/logger"
	"github.com/showpass/showpass/internal/utils"
	"github.com/showpass/showpass/models"
)

// githubWelcome greets a user who authenticates with a GitHub-issued
// access token instead of a locally-issued one. The token is never
// stored; it is forwarded once to the GitHub API and the resulting
// profile is matched against local accounts.
func (h *Handler) githubWelcome(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		log.Err(ErrEmptyAuthorizationHeader).Send()
		http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
		return
	}

	accessToken, err := getTokenFromAuthHeader(authHeader)
	if err != nil {
		log.Err(err).Send()
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	user, err := h.services.GitHub.ResolveUser(ctx, accessToken)
	if err != nil {
		handleError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{
		Message: fmt.Sprintf("Welcome back, %s!", user.Username),
	}, http.StatusOK)
}

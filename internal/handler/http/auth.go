package http

import (
	"encoding/json"
	"net/http"

	"github.com/showpass/showpass/internal/logger"
	"github.com/showpass/showpass/internal/utils"
	"github.com/showpass/showpass/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var body models.UserCreateBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.Auth.RegisterUser(ctx, body)
	if err != nil {
		handleError(w, r, err)
		return
	}

	log.Debug().Str("username", registeredUser.Username).Msg("user successfully registered")

	utils.WriteJSON(w, models.RegisterResponse{
		Message: "user created",
		User: models.UserCreateResponse{
			Username: registeredUser.Username,
			Email:    registeredUser.Email,
		},
	}, http.StatusCreated)
}

// token exchanges form-encoded credentials for a bearer token, the
// OAuth2 password-flow shape: "username" and "password" fields in, an
// access_token/token_type pair out.
func (h *Handler) token(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("invalid form body")
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if username == "" || password == "" {
		http.Error(w, "username and password are required", http.StatusBadRequest)
		return
	}

	user, err := h.services.Auth.Authenticate(ctx, username, password)
	if err != nil {
		handleError(w, r, err)
		return
	}

	token, err := h.services.Auth.CreateToken(ctx, user)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.TokenResponse{
		AccessToken: token.SignedString,
		TokenType:   "bearer",
	}, http.StatusOK)
}

func (h *Handler) usersMe(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	utils.WriteJSON(w, models.DescriptionResponse{
		Description: user.Username + " is authorized!",
	}, http.StatusOK)
}

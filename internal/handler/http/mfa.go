package http

import (
	"encoding/json"
	"net/http"

	"github.com/showpass/showpass/internal/logger"
	"github.com/showpass/showpass/internal/utils"
	"github.com/showpass/showpass/models"
)

func (h *Handler) enableMFA(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	resp, err := h.services.MFA.Enable(ctx, user)
	if err != nil {
		handleError(w, r, err)
		return
	}

	// the secret is shown to the client exactly once
	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) verifyTOTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var body models.MFAVerifyBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if body.Username == "" || body.Code == "" {
		http.Error(w, "username and code are required", http.StatusBadRequest)
		return
	}

	if err := h.services.MFA.Verify(ctx, body.Username, body.Code); err != nil {
		handleError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{
		Message: "Token verified successfully!",
	}, http.StatusOK)
}

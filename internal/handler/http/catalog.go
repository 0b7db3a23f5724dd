package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/showpass/showpass/internal/logger"
	"github.com/showpass/showpass/internal/utils"
	"github.com/showpass/showpass/models"
)

func (h *Handler) addSong(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var song models.Song
	if err := json.NewDecoder(r.Body).Decode(&song); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	songID, err := h.services.Catalog.AddSong(ctx, song)
	if err != nil {
		handleError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.SongCreateResponse{
		ID:      songID,
		Message: "song added",
	}, http.StatusCreated)
}

func (h *Handler) getSong(w http.ResponseWriter, r *http.Request) {
	song, err := h.services.Catalog.GetSong(r.Context(), chi.URLParam(r, "songID"))
	if err != nil {
		handleError(w, r, err)
		return
	}

	utils.WriteJSON(w, song, http.StatusOK)
}

func (h *Handler) updateSong(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var update models.SongUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.Catalog.UpdateSong(r.Context(), chi.URLParam(r, "songID"), update); err != nil {
		handleError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "song updated"}, http.StatusOK)
}

func (h *Handler) deleteSong(w http.ResponseWriter, r *http.Request) {
	if err := h.services.Catalog.DeleteSong(r.Context(), chi.URLParam(r, "songID")); err != nil {
		handleError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "song deleted"}, http.StatusOK)
}

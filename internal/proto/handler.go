package proto

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/showpass/showpass/internal/logger"
	"github.com/showpass/showpass/internal/utils"
)

type Handler struct {
	store  *ItemStore
	logger *logger.Logger
}

func NewHandler(store *ItemStore, logger *logger.Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withLogging)

	router.Post("/item", h.addItem)
	router.Get("/item/{itemID}", h.getItem)

	return router
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	var item Item
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	if item.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}

	itemID, err := h.store.AddItem(r.Context(), item)
	if err != nil {
		h.logger.Err(err).Msg("item insertion failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, map[string]int64{"id": itemID}, http.StatusCreated)
}

func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := strconv.ParseInt(chi.URLParam(r, "itemID"), 10, 64)
	if err != nil {
		http.Error(w, "invalid item id", http.StatusBadRequest)
		return
	}

	item, err := h.store.GetItem(r.Context(), itemID)
	if errors.Is(err, ErrItemNotFound) {
		http.Error(w, ErrItemNotFound.Error(), http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.Err(err).Msg("item lookup failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, item, http.StatusOK)
}

func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)

		h.logger.Info().
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Dur("duration", time.Since(start)).
			Send()
	})
}

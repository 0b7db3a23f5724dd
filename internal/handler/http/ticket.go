package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/showpass/showpass/internal/logger"
	"github.com/showpass/showpass/internal/utils"
	"github.com/showpass/showpass/models"
)

// ticketIDFromRequest parses the {ticketID} route parameter. A non-numeric
// value is a client error; the helper writes the 400 itself and reports
// success via the bool.
func ticketIDFromRequest(w http.ResponseWriter, r *http.Request) (int64, bool) {
	ticketID, err := strconv.ParseInt(chi.URLParam(r, "ticketID"), 10, 64)
	if err != nil {
		http.Error(w, "invalid ticket id", http.StatusBadRequest)
		return 0, false
	}
	return ticketID, true
}

func (h *Handler) createTicket(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var body models.TicketCreateBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	ticketID, err := h.services.Tickets.CreateTicket(ctx, body)
	if err != nil {
		handleError(w, r, err)
		return
	}

	utils.WriteJSON(w, map[string]int64{"id": ticketID}, http.StatusCreated)
}

func (h *Handler) getTicket(w http.ResponseWriter, r *http.Request) {
	ticketID, ok := ticketIDFromRequest(w, r)
	if !ok {
		return
	}

	ticket, err := h.services.Tickets.GetTicket(r.Context(), ticketID)
	if err != nil {
		handleError(w, r, err)
		return
	}

	utils.WriteJSON(w, ticket, http.StatusOK)
}

func (h *Handler) getTicketsForShow(w http.ResponseWriter, r *http.Request) {
	show := chi.URLParam(r, "show")

	tickets, err := h.services.Tickets.GetTicketsForShow(r.Context(), show)
	if err != nil {
		handleError(w, r, err)
		return
	}

	utils.WriteJSON(w, tickets, http.StatusOK)
}

func (h *Handler) updateTicket(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	ticketID, ok := ticketIDFromRequest(w, r)
	if !ok {
		return
	}

	var update models.TicketUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.Tickets.UpdateTicket(r.Context(), ticketID, update); err != nil {
		handleError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "ticket updated"}, http.StatusOK)
}

func (h *Handler) updateTicketPrice(w http.ResponseWriter, r *http.Request) {
	ticketID, ok := ticketIDFromRequest(w, r)
	if !ok {
		return
	}

	price, err := strconv.ParseFloat(chi.URLParam(r, "price"), 64)
	if err != nil {
		http.Error(w, "invalid price", http.StatusBadRequest)
		return
	}

	if err := h.services.Tickets.UpdateTicketPrice(r.Context(), ticketID, price); err != nil {
		handleError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "price updated"}, http.StatusOK)
}

func (h *Handler) updateTicketDetails(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	ticketID, ok := ticketIDFromRequest(w, r)
	if !ok {
		return
	}

	var details models.TicketDetails
	if err := json.NewDecoder(r.Body).Decode(&details); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.Tickets.UpdateTicketDetails(r.Context(), ticketID, details); err != nil {
		handleError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "ticket details updated"}, http.StatusOK)
}

func (h *Handler) deleteTicket(w http.ResponseWriter, r *http.Request) {
	ticketID, ok := ticketIDFromRequest(w, r)
	if !ok {
		return
	}

	if err := h.services.Tickets.DeleteTicket(r.Context(), ticketID); err != nil {
		handleError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "ticket deleted"}, http.StatusOK)
}

func (h *Handler) createEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var body models.EventCreateBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	eventID, err := h.services.Tickets.CreateEvent(ctx, body)
	if err != nil {
		handleError(w, r, err)
		return
	}

	utils.WriteJSON(w, map[string]int64{"id": eventID}, http.StatusCreated)
}

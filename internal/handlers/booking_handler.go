package handlers

import (
	"encoding/json"
	"net/http"

	"garageFront/internal/models"
	"garageFront/internal/services"
	"garageFront/internal/wizard"
)

// BookingEvent is pushed to the subscriber's websocket when a booking is
// confirmed.
type BookingEvent struct {
	SubscriberID int     `json:"subscriber_id"`
	BookingID    int     `json:"booking_id"`
	GarageName   string  `json:"garage_name"`
	Date         string  `json:"date"`
	Slot         string  `json:"slot"`
	Total        float64 `json:"total"`
}

type BookingHandler struct {
	Service   *services.BookingService
	Broadcast chan<- BookingEvent
}

type startDraftRequest struct {
	GarageID int `json:"garage_id"`
}

// StartDraft opens a wizard draft. An unresolvable garage id cancels the
// flow, mirroring the redirect-home path of the web client.
func (h *BookingHandler) StartDraft(w http.ResponseWriter, r *http.Request) {
	var req startDraftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.GarageID <= 0 {
		http.Error(w, "A garage id is required to start a booking", http.StatusBadRequest)
		return
	}
	draft, err := h.Service.StartDraft(r.Context(), subscriberID(r), businessID(r), req.GarageID, bearerToken(r))
	if err != nil {
		if err == models.ErrGarageNotFound {
			http.Error(w, "Garage not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to start booking", http.StatusBadGateway)
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(h.view(draft))
}

// GetDraft returns the wizard state.
func (h *BookingHandler) GetDraft(w http.ResponseWriter, r *http.Request) {
	draft, err := h.Service.GetDraft(r.Context(), getParam(r, "id"), subscriberID(r))
	if err != nil {
		h.draftError(w, err)
		return
	}
	json.NewEncoder(w).Encode(h.view(draft))
}

// Select applies step selections to the draft.
func (h *BookingHandler) Select(w http.ResponseWriter, r *http.Request) {
	var sel services.WizardSelection
	if err := json.NewDecoder(r.Body).Decode(&sel); err != nil {
		http.Error(w, "Invalid body", http.StatusBadRequest)
		return
	}
	draft, err := h.Service.Select(r.Context(), getParam(r, "id"), subscriberID(r), sel)
	if err != nil {
		h.draftError(w, err)
		return
	}
	json.NewEncoder(w).Encode(h.view(draft))
}

// Next advances one step; a refused advance still returns 200 with the
// step-scoped error in the draft state.
func (h *BookingHandler) Next(w http.ResponseWriter, r *http.Request) {
	draft, err := h.Service.Next(r.Context(), getParam(r, "id"), subscriberID(r))
	if err != nil {
		h.draftError(w, err)
		return
	}
	json.NewEncoder(w).Encode(h.view(draft))
}

// Previous steps back one step and clears errors.
func (h *BookingHandler) Previous(w http.ResponseWriter, r *http.Request) {
	draft, err := h.Service.Previous(r.Context(), getParam(r, "id"), subscriberID(r))
	if err != nil {
		h.draftError(w, err)
		return
	}
	json.NewEncoder(w).Encode(h.view(draft))
}

type jumpRequest struct {
	Target int `json:"target"`
}

// Jump moves to a strictly earlier step; anything else is a no-op.
func (h *BookingHandler) Jump(w http.ResponseWriter, r *http.Request) {
	var req jumpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid body", http.StatusBadRequest)
		return
	}
	draft, err := h.Service.Jump(r.Context(), getParam(r, "id"), subscriberID(r), req.Target)
	if err != nil {
		h.draftError(w, err)
		return
	}
	json.NewEncoder(w).Encode(h.view(draft))
}

type submitRequest struct {
	DeviceToken string `json:"device_token,omitempty"`
}

// Submit sends the booking upstream and returns the confirmation summary.
func (h *BookingHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if r.Body != nil {
		json.NewDecoder(r.Body).Decode(&req)
	}
	draft, err := h.Service.Submit(r.Context(), getParam(r, "id"), subscriberID(r), req.DeviceToken, bearerToken(r))
	if err != nil {
		if err == models.ErrDuplicateBooking {
			http.Error(w, "You already have a booking with these details. Please check your bookings.", http.StatusConflict)
			return
		}
		h.draftError(w, err)
		return
	}
	if h.Broadcast != nil && draft.Confirmation != nil {
		h.Broadcast <- BookingEvent{
			SubscriberID: draft.SubscriberID,
			BookingID:    draft.Confirmation.BookingID,
			GarageName:   draft.GarageName,
			Date:         draft.Confirmation.Date,
			Slot:         draft.Confirmation.Slot,
			Total:        draft.Confirmation.Total,
		}
	}
	json.NewEncoder(w).Encode(h.view(draft))
}

func (h *BookingHandler) draftError(w http.ResponseWriter, err error) {
	switch err {
	case models.ErrWizardNotFound:
		http.Error(w, "Booking draft not found", http.StatusNotFound)
	case models.ErrWizardFinished:
		http.Error(w, "This booking is already confirmed", http.StatusConflict)
	case models.ErrStepIncomplete:
		http.Error(w, "Required selection missing", http.StatusUnprocessableEntity)
	case models.ErrInvalidPromoCode:
		http.Error(w, "Invalid promo code", http.StatusUnprocessableEntity)
	default:
		http.Error(w, "Something went wrong, please try again", http.StatusBadGateway)
	}
}

// draftView is the wizard state plus the derived quote.
type draftView struct {
	*wizard.Draft
	Quote quoteView `json:"quote"`
}

type quoteView struct {
	Subtotal float64 `json:"subtotal"`
	Discount float64 `json:"discount"`
	Total    float64 `json:"total"`
}

func (h *BookingHandler) view(d *wizard.Draft) draftView {
	q := d.Quote()
	return draftView{
		Draft: d,
		Quote: quoteView{Subtotal: q.Subtotal, Discount: q.Discount, Total: q.Total},
	}
}

package handlers

import (
	"encoding/json"
	"net/http"

	"garageFront/internal/models"
	"garageFront/internal/services"
)

type AddressHandler struct {
	Service *services.AddressService
}

// GetAddresses lists the authenticated subscriber's addresses.
func (h *AddressHandler) GetAddresses(w http.ResponseWriter, r *http.Request) {
	addresses, err := h.Service.GetAddresses(r.Context(), subscriberID(r), bearerToken(r))
	if err != nil {
		http.Error(w, "Failed to fetch addresses", http.StatusBadGateway)
		return
	}
	if addresses == nil {
		addresses = []models.Address{}
	}
	json.NewEncoder(w).Encode(addresses)
}

// CreateAddress validates and creates an address. Validation failures come
// back as field-specific 422s and never reach upstream.
func (h *AddressHandler) CreateAddress(w http.ResponseWriter, r *http.Request) {
	var req models.CreateAddressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid body", http.StatusBadRequest)
		return
	}
	req.SubscriberID = subscriberID(r)
	created, err := h.Service.CreateAddress(r.Context(), req, bearerToken(r))
	if err != nil {
		switch err {
		case models.ErrInvalidPincode:
			http.Error(w, "Pincode must be exactly 6 digits", http.StatusUnprocessableEntity)
		case models.ErrMissingFields:
			http.Error(w, "City and address are required", http.StatusUnprocessableEntity)
		default:
			http.Error(w, "Failed to create address", http.StatusBadGateway)
		}
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

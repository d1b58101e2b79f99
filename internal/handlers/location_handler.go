package handlers

import (
	"encoding/json"
	"net/http"

	"garageFront/internal/models"
	"garageFront/internal/services"
)

// LocationHandler resolves device coordinates to the nearest supported city
// and remembers explicit city picks.
type LocationHandler struct {
	Service *services.LocationService
}

type resolveRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Resolve maps coordinates to the nearest known city. A device lookup
// failure is represented by zero coordinates and yields the fallback city;
// it is never a hard error.
func (h *LocationHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	var req resolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid body", http.StatusBadRequest)
		return
	}
	loc := h.Service.Resolve(r.Context(), req.Latitude, req.Longitude)
	json.NewEncoder(w).Encode(loc)
}

type rememberCityRequest struct {
	City string `json:"city"`
}

// RememberCity stores the subscriber's explicit city pick.
func (h *LocationHandler) RememberCity(w http.ResponseWriter, r *http.Request) {
	var req rememberCityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.City == "" {
		http.Error(w, "Invalid body", http.StatusBadRequest)
		return
	}
	if err := h.Service.RememberCity(r.Context(), subscriberID(r), req.City); err != nil {
		if err == models.ErrCityNotSupported {
			http.Error(w, "This city is not supported yet", http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, "Failed to save city", http.StatusBadGateway)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SelectedCity returns the remembered pick, or an empty value when none.
func (h *LocationHandler) SelectedCity(w http.ResponseWriter, r *http.Request) {
	city := h.Service.SelectedCity(r.Context(), subscriberID(r))
	json.NewEncoder(w).Encode(map[string]string{"city": city})
}

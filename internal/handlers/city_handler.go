package handlers

import (
	"encoding/json"
	"net/http"

	"garageFront/internal/models"
	"garageFront/internal/services"
)

type CityHandler struct {
	Service *services.CityService
}

type activeCitiesResponse struct {
	models.ActiveCityData
	Supported bool `json:"supported"`
}

// GetActiveCities serves the city picker payload: supported cities plus the
// requested city's service filters and banners. An unsupported city still
// gets the payload, flagged so the picker can render its coming-soon state.
func (h *CityHandler) GetActiveCities(w http.ResponseWriter, r *http.Request) {
	city := getParam(r, "city")
	data, err := h.Service.GetActiveCities(r.Context(), city, bearerToken(r))
	if err != nil {
		http.Error(w, "Failed to fetch cities", http.StatusBadGateway)
		return
	}
	resp := activeCitiesResponse{
		ActiveCityData: data,
		Supported:      city == "" || h.Service.Supported(city),
	}
	json.NewEncoder(w).Encode(resp)
}

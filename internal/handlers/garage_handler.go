package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"garageFront/internal/models"
	"garageFront/internal/services"
	"garageFront/internal/slots"
	"garageFront/internal/timeutil"
)

type GarageHandler struct {
	Service *services.GarageService
}

// Search runs the parameterized listing for any vertical: fetch, post-filter,
// sort, empty-state classification.
func (h *GarageHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req models.SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid body", http.StatusBadRequest)
		return
	}
	result, err := h.Service.Search(r.Context(), req, bearerToken(r))
	if err != nil {
		http.Error(w, "Failed to fetch garages", http.StatusBadGateway)
		return
	}
	json.NewEncoder(w).Encode(result)
}

// GetGarageByID serves the detail page payload, open/closed flag included.
func (h *GarageHandler) GetGarageByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(getParam(r, "id"))
	if err != nil || id <= 0 {
		http.Error(w, "Invalid garage id", http.StatusBadRequest)
		return
	}
	detail, err := h.Service.GetGarageDetail(r.Context(), id, bearerToken(r))
	if err != nil {
		if err == models.ErrGarageNotFound {
			http.Error(w, "Garage not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to fetch garage", http.StatusBadGateway)
		return
	}
	json.NewEncoder(w).Encode(detail)
}

// GetGarageServices returns the service/add-on lists for a garage and cc
// class.
func (h *GarageHandler) GetGarageServices(w http.ResponseWriter, r *http.Request) {
	var req models.GarageServicesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid body", http.StatusBadRequest)
		return
	}
	if req.GarageID == 0 {
		http.Error(w, "garageid is required", http.StatusBadRequest)
		return
	}
	resp, err := h.Service.GetGarageServices(r.Context(), req.GarageID, req.CCID, bearerToken(r))
	if err != nil {
		http.Error(w, "Failed to fetch services", http.StatusBadGateway)
		return
	}
	json.NewEncoder(w).Encode(resp)
}

// GetSlots returns the current rolling slot window.
func (h *GarageHandler) GetSlots(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(slots.Generate(timeutil.Now()))
}

// GetVerticalBrands returns the brand toggle set for a vertical listing page.
func (h *GarageHandler) GetVerticalBrands(w http.ResponseWriter, r *http.Request) {
	tag := getParam(r, "tag")
	brands := services.VerticalBrands(tag)
	if brands == nil {
		brands = []string{}
	}
	json.NewEncoder(w).Encode(map[string][]string{"brands": brands})
}

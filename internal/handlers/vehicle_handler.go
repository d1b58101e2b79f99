package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"garageFront/internal/models"
	"garageFront/internal/services"
)

type VehicleHandler struct {
	Service *services.VehicleService
}

// GetVehicles lists the authenticated subscriber's vehicles.
func (h *VehicleHandler) GetVehicles(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.Service.GetVehicles(r.Context(), subscriberID(r), bearerToken(r))
	if err != nil {
		http.Error(w, "Failed to fetch vehicles", http.StatusBadGateway)
		return
	}
	if vehicles == nil {
		vehicles = []models.Vehicle{}
	}
	json.NewEncoder(w).Encode(vehicles)
}

// CreateVehicle creates a vehicle from the brand-then-model selection.
func (h *VehicleHandler) CreateVehicle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateVehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid body", http.StatusBadRequest)
		return
	}
	if req.Brand == "" || req.Model == "" {
		http.Error(w, "Brand and model are required", http.StatusBadRequest)
		return
	}
	req.SubscriberID = subscriberID(r)
	created, err := h.Service.CreateVehicle(r.Context(), req, bearerToken(r))
	if err != nil {
		http.Error(w, "Failed to create vehicle", http.StatusBadGateway)
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

// DeleteVehicle removes a vehicle by id.
func (h *VehicleHandler) DeleteVehicle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(getParam(r, "id"))
	if err != nil || id <= 0 {
		http.Error(w, "Invalid vehicle id", http.StatusBadRequest)
		return
	}
	if err := h.Service.DeleteVehicle(r.Context(), id, subscriberID(r), bearerToken(r)); err != nil {
		if err == models.ErrVehicleNotFound {
			http.Error(w, "Vehicle not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to delete vehicle", http.StatusBadGateway)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetBrands lists vehicle brands for the create flow.
func (h *VehicleHandler) GetBrands(w http.ResponseWriter, r *http.Request) {
	brands, err := h.Service.GetBrands(r.Context(), bearerToken(r))
	if err != nil {
		http.Error(w, "Failed to fetch brands", http.StatusBadGateway)
		return
	}
	json.NewEncoder(w).Encode(brands)
}

// GetModels lists a brand's models.
func (h *VehicleHandler) GetModels(w http.ResponseWriter, r *http.Request) {
	brandID, err := strconv.Atoi(getParam(r, "brand_id"))
	if err != nil || brandID <= 0 {
		http.Error(w, "Invalid brand id", http.StatusBadRequest)
		return
	}
	vehicleModels, err := h.Service.GetModels(r.Context(), brandID, bearerToken(r))
	if err != nil {
		http.Error(w, "Failed to fetch models", http.StatusBadGateway)
		return
	}
	json.NewEncoder(w).Encode(vehicleModels)
}

// UploadImage stores a vehicle photo and returns its URL.
func (h *VehicleHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	err := r.ParseMultipartForm(32 << 20) // 32MB
	if err != nil {
		http.Error(w, "Invalid multipart form", http.StatusBadRequest)
		return
	}
	file, _, err := r.FormFile("image")
	if err != nil {
		http.Error(w, "Image file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, "Failed to read file", http.StatusInternalServerError)
		return
	}
	url, err := h.Service.UploadVehicleImage(r.Context(), data)
	if err != nil {
		http.Error(w, "Failed to upload image", http.StatusBadGateway)
		return
	}
	json.NewEncoder(w).Encode(map[string]string{"url": url})
}

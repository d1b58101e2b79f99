package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"garageFront/internal/models"
	"garageFront/internal/repositories"
	"garageFront/utils"
)

// VehicleService owns the subscriber's vehicles and the brand/model lookup
// flow backing the create wizard.
type VehicleService struct {
	SubscriberRepo *repositories.SubscriberRepository
	CatalogRepo    *repositories.CatalogRepository
	Storage        *utils.Storage
}

// GetVehicles lists a subscriber's vehicles.
func (s *VehicleService) GetVehicles(ctx context.Context, subscriberID int, token string) ([]models.Vehicle, error) {
	return s.SubscriberRepo.GetVehicles(ctx, subscriberID, token)
}

// CreateVehicle creates a vehicle from the brand-then-model selection. A
// missing registration number gets an explicit placeholder until the real
// one is entered.
func (s *VehicleService) CreateVehicle(ctx context.Context, req models.CreateVehicleRequest, token string) (models.Vehicle, error) {
	vehicle := models.Vehicle{
		SubscriberID:       req.SubscriberID,
		Brand:              req.Brand,
		Model:              req.Model,
		CCID:               req.CCID,
		Year:               req.Year,
		RegistrationNumber: req.RegistrationNumber,
		Image:              req.Image,
	}
	if vehicle.RegistrationNumber == "" {
		vehicle.RegistrationNumber = fmt.Sprintf("TEMP-%s", uuid.NewString())
		vehicle.RegistrationPlaceholder = true
	}
	return s.SubscriberRepo.CreateVehicle(ctx, vehicle, token)
}

// DeleteVehicle removes a subscriber's vehicle.
func (s *VehicleService) DeleteVehicle(ctx context.Context, vehicleID, subscriberID int, token string) error {
	return s.SubscriberRepo.DeleteVehicle(ctx, vehicleID, subscriberID, token)
}

// GetBrands lists vehicle brands.
func (s *VehicleService) GetBrands(ctx context.Context, token string) ([]models.Brand, error) {
	return s.CatalogRepo.GetBrands(ctx, token)
}

// GetModels lists a brand's models.
func (s *VehicleService) GetModels(ctx context.Context, brandID int, token string) ([]models.VehicleModel, error) {
	return s.CatalogRepo.GetModels(ctx, brandID, token)
}

// UploadVehicleImage stores a vehicle photo and returns its public URL.
func (s *VehicleService) UploadVehicleImage(ctx context.Context, file []byte) (string, error) {
	name := uuid.NewString() + utils.ImageExtension(file)
	return s.Storage.UploadFile(file, name, "vehicles")
}

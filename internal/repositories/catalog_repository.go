package repositories

import (
	"context"
	"net/url"
	"strconv"

	"garageFront/internal/api"
	"garageFront/internal/models"
)

// CatalogRepository binds the upstream lookup endpoints: active cities,
// vehicle brands and models.
type CatalogRepository struct {
	Client *api.Client
}

// GetActiveCities fetches supported cities plus the requested city's service
// filters and banners via GET /active-cities/?city={name}.
func (r *CatalogRepository) GetActiveCities(ctx context.Context, city, token string) (models.ActiveCityData, error) {
	params := url.Values{}
	if city != "" {
		params.Set("city", city)
	}
	env, err := r.Client.Get(ctx, "/active-cities/", params, token)
	if err != nil {
		return models.ActiveCityData{}, err
	}
	var data models.ActiveCityData
	if err := env.DecodeData(&data); err != nil {
		return models.ActiveCityData{}, err
	}
	return data, nil
}

// GetBrands fetches vehicle brands via GET /brands/.
func (r *CatalogRepository) GetBrands(ctx context.Context, token string) ([]models.Brand, error) {
	env, err := r.Client.Get(ctx, "/brands/", nil, token)
	if err != nil {
		return nil, err
	}
	var brands []models.Brand
	if err := env.DecodeData(&brands); err != nil {
		return nil, err
	}
	return brands, nil
}

// GetModels fetches a brand's models via GET /models/?id={brandId}.
func (r *CatalogRepository) GetModels(ctx context.Context, brandID int, token string) ([]models.VehicleModel, error) {
	params := url.Values{}
	params.Set("id", strconv.Itoa(brandID))
	env, err := r.Client.Get(ctx, "/models/", params, token)
	if err != nil {
		return nil, err
	}
	var vehicleModels []models.VehicleModel
	if err := env.DecodeData(&vehicleModels); err != nil {
		return nil, err
	}
	return vehicleModels, nil
}

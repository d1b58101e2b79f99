package services

import (
	"context"

	"garageFront/internal/geo"
	"garageFront/internal/models"
	"garageFront/internal/repositories"
)

// CityService exposes the active-cities lookup: supported cities plus the
// requested city's service filters and banners.
type CityService struct {
	CatalogRepo *repositories.CatalogRepository
}

// GetActiveCities fetches the active-city payload for a city name.
func (s *CityService) GetActiveCities(ctx context.Context, city, token string) (models.ActiveCityData, error) {
	return s.CatalogRepo.GetActiveCities(ctx, city, token)
}

// Supported reports whether a city is in the known-city table. Unknown cities
// render as "coming soon" rather than an error.
func (s *CityService) Supported(city string) bool {
	return geo.KnownCity(city)
}

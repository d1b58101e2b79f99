package services

import (
	"context"

	"garageFront/internal/geo"
	"garageFront/internal/models"
)

// LocationService resolves coordinates to the nearest supported city, with a
// redis cache in front and the Pune fallback behind. A failed device lookup
// degrades silently; it never blocks the booking flow.
type LocationService struct {
	Cache *geo.LocationCache
}

// Resolve maps coordinates to the nearest known city. Zero or out-of-range
// coordinates take the fallback location.
func (s *LocationService) Resolve(ctx context.Context, lat, lon float64) models.Location {
	if lat == 0 && lon == 0 {
		return models.Location{
			Latitude:  geo.FallbackLatitude,
			Longitude: geo.FallbackLongitude,
			City:      geo.FallbackCity,
			Fallback:  true,
		}
	}
	if cached, ok := s.Cache.Get(ctx, lat, lon); ok {
		return cached
	}
	city, _ := geo.NearestCity(lat, lon)
	loc := models.Location{Latitude: lat, Longitude: lon, City: city}
	s.Cache.Set(ctx, loc)
	return loc
}

// RememberCity stores a subscriber's explicit city pick. Cities outside the
// supported table are refused rather than silently remembered.
func (s *LocationService) RememberCity(ctx context.Context, subscriberID int, city string) error {
	if !geo.KnownCity(city) {
		return models.ErrCityNotSupported
	}
	s.Cache.SetSelectedCity(ctx, subscriberID, city)
	return nil
}

// SelectedCity returns the remembered pick, or "" when none.
func (s *LocationService) SelectedCity(ctx context.Context, subscriberID int) string {
	return s.Cache.SelectedCity(ctx, subscriberID)
}

package repositories

import (
	"context"
	"net/url"
	"strconv"

	"garageFront/internal/api"
	"garageFront/internal/models"
)

// GarageRepository binds the upstream garage endpoints. Paths and body field
// names are the upstream contract and are preserved verbatim.
type GarageRepository struct {
	Client *api.Client
}

// listGarageFilter mirrors the upstream filter body. The distance field is
// spelled "distence" upstream.
type listGarageFilter struct {
	Sort     []string  `json:"sort"`
	Ratings  []float64 `json:"ratings"`
	Distence []float64 `json:"distence"`
	Services []string  `json:"services"`
	Brands   []string  `json:"brands"`
}

type listGarageRequest struct {
	Location  string           `json:"location"`
	Latitude  float64          `json:"latitude"`
	Longitude float64          `json:"longitude"`
	Filter    listGarageFilter `json:"filter"`
}

// ListGarages fetches garages for a location and filter via POST /listgarage/.
func (r *GarageRepository) ListGarages(ctx context.Context, req models.SearchRequest, token string) ([]models.Garage, error) {
	body := listGarageRequest{
		Location:  req.Location,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Filter: listGarageFilter{
			Sort:     []string{req.Filter.Sort},
			Ratings:  req.Filter.Ratings,
			Services: req.Filter.Services,
			Brands:   req.Filter.Brands,
		},
	}
	if req.Filter.Distance > 0 {
		body.Filter.Distence = []float64{req.Filter.Distance}
	}
	env, err := r.Client.Post(ctx, "/listgarage/", body, token)
	if err != nil {
		return nil, err
	}
	var garages []models.Garage
	if err := env.DecodeData(&garages); err != nil {
		return nil, err
	}
	return garages, nil
}

// GetGarageByID fetches one garage via GET /garage/?id={id}.
func (r *GarageRepository) GetGarageByID(ctx context.Context, id int, token string) (models.Garage, error) {
	params := url.Values{}
	params.Set("id", strconv.Itoa(id))
	env, err := r.Client.Get(ctx, "/garage/", params, token)
	if err != nil {
		if ue, ok := err.(*api.UpstreamError); ok && ue.StatusCode == 404 {
			return models.Garage{}, models.ErrGarageNotFound
		}
		return models.Garage{}, err
	}
	var garage models.Garage
	if err := env.DecodeData(&garage); err != nil {
		return models.Garage{}, err
	}
	if garage.ID == 0 {
		return models.Garage{}, models.ErrGarageNotFound
	}
	return garage, nil
}

// GetGarageServices fetches services and add-ons for a garage and cc class
// via POST /garage/services/.
func (r *GarageRepository) GetGarageServices(ctx context.Context, garageID, ccID int, token string) ([]models.GarageService, error) {
	body := models.GarageServicesRequest{GarageID: garageID, CCID: ccID}
	env, err := r.Client.Post(ctx, "/garage/services/", body, token)
	if err != nil {
		return nil, err
	}
	var services []models.GarageService
	if err := env.DecodeData(&services); err != nil {
		return nil, err
	}
	return services, nil
}

package services

import (
	"context"
	"math"
	"sort"
	"strings"
	"sync/atomic"

	"garageFront/internal/models"
	"garageFront/internal/repositories"
	"garageFront/internal/timeutil"
)

// Vertical describes one listing page variant: a service category tag plus
// the brand set its brand toggle offers. All verticals share the same fetch,
// filter and sort path.
type Vertical struct {
	Tag             string
	ServiceCategory string
	Brands          []string
}

var verticals = map[string]Vertical{
	"two-wheeler": {Tag: "two-wheeler", ServiceCategory: "Two Wheeler Service", Brands: []string{"Hero", "Honda", "Bajaj", "TVS", "Royal Enfield", "Yamaha", "Suzuki"}},
	"six-wheeler": {Tag: "six-wheeler", ServiceCategory: "Six Wheeler Service", Brands: []string{"Tata", "Ashok Leyland", "Eicher", "BharatBenz"}},
	"ev":          {Tag: "ev", ServiceCategory: "EV Service", Brands: []string{"Ola Electric", "Ather", "TVS", "Bajaj"}},
	"rsa":         {Tag: "rsa", ServiceCategory: "Roadside Assistance", Brands: nil},
}

// GarageService owns listing and detail logic for garages.
type GarageService struct {
	GarageRepo *repositories.GarageRepository

	generation atomic.Uint64
}

// Search fetches garages for a location and filter, applies the post-fetch
// filter and sort, and classifies the empty states. The returned generation
// is monotonically increasing so callers can drop out-of-order responses.
func (s *GarageService) Search(ctx context.Context, req models.SearchRequest, token string) (models.SearchResult, error) {
	gen := s.generation.Add(1)

	if req.Filter.Sort == "" {
		req.Filter.Sort = models.SortDistance
	}

	// Picking brands in the generic panel forces authorized mode and clears
	// the vertical brand toggle; the two affordances are mutually exclusive.
	if len(req.Filter.Brands) > 0 {
		req.GarageType = models.GarageTypeAuthorized
		req.AuthorizedBrand = ""
	} else if req.GarageType == models.GarageTypeAuthorized && req.AuthorizedBrand != "" {
		req.Filter.Brands = []string{req.AuthorizedBrand}
	}

	if v, ok := verticals[req.Vertical]; ok && v.ServiceCategory != "" {
		if !containsFold(req.Filter.Services, v.ServiceCategory) {
			req.Filter.Services = append(req.Filter.Services, v.ServiceCategory)
		}
	}

	garages, err := s.GarageRepo.ListGarages(ctx, req, token)
	if err != nil {
		return models.SearchResult{}, err
	}
	if len(garages) == 0 {
		return models.SearchResult{Kind: models.SearchKindComingSoon, Garages: []models.Garage{}, Generation: gen}, nil
	}

	filtered := applyFilter(garages, req.Filter)
	sortGarages(filtered, req.Filter.Sort)

	kind := models.SearchKindOK
	if len(filtered) == 0 {
		kind = models.SearchKindNoMatches
		filtered = []models.Garage{}
	}
	return models.SearchResult{Kind: kind, Garages: filtered, Generation: gen}, nil
}

// GetGarageDetail fetches one garage and attaches the open/closed flag. The
// fetch is the only data source for the detail page.
func (s *GarageService) GetGarageDetail(ctx context.Context, id int, token string) (models.GarageDetail, error) {
	garage, err := s.GarageRepo.GetGarageByID(ctx, id, token)
	if err != nil {
		return models.GarageDetail{}, err
	}
	return models.GarageDetail{
		Garage: garage,
		IsOpen: GarageIsOpen(garage.OperatingHours, timeutil.Now()),
	}, nil
}

// GetGarageServices fetches the service and add-on lists for a garage and cc
// class, split on the upstream service_type tag.
func (s *GarageService) GetGarageServices(ctx context.Context, garageID, ccID int, token string) (models.GarageServicesResponse, error) {
	all, err := s.GarageRepo.GetGarageServices(ctx, garageID, ccID, token)
	if err != nil {
		return models.GarageServicesResponse{}, err
	}
	resp := models.GarageServicesResponse{
		Services: []models.GarageService{},
		AddOns:   []models.GarageService{},
	}
	for _, item := range all {
		if item.ServiceType == "Add-On" {
			resp.AddOns = append(resp.AddOns, item)
		} else {
			resp.Services = append(resp.Services, item)
		}
	}
	return resp, nil
}

// VerticalBrands returns the brand toggle set for a vertical tag.
func VerticalBrands(tag string) []string {
	if v, ok := verticals[tag]; ok {
		return v.Brands
	}
	return nil
}

// IsOpenNow is the live-badge recomputation used by the websocket ticker.
func (s *GarageService) IsOpenNow(garage models.Garage) bool {
	return GarageIsOpen(garage.OperatingHours, timeutil.Now())
}

// applyFilter enforces the monotonic thresholds: rating at least the lowest
// selected threshold, distance at most the radius, brand membership when
// brands are selected.
func applyFilter(garages []models.Garage, filter models.ListingFilter) []models.Garage {
	minRating := 0.0
	if len(filter.Ratings) > 0 {
		minRating = filter.Ratings[0]
		for _, r := range filter.Ratings[1:] {
			if r < minRating {
				minRating = r
			}
		}
	}

	var out []models.Garage
	for _, g := range garages {
		if minRating > 0 && ratingOrZero(g) < minRating {
			continue
		}
		if filter.Distance > 0 && g.Distance != nil && *g.Distance > filter.Distance {
			continue
		}
		if len(filter.Brands) > 0 && !brandMatch(g.Brands, filter.Brands) {
			continue
		}
		out = append(out, g)
	}
	return out
}

func brandMatch(garageBrands, selected []string) bool {
	for _, want := range selected {
		if containsFold(garageBrands, want) {
			return true
		}
	}
	return false
}

func containsFold(list []string, want string) bool {
	for _, s := range list {
		if strings.EqualFold(s, want) {
			return true
		}
	}
	return false
}

func ratingOrZero(g models.Garage) float64 {
	if g.Rating == nil {
		return 0
	}
	return *g.Rating
}

func distanceOrInf(g models.Garage) float64 {
	if g.Distance == nil {
		return math.Inf(1)
	}
	return *g.Distance
}

func priceOrZero(g models.Garage) float64 {
	if g.Price == nil {
		return 0
	}
	return *g.Price
}

func serviceTimeOrZero(g models.Garage) float64 {
	if g.ServiceTime == nil {
		return 0
	}
	return *g.ServiceTime
}

// sortGarages orders in place. Ties keep the upstream order (stable sort).
func sortGarages(garages []models.Garage, key string) {
	switch key {
	case models.SortRatingHigh:
		sort.SliceStable(garages, func(i, j int) bool {
			return ratingOrZero(garages[i]) > ratingOrZero(garages[j])
		})
	case models.SortRatingLow:
		sort.SliceStable(garages, func(i, j int) bool {
			return ratingOrZero(garages[i]) < ratingOrZero(garages[j])
		})
	case models.SortPriceLow:
		sort.SliceStable(garages, func(i, j int) bool {
			return priceOrZero(garages[i]) < priceOrZero(garages[j])
		})
	case models.SortPriceHigh:
		sort.SliceStable(garages, func(i, j int) bool {
			return priceOrZero(garages[i]) > priceOrZero(garages[j])
		})
	case models.SortServiceTime:
		sort.SliceStable(garages, func(i, j int) bool {
			return serviceTimeOrZero(garages[i]) < serviceTimeOrZero(garages[j])
		})
	default:
		sort.SliceStable(garages, func(i, j int) bool {
			return distanceOrInf(garages[i]) < distanceOrInf(garages[j])
		})
	}
}

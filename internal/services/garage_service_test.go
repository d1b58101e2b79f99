package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"garageFront/internal/api"
	"garageFront/internal/models"
	"garageFront/internal/repositories"
)

func f(v float64) *float64 { return &v }

func TestSortGaragesMissingValues(t *testing.T) {
	t.Run("rating high, missing sorts last", func(t *testing.T) {
		garages := []models.Garage{
			{ID: 1, Rating: f(4.5)},
			{ID: 2, Rating: nil},
			{ID: 3, Rating: f(3)},
		}
		sortGarages(garages, models.SortRatingHigh)
		if garages[0].ID != 1 || garages[1].ID != 3 || garages[2].ID != 2 {
			t.Fatalf("unexpected order: %d %d %d", garages[0].ID, garages[1].ID, garages[2].ID)
		}
	})

	t.Run("distance, missing sorts last", func(t *testing.T) {
		garages := []models.Garage{
			{ID: 1, Distance: nil},
			{ID: 2, Distance: f(1.2)},
			{ID: 3, Distance: f(0.4)},
		}
		sortGarages(garages, models.SortDistance)
		if garages[0].ID != 3 || garages[1].ID != 2 || garages[2].ID != 1 {
			t.Fatalf("unexpected order: %d %d %d", garages[0].ID, garages[1].ID, garages[2].ID)
		}
	})

	t.Run("price low, missing counts zero", func(t *testing.T) {
		garages := []models.Garage{
			{ID: 1, Price: f(900)},
			{ID: 2, Price: nil},
			{ID: 3, Price: f(400)},
		}
		sortGarages(garages, models.SortPriceLow)
		if garages[0].ID != 2 || garages[1].ID != 3 || garages[2].ID != 1 {
			t.Fatalf("unexpected order: %d %d %d", garages[0].ID, garages[1].ID, garages[2].ID)
		}
	})

	t.Run("ties keep upstream order", func(t *testing.T) {
		garages := []models.Garage{
			{ID: 1, Rating: f(4)},
			{ID: 2, Rating: f(4)},
			{ID: 3, Rating: f(4)},
		}
		sortGarages(garages, models.SortRatingHigh)
		if garages[0].ID != 1 || garages[1].ID != 2 || garages[2].ID != 3 {
			t.Fatalf("stable sort violated: %d %d %d", garages[0].ID, garages[1].ID, garages[2].ID)
		}
	})
}

func TestApplyFilter(t *testing.T) {
	garages := []models.Garage{
		{ID: 1, Rating: f(4.5), Distance: f(2), Brands: []string{"Honda"}},
		{ID: 2, Rating: f(3.0), Distance: f(8), Brands: []string{"Hero"}},
		{ID: 3, Rating: nil, Distance: nil, Brands: nil},
	}

	t.Run("rating threshold uses the lowest selected", func(t *testing.T) {
		out := applyFilter(garages, models.ListingFilter{Ratings: []float64{4.5, 3.5}})
		if len(out) != 1 || out[0].ID != 1 {
			t.Fatalf("expected only garage 1, got %v", ids(out))
		}
	})

	t.Run("distance radius keeps unknown distances", func(t *testing.T) {
		out := applyFilter(garages, models.ListingFilter{Distance: 5})
		if len(out) != 2 || out[0].ID != 1 || out[1].ID != 3 {
			t.Fatalf("expected garages 1 and 3, got %v", ids(out))
		}
	})

	t.Run("brand filter is case-insensitive", func(t *testing.T) {
		out := applyFilter(garages, models.ListingFilter{Brands: []string{"honda"}})
		if len(out) != 1 || out[0].ID != 1 {
			t.Fatalf("expected only garage 1, got %v", ids(out))
		}
	})
}

func readJSON(r *http.Request, dst interface{}) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

func ids(garages []models.Garage) []int {
	out := make([]int, len(garages))
	for i, g := range garages {
		out[i] = g.ID
	}
	return out
}

func newGarageService(t *testing.T, handler http.HandlerFunc) (*GarageService, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := api.NewClient(srv.Client(), srv.URL)
	return &GarageService{GarageRepo: &repositories.GarageRepository{Client: client}}, srv
}

func TestSearchEmptyStates(t *testing.T) {
	t.Run("coming soon when upstream has nothing", func(t *testing.T) {
		svc, _ := newGarageService(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status":"success","data":[]}`))
		})
		res, err := svc.Search(context.Background(), models.SearchRequest{Location: "Indore"}, "")
		require.NoError(t, err)
		assert.Equal(t, models.SearchKindComingSoon, res.Kind)
		assert.Empty(t, res.Garages)
	})

	t.Run("no matches when filters remove everything", func(t *testing.T) {
		svc, _ := newGarageService(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status":"success","data":[{"id":1,"name":"Highway Motors","rating":3.1}]}`))
		})
		req := models.SearchRequest{
			Location: "Pune",
			Filter:   models.ListingFilter{Ratings: []float64{4.5}},
		}
		res, err := svc.Search(context.Background(), req, "")
		require.NoError(t, err)
		assert.Equal(t, models.SearchKindNoMatches, res.Kind)
		assert.Empty(t, res.Garages)
	})

	t.Run("generation increases per search", func(t *testing.T) {
		svc, _ := newGarageService(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status":"success","data":[]}`))
		})
		first, err := svc.Search(context.Background(), models.SearchRequest{Location: "Pune"}, "")
		require.NoError(t, err)
		second, err := svc.Search(context.Background(), models.SearchRequest{Location: "Pune"}, "")
		require.NoError(t, err)
		assert.Greater(t, second.Generation, first.Generation)
	})
}

func TestSearchBrandForcesAuthorized(t *testing.T) {
	var got struct {
		Filter struct {
			Brands []string `json:"brands"`
		} `json:"filter"`
	}
	svc, _ := newGarageService(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, readJSON(r, &got))
		w.Write([]byte(`{"status":"success","data":[]}`))
	})

	req := models.SearchRequest{
		Location:        "Pune",
		GarageType:      models.GarageTypeAuthorized,
		AuthorizedBrand: "Honda",
		Filter:          models.ListingFilter{Brands: []string{"Hero"}},
	}
	_, err := svc.Search(context.Background(), req, "")
	require.NoError(t, err)

	// explicit brand picks win over the vertical toggle
	assert.Equal(t, []string{"Hero"}, got.Filter.Brands)
}

func TestGetGarageServicesSplit(t *testing.T) {
	svc, _ := newGarageService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"success","data":[
			{"id":1,"name":"General Service","price":"499","service_type":"Service"},
			{"id":2,"name":"Interior Cleaning","price":"151.50","service_type":"Add-On"}
		]}`))
	})
	res, err := svc.GetGarageServices(context.Background(), 42, 1, "")
	require.NoError(t, err)
	require.Len(t, res.Services, 1)
	require.Len(t, res.AddOns, 1)
	assert.Equal(t, "General Service", res.Services[0].Name)
	assert.Equal(t, "Interior Cleaning", res.AddOns[0].Name)
}

func TestVerticalBrands(t *testing.T) {
	if brands := VerticalBrands("two-wheeler"); len(brands) == 0 {
		t.Fatal("expected brand toggle for two-wheeler")
	}
	if brands := VerticalBrands("rsa"); brands != nil {
		t.Fatalf("rsa has no brand toggle, got %v", brands)
	}
	if brands := VerticalBrands("unknown"); brands != nil {
		t.Fatalf("unknown vertical has no brands, got %v", brands)
	}
}

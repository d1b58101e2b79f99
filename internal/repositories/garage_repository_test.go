package repositories

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"garageFront/internal/api"
	"garageFront/internal/models"
)

func newRepoServer(t *testing.T, handler http.HandlerFunc) *api.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return api.NewClient(srv.Client(), srv.URL)
}

func TestListGaragesFilterBody(t *testing.T) {
	var raw []byte
	client := newRepoServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/listgarage/", r.URL.Path)
		raw, _ = io.ReadAll(r.Body)
		w.Write([]byte(`{"status":"success","data":[]}`))
	})
	repo := GarageRepository{Client: client}

	req := models.SearchRequest{
		Location:  "Pune",
		Latitude:  18.5204,
		Longitude: 73.8567,
		Filter: models.ListingFilter{
			Sort:     models.SortDistance,
			Ratings:  []float64{4.0},
			Distance: 5,
			Brands:   []string{"Honda"},
		},
	}
	_, err := repo.ListGarages(context.Background(), req, "")
	require.NoError(t, err)

	// the distance field is misspelled upstream and must stay that way
	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &body))
	var filter map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(body["filter"], &filter))
	assert.Contains(t, filter, "distence")
	assert.NotContains(t, filter, "distance")
	assert.JSONEq(t, `[5]`, string(filter["distence"]))
}

func TestGetGarageByIDNotFound(t *testing.T) {
	t.Run("upstream 404", func(t *testing.T) {
		client := newRepoServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"status":"error","data":null,"message":"not found"}`))
		})
		repo := GarageRepository{Client: client}
		_, err := repo.GetGarageByID(context.Background(), 999, "")
		assert.ErrorIs(t, err, models.ErrGarageNotFound)
	})

	t.Run("empty payload", func(t *testing.T) {
		client := newRepoServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status":"success","data":null}`))
		})
		repo := GarageRepository{Client: client}
		_, err := repo.GetGarageByID(context.Background(), 999, "")
		assert.ErrorIs(t, err, models.ErrGarageNotFound)
	})
}

func TestCreateBookingDuplicate(t *testing.T) {
	client := newRepoServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"status":"error","data":null,"message":"A booking already exists with these details."}`))
	})
	repo := SubscriberRepository{Client: client}

	_, err := repo.CreateBooking(context.Background(), models.BookingRequest{}, "tok")
	assert.ErrorIs(t, err, models.ErrDuplicateBooking)
}

func TestCreateBookingReturnsID(t *testing.T) {
	client := newRepoServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/subscriber/booking/", r.URL.Path)
		w.Write([]byte(`{"status":"success","data":{"booking_id":1001}}`))
	})
	repo := SubscriberRepository{Client: client}

	id, err := repo.CreateBooking(context.Background(), models.BookingRequest{}, "tok")
	require.NoError(t, err)
	assert.Equal(t, 1001, id)
}

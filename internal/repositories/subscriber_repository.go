package repositories

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"garageFront/internal/api"
	"garageFront/internal/models"
)

// SubscriberRepository binds the upstream subscriber-owned resources:
// vehicles, addresses and bookings.
type SubscriberRepository struct {
	Client *api.Client
}

// GetVehicles lists a subscriber's vehicles via
// GET /subscriber/vehicles/?subscriber_id={id}.
func (r *SubscriberRepository) GetVehicles(ctx context.Context, subscriberID int, token string) ([]models.Vehicle, error) {
	params := url.Values{}
	params.Set("subscriber_id", strconv.Itoa(subscriberID))
	env, err := r.Client.Get(ctx, "/subscriber/vehicles/", params, token)
	if err != nil {
		return nil, err
	}
	var vehicles []models.Vehicle
	if err := env.DecodeData(&vehicles); err != nil {
		return nil, err
	}
	return vehicles, nil
}

// CreateVehicle creates a vehicle via POST /subscriber/vehicle/.
func (r *SubscriberRepository) CreateVehicle(ctx context.Context, vehicle models.Vehicle, token string) (models.Vehicle, error) {
	env, err := r.Client.Post(ctx, "/subscriber/vehicle/", vehicle, token)
	if err != nil {
		return models.Vehicle{}, err
	}
	created := vehicle
	if err := env.DecodeData(&created); err != nil {
		return models.Vehicle{}, err
	}
	return created, nil
}

// DeleteVehicle removes a vehicle. Upstream models delete as a POST with the
// id in the query and the owner in the body.
func (r *SubscriberRepository) DeleteVehicle(ctx context.Context, vehicleID, subscriberID int, token string) error {
	body := struct {
		SubscriberID int `json:"subscriber_id"`
	}{SubscriberID: subscriberID}
	_, err := r.Client.Post(ctx, "/subscriber/vehicle/?id="+strconv.Itoa(vehicleID), body, token)
	if err != nil {
		if ue, ok := err.(*api.UpstreamError); ok && ue.StatusCode == 404 {
			return models.ErrVehicleNotFound
		}
		return err
	}
	return nil
}

// GetAddresses lists a subscriber's addresses via
// GET /subscriber/addresses/?subscriber_id={id}.
func (r *SubscriberRepository) GetAddresses(ctx context.Context, subscriberID int, token string) ([]models.Address, error) {
	params := url.Values{}
	params.Set("subscriber_id", strconv.Itoa(subscriberID))
	env, err := r.Client.Get(ctx, "/subscriber/addresses/", params, token)
	if err != nil {
		return nil, err
	}
	var addresses []models.Address
	if err := env.DecodeData(&addresses); err != nil {
		return nil, err
	}
	return addresses, nil
}

// CreateAddress creates an address via POST /subscriber/address/.
func (r *SubscriberRepository) CreateAddress(ctx context.Context, req models.CreateAddressRequest, token string) (models.Address, error) {
	env, err := r.Client.Post(ctx, "/subscriber/address/", req, token)
	if err != nil {
		return models.Address{}, err
	}
	var created models.Address
	if err := env.DecodeData(&created); err != nil {
		return models.Address{}, err
	}
	return created, nil
}

type bookingCreated struct {
	ID        int `json:"id"`
	BookingID int `json:"booking_id"`
}

// CreateBooking submits a booking via POST /subscriber/booking/. The upstream
// duplicate-booking message is mapped onto ErrDuplicateBooking.
func (r *SubscriberRepository) CreateBooking(ctx context.Context, req models.BookingRequest, token string) (int, error) {
	env, err := r.Client.Post(ctx, "/subscriber/booking/", req, token)
	if err != nil {
		if ue, ok := err.(*api.UpstreamError); ok && strings.Contains(ue.Message, models.DuplicateBookingMessage) {
			return 0, models.ErrDuplicateBooking
		}
		return 0, err
	}
	var created bookingCreated
	if err := env.DecodeData(&created); err != nil {
		return 0, err
	}
	if created.ID != 0 {
		return created.ID, nil
	}
	return created.BookingID, nil
}

package services

import (
	"context"
	"regexp"
	"strings"

	"garageFront/internal/models"
	"garageFront/internal/repositories"
)

var pincodeRe = regexp.MustCompile(`^[0-9]{6}$`)

// AddressService owns the subscriber's service addresses.
type AddressService struct {
	SubscriberRepo *repositories.SubscriberRepository
}

// GetAddresses lists a subscriber's addresses.
func (s *AddressService) GetAddresses(ctx context.Context, subscriberID int, token string) ([]models.Address, error) {
	return s.SubscriberRepo.GetAddresses(ctx, subscriberID, token)
}

// CreateAddress validates and creates an address. The pincode must be
// exactly six numeric digits; validation failures never reach upstream.
func (s *AddressService) CreateAddress(ctx context.Context, req models.CreateAddressRequest, token string) (models.Address, error) {
	req.Pincode = strings.TrimSpace(req.Pincode)
	if !pincodeRe.MatchString(req.Pincode) {
		return models.Address{}, models.ErrInvalidPincode
	}
	if strings.TrimSpace(req.Address) == "" || req.CityID == 0 {
		return models.Address{}, models.ErrMissingFields
	}
	return s.SubscriberRepo.CreateAddress(ctx, req, token)
}

// ValidPincode reports whether a pincode passes the format check.
func ValidPincode(pincode string) bool {
	return pincodeRe.MatchString(strings.TrimSpace(pincode))
}

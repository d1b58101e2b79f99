package models

import (
	"errors"
)

var ErrGarageNotFound = errors.New("garage not found")
var ErrVehicleNotFound = errors.New("vehicle not found")
var ErrWizardNotFound = errors.New("booking draft not found")
var (
	ErrNoRecord         = errors.New("models: no matching record found")
	ErrDuplicateBooking = errors.New("models: a booking already exists with these details")
	ErrInvalidPromoCode = errors.New("models: invalid promo code")
	ErrInvalidPincode   = errors.New("models: pincode must be exactly 6 digits")
	ErrMissingFields    = errors.New("models: required fields missing")
	ErrStepIncomplete   = errors.New("models: required selection missing for this step")
	ErrWizardFinished   = errors.New("models: booking already confirmed")
	ErrCityNotSupported = errors.New("models: city not supported yet")
)

// DuplicateBookingMessage is the exact upstream error text matched to map a
// failed submit onto ErrDuplicateBooking.
const DuplicateBookingMessage = "A booking already exists with these details."

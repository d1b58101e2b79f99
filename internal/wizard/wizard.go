package wizard

import (
	"time"

	"github.com/google/uuid"

	"garageFront/internal/models"
	"garageFront/internal/pricing"
)

// Wizard steps, in order. The flow is strictly linear.
const (
	StepSelectVehicle = 0
	StepSelectService = 1
	StepSelectSlot    = 2
	StepSummary       = 3
)

// Step-scoped messages shown when Next is refused.
var stepErrorMessages = map[int]string{
	StepSelectVehicle: "Please select a vehicle to continue",
	StepSelectService: "Please select at least one service",
	StepSelectSlot:    "Please select a time slot and an address",
}

// Draft is one in-progress booking. It lives in the draft store until the
// booking is confirmed or the draft expires.
type Draft struct {
	ID           string `json:"id"`
	SubscriberID int    `json:"subscriber_id"`
	BusinessID   int    `json:"business_id"`
	GarageID     int    `json:"garage_id"`
	GarageName   string `json:"garage_name"`

	ActiveStep int            `json:"active_step"`
	StepErrors map[int]string `json:"step_errors,omitempty"`

	VehicleID        int                    `json:"vehicle_id,omitempty"`
	Services         []models.GarageService `json:"services,omitempty"`
	AddOns           []models.GarageService `json:"addons,omitempty"`
	ServiceType      string                 `json:"service_type,omitempty"`
	Date             string                 `json:"date,omitempty"`
	Slot             string                 `json:"slot,omitempty"`
	AddressID        int                    `json:"address_id,omitempty"`
	Suggestion       string                 `json:"suggestion,omitempty"`
	PromoCode        string                 `json:"promo_code,omitempty"`
	DiscountRate     float64                `json:"discount_rate,omitempty"`
	RequiredEstimate bool                   `json:"required_estimate,omitempty"`

	Confirmed    bool                        `json:"confirmed"`
	Confirmation *models.BookingConfirmation `json:"confirmation,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// New starts a draft at the vehicle step.
func New(subscriberID, businessID, garageID int, garageName string) *Draft {
	return &Draft{
		ID:           uuid.NewString(),
		SubscriberID: subscriberID,
		BusinessID:   businessID,
		GarageID:     garageID,
		GarageName:   garageName,
		ActiveStep:   StepSelectVehicle,
		StepErrors:   map[int]string{},
		CreatedAt:    time.Now(),
	}
}

// stepComplete reports whether the required selection for the step is present.
func (d *Draft) stepComplete(step int) bool {
	switch step {
	case StepSelectVehicle:
		return d.VehicleID != 0
	case StepSelectService:
		return len(d.Services)+len(d.AddOns) > 0
	case StepSelectSlot:
		return d.Date != "" && d.Slot != "" && d.AddressID != 0
	default:
		return true
	}
}

// Next advances one step if the current step's selection is present;
// otherwise it records a step-scoped error and stays put.
func (d *Draft) Next() error {
	if d.Confirmed {
		return models.ErrWizardFinished
	}
	if d.ActiveStep >= StepSummary {
		return nil
	}
	if !d.stepComplete(d.ActiveStep) {
		if d.StepErrors == nil {
			d.StepErrors = map[int]string{}
		}
		d.StepErrors[d.ActiveStep] = stepErrorMessages[d.ActiveStep]
		return models.ErrStepIncomplete
	}
	delete(d.StepErrors, d.ActiveStep)
	d.ActiveStep++
	return nil
}

// Previous steps back one step and clears all errors. At step zero it is a
// no-op.
func (d *Draft) Previous() {
	if d.Confirmed || d.ActiveStep == 0 {
		return
	}
	d.ActiveStep--
	d.StepErrors = map[int]string{}
}

// Jump moves to a strictly earlier step (stepper click). Jumping ahead is
// refused; the caller learns whether anything moved.
func (d *Draft) Jump(target int) bool {
	if d.Confirmed || target < 0 || target >= d.ActiveStep {
		return false
	}
	d.ActiveStep = target
	d.StepErrors = map[int]string{}
	return true
}

// ReadyToSubmit reports whether the draft sits on the summary step with every
// prior selection present.
func (d *Draft) ReadyToSubmit() bool {
	if d.Confirmed || d.ActiveStep != StepSummary {
		return false
	}
	for step := StepSelectVehicle; step < StepSummary; step++ {
		if !d.stepComplete(step) {
			return false
		}
	}
	return true
}

// Quote computes the current booking amount from the selections and any
// validated promo.
func (d *Draft) Quote() pricing.Quote {
	selected := make([]models.GarageService, 0, len(d.Services)+len(d.AddOns))
	selected = append(selected, d.Services...)
	selected = append(selected, d.AddOns...)
	return pricing.Compute(selected, d.DiscountRate)
}

// Confirm seals the draft with the upstream booking id. No transitions are
// possible afterwards.
func (d *Draft) Confirm(bookingID int) {
	d.Confirmed = true
	d.StepErrors = map[int]string{}
	d.Confirmation = &models.BookingConfirmation{
		BookingID: bookingID,
		Date:      d.Date,
		Slot:      d.Slot,
		Total:     d.Quote().Total,
	}
}

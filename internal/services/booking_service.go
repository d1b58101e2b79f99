package services

import (
	"context"
	"strings"

	"garageFront/internal/models"
	"garageFront/internal/notify"
	"garageFront/internal/repositories"
	"garageFront/internal/slots"
	"garageFront/internal/timeutil"
	"garageFront/internal/wizard"
)

// BookingService drives the booking wizard: draft lifecycle, step
// transitions, selection validation and the final upstream submit.
type BookingService struct {
	GarageRepo     *repositories.GarageRepository
	SubscriberRepo *repositories.SubscriberRepository
	Drafts         *wizard.Store
	Promos         map[string]float64
	Notifier       *notify.FCMNotifier
}

// WizardSelection carries step selections. Pointer fields distinguish "left
// unchanged" from "cleared".
type WizardSelection struct {
	VehicleID        *int                   `json:"vehicle_id,omitempty"`
	Services         []models.GarageService `json:"services,omitempty"`
	AddOns           []models.GarageService `json:"addons,omitempty"`
	ServiceType      *string                `json:"service_type,omitempty"`
	Date             *string                `json:"date,omitempty"`
	Slot             *string                `json:"slot,omitempty"`
	AddressID        *int                   `json:"address_id,omitempty"`
	Suggestion       *string                `json:"suggestion,omitempty"`
	PromoCode        *string                `json:"promo_code,omitempty"`
	RequiredEstimate *bool                  `json:"required_estimate,omitempty"`
}

// StartDraft verifies the garage exists upstream and opens a draft at the
// vehicle step. A garage that cannot be fetched refuses the draft, which the
// handler turns into the cancel/redirect path.
func (s *BookingService) StartDraft(ctx context.Context, subscriberID, businessID, garageID int, token string) (*wizard.Draft, error) {
	garage, err := s.GarageRepo.GetGarageByID(ctx, garageID, token)
	if err != nil {
		return nil, err
	}
	draft := wizard.New(subscriberID, businessID, garageID, garage.Name)
	if err := s.Drafts.Save(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// GetDraft loads a subscriber's draft.
func (s *BookingService) GetDraft(ctx context.Context, id string, subscriberID int) (*wizard.Draft, error) {
	return s.Drafts.Get(ctx, id, subscriberID)
}

// Select applies selections to a draft. Slot picks are checked against the
// current rolling window; promo codes are validated against the configured
// table, never invented client-side.
func (s *BookingService) Select(ctx context.Context, id string, subscriberID int, sel WizardSelection) (*wizard.Draft, error) {
	draft, err := s.Drafts.Get(ctx, id, subscriberID)
	if err != nil {
		return nil, err
	}
	if draft.Confirmed {
		return nil, models.ErrWizardFinished
	}

	if sel.VehicleID != nil {
		draft.VehicleID = *sel.VehicleID
	}
	if sel.Services != nil {
		draft.Services = sel.Services
	}
	if sel.AddOns != nil {
		draft.AddOns = sel.AddOns
	}
	if sel.ServiceType != nil {
		draft.ServiceType = *sel.ServiceType
	}
	if sel.Date != nil && sel.Slot != nil {
		window := slots.Generate(timeutil.Now())
		if !window.Contains(*sel.Date, *sel.Slot) {
			return nil, models.ErrStepIncomplete
		}
		draft.Date = *sel.Date
		draft.Slot = *sel.Slot
	}
	if sel.AddressID != nil {
		draft.AddressID = *sel.AddressID
	}
	if sel.Suggestion != nil {
		draft.Suggestion = *sel.Suggestion
	}
	if sel.RequiredEstimate != nil {
		draft.RequiredEstimate = *sel.RequiredEstimate
	}
	if sel.PromoCode != nil {
		code := strings.TrimSpace(*sel.PromoCode)
		if code == "" {
			draft.PromoCode = ""
			draft.DiscountRate = 0
		} else {
			rate, ok := s.Promos[strings.ToUpper(code)]
			if !ok {
				return nil, models.ErrInvalidPromoCode
			}
			draft.PromoCode = code
			draft.DiscountRate = rate
		}
	}

	if err := s.Drafts.Save(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// Next advances the wizard one step when the current step is complete. The
// draft is saved either way so the step-scoped error survives a reload.
func (s *BookingService) Next(ctx context.Context, id string, subscriberID int) (*wizard.Draft, error) {
	draft, err := s.Drafts.Get(ctx, id, subscriberID)
	if err != nil {
		return nil, err
	}
	stepErr := draft.Next()
	if saveErr := s.Drafts.Save(ctx, draft); saveErr != nil {
		return nil, saveErr
	}
	if stepErr != nil && stepErr != models.ErrStepIncomplete {
		return nil, stepErr
	}
	return draft, nil
}

// Previous steps back and clears errors.
func (s *BookingService) Previous(ctx context.Context, id string, subscriberID int) (*wizard.Draft, error) {
	draft, err := s.Drafts.Get(ctx, id, subscriberID)
	if err != nil {
		return nil, err
	}
	draft.Previous()
	if err := s.Drafts.Save(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// Jump moves to a strictly earlier step; jumping ahead is a no-op.
func (s *BookingService) Jump(ctx context.Context, id string, subscriberID, target int) (*wizard.Draft, error) {
	draft, err := s.Drafts.Get(ctx, id, subscriberID)
	if err != nil {
		return nil, err
	}
	if draft.Jump(target) {
		if err := s.Drafts.Save(ctx, draft); err != nil {
			return nil, err
		}
	}
	return draft, nil
}

// Submit sends the booking upstream from the summary step and seals the
// draft. A duplicate booking surfaces as ErrDuplicateBooking for the handler
// to present.
func (s *BookingService) Submit(ctx context.Context, id string, subscriberID int, deviceToken, token string) (*wizard.Draft, error) {
	draft, err := s.Drafts.Get(ctx, id, subscriberID)
	if err != nil {
		return nil, err
	}
	if draft.Confirmed {
		return nil, models.ErrWizardFinished
	}
	if !draft.ReadyToSubmit() {
		return nil, models.ErrStepIncomplete
	}

	quote := draft.Quote()
	req := models.BookingRequest{
		BusinessID:          draft.BusinessID,
		SubscriberID:        draft.SubscriberID,
		SubscriberVehicleID: draft.VehicleID,
		SubscriberAddressID: draft.AddressID,
		GarageID:            draft.GarageID,
		BookingDate:         draft.Date,
		BookingSlot:         draft.Slot,
		Suggestion:          draft.Suggestion,
		BookingAmount:       quote.Total,
		PromoCode:           draft.PromoCode,
		RequiredEstimate:    draft.RequiredEstimate,
		ServiceType:         draft.ServiceType,
	}
	bookingID, err := s.SubscriberRepo.CreateBooking(ctx, req, token)
	if err != nil {
		return nil, err
	}

	draft.Confirm(bookingID)
	if err := s.Drafts.Save(ctx, draft); err != nil {
		return nil, err
	}
	s.Notifier.BookingConfirmed(ctx, deviceToken, draft.GarageName, draft.Date, draft.Slot)
	return draft, nil
}

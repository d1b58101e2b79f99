package wizard

import (
	"errors"
	"testing"

	"garageFront/internal/models"
)

func TestNextGatedPerStep(t *testing.T) {
	d := New(7, 1, 42, "Highway Motors")

	if err := d.Next(); !errors.Is(err, models.ErrStepIncomplete) {
		t.Fatalf("expected step incomplete, got %v", err)
	}
	if d.ActiveStep != StepSelectVehicle {
		t.Fatalf("refused Next must not advance, step=%d", d.ActiveStep)
	}
	if d.StepErrors[StepSelectVehicle] != "Please select a vehicle to continue" {
		t.Fatalf("unexpected step error: %q", d.StepErrors[StepSelectVehicle])
	}

	d.VehicleID = 3
	if err := d.Next(); err != nil {
		t.Fatalf("vehicle selected, Next failed: %v", err)
	}
	if d.ActiveStep != StepSelectService {
		t.Fatalf("expected service step, got %d", d.ActiveStep)
	}
	if _, ok := d.StepErrors[StepSelectVehicle]; ok {
		t.Fatal("successful Next must clear the step error")
	}

	if err := d.Next(); !errors.Is(err, models.ErrStepIncomplete) {
		t.Fatalf("expected step incomplete, got %v", err)
	}
	if d.StepErrors[StepSelectService] != "Please select at least one service" {
		t.Fatalf("unexpected step error: %q", d.StepErrors[StepSelectService])
	}

	d.AddOns = []models.GarageService{{ID: 9, Name: "Interior Cleaning", Price: "151.50"}}
	if err := d.Next(); err != nil {
		t.Fatalf("add-on alone should satisfy the service step: %v", err)
	}

	// slot step needs date, slot and address together
	d.Date = "2026-03-02"
	d.Slot = "12:00"
	if err := d.Next(); !errors.Is(err, models.ErrStepIncomplete) {
		t.Fatalf("missing address, expected step incomplete, got %v", err)
	}
	d.AddressID = 5
	if err := d.Next(); err != nil {
		t.Fatalf("slot step complete, Next failed: %v", err)
	}
	if d.ActiveStep != StepSummary {
		t.Fatalf("expected summary step, got %d", d.ActiveStep)
	}

	// Next at the summary step is a no-op
	if err := d.Next(); err != nil {
		t.Fatalf("Next at summary must not fail: %v", err)
	}
	if d.ActiveStep != StepSummary {
		t.Fatalf("Next at summary must stay put, step=%d", d.ActiveStep)
	}
}

func TestPreviousClearsErrors(t *testing.T) {
	d := New(7, 1, 42, "Highway Motors")
	d.VehicleID = 3
	_ = d.Next()
	_ = d.Next() // refused, records error

	d.Previous()
	if d.ActiveStep != StepSelectVehicle {
		t.Fatalf("expected vehicle step, got %d", d.ActiveStep)
	}
	if len(d.StepErrors) != 0 {
		t.Fatalf("Previous must clear errors, got %v", d.StepErrors)
	}

	d.Previous()
	if d.ActiveStep != StepSelectVehicle {
		t.Fatal("Previous at step zero must be a no-op")
	}
}

func TestJumpBackwardOnly(t *testing.T) {
	d := New(7, 1, 42, "Highway Motors")
	d.VehicleID = 3
	d.Services = []models.GarageService{{ID: 1, Price: "499"}}
	_ = d.Next()
	_ = d.Next()

	if d.Jump(StepSummary) {
		t.Fatal("jumping ahead must be refused")
	}
	if d.Jump(StepSelectSlot) {
		t.Fatal("jumping to the current step must be refused")
	}
	if !d.Jump(StepSelectVehicle) {
		t.Fatal("jumping back must be allowed")
	}
	if d.ActiveStep != StepSelectVehicle {
		t.Fatalf("expected vehicle step, got %d", d.ActiveStep)
	}
}

func TestReadyToSubmit(t *testing.T) {
	d := New(7, 1, 42, "Highway Motors")
	if d.ReadyToSubmit() {
		t.Fatal("fresh draft is not submittable")
	}

	d.VehicleID = 3
	d.Services = []models.GarageService{{ID: 1, Price: "499"}}
	d.Date = "2026-03-02"
	d.Slot = "12:00"
	d.AddressID = 5
	for d.ActiveStep < StepSummary {
		if err := d.Next(); err != nil {
			t.Fatalf("Next failed at step %d: %v", d.ActiveStep, err)
		}
	}
	if !d.ReadyToSubmit() {
		t.Fatal("expected submittable draft")
	}
}

func TestConfirmSealsDraft(t *testing.T) {
	d := New(7, 1, 42, "Highway Motors")
	d.VehicleID = 3
	d.Services = []models.GarageService{{ID: 1, Price: "500"}}
	d.Date = "2026-03-02"
	d.Slot = "12:00"
	d.AddressID = 5
	d.DiscountRate = 0.10
	for d.ActiveStep < StepSummary {
		_ = d.Next()
	}

	d.Confirm(1001)
	if !d.Confirmed || d.Confirmation == nil {
		t.Fatal("expected confirmed draft")
	}
	if d.Confirmation.BookingID != 1001 {
		t.Fatalf("expected booking id 1001, got %d", d.Confirmation.BookingID)
	}
	if d.Confirmation.Total != 450 {
		t.Fatalf("expected discounted total 450, got %v", d.Confirmation.Total)
	}

	if err := d.Next(); !errors.Is(err, models.ErrWizardFinished) {
		t.Fatalf("expected wizard finished, got %v", err)
	}
	d.Previous()
	if d.ActiveStep != StepSummary {
		t.Fatal("Previous after confirm must be a no-op")
	}
	if d.Jump(StepSelectVehicle) {
		t.Fatal("Jump after confirm must be refused")
	}
}

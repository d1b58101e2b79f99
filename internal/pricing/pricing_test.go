package pricing

import (
	"testing"

	"garageFront/internal/models"
)

func TestParsePrice(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want float64
	}{
		{"plain", "499", 499},
		{"decimal", "650.50", 650.50},
		{"padded", " 120 ", 120},
		{"empty", "", 0},
		{"malformed", "N/A", 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ParsePrice(tc.in); got != tc.want {
				t.Fatalf("expected %v got %v", tc.want, got)
			}
		})
	}
}

func TestCompute(t *testing.T) {
	selected := []models.GarageService{
		{Name: "General Service", Price: "499"},
		{Name: "Interior Cleaning", Price: "151.50"},
	}

	q := Compute(selected, 0.10)
	if q.Subtotal != 650.50 {
		t.Fatalf("expected subtotal 650.50, got %v", q.Subtotal)
	}
	if q.Discount != 65.05 {
		t.Fatalf("expected discount 65.05, got %v", q.Discount)
	}
	if q.Total != 585.45 {
		t.Fatalf("expected total 585.45, got %v", q.Total)
	}
}

func TestComputeNoPromo(t *testing.T) {
	selected := []models.GarageService{{Price: "300"}}
	q := Compute(selected, 0)
	if q.Discount != 0 || q.Total != 300 {
		t.Fatalf("expected no discount, got %+v", q)
	}
}

func TestComputeMalformedPricesCountZero(t *testing.T) {
	selected := []models.GarageService{
		{Price: "250"},
		{Price: ""},
		{Price: "free"},
	}
	if got := Subtotal(selected); got != 250 {
		t.Fatalf("expected 250, got %v", got)
	}
}

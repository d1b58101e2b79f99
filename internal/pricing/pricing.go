package pricing

import (
	"math"
	"strconv"
	"strings"

	"garageFront/internal/models"
)

// Quote is the computed booking amount breakdown.
type Quote struct {
	Subtotal float64 `json:"subtotal"`
	Discount float64 `json:"discount"`
	Total    float64 `json:"total"`
}

// ParsePrice converts an upstream price string to a float. Missing or
// malformed prices count as zero.
func ParsePrice(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Subtotal sums the prices of the selected services and add-ons.
func Subtotal(selected []models.GarageService) float64 {
	var sum float64
	for _, s := range selected {
		sum += ParsePrice(s.Price)
	}
	return round2(sum)
}

// Compute produces the final quote. discountRate is the validated promo rate
// (0 when no promo applies); the discount never exceeds the subtotal.
func Compute(selected []models.GarageService, discountRate float64) Quote {
	subtotal := Subtotal(selected)
	discount := round2(subtotal * discountRate)
	if discount > subtotal {
		discount = subtotal
	}
	return Quote{
		Subtotal: subtotal,
		Discount: discount,
		Total:    round2(subtotal - discount),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

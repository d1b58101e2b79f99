package geo

import (
	"math"
	"testing"
)

func TestHaversine(t *testing.T) {
	// Pune to Mumbai is roughly 120 km as the crow flies
	d := Haversine(18.5204, 73.8567, 19.0760, 72.8777)
	if d < 100 || d > 140 {
		t.Fatalf("expected ~120 km, got %v", d)
	}
	if z := Haversine(18.5204, 73.8567, 18.5204, 73.8567); z != 0 {
		t.Fatalf("expected zero distance for identical points, got %v", z)
	}
}

func TestNearestCity(t *testing.T) {
	cases := []struct {
		name string
		lat  float64
		lon  float64
		want string
	}{
		{"pune center", 18.5204, 73.8567, "Pune"},
		{"near mumbai", 19.10, 72.90, "Mumbai"},
		{"near delhi", 28.60, 77.20, "Delhi"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			city, _ := NearestCity(tc.lat, tc.lon)
			if city != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, city)
			}
		})
	}

	t.Run("invalid coordinates fall back", func(t *testing.T) {
		city, dist := NearestCity(200, 500)
		if city != FallbackCity || dist != 0 {
			t.Fatalf("expected fallback %s, got %s (%v)", FallbackCity, city, dist)
		}
	})

	t.Run("far point still maps to the nearest entry", func(t *testing.T) {
		city, dist := NearestCity(8.5, 76.9) // Thiruvananthapuram, no table entry
		if city == "" || math.IsInf(dist, 1) {
			t.Fatalf("expected a mapped city, got %s (%v)", city, dist)
		}
	})
}

func TestKnownCity(t *testing.T) {
	if !KnownCity("pune") {
		t.Fatal("expected case-insensitive match")
	}
	if KnownCity("Atlantis") {
		t.Fatal("unexpected match for unknown city")
	}
}

package models

// Location is a resolved point with the nearest supported city attached.
// Fallback marks coordinates substituted after a failed device lookup.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	City      string  `json:"city"`
	Fallback  bool    `json:"fallback,omitempty"`
}

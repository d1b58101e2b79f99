package models

// Sort keys applied to listing results after fetch.
const (
	SortDistance    = "distance"
	SortRatingHigh  = "rating-high"
	SortRatingLow   = "rating-low"
	SortPriceLow    = "price-low"
	SortPriceHigh   = "price-high"
	SortServiceTime = "service-time"
)

// Garage type toggle. Selecting any brand in the generic filter panel forces
// GarageTypeAuthorized and clears the vertical-specific brand selection.
const (
	GarageTypeAll        = "all"
	GarageTypeAuthorized = "authorized"
)

// ListingFilter is the draft filter a listing page applies on Apply.
// Defaults: brands/services empty, distance 5 km, sort by distance.
type ListingFilter struct {
	Sort     string    `json:"sort"`
	Ratings  []float64 `json:"ratings"`
	Distance float64   `json:"distance"`
	Services []string  `json:"services"`
	Brands   []string  `json:"brands"`
}

// DefaultListingFilter mirrors the Clear All state of the filter panel.
func DefaultListingFilter() ListingFilter {
	return ListingFilter{
		Sort:     SortDistance,
		Distance: 5,
	}
}

// SearchRequest is a listing query for one vertical. Vertical is a service
// category tag (two-wheeler, six-wheeler, ev, rsa or empty for generic).
type SearchRequest struct {
	Location        string        `json:"location"`
	Latitude        float64       `json:"latitude"`
	Longitude       float64       `json:"longitude"`
	Vertical        string        `json:"vertical,omitempty"`
	GarageType      string        `json:"garage_type,omitempty"`
	AuthorizedBrand string        `json:"authorized_brand,omitempty"`
	Filter          ListingFilter `json:"filter"`
}

// Result kinds distinguishing "city not served yet" from "filters removed
// everything".
const (
	SearchKindOK         = "ok"
	SearchKindComingSoon = "coming_soon"
	SearchKindNoMatches  = "no_matches"
)

// SearchResult carries the post-processed listing. Generation is a
// monotonically increasing counter; consumers drop results older than the
// latest one they applied.
type SearchResult struct {
	Kind       string   `json:"kind"`
	Garages    []Garage `json:"garages"`
	Generation uint64   `json:"generation"`
}

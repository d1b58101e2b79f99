package models

// Garage is a service provider as returned by the upstream search and detail
// endpoints. The client never mutates garages; they are read-only upstream data.
type Garage struct {
	ID             int             `json:"id"`
	Name           string          `json:"name"`
	Image          string          `json:"image"`
	Rating         *float64        `json:"rating,omitempty"`
	Distance       *float64        `json:"distance,omitempty"`
	Price          *float64        `json:"price,omitempty"`
	ServiceTime    *float64        `json:"service_time,omitempty"`
	Address        string          `json:"address"`
	Phone          string          `json:"phone"`
	OperatingHours []OperatingHour `json:"operating_hours"`
	Services       []GarageService `json:"services"`
	Banners        []string        `json:"banners"`
	Verified       bool            `json:"verified"`
	Brands         []string        `json:"brands"`
	Reviews        []GarageReview  `json:"reviews"`
}

// OperatingHour holds one weekday entry, time as "H:MM AM/PM - H:MM AM/PM".
type OperatingHour struct {
	Day  string `json:"day"`
	Time string `json:"time"`
}

// GarageService is one offered service or add-on. ServiceType discriminates
// "Service" from "Add-On"; Price arrives as a string from upstream.
type GarageService struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Price       string `json:"price"`
	ServiceType string `json:"service_type"`
	Category    string `json:"category"`
}

type GarageReview struct {
	Name    string  `json:"name"`
	Rating  float64 `json:"rating"`
	Comment string  `json:"comment"`
	Date    string  `json:"date"`
}

// GarageDetail is the detail-page view of a garage with the computed
// open/closed flag attached.
type GarageDetail struct {
	Garage
	IsOpen bool `json:"is_open"`
}

package models

// BookingRequest is the upstream booking body. Field names are part of the
// upstream contract and must not be renamed.
type BookingRequest struct {
	BusinessID          int     `json:"businessid"`
	SubscriberID        int     `json:"subscriberid"`
	SubscriberVehicleID int     `json:"subscribervehicleid"`
	SubscriberAddressID int     `json:"subscriberaddressid"`
	GarageID            int     `json:"garageid"`
	BookingDate         string  `json:"bookingdate"`
	BookingSlot         string  `json:"bookingslot"`
	Suggestion          string  `json:"suggestion"`
	BookingAmount       float64 `json:"bookingamount"`
	PromoCode           string  `json:"promocode"`
	RequiredEstimate    bool    `json:"requiredestimate"`
	ServiceType         string  `json:"servicetype"`
}

// BookingConfirmation is the terminal wizard state shown after a successful
// submit.
type BookingConfirmation struct {
	BookingID int     `json:"booking_id"`
	Date      string  `json:"date"`
	Slot      string  `json:"slot"`
	Total     float64 `json:"total"`
}

// GarageServicesRequest is the upstream body for listing a garage's services
// for a given cc class.
type GarageServicesRequest struct {
	GarageID int `json:"garageid"`
	CCID     int `json:"ccid"`
}

// GarageServicesResponse splits the upstream service list on service_type.
type GarageServicesResponse struct {
	Services []GarageService `json:"services"`
	AddOns   []GarageService `json:"addons"`
}

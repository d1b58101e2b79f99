package models

// Vehicle is a subscriber-owned vehicle. A vehicle created without a real
// registration number carries a TEMP-<uuid> placeholder and the
// RegistrationPlaceholder flag until the subscriber enters the real one.
type Vehicle struct {
	ID                      int    `json:"id"`
	SubscriberID            int    `json:"subscriber_id"`
	Brand                   string `json:"brand"`
	Model                   string `json:"model"`
	CCID                    int    `json:"ccid"`
	CCClass                 string `json:"cc_class"`
	Year                    int    `json:"year"`
	RegistrationNumber      string `json:"registration_number"`
	RegistrationPlaceholder bool   `json:"registration_placeholder"`
	Image                   string `json:"image"`
}

type Brand struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

type VehicleModel struct {
	ID      int    `json:"id"`
	BrandID int    `json:"brand_id"`
	Name    string `json:"name"`
	CCID    int    `json:"ccid"`
	CCClass string `json:"cc_class"`
	Image   string `json:"image"`
}

// CreateVehicleRequest is the create flow input: brand then model, year and
// an optional registration number.
type CreateVehicleRequest struct {
	SubscriberID       int    `json:"subscriber_id"`
	Brand              string `json:"brand"`
	Model              string `json:"model"`
	CCID               int    `json:"ccid"`
	Year               int    `json:"year"`
	RegistrationNumber string `json:"registration_number"`
	Image              string `json:"image"`
}

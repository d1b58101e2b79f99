package models

// Address is a subscriber-owned service address. Pincode is exactly six
// numeric digits. Upstream has no delete endpoint for addresses in this
// version, so removal is a client-side concern only.
type Address struct {
	ID        int    `json:"id"`
	CityID    int    `json:"city_id"`
	CityName  string `json:"city_name"`
	Pincode   string `json:"pincode"`
	Address   string `json:"address"`
	Landmark  string `json:"landmark,omitempty"`
	IsDefault bool   `json:"is_default"`
}

type CreateAddressRequest struct {
	SubscriberID int    `json:"subscriber_id"`
	CityID       int    `json:"city_id"`
	CityName     string `json:"city_name"`
	Pincode      string `json:"pincode"`
	Address      string `json:"address"`
	Landmark     string `json:"landmark,omitempty"`
	IsDefault    bool   `json:"is_default"`
}

package models

type City struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ActiveCityData is the active-cities payload: supported cities, the service
// filters available in the requested city and its promo banners.
type ActiveCityData struct {
	Cities  []City     `json:"cities"`
	Filter  CityFilter `json:"filter"`
	Banners []string   `json:"banners"`
}

type CityFilter struct {
	Services []string `json:"services"`
}

package geo

import (
	"math"
	"strings"
)

// Known city centers. Coordinate resolution happens against this table; a
// point outside every radius still maps to the nearest entry.
var cityCoordinates = map[string][2]float64{
	"Pune":      {18.5204, 73.8567},
	"Mumbai":    {19.0760, 72.8777},
	"Nashik":    {19.9975, 73.7898},
	"Nagpur":    {21.1458, 79.0882},
	"Bengaluru": {12.9716, 77.5946},
	"Hyderabad": {17.3850, 78.4867},
	"Chennai":   {13.0827, 80.2707},
	"Delhi":     {28.7041, 77.1025},
	"Ahmedabad": {23.0225, 72.5714},
	"Kolkata":   {22.5726, 88.3639},
}

// Fallback coordinates used when device geolocation fails (approximately Pune).
const (
	FallbackCity      = "Pune"
	FallbackLatitude  = 18.5204
	FallbackLongitude = 73.8567
)

const earthRadiusKM = 6371.0

// Haversine returns the great-circle distance between two points in km.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	return earthRadiusKM * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// NearestCity maps coordinates to the closest known city and its distance in
// km. Invalid coordinates fall back to Pune.
func NearestCity(lat, lon float64) (string, float64) {
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return FallbackCity, 0
	}
	best := FallbackCity
	bestDist := math.Inf(1)
	for city, coords := range cityCoordinates {
		d := Haversine(lat, lon, coords[0], coords[1])
		if d < bestDist {
			bestDist = d
			best = city
		}
	}
	return best, bestDist
}

// KnownCity reports whether name matches a table entry, case-insensitively.
func KnownCity(name string) bool {
	for city := range cityCoordinates {
		if strings.EqualFold(city, name) {
			return true
		}
	}
	return false
}

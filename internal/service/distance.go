package service

import "math"

const earthRadiusKm = 6371.0

// Taxi tariff approximating Indian intercity cab economics:
// ₹100 base fare plus ₹12 per km, averaging 35 km/h.
const (
	taxiBaseFare    = 100.0
	taxiPerKmFare   = 12.0
	taxiAvgSpeedKmh = 35.0
)

// HaversineKm computes the great-circle distance in kilometers between two
// coordinates. Returns 0 for identical points.
func HaversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLng := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// EstimateTaxiCost returns the estimated taxi fare in INR for a distance.
func EstimateTaxiCost(distKm float64) int {
	return int(math.Round(taxiBaseFare + distKm*taxiPerKmFare))
}

// EstimateTaxiDuration returns the estimated taxi travel time in minutes.
func EstimateTaxiDuration(distKm float64) int {
	return int(math.Round(distKm / taxiAvgSpeedKmh * 60))
}

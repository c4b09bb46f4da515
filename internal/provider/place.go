package provider

import (
	"context"
	"strings"
)

// PlacePrediction is one autocomplete suggestion.
type PlacePrediction struct {
	PlaceID       string `json:"placeId"`
	Description   string `json:"description"`
	MainText      string `json:"mainText"`
	SecondaryText string `json:"secondaryText"`
}

// PlaceService serves place autocomplete from a static list of major Indian
// cities. Geocoding itself stays with the caller.
type PlaceService struct{}

// NewPlaceService creates a new PlaceService.
func NewPlaceService() *PlaceService {
	return &PlaceService{}
}

var indianCities = []PlacePrediction{
	{PlaceID: "place_mumbai", Description: "Mumbai, Maharashtra, India", MainText: "Mumbai", SecondaryText: "Maharashtra, India"},
	{PlaceID: "place_delhi", Description: "Delhi, India", MainText: "Delhi", SecondaryText: "India"},
	{PlaceID: "place_bangalore", Description: "Bangalore, Karnataka, India", MainText: "Bangalore", SecondaryText: "Karnataka, India"},
	{PlaceID: "place_pune", Description: "Pune, Maharashtra, India", MainText: "Pune", SecondaryText: "Maharashtra, India"},
	{PlaceID: "place_chennai", Description: "Chennai, Tamil Nadu, India", MainText: "Chennai", SecondaryText: "Tamil Nadu, India"},
	{PlaceID: "place_kolkata", Description: "Kolkata, West Bengal, India", MainText: "Kolkata", SecondaryText: "West Bengal, India"},
	{PlaceID: "place_hyderabad", Description: "Hyderabad, Telangana, India", MainText: "Hyderabad", SecondaryText: "Telangana, India"},
	{PlaceID: "place_jaipur", Description: "Jaipur, Rajasthan, India", MainText: "Jaipur", SecondaryText: "Rajasthan, India"},
	{PlaceID: "place_ahmedabad", Description: "Ahmedabad, Gujarat, India", MainText: "Ahmedabad", SecondaryText: "Gujarat, India"},
	{PlaceID: "place_goa", Description: "Goa, India", MainText: "Goa", SecondaryText: "India"},
}

// Autocomplete returns city suggestions matching the query.
func (s *PlaceService) Autocomplete(_ context.Context, query string) ([]PlacePrediction, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil, nil
	}

	var matches []PlacePrediction
	for _, city := range indianCities {
		if strings.Contains(strings.ToLower(city.MainText), query) {
			matches = append(matches, city)
		}
	}
	return matches, nil
}

package provider

import (
	"context"
	"strings"
	"testing"
)

func TestCityToIATA(t *testing.T) {
	tests := []struct {
		city string
		want string
	}{
		{"Mumbai", "BOM"},
		{"mumbai", "BOM"},
		{"Navi Mumbai", "BOM"},
		{"Pune, Maharashtra", "PNQ"},
		{"  Delhi  ", "DEL"},
		{"Bengaluru", "BLR"},
		{"Nashik", ""},
	}
	for _, tt := range tests {
		if got := CityToIATA(tt.city); got != tt.want {
			t.Errorf("CityToIATA(%q) = %q, want %q", tt.city, got, tt.want)
		}
	}
}

func TestFlightSearchCuratedRoute(t *testing.T) {
	svc := NewFlightService()

	flights, err := svc.Search(context.Background(), "Mumbai", "Pune", "2026-09-15")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(flights) != 4 {
		t.Fatalf("expected 4 curated flights, got %d", len(flights))
	}
	first := flights[0]
	if first.Airline != "AI" || first.FlightNumber != "AI-501" || first.Price != 3500 {
		t.Errorf("unexpected first flight: %+v", first)
	}
	if first.FromAirport != "BOM" || first.ToAirport != "PNQ" {
		t.Errorf("airports = %s-%s, want BOM-PNQ", first.FromAirport, first.ToAirport)
	}
	if !strings.Contains(first.BookingLink, "makemytrip.com") || !strings.Contains(first.BookingLink, "20260915") {
		t.Errorf("booking link = %q", first.BookingLink)
	}
}

func TestFlightSearchNoAirport(t *testing.T) {
	svc := NewFlightService()

	flights, err := svc.Search(context.Background(), "Nashik", "Pune", "2026-09-15")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(flights) != 0 {
		t.Errorf("expected no flights for an unmapped city, got %d", len(flights))
	}
}

func TestFlightSearchGenericFallback(t *testing.T) {
	svc := NewFlightService()

	// Both cities have airports but the pair has no curated schedule.
	flights, err := svc.Search(context.Background(), "Leh", "Port Blair", "2026-09-15")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(flights) != 3 {
		t.Fatalf("expected 3 generated flights, got %d", len(flights))
	}
	for _, f := range flights {
		if f.FromAirport != "IXL" || f.ToAirport != "IXZ" {
			t.Errorf("airports = %s-%s, want IXL-IXZ", f.FromAirport, f.ToAirport)
		}
		if f.Price < 3000 || f.Currency != "INR" {
			t.Errorf("implausible generated flight: %+v", f)
		}
	}
}

package provider

import (
	"strings"
	"testing"

	"safar/internal/domain"
)

func TestBookingLink(t *testing.T) {
	params := BookingParams{From: "Mumbai", To: "Pune", Date: "2026-09-15"}

	if got := BookingLink(domain.ModeTrain, params); got != "https://www.irctc.co.in/nget/train-search" {
		t.Errorf("train link = %q", got)
	}

	bus := BookingLink(domain.ModeBus, params)
	if !strings.Contains(bus, "redbus.in") || !strings.Contains(bus, "Mumbai-to-Pune") || !strings.Contains(bus, "date=2026-09-15") {
		t.Errorf("bus link = %q", bus)
	}

	if got := BookingLink(domain.ModeTaxi, params); got != "https://www.uber.com/in/en/ride/" {
		t.Errorf("taxi link = %q", got)
	}

	if got := BookingLink(domain.TransportMode("ferry"), params); got != "#" {
		t.Errorf("unknown mode link = %q, want placeholder", got)
	}
}

func TestBookingLinkFlights(t *testing.T) {
	indigo := BookingLink(domain.ModeFlight, BookingParams{From: "BOM", To: "DEL", Date: "2026-09-15", Airline: "6E"})
	if !strings.Contains(indigo, "goindigo.in") || !strings.Contains(indigo, "from=BOM") {
		t.Errorf("IndiGo link = %q", indigo)
	}

	airIndia := BookingLink(domain.ModeFlight, BookingParams{From: "BOM", To: "DEL", Date: "2026-09-15", Airline: "AI"})
	if !strings.Contains(airIndia, "airindia.com") {
		t.Errorf("Air India link = %q", airIndia)
	}

	// Unknown airlines route through the aggregator with the date compacted.
	other := BookingLink(domain.ModeFlight, BookingParams{From: "BOM", To: "DEL", Date: "2026-09-15", Airline: "QP"})
	if !strings.Contains(other, "makemytrip.com") || !strings.Contains(other, "BOM-DEL-20260915") {
		t.Errorf("aggregator link = %q", other)
	}
}

func TestTransportIcon(t *testing.T) {
	tests := []struct {
		mode domain.TransportMode
		want string
	}{
		{domain.ModeTrain, "🚆"},
		{domain.ModeBus, "🚌"},
		{domain.ModeFlight, "✈️"},
		{domain.ModeTaxi, "🚕"},
		{domain.TransportMode("ferry"), "🚗"},
	}
	for _, tt := range tests {
		if got := TransportIcon(tt.mode); got != tt.want {
			t.Errorf("TransportIcon(%s) = %q, want %q", tt.mode, got, tt.want)
		}
	}
}

func TestPlatformName(t *testing.T) {
	if got := PlatformName(domain.ModeTrain); got != "IRCTC" {
		t.Errorf("PlatformName(train) = %q", got)
	}
	if got := PlatformName(domain.TransportMode("ferry")); got != "Unknown" {
		t.Errorf("PlatformName(ferry) = %q", got)
	}
}

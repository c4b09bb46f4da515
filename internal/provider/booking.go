package provider

import (
	"fmt"
	"net/url"
	"strings"

	"safar/internal/domain"
)

// BookingParams carries the journey details needed to build a booking link.
type BookingParams struct {
	From         string
	To           string
	Date         string // YYYY-MM-DD
	TrainNumber  string
	Airline      string
	FlightNumber string
}

// airlineBookingURLs maps airline codes to their direct booking pages.
var airlineBookingURLs = map[string]string{
	"AI": "https://www.airindia.com/in/en/book.html",
	"SG": "https://www.spicejet.com/",
	"UK": "https://www.airvistara.com/in/en/book",
	"G8": "https://www.flygofirst.com/",
}

// BookingLink returns a booking URL for the given mode and journey. It is
// total: unknown modes get a placeholder rather than an error.
func BookingLink(mode domain.TransportMode, p BookingParams) string {
	switch mode {
	case domain.ModeTrain:
		return "https://www.irctc.co.in/nget/train-search"

	case domain.ModeBus:
		return fmt.Sprintf("https://www.redbus.in/bus-tickets/%s-to-%s?date=%s",
			url.PathEscape(p.From), url.PathEscape(p.To), p.Date)

	case domain.ModeFlight:
		if p.Airline == "6E" {
			return fmt.Sprintf("https://www.goindigo.in/booking/select-flight.html?from=%s&to=%s&date=%s",
				p.From, p.To, p.Date)
		}
		if u, ok := airlineBookingURLs[p.Airline]; ok {
			return u
		}
		formattedDate := strings.ReplaceAll(p.Date, "-", "")
		return fmt.Sprintf("https://www.makemytrip.com/flight/search?itinerary=%s-%s-%s&tripType=O&paxType=A-1_C-0_I-0&cabinClass=E",
			p.From, p.To, formattedDate)

	case domain.ModeTaxi:
		return "https://www.uber.com/in/en/ride/"

	default:
		return "#"
	}
}

// TransportIcon returns the display icon for a transport mode.
func TransportIcon(mode domain.TransportMode) string {
	switch mode {
	case domain.ModeTrain:
		return "🚆"
	case domain.ModeBus:
		return "🚌"
	case domain.ModeFlight:
		return "✈️"
	case domain.ModeTaxi:
		return "🚕"
	default:
		return "🚗"
	}
}

// PlatformName returns the booking platform behind a mode's booking links.
func PlatformName(mode domain.TransportMode) string {
	switch mode {
	case domain.ModeTrain:
		return "IRCTC"
	case domain.ModeBus:
		return "RedBus"
	case domain.ModeFlight:
		return "MakeMyTrip"
	case domain.ModeTaxi:
		return "Uber"
	default:
		return "Unknown"
	}
}

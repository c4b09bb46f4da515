package provider

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"safar/internal/domain"
)

// FlightService searches flight inventory. It resolves city names to IATA
// codes and serves a curated schedule for major Indian routes, with a
// generated fallback for unmapped city pairs. Cities without an airport
// return an empty result.
type FlightService struct{}

// NewFlightService creates a new FlightService.
func NewFlightService() *FlightService {
	return &FlightService{}
}

// cityToIATA maps Indian city names to airport codes.
var cityToIATA = map[string]string{
	"mumbai": "BOM", "delhi": "DEL", "bangalore": "BLR", "bengaluru": "BLR",
	"hyderabad": "HYD", "chennai": "MAA", "kolkata": "CCU", "pune": "PNQ",
	"ahmedabad": "AMD", "jaipur": "JAI", "lucknow": "LKO", "goa": "GOI",
	"kochi": "COK", "cochin": "COK", "thiruvananthapuram": "TRV",
	"guwahati": "GAU", "varanasi": "VNS", "patna": "PAT", "bhopal": "BHO",
	"indore": "IDR", "nagpur": "NAG", "chandigarh": "IXC", "coimbatore": "CJB",
	"srinagar": "SXR", "amritsar": "ATQ", "ranchi": "IXR", "raipur": "RPR",
	"visakhapatnam": "VTZ", "bhubaneswar": "BBI", "mangalore": "IXE",
	"udaipur": "UDR", "dehradun": "DED", "madurai": "IXM", "tiruchirappalli": "TRZ",
	"leh": "IXL", "surat": "STV", "vadodara": "BDQ", "agartala": "IXA",
	"imphal": "IMF", "silchar": "IXS", "dibrugarh": "DIB", "jorhat": "JRH",
	"bagdogra": "IXB", "port blair": "IXZ", "jammu": "IXJ", "rajkot": "RAJ",
	"aurangabad": "IXU", "hubli": "HBX", "belgaum": "IXG", "kolhapur": "KLH",
	"mysore": "MYQ", "mysuru": "MYQ", "tirumala": "TIR", "tirupati": "TIR",
	"vijayawada": "VGA", "calicut": "CCJ", "kozhikode": "CCJ",
	"new delhi": "DEL", "noida": "DEL", "gurugram": "DEL", "gurgaon": "DEL",
	"thane": "BOM", "navi mumbai": "BOM",
}

// CityToIATA resolves a city name to its airport code, or "" if the city has
// no mapped airport.
func CityToIATA(city string) string {
	normalized := strings.ToLower(strings.TrimSpace(city))
	if idx := strings.Index(normalized, ","); idx >= 0 {
		normalized = strings.TrimSpace(normalized[:idx])
	}
	return cityToIATA[normalized]
}

type scheduledFlight struct {
	airline     string
	airlineName string
	number      string
	depTime     string
	arrTime     string
	duration    string
	price       int
	stops       int
}

// indianFlights holds curated schedules for major Indian routes.
var indianFlights = map[string][]scheduledFlight{
	"BOM-PNQ": {
		{"AI", "Air India", "AI-501", "06:00", "07:30", "1h 30m", 3500, 0},
		{"6E", "IndiGo", "6E-202", "10:15", "11:45", "1h 30m", 3200, 0},
		{"SG", "SpiceJet", "SG-303", "14:30", "16:00", "1h 30m", 3000, 0},
		{"UK", "Vistara", "UK-604", "18:45", "20:15", "1h 30m", 3800, 0},
	},
	"PNQ-BOM": {
		{"AI", "Air India", "AI-502", "08:00", "09:30", "1h 30m", 3500, 0},
		{"6E", "IndiGo", "6E-201", "12:15", "13:45", "1h 30m", 3200, 0},
		{"SG", "SpiceJet", "SG-304", "16:00", "17:30", "1h 30m", 3000, 0},
	},
	"BOM-DEL": {
		{"AI", "Air India", "AI-101", "06:30", "08:30", "2h 0m", 5000, 0},
		{"6E", "IndiGo", "6E-102", "09:00", "11:00", "2h 0m", 4500, 0},
		{"SG", "SpiceJet", "SG-201", "12:30", "14:30", "2h 0m", 4200, 0},
		{"UK", "Vistara", "UK-303", "15:30", "17:30", "2h 0m", 5500, 0},
		{"6E", "IndiGo", "6E-666", "20:00", "22:00", "2h 0m", 4800, 0},
	},
	"DEL-BOM": {
		{"AI", "Air India", "AI-100", "07:00", "09:00", "2h 0m", 5000, 0},
		{"6E", "IndiGo", "6E-101", "10:30", "12:30", "2h 0m", 4500, 0},
		{"SG", "SpiceJet", "SG-200", "13:00", "15:00", "2h 0m", 4200, 0},
		{"UK", "Vistara", "UK-302", "17:00", "19:00", "2h 0m", 5500, 0},
	},
	"BOM-BLR": {
		{"AI", "Air India", "AI-201", "07:00", "09:00", "2h 0m", 4500, 0},
		{"6E", "IndiGo", "6E-701", "11:00", "13:00", "2h 0m", 4000, 0},
		{"SG", "SpiceJet", "SG-401", "14:30", "16:30", "2h 0m", 3800, 0},
		{"UK", "Vistara", "UK-503", "18:00", "20:00", "2h 0m", 5000, 0},
	},
	"BLR-BOM": {
		{"AI", "Air India", "AI-202", "08:30", "10:30", "2h 0m", 4500, 0},
		{"6E", "IndiGo", "6E-702", "12:30", "14:30", "2h 0m", 4000, 0},
		{"SG", "SpiceJet", "SG-402", "16:00", "18:00", "2h 0m", 3800, 0},
	},
	"DEL-BLR": {
		{"AI", "Air India", "AI-301", "06:00", "09:00", "2h 30m", 5500, 0},
		{"6E", "IndiGo", "6E-601", "09:30", "12:30", "2h 30m", 5000, 0},
		{"UK", "Vistara", "UK-701", "13:00", "16:00", "2h 30m", 6000, 0},
		{"SG", "SpiceJet", "SG-501", "16:30", "19:30", "2h 30m", 4800, 0},
	},
	"BLR-DEL": {
		{"AI", "Air India", "AI-302", "07:00", "10:00", "2h 30m", 5500, 0},
		{"6E", "IndiGo", "6E-602", "10:00", "13:00", "2h 30m", 5000, 0},
		{"UK", "Vistara", "UK-702", "14:00", "17:00", "2h 30m", 6000, 0},
	},
	"DEL-JAI": {
		{"AI", "Air India", "AI-401", "07:30", "08:30", "1h 0m", 2800, 0},
		{"6E", "IndiGo", "6E-401", "11:00", "12:00", "1h 0m", 2500, 0},
		{"SG", "SpiceJet", "SG-601", "14:00", "15:00", "1h 0m", 2300, 0},
	},
	"JAI-DEL": {
		{"AI", "Air India", "AI-402", "09:00", "10:00", "1h 0m", 2800, 0},
		{"6E", "IndiGo", "6E-402", "12:30", "13:30", "1h 0m", 2500, 0},
		{"SG", "SpiceJet", "SG-602", "15:30", "16:30", "1h 0m", 2300, 0},
	},
}

// Search returns flights between two cities on a date. Cities without a
// mapped airport yield an empty list; that is a valid result, not an error.
func (s *FlightService) Search(_ context.Context, from, to, date string) ([]domain.Flight, error) {
	fromIATA := CityToIATA(from)
	toIATA := CityToIATA(to)
	if fromIATA == "" || toIATA == "" {
		return nil, nil
	}

	key := fromIATA + "-" + toIATA
	scheduled, ok := indianFlights[key]
	if !ok {
		return genericFlights(fromIATA, toIATA, date), nil
	}

	link := flightSearchLink(fromIATA, toIATA, date)
	flights := make([]domain.Flight, 0, len(scheduled))
	for i, f := range scheduled {
		flights = append(flights, domain.Flight{
			ID:            fmt.Sprintf("%s-%d", f.airline, i),
			Airline:       f.airline,
			AirlineName:   f.airlineName,
			FlightNumber:  f.number,
			DepartureTime: f.depTime,
			ArrivalTime:   f.arrTime,
			Duration:      f.duration,
			FromAirport:   fromIATA,
			ToAirport:     toIATA,
			Price:         f.price,
			Currency:      "INR",
			Stops:         f.stops,
			BookingLink:   link,
		})
	}
	return flights, nil
}

var genericAirlines = []struct {
	code string
	name string
}{
	{"AI", "Air India"},
	{"6E", "IndiGo"},
	{"SG", "SpiceJet"},
}

// genericFlights fills in inventory for airport pairs outside the curated
// schedule.
func genericFlights(from, to, date string) []domain.Flight {
	link := flightSearchLink(from, to, date)
	flights := make([]domain.Flight, 0, len(genericAirlines))

	for i, airline := range genericAirlines {
		depHour := 5 + i*4
		durationMins := 120 + rand.Intn(120)
		arrHour := (depHour + durationMins/60) % 24

		flights = append(flights, domain.Flight{
			ID:            fmt.Sprintf("%s-%d", airline.code, i),
			Airline:       airline.code,
			AirlineName:   airline.name,
			FlightNumber:  fmt.Sprintf("%s%d", airline.code, 100+rand.Intn(900)),
			DepartureTime: fmt.Sprintf("%02d:%02d", depHour, rand.Intn(60)),
			ArrivalTime:   fmt.Sprintf("%02d:%02d", arrHour, durationMins%60),
			Duration:      fmt.Sprintf("%dh %dm", durationMins/60, durationMins%60),
			FromAirport:   from,
			ToAirport:     to,
			Price:         3000 + rand.Intn(8000),
			Currency:      "INR",
			Stops:         0,
			BookingLink:   link,
		})
	}
	return flights
}

func flightSearchLink(from, to, date string) string {
	return fmt.Sprintf("https://www.makemytrip.com/flight/search?from=%s&to=%s&date=%s",
		from, to, strings.ReplaceAll(date, "-", ""))
}

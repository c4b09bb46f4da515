package provider

import (
	"context"
	"fmt"
	"math/rand"
	"net/url"
	"strconv"
	"strings"

	"safar/internal/domain"
)

// BusService searches bus inventory from a curated table of Indian operator
// routes, with a single generic service for unmapped city pairs. Searches
// are total: there is no failure mode.
type BusService struct{}

// NewBusService creates a new BusService.
func NewBusService() *BusService {
	return &BusService{}
}

type scheduledBus struct {
	operator    string
	busType     string
	depTime     string
	durationMin int
	price       int
	rating      float64
}

// indianBuses holds curated schedules keyed by "from-to" in lowercase.
var indianBuses = map[string][]scheduledBus{
	"mumbai-pune": {
		{"Shivneri Travels", "AC Seater", "06:00", 210, 350, 4.5},
		{"Paulo Travels", "Volvo AC", "08:30", 210, 450, 4.6},
		{"VRL Travels", "AC Semi Sleeper", "18:00", 240, 500, 4.3},
		{"MSRTC", "Regular AC", "12:30", 240, 250, 3.8},
	},
	"pune-mumbai": {
		{"Shivneri Travels", "AC Seater", "07:00", 210, 350, 4.5},
		{"Orange Travels", "AC Sleeper", "20:00", 240, 550, 4.4},
		{"VRL Travels", "AC Semi Sleeper", "17:30", 240, 480, 4.3},
	},
	"delhi-jaipur": {
		{"Rajasthan Roadways", "AC Seater", "06:30", 330, 250, 3.9},
		{"The Rider", "Volvo AC", "10:00", 330, 450, 4.5},
		{"SafeJourney", "Premium AC", "18:00", 330, 550, 4.7},
	},
	"jaipur-delhi": {
		{"Rajasthan Roadways", "AC Seater", "05:30", 330, 250, 3.9},
		{"The Rider", "Volvo AC", "16:00", 330, 450, 4.5},
	},
	"mumbai-bangalore": {
		{"Neeta Travels", "AC Sleeper", "19:00", 1200, 1200, 4.4},
		{"VRL Travels", "AC Sleeper", "20:00", 1200, 1100, 4.3},
		{"SRS Travels", "Volvo AC", "18:30", 1200, 1300, 4.5},
	},
	"bangalore-mumbai": {
		{"Neeta Travels", "AC Sleeper", "18:00", 1200, 1200, 4.4},
		{"Golden Travels", "AC Sleeper", "19:30", 1200, 1150, 4.2},
	},
	"mumbai-delhi": {
		{"Neeta Travels", "AC Sleeper", "19:00", 1440, 1500, 4.4},
		{"VRL Travels", "AC Sleeper", "20:00", 1440, 1400, 4.3},
		{"RedBus Partnership", "Volvo", "18:00", 1440, 1600, 4.6},
	},
	"delhi-mumbai": {
		{"Neeta Travels", "AC Sleeper", "18:30", 1440, 1500, 4.4},
		{"VRL Travels", "AC Sleeper", "19:30", 1440, 1400, 4.3},
	},
}

// Search returns buses between two cities on a date.
func (s *BusService) Search(_ context.Context, from, to, _ string) ([]domain.Bus, error) {
	key := strings.ToLower(from) + "-" + strings.ToLower(to)
	link := busSearchLink(from, to)

	scheduled, ok := indianBuses[key]
	if !ok {
		return []domain.Bus{{
			OperatorName:   "General Bus Service",
			BusType:        "AC Seater",
			DepartureTime:  "06:00",
			ArrivalTime:    "18:00",
			Duration:       "12h 0m",
			Price:          800,
			Rating:         3.5,
			SeatsAvailable: 20,
			BookingLink:    link,
		}}, nil
	}

	buses := make([]domain.Bus, 0, len(scheduled))
	for _, b := range scheduled {
		depHour, depMin := splitClock(b.depTime)
		arrHour := (depHour + b.durationMin/60) % 24
		arrMin := (depMin + b.durationMin%60) % 60

		buses = append(buses, domain.Bus{
			OperatorName:   b.operator,
			BusType:        b.busType,
			DepartureTime:  b.depTime,
			ArrivalTime:    fmt.Sprintf("%02d:%02d", arrHour, arrMin),
			Duration:       fmt.Sprintf("%dh %dm", b.durationMin/60, b.durationMin%60),
			Price:          b.price,
			Rating:         b.rating,
			SeatsAvailable: 5 + rand.Intn(20),
			BookingLink:    link,
		})
	}
	return buses, nil
}

func busSearchLink(from, to string) string {
	return fmt.Sprintf("https://www.redbus.in/bus-tickets/%s-to-%s",
		url.PathEscape(from), url.PathEscape(to))
}

func splitClock(t string) (hour, minute int) {
	parts := strings.SplitN(t, ":", 2)
	hour, _ = strconv.Atoi(parts[0])
	if len(parts) == 2 {
		minute, _ = strconv.Atoi(parts[1])
	}
	return hour, minute
}

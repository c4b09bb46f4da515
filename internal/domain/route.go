package domain

// TransportMode represents a mode of transport for a segment.
type TransportMode string

const (
	ModeTrain  TransportMode = "train"
	ModeBus    TransportMode = "bus"
	ModeFlight TransportMode = "flight"
	ModeTaxi   TransportMode = "taxi"
)

// OptimizationType selects the ranking objective for a route search.
type OptimizationType string

const (
	OptimizeCheapest OptimizationType = "cheapest"
	OptimizeFastest  OptimizationType = "fastest"
	OptimizeReliable OptimizationType = "reliable"
)

// Location is a caller-supplied place with coordinates.
type Location struct {
	Name             string  `json:"name"`
	Lat              float64 `json:"lat"`
	Lng              float64 `json:"lng"`
	FormattedAddress string  `json:"formattedAddress,omitempty"`
}

// Segment is one atomic leg of a journey on a single transport mode.
// It is created once by the route engine and never mutated afterwards.
type Segment struct {
	ID                      string        `json:"id"`
	Type                    TransportMode `json:"type"`
	From                    string        `json:"from"`
	To                      string        `json:"to"`
	DepartureTime           string        `json:"departureTime"`
	ArrivalTime             string        `json:"arrivalTime"`
	Duration                string        `json:"duration"`
	Price                   int           `json:"price"`
	Currency                string        `json:"currency"`
	Operator                string        `json:"operator,omitempty"`
	Details                 string        `json:"details,omitempty"`
	Reliability             float64       `json:"reliability,omitempty"`
	DelayProbability        float64       `json:"delayProbability,omitempty"`
	CancellationProbability float64       `json:"cancellationProbability,omitempty"`
	SeatsAvailable          int           `json:"seatsAvailable,omitempty"`
	BookingLink             string        `json:"bookingLink"`
	Icon                    string        `json:"icon"`
}

// RouteOption is one complete origin-to-destination itinerary.
//
// Segments are ordered by travel sequence: each segment departs from the
// previous segment's destination, and the first segment departs from the
// queried origin. TotalPrice is the sum of segment prices. DurationMinutes
// is the parsed numeric duration used for fastest ranking; TotalDuration is
// the display form.
type RouteOption struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Segments         []Segment        `json:"segments"`
	TotalDuration    string           `json:"totalDuration"`
	DurationMinutes  int              `json:"-"`
	TotalPrice       int              `json:"totalPrice"`
	TotalReliability float64          `json:"totalReliability"`
	OptimizationType OptimizationType `json:"optimizationType"`
}

// UsesMode reports whether any segment of the route uses the given mode.
func (r *RouteOption) UsesMode(mode TransportMode) bool {
	for _, s := range r.Segments {
		if s.Type == mode {
			return true
		}
	}
	return false
}

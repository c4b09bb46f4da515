package domain

import "time"

// DelayRecord is one observed delay for a route and mode.
type DelayRecord struct {
	ID            string
	Route         string
	TransportType TransportMode
	DelayMinutes  int
	RecordedAt    time.Time
}

// CancellationRecord is one observed cancellation for a route and mode.
type CancellationRecord struct {
	ID            string
	Route         string
	TransportType TransportMode
	Reason        string
	RecordedAt    time.Time
}

// SearchRecord is one logged route search.
type SearchRecord struct {
	ID           string
	Origin       string
	Destination  string
	TravelDate   string
	Optimization OptimizationType
	RouteCount   int
	CreatedAt    time.Time
}

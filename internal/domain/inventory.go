package domain

// Train is one result from a train inventory search.
// Prices are keyed by class code (SL, 3A, 2A, 1A).
type Train struct {
	TrainNumber   string         `json:"trainNumber"`
	TrainName     string         `json:"trainName"`
	DepartureTime string         `json:"departureTime"`
	ArrivalTime   string         `json:"arrivalTime"`
	Duration      string         `json:"duration"`
	FromStation   string         `json:"fromStation"`
	ToStation     string         `json:"toStation"`
	Classes       []string       `json:"classes"`
	Price         map[string]int `json:"price"`
	RunDays       []string       `json:"runDays,omitempty"`
	BookingLink   string         `json:"bookingLink"`
}

// Flight is one result from a flight inventory search.
type Flight struct {
	ID            string `json:"id"`
	Airline       string `json:"airline"`
	AirlineName   string `json:"airlineName"`
	FlightNumber  string `json:"flightNumber"`
	DepartureTime string `json:"departureTime"`
	ArrivalTime   string `json:"arrivalTime"`
	Duration      string `json:"duration"`
	FromAirport   string `json:"fromAirport"`
	ToAirport     string `json:"toAirport"`
	Price         int    `json:"price"`
	Currency      string `json:"currency"`
	Stops         int    `json:"stops"`
	BookingLink   string `json:"bookingLink"`
}

// Bus is one result from a bus inventory search.
type Bus struct {
	OperatorName   string  `json:"operatorName"`
	BusType        string  `json:"busType"`
	DepartureTime  string  `json:"departureTime"`
	ArrivalTime    string  `json:"arrivalTime"`
	Duration       string  `json:"duration"`
	Price          int     `json:"price"`
	Rating         float64 `json:"rating"`
	SeatsAvailable int     `json:"seatsAvailable"`
	BookingLink    string  `json:"bookingLink"`
}

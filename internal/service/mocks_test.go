package service

import (
	"context"
	"errors"
	"time"

	"safar/internal/domain"
	"safar/internal/provider"
)

// mockTrainSearcher returns a fixed train inventory or an error.
type mockTrainSearcher struct {
	trains []domain.Train
	err    error
}

func (m *mockTrainSearcher) Search(_ context.Context, _, _, _ string) ([]domain.Train, error) {
	return m.trains, m.err
}

// mockFlightSearcher returns a fixed flight inventory or an error.
type mockFlightSearcher struct {
	flights []domain.Flight
	err     error
}

func (m *mockFlightSearcher) Search(_ context.Context, _, _, _ string) ([]domain.Flight, error) {
	return m.flights, m.err
}

// mockBusSearcher returns a fixed bus inventory or an error.
type mockBusSearcher struct {
	buses []domain.Bus
	err   error
}

func (m *mockBusSearcher) Search(_ context.Context, _, _, _ string) ([]domain.Bus, error) {
	return m.buses, m.err
}

// failingPredictor simulates a prediction service outage.
type failingPredictor struct{}

func (p *failingPredictor) PredictDelay(_ context.Context, _ string, _ domain.TransportMode, _ string) (*provider.DelayPrediction, error) {
	return nil, errors.New("prediction service unavailable")
}

func (p *failingPredictor) PredictCancellation(_ context.Context, _ string, _ domain.TransportMode, _ string) (*provider.CancellationPrediction, error) {
	return nil, errors.New("prediction service unavailable")
}

// stubPredictor returns fixed predictions, optionally failing one call.
type stubPredictor struct {
	delay     provider.DelayPrediction
	cancel    provider.CancellationPrediction
	delayErr  error
	cancelErr error
}

func (p *stubPredictor) PredictDelay(_ context.Context, _ string, _ domain.TransportMode, _ string) (*provider.DelayPrediction, error) {
	if p.delayErr != nil {
		return nil, p.delayErr
	}
	d := p.delay
	return &d, nil
}

func (p *stubPredictor) PredictCancellation(_ context.Context, _ string, _ domain.TransportMode, _ string) (*provider.CancellationPrediction, error) {
	if p.cancelErr != nil {
		return nil, p.cancelErr
	}
	c := p.cancel
	return &c, nil
}

var (
	mumbai = domain.Location{Name: "Mumbai", Lat: 19.076, Lng: 72.8777}
	pune   = domain.Location{Name: "Pune", Lat: 18.5204, Lng: 73.8567}
	delhi  = domain.Location{Name: "Delhi", Lat: 28.7041, Lng: 77.1025}
)

func sampleTrain(name, number string, price3A int) domain.Train {
	return domain.Train{
		TrainNumber:   number,
		TrainName:     name,
		DepartureTime: "06:00",
		ArrivalTime:   "09:30",
		Duration:      "3h 30m",
		Classes:       []string{"SL", "3A"},
		Price:         map[string]int{"SL": 350, "3A": price3A},
	}
}

func sampleFlight(price int) domain.Flight {
	return domain.Flight{
		ID:            "AI-0",
		Airline:       "AI",
		AirlineName:   "Air India",
		FlightNumber:  "AI-101",
		DepartureTime: "06:30",
		ArrivalTime:   "08:30",
		Duration:      "2h 0m",
		FromAirport:   "BOM",
		ToAirport:     "DEL",
		Price:         price,
		Currency:      "INR",
	}
}

func sampleBus(price int) domain.Bus {
	return domain.Bus{
		OperatorName:   "Shivneri Travels",
		BusType:        "AC Seater",
		DepartureTime:  "06:00",
		ArrivalTime:    "09:30",
		Duration:       "3h 30m",
		Price:          price,
		Rating:         4.5,
		SeatsAvailable: 12,
	}
}

// newTestEngine builds an engine with the given inventories and a failed
// prediction service, so reliability falls back to the per-mode defaults.
func newTestEngine(trains []domain.Train, flights []domain.Flight, buses []domain.Bus) *RouteEngine {
	return NewRouteEngine(
		&mockTrainSearcher{trains: trains},
		&mockFlightSearcher{flights: flights},
		&mockBusSearcher{buses: buses},
		NewReliabilityService(&failingPredictor{}),
		time.Second,
	)
}

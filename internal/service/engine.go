package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"safar/internal/domain"
	"safar/internal/provider"
)

// Template applicability thresholds and estimates, in km.
const (
	flightMinDistanceKm = 300 // below this a flight is not worth the airport legs
	mixedMinDistanceKm  = 100
	taxiMaxDistanceKm   = 200
	airportTaxiKm       = 25 // fixed estimate for the city-to-airport leg
	mixedTaxiMaxKm      = 50
	mixedTaxiShare      = 0.15
)

// Fallback train fares when the inventory has no class pricing.
const (
	defaultTrainFare      = 800
	defaultMixedTrainFare = 700
)

const currencyINR = "INR"

// TrainSearcher searches train inventory.
type TrainSearcher interface {
	Search(ctx context.Context, from, to, date string) ([]domain.Train, error)
}

// FlightSearcher searches flight inventory.
type FlightSearcher interface {
	Search(ctx context.Context, from, to, date string) ([]domain.Flight, error)
}

// BusSearcher searches bus inventory.
type BusSearcher interface {
	Search(ctx context.Context, from, to, date string) ([]domain.Bus, error)
}

// Ensure the providers satisfy the contracts.
var (
	_ TrainSearcher  = (*provider.TrainService)(nil)
	_ FlightSearcher = (*provider.FlightService)(nil)
	_ BusSearcher    = (*provider.BusService)(nil)
)

// RouteEngine composes and ranks multi-modal itineraries. It fans out to the
// per-mode inventory searches, attaches reliability scores, synthesizes
// candidate routes from fixed templates, and orders them by the requested
// optimization. Each request's working set is local; the engine holds no
// mutable state.
type RouteEngine struct {
	trains        TrainSearcher
	flights       FlightSearcher
	buses         BusSearcher
	reliability   *ReliabilityService
	searchTimeout time.Duration
}

// NewRouteEngine creates a new RouteEngine.
func NewRouteEngine(
	trains TrainSearcher,
	flights FlightSearcher,
	buses BusSearcher,
	reliability *ReliabilityService,
	searchTimeout time.Duration,
) *RouteEngine {
	return &RouteEngine{
		trains:        trains,
		flights:       flights,
		buses:         buses,
		reliability:   reliability,
		searchTimeout: searchTimeout,
	}
}

// inventory is the settled result of the three-way fan-out.
type inventory struct {
	trains  []domain.Train
	flights []domain.Flight
	buses   []domain.Bus
}

// scores holds one reliability snapshot per mode.
type scores struct {
	train  domain.ReliabilityScore
	flight domain.ReliabilityScore
	bus    domain.ReliabilityScore
	taxi   domain.ReliabilityScore
}

// ComputeRoutes builds the ranked candidate list for a journey. An empty
// result is valid: it means no itinerary template applied.
func (e *RouteEngine) ComputeRoutes(ctx context.Context, origin, destination domain.Location, date string, optimization domain.OptimizationType) ([]domain.RouteOption, error) {
	if origin.Name == "" {
		return nil, ErrInvalidOrigin
	}
	if destination.Name == "" {
		return nil, ErrInvalidDestination
	}
	if date == "" {
		return nil, ErrInvalidDate
	}

	distance := HaversineKm(origin.Lat, origin.Lng, destination.Lat, destination.Lng)

	inv := e.fetchInventory(ctx, origin.Name, destination.Name, date)
	sc := e.resolveScores(ctx, origin.Name+"-"+destination.Name, date)

	routes := make([]domain.RouteOption, 0, 5)

	if r := e.directTrainRoute(origin, destination, date, inv.trains, sc.train); r != nil {
		routes = append(routes, *r)
	}
	if r := e.directFlightRoute(origin, destination, date, distance, inv.flights, sc.flight, sc.taxi); r != nil {
		routes = append(routes, *r)
	}
	if r := e.directBusRoute(origin, destination, date, inv.buses, sc.bus); r != nil {
		routes = append(routes, *r)
	}
	if r := e.mixedTaxiTrainRoute(origin, destination, date, distance, inv.trains, sc.train, sc.taxi); r != nil {
		routes = append(routes, *r)
	}
	if r := e.taxiOnlyRoute(origin, destination, date, distance, sc.taxi); r != nil {
		routes = append(routes, *r)
	}

	return rankRoutes(routes, optimization), nil
}

// ComputeAlternateRoutes re-plans the journey excluding a mode whose segment
// became unavailable. Survivors keep their fastest-ranked order.
func (e *RouteEngine) ComputeAlternateRoutes(ctx context.Context, origin, destination domain.Location, date string, excludeMode domain.TransportMode) ([]domain.RouteOption, error) {
	switch excludeMode {
	case domain.ModeTrain, domain.ModeBus, domain.ModeFlight, domain.ModeTaxi:
	default:
		return nil, ErrInvalidExcludeMode
	}

	all, err := e.ComputeRoutes(ctx, origin, destination, date, domain.OptimizeFastest)
	if err != nil {
		return nil, err
	}

	alternates := make([]domain.RouteOption, 0, len(all))
	for _, route := range all {
		if !route.UsesMode(excludeMode) {
			alternates = append(alternates, route)
		}
	}
	return alternates, nil
}

// fetchInventory issues the three per-mode searches concurrently and waits
// for all of them to settle. A failed search contributes an empty inventory;
// it never aborts the other two or the request.
func (e *RouteEngine) fetchInventory(ctx context.Context, from, to, date string) inventory {
	var inv inventory
	var wg sync.WaitGroup

	wg.Add(3)
	go func() {
		defer wg.Done()
		searchCtx, cancel := context.WithTimeout(ctx, e.searchTimeout)
		defer cancel()
		if trains, err := e.trains.Search(searchCtx, from, to, date); err == nil {
			inv.trains = trains
		}
	}()
	go func() {
		defer wg.Done()
		searchCtx, cancel := context.WithTimeout(ctx, e.searchTimeout)
		defer cancel()
		if flights, err := e.flights.Search(searchCtx, from, to, date); err == nil {
			inv.flights = flights
		}
	}()
	go func() {
		defer wg.Done()
		searchCtx, cancel := context.WithTimeout(ctx, e.searchTimeout)
		defer cancel()
		if buses, err := e.buses.Search(searchCtx, from, to, date); err == nil {
			inv.buses = buses
		}
	}()
	wg.Wait()

	return inv
}

// resolveScores obtains the four per-mode reliability scores concurrently.
// Resolve never fails, so all four are always present before synthesis.
func (e *RouteEngine) resolveScores(ctx context.Context, routeKey, date string) scores {
	var sc scores
	var wg sync.WaitGroup

	wg.Add(4)
	go func() {
		defer wg.Done()
		sc.train = e.reliability.Resolve(ctx, routeKey, domain.ModeTrain, date)
	}()
	go func() {
		defer wg.Done()
		sc.flight = e.reliability.Resolve(ctx, routeKey, domain.ModeFlight, date)
	}()
	go func() {
		defer wg.Done()
		sc.bus = e.reliability.Resolve(ctx, routeKey, domain.ModeBus, date)
	}()
	go func() {
		defer wg.Done()
		sc.taxi = e.reliability.Resolve(ctx, routeKey, domain.ModeTaxi, date)
	}()
	wg.Wait()

	return sc
}

// directTrainRoute builds the single-leg train itinerary from the first
// inventory result.
func (e *RouteEngine) directTrainRoute(origin, destination domain.Location, date string, trains []domain.Train, score domain.ReliabilityScore) *domain.RouteOption {
	if len(trains) == 0 {
		return nil
	}
	best := trains[0]
	price := trainFare(best, defaultTrainFare)

	segment := domain.Segment{
		ID:                      "train-" + uuid.New().String(),
		Type:                    domain.ModeTrain,
		From:                    origin.Name,
		To:                      destination.Name,
		DepartureTime:           best.DepartureTime,
		ArrivalTime:             best.ArrivalTime,
		Duration:                best.Duration,
		Price:                   price,
		Currency:                currencyINR,
		Operator:                best.TrainName,
		Details:                 fmt.Sprintf("Train %s • %s", best.TrainNumber, strings.Join(best.Classes, ", ")),
		Reliability:             score.Reliability,
		DelayProbability:        score.DelayProb,
		CancellationProbability: score.CancelProb,
		BookingLink:             provider.BookingLink(domain.ModeTrain, provider.BookingParams{From: origin.Name, To: destination.Name, Date: date}),
		Icon:                    provider.TransportIcon(domain.ModeTrain),
	}

	return &domain.RouteOption{
		ID:               "route-train-" + uuid.New().String(),
		Name:             fmt.Sprintf("🚆 Direct Train — %s", best.TrainName),
		Segments:         []domain.Segment{segment},
		TotalDuration:    best.Duration,
		DurationMinutes:  ParseDurationMinutes(best.Duration),
		TotalPrice:       price,
		TotalReliability: score.Reliability,
		OptimizationType: domain.OptimizeCheapest,
	}
}

// directFlightRoute builds the taxi + flight + taxi itinerary. Flights only
// make sense past the minimum distance; below it the airport legs dominate.
func (e *RouteEngine) directFlightRoute(origin, destination domain.Location, date string, distance float64, flights []domain.Flight, flightScore, taxiScore domain.ReliabilityScore) *domain.RouteOption {
	if len(flights) == 0 || distance <= flightMinDistanceKm {
		return nil
	}
	best := flights[0]
	airportTaxiFare := EstimateTaxiCost(airportTaxiKm)
	taxiLink := provider.BookingLink(domain.ModeTaxi, provider.BookingParams{From: origin.Name, To: destination.Name, Date: date})

	flightLink := best.BookingLink
	if flightLink == "" {
		flightLink = provider.BookingLink(domain.ModeFlight, provider.BookingParams{
			From: best.FromAirport, To: best.ToAirport, Date: date, Airline: best.Airline,
		})
	}

	segments := []domain.Segment{
		{
			ID:            "taxi-to-airport-" + uuid.New().String(),
			Type:          domain.ModeTaxi,
			From:          origin.Name,
			To:            origin.Name + " Airport",
			DepartureTime: "Flexible",
			ArrivalTime:   "Flexible",
			Duration:      "45 min",
			Price:         airportTaxiFare,
			Currency:      currencyINR,
			Operator:      "Uber / Ola",
			Details:       "Taxi to airport",
			Reliability:   taxiScore.Reliability,
			BookingLink:   taxiLink,
			Icon:          provider.TransportIcon(domain.ModeTaxi),
		},
		{
			ID:                      "flight-" + uuid.New().String(),
			Type:                    domain.ModeFlight,
			From:                    best.FromAirport,
			To:                      best.ToAirport,
			DepartureTime:           best.DepartureTime,
			ArrivalTime:             best.ArrivalTime,
			Duration:                best.Duration,
			Price:                   best.Price,
			Currency:                currencyINR,
			Operator:                airlineName(best),
			Details:                 fmt.Sprintf("Flight %s • %s", best.FlightNumber, stopsLabel(best.Stops)),
			Reliability:             flightScore.Reliability,
			DelayProbability:        flightScore.DelayProb,
			CancellationProbability: flightScore.CancelProb,
			BookingLink:             flightLink,
			Icon:                    provider.TransportIcon(domain.ModeFlight),
		},
		{
			ID:            "taxi-from-airport-" + uuid.New().String(),
			Type:          domain.ModeTaxi,
			From:          destination.Name + " Airport",
			To:            destination.Name,
			DepartureTime: "On arrival",
			ArrivalTime:   "Flexible",
			Duration:      "45 min",
			Price:         airportTaxiFare,
			Currency:      currencyINR,
			Operator:      "Uber / Ola",
			Details:       "Taxi from airport",
			Reliability:   taxiScore.Reliability,
			BookingLink:   taxiLink,
			Icon:          provider.TransportIcon(domain.ModeTaxi),
		},
	}

	return &domain.RouteOption{
		ID:               "route-flight-" + uuid.New().String(),
		Name:             fmt.Sprintf("✈️ Flight — %s", airlineName(best)),
		Segments:         segments,
		TotalDuration:    best.Duration,
		DurationMinutes:  ParseDurationMinutes(best.Duration),
		TotalPrice:       airportTaxiFare + best.Price + airportTaxiFare,
		TotalReliability: flightScore.Reliability,
		OptimizationType: domain.OptimizeFastest,
	}
}

// directBusRoute builds the single-leg bus itinerary.
func (e *RouteEngine) directBusRoute(origin, destination domain.Location, date string, buses []domain.Bus, score domain.ReliabilityScore) *domain.RouteOption {
	if len(buses) == 0 {
		return nil
	}
	best := buses[0]

	bookingLink := best.BookingLink
	if bookingLink == "" {
		bookingLink = provider.BookingLink(domain.ModeBus, provider.BookingParams{From: origin.Name, To: destination.Name, Date: date})
	}

	segment := domain.Segment{
		ID:                      "bus-" + uuid.New().String(),
		Type:                    domain.ModeBus,
		From:                    origin.Name,
		To:                      destination.Name,
		DepartureTime:           best.DepartureTime,
		ArrivalTime:             best.ArrivalTime,
		Duration:                best.Duration,
		Price:                   best.Price,
		Currency:                currencyINR,
		Operator:                best.OperatorName,
		Details:                 fmt.Sprintf("%s • %d seats available • ⭐ %.1f", best.BusType, best.SeatsAvailable, best.Rating),
		Reliability:             score.Reliability,
		DelayProbability:        score.DelayProb,
		CancellationProbability: score.CancelProb,
		SeatsAvailable:          best.SeatsAvailable,
		BookingLink:             bookingLink,
		Icon:                    provider.TransportIcon(domain.ModeBus),
	}

	return &domain.RouteOption{
		ID:               "route-bus-" + uuid.New().String(),
		Name:             fmt.Sprintf("🚌 Bus — %s", best.OperatorName),
		Segments:         []domain.Segment{segment},
		TotalDuration:    best.Duration,
		DurationMinutes:  ParseDurationMinutes(best.Duration),
		TotalPrice:       best.Price,
		TotalReliability: score.Reliability,
		OptimizationType: domain.OptimizeCheapest,
	}
}

// mixedTaxiTrainRoute builds the taxi-to-station + train itinerary using the
// second train result when one exists. Selection is positional, matching the
// inventory provider's ordering.
func (e *RouteEngine) mixedTaxiTrainRoute(origin, destination domain.Location, date string, distance float64, trains []domain.Train, trainScore, taxiScore domain.ReliabilityScore) *domain.RouteOption {
	if len(trains) == 0 || distance <= mixedMinDistanceKm {
		return nil
	}
	train := trains[min(1, len(trains)-1)]

	taxiKm := math.Min(mixedTaxiMaxKm, distance*mixedTaxiShare)
	taxiFare := EstimateTaxiCost(taxiKm)
	taxiMinutes := EstimateTaxiDuration(taxiKm)
	trainPrice := trainFare(train, defaultMixedTrainFare)

	segments := []domain.Segment{
		{
			ID:            "taxi-mix-" + uuid.New().String(),
			Type:          domain.ModeTaxi,
			From:          origin.Name,
			To:            origin.Name + " Junction",
			DepartureTime: "Flexible",
			ArrivalTime:   "Flexible",
			Duration:      fmt.Sprintf("%d min", taxiMinutes),
			Price:         taxiFare,
			Currency:      currencyINR,
			Operator:      "Uber / Ola",
			Details:       "Taxi to railway station",
			Reliability:   taxiScore.Reliability,
			BookingLink:   provider.BookingLink(domain.ModeTaxi, provider.BookingParams{From: origin.Name, To: destination.Name, Date: date}),
			Icon:          provider.TransportIcon(domain.ModeTaxi),
		},
		{
			ID:                      "train-mix-" + uuid.New().String(),
			Type:                    domain.ModeTrain,
			From:                    origin.Name + " Junction",
			To:                      destination.Name,
			DepartureTime:           train.DepartureTime,
			ArrivalTime:             train.ArrivalTime,
			Duration:                train.Duration,
			Price:                   trainPrice,
			Currency:                currencyINR,
			Operator:                train.TrainName,
			Details:                 fmt.Sprintf("Train %s", train.TrainNumber),
			Reliability:             trainScore.Reliability,
			DelayProbability:        trainScore.DelayProb,
			CancellationProbability: trainScore.CancelProb,
			BookingLink:             provider.BookingLink(domain.ModeTrain, provider.BookingParams{From: origin.Name, To: destination.Name, Date: date}),
			Icon:                    provider.TransportIcon(domain.ModeTrain),
		},
	}

	return &domain.RouteOption{
		ID:               "route-multi-" + uuid.New().String(),
		Name:             fmt.Sprintf("🚕+🚆 Taxi + Train — %s", train.TrainName),
		Segments:         segments,
		TotalDuration:    train.Duration,
		DurationMinutes:  ParseDurationMinutes(train.Duration),
		TotalPrice:       taxiFare + trainPrice,
		TotalReliability: math.Round((taxiScore.Reliability + trainScore.Reliability) / 2),
		OptimizationType: domain.OptimizeReliable,
	}
}

// taxiOnlyRoute builds the door-to-door taxi itinerary for short journeys.
func (e *RouteEngine) taxiOnlyRoute(origin, destination domain.Location, date string, distance float64, score domain.ReliabilityScore) *domain.RouteOption {
	if distance >= taxiMaxDistanceKm {
		return nil
	}
	fare := EstimateTaxiCost(distance)
	minutes := EstimateTaxiDuration(distance)
	duration := FormatMinutes(minutes)

	segment := domain.Segment{
		ID:                      "taxi-direct-" + uuid.New().String(),
		Type:                    domain.ModeTaxi,
		From:                    origin.Name,
		To:                      destination.Name,
		DepartureTime:           "Flexible",
		ArrivalTime:             "Flexible",
		Duration:                duration,
		Price:                   fare,
		Currency:                currencyINR,
		Operator:                "Uber / Ola",
		Details:                 fmt.Sprintf("%d km drive", int(math.Round(distance))),
		Reliability:             score.Reliability,
		DelayProbability:        score.DelayProb,
		CancellationProbability: score.CancelProb,
		BookingLink:             provider.BookingLink(domain.ModeTaxi, provider.BookingParams{From: origin.Name, To: destination.Name, Date: date}),
		Icon:                    provider.TransportIcon(domain.ModeTaxi),
	}

	return &domain.RouteOption{
		ID:               "route-taxi-" + uuid.New().String(),
		Name:             "🚕 Direct Taxi",
		Segments:         []domain.Segment{segment},
		TotalDuration:    duration,
		DurationMinutes:  minutes,
		TotalPrice:       fare,
		TotalReliability: score.Reliability,
		OptimizationType: domain.OptimizeReliable,
	}
}

// trainFare picks the 3rd-AC fare, then sleeper, then the fallback.
func trainFare(t domain.Train, fallback int) int {
	if p, ok := t.Price["3A"]; ok && p > 0 {
		return p
	}
	if p, ok := t.Price["SL"]; ok && p > 0 {
		return p
	}
	return fallback
}

func airlineName(f domain.Flight) string {
	if f.AirlineName != "" {
		return f.AirlineName
	}
	return f.Airline
}

func stopsLabel(stops int) string {
	if stops == 0 {
		return "Non-stop"
	}
	return fmt.Sprintf("%d stop(s)", stops)
}


package service

import (
	"math"
	"testing"
)

func TestHaversineKm(t *testing.T) {
	// Mumbai to Pune, known to be roughly 120 km great-circle.
	got := HaversineKm(19.076, 72.8777, 18.5204, 73.8567)
	if math.Abs(got-120) > 5 {
		t.Errorf("HaversineKm(Mumbai, Pune) = %.1f, want ~120", got)
	}

	if got := HaversineKm(19.076, 72.8777, 19.076, 72.8777); got != 0 {
		t.Errorf("HaversineKm(identical points) = %v, want 0", got)
	}

	// Symmetric in its endpoints.
	ab := HaversineKm(19.076, 72.8777, 28.7041, 77.1025)
	ba := HaversineKm(28.7041, 77.1025, 19.076, 72.8777)
	if math.Abs(ab-ba) > 1e-9 {
		t.Errorf("HaversineKm not symmetric: %v vs %v", ab, ba)
	}
}

func TestEstimateTaxiCost(t *testing.T) {
	if got := EstimateTaxiCost(0); got != 100 {
		t.Errorf("EstimateTaxiCost(0) = %d, want the base fare 100", got)
	}
	if got := EstimateTaxiCost(25); got != 400 {
		t.Errorf("EstimateTaxiCost(25) = %d, want 400", got)
	}
	if got := EstimateTaxiCost(10.5); got != 226 {
		t.Errorf("EstimateTaxiCost(10.5) = %d, want 226", got)
	}
}

func TestEstimateTaxiDuration(t *testing.T) {
	if got := EstimateTaxiDuration(35); got != 60 {
		t.Errorf("EstimateTaxiDuration(35) = %d, want 60", got)
	}
	if got := EstimateTaxiDuration(0); got != 0 {
		t.Errorf("EstimateTaxiDuration(0) = %d, want 0", got)
	}
	if got := EstimateTaxiDuration(119); got != 204 {
		t.Errorf("EstimateTaxiDuration(119) = %d, want 204", got)
	}
}

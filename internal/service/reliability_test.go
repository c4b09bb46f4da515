package service

import (
	"context"
	"errors"
	"testing"

	"safar/internal/domain"
	"safar/internal/provider"
)

func TestResolveDefaultsWhenPredictorFails(t *testing.T) {
	svc := NewReliabilityService(&failingPredictor{})
	ctx := context.Background()

	tests := []struct {
		mode        domain.TransportMode
		reliability float64
		delayProb   float64
		cancelProb  float64
	}{
		{domain.ModeFlight, 85, 0.15, 0.02},
		{domain.ModeTrain, 70, 0.35, 0.05},
		{domain.ModeBus, 75, 0.25, 0.03},
		{domain.ModeTaxi, 95, 0.05, 0.01},
	}
	for _, tt := range tests {
		got := svc.Resolve(ctx, "BOM-PNQ", tt.mode, "2026-09-15")
		if got.Reliability != tt.reliability || got.DelayProb != tt.delayProb || got.CancelProb != tt.cancelProb {
			t.Errorf("Resolve(%s) = %+v, want {%v %v %v}", tt.mode, got, tt.reliability, tt.delayProb, tt.cancelProb)
		}
	}
}

func TestResolveNilPredictor(t *testing.T) {
	svc := NewReliabilityService(nil)

	got := svc.Resolve(context.Background(), "BOM-PNQ", domain.ModeTrain, "2026-09-15")
	if got.Reliability != 70 {
		t.Errorf("Resolve without a predictor = %+v, want the train default", got)
	}
}

func TestResolveUnknownModeFallback(t *testing.T) {
	svc := NewReliabilityService(nil)

	got := svc.Resolve(context.Background(), "BOM-PNQ", domain.TransportMode("ferry"), "2026-09-15")
	if got.Reliability != 75 || got.DelayProb != 0.2 || got.CancelProb != 0.05 {
		t.Errorf("Resolve(ferry) = %+v, want the generic fallback", got)
	}
}

func TestResolveLivePredictions(t *testing.T) {
	svc := NewReliabilityService(&stubPredictor{
		delay:  provider.DelayPrediction{ReliabilityScore: 91, DelayProbability: 0.08},
		cancel: provider.CancellationPrediction{CancellationProbability: 0.015},
	})

	got := svc.Resolve(context.Background(), "BOM-DEL", domain.ModeFlight, "2026-09-15")
	if got.Reliability != 91 || got.DelayProb != 0.08 || got.CancelProb != 0.015 {
		t.Errorf("Resolve = %+v, want the live prediction", got)
	}
}

func TestResolvePartialFailureDiscardsLiveResult(t *testing.T) {
	// The delay call succeeds but the cancellation call fails: the partial
	// live result must not leak into the score.
	svc := NewReliabilityService(&stubPredictor{
		delay:     provider.DelayPrediction{ReliabilityScore: 91, DelayProbability: 0.08},
		cancelErr: errors.New("timeout"),
	})

	got := svc.Resolve(context.Background(), "BOM-DEL", domain.ModeFlight, "2026-09-15")
	if got.Reliability != 85 || got.DelayProb != 0.15 || got.CancelProb != 0.02 {
		t.Errorf("Resolve = %+v, want the flight default", got)
	}
}

func TestResolveZeroFieldsUseFallback(t *testing.T) {
	svc := NewReliabilityService(&stubPredictor{
		delay:  provider.DelayPrediction{},
		cancel: provider.CancellationPrediction{},
	})

	got := svc.Resolve(context.Background(), "BOM-DEL", domain.ModeBus, "2026-09-15")
	if got.Reliability != 75 || got.DelayProb != 0.2 || got.CancelProb != 0.05 {
		t.Errorf("Resolve = %+v, want fallback-filled fields", got)
	}
}

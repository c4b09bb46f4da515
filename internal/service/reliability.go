package service

import (
	"context"

	"safar/internal/domain"
	"safar/internal/provider"
)

// Predictor is the ML prediction service contract. Both calls may fail with
// a timeout or transport error; failures are handled here, never propagated.
type Predictor interface {
	PredictDelay(ctx context.Context, route string, mode domain.TransportMode, date string) (*provider.DelayPrediction, error)
	PredictCancellation(ctx context.Context, route string, mode domain.TransportMode, date string) (*provider.CancellationPrediction, error)
}

// Ensure the HTTP client satisfies the contract.
var _ Predictor = (*provider.PredictionClient)(nil)

// ReliabilityService resolves per-mode reliability scores for a route,
// preferring the live prediction service and falling back to fixed per-mode
// defaults when it is unavailable.
type ReliabilityService struct {
	predictor Predictor
	defaults  map[domain.TransportMode]domain.ReliabilityScore
	fallback  domain.ReliabilityScore
}

// NewReliabilityService creates a new ReliabilityService.
func NewReliabilityService(predictor Predictor) *ReliabilityService {
	return &ReliabilityService{
		predictor: predictor,
		defaults:  defaultScores(),
		fallback:  domain.ReliabilityScore{Reliability: 75, DelayProb: 0.2, CancelProb: 0.05},
	}
}

// defaultScores returns the fixed per-mode scores used when the prediction
// service cannot be reached.
func defaultScores() map[domain.TransportMode]domain.ReliabilityScore {
	return map[domain.TransportMode]domain.ReliabilityScore{
		domain.ModeFlight: {Reliability: 85, DelayProb: 0.15, CancelProb: 0.02},
		domain.ModeTrain:  {Reliability: 70, DelayProb: 0.35, CancelProb: 0.05},
		domain.ModeBus:    {Reliability: 75, DelayProb: 0.25, CancelProb: 0.03},
		domain.ModeTaxi:   {Reliability: 95, DelayProb: 0.05, CancelProb: 0.01},
	}
}

// Resolve returns the reliability score for a route and mode. It always
// returns a value: if either prediction call fails, both partial results are
// discarded and the mode's fixed default is returned, so a score is never
// half live and half default.
func (s *ReliabilityService) Resolve(ctx context.Context, route string, mode domain.TransportMode, date string) domain.ReliabilityScore {
	if s.predictor == nil {
		return s.defaultFor(mode)
	}

	delay, err := s.predictor.PredictDelay(ctx, route, mode, date)
	if err != nil {
		return s.defaultFor(mode)
	}

	cancel, err := s.predictor.PredictCancellation(ctx, route, mode, date)
	if err != nil {
		return s.defaultFor(mode)
	}

	score := domain.ReliabilityScore{
		Reliability: delay.ReliabilityScore,
		DelayProb:   delay.DelayProbability,
		CancelProb:  cancel.CancellationProbability,
	}
	if score.Reliability == 0 {
		score.Reliability = s.fallback.Reliability
	}
	if score.DelayProb == 0 {
		score.DelayProb = s.fallback.DelayProb
	}
	if score.CancelProb == 0 {
		score.CancelProb = s.fallback.CancelProb
	}
	return score
}

func (s *ReliabilityService) defaultFor(mode domain.TransportMode) domain.ReliabilityScore {
	if score, ok := s.defaults[mode]; ok {
		return score
	}
	return s.fallback
}

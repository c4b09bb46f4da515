package domain

// ReliabilityScore is the per-mode reliability snapshot for a route.
// Reliability is a 0-100 confidence value; the probabilities are 0-1.
// Scores are transient and recomputed on every request.
type ReliabilityScore struct {
	Reliability float64
	DelayProb   float64
	CancelProb  float64
}

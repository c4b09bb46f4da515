package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"safar/internal/domain"
)

// DelayPrediction is the ML service response for a delay prediction.
type DelayPrediction struct {
	ReliabilityScore float64 `json:"reliability_score"`
	DelayProbability float64 `json:"delay_probability"`
	ExpectedDelayMin float64 `json:"expected_delay_minutes"`
}

// CancellationPrediction is the ML service response for a cancellation
// prediction.
type CancellationPrediction struct {
	CancellationProbability float64 `json:"cancellation_probability"`
	ReliabilityScore        float64 `json:"reliability_score"`
}

// predictionRequest is the ML service request body.
type predictionRequest struct {
	Route         string `json:"route"`
	TransportType string `json:"transport_type"`
	Date          string `json:"date"`
}

// PredictionClient calls the reliability prediction service. Each call is
// bounded by a short timeout; callers treat any error as "service
// unavailable" and fall back to defaults.
type PredictionClient struct {
	baseURL string
	client  *http.Client
}

// NewPredictionClient creates a new PredictionClient.
func NewPredictionClient(baseURL string, timeout time.Duration) *PredictionClient {
	return &PredictionClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// PredictDelay calls POST /predict-delay.
func (c *PredictionClient) PredictDelay(ctx context.Context, route string, mode domain.TransportMode, date string) (*DelayPrediction, error) {
	var out DelayPrediction
	if err := c.post(ctx, "/predict-delay", route, mode, date, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PredictCancellation calls POST /predict-cancellation.
func (c *PredictionClient) PredictCancellation(ctx context.Context, route string, mode domain.TransportMode, date string) (*CancellationPrediction, error) {
	var out CancellationPrediction
	if err := c.post(ctx, "/predict-cancellation", route, mode, date, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *PredictionClient) post(ctx context.Context, path, route string, mode domain.TransportMode, date string, out any) error {
	body, err := json.Marshal(predictionRequest{
		Route:         route,
		TransportType: string(mode),
		Date:          date,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("prediction service returned status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

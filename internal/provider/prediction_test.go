package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"safar/internal/domain"
)

func TestPredictionClient(t *testing.T) {
	var gotPath string
	var gotReq predictionRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		switch r.URL.Path {
		case "/predict-delay":
			json.NewEncoder(w).Encode(DelayPrediction{ReliabilityScore: 88, DelayProbability: 0.12, ExpectedDelayMin: 10})
		case "/predict-cancellation":
			json.NewEncoder(w).Encode(CancellationPrediction{CancellationProbability: 0.03, ReliabilityScore: 88})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := NewPredictionClient(server.URL, time.Second)
	ctx := context.Background()

	delay, err := client.PredictDelay(ctx, "BOM-DEL", domain.ModeFlight, "2026-09-15")
	if err != nil {
		t.Fatalf("PredictDelay: %v", err)
	}
	if gotPath != "/predict-delay" {
		t.Errorf("path = %q", gotPath)
	}
	if gotReq.Route != "BOM-DEL" || gotReq.TransportType != "flight" || gotReq.Date != "2026-09-15" {
		t.Errorf("request body = %+v", gotReq)
	}
	if delay.ReliabilityScore != 88 || delay.DelayProbability != 0.12 {
		t.Errorf("delay prediction = %+v", delay)
	}

	cancel, err := client.PredictCancellation(ctx, "BOM-DEL", domain.ModeFlight, "2026-09-15")
	if err != nil {
		t.Fatalf("PredictCancellation: %v", err)
	}
	if cancel.CancellationProbability != 0.03 {
		t.Errorf("cancellation prediction = %+v", cancel)
	}
}

func TestPredictionClientErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewPredictionClient(server.URL, time.Second)
	if _, err := client.PredictDelay(context.Background(), "BOM-DEL", domain.ModeFlight, "2026-09-15"); err == nil {
		t.Error("expected an error for a non-200 response")
	}
}

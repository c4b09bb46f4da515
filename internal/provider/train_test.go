package provider

import (
	"context"
	"testing"
	"time"
)

func TestTrainSearchFallbackWithoutAPIKey(t *testing.T) {
	svc := NewTrainService("", time.Second)

	trains, err := svc.Search(context.Background(), "Mumbai", "Pune", "2026-09-15")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(trains) < 3 || len(trains) > 5 {
		t.Fatalf("expected 3-5 fallback trains, got %d", len(trains))
	}

	for i, tr := range trains {
		if tr.TrainName == "" || tr.TrainNumber == "" {
			t.Errorf("train %d missing identity: %+v", i, tr)
		}
		if tr.FromStation != "Mumbai" || tr.ToStation != "Pune" {
			t.Errorf("train %d stations = %s-%s", i, tr.FromStation, tr.ToStation)
		}
		if len(tr.Classes) < 2 {
			t.Errorf("train %d has %d classes, want at least SL and 3A", i, len(tr.Classes))
		}
		if tr.Price["SL"] != 350+i*50 {
			t.Errorf("train %d SL fare = %d, want %d", i, tr.Price["SL"], 350+i*50)
		}
		if tr.Price["3A"] != 900+i*100 {
			t.Errorf("train %d 3A fare = %d, want %d", i, tr.Price["3A"], 900+i*100)
		}
	}
}

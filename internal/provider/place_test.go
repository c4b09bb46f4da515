package provider

import (
	"context"
	"testing"
)

func TestPlaceAutocomplete(t *testing.T) {
	svc := NewPlaceService()
	ctx := context.Background()

	matches, err := svc.Autocomplete(ctx, "mum")
	if err != nil {
		t.Fatalf("Autocomplete: %v", err)
	}
	if len(matches) != 1 || matches[0].MainText != "Mumbai" {
		t.Errorf("Autocomplete(mum) = %+v, want Mumbai", matches)
	}

	matches, err = svc.Autocomplete(ctx, "  DEL ")
	if err != nil {
		t.Fatalf("Autocomplete: %v", err)
	}
	if len(matches) != 1 || matches[0].MainText != "Delhi" {
		t.Errorf("Autocomplete(DEL) = %+v, want Delhi", matches)
	}

	matches, err = svc.Autocomplete(ctx, "")
	if err != nil || matches != nil {
		t.Errorf("empty query = %v, %v, want no suggestions", matches, err)
	}

	matches, err = svc.Autocomplete(ctx, "zzz")
	if err != nil || len(matches) != 0 {
		t.Errorf("unmatched query = %v, %v, want no suggestions", matches, err)
	}
}

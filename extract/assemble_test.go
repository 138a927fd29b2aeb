package extract

import (
	"strings"
	"testing"
)

func TestAirportCode(t *testing.T) {
	tests := []struct {
		location string
		want     string
	}{
		{"Glasgow", "GLA"},
		{"chennai", "MAA"},
		{"London Heathrow", "LHR"},
		{"Dubai", "DXB"},
		{"Paris", "PAR"},
		{"NY", "NY"},
	}
	for _, tt := range tests {
		if got := AirportCode(tt.location); got != tt.want {
			t.Errorf("AirportCode(%q) = %q, want %q", tt.location, got, tt.want)
		}
	}
}

func TestBuildOffer(t *testing.T) {
	q := Query{Origin: "glasgow", Destination: "chennai"}
	offer := buildOffer(q, offerFields{
		id:          "proximity_1",
		provider:    "Google Flights (Proximity)",
		airline:     "Emirates",
		price:       701,
		duration:    "13h 00m",
		stops:       1,
		stopDetails: "1 stop",
		depart:      "2:35",
		arrive:      "8:05",
		logoSeed:    7,
	})

	if offer.From.Code != "GLA" || offer.To.Code != "MAA" {
		t.Errorf("codes = %q/%q, want GLA/MAA", offer.From.Code, offer.To.Code)
	}
	if offer.From.Airport != "Glasgow" || offer.To.Airport != "Chennai" {
		t.Errorf("airports = %q/%q, want title-cased city names", offer.From.Airport, offer.To.Airport)
	}
	if len(offer.Legs) != 1 {
		t.Fatalf("len(Legs) = %d, want exactly 1", len(offer.Legs))
	}

	leg := offer.Legs[0]
	if leg.Airline != "Emirates" || leg.Duration != "13h 00m" || leg.Stops != "1 stop" {
		t.Errorf("leg = %+v, want airline/duration/stops echoed", leg)
	}
	if !strings.Contains(leg.AirlineLogoURL, "random=7") {
		t.Errorf("AirlineLogoURL = %q, want the logo seed in the URL", leg.AirlineLogoURL)
	}
	if leg.FromCode != "GLA" || leg.ToCode != "MAA" {
		t.Errorf("leg codes = %q/%q, want GLA/MAA", leg.FromCode, leg.ToCode)
	}
}

func TestContextAirlineJoinsCarriers(t *testing.T) {
	got := contextAirline("codeshare KLM with IndiGo on this route", Query{}, 0, 650)
	if got != "IndiGo, KLM" {
		t.Errorf("contextAirline = %q, want IndiGo, KLM", got)
	}
}

package search

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/use-agent/farescan/config"
	"github.com/use-agent/farescan/models"
)

type stubFetcher struct {
	body  string
	calls int
	urls  []string
}

func (s *stubFetcher) Fetch(_ context.Context, url string) string {
	s.calls++
	s.urls = append(s.urls, url)
	return s.body
}

func testConfig() *config.Config {
	return &config.Config{
		Fetch:  config.FetchConfig{Timeout: 5 * time.Second, MaxBodyBytes: 1 << 20},
		Search: config.SearchConfig{Currency: "GBP", Country: "uk", Language: "en"},
	}
}

func TestSearchSuccess(t *testing.T) {
	stub := &stubFetcher{body: `<html><body><p>Great deals from £550 and £720 today</p></body></html>`}
	svc := NewService(stub, testConfig())

	result := svc.Search(context.Background(), models.SearchParams{
		Origin:        "London",
		Destination:   "Dubai",
		DepartureDate: "2025-09-24",
		Passengers:    2,
	})

	if result.Error != "" {
		t.Fatalf("Error = %q, want empty", result.Error)
	}
	if result.TotalResults != 2 || len(result.Flights) != 2 {
		t.Errorf("TotalResults = %d, Flights = %d, want 2 each", result.TotalResults, len(result.Flights))
	}
	if result.Provider != "Google Flights" {
		t.Errorf("Provider = %q, want Google Flights", result.Provider)
	}
	if !strings.Contains(result.SearchParams.URL, "google.com/travel/flights") {
		t.Errorf("SearchParams.URL = %q, want the built search URL echoed", result.SearchParams.URL)
	}
}

func TestSearchFetchFailure(t *testing.T) {
	stub := &stubFetcher{body: ""}
	svc := NewService(stub, testConfig())

	result := svc.Search(context.Background(), models.SearchParams{
		Origin:      "London",
		Destination: "Dubai",
		Passengers:  1,
	})

	if result.Error == "" {
		t.Error("Error is empty, want a failure message in the envelope")
	}
	if result.Flights == nil || len(result.Flights) != 0 {
		t.Errorf("Flights = %v, want empty non-nil slice", result.Flights)
	}
	if result.TotalResults != 0 {
		t.Errorf("TotalResults = %d, want 0", result.TotalResults)
	}
	if result.SearchParams.Origin != "London" {
		t.Errorf("SearchParams not echoed: %+v", result.SearchParams)
	}
}

func TestSearchURLOverride(t *testing.T) {
	stub := &stubFetcher{body: ""}
	svc := NewService(stub, testConfig())

	override := "https://example.com/results?page=1"
	svc.Search(context.Background(), models.SearchParams{
		Origin:      "London",
		Destination: "Dubai",
		URL:         override,
	})

	if len(stub.urls) != 1 || stub.urls[0] != override {
		t.Errorf("fetched %v, want the override URL only", stub.urls)
	}
}

func TestSearchDefaultsPassengers(t *testing.T) {
	stub := &stubFetcher{body: ""}
	svc := NewService(stub, testConfig())

	result := svc.Search(context.Background(), models.SearchParams{
		Origin:      "London",
		Destination: "Dubai",
	})

	if result.SearchParams.Passengers != 1 {
		t.Errorf("Passengers = %d, want defaulted to 1", result.SearchParams.Passengers)
	}
}

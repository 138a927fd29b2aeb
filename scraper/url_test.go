package scraper

import (
	"testing"

	"github.com/use-agent/farescan/config"
	"github.com/use-agent/farescan/models"
)

func TestBuildSearchURL(t *testing.T) {
	cfg := config.SearchConfig{Currency: "GBP", Country: "uk", Language: "en"}

	t.Run("round trip", func(t *testing.T) {
		got := BuildSearchURL(models.SearchParams{
			Origin:        "Glasgow",
			Destination:   "Chennai",
			DepartureDate: "2025-09-24",
			ReturnDate:    "2025-10-08",
			Passengers:    2,
		}, cfg)

		want := "https://www.google.com/travel/flights?curr=GBP&gl=uk&hl=en&q=Flights+to+Chennai+from+Glasgow+for+2+adults+on+2025-09-24+through+2025-10-08"
		if got != want {
			t.Errorf("BuildSearchURL = %q, want %q", got, want)
		}
	})

	t.Run("one way", func(t *testing.T) {
		got := BuildSearchURL(models.SearchParams{
			Origin:        "London",
			Destination:   "Dubai",
			DepartureDate: "2025-09-24",
			Passengers:    1,
		}, cfg)

		want := "https://www.google.com/travel/flights?curr=GBP&gl=uk&hl=en&q=Flights+to+Dubai+from+London+for+1+adults+on+2025-09-24"
		if got != want {
			t.Errorf("BuildSearchURL = %q, want %q", got, want)
		}
	})
}

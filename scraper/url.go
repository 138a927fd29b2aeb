package scraper

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/use-agent/farescan/config"
	"github.com/use-agent/farescan/models"
)

// BuildSearchURL composes the natural-language travel search URL for the
// given parameters. The query is phrased the way a person would type it,
// which is the form the results page renders best for.
func BuildSearchURL(params models.SearchParams, cfg config.SearchConfig) string {
	var q strings.Builder
	fmt.Fprintf(&q, "Flights to %s from %s for %d adults on %s",
		params.Destination, params.Origin, params.Passengers, params.DepartureDate)
	if params.ReturnDate != "" {
		fmt.Fprintf(&q, " through %s", params.ReturnDate)
	}

	v := url.Values{}
	v.Set("q", q.String())
	v.Set("curr", cfg.Currency)
	v.Set("gl", cfg.Country)
	v.Set("hl", cfg.Language)

	return "https://www.google.com/travel/flights?" + v.Encode()
}

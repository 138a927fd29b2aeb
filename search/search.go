// Package search orchestrates one flight search end to end: build or accept
// a results-page URL, fetch it, run the extraction cascade, and wrap the
// offers in a result envelope. Failures degrade to an envelope with an error
// string and zero flights; nothing escapes as a panic or error value past
// this layer.
package search

import (
	"context"
	"log/slog"
	"time"

	"github.com/use-agent/farescan/config"
	"github.com/use-agent/farescan/extract"
	"github.com/use-agent/farescan/models"
	"github.com/use-agent/farescan/scraper"
)

// Fetcher retrieves a URL's body, returning "" on any failure.
type Fetcher interface {
	Fetch(ctx context.Context, url string) string
}

// Service runs flight searches.
type Service struct {
	fetcher Fetcher
	cfg     *config.Config
}

// NewService creates a search service.
func NewService(fetcher Fetcher, cfg *config.Config) *Service {
	return &Service{fetcher: fetcher, cfg: cfg}
}

// Search performs one search and always returns a populated envelope. An
// explicit params.URL overrides the composed search URL.
func (s *Service) Search(ctx context.Context, params models.SearchParams) models.SearchResult {
	if params.Passengers < 1 {
		params.Passengers = 1
	}

	targetURL := params.URL
	if targetURL == "" {
		targetURL = scraper.BuildSearchURL(params, s.cfg.Search)
	}
	params.URL = targetURL

	start := time.Now()
	markup := s.fetcher.Fetch(ctx, targetURL)
	if markup == "" {
		ferr := models.NewSearchError(models.ErrCodeFetchFailed, "failed to fetch search results page", nil)
		slog.Warn("search: fetch returned no content",
			"origin", params.Origin, "destination", params.Destination,
			"url", targetURL, "error", ferr)
		return models.SearchResult{
			Flights:      []models.Offer{},
			TotalResults: 0,
			SearchParams: params,
			Provider:     "Google Flights",
			Error:        ferr.Message,
		}
	}

	scraper.DumpPage(markup, s.cfg.Debug)

	offers := extract.Offers(markup, params.Origin, params.Destination)
	if offers == nil {
		offers = []models.Offer{}
	}
	slog.Info("search: completed",
		"origin", params.Origin,
		"destination", params.Destination,
		"offers", len(offers),
		"page_bytes", len(markup),
		"elapsed", time.Since(start))

	return models.SearchResult{
		Flights:      offers,
		TotalResults: len(offers),
		SearchParams: params,
		Provider:     "Google Flights",
	}
}

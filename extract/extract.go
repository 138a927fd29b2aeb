// Package extract turns loosely-structured travel-search result markup into
// flight offers.
//
// It is a strict priority cascade of five strategies, each one a fallback for
// the one before it: DOM-proximity price scanning, selector-based container
// scanning, script-tag JSON sniffing, whole-page text mining, and a static
// price-to-itinerary lookup table. The first strategy to produce at least one
// offer wins; partial results are never merged across strategies.
//
// The cascade trades precision for recall on purpose. When the page structure
// has changed or scraping was blocked, the later strategies fabricate
// plausible-looking offers from whatever price strings survive — downstream
// consumers expect a non-empty itinerary list, and "never throw past the top"
// is a hard contract here.
package extract

import (
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/use-agent/farescan/models"
)

// maxOffers caps the result set regardless of how many candidates are found.
const maxOffers = 8

// Query identifies the route being searched.
type Query struct {
	Origin      string
	Destination string
}

// strategy is one extraction tactic of uniform signature. run returns the
// offers it could build, or an empty slice when it found nothing usable.
type strategy struct {
	name string
	run  func(p *page, q Query) []models.Offer
}

// page bundles the parsed document with its raw markup. The visible-text
// projection is built lazily because only the later strategies need it.
type page struct {
	markup string
	doc    *goquery.Document
	root   *html.Node

	text      string
	textBuilt bool
}

func (p *page) visibleText() string {
	if !p.textBuilt {
		p.text = visibleText(p.markup)
		p.textBuilt = true
	}
	return p.text
}

// priceSet tracks prices already consumed within one strategy run.
// Deduplication is by price alone: two distinct itineraries that happen to
// share a fare collapse into one offer. That is preserved source behavior,
// not an accident.
type priceSet map[int]struct{}

func (s priceSet) has(price int) bool {
	_, ok := s[price]
	return ok
}

func (s priceSet) add(price int) {
	s[price] = struct{}{}
}

// Offers runs the extraction cascade over markup for the given route.
// It returns at most maxOffers offers, or nil when the markup is empty,
// unparseable, or contains no price-like text at all.
func Offers(markup, origin, destination string) []models.Offer {
	return run(markup, Query{Origin: origin, Destination: destination}, strategies())
}

func strategies() []strategy {
	return []strategy{
		{name: "proximity", run: proximityScan},
		{name: "selector", run: selectorScan},
		{name: "script", run: scriptScan},
		{name: "textmine", run: textMine},
		{name: "lookup", run: lookupScan},
	}
}

func run(markup string, q Query, strats []strategy) []models.Offer {
	if strings.TrimSpace(markup) == "" {
		return nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		slog.Warn("extract: markup parse failed", "error", err)
		return nil
	}

	p := &page{
		markup: markup,
		doc:    doc,
		root:   doc.Get(0),
	}

	for _, s := range strats {
		offers := s.run(p, q)
		if len(offers) == 0 {
			slog.Debug("extract: strategy yielded nothing, falling back",
				"strategy", s.name,
			)
			continue
		}
		if len(offers) > maxOffers {
			offers = offers[:maxOffers]
		}
		slog.Debug("extract: strategy succeeded",
			"strategy", s.name, "offers", len(offers),
		)
		return offers
	}

	return nil
}

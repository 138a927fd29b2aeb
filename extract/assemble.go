package extract

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/use-agent/farescan/models"
)

// airportCodes maps known city names to IATA codes. Static reference data.
var airportCodes = map[string]string{
	"glasgow":    "GLA",
	"chennai":    "MAA",
	"london":     "LHR",
	"manchester": "MAN",
	"birmingham": "BHX",
	"edinburgh":  "EDI",
	"delhi":      "DEL",
	"mumbai":     "BOM",
	"dubai":      "DXB",
	"doha":       "DOH",
}

// AirportCode resolves a city or airport name to an IATA code: exact match,
// then substring containment, then the first three letters uppercased.
func AirportCode(location string) string {
	lower := strings.ToLower(strings.TrimSpace(location))
	if code, ok := airportCodes[lower]; ok {
		return code
	}
	for city, code := range airportCodes {
		if strings.Contains(lower, city) {
			return code
		}
	}
	if len(lower) >= 3 {
		return strings.ToUpper(lower[:3])
	}
	return strings.ToUpper(lower)
}

// offerFields carries the normalized values one strategy extracted for a
// single candidate.
type offerFields struct {
	id          string
	provider    string
	airline     string
	price       int
	duration    string
	stops       int
	stopDetails string
	depart      string
	arrive      string
	logoSeed    int
}

// buildOffer combines normalized fields and static airport lookups into the
// output record shape. Pure combination: validation happened upstream in the
// normalizers, deduplication at the cascade level.
func buildOffer(q Query, f offerFields) models.Offer {
	fromCode := AirportCode(q.Origin)
	toCode := AirportCode(q.Destination)

	return models.Offer{
		ID:          f.id,
		Provider:    f.provider,
		Airline:     f.airline,
		Price:       f.price,
		Duration:    f.duration,
		Stops:       f.stops,
		StopDetails: f.stopDetails,
		From: models.Endpoint{
			Code:    fromCode,
			Time:    f.depart,
			Airport: titleCase(q.Origin),
		},
		To: models.Endpoint{
			Code:    toCode,
			Time:    f.arrive,
			Airport: titleCase(q.Destination),
		},
		Legs: []models.Leg{{
			Airline:        f.airline,
			AirlineLogoURL: fmt.Sprintf("https://picsum.photos/40/40?random=%d", f.logoSeed),
			DepartureTime:  f.depart,
			ArrivalTime:    f.arrive,
			Duration:       f.duration,
			Stops:          f.stopDetails,
			FromCode:       fromCode,
			ToCode:         toCode,
		}},
	}
}

// offerFromContext runs every field normalizer over one price context and
// assembles the result. Shared by the DOM-proximity and selector strategies.
func offerFromContext(ctx string, q Query, price, idx int, id, provider string, logoSeed int) models.Offer {
	stops, details := ResolveStops(ctx, price)
	depart, arrive := ResolveTimes(ctx, idx)

	return buildOffer(q, offerFields{
		id:          id,
		provider:    provider,
		airline:     contextAirline(ctx, q, idx, price),
		price:       price,
		duration:    ResolveDuration(ctx, idx),
		stops:       stops,
		stopDetails: details,
		depart:      depart,
		arrive:      arrive,
		logoSeed:    logoSeed,
	})
}

// contextAirline prefers carriers named directly in the context, comma-joining
// up to two for multi-carrier itineraries, before falling back to the full
// resolution chain.
func contextAirline(ctx string, q Query, idx, price int) string {
	if names := carriersIn(ctx, 2); len(names) > 0 {
		return strings.Join(names, ", ")
	}
	return ResolveAirline(ctx, q, idx, price)
}

// titleCase uppercases the first letter of each word, matching how the
// echoed airport names are rendered.
func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

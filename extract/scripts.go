package extract

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ysmood/gson"

	"github.com/use-agent/farescan/models"
)

var (
	// scriptHintRe gates which script payloads are worth sniffing at all.
	scriptHintRe = regexp.MustCompile(`(?i)"(?:price|duration|airline|carrier|flight)"?\s*:`)

	// jsonObjectRe pulls flat JSON-shaped substrings that mention a
	// price-like key. Nested objects are out of reach — this is a sniff,
	// not a parser.
	jsonObjectRe = regexp.MustCompile(`\{[^{}]*"(?:price|cost)"\s*:[^{}]*\}`)

	nonDigitRe = regexp.MustCompile(`[^\d]`)
)

// scriptScan is strategy (c): sniff embedded script payloads for JSON-shaped
// substrings and accept any object that parses forgivingly and carries an
// in-band price-like value. Malformed candidates are discarded silently.
func scriptScan(p *page, q Query) []models.Offer {
	seen := make(priceSet)
	var offers []models.Offer

	p.doc.Find("script").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		content := s.Text()
		if content == "" || !scriptHintRe.MatchString(content) {
			return true
		}

		for _, raw := range jsonObjectRe.FindAllString(content, -1) {
			obj := gson.NewFrom(raw)

			price, ok := gsonPrice(obj)
			if !ok || seen.has(price) || !scriptBand.contains(price) {
				continue
			}
			seen.add(price)

			idx := len(offers)
			offers = append(offers, scriptOffer(obj, raw, q, price, idx))
			if len(offers) >= maxOffers {
				return false
			}
		}
		return true
	})

	return offers
}

// scriptOffer builds an offer from one sniffed JSON object, filling whatever
// the object doesn't carry with the script-path defaults.
func scriptOffer(obj gson.JSON, raw string, q Query, price, idx int) models.Offer {
	airline := gsonString(obj, "airline")
	if airline == "" {
		airline = gsonString(obj, "carrier")
	}
	if airline == "" {
		airline = ResolveAirline(raw, q, idx, price)
	}

	duration := ResolveDuration(gsonString(obj, "duration"), idx)

	depart := gsonString(obj, "departureTime")
	if depart == "" {
		depart = "10:00"
	}
	arrive := gsonString(obj, "arrivalTime")
	if arrive == "" {
		arrive = "18:00"
	}

	return buildOffer(q, offerFields{
		id:          fmt.Sprintf("script_%d", idx+1),
		provider:    "Google Flights (Script)",
		airline:     airline,
		price:       price,
		duration:    duration,
		stops:       1,
		stopDetails: "1 stop",
		depart:      depart,
		arrive:      arrive,
		logoSeed:    price,
	})
}

// gsonPrice reads a price-like value out of a forgivingly-parsed object,
// accepting numbers or strings with currency noise.
func gsonPrice(obj gson.JSON) (int, bool) {
	for _, key := range []string{"price", "cost"} {
		switch v := obj.Get(key).Val().(type) {
		case float64:
			if n := int(v); n > 0 {
				return n, true
			}
		case int:
			if v > 0 {
				return v, true
			}
		case json.Number:
			if n, err := v.Int64(); err == nil && n > 0 {
				return int(n), true
			}
		case string:
			digits := nonDigitRe.ReplaceAllString(v, "")
			if n, ok := parseAmount(digits); ok {
				return n, true
			}
		}
	}
	return 0, false
}

func gsonString(obj gson.JSON, key string) string {
	if v, ok := obj.Get(key).Val().(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

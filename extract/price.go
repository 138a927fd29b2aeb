package extract

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// priceTextRe spots currency-prefixed price mentions in text nodes.
var priceTextRe = regexp.MustCompile(`£\d{3,4}`)

// pricePatterns are the accepted price shapes, tried in order. The first
// capture group is the amount, possibly thousands-separated.
var pricePatterns = []*regexp.Regexp{
	regexp.MustCompile(`£(\d{1,4}(?:,\d{3})*)`),
	regexp.MustCompile(`(\d{3,4})\s*£`),
	regexp.MustCompile(`GBP\s*(\d{3,4})`),
	regexp.MustCompile(`from\s*£(\d{3,4})`),
}

// priceBand is the inclusive plausible-fare range for one strategy. Each
// strategy carries its own band; the stricter DOM-based scans reject more
// than the recall-oriented text miners.
type priceBand struct {
	min, max int
}

func (b priceBand) contains(price int) bool {
	return price >= b.min && price <= b.max
}

var (
	proximityBand = priceBand{400, 1500}
	selectorBand  = priceBand{400, 2000}
	scriptBand    = priceBand{400, 1500}
	mineBand      = priceBand{300, 3000}
	lookupBand    = priceBand{200, 5000}
)

// maxMinedPrices bounds how many distinct prices the whole-text strategies
// turn into offers.
const maxMinedPrices = 6

// parseAmount converts a captured amount string ("1,131") to an int.
func parseAmount(s string) (int, bool) {
	n, err := strconv.Atoi(strings.ReplaceAll(s, ",", ""))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// firstPrice returns the first in-band price found in text.
func firstPrice(text string, band priceBand) (int, bool) {
	for _, re := range pricePatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if price, ok := parseAmount(m[1]); ok && band.contains(price) {
			return price, true
		}
	}
	return 0, false
}

// minePrices collects every distinct in-band price anywhere in text,
// independent of structure, sorted ascending and capped at limit.
func minePrices(text string, band priceBand, limit int) []int {
	seen := make(priceSet)
	var prices []int
	for _, re := range pricePatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			price, ok := parseAmount(m[1])
			if !ok || !band.contains(price) || seen.has(price) {
				continue
			}
			seen.add(price)
			prices = append(prices, price)
		}
	}
	sort.Ints(prices)
	if len(prices) > limit {
		prices = prices[:limit]
	}
	return prices
}

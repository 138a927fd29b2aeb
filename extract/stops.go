package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// directKeywords mark a nonstop itinerary.
var directKeywords = []string{
	"direct", "nonstop", "non-stop", "no stops",
}

// stopCountPatterns extract an explicit stop count, clamped to 1-3.
var stopCountPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\s*stops?`),
	regexp.MustCompile(`(\d+)\s*layovers?`),
	regexp.MustCompile(`(\d+)\s*connections?`),
	regexp.MustCompile(`stops?:\s*(\d+)`),
}

// hubCodes are intermediate airports whose mention implies a connection
// there. Static reference data for the covered routes.
var hubCodes = []string{"dxb", "lhr", "ams", "fra", "cdg", "ist", "doh"}

// ResolveStops extracts the stop count and its description from a text
// context. Tiers: direct keyword, explicit count, recognized hub-code
// mentions, and finally price banding — a higher fare is read as fewer
// stops. It never fails.
func ResolveStops(text string, price int) (int, string) {
	lower := strings.ToLower(text)

	for _, kw := range directKeywords {
		if strings.Contains(lower, kw) {
			return 0, "Direct"
		}
	}

	for _, re := range stopCountPatterns {
		m := re.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		stops, _ := strconv.Atoi(m[1])
		if stops >= 1 && stops <= 3 {
			return stops, stopDetails(stops)
		}
	}

	if n := hubMentions(lower); n > 0 {
		if n > 3 {
			n = 3
		}
		return n, stopDetails(n)
	}

	switch {
	case price >= 1000:
		return 0, "Direct"
	case price >= 800:
		return 1, "1 stop"
	default:
		return 2, "2 stops"
	}
}

func stopDetails(stops int) string {
	if stops == 1 {
		return "1 stop"
	}
	return fmt.Sprintf("%d stops", stops)
}

func hubMentions(lower string) int {
	n := 0
	for _, code := range hubCodes {
		if strings.Contains(lower, code) {
			n++
		}
	}
	return n
}

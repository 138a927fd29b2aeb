package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/use-agent/farescan/models"
)

const (
	// proximityMaxAncestors bounds the upward walk from a price text node.
	proximityMaxAncestors = 8

	// proximityMaxNodes bounds how many price text nodes are examined.
	proximityMaxNodes = 20

	// proximityMinContext is the minimum context length for the
	// completeness predicate.
	proximityMinContext = 100
)

var (
	contextPriceRe    = regexp.MustCompile(`£(\d{3,4})`)
	durationShapeRe   = regexp.MustCompile(`\d{1,2}\s*h\s*r?\s*\d*\s*m?`)
	stopShapeKeywords = []string{"stop", "direct", "nonstop", "connection"}
)

// proximityScan is strategy (a): locate every currency-prefixed price text
// node, walk upward through its ancestors accumulating text, and stop at the
// first ancestor whose text passes the completeness predicate. Only fully
// corroborated contexts yield offers; a price that never finds one is
// consumed but produces nothing.
func proximityScan(p *page, q Query) []models.Offer {
	seen := make(priceSet)
	var offers []models.Offer

	for _, node := range priceTextNodes(p.root, proximityMaxNodes) {
		m := contextPriceRe.FindStringSubmatch(node.Data)
		if m == nil {
			continue
		}
		price, _ := strconv.Atoi(m[1])
		if seen.has(price) || !proximityBand.contains(price) {
			continue
		}
		seen.add(price)

		ancestor := node.Parent
		for depth := 0; depth < proximityMaxAncestors && ancestor != nil; depth++ {
			if ancestor.Type == html.ElementNode {
				ctx := nodeText(ancestor)
				if completeContext(ctx, price) {
					idx := len(offers)
					offers = append(offers, offerFromContext(ctx, q, price, idx,
						fmt.Sprintf("proximity_%d", idx+1),
						"Google Flights (Proximity)",
						idx+500,
					))
					break
				}
			}
			ancestor = ancestor.Parent
		}

		if len(offers) >= maxOffers {
			break
		}
	}

	return offers
}

// completeContext reports whether a candidate context plausibly describes
// one full itinerary: it must echo the price, name a known carrier, contain
// a duration-like substring, a stop/direct keyword, at least two clock
// times, and be long enough to be a result card rather than a stray label.
func completeContext(ctx string, price int) bool {
	if len(ctx) <= proximityMinContext {
		return false
	}
	if !strings.Contains(ctx, "£"+strconv.Itoa(price)) {
		return false
	}
	if _, ok := knownCarrier(ctx); !ok {
		return false
	}
	if !durationShapeRe.MatchString(ctx) {
		return false
	}
	lower := strings.ToLower(ctx)
	hasStop := false
	for _, kw := range stopShapeKeywords {
		if strings.Contains(lower, kw) {
			hasStop = true
			break
		}
	}
	if !hasStop {
		return false
	}
	return len(clockRe.FindAllString(ctx, -1)) >= 2
}

// priceTextNodes walks the DOM and collects text nodes containing a
// currency-prefixed price, skipping script and style subtrees.
func priceTextNodes(root *html.Node, limit int) []*html.Node {
	var nodes []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if len(nodes) >= limit {
			return
		}
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode && priceTextRe.MatchString(n.Data) {
			nodes = append(nodes, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	if root != nil {
		walk(root)
	}
	return nodes
}

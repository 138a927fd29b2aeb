package extract

import (
	"fmt"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"

	"github.com/use-agent/farescan/models"
)

// containerSelectors is the fixed list of markup patterns that tend to wrap
// one result card: test-id attributes, ARIA roles, and the obfuscated class
// fragments observed on real result pages.
var containerSelectors = []string{
	`[data-testid^="flight"]`,
	`li[role="option"]`,
	`[class*="pIav2d"]`,
	`div[class*="zISZ5c"]`,
	`[class*="YMvIub"]`,
	`[class*="flight"]`,
	`[class*="result"]`,
	`[aria-labelledby*="flight"]`,
}

// selectorMaxContainers bounds how many candidate containers are examined.
const selectorMaxContainers = 30

// selectorScan is strategy (b): collect candidate containers via the fixed
// selector list and accept any whose text yields an in-band price. Looser
// than the proximity scan on purpose — no completeness predicate, no
// ancestor walk — because it only runs once that scan found nothing.
func selectorScan(p *page, q Query) []models.Offer {
	var containers []*html.Node
	for _, raw := range containerSelectors {
		sel, err := cascadia.Parse(raw)
		if err != nil {
			// A selector the parser rejects is skipped, not fatal.
			continue
		}
		containers = append(containers, cascadia.QueryAll(p.root, sel)...)
	}

	seen := make(priceSet)
	var offers []models.Offer

	examined := 0
	for _, container := range containers {
		if examined >= selectorMaxContainers || len(offers) >= maxOffers {
			break
		}
		examined++

		ctx := nodeText(container)
		price, ok := firstPrice(ctx, selectorBand)
		if !ok || seen.has(price) {
			continue
		}
		seen.add(price)

		idx := len(offers)
		offers = append(offers, offerFromContext(ctx, q, price, idx,
			fmt.Sprintf("selector_%d", idx+1),
			"Google Flights (Selector)",
			idx+100,
		))
	}

	return offers
}

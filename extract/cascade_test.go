package extract

import (
	"fmt"
	"strings"
	"testing"

	"github.com/use-agent/farescan/models"
)

func TestRunStrategyPriority(t *testing.T) {
	var calls []string
	strats := []strategy{
		{name: "first", run: func(p *page, q Query) []models.Offer {
			calls = append(calls, "first")
			return nil
		}},
		{name: "second", run: func(p *page, q Query) []models.Offer {
			calls = append(calls, "second")
			return []models.Offer{{ID: "from_second"}}
		}},
		{name: "third", run: func(p *page, q Query) []models.Offer {
			calls = append(calls, "third")
			return []models.Offer{{ID: "from_third"}}
		}},
	}

	offers := run("<html><body>content</body></html>", Query{}, strats)

	if len(offers) != 1 || offers[0].ID != "from_second" {
		t.Fatalf("expected single offer from second strategy, got %+v", offers)
	}
	if got := strings.Join(calls, ","); got != "first,second" {
		t.Errorf("strategies called = %q, want %q (later strategies must not run)", got, "first,second")
	}
}

func TestRunCapsOffers(t *testing.T) {
	strats := []strategy{
		{name: "many", run: func(p *page, q Query) []models.Offer {
			offers := make([]models.Offer, 12)
			for i := range offers {
				offers[i] = models.Offer{ID: fmt.Sprintf("offer_%d", i)}
			}
			return offers
		}},
	}

	offers := run("<html><body>content</body></html>", Query{}, strats)
	if len(offers) != maxOffers {
		t.Errorf("len(offers) = %d, want %d", len(offers), maxOffers)
	}
}

func TestRunEmptyMarkup(t *testing.T) {
	for _, markup := range []string{"", "   ", "\n\t"} {
		if got := run(markup, Query{}, strategies()); got != nil {
			t.Errorf("run(%q) = %v, want nil", markup, got)
		}
	}
}

func TestOffersProximityExtraction(t *testing.T) {
	markup := `<html><body>
		<div class="card">
			<span>Glasgow to Chennai round trip economy</span>
			<span>Emirates</span>
			<span>2:35</span><span>8:05</span>
			<span>13 hr 5 min</span>
			<span>1 stop DXB</span>
			<span>£701</span>
			<span>Prices include required taxes and fees for all passengers</span>
		</div>
	</body></html>`

	offers := Offers(markup, "Glasgow", "Chennai")
	if len(offers) != 1 {
		t.Fatalf("len(offers) = %d, want 1", len(offers))
	}

	got := offers[0]
	if got.Provider != "Google Flights (Proximity)" {
		t.Errorf("Provider = %q, want proximity strategy to win", got.Provider)
	}
	if got.Airline != "Emirates" {
		t.Errorf("Airline = %q, want Emirates", got.Airline)
	}
	if got.Price != 701 {
		t.Errorf("Price = %d, want 701", got.Price)
	}
	if got.Duration != "13h 05m" {
		t.Errorf("Duration = %q, want 13h 05m", got.Duration)
	}
	if got.Stops != 1 || got.StopDetails != "1 stop" {
		t.Errorf("Stops = %d/%q, want 1/1 stop", got.Stops, got.StopDetails)
	}
	if got.From.Time != "2:35" || got.To.Time != "8:05" {
		t.Errorf("times = %q/%q, want 2:35/8:05", got.From.Time, got.To.Time)
	}
	if got.From.Code != "GLA" || got.To.Code != "MAA" {
		t.Errorf("codes = %q/%q, want GLA/MAA", got.From.Code, got.To.Code)
	}
	if len(got.Legs) != 1 {
		t.Errorf("len(Legs) = %d, want 1", len(got.Legs))
	}
}

func TestOffersTextMiningFallback(t *testing.T) {
	// Bare prices without any surrounding itinerary structure: the DOM
	// strategies must all decline and text mining must synthesize offers.
	markup := `<html><body><p>Great deals from £550 and £720 today</p></body></html>`

	offers := Offers(markup, "London", "Dubai")
	if len(offers) != 2 {
		t.Fatalf("len(offers) = %d, want 2", len(offers))
	}
	if offers[0].Provider != "Google Flights (Text Mined)" {
		t.Errorf("Provider = %q, want text mining to win", offers[0].Provider)
	}
	if offers[0].Price != 550 || offers[1].Price != 720 {
		t.Errorf("prices = %d,%d, want 550,720 ascending", offers[0].Price, offers[1].Price)
	}
	if offers[0].Airline != "Multiple Airlines" {
		t.Errorf("Airline = %q, want the unknown-carrier fallback", offers[0].Airline)
	}
	if offers[0].From.Time == "" || offers[0].To.Time == "" {
		t.Error("fabricated offers must still carry times")
	}
}

func TestOffersRouteTableFallback(t *testing.T) {
	// A price outside the text-mining band but inside the lookup band drives
	// the cascade all the way to the static fare table.
	markup := `<html><body><p>Limited offer £250</p></body></html>`

	offers := Offers(markup, "Glasgow", "Chennai")
	if len(offers) != 1 {
		t.Fatalf("len(offers) = %d, want 1", len(offers))
	}
	got := offers[0]
	if got.Provider != "Google Flights (Route Table)" {
		t.Errorf("Provider = %q, want route table strategy", got.Provider)
	}
	if got.Price != 250 {
		t.Errorf("Price = %d, want 250", got.Price)
	}
	// 250 is nearest the 655 fare, whose itinerary is KLM + IndiGo.
	if got.Airline != "KLM, IndiGo" {
		t.Errorf("Airline = %q, want KLM, IndiGo", got.Airline)
	}
	if got.Duration != "19h 35m" {
		t.Errorf("Duration = %q, want 19h 35m", got.Duration)
	}
}

func TestRouteEntryForGenericRotation(t *testing.T) {
	q := Query{Origin: "London", Destination: "Tokyo"}
	first := routeEntryFor(q, 640, 0)
	if first.airline != "British Airways" || first.stops != 0 {
		t.Errorf("rotation[0] = %+v, want British Airways direct", first)
	}
	second := routeEntryFor(q, 640, 1)
	if second.airline != "Emirates" {
		t.Errorf("rotation[1].airline = %q, want Emirates", second.airline)
	}
	if first.depart == "" || second.arrive == "" {
		t.Error("generic entries must carry synthesized times")
	}
}

func TestNearestFare(t *testing.T) {
	tests := []struct {
		price, want int
	}{
		{701, 701},
		{700, 701},
		{900, 910},
		{200, 655},
		{5000, 1131},
	}
	for _, tt := range tests {
		if got := nearestFare(tt.price); got != tt.want {
			t.Errorf("nearestFare(%d) = %d, want %d", tt.price, got, tt.want)
		}
	}
}

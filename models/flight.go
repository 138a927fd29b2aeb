package models

// Offer is one extracted flight itinerary.
type Offer struct {
	// ID identifies the offer within one result set, e.g. "proximity_1".
	ID string `json:"id"`

	// Provider tags which extraction strategy produced the offer.
	Provider string `json:"provider"`

	// Airline is the carrier name. Multi-carrier itineraries are
	// comma-joined, e.g. "KLM, IndiGo".
	Airline string `json:"airline"`

	// Price is the fare as a whole currency amount (GBP).
	Price int `json:"price"`

	// Duration is the total travel time, normalized to "Hh MMm".
	Duration string `json:"duration"`

	// Stops is the stop count, 0 for direct.
	Stops int `json:"stops"`

	// StopDetails is the human-readable stop description ("Direct", "1 stop").
	StopDetails string `json:"stopDetails"`

	From Endpoint `json:"from"`
	To   Endpoint `json:"to"`

	// Legs always holds exactly one leg record regardless of stop count.
	Legs []Leg `json:"legs"`
}

// Endpoint is one end of an itinerary.
type Endpoint struct {
	Code    string `json:"code"`
	Time    string `json:"time"`
	Airport string `json:"airport"`
}

// Leg is one flight segment within an offer.
type Leg struct {
	Airline string `json:"airline"`

	// AirlineLogoURL is a synthetic placeholder image URL, not a real asset.
	AirlineLogoURL string `json:"airlineLogoUrl"`

	DepartureTime string `json:"departureTime"`
	ArrivalTime   string `json:"arrivalTime"`
	Duration      string `json:"duration"`
	Stops         string `json:"stops"`
	FromCode      string `json:"fromCode"`
	ToCode        string `json:"toCode"`
}

// SearchParams echoes the search terms back in the result envelope.
type SearchParams struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departure_date"`
	ReturnDate    string `json:"return_date,omitempty"`
	Passengers    int    `json:"passengers"`

	// URL is the search-results URL that was fetched, when known.
	URL string `json:"url,omitempty"`
}

// SearchResult is the single structured output payload of a search.
//
// The envelope is always populated: a failed fetch yields an empty Flights
// slice plus a non-empty Error string, never a missing result.
type SearchResult struct {
	Flights      []Offer      `json:"flights"`
	TotalResults int          `json:"total_results"`
	SearchParams SearchParams `json:"search_params"`
	Provider     string       `json:"provider,omitempty"`
	Error        string       `json:"error,omitempty"`
}

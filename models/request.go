package models

// SearchRequest is the payload for POST /api/v1/search and for the piped
// stdin form of the CLI.
type SearchRequest struct {
	// Origin is the departure city or airport name. Required.
	Origin string `json:"origin" binding:"required"`

	// Destination is the arrival city or airport name. Required.
	Destination string `json:"destination" binding:"required"`

	// DepartureDate is the outbound date, YYYY-MM-DD.
	DepartureDate string `json:"departureDate,omitempty"`

	// ReturnDate is the optional inbound date, YYYY-MM-DD.
	ReturnDate string `json:"returnDate,omitempty"`

	// Passengers is the adult passenger count. Default: 1.
	Passengers int `json:"passengers,omitempty" binding:"omitempty,min=1,max=9"`

	// SearchURL optionally overrides the built search-results URL.
	SearchURL string `json:"searchUrl,omitempty" binding:"omitempty,url"`

	// MaxAge is the maximum acceptable cached-result age in milliseconds.
	// Zero disables the cache lookup.
	MaxAge int `json:"max_age,omitempty" binding:"omitempty,min=0"`
}

// Defaults applies default values to unset fields.
func (r *SearchRequest) Defaults() {
	if r.Passengers == 0 {
		r.Passengers = 1
	}
}

// Params converts the request into the echoed search-params form.
func (r *SearchRequest) Params() SearchParams {
	return SearchParams{
		Origin:        r.Origin,
		Destination:   r.Destination,
		DepartureDate: r.DepartureDate,
		ReturnDate:    r.ReturnDate,
		Passengers:    r.Passengers,
		URL:           r.SearchURL,
	}
}

package extract

import "testing"

func TestResolveStops(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		price       int
		wantStops   int
		wantDetails string
	}{
		{"nonstop keyword", "nonstop flight daily", 500, 0, "Direct"},
		{"direct keyword", "Direct from Glasgow", 500, 0, "Direct"},
		{"explicit count", "2 stops via connecting cities", 500, 2, "2 stops"},
		{"layover form", "1 layover in transit", 500, 1, "1 stop"},
		{"count clamped", "5 stops shown", 500, 2, "2 stops"},
		{"hub inference", "via DXB and DOH", 500, 2, "2 stops"},
		{"premium fare reads direct", "", 1050, 0, "Direct"},
		{"mid fare one stop", "", 850, 1, "1 stop"},
		{"budget fare two stops", "", 500, 2, "2 stops"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stops, details := ResolveStops(tt.text, tt.price)
			if stops != tt.wantStops || details != tt.wantDetails {
				t.Errorf("ResolveStops(%q, %d) = %d, %q, want %d, %q",
					tt.text, tt.price, stops, details, tt.wantStops, tt.wantDetails)
			}
		})
	}
}

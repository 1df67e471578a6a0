// Package normalize provides the pure transformation functions that turn
// heterogeneous provider payloads into the internal domain model: ISO-8601
// duration parsing, local-clock time rendering and static code lookups.
package normalize

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ParseISODuration parses an ISO-8601 style duration token of the form
// "PT<H>H<M>M" (either component optional) into total minutes.
//
//	ParseISODuration("PT2H30M") == 150
//	ParseISODuration("PT45M")   == 45
//	ParseISODuration("PT5H")    == 300
func ParseISODuration(token string) (int, error) {
	rest, ok := strings.CutPrefix(token, "PT")
	if !ok || rest == "" {
		return 0, fmt.Errorf("invalid duration token %q", token)
	}

	total := 0
	if idx := strings.Index(rest, "H"); idx >= 0 {
		hours, err := strconv.Atoi(rest[:idx])
		if err != nil {
			return 0, fmt.Errorf("invalid hours in duration token %q", token)
		}
		total += hours * 60
		rest = rest[idx+1:]
	}
	if idx := strings.Index(rest, "M"); idx >= 0 {
		minutes, err := strconv.Atoi(rest[:idx])
		if err != nil {
			return 0, fmt.Errorf("invalid minutes in duration token %q", token)
		}
		total += minutes
		rest = rest[idx+1:]
	}
	if rest != "" {
		return 0, fmt.Errorf("invalid duration token %q", token)
	}

	return total, nil
}

// MinutesBetween returns the duration between two instants in whole
// minutes, rounded to the nearest minute. This must agree with
// ParseISODuration at minute precision when a provider supplies both
// a duration token and a timestamp pair.
func MinutesBetween(departure, arrival time.Time) int {
	millis := arrival.Sub(departure).Milliseconds()
	return int(math.Round(float64(millis) / 60000))
}

// FormatMinutes renders a minute count as a human-readable duration
// string such as "2h 30m".
func FormatMinutes(totalMinutes int) string {
	hours := totalMinutes / 60
	mins := totalMinutes % 60
	switch {
	case hours > 0 && mins > 0:
		return fmt.Sprintf("%dh %dm", hours, mins)
	case hours > 0:
		return fmt.Sprintf("%dh", hours)
	default:
		return fmt.Sprintf("%dm", mins)
	}
}

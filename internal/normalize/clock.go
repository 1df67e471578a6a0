package normalize

import "time"

// timestampLayouts are the provider timestamp formats, tried in order.
// Offsets are kept as supplied; no timezone conversion is performed, so
// the rendered clock is the provider's local airport time.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// ParseTimestamp parses a provider ISO timestamp.
func ParseTimestamp(value string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ClockString renders a provider ISO timestamp as a zero-padded 24-hour
// "HH:MM" local-clock string. Returns the input unchanged when it cannot
// be parsed, degrading gracefully rather than failing.
func ClockString(value string) string {
	t, ok := ParseTimestamp(value)
	if !ok {
		return value
	}
	return t.Format("15:04")
}

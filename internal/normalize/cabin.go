package normalize

// cabinLabels maps provider cabin tokens to display labels.
var cabinLabels = map[string]string{
	"ECONOMY":         "Economy",
	"PREMIUM_ECONOMY": "Premium Economy",
	"BUSINESS":        "Business",
	"FIRST":           "First Class",
}

// CabinLabel returns the display label for a provider cabin token.
// Unrecognized tokens pass through verbatim.
func CabinLabel(token string) string {
	if label, ok := cabinLabels[token]; ok {
		return label
	}
	return token
}

package domain

import "strings"

// SortMode defines the available sort strategies for flight results.
type SortMode string

// Available sort modes.
const (
	// SortCheapest sorts by total price ascending
	SortCheapest SortMode = "cheapest"

	// SortFastest sorts by total duration ascending
	SortFastest SortMode = "fastest"

	// SortBest sorts by a composite score balancing price, duration
	// and stops (default)
	SortBest SortMode = "best"
)

// IsValid checks if the sort mode is a valid value.
func (s SortMode) IsValid() bool {
	switch s {
	case SortCheapest, SortFastest, SortBest:
		return true
	default:
		return false
	}
}

// ParseSortMode converts a string to a SortMode.
// Returns SortBest if the string is empty or invalid.
func ParseSortMode(s string) SortMode {
	mode := SortMode(s)
	if mode.IsValid() {
		return mode
	}
	return SortBest
}

// PriceRange is an inclusive price window for filtering.
type PriceRange struct {
	// Min is the lower bound; nil means unbounded
	Min *float64 `json:"min,omitempty"`

	// Max is the upper bound; nil means unbounded
	Max *float64 `json:"max,omitempty"`
}

// Contains checks if an amount falls within the range.
func (r *PriceRange) Contains(amount float64) bool {
	if r == nil {
		return true
	}
	if r.Min != nil && amount < *r.Min {
		return false
	}
	if r.Max != nil && amount > *r.Max {
		return false
	}
	return true
}

// FilterSpec defines optional constraints applied to flight results.
// Every set constraint must hold for an offer to be retained; unset
// fields impose no restriction.
type FilterSpec struct {
	// Price filters offers by total price
	Price *PriceRange `json:"price,omitempty"`

	// MaxStops filters out offers whose outbound leg has more stops
	MaxStops *int `json:"maxStops,omitempty"`

	// Airlines restricts results to these airline codes
	Airlines []string `json:"airlines,omitempty"`

	// Alliances restricts results to these airline alliances
	Alliances []string `json:"alliances,omitempty"`

	// MaxDurationMinutes filters out offers whose total duration exceeds this
	MaxDurationMinutes *int `json:"maxDurationMinutes,omitempty"`

	// HideBasicCabin drops plain-economy offers, keeping premium
	// economy and above
	HideBasicCabin bool `json:"hideBasicCabin,omitempty"`
}

// MatchesOffer checks if an offer satisfies all the filter criteria.
func (f *FilterSpec) MatchesOffer(offer FlightOffer) bool {
	if f == nil {
		return true
	}

	if !f.Price.Contains(offer.Price.Amount) {
		return false
	}

	if f.MaxStops != nil && offer.Outbound.Stops > *f.MaxStops {
		return false
	}

	if len(f.Airlines) > 0 && !containsFold(f.Airlines, offer.Airline.Code) {
		return false
	}

	if len(f.Alliances) > 0 && !containsFold(f.Alliances, offer.Airline.Alliance) {
		return false
	}

	if f.MaxDurationMinutes != nil && offer.TotalDurationMinutes() > *f.MaxDurationMinutes {
		return false
	}

	if f.HideBasicCabin && strings.EqualFold(offer.Cabin, "Economy") {
		return false
	}

	return true
}

// containsFold checks membership with case-insensitive comparison.
func containsFold(list []string, value string) bool {
	for _, item := range list {
		if strings.EqualFold(item, value) {
			return true
		}
	}
	return false
}

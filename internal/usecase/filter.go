package usecase

import "github.com/travel-search/travel-search-aggregation-service/internal/domain"

// ApplyFilters applies the given filter spec to a list of flight offers.
// It returns a new slice containing only offers that satisfy every
// specified constraint (constraints are ANDed; unset fields impose no
// restriction).
//
// Behavior:
//   - Returns the original slice if spec is nil (no filtering)
//   - Preserves the relative order of surviving offers
//   - Idempotent: filtering an already-filtered list is a no-op
//   - Does NOT mutate the input slice
func ApplyFilters(offers []domain.FlightOffer, spec *domain.FilterSpec) []domain.FlightOffer {
	if spec == nil {
		return offers
	}

	result := make([]domain.FlightOffer, 0, len(offers))
	for _, offer := range offers {
		if spec.MatchesOffer(offer) {
			result = append(result, offer)
		}
	}
	return result
}

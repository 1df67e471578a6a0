package usecase

import (
	"sort"

	"github.com/travel-search/travel-search-aggregation-service/internal/domain"
)

// Composite score weights for the "best" sort. The formula is a product
// heuristic and must not be tuned: each stop costs the equivalent of
// 120 duration-weighted minutes of inconvenience.
const (
	bestWeightPrice    = 0.6
	bestWeightDuration = 0.3
	bestStopPenalty    = 120
)

// BestScore computes the composite score for the "best" sort:
//
//	price*0.6 + duration*0.3 + stops*120
//
// Lower is better. The score depends only on the offer, so it is
// deterministic and independent of input ordering.
func BestScore(offer domain.FlightOffer) float64 {
	return offer.Price.Amount*bestWeightPrice +
		float64(offer.TotalDurationMinutes())*bestWeightDuration +
		float64(offer.TotalStops())*bestStopPenalty
}

// SortOffers sorts flight offers according to the given mode. Sorting is
// stable, so offers that compare equal keep their original relative
// order. The input slice is never mutated; a sorted copy is returned.
//
// Modes:
//   - cheapest: ascending by price
//   - fastest: ascending by total duration
//   - best (default): ascending by the composite BestScore
func SortOffers(offers []domain.FlightOffer, mode domain.SortMode) []domain.FlightOffer {
	if len(offers) <= 1 {
		return offers
	}

	result := make([]domain.FlightOffer, len(offers))
	copy(result, offers)

	if !mode.IsValid() {
		mode = domain.SortBest
	}

	switch mode {
	case domain.SortCheapest:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price.Amount < result[j].Price.Amount
		})
	case domain.SortFastest:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].TotalDurationMinutes() < result[j].TotalDurationMinutes()
		})
	case domain.SortBest:
		sort.SliceStable(result, func(i, j int) bool {
			return BestScore(result[i]) < BestScore(result[j])
		})
	}

	return result
}

package usecase

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travel-search/travel-search-aggregation-service/internal/domain"
)

func makeOffer(id string, price float64, durationMinutes, stops int) domain.FlightOffer {
	return domain.FlightOffer{
		ID:      id,
		Airline: domain.AirlineInfo{Code: "BA", Name: "British Airways"},
		Outbound: domain.FlightLeg{
			DepartureAirport: "LHR",
			ArrivalAirport:   "DXB",
			DurationMinutes:  durationMinutes,
			Stops:            stops,
		},
		Price: domain.PriceInfo{Amount: price, Currency: "USD"},
		Cabin: "Economy",
	}
}

func TestBestScore(t *testing.T) {
	// price*0.6 + duration*0.3 + stops*120
	offer := makeOffer("a", 300, 200, 1)
	assert.InDelta(t, 300*0.6+200*0.3+1*120, BestScore(offer), 1e-9)
	assert.InDelta(t, 360.0, BestScore(offer), 1e-9)

	direct := makeOffer("b", 400, 300, 0)
	assert.InDelta(t, 330.0, BestScore(direct), 1e-9)
}

func TestBestScore_CountsReturnLeg(t *testing.T) {
	offer := makeOffer("rt", 500, 240, 0)
	ret := domain.FlightLeg{DurationMinutes: 260, Stops: 1}
	offer.Return = &ret

	// 500*0.6 + (240+260)*0.3 + 1*120
	assert.InDelta(t, 300+150+120, BestScore(offer), 1e-9)
}

func TestSortOffers_Cheapest(t *testing.T) {
	offers := []domain.FlightOffer{
		makeOffer("a", 500, 100, 0),
		makeOffer("b", 200, 400, 2),
		makeOffer("c", 350, 250, 1),
	}

	sorted := SortOffers(offers, domain.SortCheapest)

	require.Len(t, sorted, 3)
	assert.Equal(t, []string{"b", "c", "a"}, offerIDs(sorted))

	// Input slice is untouched
	assert.Equal(t, "a", offers[0].ID)
}

func TestSortOffers_Fastest(t *testing.T) {
	offers := []domain.FlightOffer{
		makeOffer("a", 500, 100, 0),
		makeOffer("b", 200, 400, 2),
		makeOffer("c", 350, 250, 1),
	}

	sorted := SortOffers(offers, domain.SortFastest)
	assert.Equal(t, []string{"a", "c", "b"}, offerIDs(sorted))
}

func TestSortOffers_Best(t *testing.T) {
	// A direct but slower flight can beat a cheaper one-stopper: the
	// 120-point stop penalty dominates small price differences.
	offers := []domain.FlightOffer{
		makeOffer("one-stop", 300, 200, 1), // score 360
		makeOffer("direct", 400, 300, 0),   // score 330
	}

	sorted := SortOffers(offers, domain.SortBest)
	assert.Equal(t, []string{"direct", "one-stop"}, offerIDs(sorted))
}

func TestSortOffers_InvalidModeDefaultsToBest(t *testing.T) {
	offers := []domain.FlightOffer{
		makeOffer("one-stop", 300, 200, 1),
		makeOffer("direct", 400, 300, 0),
	}

	sorted := SortOffers(offers, domain.SortMode("nonsense"))
	assert.Equal(t, []string{"direct", "one-stop"}, offerIDs(sorted))
}

// Sorting an already-sorted list leaves prices non-decreasing.
func TestSortOffers_CheapestIsIdempotent(t *testing.T) {
	offers := []domain.FlightOffer{
		makeOffer("a", 500, 100, 0),
		makeOffer("b", 200, 400, 2),
		makeOffer("c", 350, 250, 1),
		makeOffer("d", 200, 100, 0),
	}

	once := SortOffers(offers, domain.SortCheapest)
	twice := SortOffers(once, domain.SortCheapest)

	assert.Equal(t, once, twice)
	assert.True(t, sort.SliceIsSorted(twice, func(i, j int) bool {
		return twice[i].Price.Amount < twice[j].Price.Amount
	}))
}

// Equal keys keep their original relative order.
func TestSortOffers_Stable(t *testing.T) {
	offers := []domain.FlightOffer{
		makeOffer("first", 200, 100, 0),
		makeOffer("second", 200, 100, 0),
		makeOffer("third", 200, 100, 0),
	}

	sorted := SortOffers(offers, domain.SortCheapest)
	assert.Equal(t, []string{"first", "second", "third"}, offerIDs(sorted))
}

func TestSortOffers_EmptyAndSingle(t *testing.T) {
	assert.Empty(t, SortOffers(nil, domain.SortBest))

	single := []domain.FlightOffer{makeOffer("only", 100, 60, 0)}
	assert.Equal(t, single, SortOffers(single, domain.SortBest))
}

func offerIDs(offers []domain.FlightOffer) []string {
	ids := make([]string, 0, len(offers))
	for _, o := range offers {
		ids = append(ids, o.ID)
	}
	return ids
}

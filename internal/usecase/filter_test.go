package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/travel-search/travel-search-aggregation-service/internal/domain"
)

func TestApplyFilters_NilSpecReturnsInput(t *testing.T) {
	offers := []domain.FlightOffer{
		makeOffer("a", 100, 60, 0),
		makeOffer("b", 200, 90, 1),
	}

	assert.Equal(t, offers, ApplyFilters(offers, nil))
}

func TestApplyFilters_SubsetPreservingOrder(t *testing.T) {
	offers := []domain.FlightOffer{
		makeOffer("a", 100, 60, 0),
		makeOffer("b", 900, 90, 1),
		makeOffer("c", 300, 120, 0),
		makeOffer("d", 800, 200, 2),
		makeOffer("e", 150, 75, 0),
	}
	max := 400.0
	spec := &domain.FilterSpec{Price: &domain.PriceRange{Max: &max}}

	filtered := ApplyFilters(offers, spec)

	assert.Equal(t, []string{"a", "c", "e"}, offerIDs(filtered))

	// Every survivor is present in the original list
	for _, f := range filtered {
		assert.Contains(t, offerIDs(offers), f.ID)
	}
}

func TestApplyFilters_Idempotent(t *testing.T) {
	offers := []domain.FlightOffer{
		makeOffer("a", 100, 60, 0),
		makeOffer("b", 900, 90, 3),
		makeOffer("c", 300, 120, 0),
	}
	maxStops := 1
	spec := &domain.FilterSpec{MaxStops: &maxStops}

	once := ApplyFilters(offers, spec)
	twice := ApplyFilters(once, spec)

	assert.Equal(t, once, twice)
}

func TestApplyFilters_NoMatchesGivesEmptyNotNilSemantics(t *testing.T) {
	offers := []domain.FlightOffer{makeOffer("a", 100, 60, 0)}
	maxStops := 0
	max := 50.0
	spec := &domain.FilterSpec{MaxStops: &maxStops, Price: &domain.PriceRange{Max: &max}}

	filtered := ApplyFilters(offers, spec)
	assert.NotNil(t, filtered)
	assert.Empty(t, filtered)
}

func TestApplyFilters_DoesNotMutateInput(t *testing.T) {
	offers := []domain.FlightOffer{
		makeOffer("a", 100, 60, 0),
		makeOffer("b", 900, 90, 1),
	}
	maxStops := 0
	spec := &domain.FilterSpec{MaxStops: &maxStops}

	_ = ApplyFilters(offers, spec)

	assert.Len(t, offers, 2)
	assert.Equal(t, "a", offers[0].ID)
	assert.Equal(t, "b", offers[1].ID)
}

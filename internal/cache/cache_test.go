package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travel-search/travel-search-aggregation-service/internal/domain"
)

func searchParams() domain.SearchParams {
	return domain.SearchParams{
		Origin:        "LHR",
		Destination:   "DXB",
		DepartureDate: "2026-10-01",
		Adults:        1,
		Cabin:         domain.CabinEconomy,
	}
}

func TestNoOpCache_AlwaysMisses(t *testing.T) {
	c := NewNoOpCache()

	offers, hit := c.Get(context.Background(), searchParams())
	assert.False(t, hit)
	assert.Nil(t, offers)

	err := c.Set(context.Background(), searchParams(), []domain.FlightOffer{{ID: "f1"}})
	require.NoError(t, err)

	// Still a miss after a Set
	_, hit = c.Get(context.Background(), searchParams())
	assert.False(t, hit)

	assert.NoError(t, c.Close())
}

func TestCacheKey_StableForEqualParams(t *testing.T) {
	assert.Equal(t, cacheKey(searchParams()), cacheKey(searchParams()))
}

func TestCacheKey_DistinctAcrossSearches(t *testing.T) {
	base := searchParams()

	variants := []domain.SearchParams{}
	for _, mutate := range []func(*domain.SearchParams){
		func(p *domain.SearchParams) { p.Destination = "BKK" },
		func(p *domain.SearchParams) { p.DepartureDate = "2026-10-02" },
		func(p *domain.SearchParams) { p.ReturnDate = "2026-10-08" },
		func(p *domain.SearchParams) { p.Adults = 2 },
		func(p *domain.SearchParams) { p.Cabin = domain.CabinBusiness },
	} {
		p := base
		mutate(&p)
		variants = append(variants, p)
	}

	seen := map[string]bool{cacheKey(base): true}
	for _, p := range variants {
		key := cacheKey(p)
		assert.False(t, seen[key], "key collision for %+v", p)
		seen[key] = true
	}
}

func TestCacheKey_HasNamespacePrefix(t *testing.T) {
	assert.Contains(t, cacheKey(searchParams()), "flightsearch:")
}

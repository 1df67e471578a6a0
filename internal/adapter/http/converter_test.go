package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travel-search/travel-search-aggregation-service/internal/domain"
)

func TestToDomainSearchParams(t *testing.T) {
	req := &SearchFlightsRequest{
		Origin:        "lhr",
		Destination:   "dxb",
		DepartureDate: "2026-10-01",
		Cabin:         "business",
	}

	params := ToDomainSearchParams(req)
	assert.Equal(t, "LHR", params.Origin)
	assert.Equal(t, "DXB", params.Destination)
	assert.Equal(t, domain.CabinBusiness, params.Cabin)
	assert.Equal(t, 1, params.Adults, "zero adults defaults to 1")
}

func TestToDomainSearchParams_UnknownCabinDefaultsToEconomy(t *testing.T) {
	params := ToDomainSearchParams(&SearchFlightsRequest{Cabin: "coach"})
	assert.Equal(t, domain.CabinEconomy, params.Cabin)
}

func TestToDomainFilters_Nil(t *testing.T) {
	assert.Nil(t, ToDomainFilters(nil))
}

func TestToDomainFilters_EmptyPriceRangeDropped(t *testing.T) {
	spec := ToDomainFilters(&FilterDTO{Price: &PriceRangeDTO{}})
	require.NotNil(t, spec)
	assert.Nil(t, spec.Price)
}

func TestToDomainFilters_PriceRangeKept(t *testing.T) {
	max := 800.0
	spec := ToDomainFilters(&FilterDTO{Price: &PriceRangeDTO{Max: &max}})
	require.NotNil(t, spec.Price)
	assert.Equal(t, &max, spec.Price.Max)
	assert.Nil(t, spec.Price.Min)
}

func TestToSearchOptions_SortModeParsed(t *testing.T) {
	opts := ToSearchOptions(&SearchFlightsRequest{SortBy: "FASTEST"})
	assert.Equal(t, domain.SortFastest, opts.SortBy)
}

func TestToDomainPackageParams(t *testing.T) {
	params := ToDomainPackageParams(&SearchPackagesRequest{
		Destination: "Bali",
		Budget:      2500,
		Nights:      10,
		Type:        "Luxury",
		Origin:      "man",
	})

	assert.Equal(t, "Bali", params.Destination)
	assert.Equal(t, domain.PackageLuxury, params.Type)
	assert.Equal(t, "MAN", params.Origin)
	assert.Equal(t, 10, params.Nights)
}

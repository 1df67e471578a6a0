package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/travel-search/travel-search-aggregation-service/internal/domain"
)

// memoryCache is a trivial in-memory cache.Cache for testing.
type memoryCache struct {
	store map[string][]domain.FlightOffer
	sets  int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{store: make(map[string][]domain.FlightOffer)}
}

func (c *memoryCache) key(params domain.SearchParams) string {
	return params.Origin + params.Destination + params.DepartureDate + string(params.Cabin)
}

func (c *memoryCache) Get(_ context.Context, params domain.SearchParams) ([]domain.FlightOffer, bool) {
	offers, ok := c.store[c.key(params)]
	return offers, ok
}

func (c *memoryCache) Set(_ context.Context, params domain.SearchParams, offers []domain.FlightOffer) error {
	c.sets++
	c.store[c.key(params)] = offers
	return nil
}

func (c *memoryCache) Close() error { return nil }

func flightSearchParams() domain.SearchParams {
	return domain.SearchParams{
		Origin:        "LHR",
		Destination:   "DXB",
		DepartureDate: "2026-10-01",
		Adults:        1,
		Cabin:         domain.CabinEconomy,
	}
}

func TestFlightSearch_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := domain.NewMockTravelProvider(ctrl)

	offers := []domain.FlightOffer{
		makeOffer("expensive", 900, 300, 0),
		makeOffer("cheap", 200, 420, 1),
	}
	provider.EXPECT().Name().Return("amadeus").AnyTimes()
	provider.EXPECT().SearchFlights(gomock.Any(), gomock.Any()).Return(offers, nil)

	uc := NewFlightSearchUseCase(provider, nil, nil)

	resp, err := uc.Search(context.Background(), flightSearchParams(), SearchOptions{SortBy: domain.SortCheapest})
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Metadata.TotalResults)
	assert.Equal(t, "amadeus", resp.Metadata.Provider)
	assert.False(t, resp.Metadata.CacheHit)
	assert.Equal(t, "cheap", resp.Offers[0].ID)
}

func TestFlightSearch_ValidationRejectedBeforeProviderCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := domain.NewMockTravelProvider(ctrl)
	// No SearchFlights expectation: the provider must not be called.

	uc := NewFlightSearchUseCase(provider, nil, nil)

	params := flightSearchParams()
	params.Destination = params.Origin

	_, err := uc.Search(context.Background(), params, DefaultSearchOptions())
	require.Error(t, err)
	assert.True(t, domain.IsInvalidRequest(err))
}

func TestFlightSearch_ProviderErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := domain.NewMockTravelProvider(ctrl)

	provErr := domain.NewProviderError("flight-offers", 502, "upstream down")
	provider.EXPECT().Name().Return("amadeus").AnyTimes()
	provider.EXPECT().SearchFlights(gomock.Any(), gomock.Any()).Return(nil, provErr)

	uc := NewFlightSearchUseCase(provider, nil, nil)

	_, err := uc.Search(context.Background(), flightSearchParams(), DefaultSearchOptions())
	require.Error(t, err)
	assert.True(t, domain.IsProviderError(err))
}

func TestFlightSearch_CacheHitSkipsProvider(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := domain.NewMockTravelProvider(ctrl)

	offers := []domain.FlightOffer{makeOffer("a", 300, 200, 0)}
	provider.EXPECT().Name().Return("amadeus").AnyTimes()
	// Exactly one upstream call despite two searches
	provider.EXPECT().SearchFlights(gomock.Any(), gomock.Any()).Return(offers, nil).Times(1)

	c := newMemoryCache()
	uc := NewFlightSearchUseCase(provider, c, nil)

	first, err := uc.Search(context.Background(), flightSearchParams(), DefaultSearchOptions())
	require.NoError(t, err)
	assert.False(t, first.Metadata.CacheHit)
	assert.Equal(t, 1, c.sets)

	second, err := uc.Search(context.Background(), flightSearchParams(), DefaultSearchOptions())
	require.NoError(t, err)
	assert.True(t, second.Metadata.CacheHit)
	assert.Equal(t, first.Offers, second.Offers)
}

func TestFlightSearch_FiltersApplyToCachedResults(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := domain.NewMockTravelProvider(ctrl)

	offers := []domain.FlightOffer{
		makeOffer("direct", 500, 300, 0),
		makeOffer("one-stop", 250, 420, 1),
	}
	provider.EXPECT().Name().Return("amadeus").AnyTimes()
	provider.EXPECT().SearchFlights(gomock.Any(), gomock.Any()).Return(offers, nil).Times(1)

	uc := NewFlightSearchUseCase(provider, newMemoryCache(), nil)

	_, err := uc.Search(context.Background(), flightSearchParams(), DefaultSearchOptions())
	require.NoError(t, err)

	// Second search reuses the cache but applies a fresh filter
	maxStops := 0
	resp, err := uc.Search(context.Background(), flightSearchParams(), SearchOptions{
		Filters: &domain.FilterSpec{MaxStops: &maxStops},
		SortBy:  domain.SortBest,
	})
	require.NoError(t, err)
	require.Len(t, resp.Offers, 1)
	assert.Equal(t, "direct", resp.Offers[0].ID)
	assert.True(t, resp.Metadata.CacheHit)
}

func TestFlightSearch_EmptyResultIsNotAnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := domain.NewMockTravelProvider(ctrl)

	provider.EXPECT().Name().Return("amadeus").AnyTimes()
	provider.EXPECT().SearchFlights(gomock.Any(), gomock.Any()).Return([]domain.FlightOffer{}, nil)

	uc := NewFlightSearchUseCase(provider, nil, nil)

	resp, err := uc.Search(context.Background(), flightSearchParams(), DefaultSearchOptions())
	require.NoError(t, err)
	assert.NotNil(t, resp.Offers)
	assert.Empty(t, resp.Offers)
	assert.Equal(t, 0, resp.Metadata.TotalResults)
}

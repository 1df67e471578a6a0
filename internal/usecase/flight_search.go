package usecase

import (
	"context"
	"time"

	"github.com/travel-search/travel-search-aggregation-service/internal/cache"
	"github.com/travel-search/travel-search-aggregation-service/internal/domain"
	"github.com/travel-search/travel-search-aggregation-service/internal/infrastructure/logger"
)

// FlightSearchUseCase orchestrates a flight search: validate the request,
// consult the cache, fetch from the provider, then filter and sort the
// normalized offers.
type FlightSearchUseCase struct {
	provider domain.TravelProvider
	cache    cache.Cache
	log      *logger.Logger
}

// NewFlightSearchUseCase creates a FlightSearchUseCase.
func NewFlightSearchUseCase(provider domain.TravelProvider, c cache.Cache, log *logger.Logger) *FlightSearchUseCase {
	if c == nil {
		c = cache.NewNoOpCache()
	}
	if log == nil {
		log = logger.Nop()
	}
	return &FlightSearchUseCase{
		provider: provider,
		cache:    c,
		log:      log.WithComponent("flight_search"),
	}
}

// Search executes a flight search and returns filtered, sorted offers.
//
// Filtering and sorting always run on the full normalized result set,
// whether it came from the provider or the cache, so the same request
// with different filters never needs a second upstream call.
func (uc *FlightSearchUseCase) Search(ctx context.Context, params domain.SearchParams, opts SearchOptions) (*domain.FlightSearchResponse, error) {
	start := time.Now()

	params.SetDefaults()
	if err := params.Validate(); err != nil {
		return nil, err
	}

	offers, cacheHit := uc.cache.Get(ctx, params)
	if !cacheHit {
		var err error
		offers, err = uc.provider.SearchFlights(ctx, params)
		if err != nil {
			uc.log.Error().Err(err).
				Str("origin", params.Origin).
				Str("destination", params.Destination).
				Msg("provider flight search failed")
			return nil, err
		}

		if err := uc.cache.Set(ctx, params, offers); err != nil {
			uc.log.Warn().Err(err).Msg("failed to cache flight results")
		}
	}

	offers = ApplyFilters(offers, opts.Filters)
	offers = SortOffers(offers, opts.SortBy)

	uc.log.Info().
		Str("origin", params.Origin).
		Str("destination", params.Destination).
		Int("results", len(offers)).
		Bool("cache_hit", cacheHit).
		Dur("elapsed", time.Since(start)).
		Msg("flight search completed")

	return domain.NewFlightSearchResponse(params, offers, domain.SearchMetadata{
		Provider:     uc.provider.Name(),
		SearchTimeMs: time.Since(start).Milliseconds(),
		CacheHit:     cacheHit,
	}), nil
}

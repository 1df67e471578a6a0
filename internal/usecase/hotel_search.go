package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/travel-search/travel-search-aggregation-service/internal/domain"
	"github.com/travel-search/travel-search-aggregation-service/internal/infrastructure/logger"
)

// HotelSearchUseCase orchestrates a hotel search: list hotels in the
// city, price them for the stay window, then enrich ratings with guest
// sentiment scores.
type HotelSearchUseCase struct {
	provider domain.TravelProvider
	log      *logger.Logger
}

// NewHotelSearchUseCase creates a HotelSearchUseCase.
func NewHotelSearchUseCase(provider domain.TravelProvider, log *logger.Logger) *HotelSearchUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &HotelSearchUseCase{
		provider: provider,
		log:      log.WithComponent("hotel_search"),
	}
}

// Search executes a hotel search for the given city and stay window.
// Results are sorted cheapest-first by total price.
func (uc *HotelSearchUseCase) Search(ctx context.Context, params domain.HotelSearchParams) (*domain.HotelSearchResponse, error) {
	start := time.Now()

	params.SetDefaults()
	if err := params.Validate(); err != nil {
		return nil, err
	}

	listings, err := uc.provider.ListHotelsByCity(ctx, params.CityCode)
	if err != nil {
		uc.log.Error().Err(err).Str("city", params.CityCode).Msg("hotel listing failed")
		return nil, err
	}

	offers, err := uc.priceListings(ctx, listings, params)
	if err != nil {
		return nil, err
	}

	uc.enrichRatings(ctx, offers)

	sort.SliceStable(offers, func(i, j int) bool {
		return offers[i].TotalPrice < offers[j].TotalPrice
	})

	uc.log.Info().
		Str("city", params.CityCode).
		Int("results", len(offers)).
		Dur("elapsed", time.Since(start)).
		Msg("hotel search completed")

	return domain.NewHotelSearchResponse(params, offers, domain.SearchMetadata{
		Provider:     uc.provider.Name(),
		SearchTimeMs: time.Since(start).Milliseconds(),
	}), nil
}

// priceListings fetches priced offers for the listed hotels.
func (uc *HotelSearchUseCase) priceListings(ctx context.Context, listings []domain.HotelListing, params domain.HotelSearchParams) ([]domain.HotelOffer, error) {
	if len(listings) == 0 {
		return []domain.HotelOffer{}, nil
	}

	ids := make([]string, 0, len(listings))
	for _, l := range listings {
		ids = append(ids, l.HotelID)
	}

	offers, err := uc.provider.HotelOffers(ctx, ids, params)
	if err != nil {
		uc.log.Error().Err(err).Str("city", params.CityCode).Msg("hotel pricing failed")
		return nil, err
	}
	return offers, nil
}

// enrichRatings overlays guest sentiment scores onto offers that have no
// star rating. Sentiment lookups are best-effort: a failure leaves the
// ratings as the pricing call returned them.
func (uc *HotelSearchUseCase) enrichRatings(ctx context.Context, offers []domain.HotelOffer) {
	missing := make([]string, 0, len(offers))
	for _, o := range offers {
		if o.Rating == 0 {
			missing = append(missing, o.HotelID)
		}
	}
	if len(missing) == 0 {
		return
	}

	scores, err := uc.provider.HotelSentiments(ctx, missing)
	if err != nil {
		uc.log.Warn().Err(err).Msg("hotel sentiment lookup failed")
		return
	}

	for i := range offers {
		if offers[i].Rating == 0 {
			if score, ok := scores[offers[i].HotelID]; ok {
				offers[i].Rating = score
			}
		}
	}
}

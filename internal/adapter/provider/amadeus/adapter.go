package amadeus

import (
	"context"

	"github.com/travel-search/travel-search-aggregation-service/internal/domain"
)

// ProviderName is the unique identifier for the live provider.
const ProviderName = "amadeus"

// Provider implements domain.TravelProvider against the live API.
type Provider struct {
	client *Client
}

// NewProvider creates the live provider from a configured client.
func NewProvider(client *Client) *Provider {
	return &Provider{client: client}
}

// Name returns the provider's unique identifier.
func (p *Provider) Name() string {
	return ProviderName
}

// SearchFlights implements domain.TravelProvider.
func (p *Provider) SearchFlights(ctx context.Context, params domain.SearchParams) ([]domain.FlightOffer, error) {
	resp, err := p.client.flightOffers(ctx, params)
	if err != nil {
		return nil, err
	}
	return normalizeFlightOffers(resp), nil
}

// ListHotelsByCity implements domain.TravelProvider.
func (p *Provider) ListHotelsByCity(ctx context.Context, cityCode string) ([]domain.HotelListing, error) {
	resp, err := p.client.hotelsByCity(ctx, cityCode)
	if err != nil {
		return nil, err
	}
	return normalizeHotelList(resp), nil
}

// ListHotelsByGeocode implements domain.TravelProvider.
func (p *Provider) ListHotelsByGeocode(ctx context.Context, geo domain.GeoCode, radiusKm int) ([]domain.HotelListing, error) {
	resp, err := p.client.hotelsByGeocode(ctx, geo, radiusKm)
	if err != nil {
		return nil, err
	}
	return normalizeHotelList(resp), nil
}

// HotelOffers implements domain.TravelProvider.
func (p *Provider) HotelOffers(ctx context.Context, hotelIDs []string, params domain.HotelSearchParams) ([]domain.HotelOffer, error) {
	resp, err := p.client.hotelOffers(ctx, hotelIDs, params)
	if err != nil {
		return nil, err
	}
	return normalizeHotelOffers(resp, params.Nights()), nil
}

// HotelSentiments implements domain.TravelProvider.
func (p *Provider) HotelSentiments(ctx context.Context, hotelIDs []string) (map[string]float64, error) {
	resp, err := p.client.hotelSentiments(ctx, hotelIDs)
	if err != nil {
		return nil, err
	}
	return normalizeSentiments(resp), nil
}

// SearchActivities implements domain.TravelProvider.
func (p *Provider) SearchActivities(ctx context.Context, geo domain.GeoCode, radiusKm int) ([]domain.Activity, error) {
	resp, err := p.client.activities(ctx, geo, radiusKm)
	if err != nil {
		return nil, err
	}
	return normalizeActivities(resp), nil
}

// Ensure Provider implements domain.TravelProvider at compile time.
var _ domain.TravelProvider = (*Provider)(nil)

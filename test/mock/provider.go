// Package mock provides test doubles for the travel search system.
// These mocks are designed for integration-style tests where we need
// configurable behavior (delays, errors, specific responses).
package mock

import (
	"context"
	"sync"
	"time"

	"github.com/travel-search/travel-search-aggregation-service/internal/domain"
)

// Provider is a configurable mock implementation of domain.TravelProvider.
// It supports configurable delays, errors, and responses for testing
// various scenarios including timeouts and partial failures.
type Provider struct {
	name       string
	flights    []domain.FlightOffer
	listings   []domain.HotelListing
	hotels     []domain.HotelOffer
	sentiments map[string]float64
	activities []domain.Activity

	flightErr   error
	hotelErr    error
	activityErr error
	delay       time.Duration

	mu        sync.Mutex
	callCount int
}

// NewProvider creates a new mock provider with the given name.
// The provider is configured using the builder pattern methods.
func NewProvider(name string) *Provider {
	return &Provider{name: name}
}

// WithFlights configures the provider to return the given flight offers.
func (p *Provider) WithFlights(offers []domain.FlightOffer) *Provider {
	p.flights = offers
	return p
}

// WithHotels configures the provider's listings and priced offers.
func (p *Provider) WithHotels(listings []domain.HotelListing, offers []domain.HotelOffer) *Provider {
	p.listings = listings
	p.hotels = offers
	return p
}

// WithSentiments configures the sentiment scores returned per hotel ID.
func (p *Provider) WithSentiments(scores map[string]float64) *Provider {
	p.sentiments = scores
	return p
}

// WithActivities configures the provider to return the given activities.
func (p *Provider) WithActivities(activities []domain.Activity) *Provider {
	p.activities = activities
	return p
}

// WithFlightError configures flight searches to fail with err.
func (p *Provider) WithFlightError(err error) *Provider {
	p.flightErr = err
	return p
}

// WithHotelError configures hotel listing and pricing calls to fail with err.
func (p *Provider) WithHotelError(err error) *Provider {
	p.hotelErr = err
	return p
}

// WithActivityError configures activity searches to fail with err.
func (p *Provider) WithActivityError(err error) *Provider {
	p.activityErr = err
	return p
}

// WithDelay configures the provider to wait the given duration before responding.
// This is useful for testing timeout behavior.
func (p *Provider) WithDelay(d time.Duration) *Provider {
	p.delay = d
	return p
}

// Name returns the provider's unique identifier.
func (p *Provider) Name() string {
	return p.name
}

// CallCount returns the number of provider calls made so far.
func (p *Provider) CallCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.callCount
}

// wait counts the call and applies the configured delay, respecting
// context cancellation.
func (p *Provider) wait(ctx context.Context) error {
	p.mu.Lock()
	p.callCount++
	p.mu.Unlock()

	if p.delay > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(p.delay):
		}
	}
	return ctx.Err()
}

// SearchFlights implements domain.TravelProvider.
func (p *Provider) SearchFlights(ctx context.Context, _ domain.SearchParams) ([]domain.FlightOffer, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	if p.flightErr != nil {
		return nil, p.flightErr
	}
	return p.flights, nil
}

// ListHotelsByCity implements domain.TravelProvider.
func (p *Provider) ListHotelsByCity(ctx context.Context, _ string) ([]domain.HotelListing, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	if p.hotelErr != nil {
		return nil, p.hotelErr
	}
	return p.listings, nil
}

// ListHotelsByGeocode implements domain.TravelProvider.
func (p *Provider) ListHotelsByGeocode(ctx context.Context, _ domain.GeoCode, _ int) ([]domain.HotelListing, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	if p.hotelErr != nil {
		return nil, p.hotelErr
	}
	return p.listings, nil
}

// HotelOffers implements domain.TravelProvider.
func (p *Provider) HotelOffers(ctx context.Context, _ []string, _ domain.HotelSearchParams) ([]domain.HotelOffer, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	if p.hotelErr != nil {
		return nil, p.hotelErr
	}
	return p.hotels, nil
}

// HotelSentiments implements domain.TravelProvider.
func (p *Provider) HotelSentiments(ctx context.Context, _ []string) (map[string]float64, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	return p.sentiments, nil
}

// SearchActivities implements domain.TravelProvider.
func (p *Provider) SearchActivities(ctx context.Context, _ domain.GeoCode, _ int) ([]domain.Activity, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	if p.activityErr != nil {
		return nil, p.activityErr
	}
	return p.activities, nil
}

var _ domain.TravelProvider = (*Provider)(nil)

// Package mock implements the credential-free fallback TravelProvider.
// It is selected once at construction when provider credentials are
// absent and serves deterministic-shape, randomized-value synthetic
// results matching the same domain model as the live provider, so
// downstream components never know which mode produced the data.
package mock

import (
	"context"
	"fmt"
	"hash/fnv"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/travel-search/travel-search-aggregation-service/internal/domain"
	"github.com/travel-search/travel-search-aggregation-service/internal/normalize"
)

// ProviderName is the unique identifier for the mock provider.
const ProviderName = "mock"

// mockCurrency is the currency all synthetic prices are quoted in.
const mockCurrency = "USD"

// hotelIDPrefix marks synthetic hotel identifiers so priced offers can
// be reconnected to their seed entry.
const hotelIDPrefix = "MCK"

// airlineOption is one synthetic airline across the price tiers.
type airlineOption struct {
	code      string
	priceMod  float64
	stops     int
	departure int // first departure hour of day
}

// airlinePool drives flight generation: a spread of carriers over
// price, stops and departure time.
var airlinePool = []airlineOption{
	{code: "TK", priceMod: 1.00, stops: 0, departure: 7},
	{code: "LH", priceMod: 1.15, stops: 0, departure: 9},
	{code: "EK", priceMod: 1.30, stops: 0, departure: 14},
	{code: "BA", priceMod: 1.10, stops: 0, departure: 17},
	{code: "W6", priceMod: 0.65, stops: 1, departure: 6},
	{code: "FZ", priceMod: 0.80, stops: 1, departure: 11},
	{code: "QR", priceMod: 1.20, stops: 1, departure: 21},
}

// cabinPriceMod scales prices by cabin class.
var cabinPriceMod = map[domain.CabinClass]float64{
	domain.CabinEconomy:        1.0,
	domain.CabinPremiumEconomy: 1.6,
	domain.CabinBusiness:       2.4,
	domain.CabinFirst:          3.8,
}

// Provider implements domain.TravelProvider without any upstream calls.
// Construction never fails and no method ever returns an error.
type Provider struct {
	seeds *seedData

	mu  sync.Mutex
	rng *rand.Rand
}

// NewProvider creates the mock provider seeded from the wall clock.
func NewProvider() *Provider {
	return NewProviderWithSeed(time.Now().UnixNano())
}

// NewProviderWithSeed creates the mock provider with a fixed random
// seed, for reproducible tests.
func NewProviderWithSeed(seed int64) *Provider {
	return &Provider{
		seeds: loadSeedData(),
		rng:   rand.New(rand.NewSource(seed)),
	}
}

// Name returns the provider's unique identifier.
func (p *Provider) Name() string {
	return ProviderName
}

// jitter returns a random float in [0, n) under the provider lock.
func (p *Provider) jitter(n float64) float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rng.Float64() * n
}

// SearchFlights generates one offer per pool airline. The route's base
// price and duration derive from a stable hash of the airport pair, so
// the same route always lands in the same price neighborhood.
func (p *Provider) SearchFlights(_ context.Context, params domain.SearchParams) ([]domain.FlightOffer, error) {
	basePrice, baseDuration := routeProfile(params.Origin, params.Destination)
	cabinMod := cabinPriceMod[params.Cabin]
	if cabinMod == 0 {
		cabinMod = 1.0
	}

	offers := make([]domain.FlightOffer, 0, len(airlinePool))
	for _, opt := range airlinePool {
		duration := baseDuration + opt.stops*90
		price := basePrice * opt.priceMod * cabinMod
		price += p.jitter(price * 0.1)
		price = float64(int(price/5) * 5) // round to a 5-unit step

		offer := domain.FlightOffer{
			ID: uuid.NewString(),
			Airline: domain.AirlineInfo{
				Code:     opt.code,
				Name:     normalize.AirlineName(opt.code),
				Alliance: normalize.AirlineAlliance(opt.code),
			},
			Outbound: syntheticLeg(params.Origin, params.Destination, opt.departure, duration, opt.stops),
			Price: domain.PriceInfo{
				Amount:   price * float64(params.Adults),
				Currency: mockCurrency,
			},
			Cabin: normalize.CabinLabel(string(params.Cabin)),
		}

		if params.RoundTrip() {
			ret := syntheticLeg(params.Destination, params.Origin, (opt.departure+3)%24, duration, opt.stops)
			offer.Return = &ret
			offer.Price.Amount *= 1.9
		}

		offers = append(offers, offer)
	}

	return offers, nil
}

// syntheticLeg builds a leg with a plausible clock window.
func syntheticLeg(from, to string, departureHour, durationMinutes, stops int) domain.FlightLeg {
	arrival := (departureHour*60 + durationMinutes) % (24 * 60)
	return domain.FlightLeg{
		DepartureAirport: from,
		ArrivalAirport:   to,
		DepartureTime:    fmt.Sprintf("%02d:00", departureHour%24),
		ArrivalTime:      fmt.Sprintf("%02d:%02d", arrival/60, arrival%60),
		DurationMinutes:  durationMinutes,
		Stops:            stops,
	}
}

// ListHotelsByCity returns seeded hotels for known cities and generated
// generic hotels otherwise, so results are never empty.
func (p *Provider) ListHotelsByCity(_ context.Context, cityCode string) ([]domain.HotelListing, error) {
	city := p.seeds.cityForQuery(cityCode)
	if city == nil {
		// The query may be an airport code; map it to its city first
		// (e.g. CDG resolves to PAR).
		if ap := p.seeds.airportForCode(cityCode); ap != nil {
			city = p.seeds.cityForQuery(ap.CityCode)
		}
	}
	if city == nil {
		return genericListings(cityCode), nil
	}

	listings := make([]domain.HotelListing, 0, len(city.Hotels))
	for i, h := range city.Hotels {
		listings = append(listings, domain.HotelListing{
			HotelID:  hotelID(city.CityCode, i),
			Name:     h.Name,
			CityCode: city.CityCode,
		})
	}
	return listings, nil
}

// ListHotelsByGeocode maps the point to the nearest seeded destination
// and reuses the city lookup.
func (p *Provider) ListHotelsByGeocode(ctx context.Context, geo domain.GeoCode, _ int) ([]domain.HotelListing, error) {
	if dest := p.seeds.destinationNear(geo); dest != nil {
		return p.ListHotelsByCity(ctx, dest.CityCode)
	}
	return genericListings("UNK"), nil
}

// HotelOffers prices each requested hotel from its seed base rate with
// a small random premium.
func (p *Provider) HotelOffers(_ context.Context, hotelIDs []string, params domain.HotelSearchParams) ([]domain.HotelOffer, error) {
	nights := params.Nights()
	if nights < 1 {
		nights = 1
	}

	offers := make([]domain.HotelOffer, 0, len(hotelIDs))
	for _, id := range hotelIDs {
		name, cityCode, rate, amenities := p.hotelByID(id)
		nightly := rate + p.jitter(rate*0.15)
		nightly = float64(int(nightly))

		offers = append(offers, domain.HotelOffer{
			HotelID:       id,
			Name:          name,
			CityCode:      cityCode,
			Rating:        3 + float64(int(p.jitter(4)))/2, // 3.0 to 4.5 stars
			PricePerNight: nightly,
			TotalPrice:    nightly * float64(nights) * float64(params.Rooms),
			Currency:      mockCurrency,
			Amenities:     amenities,
		})
	}
	return offers, nil
}

// HotelSentiments generates stable-shaped scores on the 0-5 scale.
func (p *Provider) HotelSentiments(_ context.Context, hotelIDs []string) (map[string]float64, error) {
	scores := make(map[string]float64, len(hotelIDs))
	for _, id := range hotelIDs {
		scores[id] = 3.5 + float64(int(p.jitter(15)))/10 // 3.5 to 4.9
	}
	return scores, nil
}

// SearchActivities returns the nearest destination's seeded activities,
// or a generic set when the point matches no destination.
func (p *Provider) SearchActivities(_ context.Context, geo domain.GeoCode, _ int) ([]domain.Activity, error) {
	dest := p.seeds.destinationNear(geo)
	if dest == nil {
		return []domain.Activity{
			{
				ID:          uuid.NewString(),
				Name:        "City Highlights Walking Tour",
				Description: "Guided half-day walk through the main sights",
				GeoCode:     geo,
				Rating:      4.2,
				Price:       35 + p.jitter(20),
				Currency:    mockCurrency,
			},
		}, nil
	}

	activities := make([]domain.Activity, 0, len(dest.Activities))
	for _, a := range dest.Activities {
		activities = append(activities, domain.Activity{
			ID:          uuid.NewString(),
			Name:        a.Name,
			Description: a.Description,
			GeoCode:     domain.GeoCode{Latitude: dest.Latitude, Longitude: dest.Longitude},
			Rating:      4 + float64(int(p.jitter(10)))/10,
			Price:       float64(25 + int(p.jitter(95))),
			Currency:    mockCurrency,
		})
	}
	return activities, nil
}

// Destinations exposes the seeded holiday destinations. The package
// composer uses this as its catalog in mock mode and as the default
// catalog in live mode.
func (p *Provider) Destinations() []domain.Destination {
	dests := make([]domain.Destination, 0, len(p.seeds.destinations))
	for _, d := range p.seeds.destinations {
		dests = append(dests, domain.Destination{
			Name:       d.Name,
			Country:    d.Country,
			CityCode:   d.CityCode,
			GeoCode:    domain.GeoCode{Latitude: d.Latitude, Longitude: d.Longitude},
			Highlights: d.Highlights,
		})
	}
	return dests
}

// hotelByID resolves a synthetic hotel ID back to its seed entry.
// Unknown IDs get a generic profile derived from a stable hash.
func (p *Provider) hotelByID(id string) (name, cityCode string, baseRate float64, amenities []string) {
	parts := strings.Split(id, "-")
	if len(parts) == 3 && parts[0] == hotelIDPrefix {
		if idx, err := strconv.Atoi(parts[2]); err == nil {
			if city := p.seeds.cityForQuery(parts[1]); city != nil && idx < len(city.Hotels) {
				h := city.Hotels[idx]
				return h.Name, city.CityCode, h.BaseRate, h.Amenities
			}
		}
	}
	return "City Center Hotel " + id, "", 80 + float64(stableHash(id)%120), []string{"WIFI"}
}

// hotelID builds a synthetic hotel identifier.
func hotelID(cityCode string, index int) string {
	return fmt.Sprintf("%s-%s-%d", hotelIDPrefix, cityCode, index)
}

// genericListings fabricates a minimal hotel directory for unknown cities.
func genericListings(cityCode string) []domain.HotelListing {
	names := []string{"Grand City Hotel", "Business Inn", "Boutique Residence", "Economy Suites"}
	listings := make([]domain.HotelListing, 0, len(names))
	for i, n := range names {
		listings = append(listings, domain.HotelListing{
			HotelID:  hotelID(cityCode, i),
			Name:     n,
			CityCode: cityCode,
		})
	}
	return listings
}

// routeProfile derives a stable base price and duration for an airport
// pair. Both directions of a route share a profile.
func routeProfile(origin, destination string) (price float64, durationMinutes int) {
	a, b := origin, destination
	if a > b {
		a, b = b, a
	}
	h := stableHash(a + "-" + b)
	price = 120 + float64(h%380)            // 120 to 499
	durationMinutes = 90 + int(h/7%540)     // 1.5h to 10.5h
	return price, durationMinutes
}

// stableHash hashes a string to a non-negative int.
func stableHash(s string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(s))
	return int(h.Sum32() & 0x7fffffff)
}

// Ensure Provider implements domain.TravelProvider at compile time.
var _ domain.TravelProvider = (*Provider)(nil)

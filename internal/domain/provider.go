package domain

import "context"

//go:generate mockgen -source=provider.go -destination=mock_provider.go -package=domain

// TravelProvider is the single upstream data source for flights, hotels
// and activities. Two implementations exist: the live Amadeus-backed
// client and the credential-free mock provider. The implementation is
// chosen once at construction; callers never know which mode produced
// the data.
type TravelProvider interface {
	// Name returns the provider's unique identifier (e.g., "amadeus", "mock").
	Name() string

	// SearchFlights returns normalized flight offers for the given search.
	SearchFlights(ctx context.Context, params SearchParams) ([]FlightOffer, error)

	// ListHotelsByCity returns hotel listings for an IATA city code.
	ListHotelsByCity(ctx context.Context, cityCode string) ([]HotelListing, error)

	// ListHotelsByGeocode returns hotel listings within radiusKm of a point.
	ListHotelsByGeocode(ctx context.Context, geo GeoCode, radiusKm int) ([]HotelListing, error)

	// HotelOffers returns priced stays for the given hotel IDs.
	HotelOffers(ctx context.Context, hotelIDs []string, params HotelSearchParams) ([]HotelOffer, error)

	// HotelSentiments returns aggregate guest ratings keyed by hotel ID,
	// normalized onto the 0-5 scale.
	HotelSentiments(ctx context.Context, hotelIDs []string) (map[string]float64, error)

	// SearchActivities returns bookable activities within radiusKm of a point.
	SearchActivities(ctx context.Context, geo GeoCode, radiusKm int) ([]Activity, error)
}

// HotelListing is an unpriced hotel directory entry, as returned by the
// provider's reference-data lookup. Pricing comes from HotelOffers.
type HotelListing struct {
	// HotelID is the provider's hotel identifier
	HotelID string `json:"hotelId"`

	// Name is the hotel display name
	Name string `json:"name"`

	// CityCode is the IATA city code
	CityCode string `json:"cityCode,omitempty"`

	// GeoCode is the hotel location
	GeoCode GeoCode `json:"geoCode"`
}

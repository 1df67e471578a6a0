package domain

// GeoCode is a latitude/longitude pair.
type GeoCode struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// HotelOffer represents a priced hotel stay.
type HotelOffer struct {
	// HotelID is the provider's hotel identifier
	HotelID string `json:"hotelId"`

	// Name is the hotel display name
	Name string `json:"name"`

	// CityCode is the IATA city code the hotel belongs to
	CityCode string `json:"cityCode,omitempty"`

	// GeoCode is the hotel location
	GeoCode GeoCode `json:"geoCode"`

	// Rating is the star rating on a 0-5 scale. Provider sentiment
	// scores on a 0-100 scale are normalized onto this one.
	Rating float64 `json:"rating"`

	// PricePerNight is the nightly rate
	PricePerNight float64 `json:"pricePerNight"`

	// TotalPrice is the price for the whole stay
	TotalPrice float64 `json:"totalPrice"`

	// Currency is the ISO 4217 currency code
	Currency string `json:"currency"`

	// Amenities lists the hotel amenities, when known
	Amenities []string `json:"amenities,omitempty"`
}

// Activity represents a bookable activity or excursion.
type Activity struct {
	// ID is the provider's activity identifier
	ID string `json:"id"`

	// Name is the activity display name
	Name string `json:"name"`

	// Description is a short description of the activity
	Description string `json:"description,omitempty"`

	// GeoCode is the activity location
	GeoCode GeoCode `json:"geoCode"`

	// Rating is the aggregate rating on a 0-5 scale
	Rating float64 `json:"rating"`

	// Price is the per-person price
	Price float64 `json:"price"`

	// Currency is the ISO 4217 currency code
	Currency string `json:"currency"`

	// BookingLink is the external booking URL, when available
	BookingLink string `json:"bookingLink,omitempty"`
}

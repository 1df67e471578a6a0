package domain

import (
	"fmt"
	"strings"
)

// PackageType classifies a holiday package into a price band.
type PackageType string

// Package type bands. The bands overlap by design: a package priced at
// 3500 satisfies both standard and luxury.
const (
	PackageBudget   PackageType = "budget"
	PackageStandard PackageType = "standard"
	PackageLuxury   PackageType = "luxury"
)

// Price band boundaries per package type.
const (
	budgetMaxPrice   = 2000
	standardMinPrice = 1000
	standardMaxPrice = 4000
	luxuryMinPrice   = 3000
)

// IsValid checks if the package type is a supported value.
func (t PackageType) IsValid() bool {
	switch t {
	case PackageBudget, PackageStandard, PackageLuxury:
		return true
	default:
		return false
	}
}

// InBand reports whether a total price falls inside the type's price band.
func (t PackageType) InBand(totalPrice float64) bool {
	switch t {
	case PackageBudget:
		return totalPrice <= budgetMaxPrice
	case PackageStandard:
		return totalPrice >= standardMinPrice && totalPrice <= standardMaxPrice
	case PackageLuxury:
		return totalPrice >= luxuryMinPrice
	default:
		return true
	}
}

// Destination identifies a holiday destination.
type Destination struct {
	// Name is the destination display name (e.g., "Bali")
	Name string `json:"name"`

	// Country is the destination country (e.g., "Indonesia")
	Country string `json:"country"`

	// CityCode is the IATA city code used for provider lookups
	CityCode string `json:"cityCode"`

	// GeoCode is the destination center used for activity searches
	GeoCode GeoCode `json:"geoCode"`

	// Highlights lists destination selling points used to decorate
	// composed packages
	Highlights []string `json:"highlights,omitempty"`
}

// HolidayPackage bundles a round-trip flight, a hotel stay and a set of
// activities for one destination.
//
// Invariants: TotalPrice equals the flight price plus the hotel total,
// and Nights equals the night count between the departure and return dates.
type HolidayPackage struct {
	// ID is a unique identifier for this package
	ID string `json:"id"`

	// Destination identifies where the package goes
	Destination Destination `json:"destination"`

	// Flight is the round-trip flight offer with combined price
	Flight FlightOffer `json:"flight"`

	// Hotel is the hotel stay for the whole duration
	Hotel HotelOffer `json:"hotel"`

	// Activities is the ordered list of included activities
	Activities []Activity `json:"activities"`

	// Nights is the package duration in nights
	Nights int `json:"nights"`

	// TotalPrice is the aggregate package price (flight + hotel)
	TotalPrice float64 `json:"totalPrice"`

	// Currency is the ISO 4217 currency code
	Currency string `json:"currency"`

	// Inclusions lists what the package price covers
	Inclusions []string `json:"inclusions,omitempty"`

	// Highlights lists destination selling points
	Highlights []string `json:"highlights,omitempty"`
}

// MatchesDestination reports whether the package destination matches the
// given query by case-insensitive substring against the destination name,
// city code or country. An empty query matches everything.
func (p *HolidayPackage) MatchesDestination(query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(p.Destination.Name), q) ||
		strings.Contains(strings.ToLower(p.Destination.CityCode), q) ||
		strings.Contains(strings.ToLower(p.Destination.Country), q)
}

// PackageSearchParams defines the criteria for a holiday package search.
type PackageSearchParams struct {
	// Destination is an optional substring matched against destination
	// name, city code and country
	Destination string `json:"destination,omitempty"`

	// Budget is the optional total price ceiling; 0 means no ceiling
	Budget float64 `json:"budget,omitempty"`

	// Nights is the optional exact package duration; 0 means any
	Nights int `json:"nights,omitempty"`

	// Type is the optional package price band
	Type PackageType `json:"type,omitempty"`

	// Origin optionally overrides the configured home airport
	Origin string `json:"origin,omitempty"`

	// DepartureDate optionally fixes the outbound date (YYYY-MM-DD);
	// defaults to 30 days from now
	DepartureDate string `json:"departureDate,omitempty"`
}

// Validate checks if the package search parameters are valid.
func (p *PackageSearchParams) Validate() error {
	if p.Budget < 0 {
		return fmt.Errorf("%w: budget must not be negative", ErrInvalidRequest)
	}
	if p.Nights < 0 {
		return fmt.Errorf("%w: nights must not be negative", ErrInvalidRequest)
	}
	if p.Type != "" && !p.Type.IsValid() {
		return fmt.Errorf("%w: type must be one of: budget, standard, luxury; got %q", ErrInvalidRequest, p.Type)
	}
	if p.Origin != "" && !airportCodeRegex.MatchString(p.Origin) {
		return fmt.Errorf("%w: origin must be a valid 3-letter IATA code, got %q", ErrInvalidRequest, p.Origin)
	}
	if p.DepartureDate != "" && !dateRegex.MatchString(p.DepartureDate) {
		return fmt.Errorf("%w: departureDate must be in YYYY-MM-DD format, got %q", ErrInvalidRequest, p.DepartureDate)
	}
	return nil
}

// Matches reports whether the package satisfies every specified criterion.
// Unset criteria impose no restriction.
func (p *PackageSearchParams) Matches(pkg *HolidayPackage) bool {
	if !pkg.MatchesDestination(p.Destination) {
		return false
	}
	if p.Budget > 0 && pkg.TotalPrice > p.Budget {
		return false
	}
	if p.Nights > 0 && pkg.Nights != p.Nights {
		return false
	}
	if p.Type != "" && !p.Type.InBand(pkg.TotalPrice) {
		return false
	}
	return true
}

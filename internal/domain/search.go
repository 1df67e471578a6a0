package domain

import (
	"fmt"
	"regexp"
	"time"
)

// CabinClass is the fare tier requested for a flight search.
// Values use the upstream provider's tokens; display labels are
// produced by the normalize package.
type CabinClass string

// Supported cabin classes.
const (
	CabinEconomy        CabinClass = "ECONOMY"
	CabinPremiumEconomy CabinClass = "PREMIUM_ECONOMY"
	CabinBusiness       CabinClass = "BUSINESS"
	CabinFirst          CabinClass = "FIRST"
)

// IsValid checks if the cabin class is a supported value.
func (c CabinClass) IsValid() bool {
	switch c {
	case CabinEconomy, CabinPremiumEconomy, CabinBusiness, CabinFirst:
		return true
	default:
		return false
	}
}

// SearchParams defines the parameters for a flight search request.
type SearchParams struct {
	// Origin is the IATA code of the departure airport (e.g., "LHR")
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport (e.g., "DXB")
	Destination string `json:"destination"`

	// DepartureDate is the outbound date in YYYY-MM-DD format
	DepartureDate string `json:"departureDate"`

	// ReturnDate is the optional inbound date in YYYY-MM-DD format.
	// When set, a round-trip search is performed.
	ReturnDate string `json:"returnDate,omitempty"`

	// Adults is the number of adult passengers (at least 1)
	Adults int `json:"adults"`

	// Children is the number of child passengers
	Children int `json:"children,omitempty"`

	// Infants is the number of infant passengers
	Infants int `json:"infants,omitempty"`

	// Cabin is the requested cabin class (default: economy)
	Cabin CabinClass `json:"cabin,omitempty"`
}

// airportCodeRegex matches valid IATA location codes (3 uppercase letters).
var airportCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// dateRegex matches dates in YYYY-MM-DD format.
var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Validate checks if the search parameters are valid.
// Returns a wrapped ErrInvalidRequest error if validation fails.
func (p *SearchParams) Validate() error {
	if p.Origin == "" {
		return fmt.Errorf("%w: origin is required", ErrInvalidRequest)
	}
	if !airportCodeRegex.MatchString(p.Origin) {
		return fmt.Errorf("%w: origin must be a valid 3-letter IATA code, got %q", ErrInvalidRequest, p.Origin)
	}

	if p.Destination == "" {
		return fmt.Errorf("%w: destination is required", ErrInvalidRequest)
	}
	if !airportCodeRegex.MatchString(p.Destination) {
		return fmt.Errorf("%w: destination must be a valid 3-letter IATA code, got %q", ErrInvalidRequest, p.Destination)
	}

	if p.Origin == p.Destination {
		return fmt.Errorf("%w: origin and destination must be different", ErrInvalidRequest)
	}

	if p.DepartureDate == "" {
		return fmt.Errorf("%w: departureDate is required", ErrInvalidRequest)
	}
	if !dateRegex.MatchString(p.DepartureDate) {
		return fmt.Errorf("%w: departureDate must be in YYYY-MM-DD format, got %q", ErrInvalidRequest, p.DepartureDate)
	}
	departure, err := time.Parse("2006-01-02", p.DepartureDate)
	if err != nil {
		return fmt.Errorf("%w: departureDate is not a valid date: %s", ErrInvalidRequest, p.DepartureDate)
	}

	if p.ReturnDate != "" {
		if !dateRegex.MatchString(p.ReturnDate) {
			return fmt.Errorf("%w: returnDate must be in YYYY-MM-DD format, got %q", ErrInvalidRequest, p.ReturnDate)
		}
		ret, err := time.Parse("2006-01-02", p.ReturnDate)
		if err != nil {
			return fmt.Errorf("%w: returnDate is not a valid date: %s", ErrInvalidRequest, p.ReturnDate)
		}
		if ret.Before(departure) {
			return fmt.Errorf("%w: returnDate must not be before departureDate", ErrInvalidRequest)
		}
	}

	if p.Adults < 1 {
		return fmt.Errorf("%w: adults must be at least 1", ErrInvalidRequest)
	}
	if p.Children < 0 {
		return fmt.Errorf("%w: children must not be negative", ErrInvalidRequest)
	}
	if p.Infants < 0 {
		return fmt.Errorf("%w: infants must not be negative", ErrInvalidRequest)
	}

	if p.Cabin != "" && !p.Cabin.IsValid() {
		return fmt.Errorf("%w: cabin must be one of: ECONOMY, PREMIUM_ECONOMY, BUSINESS, FIRST; got %q", ErrInvalidRequest, p.Cabin)
	}

	return nil
}

// SetDefaults applies default values to empty optional fields.
func (p *SearchParams) SetDefaults() {
	if p.Adults == 0 {
		p.Adults = 1
	}
	if p.Cabin == "" {
		p.Cabin = CabinEconomy
	}
}

// RoundTrip reports whether the search requests a return leg.
func (p *SearchParams) RoundTrip() bool {
	return p.ReturnDate != ""
}

// HotelSearchParams defines the parameters for a hotel search request.
type HotelSearchParams struct {
	// CityCode is the IATA city code to search hotels in (e.g., "PAR")
	CityCode string `json:"cityCode"`

	// CheckInDate is the check-in date in YYYY-MM-DD format
	CheckInDate string `json:"checkInDate"`

	// CheckOutDate is the check-out date in YYYY-MM-DD format
	CheckOutDate string `json:"checkOutDate"`

	// Adults is the number of adult guests per room (default: 1)
	Adults int `json:"adults"`

	// Rooms is the number of rooms requested (default: 1)
	Rooms int `json:"rooms"`
}

// Validate checks if the hotel search parameters are valid.
func (p *HotelSearchParams) Validate() error {
	if p.CityCode == "" {
		return fmt.Errorf("%w: cityCode is required", ErrInvalidRequest)
	}
	if !airportCodeRegex.MatchString(p.CityCode) {
		return fmt.Errorf("%w: cityCode must be a valid 3-letter IATA code, got %q", ErrInvalidRequest, p.CityCode)
	}

	if p.CheckInDate == "" {
		return fmt.Errorf("%w: checkInDate is required", ErrInvalidRequest)
	}
	if !dateRegex.MatchString(p.CheckInDate) {
		return fmt.Errorf("%w: checkInDate must be in YYYY-MM-DD format, got %q", ErrInvalidRequest, p.CheckInDate)
	}
	checkIn, err := time.Parse("2006-01-02", p.CheckInDate)
	if err != nil {
		return fmt.Errorf("%w: checkInDate is not a valid date: %s", ErrInvalidRequest, p.CheckInDate)
	}

	if p.CheckOutDate == "" {
		return fmt.Errorf("%w: checkOutDate is required", ErrInvalidRequest)
	}
	if !dateRegex.MatchString(p.CheckOutDate) {
		return fmt.Errorf("%w: checkOutDate must be in YYYY-MM-DD format, got %q", ErrInvalidRequest, p.CheckOutDate)
	}
	checkOut, err := time.Parse("2006-01-02", p.CheckOutDate)
	if err != nil {
		return fmt.Errorf("%w: checkOutDate is not a valid date: %s", ErrInvalidRequest, p.CheckOutDate)
	}
	if !checkOut.After(checkIn) {
		return fmt.Errorf("%w: checkOutDate must be after checkInDate", ErrInvalidRequest)
	}

	if p.Adults < 0 || p.Rooms < 0 {
		return fmt.Errorf("%w: adults and rooms must not be negative", ErrInvalidRequest)
	}

	return nil
}

// SetDefaults applies default values to empty optional fields.
func (p *HotelSearchParams) SetDefaults() {
	if p.Adults == 0 {
		p.Adults = 1
	}
	if p.Rooms == 0 {
		p.Rooms = 1
	}
}

// Nights returns the number of nights between check-in and check-out.
// Returns 0 if either date is unparseable; Validate catches that earlier.
func (p *HotelSearchParams) Nights() int {
	checkIn, err := time.Parse("2006-01-02", p.CheckInDate)
	if err != nil {
		return 0
	}
	checkOut, err := time.Parse("2006-01-02", p.CheckOutDate)
	if err != nil {
		return 0
	}
	return int(checkOut.Sub(checkIn).Hours() / 24)
}

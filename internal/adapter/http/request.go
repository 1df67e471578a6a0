// Package http provides the HTTP handler layer for the travel search API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"regexp"
	"strings"
	"time"
)

// SearchFlightsRequest represents the request body for flight search.
type SearchFlightsRequest struct {
	// Origin is the IATA code of the departure airport (e.g., "LHR")
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport (e.g., "DXB")
	Destination string `json:"destination"`

	// DepartureDate is the outbound date in YYYY-MM-DD format
	DepartureDate string `json:"departureDate"`

	// ReturnDate is the optional inbound date in YYYY-MM-DD format
	ReturnDate string `json:"returnDate,omitempty"`

	// Adults is the number of adult passengers (default 1)
	Adults int `json:"adults,omitempty"`

	// Children is the number of child passengers
	Children int `json:"children,omitempty"`

	// Infants is the number of infant passengers
	Infants int `json:"infants,omitempty"`

	// Cabin is the cabin class: economy, premium_economy, business or first
	Cabin string `json:"cabin,omitempty"`

	// Filters contains optional filtering criteria
	Filters *FilterDTO `json:"filters,omitempty"`

	// SortBy specifies how to sort results: cheapest, fastest or best
	SortBy string `json:"sortBy,omitempty"`
}

// FilterDTO represents optional filters for flight search.
// Example: {"price": {"max": 800}, "maxStops": 0, "airlines": ["BA", "LH"]}
type FilterDTO struct {
	// Price filters flights by total price
	Price *PriceRangeDTO `json:"price,omitempty"`

	// MaxStops filters flights with more stops than this value (0 = direct only)
	MaxStops *int `json:"maxStops,omitempty" example:"0"`

	// Airlines filters to only include flights from these airline codes
	Airlines []string `json:"airlines,omitempty" example:"BA,LH"`

	// Alliances filters to only include flights from these alliances
	Alliances []string `json:"alliances,omitempty" example:"Star Alliance"`

	// MaxDurationMinutes filters flights by total duration
	MaxDurationMinutes *int `json:"maxDurationMinutes,omitempty" example:"600"`

	// HideBasicCabin drops plain-economy offers
	HideBasicCabin bool `json:"hideBasicCabin,omitempty"`
}

// PriceRangeDTO represents an inclusive price window.
type PriceRangeDTO struct {
	// Min is the minimum acceptable total price
	Min *float64 `json:"min,omitempty" example:"100"`

	// Max is the maximum acceptable total price
	Max *float64 `json:"max,omitempty" example:"800"`
}

// SearchHotelsRequest represents the request body for hotel search.
type SearchHotelsRequest struct {
	// CityCode is the IATA city code to search hotels in (e.g., "PAR")
	CityCode string `json:"cityCode"`

	// CheckInDate is the check-in date in YYYY-MM-DD format
	CheckInDate string `json:"checkInDate"`

	// CheckOutDate is the check-out date in YYYY-MM-DD format
	CheckOutDate string `json:"checkOutDate"`

	// Adults is the number of adult guests per room (default 1)
	Adults int `json:"adults,omitempty"`

	// Rooms is the number of rooms requested (default 1)
	Rooms int `json:"rooms,omitempty"`
}

// SearchPackagesRequest represents the request body for holiday package search.
type SearchPackagesRequest struct {
	// Destination is an optional substring matched against destination
	// name, city code and country
	Destination string `json:"destination,omitempty"`

	// Budget is the optional total price ceiling
	Budget float64 `json:"budget,omitempty"`

	// Nights is the optional exact package duration
	Nights int `json:"nights,omitempty"`

	// Type is the optional package band: budget, standard or luxury
	Type string `json:"type,omitempty"`

	// Origin optionally overrides the configured home airport
	Origin string `json:"origin,omitempty"`

	// DepartureDate optionally fixes the outbound date (YYYY-MM-DD)
	DepartureDate string `json:"departureDate,omitempty"`
}

// Validation regex patterns.
var (
	airportCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)
	datePattern        = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// Valid cabin classes as accepted on the wire (lowercase).
var validCabins = map[string]bool{
	"economy":         true,
	"premium_economy": true,
	"business":        true,
	"first":           true,
	"":                true, // Empty is valid (defaults to economy)
}

// Valid sort options.
var validSortOptions = map[string]bool{
	"cheapest": true,
	"fastest":  true,
	"best":     true,
	"":         true, // Empty is valid (defaults to best)
}

// Valid package types.
var validPackageTypes = map[string]bool{
	"budget":   true,
	"standard": true,
	"luxury":   true,
	"":         true, // Empty is valid (no band filter)
}

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// Validate validates the flight search request and returns any validation errors.
func (r *SearchFlightsRequest) Validate() error {
	errs := &ValidationErrors{}

	validateAirportCode(errs, "origin", &r.Origin, true)
	validateAirportCode(errs, "destination", &r.Destination, true)

	if r.Origin != "" && r.Origin == r.Destination {
		errs.Add("destination", "destination must be different from origin")
	}

	departure := validateDate(errs, "departureDate", r.DepartureDate, true)
	if r.ReturnDate != "" {
		ret := validateDate(errs, "returnDate", r.ReturnDate, false)
		if departure != nil && ret != nil && ret.Before(*departure) {
			errs.Add("returnDate", "returnDate must not be before departureDate")
		}
	}

	if r.Adults < 0 || r.Adults > 9 {
		errs.Add("adults", "adults must be between 1 and 9")
	}
	if r.Children < 0 {
		errs.Add("children", "children must not be negative")
	}
	if r.Infants < 0 {
		errs.Add("infants", "infants must not be negative")
	}

	if !validCabins[strings.ToLower(r.Cabin)] {
		errs.Add("cabin", "cabin must be one of: economy, premium_economy, business, first")
	}

	if !validSortOptions[strings.ToLower(r.SortBy)] {
		errs.Add("sortBy", "sortBy must be one of: cheapest, fastest, best")
	}

	r.validateFilters(errs)

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func (r *SearchFlightsRequest) validateFilters(errs *ValidationErrors) {
	if r.Filters == nil {
		return
	}

	if r.Filters.MaxStops != nil && *r.Filters.MaxStops < 0 {
		errs.Add("filters.maxStops", "maxStops must not be negative")
	}
	if r.Filters.MaxDurationMinutes != nil && *r.Filters.MaxDurationMinutes <= 0 {
		errs.Add("filters.maxDurationMinutes", "maxDurationMinutes must be positive")
	}
	if p := r.Filters.Price; p != nil {
		if p.Min != nil && *p.Min < 0 {
			errs.Add("filters.price.min", "price.min must not be negative")
		}
		if p.Max != nil && *p.Max < 0 {
			errs.Add("filters.price.max", "price.max must not be negative")
		}
		if p.Min != nil && p.Max != nil && *p.Min > *p.Max {
			errs.Add("filters.price", "price.min must not exceed price.max")
		}
	}
}

// Validate validates the hotel search request.
func (r *SearchHotelsRequest) Validate() error {
	errs := &ValidationErrors{}

	validateAirportCode(errs, "cityCode", &r.CityCode, true)

	checkIn := validateDate(errs, "checkInDate", r.CheckInDate, true)
	checkOut := validateDate(errs, "checkOutDate", r.CheckOutDate, true)
	if checkIn != nil && checkOut != nil && !checkOut.After(*checkIn) {
		errs.Add("checkOutDate", "checkOutDate must be after checkInDate")
	}

	if r.Adults < 0 || r.Adults > 9 {
		errs.Add("adults", "adults must be between 1 and 9")
	}
	if r.Rooms < 0 || r.Rooms > 9 {
		errs.Add("rooms", "rooms must be between 1 and 9")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// Validate validates the package search request.
func (r *SearchPackagesRequest) Validate() error {
	errs := &ValidationErrors{}

	if r.Budget < 0 {
		errs.Add("budget", "budget must not be negative")
	}
	if r.Nights < 0 || r.Nights > 30 {
		errs.Add("nights", "nights must be between 1 and 30")
	}
	if !validPackageTypes[strings.ToLower(r.Type)] {
		errs.Add("type", "type must be one of: budget, standard, luxury")
	}
	if r.Origin != "" {
		validateAirportCode(errs, "origin", &r.Origin, false)
	}
	if r.DepartureDate != "" {
		validateDate(errs, "departureDate", r.DepartureDate, false)
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// validateAirportCode checks an IATA code field, normalizing it to
// uppercase in place when it is well-formed.
func validateAirportCode(errs *ValidationErrors, field string, value *string, required bool) {
	if *value == "" {
		if required {
			errs.Add(field, field+" is required")
		}
		return
	}

	code := strings.ToUpper(*value)
	if !airportCodePattern.MatchString(code) {
		errs.Add(field, field+" must be a valid 3-letter IATA code")
		return
	}
	*value = code
}

// validateDate checks a YYYY-MM-DD field and returns the parsed date
// when valid, for cross-field comparisons.
func validateDate(errs *ValidationErrors, field, value string, required bool) *time.Time {
	if value == "" {
		if required {
			errs.Add(field, field+" is required")
		}
		return nil
	}

	if !datePattern.MatchString(value) {
		errs.Add(field, field+" must be in YYYY-MM-DD format")
		return nil
	}

	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		errs.Add(field, field+" is not a valid calendar date")
		return nil
	}
	return &parsed
}

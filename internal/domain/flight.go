// Package domain contains the core business entities and rules for the travel
// search system. These entities are provider-agnostic and form the foundation
// upon which all other components are built.
package domain

// FlightOffer represents a single priced flight offering.
// Offers are constructed once during normalization and never mutated
// afterwards; filtering and sorting always produce new slices.
type FlightOffer struct {
	// ID is a unique identifier for this offer (provider-assigned or generated)
	ID string `json:"id"`

	// Airline contains information about the validating airline
	Airline AirlineInfo `json:"airline"`

	// Outbound is the outbound leg of the journey
	Outbound FlightLeg `json:"outbound"`

	// Return is the optional return leg for round-trip offers
	Return *FlightLeg `json:"return,omitempty"`

	// Price contains pricing information for the whole offer
	Price PriceInfo `json:"price"`

	// Cabin is the cabin class display label (e.g., "Economy", "Business")
	Cabin string `json:"cabin"`
}

// FlightLeg describes one direction of a journey. For multi-segment legs
// the window spans the first segment's departure to the last segment's
// arrival, and Stops equals the segment count minus one.
type FlightLeg struct {
	// DepartureAirport is the IATA code of the departure airport
	DepartureAirport string `json:"departureAirport"`

	// ArrivalAirport is the IATA code of the arrival airport
	ArrivalAirport string `json:"arrivalAirport"`

	// DepartureTime is the local-clock departure time as "HH:MM"
	DepartureTime string `json:"departureTime"`

	// ArrivalTime is the local-clock arrival time as "HH:MM"
	ArrivalTime string `json:"arrivalTime"`

	// DurationMinutes is the total leg duration in minutes
	DurationMinutes int `json:"durationMinutes"`

	// Stops is the number of intermediate stops (0 = direct)
	Stops int `json:"stops"`
}

// AirlineInfo contains information about an airline.
type AirlineInfo struct {
	// Code is the IATA airline code (e.g., "EK")
	Code string `json:"code"`

	// Name is the display name (e.g., "Emirates"); falls back to the
	// code when the airline is not in the lookup table
	Name string `json:"name"`

	// Alliance is the airline grouping (e.g., "Star Alliance"), empty
	// when the airline belongs to none
	Alliance string `json:"alliance,omitempty"`
}

// PriceInfo contains pricing information.
type PriceInfo struct {
	// Amount is the numeric price value
	Amount float64 `json:"amount"`

	// Currency is the ISO 4217 currency code (e.g., "USD")
	Currency string `json:"currency"`
}

// TotalDurationMinutes returns the combined duration of both legs.
func (o *FlightOffer) TotalDurationMinutes() int {
	total := o.Outbound.DurationMinutes
	if o.Return != nil {
		total += o.Return.DurationMinutes
	}
	return total
}

// TotalStops returns the combined stop count of both legs.
func (o *FlightOffer) TotalStops() int {
	stops := o.Outbound.Stops
	if o.Return != nil {
		stops += o.Return.Stops
	}
	return stops
}

package amadeus

import (
	"strconv"

	"github.com/travel-search/travel-search-aggregation-service/internal/domain"
	"github.com/travel-search/travel-search-aggregation-service/internal/normalize"
)

// normalizeFlightOffers converts the raw flight-offers payload into
// domain offers. Offers that cannot be normalized are skipped rather
// than failing the whole batch.
func normalizeFlightOffers(resp *flightOffersResponse) []domain.FlightOffer {
	result := make([]domain.FlightOffer, 0, len(resp.Data))
	for _, raw := range resp.Data {
		offer, ok := normalizeFlightOffer(raw)
		if !ok {
			continue
		}
		result = append(result, offer)
	}
	return result
}

// normalizeFlightOffer converts one raw offer. The outbound itinerary is
// required; a second itinerary becomes the return leg.
func normalizeFlightOffer(raw rawFlightOffer) (domain.FlightOffer, bool) {
	if len(raw.Itineraries) == 0 {
		return domain.FlightOffer{}, false
	}

	outbound, ok := normalizeLeg(raw.Itineraries[0])
	if !ok {
		return domain.FlightOffer{}, false
	}

	offer := domain.FlightOffer{
		ID:       raw.ID,
		Outbound: outbound,
		Price: domain.PriceInfo{
			Amount:   parseAmount(raw.Price.GrandTotal),
			Currency: raw.Price.Currency,
		},
		Cabin: normalize.CabinLabel(cabinToken(raw)),
	}

	code := airlineCode(raw)
	offer.Airline = domain.AirlineInfo{
		Code:     code,
		Name:     normalize.AirlineName(code),
		Alliance: normalize.AirlineAlliance(code),
	}

	if len(raw.Itineraries) >= 2 {
		if ret, ok := normalizeLeg(raw.Itineraries[1]); ok {
			offer.Return = &ret
		}
	}

	return offer, true
}

// normalizeLeg converts one itinerary into a flight leg. The leg window
// spans the first segment's departure to the last segment's arrival and
// stops equal the segment count minus one.
func normalizeLeg(it rawItinerary) (domain.FlightLeg, bool) {
	if len(it.Segments) == 0 {
		return domain.FlightLeg{}, false
	}

	first := it.Segments[0]
	last := it.Segments[len(it.Segments)-1]

	leg := domain.FlightLeg{
		DepartureAirport: first.Departure.IataCode,
		ArrivalAirport:   last.Arrival.IataCode,
		DepartureTime:    normalize.ClockString(first.Departure.At),
		ArrivalTime:      normalize.ClockString(last.Arrival.At),
		Stops:            len(it.Segments) - 1,
	}

	// Prefer the duration token; fall back to the timestamp pair.
	// Both paths agree at minute precision.
	if minutes, err := normalize.ParseISODuration(it.Duration); err == nil {
		leg.DurationMinutes = minutes
	} else {
		dep, okDep := normalize.ParseTimestamp(first.Departure.At)
		arr, okArr := normalize.ParseTimestamp(last.Arrival.At)
		if !okDep || !okArr {
			return domain.FlightLeg{}, false
		}
		leg.DurationMinutes = normalize.MinutesBetween(dep, arr)
	}

	return leg, true
}

// airlineCode picks the offer's airline: the first outbound segment's
// carrier, falling back to the validating airline.
func airlineCode(raw rawFlightOffer) string {
	if len(raw.Itineraries) > 0 && len(raw.Itineraries[0].Segments) > 0 {
		return raw.Itineraries[0].Segments[0].CarrierCode
	}
	if len(raw.ValidatingAirlineCodes) > 0 {
		return raw.ValidatingAirlineCodes[0]
	}
	return ""
}

// cabinToken extracts the cabin token from the first traveler pricing.
func cabinToken(raw rawFlightOffer) string {
	if len(raw.TravelerPricings) > 0 && len(raw.TravelerPricings[0].FareDetailsBySegment) > 0 {
		return raw.TravelerPricings[0].FareDetailsBySegment[0].Cabin
	}
	return string(domain.CabinEconomy)
}

// normalizeHotelList converts raw hotel directory entries.
func normalizeHotelList(resp *hotelListResponse) []domain.HotelListing {
	result := make([]domain.HotelListing, 0, len(resp.Data))
	for _, raw := range resp.Data {
		result = append(result, domain.HotelListing{
			HotelID:  raw.HotelID,
			Name:     raw.Name,
			CityCode: raw.IataCode,
			GeoCode: domain.GeoCode{
				Latitude:  raw.GeoCode.Latitude,
				Longitude: raw.GeoCode.Longitude,
			},
		})
	}
	return result
}

// normalizeHotelOffers converts raw priced stays. Unavailable entries
// and entries without offers are skipped.
func normalizeHotelOffers(resp *hotelOffersResponse, nights int) []domain.HotelOffer {
	if nights < 1 {
		nights = 1
	}

	result := make([]domain.HotelOffer, 0, len(resp.Data))
	for _, raw := range resp.Data {
		if !raw.Available || len(raw.Offers) == 0 {
			continue
		}

		total := parseAmount(raw.Offers[0].Price.Total)
		if total <= 0 {
			continue
		}

		result = append(result, domain.HotelOffer{
			HotelID:  raw.Hotel.HotelID,
			Name:     raw.Hotel.Name,
			CityCode: raw.Hotel.CityCode,
			GeoCode: domain.GeoCode{
				Latitude:  raw.Hotel.Latitude,
				Longitude: raw.Hotel.Longitude,
			},
			Rating:        normalizeRating(raw.Hotel.Rating),
			PricePerNight: total / float64(nights),
			TotalPrice:    total,
			Currency:      raw.Offers[0].Price.Currency,
			Amenities:     raw.Hotel.Amenities,
		})
	}
	return result
}

// normalizeSentiments converts sentiment scores onto the 0-5 scale.
func normalizeSentiments(resp *hotelSentimentsResponse) map[string]float64 {
	result := make(map[string]float64, len(resp.Data))
	for _, raw := range resp.Data {
		result[raw.HotelID] = scaleRating(float64(raw.OverallRating))
	}
	return result
}

// normalizeActivities converts raw activities.
func normalizeActivities(resp *activitiesResponse) []domain.Activity {
	result := make([]domain.Activity, 0, len(resp.Data))
	for _, raw := range resp.Data {
		result = append(result, domain.Activity{
			ID:          raw.ID,
			Name:        raw.Name,
			Description: raw.ShortDescription,
			GeoCode: domain.GeoCode{
				Latitude:  raw.GeoCode.Latitude,
				Longitude: raw.GeoCode.Longitude,
			},
			Rating:      scaleRating(parseAmount(raw.Rating)),
			Price:       parseAmount(raw.Price.Amount),
			Currency:    raw.Price.CurrencyCode,
			BookingLink: raw.BookingLink,
		})
	}
	return result
}

// normalizeRating parses a star-rating string onto the 0-5 scale.
func normalizeRating(s string) float64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return scaleRating(v)
}

// scaleRating maps provider ratings onto 0-5. Values above 5 are
// treated as the 0-100 sentiment scale and divided by 20.
func scaleRating(v float64) float64 {
	if v > 5 {
		return v / 20
	}
	if v < 0 {
		return 0
	}
	return v
}

package amadeus

// Raw response shapes for the provider's shopping and reference-data
// endpoints. Only the fields the normalizer consumes are declared.

// errorEnvelope is the provider's error payload for non-2xx responses.
type errorEnvelope struct {
	Errors []struct {
		Status int    `json:"status"`
		Code   int    `json:"code"`
		Title  string `json:"title"`
		Detail string `json:"detail"`
	} `json:"errors"`
}

// detail returns the first provider-supplied error detail, if any.
func (e *errorEnvelope) detail() string {
	if len(e.Errors) == 0 {
		return ""
	}
	if e.Errors[0].Detail != "" {
		return e.Errors[0].Detail
	}
	return e.Errors[0].Title
}

// flightOffersResponse is the GET /v2/shopping/flight-offers payload.
type flightOffersResponse struct {
	Data []rawFlightOffer `json:"data"`
}

type rawFlightOffer struct {
	ID          string         `json:"id"`
	Itineraries []rawItinerary `json:"itineraries"`
	Price       struct {
		GrandTotal string `json:"grandTotal"`
		Currency   string `json:"currency"`
	} `json:"price"`
	TravelerPricings []struct {
		FareDetailsBySegment []struct {
			Cabin string `json:"cabin"`
		} `json:"fareDetailsBySegment"`
	} `json:"travelerPricings"`
	ValidatingAirlineCodes []string `json:"validatingAirlineCodes"`
}

// rawItinerary is one direction of a journey.
type rawItinerary struct {
	Duration string       `json:"duration"`
	Segments []rawSegment `json:"segments"`
}

// rawSegment is a single flight segment within an itinerary.
type rawSegment struct {
	Departure   rawEndpoint `json:"departure"`
	Arrival     rawEndpoint `json:"arrival"`
	CarrierCode string      `json:"carrierCode"`
	Number      string      `json:"number"`
}

// rawEndpoint is a segment departure or arrival point.
type rawEndpoint struct {
	IataCode string `json:"iataCode"`
	At       string `json:"at"`
}

// hotelListResponse is the reference-data hotel lookup payload
// (by-city and by-geocode share the shape).
type hotelListResponse struct {
	Data []struct {
		HotelID string `json:"hotelId"`
		Name    string `json:"name"`
		GeoCode struct {
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
		} `json:"geoCode"`
		Address struct {
			CityName    string `json:"cityName"`
			CountryCode string `json:"countryCode"`
		} `json:"address"`
		IataCode string `json:"iataCode"`
	} `json:"data"`
}

// hotelOffersResponse is the GET /v3/shopping/hotel-offers payload.
type hotelOffersResponse struct {
	Data []struct {
		Hotel struct {
			HotelID   string   `json:"hotelId"`
			Name      string   `json:"name"`
			CityCode  string   `json:"cityCode"`
			Rating    string   `json:"rating"`
			Latitude  float64  `json:"latitude"`
			Longitude float64  `json:"longitude"`
			Amenities []string `json:"amenities"`
		} `json:"hotel"`
		Available bool `json:"available"`
		Offers    []struct {
			CheckInDate  string `json:"checkInDate"`
			CheckOutDate string `json:"checkOutDate"`
			Price        struct {
				Total    string `json:"total"`
				Currency string `json:"currency"`
			} `json:"price"`
		} `json:"offers"`
	} `json:"data"`
}

// hotelSentimentsResponse is the GET /v2/e-reputation/hotel-sentiments payload.
type hotelSentimentsResponse struct {
	Data []struct {
		HotelID       string `json:"hotelId"`
		OverallRating int    `json:"overallRating"`
	} `json:"data"`
}

// activitiesResponse is the GET /v1/shopping/activities payload.
type activitiesResponse struct {
	Data []struct {
		ID               string `json:"id"`
		Name             string `json:"name"`
		ShortDescription string `json:"shortDescription"`
		GeoCode          struct {
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
		} `json:"geoCode"`
		Rating      string `json:"rating"`
		BookingLink string `json:"bookingLink"`
		Price       struct {
			Amount       string `json:"amount"`
			CurrencyCode string `json:"currencyCode"`
		} `json:"price"`
	} `json:"data"`
}

package amadeus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeFlightOffers_SkipsMalformed(t *testing.T) {
	resp := &flightOffersResponse{
		Data: []rawFlightOffer{
			{ID: "no-itineraries"},
			{
				ID: "good",
				Itineraries: []rawItinerary{
					{
						Duration: "PT2H",
						Segments: []rawSegment{
							{
								Departure:   rawEndpoint{IataCode: "LHR", At: "2026-10-01T08:00:00"},
								Arrival:     rawEndpoint{IataCode: "CDG", At: "2026-10-01T10:00:00"},
								CarrierCode: "BA",
							},
						},
					},
				},
			},
			{ID: "no-segments", Itineraries: []rawItinerary{{Duration: "PT1H"}}},
		},
	}

	offers := normalizeFlightOffers(resp)
	require.Len(t, offers, 1)
	assert.Equal(t, "good", offers[0].ID)
}

func TestNormalizeFlightOffer_RoundTrip(t *testing.T) {
	raw := rawFlightOffer{
		ID: "rt",
		Itineraries: []rawItinerary{
			{
				Duration: "PT3H",
				Segments: []rawSegment{{
					Departure:   rawEndpoint{IataCode: "LHR", At: "2026-10-01T08:00:00"},
					Arrival:     rawEndpoint{IataCode: "FCO", At: "2026-10-01T11:00:00"},
					CarrierCode: "AZ",
				}},
			},
			{
				Duration: "PT3H15M",
				Segments: []rawSegment{{
					Departure:   rawEndpoint{IataCode: "FCO", At: "2026-10-08T17:00:00"},
					Arrival:     rawEndpoint{IataCode: "LHR", At: "2026-10-08T20:15:00"},
					CarrierCode: "AZ",
				}},
			},
		},
	}
	raw.Price.GrandTotal = "312.40"
	raw.Price.Currency = "GBP"

	offer, ok := normalizeFlightOffer(raw)
	require.True(t, ok)
	require.NotNil(t, offer.Return)

	assert.Equal(t, 180, offer.Outbound.DurationMinutes)
	assert.Equal(t, 195, offer.Return.DurationMinutes)
	assert.Equal(t, 375, offer.TotalDurationMinutes())
	assert.Equal(t, "FCO", offer.Return.DepartureAirport)
	assert.Equal(t, "LHR", offer.Return.ArrivalAirport)
	assert.InDelta(t, 312.40, offer.Price.Amount, 1e-9)
}

func TestNormalizeLeg_StopsFromSegmentCount(t *testing.T) {
	it := rawItinerary{
		Duration: "PT9H",
		Segments: []rawSegment{
			{Departure: rawEndpoint{IataCode: "LHR", At: "2026-10-01T06:00:00"}, Arrival: rawEndpoint{IataCode: "IST", At: "2026-10-01T12:00:00"}, CarrierCode: "TK"},
			{Departure: rawEndpoint{IataCode: "IST", At: "2026-10-01T13:30:00"}, Arrival: rawEndpoint{IataCode: "DXB", At: "2026-10-01T19:00:00"}, CarrierCode: "TK"},
			{Departure: rawEndpoint{IataCode: "DXB", At: "2026-10-01T20:00:00"}, Arrival: rawEndpoint{IataCode: "BKK", At: "2026-10-02T06:00:00"}, CarrierCode: "TK"},
		},
	}

	leg, ok := normalizeLeg(it)
	require.True(t, ok)
	assert.Equal(t, 2, leg.Stops)
	assert.Equal(t, "LHR", leg.DepartureAirport)
	assert.Equal(t, "BKK", leg.ArrivalAirport)
	assert.Equal(t, "06:00", leg.DepartureTime)
	assert.Equal(t, 540, leg.DurationMinutes)
}

func TestAirlineCode_FallsBackToValidating(t *testing.T) {
	raw := rawFlightOffer{ValidatingAirlineCodes: []string{"QR"}}
	assert.Equal(t, "QR", airlineCode(raw))

	raw.Itineraries = []rawItinerary{{Segments: []rawSegment{{CarrierCode: "EK"}}}}
	assert.Equal(t, "EK", airlineCode(raw))
}

func TestCabinToken_DefaultsToEconomy(t *testing.T) {
	assert.Equal(t, "ECONOMY", cabinToken(rawFlightOffer{}))
}

func TestScaleRating(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{name: "five-scale passes through", in: 4.5, want: 4.5},
		{name: "hundred-scale divided", in: 90, want: 4.5},
		{name: "negative clamped", in: -1, want: 0},
		{name: "boundary five", in: 5, want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, scaleRating(tt.in), 1e-9)
		})
	}
}

func TestNormalizeRating(t *testing.T) {
	assert.InDelta(t, 4, normalizeRating("4"), 1e-9)
	assert.Zero(t, normalizeRating(""))
	assert.Zero(t, normalizeRating("not-a-number"))
}

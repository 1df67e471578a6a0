package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travel-search/travel-search-aggregation-service/internal/adapter/http/response"
	"github.com/travel-search/travel-search-aggregation-service/internal/domain"
	"github.com/travel-search/travel-search-aggregation-service/internal/usecase"
	testmock "github.com/travel-search/travel-search-aggregation-service/test/mock"
)

type staticCatalog []domain.Destination

func (c staticCatalog) Destinations() []domain.Destination { return c }

func testFlights() []domain.FlightOffer {
	return []domain.FlightOffer{
		{
			ID:      "f1",
			Airline: domain.AirlineInfo{Code: "BA", Name: "British Airways"},
			Outbound: domain.FlightLeg{
				DepartureAirport: "LHR", ArrivalAirport: "DXB",
				DepartureTime: "08:00", ArrivalTime: "18:00",
				DurationMinutes: 420,
			},
			Price: domain.PriceInfo{Amount: 520, Currency: "USD"},
			Cabin: "Economy",
		},
		{
			ID:      "f2",
			Airline: domain.AirlineInfo{Code: "EK", Name: "Emirates"},
			Outbound: domain.FlightLeg{
				DepartureAirport: "LHR", ArrivalAirport: "DXB",
				DepartureTime: "14:00", ArrivalTime: "23:30",
				DurationMinutes: 430,
			},
			Price: domain.PriceInfo{Amount: 410, Currency: "USD"},
			Cabin: "Economy",
		},
	}
}

func newTestHandler(provider domain.TravelProvider, catalog usecase.DestinationCatalog) *SearchHandler {
	return NewSearchHandler(
		usecase.NewFlightSearchUseCase(provider, nil, nil),
		usecase.NewHotelSearchUseCase(provider, nil),
		usecase.NewPackageSearchUseCase(provider, catalog, "LHR", 0, nil),
	)
}

// post runs a handler against a JSON body and returns the recorder.
func post(t *testing.T, handler echo.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, handler(e.NewContext(req, rec)))
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorDetail {
	t.Helper()

	var detail response.ErrorDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	return detail
}

func TestSearchFlights_OK(t *testing.T) {
	provider := testmock.NewProvider("stub").WithFlights(testFlights())
	h := newTestHandler(provider, nil)

	rec := post(t, h.SearchFlights, "/api/v1/flights/search", `{
		"origin": "lhr",
		"destination": "DXB",
		"departureDate": "2026-10-01",
		"sortBy": "cheapest"
	}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp domain.FlightSearchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	require.Len(t, resp.Offers, 2)
	assert.Equal(t, "f2", resp.Offers[0].ID)
	assert.Equal(t, "f1", resp.Offers[1].ID)
	assert.Equal(t, "stub", resp.Metadata.Provider)
	assert.Equal(t, 2, resp.Metadata.TotalResults)

	// Lowercase origin is normalized on the way in
	assert.Equal(t, "LHR", resp.Params.Origin)
}

func TestSearchFlights_FiltersFromBody(t *testing.T) {
	provider := testmock.NewProvider("stub").WithFlights(testFlights())
	h := newTestHandler(provider, nil)

	rec := post(t, h.SearchFlights, "/api/v1/flights/search", `{
		"origin": "LHR",
		"destination": "DXB",
		"departureDate": "2026-10-01",
		"filters": {"airlines": ["EK"]}
	}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp domain.FlightSearchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Offers, 1)
	assert.Equal(t, "EK", resp.Offers[0].Airline.Code)
}

func TestSearchFlights_MalformedBody(t *testing.T) {
	h := newTestHandler(testmock.NewProvider("stub"), nil)

	rec := post(t, h.SearchFlights, "/api/v1/flights/search", `{not json`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, response.CodeInvalidRequest, decodeError(t, rec).Code)
}

func TestSearchFlights_ValidationDetails(t *testing.T) {
	h := newTestHandler(testmock.NewProvider("stub"), nil)

	rec := post(t, h.SearchFlights, "/api/v1/flights/search", `{
		"destination": "DXB",
		"departureDate": "01-10-2026"
	}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	detail := decodeError(t, rec)
	assert.Equal(t, response.CodeValidationError, detail.Code)
	assert.Contains(t, detail.Details, "origin")
	assert.Contains(t, detail.Details, "departureDate")
}

func TestSearchFlights_ProviderFailureIsBadGateway(t *testing.T) {
	provider := testmock.NewProvider("stub").
		WithFlightError(domain.NewProviderError("flight-offers", 500, "upstream exploded"))
	h := newTestHandler(provider, nil)

	rec := post(t, h.SearchFlights, "/api/v1/flights/search", `{
		"origin": "LHR", "destination": "DXB", "departureDate": "2026-10-01"
	}`)

	require.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, response.CodeProviderError, decodeError(t, rec).Code)
}

func TestSearchFlights_AuthFailureIsServiceUnavailable(t *testing.T) {
	provider := testmock.NewProvider("stub").
		WithFlightError(domain.NewAuthenticationError(401, "invalid_client"))
	h := newTestHandler(provider, nil)

	rec := post(t, h.SearchFlights, "/api/v1/flights/search", `{
		"origin": "LHR", "destination": "DXB", "departureDate": "2026-10-01"
	}`)

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, response.CodeServiceUnavailable, decodeError(t, rec).Code)
}

func TestSearchFlights_TimeoutIsGatewayTimeout(t *testing.T) {
	provider := testmock.NewProvider("stub").WithFlightError(context.DeadlineExceeded)
	h := newTestHandler(provider, nil)

	rec := post(t, h.SearchFlights, "/api/v1/flights/search", `{
		"origin": "LHR", "destination": "DXB", "departureDate": "2026-10-01"
	}`)

	require.Equal(t, http.StatusGatewayTimeout, rec.Code)
	assert.Equal(t, response.CodeTimeout, decodeError(t, rec).Code)
}

func TestSearchHotels_OK(t *testing.T) {
	provider := testmock.NewProvider("stub").WithHotels(
		[]domain.HotelListing{{HotelID: "H1", Name: "Hotel One", CityCode: "PAR"}},
		[]domain.HotelOffer{{HotelID: "H1", Name: "Hotel One", Rating: 4, TotalPrice: 720, PricePerNight: 180, Currency: "EUR"}},
	)
	h := newTestHandler(provider, nil)

	rec := post(t, h.SearchHotels, "/api/v1/hotels/search", `{
		"cityCode": "par",
		"checkInDate": "2026-10-01",
		"checkOutDate": "2026-10-05",
		"adults": 2
	}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp domain.HotelSearchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Offers, 1)
	assert.Equal(t, "H1", resp.Offers[0].HotelID)
	assert.Equal(t, "PAR", resp.Params.CityCode)
}

func TestSearchHotels_ValidationDetails(t *testing.T) {
	h := newTestHandler(testmock.NewProvider("stub"), nil)

	rec := post(t, h.SearchHotels, "/api/v1/hotels/search", `{
		"cityCode": "PAR",
		"checkInDate": "2026-10-05",
		"checkOutDate": "2026-10-05"
	}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec).Details, "checkOutDate")
}

func TestSearchPackages_OK(t *testing.T) {
	provider := testmock.NewProvider("stub").
		WithFlights(testFlights()).
		WithHotels(
			[]domain.HotelListing{{HotelID: "H1", Name: "Hotel One"}},
			[]domain.HotelOffer{{HotelID: "H1", Name: "Hotel One", TotalPrice: 700, PricePerNight: 100, Currency: "USD"}},
		).
		WithActivities([]domain.Activity{{ID: "a1", Name: "City Tour", Rating: 4.4, Price: 40, Currency: "USD"}})

	catalog := staticCatalog{
		{Name: "Dubai", Country: "UAE", CityCode: "DXB"},
		{Name: "Bangkok", Country: "Thailand", CityCode: "BKK"},
	}
	h := newTestHandler(provider, catalog)

	rec := post(t, h.SearchPackages, "/api/v1/packages/search", `{}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp domain.PackageSearchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Packages, 2)

	pkg := resp.Packages[0]
	assert.InDelta(t, pkg.Flight.Price.Amount+pkg.Hotel.TotalPrice, pkg.TotalPrice, 1e-9)
	assert.NotEmpty(t, pkg.Activities)
}

func TestSearchPackages_EmptyCatalogIsServiceUnavailable(t *testing.T) {
	h := newTestHandler(testmock.NewProvider("stub"), staticCatalog{})

	rec := post(t, h.SearchPackages, "/api/v1/packages/search", `{}`)

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	detail := decodeError(t, rec)
	assert.Equal(t, response.CodeServiceUnavailable, detail.Code)
	assert.Equal(t, "No holiday packages could be composed", detail.Message)
}

func TestSearchPackages_ValidationDetails(t *testing.T) {
	h := newTestHandler(testmock.NewProvider("stub"), nil)

	rec := post(t, h.SearchPackages, "/api/v1/packages/search", `{"type": "deluxe"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec).Details, "type")
}

func TestHealth(t *testing.T) {
	h := newTestHandler(testmock.NewProvider("stub"), nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.Health(e.NewContext(req, rec)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

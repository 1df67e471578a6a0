// Package amadeus implements the live TravelProvider backed by the
// upstream travel-data API: OAuth2 client-credentials authentication,
// one HTTP call per sub-resource, and normalization of the raw payloads
// into the domain model.
package amadeus

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/travel-search/travel-search-aggregation-service/internal/domain"
	"github.com/travel-search/travel-search-aggregation-service/internal/infrastructure/logger"
	"github.com/travel-search/travel-search-aggregation-service/internal/infrastructure/timeutil"
	"github.com/travel-search/travel-search-aggregation-service/internal/ratelimit"
)

// Provider resource paths.
const (
	flightOffersPath    = "/v2/shopping/flight-offers"
	hotelsByCityPath    = "/v1/reference-data/locations/hotels/by-city"
	hotelsByGeocodePath = "/v1/reference-data/locations/hotels/by-geocode"
	hotelOffersPath     = "/v3/shopping/hotel-offers"
	hotelSentimentsPath = "/v2/e-reputation/hotel-sentiments"
	activitiesPath      = "/v1/shopping/activities"
)

// maxFlightOffers caps how many offers a single flight search requests.
const maxFlightOffers = 20

// maxHotelIDsPerCall caps the hotel-offers batch size to stay inside the
// provider's request limits.
const maxHotelIDsPerCall = 20

// Client is the low-level HTTP client for the provider API. It attaches
// bearer tokens, applies client-side rate limits and maps non-2xx
// responses to typed provider errors. Transport errors are never
// swallowed; they propagate upward as typed errors.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     *TokenManager
	limiter    *ratelimit.ResourceLimiter
	log        *logger.Logger
	currency   string
}

// Config holds the client construction options.
type Config struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
	HTTPTimeout  time.Duration

	// Currency is the ISO 4217 code all prices are requested in.
	Currency string

	// Clock overrides the token manager's clock, for tests.
	Clock timeutil.Clock
}

// NewClient creates a provider Client. The caller must have verified the
// credentials are present; credential-free processes use the mock
// provider instead.
func NewClient(cfg Config, log *logger.Logger) *Client {
	if cfg.HTTPTimeout <= 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	if cfg.Currency == "" {
		cfg.Currency = "USD"
	}
	if log == nil {
		log = logger.Nop()
	}
	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}
	return &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient: httpClient,
		tokens:     NewTokenManager(cfg.BaseURL, cfg.ClientID, cfg.ClientSecret, httpClient, cfg.Clock),
		limiter:    ratelimit.NewResourceLimiter(ratelimit.DefaultConfig()),
		log:        log.WithProvider(ProviderName),
		currency:   cfg.Currency,
	}
}

// get performs an authenticated GET against a provider resource and
// decodes the JSON payload into out.
func (c *Client) get(ctx context.Context, resource, path string, query url.Values, out interface{}) error {
	if err := c.limiter.Wait(ctx, resource); err != nil {
		return domain.WrapProviderError(resource, err)
	}

	token, err := c.tokens.Token(ctx)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return domain.WrapProviderError(resource, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.WrapProviderError(resource, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.WrapProviderError(resource, err)
	}

	c.log.Debug().
		Str("resource", resource).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("provider call")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var envelope errorEnvelope
		_ = json.Unmarshal(body, &envelope)
		return domain.NewProviderError(resource, resp.StatusCode, envelope.detail())
	}

	if err := json.Unmarshal(body, out); err != nil {
		return domain.NewProviderError(resource, resp.StatusCode, "malformed response: "+err.Error())
	}
	return nil
}

// flightOffers fetches raw flight offers for the given search.
func (c *Client) flightOffers(ctx context.Context, params domain.SearchParams) (*flightOffersResponse, error) {
	q := url.Values{}
	q.Set("originLocationCode", params.Origin)
	q.Set("destinationLocationCode", params.Destination)
	q.Set("departureDate", params.DepartureDate)
	q.Set("adults", strconv.Itoa(params.Adults))
	q.Set("max", strconv.Itoa(maxFlightOffers))
	q.Set("currencyCode", c.currency)
	if params.ReturnDate != "" {
		q.Set("returnDate", params.ReturnDate)
	}
	if params.Children > 0 {
		q.Set("children", strconv.Itoa(params.Children))
	}
	if params.Infants > 0 {
		q.Set("infants", strconv.Itoa(params.Infants))
	}
	if params.Cabin != "" {
		q.Set("travelClass", string(params.Cabin))
	}

	var resp flightOffersResponse
	if err := c.get(ctx, "flight-offers", flightOffersPath, q, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// hotelsByCity fetches the hotel directory for an IATA city code.
func (c *Client) hotelsByCity(ctx context.Context, cityCode string) (*hotelListResponse, error) {
	q := url.Values{}
	q.Set("cityCode", cityCode)

	var resp hotelListResponse
	if err := c.get(ctx, "hotels-by-city", hotelsByCityPath, q, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// hotelsByGeocode fetches the hotel directory around a point.
func (c *Client) hotelsByGeocode(ctx context.Context, geo domain.GeoCode, radiusKm int) (*hotelListResponse, error) {
	q := url.Values{}
	q.Set("latitude", formatCoord(geo.Latitude))
	q.Set("longitude", formatCoord(geo.Longitude))
	q.Set("radius", strconv.Itoa(radiusKm))

	var resp hotelListResponse
	if err := c.get(ctx, "hotels-by-geocode", hotelsByGeocodePath, q, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// hotelOffers fetches priced stays for the given hotel IDs.
func (c *Client) hotelOffers(ctx context.Context, hotelIDs []string, params domain.HotelSearchParams) (*hotelOffersResponse, error) {
	if len(hotelIDs) > maxHotelIDsPerCall {
		hotelIDs = hotelIDs[:maxHotelIDsPerCall]
	}

	q := url.Values{}
	q.Set("hotelIds", strings.Join(hotelIDs, ","))
	q.Set("checkInDate", params.CheckInDate)
	q.Set("checkOutDate", params.CheckOutDate)
	q.Set("adults", strconv.Itoa(params.Adults))
	q.Set("roomQuantity", strconv.Itoa(params.Rooms))

	var resp hotelOffersResponse
	if err := c.get(ctx, "hotel-offers", hotelOffersPath, q, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// hotelSentiments fetches aggregate guest ratings for the given hotel IDs.
func (c *Client) hotelSentiments(ctx context.Context, hotelIDs []string) (*hotelSentimentsResponse, error) {
	q := url.Values{}
	q.Set("hotelIds", strings.Join(hotelIDs, ","))

	var resp hotelSentimentsResponse
	if err := c.get(ctx, "hotel-sentiments", hotelSentimentsPath, q, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// activities fetches bookable activities around a point.
func (c *Client) activities(ctx context.Context, geo domain.GeoCode, radiusKm int) (*activitiesResponse, error) {
	q := url.Values{}
	q.Set("latitude", formatCoord(geo.Latitude))
	q.Set("longitude", formatCoord(geo.Longitude))
	q.Set("radius", strconv.Itoa(radiusKm))

	var resp activitiesResponse
	if err := c.get(ctx, "activities", activitiesPath, q, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// formatCoord renders a coordinate with the precision the provider expects.
func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

// parseAmount parses a provider decimal-string price.
func parseAmount(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

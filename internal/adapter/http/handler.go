// Package http provides the HTTP handler layer for the travel search API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/travel-search/travel-search-aggregation-service/internal/adapter/http/response"
	"github.com/travel-search/travel-search-aggregation-service/internal/domain"
	"github.com/travel-search/travel-search-aggregation-service/internal/usecase"
)

// SearchHandler handles HTTP requests for the travel search endpoints.
type SearchHandler struct {
	flights  *usecase.FlightSearchUseCase
	hotels   *usecase.HotelSearchUseCase
	packages *usecase.PackageSearchUseCase
}

// NewSearchHandler creates a SearchHandler wired to the three search use cases.
func NewSearchHandler(flights *usecase.FlightSearchUseCase, hotels *usecase.HotelSearchUseCase, packages *usecase.PackageSearchUseCase) *SearchHandler {
	return &SearchHandler{
		flights:  flights,
		hotels:   hotels,
		packages: packages,
	}
}

// SearchFlights handles POST /api/v1/flights/search
//
// @Summary Search for flights
// @Description Search for flight offers on a route, with optional filtering and sorting
// @Tags flights
// @Accept json
// @Produce json
// @Param request body SearchFlightsRequest true "Search criteria"
// @Success 200 {object} domain.FlightSearchResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 502 {object} response.ErrorDetail "Provider error"
// @Failure 503 {object} response.ErrorDetail "Service unavailable"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /api/v1/flights/search [post]
func (h *SearchHandler) SearchFlights(c echo.Context) error {
	var req SearchFlightsRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	result, err := h.flights.Search(c.Request().Context(), ToDomainSearchParams(&req), ToSearchOptions(&req))
	if err != nil {
		return h.handleError(c, err)
	}

	return response.SearchResults(c, result)
}

// SearchHotels handles POST /api/v1/hotels/search
//
// @Summary Search for hotels
// @Description Search for priced hotel offers in a city for a stay window
// @Tags hotels
// @Accept json
// @Produce json
// @Param request body SearchHotelsRequest true "Search criteria"
// @Success 200 {object} domain.HotelSearchResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 502 {object} response.ErrorDetail "Provider error"
// @Failure 503 {object} response.ErrorDetail "Service unavailable"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /api/v1/hotels/search [post]
func (h *SearchHandler) SearchHotels(c echo.Context) error {
	var req SearchHotelsRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	result, err := h.hotels.Search(c.Request().Context(), ToDomainHotelParams(&req))
	if err != nil {
		return h.handleError(c, err)
	}

	return response.SearchResults(c, result)
}

// SearchPackages handles POST /api/v1/packages/search
//
// @Summary Search for holiday packages
// @Description Compose flight + hotel + activity bundles filtered by destination, budget, duration and type
// @Tags packages
// @Accept json
// @Produce json
// @Param request body SearchPackagesRequest true "Search criteria"
// @Success 200 {object} domain.PackageSearchResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 502 {object} response.ErrorDetail "Provider error"
// @Failure 503 {object} response.ErrorDetail "Service unavailable"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /api/v1/packages/search [post]
func (h *SearchHandler) SearchPackages(c echo.Context) error {
	var req SearchPackagesRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	result, err := h.packages.Search(c.Request().Context(), ToDomainPackageParams(&req))
	if err != nil {
		return h.handleError(c, err)
	}

	return response.SearchResults(c, result)
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *SearchHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	// Fallback for non-structured validation errors
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to appropriate HTTP responses.
func (h *SearchHandler) handleError(c echo.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return response.GatewayTimeout(c)
	}
	if errors.Is(err, context.Canceled) {
		return response.RequestCancelled(c)
	}

	// Domain validation performed below the HTTP layer
	if domain.IsInvalidRequest(err) {
		return response.ValidationErrorWithMessage(c, err.Error())
	}

	// Token exchange failures mean the whole provider is out of reach
	if domain.IsAuthentication(err) {
		return response.ServiceUnavailable(c)
	}

	if domain.IsEmptyCatalog(err) {
		return response.ServiceUnavailableWithMessage(c, "No holiday packages could be composed")
	}

	if domain.IsProviderError(err) || errors.Is(err, domain.ErrProviderUnavailable) {
		return response.BadGateway(c, "")
	}

	return response.InternalServerError(c)
}

// Health handles GET /health
// Simple health check endpoint.
func (h *SearchHandler) Health(c echo.Context) error {
	return response.Health(c)
}

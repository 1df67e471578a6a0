// Package http provides the HTTP handler layer for the travel search API.
package http

import (
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RegisterRoutes registers all travel search API routes.
// It creates a versioned API group and attaches the handler methods.
func RegisterRoutes(e *echo.Echo, h *SearchHandler) {
	// Health check endpoint (no version prefix)
	e.GET("/health", h.Health)

	// Swagger UI
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// API v1 group
	api := e.Group("/api/v1")

	api.POST("/flights/search", h.SearchFlights)
	api.POST("/hotels/search", h.SearchHotels)
	api.POST("/packages/search", h.SearchPackages)
}

// RegisterRoutesWithMiddleware registers routes with custom middleware.
// This allows for endpoint-specific middleware configuration.
func RegisterRoutesWithMiddleware(e *echo.Echo, h *SearchHandler, middleware ...echo.MiddlewareFunc) {
	// Health check endpoint (no version prefix, no middleware)
	e.GET("/health", h.Health)

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// API v1 group with middleware
	api := e.Group("/api/v1", middleware...)

	api.POST("/flights/search", h.SearchFlights)
	api.POST("/hotels/search", h.SearchHotels)
	api.POST("/packages/search", h.SearchPackages)
}

// Package main is the entry point for the travel search aggregation service.
//
//	@title						Travel Search Aggregation API
//	@version					1.0.0
//	@description				A travel search aggregation service that queries an upstream travel-data provider for flights, hotels and activities, normalizes the results and composes holiday packages.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/travel-search/travel-search-aggregation-service/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	// Import generated docs for swagger
	_ "github.com/travel-search/travel-search-aggregation-service/docs"

	searchhttp "github.com/travel-search/travel-search-aggregation-service/internal/adapter/http"
	"github.com/travel-search/travel-search-aggregation-service/internal/adapter/http/middleware"
	"github.com/travel-search/travel-search-aggregation-service/internal/adapter/provider/amadeus"
	"github.com/travel-search/travel-search-aggregation-service/internal/adapter/provider/mock"
	"github.com/travel-search/travel-search-aggregation-service/internal/cache"
	"github.com/travel-search/travel-search-aggregation-service/internal/config"
	"github.com/travel-search/travel-search-aggregation-service/internal/domain"
	"github.com/travel-search/travel-search-aggregation-service/internal/infrastructure/logger"
	"github.com/travel-search/travel-search-aggregation-service/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.MustLoad()

	log := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: "travel-search",
	})

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Msg("Configuration loaded")

	// Provider selection happens once at startup: with credentials the
	// live client is used, without them every search is served by the
	// mock provider for the whole process lifetime.
	mockProvider := mock.NewProvider()
	var provider domain.TravelProvider = mockProvider
	if cfg.Amadeus.Configured() {
		provider = amadeus.NewProvider(amadeus.NewClient(amadeus.Config{
			BaseURL:      cfg.Amadeus.BaseURL,
			ClientID:     cfg.Amadeus.ClientID,
			ClientSecret: cfg.Amadeus.ClientSecret,
			HTTPTimeout:  cfg.Amadeus.HTTPTimeout,
		}, log))
	} else {
		log.Warn().Msg("Provider credentials not set, running in mock mode")
	}
	log.Info().Str("provider", provider.Name()).Msg("Travel provider selected")

	resultCache := setupCache(cfg, log)
	defer resultCache.Close()

	flightUC := usecase.NewFlightSearchUseCase(provider, resultCache, log)
	hotelUC := usecase.NewHotelSearchUseCase(provider, log)
	// The seeded destination catalog backs package composition in both
	// provider modes.
	packageUC := usecase.NewPackageSearchUseCase(provider, mockProvider, cfg.App.HomeAirport, cfg.Timeouts.PackageSearch, log)

	handler := searchhttp.NewSearchHandler(flightUC, hotelUC, packageUC)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.Setup(e, log.Logger)
	searchhttp.RegisterRoutes(e, handler)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	gracefulShutdown(e, log)
}

// setupCache connects to Redis when configured, falling back to the
// no-op cache so a missing or unreachable Redis never blocks startup.
func setupCache(cfg *config.Config, log *logger.Logger) cache.Cache {
	if cfg.Redis.Addr == "" {
		return cache.NewNoOpCache()
	}

	c, err := cache.NewRedisCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.TTL)
	if err != nil {
		log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("Redis unavailable, caching disabled")
		return cache.NewNoOpCache()
	}

	log.Info().Str("addr", cfg.Redis.Addr).Msg("Result cache connected")
	return c
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}

package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/travel-search/travel-search-aggregation-service/internal/domain"
	"github.com/travel-search/travel-search-aggregation-service/internal/infrastructure/logger"
)

// Package search defaults applied when the request leaves them unset.
const (
	defaultPackageNights = 7
	defaultLeadTimeDays  = 30
)

// maxPackageResults caps every package search response, filtered or not.
const maxPackageResults = 6

// DestinationCatalog supplies the candidate destinations that package
// composition iterates over.
type DestinationCatalog interface {
	Destinations() []domain.Destination
}

// PackageSearchUseCase composes holiday packages across a destination
// catalog and filters them by the requested criteria.
type PackageSearchUseCase struct {
	provider    domain.TravelProvider
	catalog     DestinationCatalog
	homeAirport string
	timeout     time.Duration
	log         *logger.Logger
}

// NewPackageSearchUseCase creates a PackageSearchUseCase. homeAirport is
// the default origin when the request does not supply one; timeout
// bounds the whole composition batch.
func NewPackageSearchUseCase(provider domain.TravelProvider, catalog DestinationCatalog, homeAirport string, timeout time.Duration, log *logger.Logger) *PackageSearchUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &PackageSearchUseCase{
		provider:    provider,
		catalog:     catalog,
		homeAirport: homeAirport,
		timeout:     timeout,
		log:         log.WithComponent("package_search"),
	}
}

// Search composes one candidate package per catalog destination and
// filters the candidates by the request criteria.
//
// Composition is scatter-gather: every destination is composed
// concurrently and results are collected in catalog order, so the
// unfiltered fallback is deterministic. A destination whose flight or
// hotel fetch fails is logged and excluded; the batch itself only fails
// when the catalog is empty.
func (uc *PackageSearchUseCase) Search(ctx context.Context, params domain.PackageSearchParams) (*domain.PackageSearchResponse, error) {
	start := time.Now()

	uc.setDefaults(&params)
	if err := params.Validate(); err != nil {
		return nil, err
	}

	destinations := uc.candidateDestinations(params.Origin)
	if len(destinations) == 0 {
		return nil, domain.ErrEmptyCatalog
	}

	if uc.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.timeout)
		defer cancel()
	}

	catalog := uc.composeAll(ctx, destinations, params)
	if len(catalog) == 0 {
		return nil, domain.ErrEmptyCatalog
	}

	packages := FilterPackages(catalog, params)

	uc.log.Info().
		Int("candidates", len(catalog)).
		Int("results", len(packages)).
		Dur("elapsed", time.Since(start)).
		Msg("package search completed")

	return domain.NewPackageSearchResponse(params, packages, domain.SearchMetadata{
		Provider:     uc.provider.Name(),
		SearchTimeMs: time.Since(start).Milliseconds(),
	}), nil
}

// setDefaults fills in the origin, departure date and duration when the
// request leaves them unset.
func (uc *PackageSearchUseCase) setDefaults(params *domain.PackageSearchParams) {
	if params.Origin == "" {
		params.Origin = uc.homeAirport
	}
	if params.DepartureDate == "" {
		params.DepartureDate = time.Now().AddDate(0, 0, defaultLeadTimeDays).Format("2006-01-02")
	}
}

// candidateDestinations returns the catalog minus the origin itself.
func (uc *PackageSearchUseCase) candidateDestinations(origin string) []domain.Destination {
	all := uc.catalog.Destinations()
	destinations := make([]domain.Destination, 0, len(all))
	for _, d := range all {
		if d.CityCode == origin {
			continue
		}
		destinations = append(destinations, d)
	}
	return destinations
}

// composeAll builds a candidate package per destination concurrently,
// preserving catalog order in the result.
func (uc *PackageSearchUseCase) composeAll(ctx context.Context, destinations []domain.Destination, params domain.PackageSearchParams) []domain.HolidayPackage {
	nights := params.Nights
	if nights <= 0 {
		nights = defaultPackageNights
	}
	checkIn, checkOut := stayWindow(params.DepartureDate, nights)

	c := &composer{provider: uc.provider, log: uc.log}
	results := make([]*domain.HolidayPackage, len(destinations))

	var wg sync.WaitGroup
	for i, dest := range destinations {
		wg.Add(1)
		go func(i int, dest domain.Destination) {
			defer wg.Done()

			pkg, err := c.compose(ctx, dest, domain.SearchParams{
				Origin:        params.Origin,
				Destination:   dest.CityCode,
				DepartureDate: checkIn,
				ReturnDate:    checkOut,
				Adults:        1,
				Cabin:         domain.CabinEconomy,
			}, domain.HotelSearchParams{
				CityCode:     dest.CityCode,
				CheckInDate:  checkIn,
				CheckOutDate: checkOut,
				Adults:       1,
				Rooms:        1,
			})
			if err != nil {
				uc.log.Warn().Err(err).Str("destination", dest.CityCode).Msg("package composition failed, destination excluded")
				return
			}
			results[i] = pkg
		}(i, dest)
	}
	wg.Wait()

	catalog := make([]domain.HolidayPackage, 0, len(results))
	for _, pkg := range results {
		if pkg != nil {
			catalog = append(catalog, *pkg)
		}
	}
	return catalog
}

// FilterPackages applies the request criteria to the composed catalog.
// When the filter matches nothing, the first entries of the unfiltered
// catalog are returned instead of an empty result. Output is always
// capped at maxPackageResults, filtered or not.
func FilterPackages(catalog []domain.HolidayPackage, params domain.PackageSearchParams) []domain.HolidayPackage {
	matched := make([]domain.HolidayPackage, 0, len(catalog))
	for i := range catalog {
		if params.Matches(&catalog[i]) {
			matched = append(matched, catalog[i])
		}
	}

	if len(matched) == 0 {
		matched = catalog
	}
	if len(matched) > maxPackageResults {
		matched = matched[:maxPackageResults]
	}
	return matched
}

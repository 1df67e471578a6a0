// Package http provides the HTTP handler layer for the travel search API.
package http

import (
	"strings"

	"github.com/travel-search/travel-search-aggregation-service/internal/domain"
	"github.com/travel-search/travel-search-aggregation-service/internal/usecase"
)

// cabinTokens maps wire-format cabin values to domain cabin classes.
var cabinTokens = map[string]domain.CabinClass{
	"economy":         domain.CabinEconomy,
	"premium_economy": domain.CabinPremiumEconomy,
	"business":        domain.CabinBusiness,
	"first":           domain.CabinFirst,
}

// ToDomainSearchParams converts a SearchFlightsRequest to domain.SearchParams.
func ToDomainSearchParams(req *SearchFlightsRequest) domain.SearchParams {
	cabin, ok := cabinTokens[strings.ToLower(req.Cabin)]
	if !ok {
		cabin = domain.CabinEconomy
	}

	adults := req.Adults
	if adults < 1 {
		adults = 1
	}

	return domain.SearchParams{
		Origin:        strings.ToUpper(req.Origin),
		Destination:   strings.ToUpper(req.Destination),
		DepartureDate: req.DepartureDate,
		ReturnDate:    req.ReturnDate,
		Adults:        adults,
		Children:      req.Children,
		Infants:       req.Infants,
		Cabin:         cabin,
	}
}

// ToDomainFilters converts a FilterDTO to a domain.FilterSpec.
func ToDomainFilters(dto *FilterDTO) *domain.FilterSpec {
	if dto == nil {
		return nil
	}

	spec := &domain.FilterSpec{
		MaxStops:           dto.MaxStops,
		Airlines:           dto.Airlines,
		Alliances:          dto.Alliances,
		MaxDurationMinutes: dto.MaxDurationMinutes,
		HideBasicCabin:     dto.HideBasicCabin,
	}

	if dto.Price != nil && (dto.Price.Min != nil || dto.Price.Max != nil) {
		spec.Price = &domain.PriceRange{
			Min: dto.Price.Min,
			Max: dto.Price.Max,
		}
	}

	return spec
}

// ToSearchOptions converts request fields to usecase.SearchOptions.
func ToSearchOptions(req *SearchFlightsRequest) usecase.SearchOptions {
	return usecase.SearchOptions{
		Filters: ToDomainFilters(req.Filters),
		SortBy:  domain.ParseSortMode(strings.ToLower(req.SortBy)),
	}
}

// ToDomainHotelParams converts a SearchHotelsRequest to domain.HotelSearchParams.
func ToDomainHotelParams(req *SearchHotelsRequest) domain.HotelSearchParams {
	return domain.HotelSearchParams{
		CityCode:     strings.ToUpper(req.CityCode),
		CheckInDate:  req.CheckInDate,
		CheckOutDate: req.CheckOutDate,
		Adults:       req.Adults,
		Rooms:        req.Rooms,
	}
}

// ToDomainPackageParams converts a SearchPackagesRequest to domain.PackageSearchParams.
func ToDomainPackageParams(req *SearchPackagesRequest) domain.PackageSearchParams {
	return domain.PackageSearchParams{
		Destination:   req.Destination,
		Budget:        req.Budget,
		Nights:        req.Nights,
		Type:          domain.PackageType(strings.ToLower(req.Type)),
		Origin:        strings.ToUpper(req.Origin),
		DepartureDate: req.DepartureDate,
	}
}

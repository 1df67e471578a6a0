package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/travel-search/travel-search-aggregation-service/internal/domain"
	"github.com/travel-search/travel-search-aggregation-service/internal/infrastructure/logger"
)

// maxPackageActivities caps how many activities a composed package includes.
const maxPackageActivities = 3

// activitySearchRadiusKm is the radius used when fetching activities
// around a destination center.
const activitySearchRadiusKm = 20

// composer builds one HolidayPackage per destination by fetching the
// three facets (flights, hotels, activities) and picking the cheapest
// feasible combination.
type composer struct {
	provider domain.TravelProvider
	log      *logger.Logger
}

// facetResult carries one facet fetch outcome across the goroutine boundary.
type facetResult struct {
	flights    []domain.FlightOffer
	hotels     []domain.HotelOffer
	activities []domain.Activity
	err        error
}

// compose builds a package for a single destination, or returns an error
// when no feasible flight+hotel combination exists.
//
// The three facet fetches run concurrently. A flight or hotel failure is
// fatal to this destination's package; an activity failure only degrades
// the package to an empty activity list.
func (c *composer) compose(ctx context.Context, dest domain.Destination, flightParams domain.SearchParams, hotelParams domain.HotelSearchParams) (*domain.HolidayPackage, error) {
	var wg sync.WaitGroup
	results := make([]facetResult, 3)

	wg.Add(3)
	go func() {
		defer wg.Done()
		offers, err := c.provider.SearchFlights(ctx, flightParams)
		results[0] = facetResult{flights: offers, err: err}
	}()
	go func() {
		defer wg.Done()
		offers, err := c.fetchHotels(ctx, dest, hotelParams)
		results[1] = facetResult{hotels: offers, err: err}
	}()
	go func() {
		defer wg.Done()
		activities, err := c.provider.SearchActivities(ctx, dest.GeoCode, activitySearchRadiusKm)
		results[2] = facetResult{activities: activities, err: err}
	}()
	wg.Wait()

	if err := results[0].err; err != nil {
		return nil, fmt.Errorf("flights for %s: %w", dest.CityCode, err)
	}
	if err := results[1].err; err != nil {
		return nil, fmt.Errorf("hotels for %s: %w", dest.CityCode, err)
	}

	flight := cheapestFlight(results[0].flights)
	if flight == nil {
		return nil, fmt.Errorf("no flights available for %s", dest.CityCode)
	}
	hotel := cheapestHotel(results[1].hotels)
	if hotel == nil {
		return nil, fmt.Errorf("no hotels available for %s", dest.CityCode)
	}

	activities := results[2].activities
	if err := results[2].err; err != nil {
		c.log.Warn().Err(err).Str("destination", dest.CityCode).Msg("activity fetch failed, composing without activities")
		activities = nil
	}
	activities = topActivities(activities, maxPackageActivities)

	nights := hotelParams.Nights()

	return &domain.HolidayPackage{
		ID:          uuid.NewString(),
		Destination: dest,
		Flight:      *flight,
		Hotel:       *hotel,
		Activities:  activities,
		Nights:      nights,
		TotalPrice:  flight.Price.Amount + hotel.TotalPrice,
		Currency:    flight.Price.Currency,
		Inclusions:  packageInclusions(flight, hotel, nights, len(activities)),
		Highlights:  dest.Highlights,
	}, nil
}

// fetchHotels lists the destination's hotels and prices them for the stay.
func (c *composer) fetchHotels(ctx context.Context, dest domain.Destination, params domain.HotelSearchParams) ([]domain.HotelOffer, error) {
	listings, err := c.provider.ListHotelsByCity(ctx, dest.CityCode)
	if err != nil {
		return nil, err
	}
	if len(listings) == 0 {
		return nil, nil
	}

	ids := make([]string, 0, len(listings))
	for _, l := range listings {
		ids = append(ids, l.HotelID)
	}
	return c.provider.HotelOffers(ctx, ids, params)
}

// cheapestFlight returns the lowest-priced offer, or nil for an empty list.
func cheapestFlight(offers []domain.FlightOffer) *domain.FlightOffer {
	var best *domain.FlightOffer
	for i := range offers {
		if best == nil || offers[i].Price.Amount < best.Price.Amount {
			best = &offers[i]
		}
	}
	return best
}

// cheapestHotel returns the lowest total-price offer, or nil for an empty list.
func cheapestHotel(offers []domain.HotelOffer) *domain.HotelOffer {
	var best *domain.HotelOffer
	for i := range offers {
		if best == nil || offers[i].TotalPrice < best.TotalPrice {
			best = &offers[i]
		}
	}
	return best
}

// topActivities returns up to n activities, highest-rated first.
func topActivities(activities []domain.Activity, n int) []domain.Activity {
	if len(activities) == 0 {
		return []domain.Activity{}
	}

	sorted := make([]domain.Activity, len(activities))
	copy(sorted, activities)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Rating > sorted[j].Rating
	})

	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// packageInclusions describes what the composed price covers.
func packageInclusions(flight *domain.FlightOffer, hotel *domain.HotelOffer, nights, activityCount int) []string {
	inclusions := []string{
		fmt.Sprintf("Return flights with %s", flight.Airline.Name),
		fmt.Sprintf("%d nights at %s", nights, hotel.Name),
	}
	if activityCount > 0 {
		inclusions = append(inclusions, fmt.Sprintf("%d recommended activities", activityCount))
	}
	return inclusions
}

// stayWindow derives the hotel check-in and check-out dates from the
// outbound date and night count.
func stayWindow(departureDate string, nights int) (checkIn, checkOut string) {
	start, err := time.Parse("2006-01-02", departureDate)
	if err != nil {
		start = time.Now()
	}
	return start.Format("2006-01-02"), start.AddDate(0, 0, nights).Format("2006-01-02")
}

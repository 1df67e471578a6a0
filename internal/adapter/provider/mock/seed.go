package mock

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/travel-search/travel-search-aggregation-service/internal/domain"
)

// Seed tables are kept out of the source as JSON so logic and fixtures
// stay separate. They are embedded at build time; loading them cannot
// fail at runtime.

//go:embed seed/airports.json
var airportsJSON []byte

//go:embed seed/hotels.json
var hotelsJSON []byte

//go:embed seed/destinations.json
var destinationsJSON []byte

// seedAirport is one airport directory entry.
type seedAirport struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	City     string `json:"city"`
	CityCode string `json:"cityCode"`
	Country  string `json:"country"`
}

// seedHotel is one hotel template within a city.
type seedHotel struct {
	Name      string   `json:"name"`
	BaseRate  float64  `json:"baseRate"`
	Amenities []string `json:"amenities"`
}

// seedCity groups hotel templates by city.
type seedCity struct {
	CityCode string      `json:"cityCode"`
	City     string      `json:"city"`
	Hotels   []seedHotel `json:"hotels"`
}

// seedActivity is one activity template within a destination.
type seedActivity struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// seedDestination is one holiday destination with its activities.
type seedDestination struct {
	Name       string         `json:"name"`
	Country    string         `json:"country"`
	CityCode   string         `json:"cityCode"`
	Latitude   float64        `json:"latitude"`
	Longitude  float64        `json:"longitude"`
	Highlights []string       `json:"highlights"`
	Activities []seedActivity `json:"activities"`
}

// seedData holds the parsed seed tables.
type seedData struct {
	airports     []seedAirport
	cities       []seedCity
	destinations []seedDestination
}

// loadSeedData parses the embedded tables. Panics on malformed JSON,
// which can only happen at development time.
func loadSeedData() *seedData {
	var data seedData
	mustUnmarshal(airportsJSON, &data.airports, "airports")
	mustUnmarshal(hotelsJSON, &data.cities, "hotels")
	mustUnmarshal(destinationsJSON, &data.destinations, "destinations")
	return &data
}

func mustUnmarshal(raw []byte, out interface{}, name string) {
	if err := json.Unmarshal(raw, out); err != nil {
		panic(fmt.Sprintf("mock seed table %s is malformed: %v", name, err))
	}
}

// cityForQuery finds the hotel city matching an IATA city code or a
// city-name substring, case-insensitively. Returns nil when no seed
// city matches; callers fall back to generated generic hotels.
func (s *seedData) cityForQuery(query string) *seedCity {
	q := strings.ToLower(query)
	for i := range s.cities {
		c := &s.cities[i]
		if strings.EqualFold(c.CityCode, query) || strings.Contains(strings.ToLower(c.City), q) {
			return c
		}
	}
	return nil
}

// destinationNear finds the seed destination closest to the given point,
// or nil when none is within a plausible search radius.
func (s *seedData) destinationNear(geo domain.GeoCode) *seedDestination {
	var best *seedDestination
	bestDist := 4.0 // degrees, roughly 400km
	for i := range s.destinations {
		d := &s.destinations[i]
		dist := absF(d.Latitude-geo.Latitude) + absF(d.Longitude-geo.Longitude)
		if dist < bestDist {
			best = d
			bestDist = dist
		}
	}
	return best
}

// airportForCode returns the airport entry for an IATA code, if seeded.
func (s *seedData) airportForCode(code string) *seedAirport {
	for i := range s.airports {
		if strings.EqualFold(s.airports[i].Code, code) {
			return &s.airports[i]
		}
	}
	return nil
}

func absF(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

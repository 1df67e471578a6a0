package domain

// SearchMetadata contains information about how a search was executed.
type SearchMetadata struct {
	// TotalResults is the number of results returned
	TotalResults int `json:"total_results"`

	// Provider is the name of the provider that served the search
	Provider string `json:"provider"`

	// SearchTimeMs is the total search duration in milliseconds
	SearchTimeMs int64 `json:"search_time_ms"`

	// CacheHit indicates whether the results came from cache
	CacheHit bool `json:"cache_hit"`
}

// FlightSearchResponse is the aggregated result of a flight search.
type FlightSearchResponse struct {
	// Params echoes the search parameters
	Params SearchParams `json:"search_params"`

	// Metadata describes the search execution
	Metadata SearchMetadata `json:"metadata"`

	// Offers is the filtered, sorted offer list
	Offers []FlightOffer `json:"offers"`
}

// HotelSearchResponse is the aggregated result of a hotel search.
type HotelSearchResponse struct {
	// Params echoes the search parameters
	Params HotelSearchParams `json:"search_params"`

	// Metadata describes the search execution
	Metadata SearchMetadata `json:"metadata"`

	// Offers is the priced hotel list
	Offers []HotelOffer `json:"offers"`
}

// PackageSearchResponse is the aggregated result of a package search.
type PackageSearchResponse struct {
	// Params echoes the search parameters
	Params PackageSearchParams `json:"search_params"`

	// Metadata describes the search execution
	Metadata SearchMetadata `json:"metadata"`

	// Packages is the composed, filtered package list (at most 6 entries)
	Packages []HolidayPackage `json:"packages"`
}

// NewFlightSearchResponse builds a FlightSearchResponse, normalizing a nil
// offer slice to an empty one so callers can distinguish "no results"
// from "search failed".
func NewFlightSearchResponse(params SearchParams, offers []FlightOffer, meta SearchMetadata) *FlightSearchResponse {
	if offers == nil {
		offers = []FlightOffer{}
	}
	meta.TotalResults = len(offers)
	return &FlightSearchResponse{Params: params, Metadata: meta, Offers: offers}
}

// NewHotelSearchResponse builds a HotelSearchResponse.
func NewHotelSearchResponse(params HotelSearchParams, offers []HotelOffer, meta SearchMetadata) *HotelSearchResponse {
	if offers == nil {
		offers = []HotelOffer{}
	}
	meta.TotalResults = len(offers)
	return &HotelSearchResponse{Params: params, Metadata: meta, Offers: offers}
}

// NewPackageSearchResponse builds a PackageSearchResponse.
func NewPackageSearchResponse(params PackageSearchParams, packages []HolidayPackage, meta SearchMetadata) *PackageSearchResponse {
	if packages == nil {
		packages = []HolidayPackage{}
	}
	meta.TotalResults = len(packages)
	return &PackageSearchResponse{Params: params, Metadata: meta, Packages: packages}
}

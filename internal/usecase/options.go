// Package usecase contains the business logic for travel search
// operations: filtering, sorting and holiday package composition.
package usecase

import "github.com/travel-search/travel-search-aggregation-service/internal/domain"

// SearchOptions contains optional parameters for a flight search.
type SearchOptions struct {
	// Filters contains optional filtering criteria to apply to results
	Filters *domain.FilterSpec

	// SortBy specifies how to sort the results (default: best)
	SortBy domain.SortMode
}

// DefaultSearchOptions returns SearchOptions with sensible defaults.
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{
		Filters: nil,
		SortBy:  domain.SortBest,
	}
}

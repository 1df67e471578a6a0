package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPackage(name, cityCode, country string, totalPrice float64, nights int) HolidayPackage {
	return HolidayPackage{
		ID: "pkg-" + cityCode,
		Destination: Destination{
			Name:     name,
			CityCode: cityCode,
			Country:  country,
		},
		Nights:     nights,
		TotalPrice: totalPrice,
		Currency:   "USD",
	}
}

func TestPackageType_InBand(t *testing.T) {
	tests := []struct {
		name  string
		pt    PackageType
		price float64
		want  bool
	}{
		{name: "budget at ceiling", pt: PackageBudget, price: 2000, want: true},
		{name: "budget above ceiling", pt: PackageBudget, price: 2000.01, want: false},
		{name: "standard below floor", pt: PackageStandard, price: 999, want: false},
		{name: "standard at floor", pt: PackageStandard, price: 1000, want: true},
		{name: "standard at ceiling", pt: PackageStandard, price: 4000, want: true},
		{name: "standard above ceiling", pt: PackageStandard, price: 4001, want: false},
		{name: "luxury below floor", pt: PackageLuxury, price: 2999, want: false},
		{name: "luxury at floor", pt: PackageLuxury, price: 3000, want: true},
		{name: "luxury unbounded above", pt: PackageLuxury, price: 50000, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.pt.InBand(tt.price))
		})
	}
}

// The bands overlap: a package at 3500 is both standard and luxury.
func TestPackageType_BandsOverlap(t *testing.T) {
	assert.True(t, PackageStandard.InBand(3500))
	assert.True(t, PackageLuxury.InBand(3500))

	// 1500 is both budget and standard
	assert.True(t, PackageBudget.InBand(1500))
	assert.True(t, PackageStandard.InBand(1500))
}

func TestHolidayPackage_MatchesDestination(t *testing.T) {
	pkg := testPackage("Bali", "DPS", "Indonesia", 1500, 7)

	tests := []struct {
		name  string
		query string
		want  bool
	}{
		{name: "empty query matches", query: "", want: true},
		{name: "exact name", query: "Bali", want: true},
		{name: "case-insensitive name", query: "bali", want: true},
		{name: "substring of name", query: "al", want: true},
		{name: "city code", query: "dps", want: true},
		{name: "country", query: "indonesia", want: true},
		{name: "no match", query: "Paris", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pkg.MatchesDestination(tt.query))
		})
	}
}

func TestPackageSearchParams_Validate(t *testing.T) {
	tests := []struct {
		name    string
		params  PackageSearchParams
		wantErr string
	}{
		{name: "empty params are valid", params: PackageSearchParams{}},
		{name: "full valid params", params: PackageSearchParams{
			Destination:   "Bali",
			Budget:        2500,
			Nights:        7,
			Type:          PackageStandard,
			Origin:        "LHR",
			DepartureDate: "2026-10-01",
		}},
		{
			name:    "negative budget",
			params:  PackageSearchParams{Budget: -1},
			wantErr: "budget must not be negative",
		},
		{
			name:    "negative nights",
			params:  PackageSearchParams{Nights: -1},
			wantErr: "nights must not be negative",
		},
		{
			name:    "unknown type",
			params:  PackageSearchParams{Type: PackageType("premium")},
			wantErr: "type must be one of",
		},
		{
			name:    "bad origin",
			params:  PackageSearchParams{Origin: "London"},
			wantErr: "origin must be a valid 3-letter IATA code",
		},
		{
			name:    "bad date",
			params:  PackageSearchParams{DepartureDate: "next week"},
			wantErr: "YYYY-MM-DD",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, IsInvalidRequest(err))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestPackageSearchParams_Matches(t *testing.T) {
	pkg := testPackage("Bali", "DPS", "Indonesia", 1500, 7)

	tests := []struct {
		name   string
		params PackageSearchParams
		want   bool
	}{
		{name: "no criteria matches", params: PackageSearchParams{}, want: true},
		{name: "destination matches", params: PackageSearchParams{Destination: "bali"}, want: true},
		{name: "destination misses", params: PackageSearchParams{Destination: "Rome"}, want: false},
		{name: "within budget", params: PackageSearchParams{Budget: 1500}, want: true},
		{name: "over budget", params: PackageSearchParams{Budget: 1499}, want: false},
		{name: "exact nights", params: PackageSearchParams{Nights: 7}, want: true},
		{name: "different nights", params: PackageSearchParams{Nights: 5}, want: false},
		{name: "budget band", params: PackageSearchParams{Type: PackageBudget}, want: true},
		{name: "luxury band misses", params: PackageSearchParams{Type: PackageLuxury}, want: false},
		{
			name:   "all criteria combined",
			params: PackageSearchParams{Destination: "Indonesia", Budget: 2000, Nights: 7, Type: PackageStandard},
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.params.Matches(&pkg))
		})
	}
}

package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAirlineName(t *testing.T) {
	tests := []struct {
		name string
		code string
		want string
	}{
		{name: "known carrier", code: "BA", want: "British Airways"},
		{name: "known carrier emirates", code: "EK", want: "Emirates"},
		{name: "unknown carrier passes through", code: "ZZ", want: "ZZ"},
		{name: "empty code passes through", code: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AirlineName(tt.code))
		})
	}
}

func TestAirlineAlliance(t *testing.T) {
	tests := []struct {
		name string
		code string
		want string
	}{
		{name: "star alliance member", code: "LH", want: "Star Alliance"},
		{name: "oneworld member", code: "BA", want: "oneworld"},
		{name: "skyteam member", code: "AF", want: "SkyTeam"},
		{name: "unaligned carrier", code: "EK", want: ""},
		{name: "unknown carrier", code: "ZZ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AirlineAlliance(tt.code))
		})
	}
}

func TestCabinLabel(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  string
	}{
		{name: "economy", token: "ECONOMY", want: "Economy"},
		{name: "premium economy", token: "PREMIUM_ECONOMY", want: "Premium Economy"},
		{name: "business", token: "BUSINESS", want: "Business"},
		{name: "first", token: "FIRST", want: "First Class"},
		{name: "unknown token passes through", token: "SUITE", want: "SUITE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CabinLabel(tt.token))
		})
	}
}

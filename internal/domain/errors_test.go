package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProviderError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ProviderError
		want string
	}{
		{
			name: "status and detail",
			err:  NewProviderError("flight-offers", 500, "upstream boom"),
			want: "provider flight-offers: status 500: upstream boom",
		},
		{
			name: "status only",
			err:  NewProviderError("hotel-offers", 404, ""),
			want: "provider hotel-offers: status 404",
		},
		{
			name: "wrapped transport error",
			err:  WrapProviderError("activities", fmt.Errorf("connection refused")),
			want: "provider activities: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestIsProviderError(t *testing.T) {
	direct := NewProviderError("flight-offers", 502, "bad gateway")
	wrapped := fmt.Errorf("searching: %w", direct)

	assert.True(t, IsProviderError(direct))
	assert.True(t, IsProviderError(wrapped))
	assert.False(t, IsProviderError(errors.New("plain error")))
	assert.False(t, IsProviderError(nil))
}

func TestProviderError_Unwrap(t *testing.T) {
	inner := errors.New("dial tcp: timeout")
	err := WrapProviderError("flight-offers", inner)

	assert.True(t, errors.Is(err, inner))
}

func TestAuthenticationError(t *testing.T) {
	err := NewAuthenticationError(401, "invalid client credentials")

	assert.True(t, IsAuthentication(err))
	assert.Contains(t, err.Error(), "status 401")
	assert.Contains(t, err.Error(), "invalid client credentials")

	wrapped := fmt.Errorf("token refresh: %w", err)
	assert.True(t, IsAuthentication(wrapped))
	assert.False(t, IsAuthentication(errors.New("plain error")))
}

func TestWrapInvalidRequest(t *testing.T) {
	err := WrapInvalidRequest("adults must be at least %d", 1)

	assert.True(t, IsInvalidRequest(err))
	assert.Contains(t, err.Error(), "adults must be at least 1")
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("origin", "origin is required")
	assert.Equal(t, "origin: origin is required", err.Error())
}

func TestIsEmptyCatalog(t *testing.T) {
	assert.True(t, IsEmptyCatalog(ErrEmptyCatalog))
	assert.True(t, IsEmptyCatalog(fmt.Errorf("composing: %w", ErrEmptyCatalog)))
	assert.False(t, IsEmptyCatalog(ErrInvalidRequest))
}

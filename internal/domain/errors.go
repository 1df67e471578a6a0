package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the search subsystem. Callers should match these
// with errors.Is rather than comparing messages.
var (
	// ErrInvalidRequest indicates the caller supplied invalid search parameters.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrAuthentication indicates the provider token exchange failed.
	ErrAuthentication = errors.New("provider authentication failed")

	// ErrProviderUnavailable indicates the provider could not be reached.
	ErrProviderUnavailable = errors.New("provider unavailable")

	// ErrEmptyCatalog indicates package composition produced no candidates
	// at all, so even the unfiltered fallback has nothing to return.
	ErrEmptyCatalog = errors.New("empty package catalog")
)

// ProviderError describes a failed upstream provider call. It carries the
// HTTP status and the provider-supplied error detail when available.
type ProviderError struct {
	// Resource names the provider sub-resource that failed
	// (e.g., "flight-offers", "hotel-offers")
	Resource string

	// StatusCode is the HTTP status returned by the provider, 0 for
	// transport-level failures
	StatusCode int

	// Detail is the provider-supplied error description, when present
	Detail string

	// Err is the underlying error, when present
	Err error
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("provider %s: %v", e.Resource, e.Err)
	case e.Detail != "":
		return fmt.Sprintf("provider %s: status %d: %s", e.Resource, e.StatusCode, e.Detail)
	default:
		return fmt.Sprintf("provider %s: status %d", e.Resource, e.StatusCode)
	}
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *ProviderError) Unwrap() error {
	return e.Err
}

// NewProviderError creates a ProviderError for a non-2xx provider response.
func NewProviderError(resource string, statusCode int, detail string) *ProviderError {
	return &ProviderError{
		Resource:   resource,
		StatusCode: statusCode,
		Detail:     detail,
	}
}

// WrapProviderError creates a ProviderError for a transport-level failure.
func WrapProviderError(resource string, err error) *ProviderError {
	return &ProviderError{
		Resource: resource,
		Err:      err,
	}
}

// AuthenticationError describes a failed OAuth token exchange.
type AuthenticationError struct {
	// StatusCode is the HTTP status of the token endpoint response,
	// 0 for transport-level failures
	StatusCode int

	// Detail describes what went wrong
	Detail string
}

// Error implements the error interface.
func (e *AuthenticationError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("authentication failed: status %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("authentication failed: %s", e.Detail)
}

// Unwrap always returns ErrAuthentication so callers can match the class.
func (e *AuthenticationError) Unwrap() error {
	return ErrAuthentication
}

// NewAuthenticationError creates an AuthenticationError.
func NewAuthenticationError(statusCode int, detail string) *AuthenticationError {
	return &AuthenticationError{StatusCode: statusCode, Detail: detail}
}

// ValidationError represents a field-level validation failure.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// WrapInvalidRequest wraps a formatted message with ErrInvalidRequest.
func WrapInvalidRequest(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidRequest, fmt.Sprintf(format, args...))
}

// IsInvalidRequest checks if an error is a request validation error.
func IsInvalidRequest(err error) bool {
	return errors.Is(err, ErrInvalidRequest)
}

// IsAuthentication checks if an error is an authentication failure.
func IsAuthentication(err error) bool {
	return errors.Is(err, ErrAuthentication)
}

// IsProviderError checks if an error is a provider call failure.
func IsProviderError(err error) bool {
	var pe *ProviderError
	return errors.As(err, &pe)
}

// IsEmptyCatalog checks if an error is an empty-catalog compose failure.
func IsEmptyCatalog(err error) bool {
	return errors.Is(err, ErrEmptyCatalog)
}

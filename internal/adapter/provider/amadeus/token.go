package amadeus

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/travel-search/travel-search-aggregation-service/internal/domain"
	"github.com/travel-search/travel-search-aggregation-service/internal/infrastructure/timeutil"
)

// tokenPath is the provider's OAuth2 token endpoint.
const tokenPath = "/v1/security/oauth2/token"

// safetyMargin is subtracted from the provider-reported lifetime so a
// token is never presented right at the edge of expiry.
const safetyMargin = 5 * time.Minute

// TokenManager acquires and caches an OAuth2 client-credentials token.
// It is the only shared mutable state in the subsystem. Concurrent
// callers observing a stale token may each trigger a refresh; duplicate
// refreshes are tolerated rather than serialized, trading a little
// wasted work for simplicity. Every caller ends up with a valid token.
type TokenManager struct {
	endpoint     string
	clientID     string
	clientSecret string
	httpClient   *http.Client
	clock        timeutil.Clock

	mu     sync.Mutex
	token  string
	expiry time.Time
}

// NewTokenManager creates a TokenManager for the given provider base URL.
func NewTokenManager(baseURL, clientID, clientSecret string, httpClient *http.Client, clock timeutil.Clock) *TokenManager {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	return &TokenManager{
		endpoint:     strings.TrimSuffix(baseURL, "/") + tokenPath,
		clientID:     clientID,
		clientSecret: clientSecret,
		httpClient:   httpClient,
		clock:        clock,
	}
}

// Token returns a valid bearer token, refreshing it when the cached one
// is missing or within the safety margin of expiry. Failures surface as
// an AuthenticationError; no retry is performed here - the caller
// decides whether to retry the whole search.
func (m *TokenManager) Token(ctx context.Context) (string, error) {
	m.mu.Lock()
	token, expiry := m.token, m.expiry
	m.mu.Unlock()

	if token != "" && m.clock.Now().Before(expiry) {
		return token, nil
	}

	return m.refresh(ctx)
}

// tokenResponse is the provider's token endpoint payload.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
	TokenType   string `json:"token_type"`
}

// refresh performs a client-credentials grant exchange and caches the result.
func (m *TokenManager) refresh(ctx context.Context) (string, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", m.clientID)
	form.Set("client_secret", m.clientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", domain.NewAuthenticationError(0, err.Error())
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return "", domain.NewAuthenticationError(0, err.Error())
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", domain.NewAuthenticationError(resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var tr tokenResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		return "", domain.NewAuthenticationError(resp.StatusCode, "malformed token response")
	}
	if tr.AccessToken == "" {
		return "", domain.NewAuthenticationError(resp.StatusCode, "token response missing access_token")
	}

	expiry := m.clock.Now().Add(time.Duration(tr.ExpiresIn)*time.Second - safetyMargin)

	m.mu.Lock()
	m.token = tr.AccessToken
	m.expiry = expiry
	m.mu.Unlock()

	return tr.AccessToken, nil
}

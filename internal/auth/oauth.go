package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/albertinvent/albert-go/internal/constants"
	"github.com/albertinvent/albert-go/pkg/albert"
)

// OAuth2Config holds the settings for the client_credentials grant against
// the platform token endpoint.
type OAuth2Config struct {
	// TokenURL is the full token endpoint URL.
	TokenURL string
	// ClientID is the OAuth2 client ID.
	ClientID string
	// ClientSecret is the OAuth2 client secret.
	ClientSecret string
	// AccessToken optionally seeds the manager with an existing token.
	AccessToken string
	// HTTPClient overrides the client used for token requests.
	HTTPClient *http.Client
}

// OAuth2TokenManager manages tokens obtained via the client_credentials
// grant. Safe for concurrent use: concurrent callers hitting an expired
// token produce a single refresh request.
type OAuth2TokenManager struct {
	config     *OAuth2Config
	store      *TokenStore
	httpClient *http.Client
	refreshMu  sync.Mutex
}

// NewOAuth2TokenManager creates a new OAuth2 token manager.
func NewOAuth2TokenManager(config *OAuth2Config) *OAuth2TokenManager {
	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: constants.ShortHTTPTimeout}
	}

	manager := &OAuth2TokenManager{
		config:     config,
		store:      NewTokenStore(),
		httpClient: httpClient,
	}

	if config.AccessToken != "" {
		manager.store.Set(&Token{
			AccessToken: config.AccessToken,
			TokenType:   "bearer",
			ExpiresAt:   expiryFromClaims(config.AccessToken),
		})
	}

	return manager
}

// GetToken returns a valid access token, refreshing if necessary.
func (m *OAuth2TokenManager) GetToken(ctx context.Context) (string, error) {
	token := m.store.Get()
	if token.Valid() {
		return token.AccessToken, nil
	}

	m.refreshMu.Lock()
	defer m.refreshMu.Unlock()

	// Another caller may have refreshed while we waited for the lock.
	token = m.store.Get()
	if token.Valid() {
		return token.AccessToken, nil
	}

	token, err := m.requestToken(ctx)
	if err != nil {
		return "", err
	}

	m.store.Set(token)

	return token.AccessToken, nil
}

// RefreshToken forces a token refresh regardless of the current token's
// validity.
func (m *OAuth2TokenManager) RefreshToken(ctx context.Context) error {
	m.refreshMu.Lock()
	defer m.refreshMu.Unlock()

	token, err := m.requestToken(ctx)
	if err != nil {
		return err
	}

	m.store.Set(token)

	return nil
}

// SetToken manually sets the access token.
func (m *OAuth2TokenManager) SetToken(token string, expiresAt time.Time) {
	m.store.Set(&Token{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresAt:   expiresAt,
	})
}

// requestToken performs the client_credentials grant. The platform expects
// the credentials in the form body, not via basic auth.
func (m *OAuth2TokenManager) requestToken(ctx context.Context) (*Token, error) {
	if m.config.ClientID == "" || m.config.ClientSecret == "" {
		return nil, albert.ErrCredentialsRequired
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", m.config.ClientID)
	form.Set("client_secret", m.config.ClientSecret)

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, m.config.TokenURL, strings.NewReader(form.Encode()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create token request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("token request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read token response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d: %s",
			albert.ErrTokenRequestFailed, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var token Token

	err = json.Unmarshal(body, &token)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal token response: %w", err)
	}

	if token.AccessToken == "" {
		return nil, constants.ErrNoAccessToken
	}

	token.ExpiresAt = tokenExpiry(&token)

	return &token, nil
}

// tokenExpiry derives the token expiry, preferring the JWT exp claim over
// the expires_in field.
func tokenExpiry(token *Token) time.Time {
	expiresAt := expiryFromClaims(token.AccessToken)
	if !expiresAt.IsZero() {
		return expiresAt
	}

	if token.ExpiresIn > 0 {
		return time.Now().Add(time.Duration(token.ExpiresIn) * time.Second)
	}

	return time.Time{}
}

// expiryFromClaims decodes the JWT exp claim without verifying the
// signature. Some environments issue exp in milliseconds rather than
// seconds; any value too large to be a plausible epoch in seconds is
// treated as milliseconds. Returns the zero time when the token is not a
// decodable JWT or carries no exp claim.
func expiryFromClaims(accessToken string) time.Time {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()

	_, _, err := parser.ParseUnverified(accessToken, claims)
	if err != nil {
		return time.Time{}
	}

	raw, ok := claims["exp"]
	if !ok {
		return time.Time{}
	}

	exp, ok := raw.(float64)
	if !ok {
		return time.Time{}
	}

	if exp > constants.MillisecondExpThreshold {
		exp /= 1000
	}

	return time.Unix(int64(exp), 0)
}

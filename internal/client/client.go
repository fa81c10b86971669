package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/albertinvent/albert-go/internal/auth"
	"github.com/albertinvent/albert-go/internal/constants"
	"github.com/albertinvent/albert-go/internal/http"
	"github.com/albertinvent/albert-go/pkg/albert"
)

// Static errors for err113 compliance.
var (
	ErrBaseURLRequired          = errors.New("base URL is required")
	ErrNoTokenManagerConfigured = errors.New("no token manager configured")
	ErrStaticTokenCannotRefresh = errors.New("static token cannot be refreshed")
	ErrEntityNotFound           = errors.New("entity not found")
)

// Client implements the albert.Client interface.
type Client struct {
	httpClient   *http.Client
	tokenManager auth.TokenManager
	baseURL      string
	logger       albert.Logger

	// Resource clients
	tags      albert.TagsClient
	companies albert.CompaniesClient
	cas       albert.CasClient
	projects  albert.ProjectsClient
	inventory albert.InventoryClient
	tasks     albert.TasksClient
	locations albert.LocationsClient
	units     albert.UnitsClient
}

// createTokenManager creates the appropriate token manager based on config.
// A static token always wins over client credentials.
func createTokenManager(config *albert.Config) auth.TokenManager {
	if config.AccessToken != "" {
		return &staticTokenManager{token: config.AccessToken}
	}

	if config.ClientID != "" && config.ClientSecret != "" {
		return auth.NewOAuth2TokenManager(&auth.OAuth2Config{
			TokenURL:     getTokenURL(config),
			ClientID:     config.ClientID,
			ClientSecret: config.ClientSecret,
		})
	}

	return nil // No authentication
}

// getTokenURL returns the token URL from config or derives it from the base
// URL.
func getTokenURL(config *albert.Config) string {
	if config.TokenURL != "" {
		return config.TokenURL
	}

	return config.BaseURL + constants.TokenPath
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *albert.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithHTTPTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// New creates a new Albert API client.
func New(config *albert.Config) (*Client, error) {
	if config.BaseURL == "" {
		return nil, ErrBaseURLRequired
	}

	tokenManager := createTokenManager(config)

	return NewWithTokenManager(config, tokenManager)
}

// NewWithTokenManager creates a new Albert API client with a custom token
// manager.
func NewWithTokenManager(config *albert.Config, tokenManager auth.TokenManager) (*Client, error) {
	if config.BaseURL == "" {
		return nil, ErrBaseURLRequired
	}

	httpOpts := createHTTPClientOptions(config)
	httpClient := http.NewClient(config.BaseURL, tokenManager, httpOpts...)

	client := &Client{
		httpClient:   httpClient,
		tokenManager: tokenManager,
		baseURL:      config.BaseURL,
		logger:       config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

// GetTokenManager returns the token manager for this client.
func (c *Client) GetTokenManager() auth.TokenManager {
	return c.tokenManager
}

// GetToken returns the current access token from the token manager.
func (c *Client) GetToken(ctx context.Context) (string, error) {
	if c.tokenManager == nil {
		return "", ErrNoTokenManagerConfigured
	}

	token, err := c.tokenManager.GetToken(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get token: %w", err)
	}

	return token, nil
}

// FetchPage implements albert.PageFetcher on top of the HTTP client.
func (c *Client) FetchPage(ctx context.Context, path string, query url.Values) (*albert.Page, error) {
	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", err)
	}

	var page albert.Page

	err = json.Unmarshal(resp.Body, &page)
	if err != nil {
		return nil, fmt.Errorf("parsing page: %w", err)
	}

	return &page, nil
}

// Resource client accessors

// Tags implements albert.Client.Tags.
func (c *Client) Tags() albert.TagsClient {
	return c.tags
}

// Companies implements albert.Client.Companies.
func (c *Client) Companies() albert.CompaniesClient {
	return c.companies
}

// Cas implements albert.Client.Cas.
func (c *Client) Cas() albert.CasClient {
	return c.cas
}

// Projects implements albert.Client.Projects.
func (c *Client) Projects() albert.ProjectsClient {
	return c.projects
}

// Inventory implements albert.Client.Inventory.
func (c *Client) Inventory() albert.InventoryClient {
	return c.inventory
}

// Tasks implements albert.Client.Tasks.
func (c *Client) Tasks() albert.TasksClient {
	return c.tasks
}

// Locations implements albert.Client.Locations.
func (c *Client) Locations() albert.LocationsClient {
	return c.locations
}

// Units implements albert.Client.Units.
func (c *Client) Units() albert.UnitsClient {
	return c.units
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.tags = NewTagsClient(c.httpClient, c)
	c.companies = NewCompaniesClient(c.httpClient, c)
	c.cas = NewCasClient(c.httpClient, c)
	c.locations = NewLocationsClient(c.httpClient, c)
	c.units = NewUnitsClient(c.httpClient, c)
	c.projects = NewProjectsClient(c.httpClient, c, c.tags, c.companies)
	c.inventory = NewInventoryClient(c.httpClient, c, c.tags, c.companies)
	c.tasks = NewTasksClient(c.httpClient, c, c.logger)
}

// staticTokenManager provides a static token.
type staticTokenManager struct {
	token string
}

func (m *staticTokenManager) GetToken(ctx context.Context) (string, error) {
	return m.token, nil
}

func (m *staticTokenManager) RefreshToken(ctx context.Context) error {
	return ErrStaticTokenCannotRefresh
}

func (m *staticTokenManager) SetToken(token string, expiresAt time.Time) {
	m.token = token
}

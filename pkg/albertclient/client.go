// Package albertclient provides the main entry point for creating Albert API clients
package albertclient

import (
	"fmt"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/albertinvent/albert-go/internal/client"
	"github.com/albertinvent/albert-go/internal/constants"
	"github.com/albertinvent/albert-go/pkg/albert"
)

// New creates a new Albert API client. The base URL is normalized (scheme
// added, trailing slash trimmed) and, when client credentials are used
// without an explicit token URL, the platform token endpoint is derived
// from the base URL.
func New(config *albert.Config) (albert.Client, error) {
	if config == nil {
		return nil, albert.ErrConfigRequired
	}

	if config.BaseURL == "" {
		return nil, albert.ErrBaseURLRequired
	}

	// Normalize base URL
	baseURL := strings.TrimSuffix(config.BaseURL, "/")
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	config.BaseURL = baseURL

	if config.AccessToken == "" && (config.ClientID == "" || config.ClientSecret == "") {
		return nil, albert.ErrCredentialsRequired
	}

	if needsAuth(config) && config.TokenURL == "" {
		config.TokenURL = baseURL + constants.TokenPath
	}

	// Use the internal client implementation
	apiClient, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return apiClient, nil
}

// needsAuth reports whether the config requires the OAuth2 token endpoint.
func needsAuth(config *albert.Config) bool {
	return config.AccessToken == "" && config.ClientID != ""
}

// envConfig is the environment representation of albert.Config. All
// variables use the ALBERT_ prefix.
type envConfig struct {
	BaseURL      string `envconfig:"BASE_URL"`
	AccessToken  string `envconfig:"TOKEN"`
	ClientID     string `envconfig:"CLIENT_ID"`
	ClientSecret string `envconfig:"CLIENT_SECRET"`
	TokenURL     string `envconfig:"TOKEN_URL"`
	Debug        bool   `envconfig:"DEBUG"`
	UserAgent    string `envconfig:"USER_AGENT"`
}

// NewFromEnv creates a client configured from ALBERT_* environment
// variables: ALBERT_BASE_URL plus either ALBERT_TOKEN or
// ALBERT_CLIENT_ID/ALBERT_CLIENT_SECRET.
func NewFromEnv() (albert.Client, error) {
	var env envConfig

	err := envconfig.Process("albert", &env)
	if err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}

	return New(&albert.Config{
		BaseURL:      env.BaseURL,
		AccessToken:  env.AccessToken,
		ClientID:     env.ClientID,
		ClientSecret: env.ClientSecret,
		TokenURL:     env.TokenURL,
		Debug:        env.Debug,
		UserAgent:    env.UserAgent,
	})
}

// fileConfig is the YAML representation of albert.Config.
type fileConfig struct {
	BaseURL      string `yaml:"base_url"`
	AccessToken  string `yaml:"token"`
	ClientID     string `yaml:"client_id"`
	ClientSecret string `yaml:"client_secret"`
	TokenURL     string `yaml:"token_url"`
	Debug        bool   `yaml:"debug"`
	UserAgent    string `yaml:"user_agent"`
}

// LoadConfigFile reads an albert.Config from a YAML file.
func LoadConfigFile(path string) (*albert.Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is caller-provided by design
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var file fileConfig

	err = yaml.Unmarshal(data, &file)
	if err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return &albert.Config{
		BaseURL:      file.BaseURL,
		AccessToken:  file.AccessToken,
		ClientID:     file.ClientID,
		ClientSecret: file.ClientSecret,
		TokenURL:     file.TokenURL,
		Debug:        file.Debug,
		UserAgent:    file.UserAgent,
	}, nil
}

// NewWithToken creates a new client with a base URL and static access token.
func NewWithToken(baseURL, token string) (albert.Client, error) {
	return New(&albert.Config{
		BaseURL:     baseURL,
		AccessToken: token,
	})
}

// NewWithClientCredentials creates a new client using OAuth2 client
// credentials.
func NewWithClientCredentials(baseURL, clientID, clientSecret string) (albert.Client, error) {
	return New(&albert.Config{
		BaseURL:      baseURL,
		ClientID:     clientID,
		ClientSecret: clientSecret,
	})
}

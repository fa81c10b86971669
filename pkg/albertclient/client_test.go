package albertclient_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albertinvent/albert-go/pkg/albert"
	"github.com/albertinvent/albert-go/pkg/albertclient"
)

func TestNew(t *testing.T) {
	t.Run("requires a config", func(t *testing.T) {
		_, err := albertclient.New(nil)
		assert.ErrorIs(t, err, albert.ErrConfigRequired)
	})

	t.Run("requires a base URL", func(t *testing.T) {
		_, err := albertclient.New(&albert.Config{AccessToken: "token"})
		assert.ErrorIs(t, err, albert.ErrBaseURLRequired)
	})

	t.Run("requires credentials", func(t *testing.T) {
		_, err := albertclient.New(&albert.Config{BaseURL: "https://app.albertinvent.com"})
		assert.ErrorIs(t, err, albert.ErrCredentialsRequired)

		_, err = albertclient.New(&albert.Config{
			BaseURL:  "https://app.albertinvent.com",
			ClientID: "id-without-secret",
		})
		assert.ErrorIs(t, err, albert.ErrCredentialsRequired)
	})

	t.Run("normalizes the base URL", func(t *testing.T) {
		config := &albert.Config{
			BaseURL:     "app.albertinvent.com/",
			AccessToken: "token",
		}

		client, err := albertclient.New(config)
		require.NoError(t, err)
		assert.NotNil(t, client)
		assert.Equal(t, "https://app.albertinvent.com", config.BaseURL)
	})

	t.Run("keeps an explicit scheme", func(t *testing.T) {
		config := &albert.Config{
			BaseURL:     "http://localhost:8080",
			AccessToken: "token",
		}

		_, err := albertclient.New(config)
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:8080", config.BaseURL)
	})

	t.Run("derives the token URL for client credentials", func(t *testing.T) {
		config := &albert.Config{
			BaseURL:      "https://app.albertinvent.com",
			ClientID:     "client-id",
			ClientSecret: "client-secret",
		}

		_, err := albertclient.New(config)
		require.NoError(t, err)
		assert.Equal(t, "https://app.albertinvent.com/api/v3/login/oauth/token", config.TokenURL)
	})

	t.Run("keeps an explicit token URL", func(t *testing.T) {
		config := &albert.Config{
			BaseURL:      "https://app.albertinvent.com",
			ClientID:     "client-id",
			ClientSecret: "client-secret",
			TokenURL:     "https://auth.example.com/token",
		}

		_, err := albertclient.New(config)
		require.NoError(t, err)
		assert.Equal(t, "https://auth.example.com/token", config.TokenURL)
	})
}

func TestNewWithToken(t *testing.T) {
	client, err := albertclient.NewWithToken("https://app.albertinvent.com", "token")
	require.NoError(t, err)
	assert.NotNil(t, client.Tags())
}

func TestNewWithClientCredentials(t *testing.T) {
	client, err := albertclient.NewWithClientCredentials("https://app.albertinvent.com", "id", "secret")
	require.NoError(t, err)
	assert.NotNil(t, client.Inventory())
}

func TestNewFromEnv(t *testing.T) {
	t.Run("reads ALBERT_ variables", func(t *testing.T) {
		t.Setenv("ALBERT_BASE_URL", "https://app.albertinvent.com")
		t.Setenv("ALBERT_TOKEN", "env-token")

		client, err := albertclient.NewFromEnv()
		require.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("fails without credentials", func(t *testing.T) {
		t.Setenv("ALBERT_BASE_URL", "https://app.albertinvent.com")
		t.Setenv("ALBERT_TOKEN", "")
		t.Setenv("ALBERT_CLIENT_ID", "")
		t.Setenv("ALBERT_CLIENT_SECRET", "")

		_, err := albertclient.NewFromEnv()
		assert.ErrorIs(t, err, albert.ErrCredentialsRequired)
	})
}

func TestLoadConfigFile(t *testing.T) {
	t.Run("parses a YAML config", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "albert.yaml")
		content := `base_url: https://app.albertinvent.com
client_id: client-id
client_secret: client-secret
debug: true
`
		writeTestFile(t, path, content)

		config, err := albertclient.LoadConfigFile(path)
		require.NoError(t, err)
		assert.Equal(t, "https://app.albertinvent.com", config.BaseURL)
		assert.Equal(t, "client-id", config.ClientID)
		assert.Equal(t, "client-secret", config.ClientSecret)
		assert.True(t, config.Debug)
	})

	t.Run("fails on a missing file", func(t *testing.T) {
		_, err := albertclient.LoadConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})

	t.Run("fails on malformed YAML", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		writeTestFile(t, path, "base_url: [unclosed")

		_, err := albertclient.LoadConfigFile(path)
		assert.Error(t, err)
	})
}

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

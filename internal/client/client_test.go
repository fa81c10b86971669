package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albertinvent/albert-go/internal/auth"
	"github.com/albertinvent/albert-go/pkg/albert"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("requires a base URL", func(t *testing.T) {
		t.Parallel()

		_, err := New(&albert.Config{})
		assert.ErrorIs(t, err, ErrBaseURLRequired)
	})

	t.Run("creates a client with a static token", func(t *testing.T) {
		t.Parallel()

		client, err := New(&albert.Config{
			BaseURL:     "https://app.albertinvent.com",
			AccessToken: "test-token",
		})
		require.NoError(t, err)
		assert.NotNil(t, client.Tags())
		assert.NotNil(t, client.Companies())
		assert.NotNil(t, client.Cas())
		assert.NotNil(t, client.Projects())
		assert.NotNil(t, client.Inventory())
		assert.NotNil(t, client.Tasks())
		assert.NotNil(t, client.Locations())
		assert.NotNil(t, client.Units())
	})

	t.Run("creates a client with client credentials", func(t *testing.T) {
		t.Parallel()

		client, err := New(&albert.Config{
			BaseURL:      "https://app.albertinvent.com",
			ClientID:     "client-id",
			ClientSecret: "client-secret",
		})
		require.NoError(t, err)
		assert.NotNil(t, client.GetTokenManager())
	})
}

func TestCreateTokenManager(t *testing.T) {
	t.Parallel()

	t.Run("static token wins over client credentials", func(t *testing.T) {
		t.Parallel()

		manager := createTokenManager(&albert.Config{
			AccessToken:  "static-token",
			ClientID:     "client-id",
			ClientSecret: "client-secret",
		})

		token, err := manager.GetToken(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "static-token", token)
	})

	t.Run("client credentials produce an oauth manager", func(t *testing.T) {
		t.Parallel()

		manager := createTokenManager(&albert.Config{
			BaseURL:      "https://app.albertinvent.com",
			ClientID:     "client-id",
			ClientSecret: "client-secret",
		})

		_, ok := manager.(*auth.OAuth2TokenManager)
		assert.True(t, ok)
	})

	t.Run("no credentials means no manager", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, createTokenManager(&albert.Config{BaseURL: "https://app.albertinvent.com"}))
	})
}

func TestGetTokenURL(t *testing.T) {
	t.Parallel()

	t.Run("explicit token URL wins", func(t *testing.T) {
		t.Parallel()

		url := getTokenURL(&albert.Config{
			BaseURL:  "https://app.albertinvent.com",
			TokenURL: "https://auth.example.com/token",
		})
		assert.Equal(t, "https://auth.example.com/token", url)
	})

	t.Run("derived from the base URL otherwise", func(t *testing.T) {
		t.Parallel()

		url := getTokenURL(&albert.Config{BaseURL: "https://app.albertinvent.com"})
		assert.Equal(t, "https://app.albertinvent.com/api/v3/login/oauth/token", url)
	})
}

func TestClient_GetToken(t *testing.T) {
	t.Parallel()

	t.Run("returns the managed token", func(t *testing.T) {
		t.Parallel()

		client, err := New(&albert.Config{
			BaseURL:     "https://app.albertinvent.com",
			AccessToken: "test-token",
		})
		require.NoError(t, err)

		token, err := client.GetToken(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "test-token", token)
	})

	t.Run("fails without a token manager", func(t *testing.T) {
		t.Parallel()

		client, err := New(&albert.Config{BaseURL: "https://app.albertinvent.com"})
		require.NoError(t, err)

		_, err = client.GetToken(context.Background())
		assert.ErrorIs(t, err, ErrNoTokenManagerConfigured)
	})
}

func TestStaticTokenManager(t *testing.T) {
	t.Parallel()

	manager := &staticTokenManager{token: "static-token"}

	token, err := manager.GetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "static-token", token)

	err = manager.RefreshToken(context.Background())
	assert.ErrorIs(t, err, ErrStaticTokenCannotRefresh)
}

func TestClient_FetchPage(t *testing.T) {
	t.Run("parses the list envelope", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/api/v3/tags", request.URL.Path)
			assert.Equal(t, "2", request.URL.Query().Get("limit"))

			writeListPage(writer, "K1", albert.Tag{ID: "TAG1", Name: "a"}, albert.Tag{ID: "TAG2", Name: "b"})
		}))
		defer server.Close()

		client := NewTestClient(server.URL)

		page, err := client.FetchPage(context.Background(), "/api/v3/tags",
			albert.NewQueryParams().WithLimit(2).ToValues())
		require.NoError(t, err)
		assert.Len(t, page.Items, 2)
		assert.Equal(t, "K1", page.LastKey)
	})

	t.Run("propagates API errors", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writeAPIError(writer, http.StatusUnauthorized, "token expired")
		}))
		defer server.Close()

		client := NewTestClient(server.URL)

		_, err := client.FetchPage(context.Background(), "/api/v3/tags", nil)
		require.Error(t, err)
		assert.True(t, albert.IsUnauthorized(err))
	})
}

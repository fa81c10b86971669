package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albertinvent/albert-go/pkg/albert"
)

func TestTagsClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/v3/tags/TAG1", request.URL.Path)
		assert.Equal(t, "GET", request.Method)

		writeJSON(writer, albert.Tag{ID: "TAG1", Name: "solvent"})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	tag, err := client.Tags().Get(context.Background(), "TAG1")
	require.NoError(t, err)
	assert.Equal(t, "TAG1", tag.ID)
	assert.Equal(t, "solvent", tag.Name)
}

func TestTagsClient_GetByName(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/api/v3/tags", request.URL.Path)
			assert.Equal(t, "solvent", request.URL.Query().Get("name"))
			assert.Equal(t, "true", request.URL.Query().Get("exactMatch"))

			writeListPage(writer, "", albert.Tag{ID: "TAG1", Name: "solvent"})
		}))
		defer server.Close()

		client := NewTestClient(server.URL)

		tag, err := client.Tags().GetByName(context.Background(), "solvent", true)
		require.NoError(t, err)
		require.NotNil(t, tag)
		assert.Equal(t, "TAG1", tag.ID)
	})

	t.Run("not found returns nil without error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writeListPage(writer, "")
		}))
		defer server.Close()

		client := NewTestClient(server.URL)

		tag, err := client.Tags().GetByName(context.Background(), "missing", true)
		require.NoError(t, err)
		assert.Nil(t, tag)
	})
}

func TestTagsClient_List(t *testing.T) {
	requests := 0

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		requests++

		switch request.URL.Query().Get("startKey") {
		case "":
			writeListPage(writer, "K1", albert.Tag{ID: "TAG1", Name: "a"}, albert.Tag{ID: "TAG2", Name: "b"})
		case "K1":
			writeListPage(writer, "", albert.Tag{ID: "TAG3", Name: "c"})
		default:
			t.Errorf("unexpected startKey %q", request.URL.Query().Get("startKey"))
		}
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	tags, err := client.Tags().List(context.Background(), albert.NewQueryParams().WithLimit(2)).All()
	require.NoError(t, err)
	require.Len(t, tags, 3)
	assert.Equal(t, "TAG3", tags[2].ID)
	assert.Equal(t, 2, requests)
}

func TestTagsClient_Create(t *testing.T) {
	t.Run("creates when no duplicate exists", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			switch request.Method {
			case "GET":
				writeListPage(writer, "")
			case "POST":
				assert.Equal(t, "/api/v3/tags", request.URL.Path)

				body, _ := io.ReadAll(request.Body)
				assert.JSONEq(t, `{"name":"solvent"}`, string(body))

				writeJSON(writer, albert.Tag{ID: "TAG1", Name: "solvent"})
			default:
				t.Errorf("unexpected method %s", request.Method)
			}
		}))
		defer server.Close()

		client := NewTestClient(server.URL)

		tag, err := client.Tags().Create(context.Background(), &albert.Tag{Name: "solvent"})
		require.NoError(t, err)
		assert.Equal(t, "TAG1", tag.ID)
	})

	t.Run("returns the existing tag instead of duplicating", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if request.Method != "GET" {
				t.Errorf("unexpected method %s", request.Method)
			}

			writeListPage(writer, "", albert.Tag{ID: "TAG1", Name: "solvent"})
		}))
		defer server.Close()

		client := NewTestClient(server.URL)

		tag, err := client.Tags().Create(context.Background(), &albert.Tag{Name: "solvent"})
		require.NoError(t, err)
		assert.Equal(t, "TAG1", tag.ID)
	})

	t.Run("requires a name", func(t *testing.T) {
		client := NewTestClient("http://localhost")

		_, err := client.Tags().Create(context.Background(), &albert.Tag{})
		assert.ErrorIs(t, err, albert.ErrEntityNameRequired)
	})
}

func TestTagsClient_Rename(t *testing.T) {
	t.Run("patches the collection path with a per-entity payload", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			switch {
			case request.Method == "GET" && request.URL.Path == "/api/v3/tags":
				writeListPage(writer, "", albert.Tag{ID: "TAG1", Name: "solvant"})
			case request.Method == "PATCH":
				assert.Equal(t, "/api/v3/tags", request.URL.Path)

				body, _ := io.ReadAll(request.Body)
				assert.JSONEq(t,
					`[{"data":[{"operation":"update","attribute":"name","oldValue":"solvant","newValue":"solvent"}],"id":"TAG1"}]`,
					string(body))

				writer.WriteHeader(http.StatusNoContent)
			case request.Method == "GET" && request.URL.Path == "/api/v3/tags/TAG1":
				writeJSON(writer, albert.Tag{ID: "TAG1", Name: "solvent"})
			default:
				t.Errorf("unexpected request %s %s", request.Method, request.URL.Path)
			}
		}))
		defer server.Close()

		client := NewTestClient(server.URL)

		tag, err := client.Tags().Rename(context.Background(), "solvant", "solvent")
		require.NoError(t, err)
		assert.Equal(t, "solvent", tag.Name)
	})

	t.Run("fails when the old name is unknown", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writeListPage(writer, "")
		}))
		defer server.Close()

		client := NewTestClient(server.URL)

		_, err := client.Tags().Rename(context.Background(), "missing", "anything")
		assert.ErrorIs(t, err, ErrEntityNotFound)
	})
}

func TestTagsClient_ExistsByName(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if request.URL.Query().Get("name") == "solvent" {
			writeListPage(writer, "", albert.Tag{ID: "TAG1", Name: "solvent"})

			return
		}

		writeListPage(writer, "")
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	exists, err := client.Tags().ExistsByName(context.Background(), "solvent", true)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = client.Tags().ExistsByName(context.Background(), "missing", true)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestTagsClient_Delete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/v3/tags/TAG1", request.URL.Path)
		assert.Equal(t, "DELETE", request.Method)
		writer.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	err := client.Tags().Delete(context.Background(), "TAG1")
	require.NoError(t, err)
}

func TestTagsClient_GetError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writeAPIError(writer, http.StatusNotFound, "tag not found")
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	_, err := client.Tags().Get(context.Background(), "TAG404")
	require.Error(t, err)
	assert.True(t, albert.IsNotFound(err))

	var apiErr *albert.APIError

	require.ErrorAs(t, err, &apiErr)
	require.Len(t, apiErr.Errors, 1)
	assert.Equal(t, "tag not found", apiErr.Errors[0].Message)
}

// marshalledInstructions decodes a patch payload body for assertions.
func marshalledInstructions(t *testing.T, body io.Reader) []albert.PatchDatum {
	t.Helper()

	var payload albert.PatchPayload

	err := json.NewDecoder(body).Decode(&payload)
	require.NoError(t, err)

	return payload.Data
}

package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albertinvent/albert-go/pkg/albert"
)

func TestCasClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/v3/cas/CAS1", request.URL.Path)
		assert.Equal(t, "GET", request.Method)

		writeJSON(writer, albert.Cas{ID: "CAS1", Number: "67-64-1"})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	cas, err := client.Cas().Get(context.Background(), "CAS1")
	require.NoError(t, err)
	assert.Equal(t, "67-64-1", cas.Number)
}

func TestCasClient_GetByNumber(t *testing.T) {
	t.Run("exact match scans past lookalike numbers", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "67-64-1", request.URL.Query().Get("number"))

			writeListPage(writer, "",
				albert.Cas{ID: "CAS9", Number: "67-64-19"},
				albert.Cas{ID: "CAS1", Number: "67-64-1"},
			)
		}))
		defer server.Close()

		client := NewTestClient(server.URL)

		cas, err := client.Cas().GetByNumber(context.Background(), "67-64-1", true)
		require.NoError(t, err)
		require.NotNil(t, cas)
		assert.Equal(t, "CAS1", cas.ID)
	})

	t.Run("loose match takes the first candidate", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writeListPage(writer, "",
				albert.Cas{ID: "CAS9", Number: "67-64-19"},
			)
		}))
		defer server.Close()

		client := NewTestClient(server.URL)

		cas, err := client.Cas().GetByNumber(context.Background(), "67-64-1", false)
		require.NoError(t, err)
		require.NotNil(t, cas)
		assert.Equal(t, "CAS9", cas.ID)
	})

	t.Run("not found returns nil without error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writeListPage(writer, "")
		}))
		defer server.Close()

		client := NewTestClient(server.URL)

		cas, err := client.Cas().GetByNumber(context.Background(), "0-00-0", true)
		require.NoError(t, err)
		assert.Nil(t, cas)
	})
}

func TestCasClient_Create(t *testing.T) {
	t.Run("creates when the number is unknown", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			switch request.Method {
			case "GET":
				writeListPage(writer, "")
			case "POST":
				assert.Equal(t, "/api/v3/cas", request.URL.Path)
				writeJSON(writer, albert.Cas{ID: "CAS1", Number: "67-64-1"})
			default:
				t.Errorf("unexpected method %s", request.Method)
			}
		}))
		defer server.Close()

		client := NewTestClient(server.URL)

		cas, err := client.Cas().Create(context.Background(), &albert.Cas{Number: "67-64-1"})
		require.NoError(t, err)
		assert.Equal(t, "CAS1", cas.ID)
	})

	t.Run("returns the existing record instead of duplicating", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if request.Method != "GET" {
				t.Errorf("unexpected method %s", request.Method)
			}

			writeListPage(writer, "", albert.Cas{ID: "CAS1", Number: "67-64-1"})
		}))
		defer server.Close()

		client := NewTestClient(server.URL)

		cas, err := client.Cas().Create(context.Background(), &albert.Cas{Number: "67-64-1"})
		require.NoError(t, err)
		assert.Equal(t, "CAS1", cas.ID)
	})

	t.Run("requires a number", func(t *testing.T) {
		client := NewTestClient("http://localhost")

		_, err := client.Cas().Create(context.Background(), &albert.Cas{})
		assert.ErrorIs(t, err, albert.ErrEntityNameRequired)
	})
}

func TestCasClient_Update(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		switch request.Method {
		case "GET":
			writeJSON(writer, albert.Cas{ID: "CAS1", Number: "67-64-1", Description: "old"})
		case "PATCH":
			assert.Equal(t, "/api/v3/cas/CAS1", request.URL.Path)

			data := marshalledInstructions(t, request.Body)
			require.Len(t, data, 1)
			assert.Equal(t, "description", data[0].Attribute)
			assert.Equal(t, "old", data[0].OldValue)
			assert.Equal(t, "acetone", data[0].NewValue)

			writer.WriteHeader(http.StatusNoContent)
		default:
			t.Errorf("unexpected method %s", request.Method)
		}
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	_, err := client.Cas().Update(context.Background(), &albert.Cas{
		ID:          "CAS1",
		Number:      "67-64-1",
		Description: "acetone",
	})
	require.NoError(t, err)
}

func TestCasClient_Delete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/v3/cas/CAS1", request.URL.Path)
		assert.Equal(t, "DELETE", request.Method)
		writer.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	err := client.Cas().Delete(context.Background(), "CAS1")
	require.NoError(t, err)
}

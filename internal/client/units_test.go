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

func TestUnitsClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/v3/units/UNI1", request.URL.Path)
		assert.Equal(t, "GET", request.Method)

		writeJSON(writer, albert.Unit{ID: "UNI1", Name: "gram", Symbol: "g"})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	unit, err := client.Units().Get(context.Background(), "UNI1")
	require.NoError(t, err)
	assert.Equal(t, "gram", unit.Name)
}

func TestUnitsClient_GetByName(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "gram", request.URL.Query().Get("name"))
		assert.Equal(t, "true", request.URL.Query().Get("exactMatch"))

		writeListPage(writer, "", albert.Unit{ID: "UNI1", Name: "gram"})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	unit, err := client.Units().GetByName(context.Background(), "gram", true)
	require.NoError(t, err)
	require.NotNil(t, unit)
	assert.Equal(t, "UNI1", unit.ID)
}

func TestUnitsClient_Create(t *testing.T) {
	t.Run("creates when no duplicate exists", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			switch request.Method {
			case "GET":
				writeListPage(writer, "")
			case "POST":
				assert.Equal(t, "/api/v3/units", request.URL.Path)
				writeJSON(writer, albert.Unit{ID: "UNI1", Name: "gram"})
			default:
				t.Errorf("unexpected method %s", request.Method)
			}
		}))
		defer server.Close()

		client := NewTestClient(server.URL)

		unit, err := client.Units().Create(context.Background(), &albert.Unit{Name: "gram"})
		require.NoError(t, err)
		assert.Equal(t, "UNI1", unit.ID)
	})

	t.Run("returns the existing unit instead of duplicating", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if request.Method != "GET" {
				t.Errorf("unexpected method %s", request.Method)
			}

			writeListPage(writer, "", albert.Unit{ID: "UNI1", Name: "gram"})
		}))
		defer server.Close()

		client := NewTestClient(server.URL)

		unit, err := client.Units().Create(context.Background(), &albert.Unit{Name: "gram"})
		require.NoError(t, err)
		assert.Equal(t, "UNI1", unit.ID)
	})
}

func TestUnitsClient_Update(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		switch request.Method {
		case "GET":
			writeJSON(writer, albert.Unit{ID: "UNI1", Name: "gram", Symbol: "gr"})
		case "PATCH":
			assert.Equal(t, "/api/v3/units/UNI1", request.URL.Path)

			data := marshalledInstructions(t, request.Body)
			require.Len(t, data, 1)
			assert.Equal(t, "symbol", data[0].Attribute)
			assert.Equal(t, "gr", data[0].OldValue)
			assert.Equal(t, "g", data[0].NewValue)

			writer.WriteHeader(http.StatusNoContent)
		default:
			t.Errorf("unexpected method %s", request.Method)
		}
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	_, err := client.Units().Update(context.Background(), &albert.Unit{
		ID:     "UNI1",
		Name:   "gram",
		Symbol: "g",
	})
	require.NoError(t, err)
}

func TestUnitsClient_Delete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/v3/units/UNI1", request.URL.Path)
		assert.Equal(t, "DELETE", request.Method)
		writer.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	err := client.Units().Delete(context.Background(), "UNI1")
	require.NoError(t, err)
}

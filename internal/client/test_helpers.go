package client

import (
	"encoding/json"
	"net/http"

	internalhttp "github.com/albertinvent/albert-go/internal/http"
	"github.com/albertinvent/albert-go/pkg/albert"
)

// NewTestClient creates a new test client with the given base URL.
func NewTestClient(baseURL string) *Client {
	// Create HTTP client without token manager for testing
	httpClient := internalhttp.NewClient(baseURL, nil)

	client := &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
	}

	// Initialize resource clients
	client.initializeResourceClients()

	return client
}

// writeListPage writes one list envelope response.
func writeListPage(writer http.ResponseWriter, lastKey string, items ...interface{}) {
	page := map[string]interface{}{"Items": items}
	if lastKey != "" {
		page["lastKey"] = lastKey
	}

	writer.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(writer).Encode(page)
}

// writeJSON writes a JSON response body.
func writeJSON(writer http.ResponseWriter, body interface{}) {
	writer.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(writer).Encode(body)
}

// writeAPIError writes the platform error envelope with the given status.
func writeAPIError(writer http.ResponseWriter, statusCode int, message string) {
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(statusCode)
	_ = json.NewEncoder(writer).Encode(albert.ErrorBody{
		Errors: []albert.ServerError{{Message: message}},
	})
}

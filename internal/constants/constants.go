package constants

import "time"

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry limits.
const (
	// DefaultRetryMax is the default maximum number of retries.
	DefaultRetryMax = 3

	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// Token handling.
const (
	// TokenExpirationBuffer is the buffer time before token expiration. A
	// token inside the buffer is treated as expired so the refresh happens
	// before the server starts rejecting it.
	TokenExpirationBuffer = 60 * time.Second

	// MillisecondExpThreshold separates second-resolution from
	// millisecond-resolution exp claims. Any exp above it cannot be a
	// plausible epoch in seconds.
	MillisecondExpThreshold = 1e11
)

// Pagination page sizes.
const (
	// StandardPageSize is the common page size for list endpoints.
	StandardPageSize = 50

	// SearchPageSize is the page size used for search endpoints.
	SearchPageSize = 25
)

// Entity id prefixes. The platform accepts ids with or without the prefix
// but always returns them prefixed.
const (
	// InventoryIDPrefix prefixes inventory item ids.
	InventoryIDPrefix = "INV"

	// TaskIDPrefix prefixes task ids.
	TaskIDPrefix = "TAS"
)

// API path constants.
const (
	// APIBasePath is the versioned prefix for all platform endpoints.
	APIBasePath = "/api/v3"

	// TokenPath is the OAuth2 token endpoint under the base path.
	TokenPath = "/api/v3/login/oauth/token"
)

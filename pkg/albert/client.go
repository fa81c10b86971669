package albert

import (
	"context"
	"errors"
	"time"
)

// Static errors for err113 compliance.
var (
	ErrDeprecatedClientConstructor = errors.New("use github.com/albertinvent/albert-go/pkg/albertclient.New to create a client")
)

// EntityClients provides access to reference-entity resource clients.
type EntityClients interface {
	Tags() TagsClient
	Companies() CompaniesClient
	Cas() CasClient
	Locations() LocationsClient
	Units() UnitsClient
}

// WorkflowClients provides access to workflow resource clients.
type WorkflowClients interface {
	Projects() ProjectsClient
	Inventory() InventoryClient
	Tasks() TasksClient
}

// ResourceClients provides access to all resource-specific clients.
type ResourceClients interface {
	// Composite interfaces for resource groups
	EntityClients
	WorkflowClients
}

// TagsClient manages tag entities.
type TagsClient interface {
	Get(ctx context.Context, id string) (*Tag, error)
	GetByName(ctx context.Context, name string, exactMatch bool) (*Tag, error)
	List(ctx context.Context, params *QueryParams) *Paginator[Tag]
	Create(ctx context.Context, tag *Tag) (*Tag, error)
	Rename(ctx context.Context, oldName, newName string) (*Tag, error)
	ExistsByName(ctx context.Context, name string, exactMatch bool) (bool, error)
	Delete(ctx context.Context, id string) error
}

// CompaniesClient manages company entities.
type CompaniesClient interface {
	Get(ctx context.Context, id string) (*Company, error)
	GetByName(ctx context.Context, name string, exactMatch bool) (*Company, error)
	List(ctx context.Context, params *QueryParams) *Paginator[Company]
	Create(ctx context.Context, company *Company) (*Company, error)
	Update(ctx context.Context, company *Company) (*Company, error)
	Rename(ctx context.Context, oldName, newName string) (*Company, error)
	ExistsByName(ctx context.Context, name string, exactMatch bool) (bool, error)
	Delete(ctx context.Context, id string) error
}

// CasClient manages CAS registry entities.
type CasClient interface {
	Get(ctx context.Context, id string) (*Cas, error)
	GetByNumber(ctx context.Context, number string, exactMatch bool) (*Cas, error)
	List(ctx context.Context, params *QueryParams) *Paginator[Cas]
	Create(ctx context.Context, cas *Cas) (*Cas, error)
	Update(ctx context.Context, cas *Cas) (*Cas, error)
	Delete(ctx context.Context, id string) error
}

// ProjectsClient manages project entities.
type ProjectsClient interface {
	Get(ctx context.Context, id string) (*Project, error)
	List(ctx context.Context, params *QueryParams) *Paginator[Project]
	Create(ctx context.Context, project *Project) (*Project, error)
	Update(ctx context.Context, project *Project) (*Project, error)
	Delete(ctx context.Context, id string) error
}

// InventoryClient manages inventory item entities.
type InventoryClient interface {
	Get(ctx context.Context, id string) (*InventoryItem, error)
	Search(ctx context.Context, params *QueryParams) *Paginator[InventoryItem]
	Create(ctx context.Context, item *InventoryItem) (*InventoryItem, error)
	Update(ctx context.Context, item *InventoryItem) (*InventoryItem, error)
	Delete(ctx context.Context, id string) error
}

// TasksClient manages task entities.
type TasksClient interface {
	Get(ctx context.Context, id string) (*Task, error)
	List(ctx context.Context, params *QueryParams) *Paginator[Task]
	Create(ctx context.Context, task *Task) (*Task, error)
	Delete(ctx context.Context, id string) error
}

// LocationsClient manages location entities.
type LocationsClient interface {
	Get(ctx context.Context, id string) (*Location, error)
	List(ctx context.Context, params *QueryParams) *Paginator[Location]
	Create(ctx context.Context, location *Location) (*Location, error)
	Update(ctx context.Context, location *Location) (*Location, error)
	Delete(ctx context.Context, id string) error
}

// UnitsClient manages measurement unit entities.
type UnitsClient interface {
	Get(ctx context.Context, id string) (*Unit, error)
	GetByName(ctx context.Context, name string, exactMatch bool) (*Unit, error)
	List(ctx context.Context, params *QueryParams) *Paginator[Unit]
	Create(ctx context.Context, unit *Unit) (*Unit, error)
	Update(ctx context.Context, unit *Unit) (*Unit, error)
	Delete(ctx context.Context, id string) error
}

type Client interface {
	// Composite interface for resource groups
	ResourceClients
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building an albert.Client.
//
// # Authentication precedence
//
// The following precedence is applied by the concrete client implementation
// (see pkg/albertclient and internal/client):
//  1. AccessToken: if set, it is used directly as a static Bearer token and is
//     never refreshed.
//  2. ClientID/ClientSecret: uses the OAuth2 client_credentials grant against
//     the platform token endpoint; the resulting token is refreshed before it
//     expires.
//
// At least one of the two must be provided.
//
// # Token URL derivation
//
// If TokenURL is empty, albertclient.New derives it from BaseURL as
// "<base>/api/v3/login/oauth/token".
//
// # Timeouts and retries
//
// Per-request timeouts should generally be controlled via context passed to
// client methods. Retry behavior can be tuned via RetryMax/RetryWaitMin/
// RetryWaitMax.
type Config struct {
	// Required fields
	// BaseURL: base URL for the Albert platform (e.g., "https://app.albertinvent.com").
	// albertclient.New normalizes this value by trimming a trailing slash and
	// adding "https://" if no scheme is present.
	BaseURL string

	// Authentication options (provide one)
	// AccessToken: if set, used directly as a Bearer token. Static tokens are
	// never refreshed; when one expires the 401 surfaces to the caller.
	AccessToken string
	// ClientID: OAuth2 client ID for the client_credentials grant.
	ClientID string
	// ClientSecret: OAuth2 client secret used with ClientID.
	ClientSecret string
	// TokenURL: full OAuth2 token endpoint. If empty, albertclient.New derives
	// it from BaseURL.
	TokenURL string

	// Optional configurations
	// HTTPTimeout: optional default HTTP timeout where supported. Most client
	// calls should rely on context timeouts; this may be used by helpers.
	HTTPTimeout time.Duration
	// RetryMax: maximum number of retries for transient failures (>=500, 429,
	// and connection errors). If 0, a sensible default is used by the client.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMax time.Duration
	// Debug: enables verbose HTTP request/response logging when a Logger is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer and helpers.
	Logger Logger
	// UserAgent: overrides the default User-Agent header sent by the client.
	UserAgent string
}

// NewClient creates a new Albert API client
// Deprecated: Use github.com/albertinvent/albert-go/pkg/albertclient.New instead.
func NewClient(config *Config) (Client, error) {
	return nil, ErrDeprecatedClientConstructor
}

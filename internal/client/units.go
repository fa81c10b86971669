package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/albertinvent/albert-go/internal/constants"
	"github.com/albertinvent/albert-go/internal/http"
	"github.com/albertinvent/albert-go/pkg/albert"
)

const unitsBasePath = constants.APIBasePath + "/units"

// UnitsClient implements albert.UnitsClient.
type UnitsClient struct {
	httpClient *http.Client
	fetcher    albert.PageFetcher
}

// NewUnitsClient creates a new units client.
func NewUnitsClient(httpClient *http.Client, fetcher albert.PageFetcher) *UnitsClient {
	return &UnitsClient{
		httpClient: httpClient,
		fetcher:    fetcher,
	}
}

// Get implements albert.UnitsClient.Get.
func (c *UnitsClient) Get(ctx context.Context, id string) (*albert.Unit, error) {
	resp, err := c.httpClient.Get(ctx, unitsBasePath+"/"+id, nil)
	if err != nil {
		return nil, fmt.Errorf("getting unit: %w", err)
	}

	var unit albert.Unit

	err = json.Unmarshal(resp.Body, &unit)
	if err != nil {
		return nil, fmt.Errorf("parsing unit: %w", err)
	}

	return &unit, nil
}

// GetByName implements albert.UnitsClient.GetByName. Returns (nil, nil)
// when no unit matches.
func (c *UnitsClient) GetByName(ctx context.Context, name string, exactMatch bool) (*albert.Unit, error) {
	params := albert.NewQueryParams().
		WithName(name).
		WithExactMatch(exactMatch)

	pager := c.List(ctx, params)
	if !pager.HasNext() {
		return nil, nil
	}

	unit, err := pager.Next()
	if err != nil {
		return nil, err
	}

	return unit, nil
}

// List implements albert.UnitsClient.List. Units paginate in key mode.
func (c *UnitsClient) List(ctx context.Context, params *albert.QueryParams) *albert.Paginator[albert.Unit] {
	return albert.NewPaginator(ctx, c.fetcher, albert.PaginateKey, unitsBasePath, params, deserializeInto[albert.Unit])
}

// Create implements albert.UnitsClient.Create. An existing unit with the
// same name is returned instead of creating a duplicate.
func (c *UnitsClient) Create(ctx context.Context, unit *albert.Unit) (*albert.Unit, error) {
	if unit.Name == "" {
		return nil, albert.ErrEntityNameRequired
	}

	existing, err := c.GetByName(ctx, unit.Name, true)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		return existing, nil
	}

	resp, err := c.httpClient.Post(ctx, unitsBasePath, unit)
	if err != nil {
		return nil, fmt.Errorf("creating unit: %w", err)
	}

	var created albert.Unit

	err = json.Unmarshal(resp.Body, &created)
	if err != nil {
		return nil, fmt.Errorf("parsing unit response: %w", err)
	}

	return &created, nil
}

// Update implements albert.UnitsClient.Update: re-fetch the current server
// state, diff, patch, re-fetch.
func (c *UnitsClient) Update(ctx context.Context, unit *albert.Unit) (*albert.Unit, error) {
	if unit.ID == "" {
		return nil, albert.ErrEntityIDRequired
	}

	current, err := c.Get(ctx, unit.ID)
	if err != nil {
		return nil, err
	}

	payload := albert.NewPatchBuilder().
		Scalar("name", albert.Value(current.Name), albert.Value(unit.Name)).
		Scalar("symbol", albert.Value(current.Symbol), albert.Value(unit.Symbol)).
		Payload()

	if !payload.Empty() {
		_, err = c.httpClient.Patch(ctx, unitsBasePath+"/"+unit.ID, payload)
		if err != nil {
			return nil, fmt.Errorf("updating unit: %w", err)
		}
	}

	return c.Get(ctx, unit.ID)
}

// Delete implements albert.UnitsClient.Delete.
func (c *UnitsClient) Delete(ctx context.Context, id string) error {
	_, err := c.httpClient.Delete(ctx, unitsBasePath+"/"+id)
	if err != nil {
		return fmt.Errorf("deleting unit: %w", err)
	}

	return nil
}

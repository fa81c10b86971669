package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/albertinvent/albert-go/internal/constants"
	"github.com/albertinvent/albert-go/internal/http"
	"github.com/albertinvent/albert-go/pkg/albert"
)

const locationsBasePath = constants.APIBasePath + "/locations"

// LocationsClient implements albert.LocationsClient.
type LocationsClient struct {
	httpClient *http.Client
	fetcher    albert.PageFetcher
}

// NewLocationsClient creates a new locations client.
func NewLocationsClient(httpClient *http.Client, fetcher albert.PageFetcher) *LocationsClient {
	return &LocationsClient{
		httpClient: httpClient,
		fetcher:    fetcher,
	}
}

// Get implements albert.LocationsClient.Get.
func (c *LocationsClient) Get(ctx context.Context, id string) (*albert.Location, error) {
	resp, err := c.httpClient.Get(ctx, locationsBasePath+"/"+id, nil)
	if err != nil {
		return nil, fmt.Errorf("getting location: %w", err)
	}

	var location albert.Location

	err = json.Unmarshal(resp.Body, &location)
	if err != nil {
		return nil, fmt.Errorf("parsing location: %w", err)
	}

	return &location, nil
}

// List implements albert.LocationsClient.List. Locations paginate in key
// mode.
func (c *LocationsClient) List(ctx context.Context, params *albert.QueryParams) *albert.Paginator[albert.Location] {
	return albert.NewPaginator(ctx, c.fetcher, albert.PaginateKey, locationsBasePath, params, deserializeInto[albert.Location])
}

// Create implements albert.LocationsClient.Create. An existing location
// with the same name is returned instead of creating a duplicate.
func (c *LocationsClient) Create(ctx context.Context, location *albert.Location) (*albert.Location, error) {
	if location.Name == "" {
		return nil, albert.ErrEntityNameRequired
	}

	params := albert.NewQueryParams().WithName(location.Name)

	pager := c.List(ctx, params)
	if pager.HasNext() {
		existing, err := pager.Next()
		if err != nil {
			return nil, err
		}

		return existing, nil
	}

	resp, err := c.httpClient.Post(ctx, locationsBasePath, location)
	if err != nil {
		return nil, fmt.Errorf("creating location: %w", err)
	}

	var created albert.Location

	err = json.Unmarshal(resp.Body, &created)
	if err != nil {
		return nil, fmt.Errorf("parsing location response: %w", err)
	}

	return &created, nil
}

// Update implements albert.LocationsClient.Update: re-fetch the current
// server state, diff the updatable attributes, patch, re-fetch.
func (c *LocationsClient) Update(ctx context.Context, location *albert.Location) (*albert.Location, error) {
	if location.ID == "" {
		return nil, albert.ErrEntityIDRequired
	}

	current, err := c.Get(ctx, location.ID)
	if err != nil {
		return nil, err
	}

	payload := albert.NewPatchBuilder().
		Scalar("name", albert.Value(current.Name), albert.Value(location.Name)).
		Scalar("address", albert.Value(current.Address), albert.Value(location.Address)).
		Scalar("country", albert.Value(current.Country), albert.Value(location.Country)).
		Scalar("latitude", floatPtrValue(current.Latitude), floatPtrValue(location.Latitude)).
		Scalar("longitude", floatPtrValue(current.Longitude), floatPtrValue(location.Longitude)).
		Payload()

	if !payload.Empty() {
		_, err = c.httpClient.Patch(ctx, locationsBasePath+"/"+location.ID, payload)
		if err != nil {
			return nil, fmt.Errorf("updating location: %w", err)
		}
	}

	return c.Get(ctx, location.ID)
}

// Delete implements albert.LocationsClient.Delete.
func (c *LocationsClient) Delete(ctx context.Context, id string) error {
	_, err := c.httpClient.Delete(ctx, locationsBasePath+"/"+id)
	if err != nil {
		return fmt.Errorf("deleting location: %w", err)
	}

	return nil
}

func floatPtrValue(f *float64) any {
	if f == nil {
		return nil
	}

	return *f
}

package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/albertinvent/albert-go/internal/constants"
	"github.com/albertinvent/albert-go/internal/http"
	"github.com/albertinvent/albert-go/pkg/albert"
)

const casBasePath = constants.APIBasePath + "/cas"

// CasClient implements albert.CasClient.
type CasClient struct {
	httpClient *http.Client
	fetcher    albert.PageFetcher
}

// NewCasClient creates a new CAS client.
func NewCasClient(httpClient *http.Client, fetcher albert.PageFetcher) *CasClient {
	return &CasClient{
		httpClient: httpClient,
		fetcher:    fetcher,
	}
}

// Get implements albert.CasClient.Get.
func (c *CasClient) Get(ctx context.Context, id string) (*albert.Cas, error) {
	resp, err := c.httpClient.Get(ctx, casBasePath+"/"+id, nil)
	if err != nil {
		return nil, fmt.Errorf("getting cas: %w", err)
	}

	var cas albert.Cas

	err = json.Unmarshal(resp.Body, &cas)
	if err != nil {
		return nil, fmt.Errorf("parsing cas: %w", err)
	}

	return &cas, nil
}

// GetByNumber implements albert.CasClient.GetByNumber. With exactMatch the
// listed candidates are compared against the requested number; without it
// the first candidate wins. Returns (nil, nil) when nothing matches.
func (c *CasClient) GetByNumber(ctx context.Context, number string, exactMatch bool) (*albert.Cas, error) {
	params := albert.NewQueryParams().WithFilter("number", number)

	pager := c.List(ctx, params)

	for pager.HasNext() {
		cas, err := pager.Next()
		if err != nil {
			return nil, err
		}

		if !exactMatch || cas.Number == number {
			return cas, nil
		}
	}

	return nil, nil
}

// List implements albert.CasClient.List. CAS records paginate in key mode.
func (c *CasClient) List(ctx context.Context, params *albert.QueryParams) *albert.Paginator[albert.Cas] {
	return albert.NewPaginator(ctx, c.fetcher, albert.PaginateKey, casBasePath, params, deserializeInto[albert.Cas])
}

// Create implements albert.CasClient.Create. An existing record with the
// same number is returned instead of creating a duplicate.
func (c *CasClient) Create(ctx context.Context, cas *albert.Cas) (*albert.Cas, error) {
	if cas.Number == "" {
		return nil, albert.ErrEntityNameRequired
	}

	existing, err := c.GetByNumber(ctx, cas.Number, true)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		return existing, nil
	}

	resp, err := c.httpClient.Post(ctx, casBasePath, cas)
	if err != nil {
		return nil, fmt.Errorf("creating cas: %w", err)
	}

	var created albert.Cas

	err = json.Unmarshal(resp.Body, &created)
	if err != nil {
		return nil, fmt.Errorf("parsing cas response: %w", err)
	}

	return &created, nil
}

// Update implements albert.CasClient.Update: re-fetch the current server
// state, diff the updatable attributes, patch, re-fetch.
func (c *CasClient) Update(ctx context.Context, cas *albert.Cas) (*albert.Cas, error) {
	if cas.ID == "" {
		return nil, albert.ErrEntityIDRequired
	}

	current, err := c.Get(ctx, cas.ID)
	if err != nil {
		return nil, err
	}

	payload := albert.NewPatchBuilder().
		Scalar("description", albert.Value(current.Description), albert.Value(cas.Description)).
		Scalar("notes", albert.Value(current.Notes), albert.Value(cas.Notes)).
		Scalar("casSmiles", albert.Value(current.Smiles), albert.Value(cas.Smiles)).
		Scalar("category", albert.Value(string(current.Category)), albert.Value(string(cas.Category))).
		Payload()

	if !payload.Empty() {
		_, err = c.httpClient.Patch(ctx, casBasePath+"/"+cas.ID, payload)
		if err != nil {
			return nil, fmt.Errorf("updating cas: %w", err)
		}
	}

	return c.Get(ctx, cas.ID)
}

// Delete implements albert.CasClient.Delete.
func (c *CasClient) Delete(ctx context.Context, id string) error {
	_, err := c.httpClient.Delete(ctx, casBasePath+"/"+id)
	if err != nil {
		return fmt.Errorf("deleting cas: %w", err)
	}

	return nil
}

package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/albertinvent/albert-go/internal/constants"
	"github.com/albertinvent/albert-go/internal/http"
	"github.com/albertinvent/albert-go/pkg/albert"
)

const companiesBasePath = constants.APIBasePath + "/companies"

// CompaniesClient implements albert.CompaniesClient.
type CompaniesClient struct {
	httpClient *http.Client
	fetcher    albert.PageFetcher
}

// NewCompaniesClient creates a new companies client.
func NewCompaniesClient(httpClient *http.Client, fetcher albert.PageFetcher) *CompaniesClient {
	return &CompaniesClient{
		httpClient: httpClient,
		fetcher:    fetcher,
	}
}

// Get implements albert.CompaniesClient.Get.
func (c *CompaniesClient) Get(ctx context.Context, id string) (*albert.Company, error) {
	resp, err := c.httpClient.Get(ctx, companiesBasePath+"/"+id, nil)
	if err != nil {
		return nil, fmt.Errorf("getting company: %w", err)
	}

	var company albert.Company

	err = json.Unmarshal(resp.Body, &company)
	if err != nil {
		return nil, fmt.Errorf("parsing company: %w", err)
	}

	return &company, nil
}

// GetByName implements albert.CompaniesClient.GetByName. Returns (nil, nil)
// when no company matches.
func (c *CompaniesClient) GetByName(ctx context.Context, name string, exactMatch bool) (*albert.Company, error) {
	params := albert.NewQueryParams().
		WithName(name).
		WithExactMatch(exactMatch)

	pager := c.List(ctx, params)
	if !pager.HasNext() {
		return nil, nil
	}

	company, err := pager.Next()
	if err != nil {
		return nil, err
	}

	return company, nil
}

// List implements albert.CompaniesClient.List. Companies paginate in key
// mode; dupDetection is disabled so near-duplicate names still list.
func (c *CompaniesClient) List(ctx context.Context, params *albert.QueryParams) *albert.Paginator[albert.Company] {
	params = params.Clone()
	params.WithFilter("dupDetection", "false")

	return albert.NewPaginator(ctx, c.fetcher, albert.PaginateKey, companiesBasePath, params, deserializeInto[albert.Company])
}

// Create implements albert.CompaniesClient.Create. An existing company with
// the same name is returned instead of creating a duplicate.
func (c *CompaniesClient) Create(ctx context.Context, company *albert.Company) (*albert.Company, error) {
	if company.Name == "" {
		return nil, albert.ErrEntityNameRequired
	}

	existing, err := c.GetByName(ctx, company.Name, true)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		return existing, nil
	}

	resp, err := c.httpClient.Post(ctx, companiesBasePath, company)
	if err != nil {
		return nil, fmt.Errorf("creating company: %w", err)
	}

	var created albert.Company

	err = json.Unmarshal(resp.Body, &created)
	if err != nil {
		return nil, fmt.Errorf("parsing company response: %w", err)
	}

	return &created, nil
}

// Update implements albert.CompaniesClient.Update: re-fetch the current
// server state, diff, patch, re-fetch.
func (c *CompaniesClient) Update(ctx context.Context, company *albert.Company) (*albert.Company, error) {
	if company.ID == "" {
		return nil, albert.ErrEntityIDRequired
	}

	current, err := c.Get(ctx, company.ID)
	if err != nil {
		return nil, err
	}

	payload := albert.NewPatchBuilder().
		Scalar("name", albert.Value(current.Name), albert.Value(company.Name)).
		Payload()

	if !payload.Empty() {
		_, err = c.httpClient.Patch(ctx, companiesBasePath+"/"+company.ID, payload)
		if err != nil {
			return nil, fmt.Errorf("updating company: %w", err)
		}
	}

	return c.Get(ctx, company.ID)
}

// Rename implements albert.CompaniesClient.Rename.
func (c *CompaniesClient) Rename(ctx context.Context, oldName, newName string) (*albert.Company, error) {
	existing, err := c.GetByName(ctx, oldName, true)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		return nil, fmt.Errorf("renaming company %q: %w", oldName, ErrEntityNotFound)
	}

	payload := albert.NewPatchBuilder().
		Scalar("name", oldName, newName).
		Payload()

	_, err = c.httpClient.Patch(ctx, companiesBasePath+"/"+existing.ID, payload)
	if err != nil {
		return nil, fmt.Errorf("renaming company: %w", err)
	}

	return c.Get(ctx, existing.ID)
}

// ExistsByName implements albert.CompaniesClient.ExistsByName.
func (c *CompaniesClient) ExistsByName(ctx context.Context, name string, exactMatch bool) (bool, error) {
	company, err := c.GetByName(ctx, name, exactMatch)
	if err != nil {
		return false, err
	}

	return company != nil, nil
}

// Delete implements albert.CompaniesClient.Delete.
func (c *CompaniesClient) Delete(ctx context.Context, id string) error {
	_, err := c.httpClient.Delete(ctx, companiesBasePath+"/"+id)
	if err != nil {
		return fmt.Errorf("deleting company: %w", err)
	}

	return nil
}

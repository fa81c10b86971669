package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/albertinvent/albert-go/internal/constants"
	"github.com/albertinvent/albert-go/internal/http"
	"github.com/albertinvent/albert-go/pkg/albert"
)

const inventoryBasePath = constants.APIBasePath + "/inventories"

// InventoryClient implements albert.InventoryClient.
type InventoryClient struct {
	httpClient *http.Client
	fetcher    albert.PageFetcher
	tags       albert.TagsClient
	companies  albert.CompaniesClient
}

// NewInventoryClient creates a new inventory client.
func NewInventoryClient(
	httpClient *http.Client,
	fetcher albert.PageFetcher,
	tags albert.TagsClient,
	companies albert.CompaniesClient,
) *InventoryClient {
	return &InventoryClient{
		httpClient: httpClient,
		fetcher:    fetcher,
		tags:       tags,
		companies:  companies,
	}
}

// normalizeInventoryID ensures the INV prefix is present. The platform
// sometimes drops it on list responses.
func normalizeInventoryID(id string) string {
	if strings.HasPrefix(id, constants.InventoryIDPrefix) {
		return id
	}

	return constants.InventoryIDPrefix + id
}

// Get implements albert.InventoryClient.Get.
func (c *InventoryClient) Get(ctx context.Context, id string) (*albert.InventoryItem, error) {
	resp, err := c.httpClient.Get(ctx, inventoryBasePath+"/"+normalizeInventoryID(id), nil)
	if err != nil {
		return nil, fmt.Errorf("getting inventory item: %w", err)
	}

	var item albert.InventoryItem

	err = json.Unmarshal(resp.Body, &item)
	if err != nil {
		return nil, fmt.Errorf("parsing inventory item: %w", err)
	}

	return &item, nil
}

// Search implements albert.InventoryClient.Search. The search endpoint
// paginates in offset mode and returns partial records, so every hit is
// hydrated with a per-id GET.
func (c *InventoryClient) Search(ctx context.Context, params *albert.QueryParams) *albert.Paginator[albert.InventoryItem] {
	params = params.Clone()
	if params.Limit <= 0 {
		params.Limit = constants.SearchPageSize
	}

	deserialize := func(raw json.RawMessage) (*albert.InventoryItem, error) {
		var partial struct {
			AlbertID string `json:"albertId"`
		}

		err := json.Unmarshal(raw, &partial)
		if err != nil {
			return nil, fmt.Errorf("parsing search hit: %w", err)
		}

		return c.Get(ctx, partial.AlbertID)
	}

	return albert.NewPaginator(ctx, c.fetcher, albert.PaginateOffset, inventoryBasePath+"/search", params, deserialize)
}

// Create implements albert.InventoryClient.Create. Formulas registration
// goes through worksheets and is rejected here. Unregistered tags and an
// unregistered company are created first; an existing item with the same
// name and company is returned instead of creating a duplicate.
func (c *InventoryClient) Create(ctx context.Context, item *albert.InventoryItem) (*albert.InventoryItem, error) {
	if item.Category == albert.InventoryFormulas {
		return nil, albert.ErrFormulasNotSupported
	}

	for i, tag := range item.Tags {
		if tag.ID != "" {
			continue
		}

		created, err := c.tags.Create(ctx, &tag)
		if err != nil {
			return nil, fmt.Errorf("registering tag %q: %w", tag.Name, err)
		}

		item.Tags[i] = *created
	}

	if item.Company != nil && item.Company.ID == "" {
		created, err := c.companies.Create(ctx, item.Company)
		if err != nil {
			return nil, fmt.Errorf("registering company %q: %w", item.Company.Name, err)
		}

		item.Company = created
	}

	existing, err := c.getMatchOrNone(ctx, item)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		return existing, nil
	}

	resp, err := c.httpClient.Post(ctx, inventoryBasePath, item)
	if err != nil {
		return nil, fmt.Errorf("creating inventory item: %w", err)
	}

	var created albert.InventoryItem

	err = json.Unmarshal(resp.Body, &created)
	if err != nil {
		return nil, fmt.Errorf("parsing inventory response: %w", err)
	}

	return &created, nil
}

// Update implements albert.InventoryClient.Update: re-fetch the current
// server state, diff the updatable attributes plus the company reference,
// tag set, and CAS amounts, patch, re-fetch. The inventories endpoint
// rejects compound patch payloads, so each instruction goes in its own
// request.
func (c *InventoryClient) Update(ctx context.Context, item *albert.InventoryItem) (*albert.InventoryItem, error) {
	if item.ID == "" {
		return nil, albert.ErrEntityIDRequired
	}

	current, err := c.Get(ctx, item.ID)
	if err != nil {
		return nil, err
	}

	payload := albert.NewPatchBuilder().
		Scalar("name", albert.Value(current.Name), albert.Value(item.Name)).
		Scalar("description", albert.Value(current.Description), albert.Value(item.Description)).
		Scalar("unitCategory", albert.Value(string(current.UnitCategory)), albert.Value(string(item.UnitCategory))).
		Scalar("class", albert.Value(string(current.SecurityClass)), albert.Value(string(item.SecurityClass))).
		Reference("companyId", albert.CompanyLink(current.Company), albert.CompanyLink(item.Company)).
		ReferenceSet("tagId", albert.TagIDs(current.Tags), albert.TagIDs(item.Tags)).
		RangeSet("casId", albert.CasRanges(current.Cas), albert.CasRanges(item.Cas)).
		Payload()

	path := inventoryBasePath + "/" + normalizeInventoryID(item.ID)

	for _, datum := range payload.Data {
		single := &albert.PatchPayload{Data: []albert.PatchDatum{datum}}

		_, err = c.httpClient.Patch(ctx, path, single)
		if err != nil {
			return nil, fmt.Errorf("updating inventory item: %w", err)
		}
	}

	return c.Get(ctx, item.ID)
}

// Delete implements albert.InventoryClient.Delete.
func (c *InventoryClient) Delete(ctx context.Context, id string) error {
	_, err := c.httpClient.Delete(ctx, inventoryBasePath+"/"+normalizeInventoryID(id))
	if err != nil {
		return fmt.Errorf("deleting inventory item: %w", err)
	}

	return nil
}

// getMatchOrNone searches for an item with the same name and manufacturer.
func (c *InventoryClient) getMatchOrNone(ctx context.Context, item *albert.InventoryItem) (*albert.InventoryItem, error) {
	if item.Name == "" {
		return nil, nil
	}

	params := albert.NewQueryParams().WithText(item.Name)
	if item.Company != nil && item.Company.Name != "" {
		params.WithFilter("manufacturer", item.Company.Name)
	}

	pager := c.Search(ctx, params)
	if !pager.HasNext() {
		return nil, nil
	}

	match, err := pager.Next()
	if err != nil {
		return nil, err
	}

	return match, nil
}

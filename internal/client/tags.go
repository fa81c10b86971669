package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/albertinvent/albert-go/internal/constants"
	"github.com/albertinvent/albert-go/internal/http"
	"github.com/albertinvent/albert-go/pkg/albert"
)

const tagsBasePath = constants.APIBasePath + "/tags"

// TagsClient implements albert.TagsClient.
type TagsClient struct {
	httpClient *http.Client
	fetcher    albert.PageFetcher
}

// NewTagsClient creates a new tags client.
func NewTagsClient(httpClient *http.Client, fetcher albert.PageFetcher) *TagsClient {
	return &TagsClient{
		httpClient: httpClient,
		fetcher:    fetcher,
	}
}

// Get implements albert.TagsClient.Get.
func (c *TagsClient) Get(ctx context.Context, id string) (*albert.Tag, error) {
	resp, err := c.httpClient.Get(ctx, tagsBasePath+"/"+id, nil)
	if err != nil {
		return nil, fmt.Errorf("getting tag: %w", err)
	}

	var tag albert.Tag

	err = json.Unmarshal(resp.Body, &tag)
	if err != nil {
		return nil, fmt.Errorf("parsing tag: %w", err)
	}

	return &tag, nil
}

// GetByName implements albert.TagsClient.GetByName. Returns (nil, nil) when
// no tag matches.
func (c *TagsClient) GetByName(ctx context.Context, name string, exactMatch bool) (*albert.Tag, error) {
	params := albert.NewQueryParams().
		WithName(name).
		WithExactMatch(exactMatch)

	pager := c.List(ctx, params)
	if !pager.HasNext() {
		return nil, nil
	}

	tag, err := pager.Next()
	if err != nil {
		return nil, err
	}

	return tag, nil
}

// List implements albert.TagsClient.List. Tags paginate in key mode.
func (c *TagsClient) List(ctx context.Context, params *albert.QueryParams) *albert.Paginator[albert.Tag] {
	return albert.NewPaginator(ctx, c.fetcher, albert.PaginateKey, tagsBasePath, params, deserializeInto[albert.Tag])
}

// Create implements albert.TagsClient.Create. An existing tag with the same
// name is returned instead of creating a duplicate.
func (c *TagsClient) Create(ctx context.Context, tag *albert.Tag) (*albert.Tag, error) {
	if tag.Name == "" {
		return nil, albert.ErrEntityNameRequired
	}

	existing, err := c.GetByName(ctx, tag.Name, true)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		return existing, nil
	}

	resp, err := c.httpClient.Post(ctx, tagsBasePath, map[string]string{"name": tag.Name})
	if err != nil {
		return nil, fmt.Errorf("creating tag: %w", err)
	}

	var created albert.Tag

	err = json.Unmarshal(resp.Body, &created)
	if err != nil {
		return nil, fmt.Errorf("parsing tag response: %w", err)
	}

	return &created, nil
}

// Rename implements albert.TagsClient.Rename. The tags endpoint expects the
// rename patch as a list of per-entity payloads posted against the
// collection path.
func (c *TagsClient) Rename(ctx context.Context, oldName, newName string) (*albert.Tag, error) {
	existing, err := c.GetByName(ctx, oldName, true)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		return nil, fmt.Errorf("renaming tag %q: %w", oldName, ErrEntityNotFound)
	}

	payload := albert.NewPatchBuilder().
		Scalar("name", oldName, newName).
		Payload()

	body := []map[string]interface{}{
		{
			"data": payload.Data,
			"id":   existing.ID,
		},
	}

	_, err = c.httpClient.Patch(ctx, tagsBasePath, body)
	if err != nil {
		return nil, fmt.Errorf("renaming tag: %w", err)
	}

	return c.Get(ctx, existing.ID)
}

// ExistsByName implements albert.TagsClient.ExistsByName.
func (c *TagsClient) ExistsByName(ctx context.Context, name string, exactMatch bool) (bool, error) {
	tag, err := c.GetByName(ctx, name, exactMatch)
	if err != nil {
		return false, err
	}

	return tag != nil, nil
}

// Delete implements albert.TagsClient.Delete.
func (c *TagsClient) Delete(ctx context.Context, id string) error {
	_, err := c.httpClient.Delete(ctx, tagsBasePath+"/"+id)
	if err != nil {
		return fmt.Errorf("deleting tag: %w", err)
	}

	return nil
}

// deserializeInto unmarshals one raw list item into T. The common case for
// endpoints whose list items are complete records.
func deserializeInto[T any](raw json.RawMessage) (*T, error) {
	var item T

	err := json.Unmarshal(raw, &item)
	if err != nil {
		return nil, fmt.Errorf("parsing list item: %w", err)
	}

	return &item, nil
}

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/albertinvent/albert-go/internal/constants"
	"github.com/albertinvent/albert-go/internal/http"
	"github.com/albertinvent/albert-go/pkg/albert"
)

const tasksBasePath = constants.APIBasePath + "/tasks"

// TasksClient implements albert.TasksClient.
type TasksClient struct {
	httpClient *http.Client
	fetcher    albert.PageFetcher
	logger     albert.Logger
}

// NewTasksClient creates a new tasks client.
func NewTasksClient(httpClient *http.Client, fetcher albert.PageFetcher, logger albert.Logger) *TasksClient {
	return &TasksClient{
		httpClient: httpClient,
		fetcher:    fetcher,
		logger:     logger,
	}
}

// normalizeTaskID ensures the TAS prefix is present. Task subtypes carry
// their own sub-prefix and sometimes drop the core one.
func normalizeTaskID(id string) string {
	if strings.HasPrefix(id, constants.TaskIDPrefix) {
		return id
	}

	return constants.TaskIDPrefix + id
}

// Get implements albert.TasksClient.Get.
func (c *TasksClient) Get(ctx context.Context, id string) (*albert.Task, error) {
	resp, err := c.httpClient.Get(ctx, tasksBasePath+"/"+normalizeTaskID(id), nil)
	if err != nil {
		return nil, fmt.Errorf("getting task: %w", err)
	}

	var task albert.Task

	err = json.Unmarshal(resp.Body, &task)
	if err != nil {
		return nil, fmt.Errorf("parsing task: %w", err)
	}

	return &task, nil
}

// List implements albert.TasksClient.List. The search endpoint paginates in
// offset mode and returns partial records, so every hit is hydrated with a
// per-id GET. A hit the caller cannot read (or that vanished, or that the
// server fails to serve) is logged and skipped rather than aborting the
// whole listing.
func (c *TasksClient) List(ctx context.Context, params *albert.QueryParams) *albert.Paginator[albert.Task] {
	deserialize := func(raw json.RawMessage) (*albert.Task, error) {
		var partial struct {
			AlbertID string `json:"albertId"`
		}

		err := json.Unmarshal(raw, &partial)
		if err != nil {
			return nil, fmt.Errorf("parsing search hit: %w", err)
		}

		task, err := c.Get(ctx, partial.AlbertID)
		if err != nil {
			if albert.IsForbidden(err) || albert.IsNotFound(err) || albert.IsInternalServerError(err) {
				if c.logger != nil {
					c.logger.Warn("skipping task", map[string]interface{}{
						"albertId": partial.AlbertID,
						"error":    err.Error(),
					})
				}

				return nil, nil
			}

			return nil, err
		}

		return task, nil
	}

	return albert.NewPaginator(ctx, c.fetcher, albert.PaginateOffset, tasksBasePath+"/search", params, deserialize)
}

// Create implements albert.TasksClient.Create. The multi endpoint takes a
// list of tasks and routes on the category (and optional parent) passed as
// query parameters.
func (c *TasksClient) Create(ctx context.Context, task *albert.Task) (*albert.Task, error) {
	query := url.Values{}
	query.Set("category", string(task.Category))

	if task.ParentID != "" {
		query.Set("parentId", task.ParentID)
	}

	resp, err := c.httpClient.PostWithQuery(ctx, tasksBasePath+"/multi", query, []*albert.Task{task})
	if err != nil {
		return nil, fmt.Errorf("creating task: %w", err)
	}

	var created []albert.Task

	err = json.Unmarshal(resp.Body, &created)
	if err != nil {
		return nil, fmt.Errorf("parsing task response: %w", err)
	}

	if len(created) == 0 {
		return nil, fmt.Errorf("creating task: %w", ErrEntityNotFound)
	}

	return &created[0], nil
}

// Delete implements albert.TasksClient.Delete.
func (c *TasksClient) Delete(ctx context.Context, id string) error {
	_, err := c.httpClient.Delete(ctx, tasksBasePath+"/"+id)
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}

	return nil
}

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

const projectsBasePath = constants.APIBasePath + "/projects"

// ProjectsClient implements albert.ProjectsClient.
type ProjectsClient struct {
	httpClient *http.Client
	fetcher    albert.PageFetcher
	tags       albert.TagsClient
	companies  albert.CompaniesClient
}

// NewProjectsClient creates a new projects client.
func NewProjectsClient(
	httpClient *http.Client,
	fetcher albert.PageFetcher,
	tags albert.TagsClient,
	companies albert.CompaniesClient,
) *ProjectsClient {
	return &ProjectsClient{
		httpClient: httpClient,
		fetcher:    fetcher,
		tags:       tags,
		companies:  companies,
	}
}

// Get implements albert.ProjectsClient.Get.
func (c *ProjectsClient) Get(ctx context.Context, id string) (*albert.Project, error) {
	resp, err := c.httpClient.Get(ctx, projectsBasePath+"/"+id, nil)
	if err != nil {
		return nil, fmt.Errorf("getting project: %w", err)
	}

	var project albert.Project

	err = json.Unmarshal(resp.Body, &project)
	if err != nil {
		return nil, fmt.Errorf("parsing project: %w", err)
	}

	return &project, nil
}

// List implements albert.ProjectsClient.List. Projects paginate in key mode;
// multiple name filters collapse into one comma-separated value.
func (c *ProjectsClient) List(ctx context.Context, params *albert.QueryParams) *albert.Paginator[albert.Project] {
	params = params.Clone()
	if len(params.Names) > 0 {
		params.WithFilter("name", strings.Join(params.Names, ","))
		params.Names = nil
	}

	return albert.NewPaginator(ctx, c.fetcher, albert.PaginateKey, projectsBasePath, params, deserializeInto[albert.Project])
}

// Create implements albert.ProjectsClient.Create. Unregistered tags and an
// unregistered company are created first so the project payload carries
// their ids.
func (c *ProjectsClient) Create(ctx context.Context, project *albert.Project) (*albert.Project, error) {
	err := c.registerReferences(ctx, project)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, projectsBasePath, project)
	if err != nil {
		return nil, fmt.Errorf("creating project: %w", err)
	}

	var created albert.Project

	err = json.Unmarshal(resp.Body, &created)
	if err != nil {
		return nil, fmt.Errorf("parsing project response: %w", err)
	}

	return &created, nil
}

// Update implements albert.ProjectsClient.Update: re-fetch the current
// server state, diff the updatable attributes plus the tag set and company
// reference, patch, re-fetch.
func (c *ProjectsClient) Update(ctx context.Context, project *albert.Project) (*albert.Project, error) {
	if project.ID == "" {
		return nil, albert.ErrEntityIDRequired
	}

	current, err := c.Get(ctx, project.ID)
	if err != nil {
		return nil, err
	}

	payload := albert.NewPatchBuilder().
		Scalar("name", albert.Value(current.Name), albert.Value(project.Name)).
		Scalar("description", albert.Value(current.Description), albert.Value(project.Description)).
		Scalar("category", albert.Value(string(current.Category)), albert.Value(string(project.Category))).
		Scalar("class", albert.Value(string(current.SecurityClass)), albert.Value(string(project.SecurityClass))).
		Reference("companyId", albert.CompanyLink(current.Company), albert.CompanyLink(project.Company)).
		ReferenceSet("tagId", albert.TagIDs(current.Tags), albert.TagIDs(project.Tags)).
		Payload()

	if !payload.Empty() {
		_, err = c.httpClient.Patch(ctx, projectsBasePath+"/"+project.ID, payload)
		if err != nil {
			return nil, fmt.Errorf("updating project: %w", err)
		}
	}

	return c.Get(ctx, project.ID)
}

// Delete implements albert.ProjectsClient.Delete.
func (c *ProjectsClient) Delete(ctx context.Context, id string) error {
	_, err := c.httpClient.Delete(ctx, projectsBasePath+"/"+id)
	if err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}

	return nil
}

// registerReferences creates any tag or company on the project that has no
// id yet, replacing it with the registered entity.
func (c *ProjectsClient) registerReferences(ctx context.Context, project *albert.Project) error {
	for i, tag := range project.Tags {
		if tag.ID != "" {
			continue
		}

		created, err := c.tags.Create(ctx, &tag)
		if err != nil {
			return fmt.Errorf("registering tag %q: %w", tag.Name, err)
		}

		project.Tags[i] = *created
	}

	if project.Company != nil && project.Company.ID == "" {
		created, err := c.companies.Create(ctx, project.Company)
		if err != nil {
			return fmt.Errorf("registering company %q: %w", project.Company.Name, err)
		}

		project.Company = created
	}

	return nil
}

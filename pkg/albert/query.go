package albert

import (
	"net/url"
	"strconv"
)

// QueryParams represents the common query options accepted by Albert list and
// search endpoints. Filters holds any endpoint-specific parameters not named
// here; multi-valued filters are sent as repeated keys.
type QueryParams struct {
	Limit      int
	Offset     int
	StartKey   string
	OrderBy    OrderBy
	Text       string
	Names      []string
	Categories []string
	ExactMatch *bool
	Filters    map[string][]string
}

// NewQueryParams creates an empty QueryParams.
func NewQueryParams() *QueryParams {
	return &QueryParams{
		Filters: make(map[string][]string),
	}
}

// WithLimit sets the page size.
func (q *QueryParams) WithLimit(limit int) *QueryParams {
	q.Limit = limit

	return q
}

// WithOrderBy sets the sort direction.
func (q *QueryParams) WithOrderBy(order OrderBy) *QueryParams {
	q.OrderBy = order

	return q
}

// WithText sets the free-text search filter.
func (q *QueryParams) WithText(text string) *QueryParams {
	q.Text = text

	return q
}

// WithName adds a name filter value.
func (q *QueryParams) WithName(name string) *QueryParams {
	q.Names = append(q.Names, name)

	return q
}

// WithCategory adds a category filter value.
func (q *QueryParams) WithCategory(category string) *QueryParams {
	q.Categories = append(q.Categories, category)

	return q
}

// WithExactMatch sets whether name filters require an exact match.
func (q *QueryParams) WithExactMatch(exact bool) *QueryParams {
	q.ExactMatch = &exact

	return q
}

// WithFilter adds an endpoint-specific filter value.
func (q *QueryParams) WithFilter(key, value string) *QueryParams {
	if q.Filters == nil {
		q.Filters = make(map[string][]string)
	}

	q.Filters[key] = append(q.Filters[key], value)

	return q
}

// ToValues converts the params to url.Values for the wire.
func (q *QueryParams) ToValues() url.Values {
	values := url.Values{}

	if q.Limit > 0 {
		values.Set("limit", strconv.Itoa(q.Limit))
	}

	if q.Offset > 0 {
		values.Set("offset", strconv.Itoa(q.Offset))
	}

	if q.StartKey != "" {
		values.Set("startKey", q.StartKey)
	}

	if q.OrderBy != "" {
		values.Set("orderBy", string(q.OrderBy))
	}

	if q.Text != "" {
		values.Set("text", q.Text)
	}

	for _, name := range q.Names {
		values.Add("name", name)
	}

	for _, category := range q.Categories {
		values.Add("category", category)
	}

	if q.ExactMatch != nil {
		values.Set("exactMatch", strconv.FormatBool(*q.ExactMatch))
	}

	for key, vals := range q.Filters {
		for _, val := range vals {
			values.Add(key, val)
		}
	}

	return values
}

// Clone returns a deep copy so a paginator can mutate cursor state without
// affecting the caller's params.
func (q *QueryParams) Clone() *QueryParams {
	if q == nil {
		return NewQueryParams()
	}

	clone := *q
	clone.Names = append([]string(nil), q.Names...)
	clone.Categories = append([]string(nil), q.Categories...)
	clone.Filters = make(map[string][]string, len(q.Filters))

	for key, vals := range q.Filters {
		clone.Filters[key] = append([]string(nil), vals...)
	}

	if q.ExactMatch != nil {
		exact := *q.ExactMatch
		clone.ExactMatch = &exact
	}

	return &clone
}

package albert

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"strconv"
)

// ErrNoMoreItems is returned by Next when the sequence is exhausted.
var ErrNoMoreItems = errors.New("no more items")

// DefaultPageSize is the page size used when the caller does not set one.
const DefaultPageSize = 50

// PaginationMode selects which of the two server pagination conventions a
// list endpoint uses.
type PaginationMode string

// Pagination modes.
const (
	// PaginateKey pages with an opaque "startKey" cursor read from the prior
	// response's "lastKey" field.
	PaginateKey PaginationMode = "key"
	// PaginateOffset pages with a numeric offset advanced by the item count
	// of each page.
	PaginateOffset PaginationMode = "offset"
)

// PageFetcher fetches one raw page of a list endpoint. Implemented by the
// transport-backed client; mocked in tests.
type PageFetcher interface {
	FetchPage(ctx context.Context, path string, query url.Values) (*Page, error)
}

// DeserializeFunc loads one raw list item into a resource. It may perform
// additional API calls (some list endpoints return partial records that need
// a per-id GET). Returning (nil, nil) skips the item.
type DeserializeFunc[T any] func(item json.RawMessage) (*T, error)

// Paginator is a lazy, forward-only iterator over a paginated list endpoint.
// It is cold: construction performs no I/O, and each Paginator iterates
// independently from the start. It is not safe for concurrent use and not
// restartable once consumed; call the collection's List again for a fresh
// iteration.
type Paginator[T any] struct {
	ctx         context.Context
	fetcher     PageFetcher
	path        string
	mode        PaginationMode
	base        url.Values
	limit       int
	deserialize DeserializeFunc[T]

	buffer   []*T
	startKey string
	offset   int
	done     bool
	err      error
}

// NewPaginator creates a Paginator over path using the given mode. The params
// are cloned, so the caller may reuse them.
func NewPaginator[T any](
	ctx context.Context,
	fetcher PageFetcher,
	mode PaginationMode,
	path string,
	params *QueryParams,
	deserialize DeserializeFunc[T],
) *Paginator[T] {
	params = params.Clone()

	limit := params.Limit
	if limit <= 0 {
		limit = DefaultPageSize
	}

	pager := &Paginator[T]{
		ctx:         ctx,
		fetcher:     fetcher,
		path:        path,
		mode:        mode,
		limit:       limit,
		deserialize: deserialize,
		startKey:    params.StartKey,
		offset:      params.Offset,
	}

	// Cursor fields live on the paginator, not in the base query.
	params.StartKey = ""
	params.Offset = 0
	params.Limit = limit
	pager.base = params.ToValues()

	return pager
}

// HasNext reports whether another item is available, fetching the next page
// if needed. A pending fetch error also counts as "next": it is surfaced by
// the following Next call.
func (p *Paginator[T]) HasNext() bool {
	if len(p.buffer) > 0 || p.err != nil {
		return true
	}

	if p.done {
		return false
	}

	p.fetchPage()

	return len(p.buffer) > 0 || p.err != nil
}

// Next returns the next item in the sequence. Transport errors propagate
// unmodified; items already returned remain valid. After exhaustion Next
// returns ErrNoMoreItems.
func (p *Paginator[T]) Next() (*T, error) {
	if p.err != nil {
		err := p.err
		p.err = nil

		return nil, err
	}

	for len(p.buffer) == 0 {
		if p.done {
			return nil, ErrNoMoreItems
		}

		p.fetchPage()

		if p.err != nil {
			err := p.err
			p.err = nil

			return nil, err
		}
	}

	item := p.buffer[0]
	p.buffer = p.buffer[1:]

	return item, nil
}

// All drains the remaining sequence into a slice.
func (p *Paginator[T]) All() ([]*T, error) {
	var items []*T

	for p.HasNext() {
		item, err := p.Next()
		if err != nil {
			return items, err
		}

		items = append(items, item)
	}

	return items, nil
}

// ForEach applies fn to each remaining item, stopping at the first error.
func (p *Paginator[T]) ForEach(fn func(item *T) error) error {
	for p.HasNext() {
		item, err := p.Next()
		if err != nil {
			return err
		}

		err = fn(item)
		if err != nil {
			return err
		}
	}

	return nil
}

// fetchPage issues one page request and refills the buffer, advancing the
// cursor state and termination flag per the pagination mode.
func (p *Paginator[T]) fetchPage() {
	query := url.Values{}
	for key, vals := range p.base {
		query[key] = vals
	}

	switch p.mode {
	case PaginateKey:
		if p.startKey != "" {
			query.Set("startKey", p.startKey)
		}
	case PaginateOffset:
		query.Set("offset", strconv.Itoa(p.offset))
	default:
		p.done = true
		p.err = ErrPaginationModeUnknown

		return
	}

	page, err := p.fetcher.FetchPage(p.ctx, p.path, query)
	if err != nil {
		p.err = err

		return
	}

	if len(page.Items) == 0 {
		p.done = true

		return
	}

	for _, raw := range page.Items {
		item, err := p.deserialize(raw)
		if err != nil {
			p.err = err

			return
		}

		if item != nil {
			p.buffer = append(p.buffer, item)
		}
	}

	switch p.mode {
	case PaginateKey:
		// Key mode ends when the server stops handing out a cursor.
		if page.LastKey == "" {
			p.done = true

			return
		}

		p.startKey = page.LastKey
	case PaginateOffset:
		// Offset mode has no end marker; a short page signals the last one.
		if len(page.Items) < p.limit {
			p.done = true

			return
		}

		// Prefer the server-reported offset when present; fall back to the
		// local cursor.
		if base, err := page.Offset.Int64(); err == nil {
			p.offset = int(base) + len(page.Items)
		} else {
			p.offset += len(page.Items)
		}
	}
}

package frontegg

import (
	"context"
)

// PaginationMetadata is the page-count metadata of a paginated response.
type PaginationMetadata struct {
	// TotalPages is the number of pages available at the requested page
	// size.
	TotalPages int `json:"totalPages" yaml:"totalPages"`
	// TotalItems is the number of items across all pages, when reported.
	TotalItems int `json:"totalItems,omitempty" yaml:"totalItems,omitempty"`
}

// Paginated is the envelope of a paginated listing response.
type Paginated[T any] struct {
	Items    []T                `json:"items" yaml:"items"`
	Metadata PaginationMetadata `json:"_metadata" yaml:"metadata"`
}

// PageLister fetches one page of a listing. page is the zero-based page
// index; pageSize is the number of items per page.
type PageLister[T any] interface {
	ListPage(ctx context.Context, page, pageSize int) (*Paginated[T], error)
}

// PageIterator lazily walks a paginated listing as a single ordered
// sequence. Items are yielded in server order; pages are fetched on demand
// with no prefetching, so abandoning the iterator simply stops issuing
// requests. An iterator is not restartable: create a new one to scan again
// from the first page.
//
// PageIterator is not safe for concurrent use.
type PageIterator[T any] struct {
	ctx      context.Context
	lister   PageLister[T]
	pageSize int

	page       int
	totalPages int
	fetched    bool
	done       bool
	buffer     []T
	err        error
}

// NewPageIterator creates an iterator over the listing served by lister.
func NewPageIterator[T any](ctx context.Context, lister PageLister[T], pageSize int) *PageIterator[T] {
	return &PageIterator[T]{
		ctx:      ctx,
		lister:   lister,
		pageSize: pageSize,
	}
}

// HasNext reports whether another item is available. It fetches the next
// page when the buffered one is exhausted; a fetch failure makes HasNext
// return true so that Next can surface the error.
func (it *PageIterator[T]) HasNext() bool {
	if it.err != nil {
		return true
	}

	if len(it.buffer) > 0 {
		return true
	}

	if it.done {
		return false
	}

	for len(it.buffer) == 0 {
		if it.fetched && it.page >= it.totalPages {
			return false
		}

		if !it.fetchPage() {
			return it.err != nil
		}
	}

	return true
}

// Next returns the next item in the sequence. It returns
// ErrIteratorExhausted once the listing is consumed, or the fetch error that
// terminated the scan.
func (it *PageIterator[T]) Next() (T, error) {
	var zero T

	if !it.HasNext() {
		return zero, ErrIteratorExhausted
	}

	if it.err != nil {
		err := it.err
		it.err = nil
		it.done = true

		return zero, err
	}

	item := it.buffer[0]
	it.buffer = it.buffer[1:]

	return item, nil
}

// All consumes the remainder of the iterator and returns the collected
// items.
func (it *PageIterator[T]) All() ([]T, error) {
	var items []T

	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	return items, nil
}

// fetchPage loads the next page into the buffer. It returns false when no
// further pages exist or the fetch failed; a failure is recorded in it.err.
func (it *PageIterator[T]) fetchPage() bool {
	res, err := it.lister.ListPage(it.ctx, it.page, it.pageSize)
	if err != nil {
		it.err = err

		return false
	}

	it.fetched = true
	it.totalPages = res.Metadata.TotalPages
	it.buffer = res.Items
	it.page++

	return it.page <= it.totalPages
}

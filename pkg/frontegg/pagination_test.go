package frontegg

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLister serves a fixed item slice in pages and counts requests.
type fakeLister struct {
	items []int
	calls int

	failOnPage int
	failErr    error
}

func (l *fakeLister) ListPage(ctx context.Context, page, pageSize int) (*Paginated[int], error) {
	l.calls++

	if l.failErr != nil && page == l.failOnPage {
		return nil, l.failErr
	}

	totalPages := (len(l.items) + pageSize - 1) / pageSize

	start := page * pageSize
	if start > len(l.items) {
		start = len(l.items)
	}

	end := start + pageSize
	if end > len(l.items) {
		end = len(l.items)
	}

	return &Paginated[int]{
		Items:    l.items[start:end],
		Metadata: PaginationMetadata{TotalPages: totalPages, TotalItems: len(l.items)},
	}, nil
}

func makeItems(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i
	}

	return items
}

func TestPageIterator_YieldsAllItemsInOrder(t *testing.T) {
	t.Parallel()

	const total = 17

	lister := &fakeLister{items: makeItems(total)}
	iter := NewPageIterator[int](context.Background(), lister, 5)

	var got []int
	for iter.HasNext() {
		item, err := iter.Next()
		require.NoError(t, err)
		got = append(got, item)
	}

	assert.Equal(t, makeItems(total), got)
}

func TestPageIterator_FetchCount(t *testing.T) {
	t.Parallel()

	const total = 20

	tests := []struct {
		name     string
		pageSize int
		expected int
	}{
		{"page size one", 1, 20},
		{"half the items", 10, 2},
		{"exactly the items", 20, 1},
		{"larger than the items", 30, 1},
		{"uneven split", 7, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lister := &fakeLister{items: makeItems(total)}
			iter := NewPageIterator[int](context.Background(), lister, tt.pageSize)

			items, err := iter.All()
			require.NoError(t, err)
			assert.Len(t, items, total)
			assert.Equal(t, tt.expected, lister.calls)
		})
	}
}

func TestPageIterator_EmptyListing(t *testing.T) {
	t.Parallel()

	lister := &fakeLister{}
	iter := NewPageIterator[int](context.Background(), lister, 10)

	assert.False(t, iter.HasNext())
	// Emptiness is only discoverable by asking the server once.
	assert.Equal(t, 1, lister.calls)

	_, err := iter.Next()
	assert.ErrorIs(t, err, ErrIteratorExhausted)
}

func TestPageIterator_LazyFetching(t *testing.T) {
	t.Parallel()

	lister := &fakeLister{items: makeItems(30)}
	iter := NewPageIterator[int](context.Background(), lister, 10)

	// Creation issues no requests.
	assert.Equal(t, 0, lister.calls)

	// Consuming the first page's worth of items needs exactly one request.
	for i := 0; i < 10; i++ {
		require.True(t, iter.HasNext())
		_, err := iter.Next()
		require.NoError(t, err)
	}
	assert.Equal(t, 1, lister.calls)

	// Abandoning the iterator here fetches nothing further.
}

func TestPageIterator_SurfacesFetchError(t *testing.T) {
	t.Parallel()

	fetchErr := errors.New("boom")
	lister := &fakeLister{
		items:      makeItems(25),
		failOnPage: 1,
		failErr:    fetchErr,
	}
	iter := NewPageIterator[int](context.Background(), lister, 10)

	// First page is fine.
	for i := 0; i < 10; i++ {
		require.True(t, iter.HasNext())
		_, err := iter.Next()
		require.NoError(t, err)
	}

	// The failed fetch surfaces through Next exactly once.
	require.True(t, iter.HasNext())
	_, err := iter.Next()
	assert.ErrorIs(t, err, fetchErr)

	// The iterator is finished; no further requests are issued.
	calls := lister.calls
	assert.False(t, iter.HasNext())
	_, err = iter.Next()
	assert.ErrorIs(t, err, ErrIteratorExhausted)
	assert.Equal(t, calls, lister.calls)
}

func TestPageIterator_All(t *testing.T) {
	t.Parallel()

	lister := &fakeLister{items: makeItems(12)}
	iter := NewPageIterator[int](context.Background(), lister, 5)

	items, err := iter.All()
	require.NoError(t, err)
	assert.Equal(t, makeItems(12), items)

	// A consumed iterator stays consumed.
	items, err = iter.All()
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestPageIterator_AllReturnsFetchError(t *testing.T) {
	t.Parallel()

	fetchErr := errors.New("listing users: HTTP 500")
	lister := &fakeLister{failOnPage: 0, failErr: fetchErr}
	iter := NewPageIterator[int](context.Background(), lister, 10)

	_, err := iter.All()
	assert.ErrorIs(t, err, fetchErr)
}

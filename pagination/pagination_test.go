package pagination_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"prompt-hub/pagination"
)

type item struct {
	name    string
	created time.Time
}

func createdAt(it item) time.Time { return it.created }

func makeItems(n int) []item {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	out := make([]item, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, item{
			name:    string(rune('a' + i%26)),
			created: base.Add(time.Duration(i) * time.Minute),
		})
	}
	return out
}

func TestPaginateScenario(t *testing.T) {
	// 25 items, pageSize 12: pages of 12/12/1, page 4 empty.
	items := makeItems(25)

	p1 := pagination.Paginate(items, 1, 12, createdAt)
	assert.Len(t, p1.Items, 12)
	assert.True(t, p1.HasMore)
	assert.Equal(t, int64(25), p1.Total)
	assert.Equal(t, 3, p1.TotalPages)

	p3 := pagination.Paginate(items, 3, 12, createdAt)
	assert.Len(t, p3.Items, 1)
	assert.False(t, p3.HasMore)

	p4 := pagination.Paginate(items, 4, 12, createdAt)
	assert.Empty(t, p4.Items)
	assert.False(t, p4.HasMore)
}

func TestPaginateSortsCreatedAtDescending(t *testing.T) {
	items := makeItems(5)
	p := pagination.Paginate(items, 1, 5, createdAt)

	for i := 1; i < len(p.Items); i++ {
		if p.Items[i].created.After(p.Items[i-1].created) {
			t.Fatalf("items not in descending order at %d", i)
		}
	}
	// newest first
	assert.Equal(t, items[4].created, p.Items[0].created)
}

func TestPaginateStableOnEqualTimestamps(t *testing.T) {
	ts := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	items := []item{{"first", ts}, {"second", ts}, {"third", ts}}

	p := pagination.Paginate(items, 1, 10, createdAt)
	assert.Equal(t, "first", p.Items[0].name)
	assert.Equal(t, "second", p.Items[1].name)
	assert.Equal(t, "third", p.Items[2].name)
}

func TestPaginateCoversAllItemsExactlyOnce(t *testing.T) {
	for _, total := range []int{0, 1, 11, 12, 13, 24, 25, 100} {
		items := makeItems(total)
		first := pagination.Paginate(items, 1, 12, createdAt)

		seen := 0
		for page := 1; page <= first.TotalPages; page++ {
			seen += len(pagination.Paginate(items, page, 12, createdAt).Items)
		}
		assert.Equal(t, total, seen, "total %d", total)
		assert.Equal(t, (total+11)/12, first.TotalPages, "total %d", total)
	}
}

func TestPaginateEdges(t *testing.T) {
	items := makeItems(3)

	empty := pagination.Paginate([]item{}, 1, 12, createdAt)
	assert.Equal(t, 0, empty.TotalPages)
	assert.Empty(t, empty.Items)
	assert.False(t, empty.HasMore)

	zero := pagination.Paginate(items, 0, 12, createdAt)
	assert.Empty(t, zero.Items)
	assert.False(t, zero.HasMore)

	negative := pagination.Paginate(items, -3, 12, createdAt)
	assert.Empty(t, negative.Items)
}

func TestPaginateDoesNotMutateInput(t *testing.T) {
	items := makeItems(10)
	// reverse so the input is not already in sort order
	for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
		items[i], items[j] = items[j], items[i]
	}
	snapshot := make([]item, len(items))
	copy(snapshot, items)

	a := pagination.Paginate(items, 1, 3, createdAt)
	b := pagination.Paginate(items, 1, 3, createdAt)

	assert.Equal(t, snapshot, items)
	assert.Equal(t, a, b)
}

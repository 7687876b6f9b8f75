package buckets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/buckets/pkg/types"
)

func fruitFixture(t *testing.T) *fixture {
	t.Helper()
	return newFixture(t, board(
		[][]types.ID{{"Apple", "Banana"}, {"Apricot"}},
		letters("Apple", "Banana", "Apricot"),
	))
}

func TestSetGlobalFilter(t *testing.T) {
	tests := []struct {
		name   string
		search string
		want   []types.IDPair
	}{
		{
			name:   "case-insensitive substring in bucket then item order",
			search: "ap",
			want:   []types.IDPair{{Bucket: "b0", Item: "Apple"}, {Bucket: "b1", Item: "Apricot"}},
		},
		{
			name:   "upper-case search",
			search: "AP",
			want:   []types.IDPair{{Bucket: "b0", Item: "Apple"}, {Bucket: "b1", Item: "Apricot"}},
		},
		{
			name:   "inner substring",
			search: "nan",
			want:   []types.IDPair{{Bucket: "b0", Item: "Banana"}},
		},
		{
			name:   "no matches",
			search: "kiwi",
			want:   []types.IDPair{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := fruitFixture(t)

			f.in.SetGlobalFilter(tt.search)

			s := f.in.GetState()
			assert.True(t, f.in.IsFiltering())
			assert.Equal(t, tt.search, s.GlobalFilter)
			assert.Equal(t, -1, s.FilterFocusIndex)
			assert.Equal(t, tt.want, s.FilterResults)
			assert.Equal(t, 1, f.changes)
		})
	}
}

func TestTitleMatcherLowersCase(t *testing.T) {
	tests := []struct {
		title string
		query string
		want  bool
	}{
		{title: "Straße", query: "STRAß", want: true},
		{title: "Straße", query: "ss", want: false},
		{title: "ÉCOLE", query: "éco", want: true},
		{title: "Banana", query: "", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.title+"/"+tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, newTitleMatcher(tt.query).matches(tt.title))
		})
	}
}

func TestSetGlobalFilterNoOps(t *testing.T) {
	f := fruitFixture(t)

	f.in.SetGlobalFilter("")
	assert.Zero(t, f.changes, "empty search while not filtering")
	assert.Empty(t, f.cleared)

	f.in.SetGlobalFilter("ap")
	f.in.SetGlobalFilter("ap")
	assert.Equal(t, 1, f.changes, "unchanged search skips recompute")
}

func TestClearFiltersRoundTrip(t *testing.T) {
	f := fruitFixture(t)
	f.in.SetGlobalFilter("ap")
	f.in.OnFilterEnter(types.KeyEvent{Key: types.KeyEnter})

	f.in.SetGlobalFilter("")

	s := f.in.GetState()
	assert.False(t, f.in.IsFiltering())
	assert.Equal(t, "", s.GlobalFilter)
	assert.Equal(t, -1, s.FilterFocusIndex)
	assert.NotNil(t, s.FilterResults)
	assert.Empty(t, s.FilterResults)
	assert.Equal(t, []string{""}, f.cleared, "external filter change notified")
}

func TestOnFilterEnterCycles(t *testing.T) {
	f := fruitFixture(t)
	f.in.SetGlobalFilter("a")
	n := len(f.in.GetState().FilterResults)
	require.Equal(t, 3, n)

	enter := types.KeyEvent{Key: types.KeyEnter}
	f.in.OnFilterEnter(enter)
	start := f.in.GetState().FilterFocusIndex
	assert.Equal(t, 0, start)

	var seen []int
	for range n {
		f.in.OnFilterEnter(enter)
		seen = append(seen, f.in.GetState().FilterFocusIndex)
	}
	assert.Equal(t, []int{1, 2, 0}, seen)
	assert.Equal(t, start, f.in.GetState().FilterFocusIndex)
	assert.Len(t, f.keys, n+1, "hook receives every event")
}

func TestOnFilterEnterIgnored(t *testing.T) {
	tests := []struct {
		name   string
		search string
		key    string
	}{
		{name: "not filtering", search: "", key: types.KeyEnter},
		{name: "other key", search: "ap", key: "a"},
		{name: "no results", search: "kiwi", key: types.KeyEnter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := fruitFixture(t)
			f.in.SetGlobalFilter(tt.search)
			before := f.changes

			f.in.OnFilterEnter(types.KeyEvent{Key: tt.key})

			assert.Equal(t, before, f.changes)
			assert.Equal(t, -1, f.in.GetState().FilterFocusIndex)
			assert.Equal(t, []types.KeyEvent{{Key: tt.key}}, f.keys)
		})
	}
}

func TestOnFilterEnterScrollsFocusIntoCenter(t *testing.T) {
	f := newFixture(t, board(
		[][]types.ID{{"x1", "x2", "x3", "x4", "x5"}},
		letters("x1", "x2", "x3", "x4", "x5"),
	))
	col, ok := f.doc.Lookup(types.CategoryBuckets, "b0")
	require.True(t, ok)
	col.SetViewport(2, 0)

	f.in.SetGlobalFilter("x")
	enter := types.KeyEvent{Key: types.KeyEnter}

	f.in.OnFilterEnter(enter)
	assert.Equal(t, 0.0, col.ScrollTop(), "first row cannot scroll above the top")

	for range 4 {
		f.in.OnFilterEnter(enter)
	}
	assert.Equal(t, 4, f.in.GetState().FilterFocusIndex)
	assert.Equal(t, 3.5, col.ScrollTop())
}

func TestOnFilterEnterWithoutElements(t *testing.T) {
	f := fruitFixture(t)
	f.in.opts.Elements = types.NopRegistry{}
	f.in.SetGlobalFilter("ap")

	f.in.OnFilterEnter(types.KeyEvent{Key: types.KeyEnter})

	assert.Equal(t, 0, f.in.GetState().FilterFocusIndex)
}

func TestProjectionFilterFlags(t *testing.T) {
	f := fruitFixture(t)
	f.in.SetGlobalFilter("ap")
	f.in.OnFilterEnter(types.KeyEvent{Key: types.KeyEnter})
	f.in.OnFilterEnter(types.KeyEvent{Key: types.KeyEnter})

	flags := map[types.ID][3]bool{}
	for _, b := range f.in.GetBuckets() {
		for _, it := range b.Items {
			flags[it.ID] = [3]bool{it.InGlobalFilter, it.InFilter, it.IsFilterFocus}
		}
	}

	assert.Equal(t, [3]bool{true, true, false}, flags["Apple"])
	assert.Equal(t, [3]bool{false, false, false}, flags["Banana"])
	assert.Equal(t, [3]bool{true, true, true}, flags["Apricot"])
}

func TestProjectionFocusIgnoresStaleResults(t *testing.T) {
	f := fruitFixture(t)
	f.in.SetGlobalFilter("ap")

	// Apple leaves bucket b0, so its result pair no longer matches.
	require.NoError(t, f.in.MoveItemToBucket(types.IndexPair{Bucket: 0, Item: 0}, 1, ""))

	for _, b := range f.in.GetBuckets() {
		for _, it := range b.Items {
			assert.False(t, it.IsFilterFocus, "item %q", it.ID)
		}
	}
}

package buckets

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mesh-intelligence/buckets/pkg/types"
)

// IsFiltering reports whether a global filter is active.
func (in *Instance) IsFiltering() bool {
	return len(in.state.GlobalFilter) > 0
}

// SetGlobalFilter sets the global filter text and recomputes the matches in
// bucket order, then item order. An empty search clears the filters; an
// unchanged search does nothing.
func (in *Instance) SetGlobalFilter(search string) {
	if search == "" {
		if in.IsFiltering() {
			in.ClearFilters()
		}
		return
	}
	if search == in.state.GlobalFilter {
		return
	}

	results := in.filterResults(search)
	in.logger.Debug("set global filter", "filter", search, "results", len(results))

	in.apply(func(prev types.State) types.State {
		prev.GlobalFilter = search
		prev.FilterFocusIndex = -1
		prev.FilterResults = results
		return prev
	})
}

// ClearFilters resets the filter state and notifies OnGlobalFilterChange.
func (in *Instance) ClearFilters() {
	in.apply(func(prev types.State) types.State {
		prev.GlobalFilter = ""
		prev.FilterFocusIndex = -1
		prev.FilterResults = []types.IDPair{}
		return prev
	})
	in.opts.OnGlobalFilterChange("")
}

// OnFilterEnter advances the filter focus to the next match, wrapping to the
// first, when an Enter key arrives while filtering. The focused item is then
// scrolled to the vertical center of its bucket when both elements resolve.
// The event is always forwarded to OnFilterEnter.
func (in *Instance) OnFilterEnter(event types.KeyEvent) {
	defer in.opts.OnFilterEnter(event)

	results := in.state.FilterResults
	if !in.IsFiltering() || event.Key != types.KeyEnter || len(results) == 0 {
		return
	}

	next := in.state.FilterFocusIndex + 1
	if next >= len(results) {
		next = 0
	}
	in.apply(func(prev types.State) types.State {
		prev.FilterFocusIndex = next
		return prev
	})

	in.scrollToResult(results[next])
}

// scrollToResult centers the item element within its bucket element.
func (in *Instance) scrollToResult(pair types.IDPair) {
	item := in.opts.Elements.GetElement(types.CategoryItems, pair.Item)
	if item == nil {
		return
	}
	bucket := in.opts.Elements.GetElement(types.CategoryBuckets, pair.Bucket)
	if bucket == nil {
		return
	}
	bucketBox := bucket.Rect()
	itemBox := item.Rect()
	bucket.SetScrollTop(item.OffsetTop() - bucket.OffsetTop() - bucketBox.Height/2 + itemBox.Height/2)
}

// filterResults scans every bucket row for items whose title contains search.
// Rows without a matching bucket are skipped.
func (in *Instance) filterResults(search string) []types.IDPair {
	match := newTitleMatcher(search)
	results := []types.IDPair{}
	for b, row := range in.state.Matrix {
		if b >= len(in.state.Buckets) {
			break
		}
		bucketID := in.state.Buckets[b].ID
		for _, id := range row {
			item, ok := in.GetItem(id)
			if !ok || !match.matches(item.Title) {
				continue
			}
			results = append(results, types.IDPair{Bucket: bucketID, Item: id})
		}
	}
	return results
}

// filterPosition returns the index of the pair in the filter results, or -1.
func (in *Instance) filterPosition(pair types.IDPair) int {
	for i, r := range in.state.FilterResults {
		if r == pair {
			return i
		}
	}
	return -1
}

// titleMatcher tests titles for a lower-cased substring.
type titleMatcher struct {
	lower cases.Caser
	query string
}

func newTitleMatcher(query string) titleMatcher {
	lower := cases.Lower(language.Und)
	return titleMatcher{lower: lower, query: lower.String(query)}
}

func (m titleMatcher) matches(title string) bool {
	return strings.Contains(m.lower.String(title), m.query)
}

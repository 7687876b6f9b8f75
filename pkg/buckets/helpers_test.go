package buckets

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/buckets/internal/dom"
	"github.com/mesh-intelligence/buckets/pkg/types"
)

// fixture bundles an instance with its element tree and observed callbacks.
type fixture struct {
	in      *Instance
	doc     *dom.Document
	logs    *bytes.Buffer
	changes int
	cleared []string
	keys    []types.KeyEvent
}

// newFixture builds an instance over the given board and mounts one column
// per bucket and one unit-height row per item.
func newFixture(t *testing.T, state types.InputState) *fixture {
	t.Helper()
	f := &fixture{doc: dom.NewDocument(), logs: &bytes.Buffer{}}
	in, err := New(types.Options{
		State:                state,
		Logger:               slog.New(slog.NewTextHandler(f.logs, &slog.HandlerOptions{Level: slog.LevelDebug})),
		Elements:             f.doc,
		OnStateChange:        func(types.Updater) { f.changes++ },
		OnFilterEnter:        func(ev types.KeyEvent) { f.keys = append(f.keys, ev) },
		OnGlobalFilterChange: func(s string) { f.cleared = append(f.cleared, s) },
	})
	require.NoError(t, err)
	f.in = in
	f.mount(t)
	return f
}

// mount renders the current projection into a fresh element tree.
func (f *fixture) mount(t *testing.T) {
	t.Helper()
	f.doc = dom.NewDocument()
	f.in.opts.Elements = f.doc
	for _, b := range f.in.GetBuckets() {
		col := f.doc.CreateElement(b.Title, 0)
		require.NoError(t, f.doc.Root().AppendChild(col))
		b.SetDomElement(col)
		for _, it := range b.Items {
			row := f.doc.CreateElement(it.Title, 1)
			require.NoError(t, col.AppendChild(row))
			it.SetDomElement(row)
		}
	}
}

// column returns the labels of the nodes under the bucket's element.
func (f *fixture) column(t *testing.T, bucket types.ID) []string {
	t.Helper()
	col, ok := f.doc.Lookup(types.CategoryBuckets, bucket)
	require.True(t, ok, "bucket %q not mounted", bucket)
	out := []string{}
	for _, c := range col.Children() {
		out = append(out, c.Label())
	}
	return out
}

// node returns the element registered for an item.
func (f *fixture) node(t *testing.T, item types.ID) *dom.Node {
	t.Helper()
	n, ok := f.doc.Lookup(types.CategoryItems, item)
	require.True(t, ok, "item %q not mounted", item)
	return n
}

// letters builds items whose id and title are the given strings.
func letters(ids ...string) []types.Item {
	items := make([]types.Item, 0, len(ids))
	for _, id := range ids {
		items = append(items, types.Item{Title: id, Value: id})
	}
	return items
}

// board builds an input state with buckets named b0..bn.
func board(matrix [][]types.ID, items []types.Item) types.InputState {
	buckets := make([]types.Bucket, len(matrix))
	for i := range matrix {
		buckets[i] = types.Bucket{ID: types.ID("b" + string(rune('0'+i)))}
	}
	return types.InputState{Matrix: matrix, Buckets: buckets, Items: items}
}

// idCount returns how many times each id appears across all rows.
func idCount(matrix [][]types.ID) map[types.ID]int {
	out := make(map[types.ID]int)
	for _, row := range matrix {
		for _, id := range row {
			out[id]++
		}
	}
	return out
}

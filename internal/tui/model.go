// Package tui binds a sortable buckets instance to the terminal. Buckets are
// rendered as columns; items are moved with the keyboard, either one bucket
// at a time or through a keyboard-driven drag gesture, and searched with the
// global filter.
package tui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mesh-intelligence/buckets/internal/dom"
	"github.com/mesh-intelligence/buckets/pkg/buckets"
	"github.com/mesh-intelligence/buckets/pkg/types"
)

// ErrRegistryMismatch is returned by New when the instance does not resolve
// its elements through the given document.
var ErrRegistryMismatch = errors.New("instance elements are not backed by the document")

type mode int

const (
	modeBrowse mode = iota
	modeFilter
	modeDrag
)

const (
	defaultWidth  = 100
	defaultHeight = 24

	// chromeLines is the height taken by column borders, the column header
	// and the status line.
	chromeLines = 4
)

// Model is the bubbletea model of the board.
type Model struct {
	in  *buckets.Instance
	doc *dom.Document

	mode   mode
	bucket int // cursor bucket
	row    int // cursor position within the bucket's items
	query  string

	width  int
	height int

	status    string
	statusErr bool
}

// New returns a model over in. The instance must have been created with doc
// as its element registry.
func New(in *buckets.Instance, doc *dom.Document) (Model, error) {
	if in.Options().Elements != types.ElementRegistry(doc) {
		return Model{}, ErrRegistryMismatch
	}
	m := Model{
		in:     in,
		doc:    doc,
		width:  defaultWidth,
		height: defaultHeight,
	}
	if err := m.mount(); err != nil {
		return Model{}, err
	}
	return m, nil
}

// Run starts an interactive program over in and blocks until it quits.
func Run(in *buckets.Instance, doc *dom.Document, opts ...tea.ProgramOption) error {
	m, err := New(in, doc)
	if err != nil {
		return err
	}
	if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
		return fmt.Errorf("run board: %w", err)
	}
	return nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// visibleRows is the number of item lines shown per column.
func (m *Model) visibleRows() int {
	return max(m.height-chromeLines, 1)
}

// mount rebuilds the element tree from the current projection. Column scroll
// offsets survive the rebuild.
func (m *Model) mount() error {
	projection := m.in.GetBuckets()

	scroll := make(map[types.ID]float64, len(projection))
	for _, b := range projection {
		if n, ok := m.doc.Lookup(types.CategoryBuckets, b.ID); ok {
			scroll[b.ID] = n.ScrollTop()
		}
	}

	m.doc.Reset()
	for _, b := range projection {
		col := m.doc.CreateElement(b.ID.String(), 0)
		col.SetViewport(float64(m.visibleRows()+1), 1)
		col.SetScrollTop(scroll[b.ID])
		if err := m.doc.Root().AppendChild(col); err != nil {
			return fmt.Errorf("mount bucket %q: %w", b.ID, err)
		}
		b.SetDomElement(col)

		for _, it := range b.Items {
			row := m.doc.CreateElement(it.ID.String(), 1)
			if err := col.AppendChild(row); err != nil {
				return fmt.Errorf("mount item %q: %w", it.ID, err)
			}
			it.SetDomElement(row)
		}
	}
	return nil
}

// selected returns the item under the cursor.
func (m *Model) selected() (buckets.ItemElement, bool) {
	projection := m.in.GetBuckets()
	if m.bucket < 0 || m.bucket >= len(projection) {
		return buckets.ItemElement{}, false
	}
	items := projection[m.bucket].Items
	if m.row < 0 || m.row >= len(items) {
		return buckets.ItemElement{}, false
	}
	return items[m.row], true
}

// selectedID returns the id of the highlighted item: the dragged item while
// dragging, otherwise the item under the cursor.
func (m *Model) selectedID() (types.ID, bool) {
	if d := m.in.GetState().Dragging; d != nil {
		return d.Item.ID, true
	}
	it, ok := m.selected()
	return it.ID, ok
}

// clampCursor keeps the cursor within the board.
func (m *Model) clampCursor() {
	projection := m.in.GetBuckets()
	if len(projection) == 0 {
		m.bucket, m.row = 0, 0
		return
	}
	m.bucket = min(max(m.bucket, 0), len(projection)-1)
	m.row = min(max(m.row, 0), max(len(projection[m.bucket].Items)-1, 0))
}

// focusItem puts the cursor on the item with id.
func (m *Model) focusItem(id types.ID) {
	for _, b := range m.in.GetBuckets() {
		for r, it := range b.Items {
			if it.ID == id {
				m.bucket, m.row = b.Index, r
				m.ensureVisible()
				return
			}
		}
	}
}

// ensureVisible scrolls the cursor column so the cursor row is shown.
func (m *Model) ensureVisible() {
	projection := m.in.GetBuckets()
	if m.bucket >= len(projection) {
		return
	}
	col, ok := m.doc.Lookup(types.CategoryBuckets, projection[m.bucket].ID)
	if !ok {
		return
	}
	first := int(col.ScrollTop())
	switch rows := m.visibleRows(); {
	case m.row < first:
		first = m.row
	case m.row >= first+rows:
		first = m.row - rows + 1
	default:
		return
	}
	col.SetScrollTop(float64(first))
}

// domPosition returns the column and row of the element of id in the tree.
func (m *Model) domPosition(id types.ID) (int, int, bool) {
	node, ok := m.doc.Lookup(types.CategoryItems, id)
	if !ok {
		return 0, 0, false
	}
	for c, col := range m.doc.Root().Children() {
		for r, child := range col.Children() {
			if child == node {
				return c, r, true
			}
		}
	}
	return 0, 0, false
}

func (m *Model) setStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) setError(err error) {
	m.status = err.Error()
	m.statusErr = true
}

package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mesh-intelligence/buckets/pkg/types"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.mode != modeDrag {
			if err := m.mount(); err != nil {
				m.setError(err)
			}
			m.ensureVisible()
		}
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.mode {
		case modeFilter:
			return m.updateFilter(msg)
		case modeDrag:
			return m.updateDrag(msg)
		default:
			return m.updateBrowse(msg)
		}
	}
	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "left", "h":
		m.bucket--
		m.clampCursor()
		m.ensureVisible()
	case "right", "l":
		m.bucket++
		m.clampCursor()
		m.ensureVisible()
	case "up", "k":
		m.row--
		m.clampCursor()
		m.ensureVisible()
	case "down", "j":
		m.row++
		m.clampCursor()
		m.ensureVisible()
	case "<", "shift+left", "H":
		m.moveSelected(-1)
	case ">", "shift+right", "L":
		m.moveSelected(1)
	case " ", "space":
		m.startDrag()
	case "/":
		m.mode = modeFilter
		m.query = m.in.GetState().GlobalFilter
		m.setStatus("")
	case "n":
		m.nextMatch()
	case "esc":
		if m.in.IsFiltering() {
			m.in.ClearFilters()
			m.setStatus("filter cleared")
		}
	case "r":
		m.in.Reset()
		if err := m.mount(); err != nil {
			m.setError(err)
			break
		}
		m.clampCursor()
		m.setStatus("board reset")
	}
	return m, nil
}

// moveSelected moves the item under the cursor by adjust buckets.
func (m *Model) moveSelected(adjust int) {
	it, ok := m.selected()
	if !ok {
		return
	}
	b := m.in.GetBuckets()[it.BucketIndex]
	if (adjust < 0 && !b.ShowMoveLeft) || (adjust > 0 && !b.ShowMoveRight) {
		return
	}
	if err := it.MoveItemToBucket(adjust); err != nil {
		m.setError(err)
		return
	}
	if err := m.mount(); err != nil {
		m.setError(err)
		return
	}
	m.focusItem(it.ID)
	m.setStatus("")
}

func (m *Model) startDrag() {
	it, ok := m.selected()
	if !ok {
		return
	}
	if err := it.OnDragStart(); err != nil {
		m.setError(err)
		return
	}
	m.mode = modeDrag
	m.setStatus(fmt.Sprintf("dragging %s", label(it.Item)))
}

func (m Model) updateDrag(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	d := m.in.GetState().Dragging
	if d == nil {
		m.mode = modeBrowse
		return m, nil
	}
	switch msg.String() {
	case "up", "k":
		m.dragVertical(d.Item.ID, -1)
	case "down", "j":
		m.dragVertical(d.Item.ID, 1)
	case "left", "h":
		m.dragAcross(d.Item.ID, -1)
	case "right", "l":
		m.dragAcross(d.Item.ID, 1)
	case " ", "space", "enter":
		m.in.EndDrag()
		m.finishDrag(d.Item.ID)
		m.setStatus(fmt.Sprintf("dropped %s", label(d.Item)))
	case "esc":
		m.in.CancelDrag()
		m.finishDrag(d.Item.ID)
		m.setStatus("drag cancelled")
	}
	return m, nil
}

// dragVertical points past the neighbour of the dragged element in direction
// dir (-1 up, 1 down) within its current column.
func (m *Model) dragVertical(id types.ID, dir int) {
	c, r, ok := m.domPosition(id)
	if !ok {
		return
	}
	siblings := m.doc.Root().Children()[c].Children()
	target := r + dir
	if target < 0 || target >= len(siblings) {
		return
	}

	// Above the previous element's top, or below the next element's bottom.
	box := siblings[target].Rect()
	y := box.Top
	if dir > 0 {
		y = box.Top + box.Height
	}
	m.dragOver(c, y)
}

// dragAcross points at the dragged element's height in the neighbouring
// column in direction dir.
func (m *Model) dragAcross(id types.ID, dir int) {
	node, ok := m.doc.Lookup(types.CategoryItems, id)
	if !ok {
		return
	}
	c, _, ok := m.domPosition(id)
	if !ok {
		return
	}
	target := c + dir
	if target < 0 || target >= len(m.doc.Root().Children()) {
		return
	}
	m.dragOver(target, node.Rect().Top)
}

// dragOver sends a drag-over signal for the bucket at index and moves the
// cursor after the dragged element.
func (m *Model) dragOver(index int, y float64) {
	projection := m.in.GetBuckets()
	if index < 0 || index >= len(projection) {
		return
	}
	if err := projection[index].OnDragOver(types.DragEvent{ClientY: y}); err != nil {
		m.setError(err)
		return
	}
	if d := m.in.GetState().Dragging; d != nil {
		if c, r, ok := m.domPosition(d.Item.ID); ok {
			m.bucket, m.row = c, r
		}
	}
}

// finishDrag rebuilds the tree from the committed state and follows id.
func (m *Model) finishDrag(id types.ID) {
	m.mode = modeBrowse
	if err := m.mount(); err != nil {
		m.setError(err)
		return
	}
	m.focusItem(id)
}

func (m Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = modeBrowse
		m.query = ""
		m.in.ClearFilters()
		m.setStatus("filter cleared")
	case tea.KeyTab:
		m.mode = modeBrowse
	case tea.KeyEnter:
		m.in.OnFilterEnter(types.KeyEvent{Key: types.KeyEnter})
		m.followFocus()
	case tea.KeyBackspace:
		if m.query != "" {
			r := []rune(m.query)
			m.query = string(r[:len(r)-1])
			m.in.SetGlobalFilter(m.query)
		}
	case tea.KeySpace:
		m.query += " "
		m.in.SetGlobalFilter(m.query)
	case tea.KeyRunes:
		m.query += string(msg.Runes)
		m.in.SetGlobalFilter(m.query)
	}
	return m, nil
}

// nextMatch advances the filter focus from browse mode.
func (m *Model) nextMatch() {
	if !m.in.IsFiltering() {
		return
	}
	m.in.OnFilterEnter(types.KeyEvent{Key: types.KeyEnter})
	m.followFocus()
}

// followFocus puts the cursor on the focused filter match. The instance has
// already scrolled its column.
func (m *Model) followFocus() {
	state := m.in.GetState()
	i := state.FilterFocusIndex
	if i < 0 || i >= len(state.FilterResults) {
		return
	}
	id := state.FilterResults[i].Item
	for _, b := range m.in.GetBuckets() {
		for r, it := range b.Items {
			if it.ID == id {
				m.bucket, m.row = b.Index, r
				return
			}
		}
	}
}

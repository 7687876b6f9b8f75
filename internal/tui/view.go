package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mesh-intelligence/buckets/internal/dom"
	"github.com/mesh-intelligence/buckets/pkg/buckets"
	"github.com/mesh-intelligence/buckets/pkg/types"
)

// label returns the text shown for an item: its title, else its id.
func label(it types.Item) string {
	if it.Title != "" {
		return it.Title
	}
	return it.ID.String()
}

// View implements tea.Model. Columns are drawn from the element tree so an
// uncommitted drag shows the dragged item where it currently hovers.
func (m Model) View() string {
	projection := m.in.GetBuckets()
	items := make(map[types.ID]buckets.ItemElement)
	for _, b := range projection {
		for _, it := range b.Items {
			items[it.ID] = it
		}
	}

	selected, hasSelected := m.selectedID()
	width := m.columnWidth(len(projection))

	cols := make([]string, 0, len(projection))
	for c, col := range m.doc.Root().Children() {
		if c >= len(projection) {
			break
		}
		cursor := types.ID("")
		if hasSelected && c == m.bucket {
			cursor = selected
		}
		cols = append(cols, m.renderColumn(projection[c], col, items, cursor, width))
	}

	board := lipgloss.JoinHorizontal(lipgloss.Top, cols...)
	return board + "\n" + m.renderStatus()
}

// columnWidth divides the terminal width between the columns.
func (m *Model) columnWidth(n int) int {
	if n == 0 {
		return m.width
	}
	// Border and padding take four cells per column.
	return max(m.width/n-4, 12)
}

func (m *Model) renderColumn(b buckets.BucketElement, col *dom.Node, items map[types.ID]buckets.ItemElement, cursor types.ID, width int) string {
	children := col.Children()
	rows := m.visibleRows()
	inner := max(width-2, 1) // horizontal padding

	first := int(col.ScrollTop())
	first = min(first, max(len(children)-rows, 0))

	lines := make([]string, 0, rows+1)
	lines = append(lines, headerStyle.Render(truncate(fmt.Sprintf("%s (%d)", b.Title, len(children)), inner)))
	if len(children) == 0 {
		lines = append(lines, emptyStyle.Render("(empty)"))
	}
	for _, child := range children[first:min(first+rows, len(children))] {
		it, ok := items[types.ID(child.Label())]
		if !ok {
			continue
		}
		lines = append(lines, renderItem(it, it.ID == cursor, inner))
	}

	style := columnStyle
	if b.Index == m.bucket {
		style = activeColumnStyle
	}
	return style.Width(width).Height(rows + 1).Render(strings.Join(lines, "\n"))
}

func renderItem(it buckets.ItemElement, cursor bool, width int) string {
	prefix := "  "
	if cursor {
		prefix = "› "
	}
	text := truncate(prefix+label(it.Item), width)

	switch {
	case it.IsDragging():
		return draggingStyle.Render(text)
	case cursor:
		return cursorStyle.Render(text)
	case it.IsFilterFocus:
		return focusStyle.Render(text)
	case it.InGlobalFilter:
		return matchStyle.Render(text)
	default:
		return itemStyle.Render(text)
	}
}

func (m *Model) renderStatus() string {
	var line string
	switch m.mode {
	case modeFilter:
		state := m.in.GetState()
		line = fmt.Sprintf("/%s  %d matches  enter next · tab keep · esc clear", m.query, len(state.FilterResults))
	case modeDrag:
		line = "↑/↓ reorder · ←/→ bucket · space drop · esc cancel"
	default:
		line = "←/→ bucket · ↑/↓ item · </> move · space drag · / filter · n next · r reset · q quit"
	}
	if m.status != "" {
		if m.statusErr {
			return errorStyle.Render(m.status) + "  " + statusStyle.Render(line)
		}
		line = m.status + "  " + line
	}
	return statusStyle.Render(line)
}

// truncate shortens s to width cells.
func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && lipgloss.Width(string(r))+1 > width {
		r = r[:len(r)-1]
	}
	return string(r) + "…"
}

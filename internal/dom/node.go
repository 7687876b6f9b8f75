package dom

import (
	"slices"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/buckets/pkg/types"
)

// Node is an element of a Document. Children are stacked vertically unless
// the node lays them out horizontally.
type Node struct {
	handle uuid.UUID
	label  string

	// height is the own height of a leaf, or the viewport height of a
	// container when fixed is set.
	height     float64
	fixed      bool
	header     float64
	horizontal bool
	scrollTop  float64

	parent   *Node
	children []*Node
}

var _ types.Element = (*Node)(nil)

// Handle returns the unique handle of the node.
func (n *Node) Handle() uuid.UUID { return n.handle }

// Label returns the text the node was created with.
func (n *Node) Label() string { return n.label }

// Children returns the child nodes in order.
func (n *Node) Children() []*Node { return slices.Clone(n.children) }

// SetViewport fixes the visible height of the node; content beyond it is
// reached by scrolling. Header is the space reserved above the first child.
func (n *Node) SetViewport(height, header float64) {
	n.height = height
	n.header = header
	n.fixed = true
}

// ScrollTop returns the scroll offset of the node's content.
func (n *Node) ScrollTop() float64 { return n.scrollTop }

// SetScrollTop scrolls the content. Negative offsets clamp to zero.
func (n *Node) SetScrollTop(offset float64) {
	n.scrollTop = max(offset, 0)
}

// Height returns the laid-out height of the node.
func (n *Node) Height() float64 {
	if n.fixed || len(n.children) == 0 {
		return n.height
	}
	var h float64
	for _, c := range n.children {
		if n.horizontal {
			h = max(h, c.Height())
		} else {
			h += c.Height()
		}
	}
	return n.header + h
}

// OffsetTop returns the layout position of the node within the document.
func (n *Node) OffsetTop() float64 {
	p := n.parent
	if p == nil {
		return 0
	}
	top := p.OffsetTop() + p.header
	if p.horizontal {
		return top
	}
	for _, c := range p.children {
		if c == n {
			break
		}
		top += c.Height()
	}
	return top
}

// Rect returns the bounding box of the node with ancestor scrolling applied.
func (n *Node) Rect() types.Rect {
	top := n.OffsetTop()
	for p := n.parent; p != nil; p = p.parent {
		top -= p.scrollTop
	}
	return types.Rect{Top: top, Height: n.Height()}
}

// Parent returns the containing node.
func (n *Node) Parent() types.Element {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

// NextSibling returns the node that follows this one.
func (n *Node) NextSibling() types.Element {
	if n.parent == nil {
		return nil
	}
	i := n.parent.indexOf(n)
	if i < 0 || i+1 >= len(n.parent.children) {
		return nil
	}
	return n.parent.children[i+1]
}

// Contains reports whether other is n or a descendant of n.
func (n *Node) Contains(other types.Element) bool {
	o, ok := other.(*Node)
	if !ok || o == nil {
		return false
	}
	for ; o != nil; o = o.parent {
		if o == n {
			return true
		}
	}
	return false
}

// AppendChild moves child to the end of n.
func (n *Node) AppendChild(child types.Element) error {
	return n.InsertBefore(child, nil)
}

// InsertBefore moves child in front of ref. A nil ref appends.
func (n *Node) InsertBefore(child, ref types.Element) error {
	c, ok := child.(*Node)
	if !ok || c == nil {
		return ErrForeignElement
	}
	if c.Contains(n) {
		return ErrHierarchy
	}

	var r *Node
	if ref != nil {
		r, ok = ref.(*Node)
		if !ok {
			return ErrForeignElement
		}
	}
	if r != nil && r.parent != n {
		return ErrNotChild
	}
	if r == c {
		return nil
	}

	c.detach()
	if r == nil {
		n.children = append(n.children, c)
	} else {
		n.children = slices.Insert(n.children, n.indexOf(r), c)
	}
	c.parent = n
	return nil
}

// Remove detaches the node from its parent.
func (n *Node) Remove() { n.detach() }

func (n *Node) detach() {
	if n.parent == nil {
		return
	}
	p := n.parent
	if i := p.indexOf(n); i >= 0 {
		p.children = slices.Delete(p.children, i, i+1)
	}
	n.parent = nil
}

func (n *Node) indexOf(child *Node) int {
	return slices.Index(n.children, child)
}

// Package dom provides an in-memory element tree with a simple vertical box
// layout. It implements the element capability the sortable buckets engine
// drives during drag gestures and filter scrolling, and serves as the element
// registry of the terminal binding.
package dom

import (
	"errors"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/buckets/pkg/types"
)

// Tree mutation errors.
var (
	ErrForeignElement = errors.New("element does not belong to this tree")
	ErrNotChild       = errors.New("reference element is not a child")
	ErrHierarchy      = errors.New("element cannot contain its own ancestor")
)

type registryKey struct {
	category types.ElementCategory
	id       types.ID
}

// Document owns a tree of nodes and the registry that maps bucket and item
// ids to them.
type Document struct {
	root     *Node
	elements map[registryKey]*Node
}

// NewDocument returns a document whose root lays its children out side by
// side.
func NewDocument() *Document {
	d := &Document{elements: make(map[registryKey]*Node)}
	d.root = d.CreateElement("root", 0)
	d.root.horizontal = true
	return d
}

// Root returns the top-level node.
func (d *Document) Root() *Node { return d.root }

// CreateElement returns a detached node with the given label and height.
func (d *Document) CreateElement(label string, height float64) *Node {
	return &Node{
		handle: generateHandle(),
		label:  label,
		height: height,
	}
}

// GetElement returns the node registered for id, or nil.
func (d *Document) GetElement(category types.ElementCategory, id types.ID) types.Element {
	n, ok := d.elements[registryKey{category, id}]
	if !ok {
		return nil
	}
	return n
}

// SetElement registers el for id. A nil element, or one that is not a node
// of a document, removes the registration.
func (d *Document) SetElement(category types.ElementCategory, id types.ID, el types.Element) {
	key := registryKey{category, id}
	n, ok := el.(*Node)
	if !ok || n == nil {
		delete(d.elements, key)
		return
	}
	d.elements[key] = n
}

// Reset detaches every child of the root and drops all registrations.
func (d *Document) Reset() {
	for _, c := range d.root.Children() {
		c.Remove()
	}
	clear(d.elements)
}

// Lookup returns the node registered for id.
func (d *Document) Lookup(category types.ElementCategory, id types.ID) (*Node, bool) {
	n, ok := d.elements[registryKey{category, id}]
	return n, ok
}

// generateHandle returns a UUID v7 handle, falling back to v4.
func generateHandle() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}
	return id
}

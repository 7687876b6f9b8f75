package types

// ElementCategory selects the namespace an element is registered under.
type ElementCategory string

// Element categories.
const (
	CategoryBuckets ElementCategory = "buckets"
	CategoryItems   ElementCategory = "items"
)

// Rect is the vertical extent of an element in viewport coordinates.
type Rect struct {
	Top    float64
	Height float64
}

// Element is a live view-layer handle for a rendered bucket or item. The
// engine only queries and repositions elements; it never creates them.
type Element interface {
	// Parent returns the containing element, or nil when detached.
	Parent() Element
	// NextSibling returns the element that follows this one, or nil.
	NextSibling() Element
	// Contains reports whether other is this element or one of its descendants.
	Contains(other Element) bool
	// Rect returns the current bounding box, adjusted for scrolling.
	Rect() Rect
	// OffsetTop returns the layout position, unaffected by scrolling.
	OffsetTop() float64
	// AppendChild moves child to the end of this element.
	AppendChild(child Element) error
	// InsertBefore moves child in front of ref. A nil ref appends.
	InsertBefore(child, ref Element) error
	// SetScrollTop scrolls the element's content.
	SetScrollTop(offset float64)
}

// ElementRegistry is the element lookup capability owned by the view layer.
// GetElement returns nil when no element is registered for the id.
// SetElement with a nil element removes the registration.
type ElementRegistry interface {
	GetElement(category ElementCategory, id ID) Element
	SetElement(category ElementCategory, id ID, element Element)
}

// NopRegistry resolves nothing and discards registrations.
type NopRegistry struct{}

// GetElement always returns nil.
func (NopRegistry) GetElement(ElementCategory, ID) Element { return nil }

// SetElement does nothing.
func (NopRegistry) SetElement(ElementCategory, ID, Element) {}

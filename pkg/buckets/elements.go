package buckets

import "github.com/mesh-intelligence/buckets/pkg/types"

// BucketElement is the render projection of a bucket.
type BucketElement struct {
	types.Bucket
	Index         int
	ShowMoveLeft  bool
	ShowMoveRight bool
	Items         []ItemElement

	in *Instance
}

// OnDragOver forwards a drag-over signal targeting this bucket.
func (b BucketElement) OnDragOver(event types.DragEvent) error {
	return b.in.DragOver(b.Index, b.ID, event)
}

// GetDomElement returns the registered element of this bucket, or nil.
func (b BucketElement) GetDomElement() types.Element {
	return b.in.opts.Elements.GetElement(types.CategoryBuckets, b.ID)
}

// SetDomElement registers the element of this bucket. Nil unregisters it.
func (b BucketElement) SetDomElement(el types.Element) {
	b.in.opts.Elements.SetElement(types.CategoryBuckets, b.ID, el)
}

// ItemElement is the render projection of an item within its bucket.
type ItemElement struct {
	types.Item
	Index       int
	BucketIndex int

	InFilter       bool
	InGlobalFilter bool
	IsFilterFocus  bool

	in *Instance
}

// IndexPair returns the position of the item in the matrix.
func (i ItemElement) IndexPair() types.IndexPair {
	return types.IndexPair{Bucket: i.BucketIndex, Item: i.Index}
}

// IsDragging reports whether this item is the one being dragged.
func (i ItemElement) IsDragging() bool {
	d := i.in.state.Dragging
	return d != nil && d.Item.ID == i.ID
}

// OnDragStart begins dragging this item.
func (i ItemElement) OnDragStart() error {
	return i.in.StartDrag(i.Item, i.IndexPair())
}

// OnDragEnd finishes the current drag gesture.
func (i ItemElement) OnDragEnd() {
	i.in.EndDrag()
}

// MoveItemToBucket moves this item by adjust buckets.
func (i ItemElement) MoveItemToBucket(adjust int) error {
	return i.in.MoveItemToBucket(i.IndexPair(), adjust, i.ID)
}

// MoveItemToLeftBucket moves this item one bucket to the left.
func (i ItemElement) MoveItemToLeftBucket() error { return i.MoveItemToBucket(-1) }

// MoveItemToRightBucket moves this item one bucket to the right.
func (i ItemElement) MoveItemToRightBucket() error { return i.MoveItemToBucket(1) }

// GetDomElement returns the registered element of this item, or nil.
func (i ItemElement) GetDomElement() types.Element {
	return i.in.opts.Elements.GetElement(types.CategoryItems, i.ID)
}

// SetDomElement registers the element of this item. Nil unregisters it.
func (i ItemElement) SetDomElement(el types.Element) {
	i.in.opts.Elements.SetElement(types.CategoryItems, i.ID, el)
}

// GetBuckets projects the current state into render-ready bucket elements.
// The projection is rebuilt on every call. Matrix ids without a matching item
// are skipped but keep their row position as Index.
func (in *Instance) GetBuckets() []BucketElement {
	last := len(in.state.Buckets) - 1
	filtering := in.IsFiltering()
	match := newTitleMatcher(in.state.GlobalFilter)

	out := make([]BucketElement, 0, len(in.state.Buckets))
	for b, bucket := range in.state.Buckets {
		var row []types.ID
		if b < len(in.state.Matrix) {
			row = in.state.Matrix[b]
		}

		items := make([]ItemElement, 0, len(row))
		for v, id := range row {
			item, ok := in.GetItem(id)
			if !ok {
				continue
			}
			inGlobal := filtering && match.matches(item.Title)
			focus := false
			if inGlobal {
				pos := in.filterPosition(types.IDPair{Bucket: bucket.ID, Item: id})
				focus = pos >= 0 && pos == in.state.FilterFocusIndex
			}
			items = append(items, ItemElement{
				Item:           item,
				Index:          v,
				BucketIndex:    b,
				InFilter:       inGlobal,
				InGlobalFilter: inGlobal,
				IsFilterFocus:  focus,
				in:             in,
			})
		}

		out = append(out, BucketElement{
			Bucket:        bucket,
			Index:         b,
			ShowMoveLeft:  b > 0,
			ShowMoveRight: b < last,
			Items:         items,
			in:            in,
		})
	}
	return out
}

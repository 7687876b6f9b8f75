package buckets

import (
	"fmt"
	"math"
	"slices"

	"github.com/mesh-intelligence/buckets/pkg/types"
)

// interimDrag is the uncommitted working state of a drag gesture.
type interimDrag struct {
	item types.Item
	pair types.IndexPair

	// matrix is the working copy; it becomes the state on commit.
	matrix [][]types.ID

	// parent and next anchor the dragged element so it can be put back
	// where it was before the gesture moved it.
	parent types.Element
	next   types.Element
}

// IsDragging reports whether a drag gesture is in flight.
func (in *Instance) IsDragging() bool { return in.interim != nil }

// StartDrag begins a drag gesture for item located at pair. The item's
// element must be registered; its position is recorded so the gesture can be
// undone visually. The state is updated to mark the item as dragging.
func (in *Instance) StartDrag(item types.Item, pair types.IndexPair) error {
	if in.interim != nil {
		return fmt.Errorf("start drag %q while %q is dragging: %w",
			item.ID, in.interim.item.ID, types.ErrDragInProgress)
	}
	el := in.opts.Elements.GetElement(types.CategoryItems, item.ID)
	if el == nil {
		return fmt.Errorf("start drag %q: %w", item.ID, types.ErrDomElementMissing)
	}

	in.interim = &interimDrag{
		item:   item,
		pair:   pair,
		matrix: types.CloneMatrix(in.state.Matrix),
		parent: el.Parent(),
		next:   el.NextSibling(),
	}
	in.logger.Debug("drag start", "item_id", item.ID, "bucket", pair.Bucket, "index", pair.Item)

	dragging := &types.Dragging{Item: item, IndexPair: pair}
	in.apply(func(prev types.State) types.State {
		prev.Dragging = dragging
		return prev
	})
	return nil
}

// DragOver repositions the dragged item within the bucket at bucketIndex
// according to the pointer position. Only the interim matrix and the dragged
// element change; no state is published until EndDrag.
//
// The call does nothing when no gesture is in flight, when the pointer is
// over the dragged element itself, or when the computed position equals the
// current one.
func (in *Instance) DragOver(bucketIndex int, bucketID types.ID, event types.DragEvent) error {
	d := in.interim
	if d == nil {
		return nil
	}
	if event.PreventDefault != nil {
		event.PreventDefault()
	}

	dragged := in.opts.Elements.GetElement(types.CategoryItems, d.item.ID)
	if dragged == nil {
		return fmt.Errorf("drag over %q: %w", d.item.ID, types.ErrDomElementMissing)
	}
	if event.Target != nil && dragged.Contains(event.Target) {
		return nil
	}
	if bucketIndex < 0 || bucketIndex >= len(d.matrix) {
		return fmt.Errorf("drag over bucket index %d: %w", bucketIndex, types.ErrBucketNotFound)
	}

	// Destination row as it would look without the dragged item.
	row := slices.DeleteFunc(slices.Clone(d.matrix[bucketIndex]), func(id types.ID) bool {
		return id == d.item.ID
	})
	after := in.dragAfterIndex(row, event.ClientY)

	index := after
	if after == -1 {
		index = len(row)
	}
	if bucketIndex == d.pair.Bucket && index == d.pair.Item {
		return nil
	}

	container := in.opts.Elements.GetElement(types.CategoryBuckets, bucketID)
	if container == nil {
		return fmt.Errorf("drag over bucket %q: %w", bucketID, types.ErrDomElementMissing)
	}
	var sibling types.Element
	if after != -1 {
		sibling = in.opts.Elements.GetElement(types.CategoryItems, row[after])
		if sibling == nil {
			return fmt.Errorf("drag over sibling %q: %w", row[after], types.ErrDomElementMissing)
		}
	}

	// The interim matrix changes only once the element has moved.
	var err error
	if sibling == nil {
		err = container.AppendChild(dragged)
	} else {
		err = container.InsertBefore(dragged, sibling)
	}
	if err != nil {
		return fmt.Errorf("drag over bucket %q: move element: %w", bucketID, err)
	}

	d.matrix[d.pair.Bucket] = slices.DeleteFunc(d.matrix[d.pair.Bucket], func(id types.ID) bool {
		return id == d.item.ID
	})
	d.matrix[bucketIndex] = insertAt(slices.Clone(d.matrix[bucketIndex]), index, d.item.ID)
	d.pair = types.IndexPair{Bucket: bucketIndex, Item: index}

	in.logger.Debug("drag over", "item_id", d.item.ID, "bucket", bucketIndex, "index", index)
	return nil
}

// dragAfterIndex returns the index in row of the item the dragged item should
// land in front of: the item whose vertical midpoint is nearest below y.
// It returns -1 when y is below every midpoint. Items without a registered
// element are skipped.
func (in *Instance) dragAfterIndex(row []types.ID, y float64) int {
	closest := math.Inf(-1)
	index := -1
	for v, id := range row {
		el := in.opts.Elements.GetElement(types.CategoryItems, id)
		if el == nil {
			continue
		}
		box := el.Rect()
		offset := y - box.Top - box.Height/2
		if offset < 0 && offset > closest {
			closest = offset
			index = v
		}
	}
	return index
}

// EndDrag finishes the gesture. The dragged element is returned to its
// original position and the interim matrix is committed together with
// clearing the dragging state. Without a gesture in flight only the dragging
// state is cleared.
func (in *Instance) EndDrag() {
	d := in.interim
	in.interim = nil

	if d == nil {
		in.apply(func(prev types.State) types.State {
			prev.Dragging = nil
			return prev
		})
		return
	}

	in.restoreElement(d)
	in.logger.Debug("drag end", "item_id", d.item.ID, "bucket", d.pair.Bucket, "index", d.pair.Item)

	matrix := d.matrix
	in.apply(func(prev types.State) types.State {
		prev.Matrix = types.CloneMatrix(matrix)
		prev.Dragging = nil
		return prev
	})
}

// CancelDrag abandons the gesture: the dragged element is put back, the
// interim matrix is discarded, and the dragging state is cleared.
func (in *Instance) CancelDrag() {
	d := in.interim
	in.interim = nil
	if d != nil {
		in.restoreElement(d)
		in.logger.Debug("drag cancel", "item_id", d.item.ID)
	}
	in.apply(func(prev types.State) types.State {
		prev.Dragging = nil
		return prev
	})
}

// restoreElement undoes the visual moves of the gesture.
func (in *Instance) restoreElement(d *interimDrag) {
	el := in.opts.Elements.GetElement(types.CategoryItems, d.item.ID)
	if el == nil || d.parent == nil {
		return
	}
	if err := d.parent.InsertBefore(el, d.next); err != nil {
		in.logger.Warn("drag: restore element", "item_id", d.item.ID, "error", err)
	}
}

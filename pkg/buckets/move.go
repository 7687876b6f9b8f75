package buckets

import (
	"fmt"

	"github.com/mesh-intelligence/buckets/pkg/types"
)

// MoveItemToBucket moves the item at pair into the bucket bucketAdjustment
// positions away, keeping its position within the row. When the destination
// row is shorter than that position the item is appended.
//
// itemID is optional; when set it is used as the moving id and a mismatch with
// the id stored at pair is logged as a warning. The destination must lie
// within the bucket range, otherwise ErrBucketNotFound is returned and the
// state is left unchanged.
func (in *Instance) MoveItemToBucket(pair types.IndexPair, bucketAdjustment int, itemID types.ID) error {
	matrix := in.state.Matrix
	if pair.Bucket < 0 || pair.Bucket >= len(matrix) {
		return fmt.Errorf("move item: bucket index %d: %w", pair.Bucket, types.ErrBucketNotFound)
	}
	source := append([]types.ID{}, matrix[pair.Bucket]...)

	storedID, ok := idAt(matrix, pair)
	if !ok {
		return fmt.Errorf("move item: index pair [%d %d]: %w", pair.Bucket, pair.Item, types.ErrItemNotFound)
	}
	id := itemID
	if id == "" {
		item, found := in.GetItemFromIndexPair(pair)
		if !found {
			return fmt.Errorf("move item: index pair [%d %d]: %w", pair.Bucket, pair.Item, types.ErrItemNotFound)
		}
		id = item.ID
	} else if storedID != id {
		in.logger.Warn("move item: index pair and item id do not match",
			"bucket_index", pair.Bucket,
			"item_index", pair.Item,
			"index_pair_id", storedID,
			"item_id", id)
	}

	target := pair.Bucket + bucketAdjustment
	if target < 0 || target >= len(matrix) {
		return fmt.Errorf("move item: bucket index %d adjusted by %d of %d buckets: %w",
			pair.Bucket, bucketAdjustment, len(matrix), types.ErrBucketNotFound)
	}
	dest := append([]types.ID{}, matrix[target]...)

	source = removeAt(source, pair.Item)
	if target == pair.Bucket {
		dest = source
	}
	dest = insertAt(dest, pair.Item, id)

	in.logger.Debug("move item",
		"item_id", id,
		"from", pair.Bucket,
		"to", target,
		"index", pair.Item)

	in.apply(func(prev types.State) types.State {
		prev.Matrix[pair.Bucket] = source
		prev.Matrix[target] = dest
		return prev
	})
	return nil
}

// removeAt returns row without the element at index i.
func removeAt(row []types.ID, i int) []types.ID {
	return append(row[:i:i], row[i+1:]...)
}

// insertAt returns row with id inserted at index i, or appended when i is
// past the end.
func insertAt(row []types.ID, i int, id types.ID) []types.ID {
	if i >= len(row) {
		return append(row, id)
	}
	out := make([]types.ID, 0, len(row)+1)
	out = append(out, row[:i]...)
	out = append(out, id)
	return append(out, row[i:]...)
}

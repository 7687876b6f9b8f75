package types

import "fmt"

// RemainingLastBucket selects the last bucket in AddRemainingValues.
const RemainingLastBucket = -1

// PrepareState resolves the caller-supplied board into the initial State.
// Item IDs are derived where omitted, bucket titles default to their IDs, and
// the matrix is checked against the buckets. An ID may appear only once
// across all matrix rows.
func PrepareState(in InputState) (State, error) {
	if len(in.Matrix) != len(in.Buckets) {
		return State{}, fmt.Errorf("matrix has %d rows for %d buckets: %w",
			len(in.Matrix), len(in.Buckets), ErrConfiguration)
	}

	items := make([]Item, 0, len(in.Items))
	seenItems := make(map[ID]bool, len(in.Items))
	for i, raw := range in.Items {
		item, err := ResolveItem(raw)
		if err != nil {
			return State{}, fmt.Errorf("item %d: %w", i, err)
		}
		if seenItems[item.ID] {
			return State{}, fmt.Errorf("item %q: %w", item.ID, ErrDuplicateItem)
		}
		seenItems[item.ID] = true
		items = append(items, item)
	}

	buckets := make([]Bucket, 0, len(in.Buckets))
	seenBuckets := make(map[ID]bool, len(in.Buckets))
	for _, raw := range in.Buckets {
		bucket := ResolveBucket(raw)
		if seenBuckets[bucket.ID] {
			return State{}, fmt.Errorf("bucket %q: %w", bucket.ID, ErrDuplicateBucket)
		}
		seenBuckets[bucket.ID] = true
		buckets = append(buckets, bucket)
	}

	placed := make(map[ID]IndexPair)
	for b, row := range in.Matrix {
		for i, id := range row {
			if at, ok := placed[id]; ok {
				return State{}, fmt.Errorf("item %q at [%d %d] already placed at [%d %d]: %w",
					id, b, i, at.Bucket, at.Item, ErrDuplicateItem)
			}
			placed[id] = IndexPair{Bucket: b, Item: i}
		}
	}

	return State{
		Matrix:           CloneMatrix(in.Matrix),
		Buckets:          buckets,
		Items:            items,
		Dragging:         nil,
		GlobalFilter:     "",
		FilterFocusIndex: -1,
		FilterResults:    []IDPair{},
	}, nil
}

// AddRemainingValues returns a matrix with one row per bucket where every item
// absent from all rows is appended, in item order, to the row at
// remainingBucketIndex. Pass RemainingLastBucket to use the last bucket.
// Rows missing from matrix are treated as empty.
func AddRemainingValues(matrix [][]ID, buckets []Bucket, items []Item, remainingBucketIndex int) ([][]ID, error) {
	result := make([][]ID, len(buckets))
	present := make(map[ID]bool)
	for b := range buckets {
		if b < len(matrix) {
			result[b] = append([]ID{}, matrix[b]...)
		} else {
			result[b] = []ID{}
		}
	}
	for _, row := range matrix {
		for _, id := range row {
			present[id] = true
		}
	}

	index := remainingBucketIndex
	if index == RemainingLastBucket {
		index = len(buckets) - 1
	}
	if index < 0 || index >= len(buckets) {
		return nil, fmt.Errorf("remaining bucket index %d with %d buckets: %w",
			remainingBucketIndex, len(buckets), ErrBucketNotFound)
	}

	for i, raw := range items {
		item, err := ResolveItem(raw)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		if present[item.ID] {
			continue
		}
		present[item.ID] = true
		result[index] = append(result[index], item.ID)
	}
	return result, nil
}

package types

import "errors"

// State preparation errors.
var (
	ErrInvalidItem     = errors.New("item must supply an explicit id when its value is not a primitive")
	ErrConfiguration   = errors.New("invalid configuration")
	ErrDuplicateItem   = errors.New("duplicate item id")
	ErrDuplicateBucket = errors.New("duplicate bucket id")
)

// Lookup errors.
var (
	ErrBucketNotFound = errors.New("bucket not found")
	ErrItemNotFound   = errors.New("item not found")
)

// Drag gesture errors.
var (
	ErrDomElementMissing = errors.New("element handle missing")
	ErrDragInProgress    = errors.New("drag already in progress")
)

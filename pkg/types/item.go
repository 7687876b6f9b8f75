package types

import (
	"fmt"
	"strconv"
)

// ID uniquely identifies a bucket or an item. Numeric identifiers are carried
// in their decimal string form so 1 and "1" name the same entity.
type ID string

// String returns the identifier text.
func (id ID) String() string { return string(id) }

// IDOf derives an identifier from a primitive value. It reports false when the
// value is neither a string nor a number.
func IDOf(value any) (ID, bool) {
	switch v := value.(type) {
	case ID:
		return v, true
	case string:
		return ID(v), true
	case int:
		return ID(strconv.FormatInt(int64(v), 10)), true
	case int8:
		return ID(strconv.FormatInt(int64(v), 10)), true
	case int16:
		return ID(strconv.FormatInt(int64(v), 10)), true
	case int32:
		return ID(strconv.FormatInt(int64(v), 10)), true
	case int64:
		return ID(strconv.FormatInt(v, 10)), true
	case uint:
		return ID(strconv.FormatUint(uint64(v), 10)), true
	case uint8:
		return ID(strconv.FormatUint(uint64(v), 10)), true
	case uint16:
		return ID(strconv.FormatUint(uint64(v), 10)), true
	case uint32:
		return ID(strconv.FormatUint(uint64(v), 10)), true
	case uint64:
		return ID(strconv.FormatUint(v, 10)), true
	case float32:
		return ID(strconv.FormatFloat(float64(v), 'f', -1, 32)), true
	case float64:
		return ID(strconv.FormatFloat(v, 'f', -1, 64)), true
	default:
		return "", false
	}
}

// Item is an entry that lives in exactly one bucket row.
type Item struct {
	ID    ID     `json:"id,omitempty" yaml:"id" mapstructure:"id"`                    // Optional when Value is a string or number.
	Title string `json:"title,omitempty" yaml:"title,omitempty" mapstructure:"title"` // Text matched by the global filter.
	Value any    `json:"value" yaml:"value" mapstructure:"value"`
}

// ResolveItem returns a copy of the item with its ID guaranteed present.
// When the ID is empty it is derived from a string or numeric Value; any other
// Value yields ErrInvalidItem.
func ResolveItem(item Item) (Item, error) {
	if item.ID != "" {
		return item, nil
	}
	id, ok := IDOf(item.Value)
	if !ok || id == "" {
		return Item{}, fmt.Errorf("resolve item (value %T): %w", item.Value, ErrInvalidItem)
	}
	item.ID = id
	return item, nil
}

// Bucket is a named, ordered destination list for items.
type Bucket struct {
	ID    ID     `json:"id" yaml:"id" mapstructure:"id"`
	Title string `json:"title,omitempty" yaml:"title,omitempty" mapstructure:"title"` // Text matched by the global filter.
}

// ResolveBucket returns a copy of the bucket whose Title defaults to its ID.
func ResolveBucket(bucket Bucket) Bucket {
	if bucket.Title == "" {
		bucket.Title = bucket.ID.String()
	}
	return bucket
}

// IndexPair locates an item by bucket row and position within the row.
type IndexPair struct {
	Bucket int `json:"bucket"`
	Item   int `json:"item"`
}

// IDPair names an item together with the bucket that holds it.
type IDPair struct {
	Bucket ID `json:"bucket"`
	Item   ID `json:"item"`
}

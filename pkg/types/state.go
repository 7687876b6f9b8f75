package types

// InputState is the caller-supplied initial board. Items may omit their IDs
// and buckets their titles; PrepareState resolves both.
type InputState struct {
	Matrix  [][]ID   `json:"matrix" mapstructure:"matrix"`
	Buckets []Bucket `json:"buckets" mapstructure:"buckets"`
	Items   []Item   `json:"items" mapstructure:"items"`
}

// Dragging records the item being relocated and its last committed position.
type Dragging struct {
	Item      Item      `json:"item"`
	IndexPair IndexPair `json:"indexPair"`
}

// State is the resolved, observable state of a sortable buckets instance.
type State struct {
	// Matrix holds one row of item IDs per bucket, in bucket order.
	Matrix  [][]ID   `json:"matrix"`
	Buckets []Bucket `json:"buckets"`
	Items   []Item   `json:"items"`

	// Dragging is nil while no drag gesture is active.
	Dragging *Dragging `json:"dragging"`

	GlobalFilter     string   `json:"globalFilter"`     // Empty when not filtering.
	FilterFocusIndex int      `json:"filterFocusIndex"` // -1 when no result is focused.
	FilterResults    []IDPair `json:"filterResults"`
}

// Clone returns a deep copy of the state. Item values are copied by
// assignment.
func (s State) Clone() State {
	out := s
	out.Matrix = CloneMatrix(s.Matrix)
	out.Buckets = append([]Bucket(nil), s.Buckets...)
	out.Items = append([]Item(nil), s.Items...)
	out.FilterResults = append([]IDPair{}, s.FilterResults...)
	if s.Dragging != nil {
		d := *s.Dragging
		out.Dragging = &d
	}
	return out
}

// CloneMatrix copies every row of the matrix. A nil row becomes an empty row.
func CloneMatrix(matrix [][]ID) [][]ID {
	if matrix == nil {
		return nil
	}
	out := make([][]ID, len(matrix))
	for b, row := range matrix {
		out[b] = append([]ID{}, row...)
	}
	return out
}

// Updater derives the next state from the previous one.
type Updater func(prev State) State

// Replace returns an Updater that discards the previous state in favour of s.
func Replace(s State) Updater {
	return func(State) State { return s.Clone() }
}

// KeyEvent is the key signal delivered to the filter input.
type KeyEvent struct {
	Key string
}

// KeyEnter is the key that advances the filter focus.
const KeyEnter = "Enter"

// DragEvent carries the pointer position of a drag-over signal.
type DragEvent struct {
	ClientY float64
	// Target is the element under the pointer; it may be nil.
	Target Element
	// PreventDefault, when set, is invoked to accept the drop target.
	PreventDefault func()
}

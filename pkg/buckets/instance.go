package buckets

import (
	"fmt"
	"log/slog"

	"github.com/mesh-intelligence/buckets/pkg/types"
)

// Instance is a sortable buckets state machine. It is not safe for
// concurrent use; all calls are expected from a single event loop.
type Instance struct {
	opts    types.Options
	logger  *slog.Logger
	initial types.State
	state   types.State

	// interim is non-nil while a drag gesture is in flight.
	interim *interimDrag
}

// New prepares the initial state from opts and returns an instance.
func New(opts types.Options) (*Instance, error) {
	opts = opts.WithDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	opts.Logger.Debug("creating sortable buckets instance",
		"buckets", len(opts.State.Buckets),
		"items", len(opts.State.Items))

	state, err := types.PrepareState(opts.State)
	if err != nil {
		return nil, fmt.Errorf("prepare state: %w", err)
	}

	return &Instance{
		opts:    opts,
		logger:  opts.Logger,
		initial: state.Clone(),
		state:   state,
	}, nil
}

// Options returns the resolved options.
func (in *Instance) Options() types.Options { return in.opts }

// InitialState returns a copy of the state captured at construction.
func (in *Instance) InitialState() types.State { return in.initial.Clone() }

// GetState returns a copy of the current state.
func (in *Instance) GetState() types.State { return in.state.Clone() }

// SetState applies the updater to the current state and notifies
// OnStateChange. An updated state whose matrix does not hold one row per
// bucket is rejected with an error wrapping ErrConfiguration and the
// previous state is kept.
func (in *Instance) SetState(update types.Updater) error {
	next := update(in.state.Clone())
	if len(next.Matrix) != len(next.Buckets) {
		return fmt.Errorf("set state: matrix has %d rows for %d buckets: %w",
			len(next.Matrix), len(next.Buckets), types.ErrConfiguration)
	}
	in.commit(next, update)
	return nil
}

// apply runs an updater built by the instance itself.
func (in *Instance) apply(update types.Updater) {
	in.commit(update(in.state.Clone()), update)
}

func (in *Instance) commit(next types.State, update types.Updater) {
	in.state = next
	in.opts.OnStateChange(update)
}

// Reset abandons any drag gesture in flight and restores the state
// captured at construction.
func (in *Instance) Reset() {
	in.logger.Debug("reset state")
	if d := in.interim; d != nil {
		in.interim = nil
		in.restoreElement(d)
	}
	in.apply(types.Replace(in.initial))
}

// GetBucket returns the bucket with the given id.
func (in *Instance) GetBucket(id types.ID) (types.Bucket, bool) {
	for _, b := range in.state.Buckets {
		if b.ID == id {
			return b, true
		}
	}
	return types.Bucket{}, false
}

// GetItem returns the resolved item with the given id.
func (in *Instance) GetItem(id types.ID) (types.Item, bool) {
	for _, item := range in.state.Items {
		if item.ID == id {
			return item, true
		}
	}
	return types.Item{}, false
}

// GetItemFromIndexPair returns the item at the given matrix position.
func (in *Instance) GetItemFromIndexPair(pair types.IndexPair) (types.Item, bool) {
	id, ok := idAt(in.state.Matrix, pair)
	if !ok {
		return types.Item{}, false
	}
	return in.GetItem(id)
}

// idAt returns the id stored at pair, reporting false when either index is
// out of range.
func idAt(matrix [][]types.ID, pair types.IndexPair) (types.ID, bool) {
	if pair.Bucket < 0 || pair.Bucket >= len(matrix) {
		return "", false
	}
	row := matrix[pair.Bucket]
	if pair.Item < 0 || pair.Item >= len(row) {
		return "", false
	}
	return row[pair.Item], true
}

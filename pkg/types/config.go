package types

import (
	"fmt"
	"log/slog"
	"os"
)

// Options configures a sortable buckets instance. Every optional field is
// given a concrete default by WithDefaults before the instance is created.
type Options struct {
	// State is the initial board.
	State InputState

	// RemainingBucket names the bucket that received items absent from the
	// matrix when the board was loaded (see AddRemainingValues). The instance
	// carries it for the view layer and does not act on it. Defaults to the
	// last bucket.
	RemainingBucket *int

	// DebugAll and DebugInput lower the default logger to debug level.
	DebugAll   bool
	DebugInput bool

	// Logger receives warnings and debug output. Defaults to a text logger
	// on stderr.
	Logger *slog.Logger

	// Elements resolves the live element handles of the view layer.
	Elements ElementRegistry

	// OnStateChange is notified with the updater of every state change.
	OnStateChange func(Updater)
	// OnFilterEnter is notified after the instance handles a filter key event.
	OnFilterEnter func(KeyEvent)
	// OnGlobalFilterChange is notified when the filters are cleared.
	OnGlobalFilterChange func(filter string)
}

// WithDefaults returns a copy of the options where every unset field holds
// its default value.
func (o Options) WithDefaults() Options {
	if o.RemainingBucket == nil {
		last := len(o.State.Buckets) - 1
		o.RemainingBucket = &last
	}
	if o.Logger == nil {
		level := slog.LevelWarn
		if o.DebugAll || o.DebugInput {
			level = slog.LevelDebug
		}
		o.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	}
	if o.Elements == nil {
		o.Elements = NopRegistry{}
	}
	if o.OnStateChange == nil {
		o.OnStateChange = func(Updater) {}
	}
	if o.OnFilterEnter == nil {
		o.OnFilterEnter = func(KeyEvent) {}
	}
	if o.OnGlobalFilterChange == nil {
		o.OnGlobalFilterChange = func(string) {}
	}
	return o
}

// Validate checks that the options describe a consistent board. It returns
// an error wrapping ErrConfiguration on failure.
func (o Options) Validate() error {
	if len(o.State.Matrix) != len(o.State.Buckets) {
		return fmt.Errorf("matrix has %d rows for %d buckets: %w",
			len(o.State.Matrix), len(o.State.Buckets), ErrConfiguration)
	}
	return nil
}

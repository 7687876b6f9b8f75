package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/buckets/internal/board"
	"github.com/mesh-intelligence/buckets/internal/paths"
	"github.com/mesh-intelligence/buckets/pkg/buckets"
	"github.com/mesh-intelligence/buckets/pkg/types"
)

// errUsage marks errors caused by command arguments.
var errUsage = errors.New("invalid usage")

// boardPath returns the board file selected by flag or config, or "" for the
// sample board.
func boardPath() string {
	return paths.ResolveBoard(flags.board, session.settings.GetString(cfgKeyBoard), session.configDir)
}

// loadBoard reads the selected board, applying the remaining_bucket setting
// when configured.
func loadBoard() (board.Board, error) {
	var opts []board.Option
	if session.settings.IsSet(cfgKeyRemainingBucket) {
		opts = append(opts, board.WithRemainingBucket(session.settings.GetInt(cfgKeyRemainingBucket)))
	}

	path := boardPath()
	if path == "" {
		return board.Default(opts...)
	}
	return board.Load(path, opts...)
}

// newLogger returns the logger handed to instances created by commands.
func newLogger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if flags.debug || session.settings.GetBool(cfgKeyDebug) {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// openInstance loads the board and creates an instance over it. Adjust may
// set view-layer options before the instance is created.
func openInstance(cmd *cobra.Command, adjust func(*types.Options)) (*buckets.Instance, error) {
	b, err := loadBoard()
	if err != nil {
		return nil, err
	}
	opts := b.Options()
	opts.Logger = newLogger(cmd.ErrOrStderr())
	opts.DebugAll = flags.debug
	if adjust != nil {
		adjust(&opts)
	}
	return buckets.New(opts)
}

// findItem returns the position of the item with id in the current state.
func findItem(in *buckets.Instance, id types.ID) (types.IndexPair, error) {
	for b, row := range in.GetState().Matrix {
		for i, v := range row {
			if v == id {
				return types.IndexPair{Bucket: b, Item: i}, nil
			}
		}
	}
	return types.IndexPair{}, fmt.Errorf("item %q: %w", id, types.ErrItemNotFound)
}

// writeJSON writes v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

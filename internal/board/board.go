// Package board loads board definitions (buckets, items, and their initial
// arrangement) from YAML, JSON, or TOML files.
package board

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/buckets/pkg/types"
)

//go:embed default.yaml
var defaultBoard []byte

// Board file keys.
const (
	keyRemainingBucket = "remaining_bucket"
)

// ErrUnsupportedFormat is returned by Encode for unknown formats.
var ErrUnsupportedFormat = errors.New("unsupported board format")

// Output formats accepted by Encode.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Board is a loaded board definition. Its matrix already holds every item:
// items the file does not place are appended to RemainingBucket.
type Board struct {
	State           types.InputState
	RemainingBucket int
}

// file mirrors the on-disk layout.
type file struct {
	Buckets         []types.Bucket `mapstructure:"buckets" yaml:"buckets" json:"buckets"`
	Items           []types.Item   `mapstructure:"items" yaml:"items" json:"items"`
	Matrix          [][]types.ID   `mapstructure:"matrix" yaml:"matrix" json:"matrix"`
	RemainingBucket int            `mapstructure:"remaining_bucket" yaml:"remaining_bucket" json:"remaining_bucket"`
}

// Option adjusts how a board is loaded.
type Option func(*loadOptions)

type loadOptions struct {
	remainingBucket *int
}

// WithRemainingBucket overrides the remaining_bucket setting of the board.
func WithRemainingBucket(index int) Option {
	return func(o *loadOptions) { o.remainingBucket = &index }
}

// Load reads the board at path. The format follows the file extension.
func Load(path string, opts ...Option) (Board, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Board{}, fmt.Errorf("read board %s: %w", path, err)
	}
	b, err := decode(v, opts)
	if err != nil {
		return Board{}, fmt.Errorf("board %s: %w", path, err)
	}
	return b, nil
}

// Default returns the built-in sample board.
func Default(opts ...Option) (Board, error) {
	return Parse(defaultBoard, FormatYAML, opts...)
}

// Parse reads a board from data in the given format ("yaml", "json", "toml").
func Parse(data []byte, format string, opts ...Option) (Board, error) {
	v := viper.New()
	v.SetConfigType(format)
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return Board{}, fmt.Errorf("parse board: %w", err)
	}
	return decode(v, opts)
}

func decode(v *viper.Viper, opts []Option) (Board, error) {
	var lo loadOptions
	for _, opt := range opts {
		opt(&lo)
	}

	v.SetDefault(keyRemainingBucket, types.RemainingLastBucket)

	var f file
	if err := v.Unmarshal(&f); err != nil {
		return Board{}, fmt.Errorf("decode board: %w", err)
	}

	remaining := f.RemainingBucket
	if lo.remainingBucket != nil {
		remaining = *lo.remainingBucket
	}
	matrix, err := types.AddRemainingValues(f.Matrix, f.Buckets, f.Items, remaining)
	if err != nil {
		return Board{}, err
	}
	if remaining == types.RemainingLastBucket {
		remaining = len(f.Buckets) - 1
	}

	return Board{
		State: types.InputState{
			Matrix:  matrix,
			Buckets: f.Buckets,
			Items:   f.Items,
		},
		RemainingBucket: remaining,
	}, nil
}

// Options returns instance options for the board.
func (b Board) Options() types.Options {
	rb := b.RemainingBucket
	return types.Options{
		State:           b.State,
		RemainingBucket: &rb,
	}
}

// Encode writes the board to w in format. Item ids are written explicitly so
// the output loads back into the same arrangement.
func (b Board) Encode(w io.Writer, format string) error {
	items := make([]types.Item, 0, len(b.State.Items))
	for i, raw := range b.State.Items {
		item, err := types.ResolveItem(raw)
		if err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
		items = append(items, item)
	}
	f := file{
		Buckets:         b.State.Buckets,
		Items:           items,
		Matrix:          b.State.Matrix,
		RemainingBucket: b.RemainingBucket,
	}

	switch format {
	case FormatYAML, "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(&f); err != nil {
			return fmt.Errorf("encode board: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(&f); err != nil {
			return fmt.Errorf("encode board: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("encode %q: %w", format, ErrUnsupportedFormat)
	}
}

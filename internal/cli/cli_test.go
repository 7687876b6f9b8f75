package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/buckets/internal/board"
	"github.com/mesh-intelligence/buckets/pkg/types"
)

// result captures one command invocation.
type result struct {
	out    string
	stderr string
	err    error
}

// run executes the root command against configDir.
func run(t *testing.T, configDir string, args ...string) result {
	t.Helper()
	color.NoColor = true

	var out, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config-dir", configDir}, args...))
	err := cmd.Execute()
	return result{out: out.String(), stderr: stderr.String(), err: err}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

const sampleBoard = `Backlog (3)
  Apple
  Banana
  Cherry

Doing (1)
  Apricot

Done (3)
  Blueberry
  Grape
  Papaya
`

func TestVersion(t *testing.T) {
	dir := t.TempDir()
	r := run(t, dir, "version")
	require.NoError(t, r.err)
	assert.Equal(t, "buckets v0.1.0\nmodule: github.com/mesh-intelligence/buckets\n", r.out)

	_, err := os.Stat(filepath.Join(dir, "config.yaml"))
	assert.NoError(t, err, "config.yaml is created on first run")
}

func TestShow(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "sample board",
			args: []string{"show"},
			want: sampleBoard,
		},
		{
			name: "filter with focus",
			args: []string{"show", "--filter", "ap", "--next", "1"},
			want: `Backlog (3)
> Apple
  Banana
  Cherry

Doing (1)
* Apricot

Done (3)
  Blueberry
* Grape
* Papaya
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := run(t, t.TempDir(), tt.args...)
			require.NoError(t, r.err)
			assert.Equal(t, tt.want, r.out)
		})
	}
}

func TestShowTable(t *testing.T) {
	r := run(t, t.TempDir(), "show", "--table")
	require.NoError(t, r.err)
	for _, want := range []string{"Backlog (3)", "Doing (1)", "Done (3)", "Apple", "Apricot", "Papaya"} {
		assert.Contains(t, r.out, want)
	}
}

func TestShowJSON(t *testing.T) {
	r := run(t, t.TempDir(), "--json", "show")
	require.NoError(t, r.err)

	var state types.State
	require.NoError(t, json.Unmarshal([]byte(r.out), &state))
	assert.Equal(t, [][]types.ID{
		{"apple", "banana", "cherry"},
		{"apricot"},
		{"blueberry", "grape", "papaya"},
	}, state.Matrix)
	assert.Equal(t, -1, state.FilterFocusIndex)
}

func TestMove(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    [][]types.ID
		wantErr error
	}{
		{
			name: "two buckets right",
			args: []string{"move", "apple", "--by", "2"},
			want: [][]types.ID{
				{"banana", "cherry"},
				{"apricot"},
				{"apple", "blueberry", "grape", "papaya"},
			},
		},
		{
			name: "sequential moves",
			args: []string{"move", "banana", "apricot"},
			want: [][]types.ID{
				{"apple", "cherry"},
				{"banana"},
				{"apricot", "blueberry", "grape", "papaya"},
			},
		},
		{
			name:    "unknown item",
			args:    []string{"move", "kiwi"},
			wantErr: types.ErrItemNotFound,
		},
		{
			name:    "past the first bucket",
			args:    []string{"move", "apple", "--by=-1"},
			wantErr: types.ErrBucketNotFound,
		},
		{
			name:    "zero adjustment",
			args:    []string{"move", "apple", "--by", "0"},
			wantErr: errUsage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := run(t, t.TempDir(), append([]string{"--json"}, tt.args...)...)
			if tt.wantErr != nil {
				require.ErrorIs(t, r.err, tt.wantErr)
				assert.Equal(t, exitUserError, exitCode(r.err))
				return
			}
			require.NoError(t, r.err)

			var state types.State
			require.NoError(t, json.Unmarshal([]byte(r.out), &state))
			assert.Equal(t, tt.want, state.Matrix)
		})
	}
}

func TestMoveText(t *testing.T) {
	r := run(t, t.TempDir(), "move", "apricot")
	require.NoError(t, r.err)
	assert.Contains(t, r.out, "Doing (0)\n  (empty)\n")
	assert.Contains(t, r.out, "Done (4)\n  Apricot\n  Blueberry\n")
}

func TestMoveExport(t *testing.T) {
	r := run(t, t.TempDir(), "move", "apple", "--export", "yaml")
	require.NoError(t, r.err)

	b, err := board.Parse([]byte(r.out), board.FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, []types.ID{"apple", "apricot"}, b.State.Matrix[1])
}

func TestFilter(t *testing.T) {
	dir := t.TempDir()

	r := run(t, dir, "filter", "ap", "--next", "2")
	require.NoError(t, r.err)
	assert.Equal(t, `  Backlog / Apple
> Doing / Apricot
  Done / Grape
  Done / Papaya
`, r.out)

	r = run(t, dir, "filter", "ZZZ")
	require.NoError(t, r.err)
	assert.Equal(t, "no items match \"ZZZ\"\n", r.out)

	r = run(t, dir, "--json", "filter", "BERRY", "--next", "3")
	require.NoError(t, r.err)
	var out filterOutput
	require.NoError(t, json.Unmarshal([]byte(r.out), &out))
	assert.Equal(t, filterOutput{
		Filter:  "BERRY",
		Focus:   0,
		Results: []matchRow{{Bucket: "done", Item: "blueberry"}},
	}, out)
}

func TestExport(t *testing.T) {
	for _, format := range []string{board.FormatYAML, board.FormatJSON} {
		t.Run(format, func(t *testing.T) {
			r := run(t, t.TempDir(), "export", "--format", format)
			require.NoError(t, r.err)

			got, err := board.Parse([]byte(r.out), format)
			require.NoError(t, err)
			want, err := board.Default()
			require.NoError(t, err)
			assert.Equal(t, want.State.Matrix, got.State.Matrix)
		})
	}

	r := run(t, t.TempDir(), "export", "--format", "xml")
	assert.ErrorIs(t, r.err, board.ErrUnsupportedFormat)
	assert.Equal(t, exitUserError, exitCode(r.err))
}

func TestInit(t *testing.T) {
	dir := t.TempDir()

	r := run(t, dir, "init")
	require.NoError(t, r.err)
	assert.Equal(t, fmt.Sprintf("Buckets initialized in %s\n", dir), r.out)

	cfg, err := os.ReadFile(filepath.Join(dir, "config.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(cfg), "board: board.yaml")

	// Edit the written board; later commands must read it.
	path := filepath.Join(dir, defaultBoardFile)
	b, err := board.Load(path)
	require.NoError(t, err)
	b.State.Matrix[0], b.State.Matrix[1] = b.State.Matrix[1], b.State.Matrix[0]
	var buf bytes.Buffer
	require.NoError(t, b.Encode(&buf, board.FormatYAML))
	writeFile(t, path, buf.String())

	r = run(t, dir, "show")
	require.NoError(t, r.err)
	assert.Contains(t, r.out, "Backlog (1)\n  Apricot\n")

	r = run(t, dir, "init")
	require.NoError(t, r.err, "init is idempotent")
	r = run(t, dir, "show")
	assert.Contains(t, r.out, "Backlog (1)\n  Apricot\n", "an existing board is kept")
}

func TestCreateIfMissing(t *testing.T) {
	write := func(text string) func(io.Writer) error {
		return func(w io.Writer) error {
			_, err := io.WriteString(w, text)
			return err
		}
	}

	t.Run("existing file is kept", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		writeFile(t, path, "debug: true\n")

		require.NoError(t, createIfMissing(path, write("debug: false\n")))
		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "debug: true\n", string(got))
	})

	t.Run("failed write removes the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "board.yaml")
		boom := errors.New("boom")

		err := createIfMissing(path, func(io.Writer) error { return boom })
		assert.ErrorIs(t, err, boom)
		assert.NoFileExists(t, path)
	})

	t.Run("first run seeds the default config", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "buckets")

		_, err := loadConfig(dir)
		require.NoError(t, err)
		got, err := os.ReadFile(filepath.Join(dir, "config.yaml"))
		require.NoError(t, err)
		assert.Equal(t, defaultConfigYAML, string(got))
	})
}

func TestBoardSelection(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(t.TempDir(), "board.json")
	writeFile(t, path, `{
  "buckets": [{"id": "left"}, {"id": "right"}],
  "items": [{"value": "x"}, {"value": "y"}],
  "matrix": [["y"], []]
}`)

	t.Run("flag", func(t *testing.T) {
		r := run(t, dir, "--board", path, "show")
		require.NoError(t, r.err)
		assert.Equal(t, "left (1)\n  y\n\nright (1)\n  x\n", r.out)
	})

	t.Run("env", func(t *testing.T) {
		t.Setenv("BUCKETS_BOARD", path)
		r := run(t, dir, "show")
		require.NoError(t, r.err)
		assert.Equal(t, "left (1)\n  y\n\nright (1)\n  x\n", r.out)
	})

	t.Run("remaining bucket from config", func(t *testing.T) {
		cfgDir := t.TempDir()
		writeFile(t, filepath.Join(cfgDir, "config.yaml"), "remaining_bucket: 0\n")
		r := run(t, cfgDir, "--board", path, "show")
		require.NoError(t, r.err)
		assert.Equal(t, "left (2)\n  y\n  x\n\nright (0)\n  (empty)\n", r.out)
	})

	t.Run("invalid board", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.yaml")
		writeFile(t, bad, "buckets: [{id: a}]\nitems: [{title: no value}]\n")
		r := run(t, dir, "--board", bad, "show")
		require.ErrorIs(t, r.err, types.ErrInvalidItem)
		assert.Equal(t, exitUserError, exitCode(r.err))
	})

	t.Run("missing board", func(t *testing.T) {
		r := run(t, dir, "--board", filepath.Join(t.TempDir(), "none.yaml"), "show")
		require.Error(t, r.err)
		assert.Equal(t, exitSysError, exitCode(r.err))
	})
}

func TestDebugLogging(t *testing.T) {
	r := run(t, t.TempDir(), "--debug", "show")
	require.NoError(t, r.err)
	assert.Contains(t, r.stderr, "creating sortable buckets instance")

	r = run(t, t.TempDir(), "show")
	require.NoError(t, r.err)
	assert.Empty(t, r.stderr)
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, exitSuccess},
		{"configuration", fmt.Errorf("wrap: %w", types.ErrConfiguration), exitUserError},
		{"duplicate", types.ErrDuplicateItem, exitUserError},
		{"usage", errUsage, exitUserError},
		{"other", errors.New("disk on fire"), exitSysError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}

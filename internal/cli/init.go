package cli

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/buckets/internal/board"
	"github.com/mesh-intelligence/buckets/internal/paths"
)

// defaultBoardFile is the board written by init, relative to the config
// directory.
const defaultBoardFile = "board.yaml"

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize buckets configuration",
		Long:  "Create the configuration directory with config.yaml and a sample board.yaml,\nthen point the configuration at the board when none is set.",
		Args:  cobra.NoArgs,
		RunE:  runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	configDir := session.configDir
	boardPath := filepath.Join(configDir, defaultBoardFile)

	b, err := board.Default()
	if err != nil {
		return err
	}
	encode := func(w io.Writer) error { return b.Encode(w, board.FormatYAML) }
	if err := createIfMissing(boardPath, encode); err != nil {
		return fmt.Errorf("write board: %w", err)
	}

	// Point config.yaml at the sample board unless a board is already set.
	if session.settings.GetString(cfgKeyBoard) == "" {
		session.settings.Set(cfgKeyBoard, defaultBoardFile)
		if err := session.settings.WriteConfigAs(filepath.Join(configDir, paths.ConfigFileName)); err != nil {
			return fmt.Errorf("write config: %w", err)
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Buckets initialized in %s\n", configDir)
	return nil
}

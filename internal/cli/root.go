// Package cli implements the buckets command-line interface.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/buckets/internal/board"
	"github.com/mesh-intelligence/buckets/internal/paths"
	"github.com/mesh-intelligence/buckets/pkg/buckets"
	"github.com/mesh-intelligence/buckets/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	board     string
	jsonMode  bool
	debug     bool
}

var flags rootFlags

// session holds what PersistentPreRunE resolved for the running command.
var session struct {
	configDir string
	settings  *viper.Viper
}

// NewRootCmd creates the top-level "buckets" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "buckets",
		Short:   "Arrange items across ordered buckets",
		Long:    "Buckets loads a board of ordered buckets and items, moves items between\nbuckets, searches them, and drives an interactive terminal board.",
		Version: buckets.Version,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			configDir, err := paths.ResolveConfigDir(flags.configDir)
			if err != nil {
				return fmt.Errorf("resolve config dir: %w", err)
			}
			settings, err := loadConfig(configDir)
			if err != nil {
				return err
			}
			session.configDir = configDir
			session.settings = settings
			return nil
		},
	}

	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().StringVar(&flags.board, "board", "", "board file (default: board from config.yaml, else the sample board)")
	root.PersistentFlags().BoolVar(&flags.jsonMode, "json", false, "output in JSON format")
	root.PersistentFlags().BoolVar(&flags.debug, "debug", false, "log engine debug output to stderr")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newShowCmd())
	root.AddCommand(newMoveCmd())
	root.AddCommand(newFilterCmd())
	root.AddCommand(newExportCmd())
	root.AddCommand(newTUICmd())

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

// exitCode maps a command error to the process exit code. Errors caused by
// the board or the arguments are user errors; anything else is a system
// error.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitSuccess
	case errors.Is(err, types.ErrInvalidItem),
		errors.Is(err, types.ErrConfiguration),
		errors.Is(err, types.ErrDuplicateItem),
		errors.Is(err, types.ErrDuplicateBucket),
		errors.Is(err, types.ErrBucketNotFound),
		errors.Is(err, types.ErrItemNotFound),
		errors.Is(err, board.ErrUnsupportedFormat),
		errors.Is(err, errUsage):
		return exitUserError
	default:
		return exitSysError
	}
}

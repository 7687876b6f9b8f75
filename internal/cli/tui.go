package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/buckets/internal/dom"
	"github.com/mesh-intelligence/buckets/internal/tui"
	"github.com/mesh-intelligence/buckets/pkg/types"
)

func newTUICmd() *cobra.Command {
	var inline bool
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive board",
		Long: `Tui opens the board in the terminal. Items are moved one bucket at a time
with < and >, or picked up with space, carried with the arrow keys, and
dropped with space (esc puts them back). / starts a title search; enter
steps through the matches.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc := dom.NewDocument()
			in, err := openInstance(cmd, func(o *types.Options) {
				o.Elements = doc
			})
			if err != nil {
				return err
			}

			opts := []tea.ProgramOption{
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			}
			if !inline {
				opts = append(opts, tea.WithAltScreen())
			}
			return tui.Run(in, doc, opts...)
		},
	}
	cmd.Flags().BoolVar(&inline, "inline", false, "render below the prompt instead of the alternate screen")
	return cmd
}

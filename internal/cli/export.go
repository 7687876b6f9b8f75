package cli

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/buckets/internal/board"
)

func newExportCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print the board as a board file",
		Long: `Export prints the loaded board with every item placed and every item id
written out, in YAML or JSON. The output can be loaded again with --board.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := loadBoard()
			if err != nil {
				return err
			}
			if flags.jsonMode {
				format = board.FormatJSON
			}
			return b.Encode(cmd.OutOrStdout(), format)
		},
	}
	cmd.Flags().StringVar(&format, "format", board.FormatYAML, "output format (yaml or json)")
	return cmd
}

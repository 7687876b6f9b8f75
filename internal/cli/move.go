package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/buckets/pkg/types"
)

func newMoveCmd() *cobra.Command {
	var (
		by     int
		export string
	)
	cmd := &cobra.Command{
		Use:   "move <item>...",
		Short: "Move items to neighbouring buckets",
		Long: `Move shifts each named item by --by buckets (negative moves left) and
prints the resulting board. An item keeps its index within the row when the
destination is long enough, otherwise it goes to the end.

Items are moved in argument order. The board file is not modified; use
--export to print the rearranged board as a board file.

Example:
  buckets move apple
  buckets move apple banana --by 2
  buckets move grape --by=-1 --export yaml > board.yaml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if by == 0 {
				return fmt.Errorf("--by must not be zero: %w", errUsage)
			}

			in, err := openInstance(cmd, nil)
			if err != nil {
				return err
			}
			for _, arg := range args {
				id := types.ID(arg)
				pair, err := findItem(in, id)
				if err != nil {
					return err
				}
				if err := in.MoveItemToBucket(pair, by, id); err != nil {
					return fmt.Errorf("move %q: %w", id, err)
				}
			}

			w := cmd.OutOrStdout()
			switch {
			case export != "":
				b, err := loadBoard()
				if err != nil {
					return err
				}
				b.State.Matrix = in.GetState().Matrix
				return b.Encode(w, export)
			case flags.jsonMode:
				return writeJSON(w, in.GetState())
			default:
				printBoard(w, in)
				return nil
			}
		},
	}
	cmd.Flags().IntVar(&by, "by", 1, "number of buckets to move right (negative moves left)")
	cmd.Flags().StringVar(&export, "export", "", "print the rearranged board as a board file (yaml or json)")
	return cmd
}

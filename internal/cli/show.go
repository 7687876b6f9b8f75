package cli

import (
	"github.com/spf13/cobra"
)

func newShowCmd() *cobra.Command {
	var (
		table  bool
		filter string
		next   int
	)
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display the board",
		Long: `Show prints every bucket with its items in order.

With --filter, items whose title contains the text (case-insensitive) are
marked with "*"; --next moves the focus marker ">" through the matches the
way repeated Enter presses do in the interactive board.

Example:
  buckets show
  buckets show --table
  buckets show --filter ap --next 2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := openInstance(cmd, nil)
			if err != nil {
				return err
			}
			applyFilter(in, filter, next)

			w := cmd.OutOrStdout()
			switch {
			case flags.jsonMode:
				return writeJSON(w, in.GetState())
			case table:
				printBoardTable(w, in)
			default:
				printBoard(w, in)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&table, "table", false, "print buckets side by side")
	cmd.Flags().StringVar(&filter, "filter", "", "mark items whose title contains this text")
	cmd.Flags().IntVar(&next, "next", 0, "advance the filter focus this many times")
	return cmd
}

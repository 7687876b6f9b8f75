package cli

import (
	"github.com/spf13/cobra"
)

// filterOutput is the JSON form of the filter command.
type filterOutput struct {
	Filter  string     `json:"filter"`
	Focus   int        `json:"focus"`
	Results []matchRow `json:"results"`
}

type matchRow struct {
	Bucket string `json:"bucket"`
	Item   string `json:"item"`
}

func newFilterCmd() *cobra.Command {
	var next int
	cmd := &cobra.Command{
		Use:   "filter <text>",
		Short: "List items whose title contains text",
		Long: `Filter lists the matches of a case-insensitive title search in bucket
order, then item order. --next advances the focus through the matches,
wrapping around after the last one.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := openInstance(cmd, nil)
			if err != nil {
				return err
			}
			applyFilter(in, args[0], next)

			if flags.jsonMode {
				state := in.GetState()
				out := filterOutput{
					Filter:  state.GlobalFilter,
					Focus:   state.FilterFocusIndex,
					Results: make([]matchRow, 0, len(state.FilterResults)),
				}
				for _, pair := range state.FilterResults {
					out.Results = append(out.Results, matchRow{
						Bucket: pair.Bucket.String(),
						Item:   pair.Item.String(),
					})
				}
				return writeJSON(cmd.OutOrStdout(), out)
			}
			printFilterResults(cmd.OutOrStdout(), in)
			return nil
		},
	}
	cmd.Flags().IntVar(&next, "next", 0, "advance the focus this many times")
	return cmd
}

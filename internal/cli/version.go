package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/buckets/pkg/buckets"
)

const modulePath = "github.com/mesh-intelligence/buckets"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the buckets version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "buckets v%s\nmodule: %s\n", buckets.Version, modulePath)
			return nil
		},
	}
}

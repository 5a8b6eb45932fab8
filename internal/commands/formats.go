package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bankmerge-dev/bankmerge/internal/importer"
)

func newFormatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List supported bank types",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, bank := range importer.DefaultRegistry().Banks() {
				fmt.Fprintln(cmd.OutOrStdout(), bank)
			}
		},
	}
}

package cli

import (
	"github.com/dwg-labs/dwg/internal/scaffold"
	"github.com/spf13/cobra"
)

func newPageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "page",
		Short: "Scaffold a new page (not implemented)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return scaffold.Page(cmd.OutOrStdout())
		},
	}
}

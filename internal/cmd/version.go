package cmd

import (
	"github.com/spf13/cobra"

	"github.com/workforcehq/workforce/internal"
)

func newVersionCmd(cli *CLI) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cli.Output("Workforce version %s", internal.FullVersion())
			return nil
		},
	}
}

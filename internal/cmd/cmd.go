package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/workforcehq/workforce/internal/cmd/cliopts"
	"github.com/workforcehq/workforce/internal/logging"
)

// Run the command line program with args.
func Run(ctx context.Context, args ...string) error {
	ctx, cli := newCLI(ctx)

	cmd := NewRootCmd(cli)
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}

func NewRootCmd(cli *CLI) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "workforce",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := cliopts.DefaultsFromEnv("WORKFORCE", cmd.Flags()); err != nil {
				return err
			}

			logLevel, err := cmd.Flags().GetString("log-level")
			if err != nil {
				return err
			}
			if err := logging.SetLevel(logLevel); err != nil {
				return err
			}

			logFile, err := cmd.Flags().GetString("log-file")
			if err != nil {
				return err
			}
			if logFile != "" {
				logging.UseFileLogger(logFile)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	rootCmd.AddCommand(newServerCmd(cli))
	rootCmd.AddCommand(newVersionCmd(cli))

	rootCmd.PersistentFlags().String("log-level", "info", "Show logs when running the command [error, warn, info, debug]")
	rootCmd.PersistentFlags().String("log-file", "", "Also write logs to this rotated file")
	rootCmd.SetOut(cli.Stdout)
	rootCmd.SetErr(cli.Stderr)
	return rootCmd
}

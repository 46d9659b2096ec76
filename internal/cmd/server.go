package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/workforcehq/workforce/internal"
	"github.com/workforcehq/workforce/internal/cmd/cliopts"
	"github.com/workforcehq/workforce/internal/logging"
	"github.com/workforcehq/workforce/internal/server"
)

func newServerCmd(cli *CLI) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the workforce server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			options := defaultServerOptions()
			if err := parseOptions(cmd, &options, "WORKFORCE_SERVER"); err != nil {
				return err
			}
			logging.Infof("workforce server %s", internal.FullVersion())

			srv, err := server.New(options)
			if err != nil {
				return fmt.Errorf("creating server: %w", err)
			}
			return runServer(cmd.Context(), srv)
		},
	}

	cmd.Flags().StringP("config-file", "f", "", "Server configuration file")
	cmd.Flags().String("db-file", filepath.Join(dataHomeDir(), "workforce.db"), "Path to SQLite database file")
	cmd.Flags().String("db-name", "", "Database name")
	cmd.Flags().String("db-host", "", "Database host")
	cmd.Flags().Int("db-port", 5432, "Database port")
	cmd.Flags().String("db-username", "", "Database username")
	cmd.Flags().String("db-password", "", "Database password (secret)")
	cmd.Flags().String("db-parameters", "", "Database additional connection parameters")
	cmd.Flags().Duration("session-duration", 12*time.Hour, "Session duration for issued login tokens")
	cmd.Flags().Bool("enable-signup", true, "Enable one-time admin signup")
	cmd.Flags().Bool("enable-log-sampling", true, "Enable sampling of repeated HTTP access log lines")
	return cmd
}

// runServer is a shim for testing the server command without running
// listeners for the lifetime of the test.
var runServer = func(ctx context.Context, srv *server.Server) error {
	return srv.Run(ctx)
}

func defaultServerOptions() server.Options {
	return server.Options{
		SessionDuration:   12 * time.Hour,
		EnableSignup:      true,
		EnableLogSampling: true,
		Addr: server.ListenerOptions{
			HTTP:    ":80",
			Metrics: ":9090",
		},
		API: server.APIOptions{
			RequestTimeout: time.Minute,
		},
	}
}

func dataHomeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".workforce")
}

// parseOptions loads options from the config file, environment
// variables with envPrefix, and command line flags, in that order.
func parseOptions(cmd *cobra.Command, options interface{}, envPrefix string) error {
	filename, err := cmd.Flags().GetString("config-file")
	if err != nil {
		return err
	}
	if filename == "" && envPrefix != "" {
		filename = os.Getenv(envPrefix + "_CONFIG_FILE")
	}

	return cliopts.Load(options, cliopts.Options{
		Filename:  filename,
		EnvPrefix: envPrefix,
		Flags:     cmd.Flags(),
	})
}

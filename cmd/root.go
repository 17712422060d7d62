package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"storefront/config"
)

var rootCmd = &cobra.Command{
	Use:           "storefront",
	Short:         "Storefront catalog, filters and cart from the command line",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// newApp builds the application for commands that need one. Tests replace it.
var newApp = func(ctx context.Context) (*config.App, error) {
	config.LoadAppConfig()
	return config.NewApp(ctx, config.AppConfig)
}

// withApp wraps a command body with app construction and teardown.
func withApp(run func(cmd *cobra.Command, args []string, app *config.App) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer app.Close()
		return run(cmd, args, app)
	}
}

// Execute adds registered commands and runs the root command.
func Execute() {
	Apply()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

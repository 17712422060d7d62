package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"storefront/config"
	"storefront/cron"
)

var jobName string

var cronStartCmd = &cobra.Command{
	Use:   "cron:start",
	Short: "Start the cron scheduler or run a single job by name",
	RunE: withApp(func(cmd *cobra.Command, args []string, app *config.App) error {
		out := cmd.OutOrStdout()
		if jobName != "" {
			fmt.Fprintf(out, "Running cron job: %s\n", jobName)
			return cron.RunOnce(cmd.Context(), app.Config, app.JobEnv(), jobName, args...)
		}
		fmt.Fprintln(out, "Starting cron scheduler...")
		c, err := cron.StartCron(cmd.Context(), app.Config, app.JobEnv())
		if err != nil {
			return err
		}
		fmt.Fprintln(out, "Cron scheduler started. Press Ctrl+C to exit.")
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		<-c.Stop().Done()
		return nil
	}),
}

var cartBackupCmd = &cobra.Command{
	Use:   "cart:backup [file]",
	Short: "Dump the persisted cart to CART_BACKUP_FILE or the given file",
	Args:  cobra.MaximumNArgs(1),
	RunE: withApp(func(cmd *cobra.Command, args []string, app *config.App) error {
		return cron.RunOnce(cmd.Context(), app.Config, app.JobEnv(), "cartbackup", args...)
	}),
}

func init() {
	cronStartCmd.Flags().StringVarP(&jobName, "job", "j", "", "Run a single cron job by name and exit")
	rootCmd.AddCommand(cronStartCmd, cartBackupCmd)
}

package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"storefront/config"
)

var exportFile string

// catalog:export writes the fetched snapshot in the API's own format, so
// PRODUCTS_URL=file://<out> can serve it offline.
var exportCmd = &cobra.Command{
	Use:   "catalog:export",
	Short: "Fetch the catalog and save it as a JSON file",
	RunE: withApp(func(cmd *cobra.Command, args []string, app *config.App) error {
		start := time.Now()
		if err := app.Storefront.Fetch(cmd.Context()); err != nil {
			return err
		}
		items := app.Storefront.Catalog().Items
		data, err := json.MarshalIndent(items, "", "  ")
		if err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(exportFile), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(exportFile, data, 0o644); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d products to %s in %s\n", len(items), exportFile, time.Since(start).Round(time.Millisecond))
		return nil
	}),
}

func init() {
	exportCmd.Flags().StringVarP(&exportFile, "out", "o", "var/products.json", "Destination file")
	rootCmd.AddCommand(exportCmd)
}

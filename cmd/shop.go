package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"storefront/config"
	"storefront/tui"
)

var shopCmd = &cobra.Command{
	Use:   "shop",
	Short: "Browse the catalog and manage the cart in the terminal",
	RunE: withApp(func(cmd *cobra.Command, args []string, app *config.App) error {
		p := tea.NewProgram(tui.New(cmd.Context(), app.Storefront), tea.WithAltScreen(), tea.WithContext(cmd.Context()))
		_, err := p.Run()
		return err
	}),
}

func init() {
	rootCmd.AddCommand(shopCmd)
}

package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"storefront/config"
	"storefront/core/money"
	productEntity "storefront/model/entity/product"
	"storefront/store/filter"
)

var (
	listSearch   string
	listBrand    string
	listModel    string
	listCategory string
	listSort     string
	listPage     int
)

var catalogListCmd = &cobra.Command{
	Use:   "catalog:list",
	Short: "Fetch the catalog and print one page of products",
	RunE: withApp(func(cmd *cobra.Command, args []string, app *config.App) error {
		sf := app.Storefront
		if err := sf.Fetch(cmd.Context()); err != nil {
			return err
		}
		if listSort != "" {
			if _, err := sf.ApplySortPreset(listSort); err != nil {
				return err
			}
		}
		sf.UpdateFilters(func(f *filter.State) {
			f.SetBrand(listBrand)
			f.SetModel(listModel)
			f.SetCategory(listCategory)
		})
		sf.SetSearchQuery(listSearch)
		sf.SetCurrentPage(listPage)

		page := sf.Page()
		out := cmd.OutOrStdout()
		printProducts(out, money.NewFormatter(sf.Locale()), page.Items)
		fmt.Fprintf(out, "Page %d/%d, %d product(s)\n", page.CurrentPage, page.TotalPages, page.TotalItems)
		return nil
	}),
}

var productShowCmd = &cobra.Command{
	Use:   "product:show <id>",
	Short: "Print one product",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(cmd *cobra.Command, args []string, app *config.App) error {
		sf := app.Storefront
		if err := sf.Fetch(cmd.Context()); err != nil {
			return err
		}
		p, err := sf.Product(args[0])
		if err != nil {
			return err
		}
		f := money.NewFormatter(sf.Locale())
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, lipgloss.NewStyle().Bold(true).Render(p.Name))
		fmt.Fprintf(out, "Price:    %s\nBrand:    %s\nModel:    %s\nCategory: %s\nImage:    %s\n\n%s\n",
			f.Price(p.Price), p.Brand, p.Model, p.Category, p.Image, p.Description)
		return nil
	}),
}

func printProducts(w io.Writer, f *money.Formatter, items []productEntity.Product) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "NAME", "BRAND", "MODEL", "PRICE")
	for _, p := range items {
		t.Row(p.ID, p.Name, p.Brand, p.Model, f.Price(p.Price))
	}
	fmt.Fprintln(w, t.Render())
}

func init() {
	catalogListCmd.Flags().StringVarP(&listSearch, "search", "s", "", "Free-text search over name, brand, model and description")
	catalogListCmd.Flags().StringVar(&listBrand, "brand", "", "Only this brand")
	catalogListCmd.Flags().StringVar(&listModel, "model", "", "Only this model")
	catalogListCmd.Flags().StringVar(&listCategory, "category", "", "Only this category")
	catalogListCmd.Flags().StringVar(&listSort, "sort", "", "Sort preset: old-to-new, new-to-old, price-desc, price-asc")
	catalogListCmd.Flags().IntVarP(&listPage, "page", "p", 1, "Page number")
	rootCmd.AddCommand(catalogListCmd, productShowCmd)
}

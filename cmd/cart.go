package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"storefront/config"
	"storefront/core/money"
	"storefront/store/cart"
)

func printCart(w io.Writer, f *money.Formatter, c cart.State) {
	if len(c.Items) == 0 {
		fmt.Fprintln(w, "Cart is empty.")
		return
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "NAME", "PRICE", "QTY", "SUBTOTAL")
	for _, l := range c.Items {
		t.Row(l.ID, l.Name, f.Price(l.Price), strconv.Itoa(l.Quantity), f.Price(l.Subtotal()))
	}
	fmt.Fprintln(w, t.Render())
	fmt.Fprintf(w, "Total: %s (%d item(s))\n", f.Price(c.Total), c.Count())
}

// cartCommand prints the cart after run, including when run reports a failed save.
func cartCommand(use, short string, args cobra.PositionalArgs, run func(cmd *cobra.Command, args []string, app *config.App) (cart.State, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  args,
		RunE: withApp(func(cmd *cobra.Command, a []string, app *config.App) error {
			state, err := run(cmd, a, app)
			printCart(cmd.OutOrStdout(), money.NewFormatter(app.Storefront.Locale()), state)
			return err
		}),
	}
}

var cartShowCmd = cartCommand("cart:show", "Print the persisted cart", cobra.NoArgs,
	func(cmd *cobra.Command, args []string, app *config.App) (cart.State, error) {
		return app.Storefront.Cart(), nil
	})

var cartAddCmd = cartCommand("cart:add <id>", "Add one unit of a catalog product", cobra.ExactArgs(1),
	func(cmd *cobra.Command, args []string, app *config.App) (cart.State, error) {
		if err := app.Storefront.Fetch(cmd.Context()); err != nil {
			return app.Storefront.Cart(), err
		}
		return app.Storefront.AddToCart(cmd.Context(), args[0])
	})

var cartUpdateCmd = cartCommand("cart:update <id> <quantity>", "Set a line's quantity; 0 or less removes it", cobra.ExactArgs(2),
	func(cmd *cobra.Command, args []string, app *config.App) (cart.State, error) {
		q, err := strconv.Atoi(args[1])
		if err != nil {
			return app.Storefront.Cart(), fmt.Errorf("invalid quantity %q: %w", args[1], err)
		}
		return app.Storefront.UpdateQuantity(cmd.Context(), args[0], q)
	})

var cartRemoveCmd = cartCommand("cart:remove <id>", "Remove a line", cobra.ExactArgs(1),
	func(cmd *cobra.Command, args []string, app *config.App) (cart.State, error) {
		return app.Storefront.RemoveFromCart(cmd.Context(), args[0])
	})

var cartClearCmd = cartCommand("cart:clear", "Empty the cart", cobra.NoArgs,
	func(cmd *cobra.Command, args []string, app *config.App) (cart.State, error) {
		return app.Storefront.ClearCart(cmd.Context())
	})

func init() {
	rootCmd.AddCommand(cartShowCmd, cartAddCmd, cartUpdateCmd, cartRemoveCmd, cartClearCmd)
}

package custom

import (
	"context"
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"storefront/api"
	"storefront/cmd"
	"storefront/cron"
	"storefront/cron/jobs"
	gqlregistry "storefront/graphql/registry"
)

func init() {
	// GraphQL extension
	gqlregistry.Register("ping", func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		return map[string]string{"pong": "ok"}, nil
	})

	// CLI command
	cmd.Register(&cobra.Command{
		Use:   "custom:hello",
		Short: "Custom command example",
		Run: func(c *cobra.Command, args []string) {
			fmt.Fprintln(c.OutOrStdout(), "Hello from custom command")
		},
	})

	// Cron job
	cron.Register("customping", "@every 1m", func(ctx context.Context, env jobs.Env, args ...string) error {
		if env.Logger != nil {
			env.Logger.Info("custom cron ping", zap.Strings("args", args))
		}
		return nil
	})

	// HTTP route
	api.RegisterGET("/custom/ping", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"pong": "ok"})
	})
}

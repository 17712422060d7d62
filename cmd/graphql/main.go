// Standalone GraphQL server. Run with: go run ./cmd/graphql
package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"

	"github.com/common-nighthawk/go-figure"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"storefront/api"
	_ "storefront/api/graphql"
	"storefront/config"
)

func main() {
	config.LoadEnv()
	config.LoadAppConfig()
	cfg := config.AppConfig

	app, err := config.NewApp(context.Background(), cfg)
	if err != nil {
		log.Fatal("app:", err)
	}
	defer app.Close()

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	api.ApplyRoutes(e, app.Storefront)

	if err := app.Storefront.RequestFetch(); err != nil {
		app.Logger.Warn("initial catalog fetch not started", zap.Error(err))
	}

	gqlFonts := []string{"banner", "big", "block", "slant", "standard", "small", "shadow", "speed", "doom", "puffy"}
	fig := figure.NewFigure(cfg.AppName+" GQL", gqlFonts[rand.Intn(len(gqlFonts))], true)
	fig.Print()
	fmt.Println("Standalone GraphQL server")

	log.Printf("GraphQL at http://localhost:%s/graphql  Playground at http://localhost:%s/playground", cfg.Port, cfg.Port)
	if err := e.Start(":" + cfg.Port); err != nil {
		app.Logger.Error("server stopped", zap.Error(err))
	}
}

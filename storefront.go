//go:build !cli
// +build !cli

package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"storefront/api"
	_ "storefront/api/graphql"
	_ "storefront/api/realtime"
	_ "storefront/api/storefront"
	"storefront/config"
	"storefront/core/registry"
	"storefront/cron"
	_ "storefront/custom"
	_ "storefront/html"
)

const shutdownTimeout = 10 * time.Second

// requestDuration stamps X-Request-Duration-ms from the per-request registry.
func requestDuration(logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			reg := registry.NewRequestRegistry()
			c.Set("registry", reg)
			c.Response().Before(func() {
				c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(reg.Elapsed().Milliseconds(), 10))
			})
			err := next(c)
			logger.Debug("request",
				zap.String("path", c.Path()),
				zap.Int("status", c.Response().Status),
				zap.Duration("duration", reg.Elapsed()))
			return err
		}
	}
}

func main() {
	config.LoadEnv()
	config.LoadAppConfig()
	cfg := config.AppConfig

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := config.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to start: %v", err)
	}
	defer app.Close()
	logger := app.Logger

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.Gzip())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return uuid.NewString() },
	}))
	e.Use(requestDuration(logger))

	apiGroup := e.Group("/api")
	api.ApplyModules(apiGroup, app.Storefront)
	api.ApplyRoutes(e, app.Storefront)

	if err := app.Storefront.RequestFetch(); err != nil {
		logger.Warn("initial catalog fetch not started", zap.Error(err))
	}

	fonts := []string{"banner", "big", "block", "slant", "standard", "small", "doom", "larry3d", "puffy"}
	figure.NewFigure(cfg.AppName, fonts[rand.Intn(len(fonts))], true).Print()
	fmt.Println()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server running", zap.String("port", cfg.Port))
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		s, err := cron.StartCron(gctx, cfg, app.JobEnv())
		if err != nil {
			return err
		}
		<-gctx.Done()
		<-s.Stop().Done()
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server stopped", zap.Error(err))
	}
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/cwi-systems/website/internal/api"
	"github.com/cwi-systems/website/internal/config"
	internalsecrets "github.com/cwi-systems/website/internal/secrets"
	"github.com/cwi-systems/website/pkg/logger"
	"github.com/cwi-systems/website/pkg/secrets"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Load configuration ---
	cfg := config.Load()

	logger.Init(cfg.ServiceName, cfg.Env, cfg.LogLevel)
	defer logger.Sync()
	logg := logger.S()
	logg.Infof("starting [%s]...", cfg.ServiceName)

	// --- Secret bootstrap (best-effort, before serving) ---
	factory := &secrets.DefaultFactory{Region: cfg.AWSRegion}
	loader := internalsecrets.NewLoader(
		logg.Desugar(),
		secrets.NewAWSProvider(factory),
		secrets.NewAzureProvider(factory),
	)
	res := loader.Load(ctx, cfg.Settings)
	if res.Err != nil {
		logg.Warnw("secret bootstrap incomplete",
			"provider", string(res.Provider),
			"merged", res.Merged,
			"error", res.Err)
	} else if res.Merged > 0 {
		logg.Infow("secret bootstrap complete",
			"provider", string(res.Provider),
			"merged", res.Merged)
	}

	// --- Fiber HTTP server ---
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
		BodyLimit:    cfg.HTTPBodyLimit,
	})
	app.Use(requestid.New(requestid.Config{
		Generator: func() string { return uuid.NewString() },
	}))

	handler := api.NewSiteHandler(logg.Desugar(), cfg.ServiceName)
	api.RegisterRoutes(app, handler)

	go func() {
		logg.Infof("HTTP listening on :%d", cfg.Port)
		if err := app.Listen(fmt.Sprintf(":%d", cfg.Port)); err != nil {
			logg.Fatalw("fiber.listen_failed", "error", err)
		}
	}()

	<-ctx.Done()
	logg.Infof("shutting down [%s]...", cfg.ServiceName)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logg.Warnw("fiber.shutdown_failed", "error", err)
	}
}

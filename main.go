package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Black-And-White-Club/dxwager/app"
	"github.com/Black-And-White-Club/dxwager/app/shared/observability"
	"github.com/Black-And-White-Club/dxwager/config"
	"github.com/Black-And-White-Club/dxwager/db/migrations"
)

func main() {
	configFile := flag.String("config", "config.yaml", "Path to the configuration file")
	migrate := flag.Bool("migrate", false, "Apply pending migrations before serving")
	flag.Parse()

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := observability.NewLogger(os.Stdout, cfg.Observability.LogLevel, cfg.Observability.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, err := app.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}
	defer func() {
		if err := application.Close(); err != nil {
			logger.Error("Error closing database connection", "error", err)
		}
	}()

	if *migrate {
		if err := migrations.Up(ctx, application.DB.GetDB(), logger); err != nil {
			logger.Error("Migrations failed", "error", err)
			return
		}
	}

	if err := application.Run(ctx); err != nil {
		logger.Error("Server stopped with error", "error", err)
		return
	}
	logger.Info("Application shut down gracefully")
}

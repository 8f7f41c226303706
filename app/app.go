package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/uptrace/bun"

	"github.com/Black-And-White-Club/dxwager/app/modules/access"
	"github.com/Black-And-White-Club/dxwager/app/modules/auth"
	"github.com/Black-And-White-Club/dxwager/app/modules/calibration"
	"github.com/Black-And-White-Club/dxwager/app/modules/cases"
	"github.com/Black-And-White-Club/dxwager/app/modules/feed"
	"github.com/Black-And-White-Club/dxwager/app/modules/user"
	"github.com/Black-And-White-Club/dxwager/app/shared/clock"
	"github.com/Black-And-White-Club/dxwager/app/shared/observability"
	"github.com/Black-And-White-Club/dxwager/app/shared/observability/metrics"
	"github.com/Black-And-White-Club/dxwager/config"
	"github.com/Black-And-White-Club/dxwager/db/bundb"
)

// App holds the process-wide dependencies and the HTTP surface built on them.
type App struct {
	Config   *config.Config
	Logger   *slog.Logger
	DB       *bundb.DBService
	Registry *prometheus.Registry

	UserModule        *user.Module
	AuthModule        *auth.Module
	AccessModule      *access.Module
	CasesModule       *cases.Module
	CalibrationModule *calibration.Module
	FeedModule        *feed.Module

	handler http.Handler
}

// NewApp opens the database and builds every module.
func NewApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	dbService, err := bundb.NewBunDBService(ctx, cfg.Postgres, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database service: %w", err)
	}

	app, err := NewWithDB(ctx, cfg, logger, dbService, clock.RealClock{})
	if err != nil {
		dbService.Close()
		return nil, err
	}
	return app, nil
}

// NewWithDB builds every module on an already opened database.
func NewWithDB(ctx context.Context, cfg *config.Config, logger *slog.Logger, dbService *bundb.DBService, c clock.Clock) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	app := &App{
		Config:   cfg,
		Logger:   logger,
		DB:       dbService,
		Registry: registry,
	}

	obs := observability.Observability{
		Logger:  logger,
		Metrics: metrics.NewPrometheusMetrics(registry, "dxwager"),
	}

	router := app.newRouter()
	if err := app.initializeModules(ctx, obs, dbService.GetDB(), c, router); err != nil {
		return nil, err
	}
	app.handler = router

	return app, nil
}

// initializeModules builds the modules in dependency order. The user module
// registers its routes before the auth module exists, so requireAuth resolves
// the auth middleware per request.
func (app *App) initializeModules(ctx context.Context, obs observability.Observability, db *bun.DB, c clock.Clock, router chi.Router) error {
	requireAuth := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			app.AuthModule.RequireAuth(next).ServeHTTP(w, r)
		})
	}

	userModule, err := user.NewModule(ctx, obs, db, router, requireAuth)
	if err != nil {
		return fmt.Errorf("failed to initialize user module: %w", err)
	}
	app.UserModule = userModule

	authModule, err := auth.NewModule(ctx, app.Config, obs, userModule.Service(), router)
	if err != nil {
		return fmt.Errorf("failed to initialize auth module: %w", err)
	}
	app.AuthModule = authModule

	accessModule, err := access.NewModule(ctx, obs, db)
	if err != nil {
		return fmt.Errorf("failed to initialize access module: %w", err)
	}
	app.AccessModule = accessModule

	casesModule, err := cases.NewModule(ctx, obs, db, accessModule.Guard(), c, router, requireAuth)
	if err != nil {
		return fmt.Errorf("failed to initialize cases module: %w", err)
	}
	app.CasesModule = casesModule

	calibrationModule, err := calibration.NewModule(ctx, obs, db, router, requireAuth)
	if err != nil {
		return fmt.Errorf("failed to initialize calibration module: %w", err)
	}
	app.CalibrationModule = calibrationModule

	feedModule, err := feed.NewModule(ctx, obs, app.Config.Feed, db, c, router, requireAuth)
	if err != nil {
		return fmt.Errorf("failed to initialize feed module: %w", err)
	}
	app.FeedModule = feedModule

	return nil
}

// Handler returns the root HTTP handler.
func (app *App) Handler() http.Handler {
	return app.handler
}

// Close releases the database pool.
func (app *App) Close() error {
	return app.DB.Close()
}

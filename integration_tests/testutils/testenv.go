package testutils

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/uptrace/bun"

	"github.com/Black-And-White-Club/dxwager/app/shared/observability"
	"github.com/Black-And-White-Club/dxwager/config"
	"github.com/Black-And-White-Club/dxwager/db/bundb"
	"github.com/Black-And-White-Club/dxwager/integration_tests/containers"
)

// TestEnvironment holds the Postgres container and connections shared by a test package.
type TestEnvironment struct {
	Ctx           context.Context
	CancelContext context.CancelFunc
	PgContainer   *postgres.PostgresContainer
	DB            *bun.DB
	DBService     *bundb.DBService
	Config        *config.Config
	Obs           observability.Observability
}

// NewTestEnvironment starts Postgres and applies every module's migrations.
func NewTestEnvironment() (*TestEnvironment, error) {
	ctx, cancel := context.WithCancel(context.Background())

	pgContainer, pgConnStr, err := containers.SetupPostgresContainer(ctx)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to setup postgres container: %w", err)
	}

	sqlDB, err := sql.Open("pgx", pgConnStr)
	if err != nil {
		pgContainer.Terminate(ctx)
		cancel()
		return nil, fmt.Errorf("failed to open sql DB connection: %w", err)
	}
	db := bundb.BunDB(sqlDB)

	if err := runMigrations(ctx, db); err != nil {
		db.Close()
		pgContainer.Terminate(ctx)
		cancel()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &TestEnvironment{
		Ctx:           ctx,
		CancelContext: cancel,
		PgContainer:   pgContainer,
		DB:            db,
		DBService:     bundb.NewTestDBService(db),
		Config: &config.Config{
			Postgres:      config.PostgresConfig{DSN: pgConnStr},
			JWT:           config.JWTConfig{Secret: "integration-secret", DefaultTTL: time.Hour},
			Feed:          config.FeedConfig{DefaultLimit: 10, MaxLimit: 100},
			Observability: config.ObservabilityConfig{Environment: "test"},
		},
		Obs: observability.Observability{
			Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
			Metrics: observability.NewNoop().Metrics,
		},
	}, nil
}

// Reset empties every table between tests.
func (env *TestEnvironment) Reset() error {
	return CleanAllIntegrationTables(env.Ctx, env.DB)
}

// Cleanup tears down all resources created for testing.
func (env *TestEnvironment) Cleanup() {
	if env.CancelContext != nil {
		env.CancelContext()
	}
	if env.DB != nil {
		env.DB.Close()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if env.PgContainer != nil {
		if err := env.PgContainer.Terminate(ctx); err != nil {
			log.Printf("Error terminating Postgres container: %v", err)
		}
	}
}

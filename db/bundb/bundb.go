// db/bundb/bundb.go
package bundb

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/Black-And-White-Club/dxwager/config"
)

// DBService owns the process-wide connection pool. It is opened once at
// startup and closed on shutdown.
type DBService struct {
	db *bun.DB
}

// GetDB returns the underlying database connection pool.
func (s *DBService) GetDB() *bun.DB {
	return s.db
}

// NewBunDBService opens and pings a pool for the given Postgres configuration.
func NewBunDBService(ctx context.Context, cfg config.PostgresConfig, logger *slog.Logger) (*DBService, error) {
	if logger == nil {
		logger = slog.Default()
	}

	opts := []pgdriver.Option{pgdriver.WithDSN(cfg.DSN)}
	if cfg.QueryTimeout > 0 {
		opts = append(opts,
			pgdriver.WithReadTimeout(cfg.QueryTimeout),
			pgdriver.WithWriteTimeout(cfg.QueryTimeout),
		)
	}

	sqldb := sql.OpenDB(pgdriver.NewConnector(opts...))
	if cfg.MaxOpenConns > 0 {
		sqldb.SetMaxOpenConns(cfg.MaxOpenConns)
		sqldb.SetMaxIdleConns(cfg.MaxOpenConns)
	}
	sqldb.SetConnMaxIdleTime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := sqldb.PingContext(pingCtx); err != nil {
		sqldb.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.InfoContext(ctx, "Database connection established", slog.Int("max_open_conns", cfg.MaxOpenConns))

	return &DBService{db: BunDB(sqldb)}, nil
}

// NewTestDBService wraps an already opened bun.DB.
func NewTestDBService(db *bun.DB) *DBService {
	return &DBService{db: db}
}

// BunDB returns a new bun.DB for given sql.DB connection pool.
func BunDB(sqldb *sql.DB) *bun.DB {
	return bun.NewDB(sqldb, pgdialect.New())
}

// Close releases the pool.
func (s *DBService) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

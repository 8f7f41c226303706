package testutils

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/uptrace/bun"

	"github.com/Black-And-White-Club/dxwager/db/migrations"
)

func runMigrations(ctx context.Context, db *bun.DB) error {
	return migrations.Up(ctx, db, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// TruncateTables truncates the specified tables.
func TruncateTables(ctx context.Context, db *bun.DB, tables ...string) error {
	if len(tables) == 0 {
		return nil
	}

	quoted := make([]string, len(tables))
	for i, table := range tables {
		quoted[i] = fmt.Sprintf(`"%s"`, table)
	}
	query := "TRUNCATE TABLE " + strings.Join(quoted, ", ") + " CASCADE"
	if _, err := db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to truncate tables %v: %w", tables, err)
	}
	return nil
}

// CleanAllIntegrationTables truncates every application table.
func CleanAllIntegrationTables(ctx context.Context, db *bun.DB) error {
	return TruncateTables(ctx, db,
		"tags", "comments", "judgements", "wagers", "diagnoses", "cases",
		"memberships", "groups", "users",
	)
}

// CountRows returns the number of rows in table.
func CountRows(ctx context.Context, db bun.IDB, table string) (int, error) {
	return db.NewSelect().TableExpr(table).Count(ctx)
}

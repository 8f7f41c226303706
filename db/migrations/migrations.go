// Package migrations lists every module's schema migrations in dependency order.
package migrations

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"

	casemigrations "github.com/Black-And-White-Club/dxwager/app/modules/cases/infrastructure/repositories/migrations"
	usermigrations "github.com/Black-And-White-Club/dxwager/app/modules/user/infrastructure/repositories/migrations"
)

// Module pairs a module name with its migrator.
type Module struct {
	Name     string
	Migrator *migrate.Migrator
}

// Migrators returns one migrator per module. Cases reference users and
// groups, so user comes first.
func Migrators(db *bun.DB) []Module {
	return []Module{
		{Name: "user", Migrator: migrate.NewMigrator(db, usermigrations.Migrations)},
		{Name: "cases", Migrator: migrate.NewMigrator(db, casemigrations.Migrations)},
	}
}

// Lookup returns the named module's migrator.
func Lookup(modules []Module, name string) (*migrate.Migrator, bool) {
	for _, m := range modules {
		if m.Name == name {
			return m.Migrator, true
		}
	}
	return nil, false
}

// Up initialises the migration tables and applies every pending migration.
func Up(ctx context.Context, db *bun.DB, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	for _, m := range Migrators(db) {
		if err := m.Migrator.Init(ctx); err != nil {
			return fmt.Errorf("migrations.Up: init %s: %w", m.Name, err)
		}
		group, err := m.Migrator.Migrate(ctx)
		if err != nil {
			return fmt.Errorf("migrations.Up: migrate %s: %w", m.Name, err)
		}
		if group.IsZero() {
			logger.InfoContext(ctx, "No new migrations", slog.String("module", m.Name))
			continue
		}
		logger.InfoContext(ctx, "Migrated module", slog.String("module", m.Name), slog.String("group", group.String()))
	}
	return nil
}

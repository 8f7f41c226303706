package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"
	"github.com/urfave/cli/v2"

	"github.com/Black-And-White-Club/dxwager/app/modules/access"
	"github.com/Black-And-White-Club/dxwager/app/modules/cases"
	caseparsers "github.com/Black-And-White-Club/dxwager/app/modules/cases/infrastructure/parsers"
	"github.com/Black-And-White-Club/dxwager/app/shared/clock"
	"github.com/Black-And-White-Club/dxwager/app/shared/observability"
	"github.com/Black-And-White-Club/dxwager/config"
	"github.com/Black-And-White-Club/dxwager/db/bundb"
	"github.com/Black-And-White-Club/dxwager/db/migrations"
)

func main() {
	var dbService *bundb.DBService

	cliApp := &cli.App{
		Name:  "bun",
		Usage: "dxwager database and data tooling",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Value: "config.yaml",
				Usage: "path to the configuration file",
			},
		},
		Before: func(c *cli.Context) error {
			cfg, err := config.LoadConfig(c.String("config"))
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			logger := observability.NewLogger(os.Stderr, cfg.Observability.LogLevel, cfg.Observability.LogFormat)
			dbService, err = bundb.NewBunDBService(c.Context, cfg.Postgres, logger)
			return err
		},
		After: func(c *cli.Context) error {
			return dbService.Close()
		},
		Commands: []*cli.Command{
			newDBCommand(func() *bun.DB { return dbService.GetDB() }),
			newCasesCommand(func() *bun.DB { return dbService.GetDB() }),
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newDBCommand(dbFn func() *bun.DB) *cli.Command {
	return &cli.Command{
		Name:  "db",
		Usage: "database migrations",
		Subcommands: []*cli.Command{
			{
				Name:  "init",
				Usage: "create migration tables",
				Action: func(c *cli.Context) error {
					for _, m := range migrations.Migrators(dbFn()) {
						fmt.Printf("Initializing migrations for module: %s\n", m.Name)
						if err := m.Migrator.Init(c.Context); err != nil {
							return fmt.Errorf("init %s: %w", m.Name, err)
						}
					}
					return nil
				},
			},
			{
				Name:  "migrate",
				Usage: "migrate database",
				Action: func(c *cli.Context) error {
					for _, m := range migrations.Migrators(dbFn()) {
						fmt.Printf("Running migrations for module: %s\n", m.Name)
						group, err := m.Migrator.Migrate(c.Context)
						if err != nil {
							return err
						}
						if group.IsZero() {
							fmt.Printf("No new migrations to run for module: %s\n", m.Name)
						} else {
							fmt.Printf("Migrated module: %s to %s\n", m.Name, group)
						}
					}
					return nil
				},
			},
			{
				Name:  "rollback",
				Usage: "rollback the last migration group of each module, newest module first",
				Action: func(c *cli.Context) error {
					modules := migrations.Migrators(dbFn())
					for i := len(modules) - 1; i >= 0; i-- {
						m := modules[i]
						fmt.Printf("Rolling back migrations for module: %s\n", m.Name)
						group, err := m.Migrator.Rollback(c.Context)
						if err != nil {
							return err
						}
						if group.IsZero() {
							fmt.Printf("No groups to roll back for module: %s\n", m.Name)
						} else {
							fmt.Printf("Rolled back module: %s to %s\n", m.Name, group)
						}
					}
					return nil
				},
			},
			{
				Name:      "create_go",
				Usage:     "create Go migration",
				ArgsUsage: "<module> <name...>",
				Action: func(c *cli.Context) error {
					migrator, err := lookup(dbFn(), c.Args().First())
					if err != nil {
						return err
					}
					mf, err := migrator.CreateGoMigration(c.Context, strings.Join(c.Args().Tail(), "_"))
					if err != nil {
						return err
					}
					fmt.Printf("Created migration for module %s: %s (%s)\n", c.Args().First(), mf.Name, mf.Path)
					return nil
				},
			},
			{
				Name:  "status",
				Usage: "print migrations status",
				Action: func(c *cli.Context) error {
					for _, m := range migrations.Migrators(dbFn()) {
						ms, err := m.Migrator.MigrationsWithStatus(c.Context)
						if err != nil {
							return err
						}
						fmt.Printf("Migrations for module: %s\n", m.Name)
						fmt.Printf("  %s\n", ms)
						fmt.Printf("  Applied: %s\n", ms.Applied())
						fmt.Printf("  Unapplied: %s\n", ms.Unapplied())
					}
					return nil
				},
			},
		},
	}
}

func lookup(db *bun.DB, name string) (*migrate.Migrator, error) {
	migrator, ok := migrations.Lookup(migrations.Migrators(db), name)
	if !ok {
		return nil, fmt.Errorf("invalid module name: %s", name)
	}
	return migrator, nil
}

func newCasesCommand(dbFn func() *bun.DB) *cli.Command {
	return &cli.Command{
		Name:  "cases",
		Usage: "case data tooling",
		Subcommands: []*cli.Command{
			{
				Name:  "import",
				Usage: "import historical cases from a .json, .csv or .xlsx file",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "user", Required: true, Usage: "id of the user the cases belong to"},
					&cli.StringFlag{Name: "file", Required: true, Usage: "path to the import file"},
				},
				Action: func(c *cli.Context) error {
					userID, err := uuid.Parse(c.String("user"))
					if err != nil {
						return fmt.Errorf("invalid --user: %w", err)
					}

					path := c.String("file")
					parser, err := caseparsers.NewFactory().GetParser(path)
					if err != nil {
						return err
					}
					data, err := os.ReadFile(path)
					if err != nil {
						return fmt.Errorf("failed to read %s: %w", path, err)
					}
					records, err := parser.Parse(data)
					if err != nil {
						return err
					}

					db := dbFn()
					obs := observability.NewNoop()
					obs.Logger = observability.NewLogger(os.Stderr, "info", "text")

					accessModule, err := access.NewModule(c.Context, obs, db)
					if err != nil {
						return err
					}
					casesModule, err := cases.NewModule(c.Context, obs, db, accessModule.Guard(), clock.RealClock{}, nil, nil)
					if err != nil {
						return err
					}

					n, err := casesModule.Service().ImportCases(c.Context, userID, records)
					if err != nil {
						return err
					}
					fmt.Printf("Imported %d cases for user %s\n", n, userID)
					return nil
				},
			},
		},
	}
}

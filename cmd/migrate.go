package main

import (
	"database/sql"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/m04kA/SMC-BarberShop/internal/config"
	"github.com/m04kA/SMC-BarberShop/migrations"
	"github.com/m04kA/SMC-BarberShop/pkg/migrator"
)

func runMigrateUp(c *cli.Context) error {
	return withMigrator(c, func(mg *migrator.Migrator) error {
		if err := mg.Up(); err != nil {
			return err
		}
		return printVersion(mg)
	})
}

func runMigrateDown(c *cli.Context) error {
	return withMigrator(c, func(mg *migrator.Migrator) error {
		if err := mg.Down(); err != nil {
			return err
		}
		return printVersion(mg)
	})
}

func runMigrateVersion(c *cli.Context) error {
	return withMigrator(c, printVersion)
}

func withMigrator(c *cli.Context, fn func(mg *migrator.Migrator) error) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}

	mg, err := openMigrator(cfg.Database)
	if err != nil {
		return err
	}
	defer mg.Close()

	return fn(mg)
}

// openMigrator открывает отдельное соединение: мигратор закрывает его в Close
func openMigrator(dbCfg config.DatabaseConfig) (*migrator.Migrator, error) {
	db, err := sql.Open("postgres", dbCfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	mg, err := migrator.New(db, migrations.FS)
	if err != nil {
		db.Close()
		return nil, err
	}
	return mg, nil
}

func printVersion(mg *migrator.Migrator) error {
	version, dirty, err := mg.Version()
	if err != nil {
		return err
	}
	fmt.Printf("schema version: %d (dirty=%t)\n", version, dirty)
	return nil
}

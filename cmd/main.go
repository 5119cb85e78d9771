package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

const defaultConfigPath = "config.toml"

func main() {
	configFlag := &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Value:   defaultConfigPath,
		Usage:   "path to TOML config (BARBER_* env vars override it)",
		EnvVars: []string{"BARBER_CONFIG"},
	}

	app := &cli.App{
		Name:  "barbershop",
		Usage: "single-chair barbershop appointment service",
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "start the HTTP API",
				Flags:  []cli.Flag{configFlag},
				Action: runServe,
			},
			{
				Name:  "migrate",
				Usage: "manage the database schema",
				Flags: []cli.Flag{configFlag},
				Subcommands: []*cli.Command{
					{Name: "up", Usage: "apply all pending migrations", Action: runMigrateUp},
					{Name: "down", Usage: "roll back the last migration", Action: runMigrateDown},
					{Name: "version", Usage: "print the current schema version", Action: runMigrateVersion},
				},
			},
		},
		DefaultCommand: "serve",
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "barbershop: %v\n", err)
		os.Exit(1)
	}
}

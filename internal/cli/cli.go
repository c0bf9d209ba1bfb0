// Package cli defines the barcost command tree.
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/backbar/barcost/internal/config"
	"github.com/backbar/barcost/internal/logger"
	"github.com/backbar/barcost/internal/snapshot"
)

var version = "dev"

// Run executes the barcost CLI.
func Run(ctx context.Context, args []string) error {
	cmd := &cli.Command{
		Name:    "barcost",
		Usage:   "Inventory and recipe cost tracker for the back bar",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "catalog",
				Usage: "Path to the inventory catalog CSV (overrides CATALOG_PATH)",
			},
			&cli.StringFlag{
				Name:  "recipes",
				Usage: "Path to the recipe book CSV (overrides RECIPES_PATH)",
			},
			&cli.StringFlag{
				Name:  "units",
				Usage: "Path to a YAML unit conversion override file (overrides UNITS_PATH)",
			},
		},
		Commands: []*cli.Command{
			costCmd(),
			stockCmd(),
			depleteCmd(),
			serveCmd(),
		},
	}
	return cmd.Run(ctx, args)
}

// setup loads env configuration, applies flag overrides, initializes
// logging and loads the initial data snapshot.
func setup(cmd *cli.Command) (*config.Config, *snapshot.Snapshot, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if v := cmd.String("catalog"); v != "" {
		cfg.CatalogPath = v
	}
	if v := cmd.String("recipes"); v != "" {
		cfg.RecipesPath = v
	}
	if v := cmd.String("units"); v != "" {
		cfg.UnitsPath = v
	}

	logger.Init(logger.Config{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		ServiceName: "barcost",
		Version:     version,
		AddSource:   cfg.Environment == "dev",
	})

	snap, err := snapshot.Load(cfg.CatalogPath, cfg.RecipesPath, cfg.UnitsPath)
	if err != nil {
		return nil, nil, err
	}

	warnSkipped(snap)
	return cfg, snap, nil
}

func warnSkipped(snap *snapshot.Snapshot) {
	for _, rowErr := range snap.CatalogReport.Skipped {
		fmt.Printf("warning: catalog row %d skipped: %s\n", rowErr.Row, rowErr.Reason)
	}
	for _, rowErr := range snap.BookReport.Skipped {
		fmt.Printf("warning: recipe row %d skipped: %s\n", rowErr.Row, rowErr.Reason)
	}
}

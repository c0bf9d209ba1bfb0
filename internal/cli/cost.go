package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/backbar/barcost/internal/costing"
	"github.com/backbar/barcost/internal/domain"
	"github.com/backbar/barcost/internal/report"
)

func costCmd() *cli.Command {
	return &cli.Command{
		Name:  "cost",
		Usage: "Compute recipe costs against the inventory catalog",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "recipe",
				Aliases: []string{"r"},
				Usage:   "Cost a single recipe by name (default: all recipes)",
			},
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "Write the report as CSV to this path instead of printing",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, snap, err := setup(cmd)
			if err != nil {
				return err
			}

			var reports []*domain.RecipeCostReport
			if name := cmd.String("recipe"); name != "" {
				recipe, ok := snap.Book.Lookup(name)
				if !ok {
					return fmt.Errorf("%w: %s", domain.ErrRecipeNotFound, name)
				}
				reports = append(reports, costing.ResolveRecipeCost(recipe, snap.Catalog, snap.Table))
			} else {
				reports = costing.ResolveAll(snap.Book, snap.Catalog, snap.Table)
			}

			if out := cmd.String("out"); out != "" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("failed to create %s: %w", out, err)
				}
				defer f.Close()
				return report.WriteCostCSV(f, reports)
			}

			renderer := report.NewRenderer(cfg.Locale, "")
			renderer.CostReports(os.Stdout, reports)
			return nil
		},
	}
}

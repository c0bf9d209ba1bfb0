package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/backbar/barcost/internal/catalog"
	"github.com/backbar/barcost/internal/depletion"
	"github.com/backbar/barcost/internal/report"
)

func depleteCmd() *cli.Command {
	return &cli.Command{
		Name:  "deplete",
		Usage: "Apply a sales export to the inventory catalog",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "sales",
				Aliases:  []string{"s"},
				Usage:    "Path to the sales CSV export",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "write",
				Usage: "Write the depleted stock levels back to the catalog CSV",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, snap, err := setup(cmd)
			if err != nil {
				return err
			}

			sales, err := depletion.ReadSalesFile(cmd.String("sales"))
			if err != nil {
				return err
			}

			rep, next, err := depletion.Apply(ctx, sales, snap.Book, snap.Catalog, snap.Table)
			if err != nil {
				return err
			}

			renderer := report.NewRenderer(cfg.Locale, "")
			renderer.DepletionReport(os.Stdout, rep)

			if cmd.Bool("write") {
				if err := catalog.WriteFile(cfg.CatalogPath, next); err != nil {
					return err
				}
				fmt.Printf("catalog saved to %s\n", cfg.CatalogPath)
			}
			return nil
		},
	}
}

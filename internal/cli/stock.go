package cli

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/backbar/barcost/internal/report"
)

func stockCmd() *cli.Command {
	return &cli.Command{
		Name:  "stock",
		Usage: "Show the catalog summary and low-stock items",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, snap, err := setup(cmd)
			if err != nil {
				return err
			}
			renderer := report.NewRenderer(cfg.Locale, "")
			renderer.StockSummary(os.Stdout, snap.Catalog)
			return nil
		},
	}
}

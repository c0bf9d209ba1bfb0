package cli

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/backbar/barcost/internal/costing"
	"github.com/backbar/barcost/internal/logger"
	"github.com/backbar/barcost/internal/server"
	"github.com/backbar/barcost/internal/snapshot"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the costing API over HTTP",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "port",
				Usage: "Listen port (overrides PORT)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, snap, err := setup(cmd)
			if err != nil {
				return err
			}
			if p := cmd.Int("port"); p != 0 {
				cfg.Port = int(p)
			}

			resolver, err := costing.NewResolver(cfg.CacheSize)
			if err != nil {
				return err
			}

			store := snapshot.NewStore(snap)
			load := func() (*snapshot.Snapshot, error) {
				return snapshot.Load(cfg.CatalogPath, cfg.RecipesPath, cfg.UnitsPath)
			}

			srv := server.New(cfg.Port, store, resolver, load)

			ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			log := logger.FromContext(ctx)
			log.Info("Shutting down")

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Stop(shutdownCtx)
		},
	}
}

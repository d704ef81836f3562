package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"movefunnel/internal/app"
	"movefunnel/internal/server"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the funnel HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := app.NewWire(cfg)
			if err != nil {
				return err
			}
			defer w.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := server.New(server.Config{
				Addr:         cfg.Server.Addr,
				CORSOrigins:  cfg.Server.CORSOrigins,
				ReadTimeout:  cfg.Server.ReadTimeout,
				WriteTimeout: cfg.Server.WriteTimeout,
				Debug:        cfg.Server.Debug,
			}, server.Deps{
				Sessions:  w.Sessions,
				Assistant: w.Assistant,
				Insight:   w.Insight,
				Scanner:   w.Scanner,
				Ticker:    w.Ticker,
				Log:       w.Log,
				Metrics:   w.Metrics,
			})

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error { return srv.ListenAndServe(gctx) })
			g.Go(func() error {
				<-gctx.Done()
				if ctx.Err() != nil {
					w.Log.Info("shutdown requested")
				}
				return nil
			})
			return g.Wait()
		},
	}
}

package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/hashicorp/go-metrics"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	scene "github.com/grindlemire/go-scene"
	"github.com/grindlemire/go-scene/internal/inspect"
)

func (c *cli) serveCommand() *cobra.Command {
	var (
		addr     string
		interval time.Duration
	)
	cmd := &cobra.Command{
		Use:   "serve [file]",
		Short: "Run a scene file and serve the inspector over HTTP",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := c.build(args[0])
			if err != nil {
				return err
			}

			sink := metrics.NewInmemSink(interval, 6*interval)
			cfg := metrics.DefaultConfig("scene")
			cfg.EnableHostname = false
			cfg.EnableServiceLabel = false
			if _, err := metrics.NewGlobal(cfg, sink); err != nil {
				return err
			}
			b.Scene.AddWatcher(scene.OnTimer(interval, func() {
				metrics.SetGauge([]string{"scene", "nodes"}, float32(b.Scene.NodeCount()))
				metrics.SetGauge([]string{"scene", "pending"}, float32(b.Window.PendingCount()))
			}))

			srv := &http.Server{
				Addr:              addr,
				Handler:           inspect.New(b.Scene, inspect.WithMetrics(sink), inspect.WithLogger(c.logger)).Handler(),
				ReadHeaderTimeout: 5 * time.Second,
			}

			g, ctx := errgroup.WithContext(cmd.Context())
			g.Go(func() error {
				return b.Scene.Run(ctx)
			})
			g.Go(func() error {
				c.logger.Info("serving inspector", "addr", addr, "window", b.Window.Name())
				if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			})
			g.Go(func() error {
				<-ctx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				return srv.Shutdown(shutdownCtx)
			})
			return g.Wait()
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8080", "listen address")
	cmd.Flags().DurationVar(&interval, "metrics-interval", 10*time.Second, "metrics aggregation interval")
	return cmd
}

package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/telluric-labs/matfeas"
	httpAdapter "github.com/telluric-labs/matfeas/internal/adapters/http"
	"github.com/telluric-labs/matfeas/internal/logging"
	"github.com/telluric-labs/matfeas/internal/observability"
	"github.com/telluric-labs/matfeas/internal/presentation/tui"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the stateless HTTP server",
	Long:  `Starts the feasibility engine in stateless server mode, exposing a JSON API over HTTP with Prometheus metrics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		debug, _ := cmd.Flags().GetBool("debug")
		port, _ := cmd.Flags().GetString("port")
		quiet, _ := cmd.Flags().GetBool("quiet")

		// The server always logs; debug only raises verbosity.
		logger := logging.New(slog.LevelInfo)
		if debug {
			logger = logging.New(slog.LevelDebug)
		}

		registry := prometheus.NewRegistry()
		metrics := observability.New(registry)

		engine, err := buildEngine(cmd, logger, matfeas.WithHooks(metrics.Hooks()))
		if err != nil {
			return err
		}

		handler, err := httpAdapter.NewHandler(engine,
			httpAdapter.WithLogger(logger),
			httpAdapter.WithMetrics(registry),
		)
		if err != nil {
			return err
		}

		if !quiet {
			tui.PrintBanner()
		}

		srv := &http.Server{
			Addr:    ":" + port,
			Handler: handler,
		}

		serverErrors := make(chan error, 1)
		go func() {
			logger.Info("server listening", "addr", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			return fmt.Errorf("server error: %w", err)

		case sig := <-shutdown:
			logger.Info("shutting down", "signal", sig.String())

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				logger.Error("graceful shutdown did not complete", "err", err)
				if err := srv.Close(); err != nil {
					return fmt.Errorf("force close: %w", err)
				}
			}
			logger.Info("server stopped")
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	serveCmd.Flags().Bool("quiet", false, "Suppress the startup banner")
}

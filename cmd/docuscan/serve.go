package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/platinummonkey/docuscan/internal/logger"
	"github.com/platinummonkey/docuscan/internal/pipeline"
	"github.com/platinummonkey/docuscan/internal/server"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP scanning API",
	Long: `Run docuscan as a long-running HTTP service.

Endpoints:
  GET  /health       - liveness check
  POST /v1/scan      - run the pipeline on posted fragments
  POST /v1/validate  - check a single identifier
  GET  /v1/types     - list classifiable document types

The server shuts down gracefully on SIGTERM/SIGINT.

Examples:
  # Serve on the default address
  docuscan serve

  # Serve on a custom port with a stricter threshold
  docuscan serve --listen :9090 --confidence-threshold 0.9`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("listen", ":8080", "HTTP listen address")
	_ = viper.BindPFlag("listen-addr", serveCmd.Flags().Lookup("listen"))
}

func runServe(_ *cobra.Command, _ []string) error {
	log, err := logger.New(&logger.Config{
		Level:  viper.GetString("log-level"),
		Format: "json",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	scanner := pipeline.New(pipeline.Config{
		ConfidenceThreshold: cfg.ConfidenceThreshold,
	}, log)

	srv := server.New(cfg.ListenAddr, scanner, log)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-sigCh:
		log.WithFields("signal", sig.String()).Info("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}

	return nil
}

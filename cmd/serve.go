package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/dayooguns/tompri/pkg/api"
	"github.com/dayooguns/tompri/pkg/cli"
	"github.com/dayooguns/tompri/pkg/engine"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the prioritisation HTTP API",
	Long: `Serve exposes the engine over HTTP:

  GET  /healthz       liveness probe
  GET  /api/catalog   dimension catalog and criteria reference
  POST /api/rank      scores (+ optional weights) in, ranking out
  POST /api/weights   apply one weight edit with renormalization

The server holds no session state; every request is self-contained.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config, :8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := cli.LoadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("serve: %w", err)
	}

	addr := serveAddr
	if addr == "" {
		addr = cfg.Serve.Addr
	}

	eng := engine.New(engine.WithTierThresholds(cfg.Tiers.Thresholds()))
	server := api.NewServer(eng, slog.Default())

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           server.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("http server listening", "addr", addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
	case <-ctx.Done():
		slog.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("serve: shutdown: %w", err)
		}
	}

	return nil
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/weiawesome/zuid/internal/config"
	"github.com/weiawesome/zuid/internal/generator"
	"github.com/weiawesome/zuid/internal/handler"
	pkglog "github.com/weiawesome/zuid/pkg/log"
)

func newServeCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve id generation over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "./config", "directory containing config.yaml")
	return cmd
}

func serve(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := pkglog.Init(cfg.Log); err != nil {
		return err
	}
	logger := pkglog.L()

	logger.Info().Msg("starting zuid service")

	// Runtime and log metrics live on the default registry.
	reg := prometheus.NewRegistry()
	gatherer := prometheus.Gatherers{prometheus.DefaultGatherer, reg}

	registry, err := generator.NewRegistry(cfg.Entities, generator.NewMetrics(reg), logger)
	if err != nil {
		return fmt.Errorf("failed to create id factories: %w", err)
	}

	gin.SetMode(gin.ReleaseMode)
	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler.NewRouter(registry, cfg.Batch.MaxCount, gatherer, logger),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", server.Addr).Int("entities", len(cfg.Entities)).Msg("http server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down zuid service")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	logger.Info().Msg("zuid service stopped")
	return nil
}

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/edvin/camal/internal/camalapi"
	"github.com/edvin/camal/internal/config"
	"github.com/edvin/camal/internal/console"
	"github.com/edvin/camal/internal/console/session"
	"github.com/edvin/camal/internal/logging"
	"github.com/edvin/camal/internal/metrics"
)

const sweepInterval = 5 * time.Minute

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.NewLogger(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	api := camalapi.NewClient(cfg.APIURL, camalapi.WithHTTPClient(cfg.HTTPClient()))
	sessions := session.NewRegistry(api, cfg.QueryConfig(), cfg.MaxSessions, logger)
	defer sessions.Close()
	go sessions.Run(ctx, sweepInterval, cfg.SessionIdleTimeout)
	metrics.RegisterSessionMetrics(sessions)

	if cfg.MetricsListenAddr != "" {
		metricsServer := metrics.NewServer(cfg.MetricsListenAddr, sessions)
		go func() {
			logger.Info().Str("addr", cfg.MetricsListenAddr).Msg("starting metrics server")
			if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error().Err(err).Msg("metrics server failed")
			}
		}()
		defer metricsServer.Close()
	}

	srv := console.NewServer(logger, cfg, api, sessions)

	// Writes wait on the camal API, whose client times out at 30s.
	httpServer := &http.Server{
		Addr:         cfg.HTTPListenAddr,
		Handler:      srv,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 45 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", cfg.HTTPListenAddr).Str("api", cfg.APIURL).Msg("starting camal console")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	httpServer.Shutdown(shutdownCtx)
}

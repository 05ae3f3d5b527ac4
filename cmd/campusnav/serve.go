// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/campusnav/internal/config"
	"github.com/katalvlaran/campusnav/internal/server"
	"github.com/katalvlaran/campusnav/navigator"
)

// serve runs the HTTP API until SIGINT/SIGTERM or ctx is done, then drains
// connections for at most cfg.HTTP.ShutdownTimeout.
func serve(ctx context.Context, cfg config.Config, logger *slog.Logger, nav *navigator.Navigator) error {
	router := server.NewRouter(logger, server.NewAPIHandlers(logger, nav))
	srv := server.New(logger, cfg.HTTP, router)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case sig := <-sigCh:
		logger.Info("received shutdown signal", "signal", sig.String())
	case <-ctx.Done():
		logger.Info("context done", "error", ctx.Err())
	case err := <-errCh:
		if err != nil {
			logger.Error("server stopped unexpectedly", "error", err)
			return err
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
		return err
	}

	return <-errCh
}

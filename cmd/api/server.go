package main

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// StartServer starts the HTTP server in the background and returns it for
// shutdown handling.
func StartServer(addr string, handler http.Handler, logger *zap.Logger) *http.Server {
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	return srv
}

// GracefulShutdown drains in-flight requests and flushes telemetry before the
// process exits.
func GracefulShutdown(srv *http.Server, shutdownTelemetry func(context.Context) error, logger *zap.Logger, timeout time.Duration) {
	logger.Info("server shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("error shutting down server", zap.Error(err))
	}

	if shutdownTelemetry != nil {
		if err := shutdownTelemetry(ctx); err != nil {
			logger.Error("error shutting down telemetry", zap.Error(err))
		}
	}

	logger.Info("server stopped")
}

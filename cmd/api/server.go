// cmd/api/server.go
// This file owns the catalog's HTTP server lifecycle: listening, and
// draining in-flight requests when the process is asked to stop.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"
)

// shutdownTimeout bounds how long in-flight requests may run after a stop signal.
const shutdownTimeout = 20 * time.Second

// serve listens on the configured port until SIGINT or SIGTERM arrives,
// then stops accepting connections and waits up to shutdownTimeout for
// running handlers. The catalog is in memory, so anything created during
// this run is gone once serve returns.
func (app *applicationDependencies) serve() error {
	apiServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", app.config.port),
		Handler:      app.routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,  // request bodies are capped at 1 MB
		WriteTimeout: 10 * time.Second, // responses are small JSON documents
		// Route net/http's own complaints (TLS, hijack, panics) through slog.
		ErrorLog: slog.NewLogLogger(app.logger.Handler(), slog.LevelError),
	}

	// stop is cancelled by the first SIGINT (Ctrl+C) or SIGTERM (docker stop).
	stop, release := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer release()

	// shutdownErr carries the result of Shutdown back to this goroutine.
	shutdownErr := make(chan error, 1)

	go func() {
		<-stop.Done()
		app.logger.Info("shutting down server", "reason", context.Cause(stop).Error(), "timeout", shutdownTimeout)

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		// Shutdown closes the listener first, which makes ListenAndServe return.
		shutdownErr <- apiServer.Shutdown(ctx)
	}()

	app.logger.Info("starting server",
		"address", apiServer.Addr,
		"environment", app.config.environment,
		"version", appVersion,
		"rate_limit", app.config.limiter.enabled,
	)

	// ErrServerClosed is the normal result once Shutdown has been called.
	err := apiServer.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	// Wait for the drain to finish before reporting a clean stop.
	err = <-shutdownErr
	if err != nil {
		return err
	}

	app.logger.Info("server stopped", "address", apiServer.Addr, "books", app.models.Books.Count())
	return nil
}

// Package lifecycle pkg/lifecycle/server.go
package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
)

const (
	// ShutdownTimeout caps how long in-flight requests may run after a
	// shutdown signal arrives.
	ShutdownTimeout = 10 * time.Second

	readHeaderTimeout = 5 * time.Second
)

// ServerOptions holds what RunServer needs to serve an HTTP handler.
type ServerOptions struct {
	ListenAddr  string
	ServiceName string
	Handler     http.Handler
	Logger      zerolog.Logger
}

// RunServer serves opts.Handler on opts.ListenAddr and blocks until
// the context is canceled, a SIGINT/SIGTERM arrives, or the listener
// fails. Shutdown drains in-flight requests up to ShutdownTimeout.
func RunServer(ctx context.Context, opts *ServerOptions) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	logger := opts.Logger.With().Str("service", opts.ServiceName).Logger()
	logger.Info().Str("addr", opts.ListenAddr).Msg("starting HTTP server")

	srv := &http.Server{
		Addr:              opts.ListenAddr,
		Handler:           opts.Handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errChan := make(chan error, 1)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			select {
			case errChan <- err:
			default:
				logger.Error().Err(err).Msg("HTTP server error")
			}
		}
	}()

	return handleShutdown(ctx, srv, errChan, logger)
}

func handleShutdown(ctx context.Context, srv *http.Server, errChan chan error, logger zerolog.Logger) error {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	select {
	case sig := <-sigChan:
		logger.Info().Str("signal", sig.String()).Msg("received signal, shutting down")
	case err := <-errChan:
		logger.Error().Err(err).Msg("server error, shutting down")
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		logger.Info().Msg("context canceled, shutting down")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("shutdown did not complete cleanly")
		return fmt.Errorf("shutdown error: %w", err)
	}

	return nil
}

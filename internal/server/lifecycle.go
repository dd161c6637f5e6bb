// Package server runs a long-lived component under process lifecycle
// control: signal-driven shutdown for the watch command.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

// Service represents a long-running component that can be started and stopped.
type Service interface {
	// Start begins the service. It should block until the service is stopped
	// or an error occurs.
	Start() error
	// Stop gracefully stops the service.
	Stop()
}

// Run starts svc and blocks until a termination signal arrives (SIGINT or
// SIGTERM), the context is cancelled, or Start fails. The service is stopped
// before Run returns.
//
// Precondition: logger and svc must be non-nil; name must be non-empty.
// Postcondition: svc.Stop has been called; the returned error is the start
// failure, if any.
func Run(ctx context.Context, logger *zap.Logger, name string, svc Service) error {
	start := time.Now()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting service", zap.String("service", name))
		if err := svc.Start(); err != nil {
			errCh <- fmt.Errorf("service %s: %w", name, err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	var runErr error
	select {
	case sig := <-sigCh:
		logger.Info("received signal, shutting down", zap.String("signal", sig.String()))
	case err := <-errCh:
		logger.Error("service failed, shutting down", zap.Error(err))
		runErr = err
	case <-ctx.Done():
		logger.Info("context cancelled, shutting down")
	}

	svc.Stop()
	logger.Info("shutdown complete",
		zap.String("service", name), zap.Duration("uptime", time.Since(start)))
	return runErr
}

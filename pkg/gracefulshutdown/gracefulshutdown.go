// Package gracefulshutdown coordinates SIGINT/SIGTERM handling for the HTTP
// server and background workers.
package gracefulshutdown

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"
)

const shutdownTimeout = 20 * time.Second

var (
	baseCtx      context.Context
	cancelBase   context.CancelFunc
	shuttingDown atomic.Bool
	signals      = make(chan os.Signal, 1)
	once         sync.Once
)

func init() {
	baseCtx, cancelBase = context.WithCancel(context.Background())
}

// SubscribeForShutdown starts listening for termination signals.
func SubscribeForShutdown() {
	once.Do(func() {
		signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	})
}

// GetServerBaseContext returns a context cancelled once shutdown begins.
func GetServerBaseContext() context.Context {
	return baseCtx
}

// IsShuttingDown reports whether a termination signal was received.
func IsShuttingDown() bool {
	return shuttingDown.Load()
}

// HealthCheckMiddleware fails health probes once shutdown has started so load
// balancers stop routing traffic before the server closes.
func HealthCheckMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if IsShuttingDown() {
			http.Error(w, "shutting down", http.StatusServiceUnavailable)
			return
		}
		if next != nil {
			next.ServeHTTP(w, r)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
}

// WaitForShutdown blocks until a signal arrives, then drains srv.
func WaitForShutdown(srv *http.Server) {
	sig := <-signals
	slog.Info("shutdown signal received", "signal", sig.String())
	shuttingDown.Store(true)

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server shutdown failed", "error", err)
	}
	cancelBase()
	slog.Info("server stopped")
}

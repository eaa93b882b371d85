package db

import (
	"context"
	"net/http"
	"time"

	"github.com/grantsy/mercuryhook/internal/infra/logger"
)

const healthCheckTimeout = 2 * time.Second

// HealthCheckMiddleware answers 503 while the database (which also backs the
// engine queue) is unreachable.
func HealthCheckMiddleware(db *DB) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
			defer cancel()

			if err := db.PingContext(ctx); err != nil {
				logger.FromContext(r.Context()).Warn("health check failed",
					"driver", db.driver,
					"error", err,
				)
				http.Error(w, "database is down", http.StatusServiceUnavailable)
				return
			}
			if next != nil {
				next.ServeHTTP(w, r)
				return
			}
			w.WriteHeader(http.StatusOK)
		})
	}
}

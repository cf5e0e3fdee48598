// Package http provides the API and metrics HTTP servers.
package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"

	"github.com/allisson/identity/internal/httputil"
)

// CustomLoggerMiddleware logs HTTP requests through slog, carrying the
// request id issued by the requestid middleware.
func CustomLoggerMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		logger.Info("http request",
			slog.String("request_id", requestid.Get(c)),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("duration", time.Since(start)),
			slog.String("client_ip", c.ClientIP()),
		)
	}
}

// HealthHandler returns a simple health check handler.
func HealthHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httputil.MakeJSONResponse(w, http.StatusOK, map[string]string{"status": "healthy"})
	})
}

// ReadinessHandler returns a readiness check handler that reports not ready
// once the application context is cancelled during shutdown.
func ReadinessHandler(ctx context.Context) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-ctx.Done():
			httputil.MakeJSONResponse(
				w,
				http.StatusServiceUnavailable,
				map[string]string{"status": "not ready"},
			)
			return
		default:
		}

		httputil.MakeJSONResponse(w, http.StatusOK, map[string]string{"status": "ready"})
	})
}

package app

import (
	"context"
	"fmt"
	"sync"

	"github.com/allisson/identity/internal/http"
)

// httpComponents groups the HTTP server dependencies.
type httpComponents struct {
	server        *http.Server
	metricsServer *http.MetricsServer

	serverInit        sync.Once
	metricsServerInit sync.Once
}

// HTTPServer returns the API HTTP server with all routes wired.
// The context controls the readiness probe: once cancelled, /ready reports 503.
func (c *Container) HTTPServer(ctx context.Context) (*http.Server, error) {
	c.http.serverInit.Do(func() {
		authHandler, err := c.AuthHandler()
		if err != nil {
			c.initErrors["httpServer"] = fmt.Errorf(
				"failed to get auth handler for http server: %w", err)
			return
		}

		accountHandler, err := c.AccountHandler()
		if err != nil {
			c.initErrors["httpServer"] = fmt.Errorf(
				"failed to get account handler for http server: %w", err)
			return
		}

		metricsProvider, err := c.MetricsProvider()
		if err != nil {
			c.initErrors["httpServer"] = fmt.Errorf(
				"failed to get metrics provider for http server: %w", err)
			return
		}

		deps := http.RouterDeps{
			Config:         c.config,
			Logger:         c.Logger(),
			AuthHandler:    authHandler,
			AccountHandler: accountHandler,
			TokenService:   c.TokenService(),
		}
		if metricsProvider != nil {
			deps.MeterProvider = metricsProvider.MeterProvider()
		}

		router := http.SetupRouter(ctx, deps)
		c.http.server = http.NewServer(
			c.config.ServerHost,
			c.config.ServerPort,
			router,
			c.Logger(),
		)
	})
	if storedErr, exists := c.initErrors["httpServer"]; exists {
		return nil, storedErr
	}
	return c.http.server, nil
}

// MetricsServer returns the Prometheus metrics HTTP server.
// Returns nil without error when metrics are disabled.
func (c *Container) MetricsServer() (*http.MetricsServer, error) {
	c.http.metricsServerInit.Do(func() {
		metricsProvider, err := c.MetricsProvider()
		if err != nil {
			c.initErrors["metricsServer"] = fmt.Errorf(
				"failed to get metrics provider for metrics server: %w", err)
			return
		}
		if metricsProvider == nil {
			return
		}

		c.http.metricsServer = http.NewMetricsServer(
			c.config.ServerHost,
			c.config.MetricsPort,
			c.Logger(),
			metricsProvider,
		)
	})
	if storedErr, exists := c.initErrors["metricsServer"]; exists {
		return nil, storedErr
	}
	return c.http.metricsServer, nil
}

package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	otelmetric "go.opentelemetry.io/otel/metric"

	accountHTTP "github.com/allisson/identity/internal/account/http"
	authHTTP "github.com/allisson/identity/internal/auth/http"
	authService "github.com/allisson/identity/internal/auth/service"
	"github.com/allisson/identity/internal/config"
	"github.com/allisson/identity/internal/metrics"
)

// RouterDeps carries everything the API router needs.
type RouterDeps struct {
	Config         *config.Config
	Logger         *slog.Logger
	MeterProvider  otelmetric.MeterProvider
	AuthHandler    *authHTTP.AuthHandler
	AccountHandler *accountHTTP.AccountHandler
	TokenService   authService.TokenService
}

// SetupRouter builds the gin engine with all middleware and routes.
//
// Route layout:
//   - /health, /ready: liveness and readiness probes
//   - POST /v1/signup, /v1/login, /v1/refresh: unauthenticated credential
//     endpoints, per-IP rate limited
//   - GET /v1/accounts: protected by the access token guard
func SetupRouter(ctx context.Context, deps RouterDeps) *gin.Engine {
	gin.SetMode(deps.Config.GetGinMode())

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New())
	router.Use(CustomLoggerMiddleware(deps.Logger))

	if corsMiddleware := createCORSMiddleware(
		deps.Config.CORSEnabled,
		deps.Config.CORSAllowOrigins,
		deps.Logger,
	); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if deps.Config.MetricsEnabled && deps.MeterProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(deps.MeterProvider, deps.Config.MetricsNamespace))
	}

	router.GET("/health", gin.WrapH(HealthHandler()))
	router.GET("/ready", gin.WrapH(ReadinessHandler(ctx)))

	v1 := router.Group("/v1")

	credentials := v1.Group("")
	if deps.Config.RateLimitEnabled {
		credentials.Use(authHTTP.RateLimitMiddleware(
			deps.Config.RateLimitRequestsPerSec,
			deps.Config.RateLimitBurst,
			deps.Logger,
		))
	}
	credentials.POST("/signup", deps.AuthHandler.SignUpHandler)
	credentials.POST("/login", deps.AuthHandler.LoginHandler)
	credentials.POST("/refresh", deps.AuthHandler.RefreshHandler)

	protected := v1.Group("")
	protected.Use(authHTTP.AuthenticationMiddleware(deps.TokenService, deps.Logger))
	protected.GET("/accounts", deps.AccountHandler.ListHandler)

	return router
}

// Server represents the API HTTP server.
type Server struct {
	server *http.Server
	logger *slog.Logger
}

// NewServer creates a new API HTTP server serving the given handler.
func NewServer(host string, port int, handler http.Handler, logger *slog.Logger) *Server {
	return &Server{
		logger: logger,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", host, port),
			Handler:      handler,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}

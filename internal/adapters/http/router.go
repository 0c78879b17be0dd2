// Package http is the composition root of the REST API: it assembles the
// middleware chain, the handlers and the server lifecycle.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Haleralex/epcqr/internal/adapters/http/common"
	"github.com/Haleralex/epcqr/internal/adapters/http/handlers"
	"github.com/Haleralex/epcqr/internal/adapters/http/middleware"
)

// RouterConfig configures the gin engine.
type RouterConfig struct {
	Logger         *slog.Logger
	Version        string
	Environment    string // development, staging, production
	AllowedOrigins []string
	CORSMaxAge     int                         // seconds; 0 uses the middleware default
	RateLimit      *middleware.RateLimitConfig // nil disables rate limiting
	QR             *handlers.QRImageConfig
}

// DefaultRouterConfig is the development configuration.
func DefaultRouterConfig() *RouterConfig {
	return &RouterConfig{
		Logger:         slog.Default(),
		Version:        "dev",
		Environment:    "development",
		AllowedOrigins: []string{"*"},
	}
}

// NewRouter builds the configured gin engine.
//
// Middleware order matters: recovery first so everything downstream is
// covered, request ID before logging so every log line carries it.
func NewRouter(cfg *RouterConfig, generate handlers.GeneratePayloadUseCase) *gin.Engine {
	if cfg == nil {
		cfg = DefaultRouterConfig()
	}
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	handlers.SetupValidator()

	router.Use(middleware.Recovery(cfg.Logger))
	router.Use(middleware.RequestID())
	corsMaxAge := cfg.CORSMaxAge
	if corsMaxAge == 0 {
		corsMaxAge = middleware.DefaultCORSConfig().MaxAge
	}
	router.Use(middleware.CORS(&middleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
		MaxAge:       corsMaxAge,
	}))
	router.Use(middleware.Logging(cfg.Logger, "/health", "/ready", "/metrics"))
	if cfg.RateLimit != nil {
		router.Use(middleware.RateLimit(cfg.RateLimit))
	}
	router.Use(middleware.Metrics())

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	handlers.NewHealthHandler(cfg.Version).RegisterRoutes(router)

	v1 := router.Group("/api/v1")
	handlers.NewPayloadHandler(generate, cfg.QR).RegisterRoutes(v1)

	router.NoRoute(func(c *gin.Context) {
		common.NotFoundResponse(c, "Endpoint not found: "+c.Request.Method+" "+c.Request.URL.Path)
	})
	router.NoMethod(func(c *gin.Context) {
		c.Status(http.StatusMethodNotAllowed)
	})

	return router
}

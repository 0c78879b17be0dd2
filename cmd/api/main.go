// Command api serves the EPC QR payload generation REST API.
package main

import (
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	epchttp "github.com/Haleralex/epcqr/internal/adapters/http"
	"github.com/Haleralex/epcqr/internal/adapters/http/handlers"
	"github.com/Haleralex/epcqr/internal/adapters/http/middleware"
	"github.com/Haleralex/epcqr/internal/application/usecases/payload"
	"github.com/Haleralex/epcqr/internal/config"
	"github.com/Haleralex/epcqr/internal/pkg/logger"
)

func main() {
	// A missing .env is fine: containerized deployments pass real env vars.
	_ = godotenv.Load()

	cfg, err := config.Load("configs", "config")
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Setup(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: logOutput(cfg.Log.Output),
	})
	log := slog.Default()

	log.Info("starting epcqr API",
		slog.String("version", cfg.App.Version),
		slog.String("environment", cfg.App.Environment),
	)

	var rateLimit *middleware.RateLimitConfig
	if cfg.RateLimit.Enabled {
		rateLimit = &middleware.RateLimitConfig{
			Limit:  cfg.RateLimit.RequestsPerWindow,
			Window: cfg.RateLimit.Window,
		}
	}

	router := epchttp.NewRouter(&epchttp.RouterConfig{
		Logger:         log,
		Version:        cfg.App.Version,
		Environment:    cfg.App.Environment,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		CORSMaxAge:     int(cfg.CORS.MaxAge.Seconds()),
		RateLimit:      rateLimit,
		QR: &handlers.QRImageConfig{
			DefaultSize: cfg.QR.DefaultSize,
			MaxSize:     cfg.QR.MaxSize,
		},
	}, payload.NewGeneratePayloadUseCase())

	server := epchttp.NewServer(&epchttp.ServerConfig{
		Host:            cfg.Server.Host,
		Port:            strconv.Itoa(cfg.Server.Port),
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		IdleTimeout:     cfg.Server.IdleTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Logger:          log,
	}, router)

	if err := server.Run(); err != nil {
		log.Error("server error", slog.String("error", err.Error()))
		os.Exit(1)
	}

	log.Info("server stopped")
}

func logOutput(name string) io.Writer {
	if name == "stderr" {
		return os.Stderr
	}
	return os.Stdout
}

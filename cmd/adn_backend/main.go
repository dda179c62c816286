package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/fedemoisello/ADN-2025/internal/adapters/storage/csvsource"
	"github.com/fedemoisello/ADN-2025/internal/adapters/storage/memory"
	"github.com/fedemoisello/ADN-2025/internal/apperrors"
	portsrepo "github.com/fedemoisello/ADN-2025/internal/core/ports/repositories"
	"github.com/fedemoisello/ADN-2025/internal/core/services"
	"github.com/fedemoisello/ADN-2025/internal/handlers"
	"github.com/fedemoisello/ADN-2025/internal/middleware"
	"github.com/fedemoisello/ADN-2025/internal/platform/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	memorystore "github.com/ulule/limiter/v3/drivers/store/memory"
)

// @title ADN Planning Backend API
// @version 1.0
// @description Consultant roster, currency conversion and workshop profitability analysis for ADN sessions.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Wire the in-memory roster store and its CSV source
	repos := portsrepo.RepositoryProvider{
		RosterRepo:   memory.NewRosterRepository(),
		RosterSource: csvsource.NewRosterSource(cfg.RosterCSVPath),
	}
	container := services.NewServiceContainer(repos)

	// Bootstrap the roster. A missing or malformed source is not fatal: the
	// system continues with an empty roster and the editor stays usable.
	if err := container.Roster.LoadFromSource(context.Background()); err != nil {
		if errors.Is(err, apperrors.ErrRosterLoad) {
			logger.Warn("Roster source unreadable, starting with empty roster",
				slog.String("path", cfg.RosterCSVPath),
				slog.String("error", err.Error()))
		} else {
			logger.Error("Failed to bootstrap roster", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS, rate limiting)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	r.Use(cors.New(corsConfig))

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid rate limit format", slog.String("rate_limit", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}
	r.Use(middleware.RateLimit(limiter.New(memorystore.NewStore(), rate)))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, container)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Shunea/be-easyreserv-sub002/internal/core/ports"
	"github.com/Shunea/be-easyreserv-sub002/internal/core/services"
	"github.com/Shunea/be-easyreserv-sub002/internal/handlers"
	"github.com/Shunea/be-easyreserv-sub002/internal/middleware"
	"github.com/Shunea/be-easyreserv-sub002/internal/platform/config"
	"github.com/Shunea/be-easyreserv-sub002/internal/platform/logging"
	"github.com/Shunea/be-easyreserv-sub002/internal/platform/storage"
	"github.com/Shunea/be-easyreserv-sub002/internal/utils"
	"github.com/Shunea/be-easyreserv-sub002/internal/ws"
	"github.com/gin-gonic/gin"
)

// @title EasyReserv Backend API
// @version 1.0
// @description Staff scheduling, reservation lifecycle and reporting for restaurants.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := logging.New(cfg.IsProduction)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, closeStore, err := storage.Open(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize storage", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeStore()

	hub := ws.NewHub()
	go hub.Run(ctx)

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, cfg.PosthogEndpoint, logger)
	defer posthogClient.Close()

	sinks := []services.NamedSink{{Name: "websocket", Sink: ws.NewHubAuditSink(hub)}}
	if sink := utils.NewPosthogAuditSink(posthogClient); sink != nil {
		sinks = append(sinks, services.NamedSink{Name: "posthog", Sink: sink})
	}
	container := services.NewServiceContainer(cfg, repos, ports.SystemClock{}, sinks...)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	limiter, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid rate limit", slog.String("error", err.Error()))
		os.Exit(1)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		middleware.CORS(cfg.CORSAllowedOrigins),
		middleware.RateLimit(limiter),
		middleware.PosthogMiddleware(posthogClient),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := handlers.RegisterRoutes(r, cfg, container, hub); err != nil {
		logger.Error("Failed to register routes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", slog.String("error", err.Error()))
	}
}

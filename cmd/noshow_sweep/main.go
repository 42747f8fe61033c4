// Command noshow_sweep dishonors confirmed reservations whose guests never arrived.
// It runs one sweep and exits; cron or a Kubernetes CronJob decides how often.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Shunea/be-easyreserv-sub002/internal/core/ports"
	"github.com/Shunea/be-easyreserv-sub002/internal/core/services"
	"github.com/Shunea/be-easyreserv-sub002/internal/platform/config"
	"github.com/Shunea/be-easyreserv-sub002/internal/platform/logging"
	"github.com/Shunea/be-easyreserv-sub002/internal/platform/storage"
	"github.com/Shunea/be-easyreserv-sub002/internal/utils"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := logging.New(cfg.IsProduction).With(slog.String("job", "noshow_sweep"))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logging.WithLogger(ctx, logger)

	// Schema changes belong to the API server.
	cfg.RunMigrations = false
	repos, closeStore, err := storage.Open(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize storage", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeStore()

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, cfg.PosthogEndpoint, logger)
	defer posthogClient.Close()

	var sinks []services.NamedSink
	if sink := utils.NewPosthogAuditSink(posthogClient); sink != nil {
		sinks = append(sinks, services.NamedSink{Name: "posthog", Sink: sink})
	}
	container := services.NewServiceContainer(cfg, repos, ports.SystemClock{}, sinks...)

	result, err := container.NoShow.RunOnce(ctx)
	attrs := []any{
		slog.Int("scanned", result.Scanned),
		slog.Int("dishonored", result.Dishonored),
		slog.Int("skipped", result.Skipped),
		slog.Int("failed", result.Failed),
	}
	if err != nil {
		logger.Error("No-show sweep aborted", append(attrs, slog.String("error", err.Error()))...)
		os.Exit(1)
	}
	logger.Info("No-show sweep finished", attrs...)
}

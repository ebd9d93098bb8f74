package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"go.uber.org/zap"

	"github.com/Tom0603/SoftwareEngineering-Lecture/config"
	"github.com/Tom0603/SoftwareEngineering-Lecture/internal/api"
	"github.com/Tom0603/SoftwareEngineering-Lecture/internal/api/handler"
	"github.com/Tom0603/SoftwareEngineering-Lecture/internal/dedup"
	"github.com/Tom0603/SoftwareEngineering-Lecture/internal/repository"
	"github.com/Tom0603/SoftwareEngineering-Lecture/internal/service"
	"github.com/Tom0603/SoftwareEngineering-Lecture/internal/storage"
	"github.com/Tom0603/SoftwareEngineering-Lecture/internal/telemetry"
	"github.com/Tom0603/SoftwareEngineering-Lecture/pkg/database"
	"github.com/Tom0603/SoftwareEngineering-Lecture/pkg/logger"
)

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func main() {
	cfg := must(config.Load())
	if err := logger.Init(cfg.Server.Mode); err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.Sentry.DSN}); err != nil {
			logger.Warn("sentry init failed", zap.Error(err))
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}
	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.Init(ctx, "listings-service", cfg.Telemetry.Endpoint)
		if err != nil {
			logger.Warn("telemetry init failed", zap.Error(err))
		} else {
			defer shutdown(context.Background())
		}
	}

	db := must(database.InitDB(cfg))
	if err := repository.InitSchema(db); err != nil {
		logger.Error("schema init failed", zap.Error(err))
		return
	}

	rdb := storage.NewRedisClient(cfg)
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		// image reads already tolerate store failures, so only warn
		logger.Warn("redis unreachable, image storage degraded", zap.Error(err))
	}
	cancel()

	repo := repository.NewListingRepository(db)
	images := storage.NewRedisImageStore(rdb)
	classifier := dedup.NewClassifier(dedup.DefaultSynonyms)
	svc := service.NewListingService(repo, images, classifier)

	var stopSweeper func(context.Context) error
	if cfg.Sweeper.Enabled {
		sweeper := service.NewSweeper(repo, cfg.Sweeper.RetentionDays, cfg.Sweeper.Interval)
		stopSweeper = sweeper.Start()
	}

	r := api.NewRouter(cfg, handler.New(svc))
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r,
	}

	go func() {
		logger.Info("listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if stopSweeper != nil {
		_ = stopSweeper(shutdownCtx)
	}
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", zap.Error(err))
	}
}

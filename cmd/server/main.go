package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/oggyb/swipe-match/internal/app"
	"github.com/oggyb/swipe-match/internal/cache"
	"github.com/oggyb/swipe-match/internal/config"
	"github.com/oggyb/swipe-match/internal/db"
	"github.com/oggyb/swipe-match/internal/logger"
	"github.com/oggyb/swipe-match/internal/server"
	"github.com/oggyb/swipe-match/internal/service/match"
)

func main() {
	cfg := config.New()

	// Init logger (global singleton)
	logger.InitFromConfig(cfg)
	log := logger.L() // slog.Logger pointer

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Init DB
	database, err := db.NewDB(cfg)
	if err != nil {
		log.Error("failed to init db", "err", err)
		return
	}

	// Init Redis
	redisCache := cache.NewRedisCache(cfg)
	if err := redisCache.Ping(ctx); err != nil {
		log.Error("failed to connect to redis", "err", err)
		return
	}
	defer redisCache.Close()

	appCtx := app.New(cfg, database, redisCache, log)

	matchRegistrar := match.NewRegistrar(appCtx)
	registrars := []server.Registrar{
		matchRegistrar,
	}

	// drop idle swipe sessions in the background
	sessions := matchRegistrar.Service().Sessions()
	go sessions.Janitor(ctx, match.JanitorInterval(cfg.Match.SessionIdleTTL), func(n int) {
		log.Info("evicted idle sessions", "count", n, "live", sessions.Len())
	})

	if cfg.Metrics.Addr != "" {
		server.StartMetricsServer(ctx, cfg.Metrics.Addr, log)
	}

	if cfg.App.ENV == "development" {
		if err := db.SeedTestData(database); err != nil {
			log.Error("failed to seed", "err", err)
		}
	}

	addr := cfg.GRPC.Host + ":" + cfg.GRPC.Port
	log.Info("starting gRPC server", "addr", addr)

	if err := server.StartGRPCServer(ctx, cfg, log, registrars...); err != nil {
		log.Error("failed to start gRPC server", "err", err)
	}
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/easyleave/leave-api/internal/api"
	"github.com/easyleave/leave-api/internal/infrastructure/config"
	mongodb "github.com/easyleave/leave-api/internal/infrastructure/db/mongo"
	redisdb "github.com/easyleave/leave-api/internal/infrastructure/db/redis"
	"github.com/easyleave/leave-api/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to connect to mongodb")
		os.Exit(1)
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	if err := mongodb.NewIdentityRepository(db).EnsureIndexes(ctx); err != nil {
		log.Error().Err(err).Msg("failed to ensure identity indexes")
		os.Exit(1)
	}
	if err := mongodb.NewLeaveRepository(db).EnsureIndexes(ctx); err != nil {
		log.Error().Err(err).Msg("failed to ensure leave request indexes")
		os.Exit(1)
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to connect to redis")
		os.Exit(1)
	}
	defer func() { _ = rdb.Close() }()

	e := api.NewRouter(db, rdb, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting leave api")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server stopped")
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

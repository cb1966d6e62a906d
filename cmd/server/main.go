package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/corphq/api/internal/api"
	"github.com/corphq/api/internal/api/metrics"
	"github.com/corphq/api/internal/config"
	"github.com/corphq/api/internal/core/service"
	mongodb "github.com/corphq/api/internal/infrastructure/db/mongo"
	redisdb "github.com/corphq/api/internal/infrastructure/db/redis"
	"github.com/corphq/api/internal/pkg/retry"
	"github.com/corphq/api/internal/regionapi"
	"github.com/corphq/api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// All shared handles are constructed here, once, and passed down.
	mongoClient, dbs, err := mongodb.Connect(ctx, mongodb.Config{
		URI:            cfg.Mongo.URI,
		AppDatabase:    cfg.Mongo.AppDatabase,
		StaticDatabase: cfg.Mongo.StaticDatabase,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongo disconnect failed")
		}
	}()

	redisClient, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error().Err(err).Msg("redis close failed")
		}
	}()

	userRepo := mongodb.NewUserRepository(dbs.App)
	sessionRepo := mongodb.NewSessionRepository(dbs.App)
	configRepo := mongodb.NewConfigRepository(dbs.App)
	regionRepo := mongodb.NewRegionRepository(dbs.Static)

	regionCfg, err := regionapi.LoadConfig(ctx, configRepo, regionapi.Config{
		BaseURL:   cfg.RegionAPI.BaseURL,
		UserAgent: cfg.RegionAPI.UserAgent,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("region api configuration failed")
	}
	regionSource, err := regionapi.New(regionCfg, retry.Policy{
		OnRetry: func(int, error) { metrics.RegionAPIRetriesTotal.Inc() },
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("region api client construction failed")
	}

	deps := api.Dependencies{
		Log:          log,
		Users:        service.NewUserService(userRepo),
		Sessions:     service.NewSessionService(sessionRepo),
		SessionStore: sessionRepo,
		Regions:      regionRepo,
		Bootstrap:    service.NewBootstrapService(regionRepo, regionSource, sessionRepo, log),
		LoginGate:    redisdb.NewLoginThrottle(redisClient, cfg.Login.ThrottleLimit, cfg.Login.ThrottleWindow),
		MongoClient:  mongoClient,
		RedisClient:  redisClient,
	}

	e := api.NewRouter(deps)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"

	_ "github.com/pfaswatch/zipcheck/docs"
	"github.com/pfaswatch/zipcheck/internal/api"
	"github.com/pfaswatch/zipcheck/internal/core/service"
	mongodb "github.com/pfaswatch/zipcheck/internal/infrastructure/db/mongo"
	redisdb "github.com/pfaswatch/zipcheck/internal/infrastructure/db/redis"
	"github.com/pfaswatch/zipcheck/internal/pkg/config"
	"github.com/pfaswatch/zipcheck/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title           PFAS Zip Code Checker API
// @version         1.0
// @description     Reports whether a US zip code appears in a reference dataset of locations with documented PFAS contamination.
//
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}

	authRepo := mongodb.NewAuthRepository(db)
	if err := authRepo.EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to ensure auth indexes")
	}
	recordRepo := mongodb.NewRecordRepository(db, cfg.Mongo.Collection)

	clock := clockwork.NewRealClock()
	lookupSvc := service.NewLookupService(recordRepo, clock, log)

	// The dataset must load before any query is served; startup is the one
	// place where a load failure is fatal.
	if err := lookupSvc.Load(ctx); err != nil {
		log.Fatal().Err(err).Msg("initial dataset load failed")
	}

	batchCache := redisdb.NewBatchCache(rdb, cfg.Batch.ResultTTL)
	batchSvc := service.NewBatchService(lookupSvc, batchCache, cfg.Batch.MaxRows, log)
	authSvc := service.NewAuthService(authRepo, cfg.JWTSecret, 24*time.Hour)

	if cfg.Dataset.RefreshInterval > 0 {
		refresher := service.NewRefresher(lookupSvc, clock, cfg.Dataset.RefreshInterval, log)
		go refresher.Run(ctx)
	}

	e := api.NewRouter(api.Deps{
		DB:        db,
		Redis:     rdb,
		Lookup:    lookupSvc,
		Loader:    lookupSvc,
		Batch:     batchSvc,
		Auth:      authSvc,
		JWTSecret: cfg.JWTSecret,
		Logger:    log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("http server error")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http server shutdown error")
	}
	if err := mongoClient.Disconnect(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("mongo disconnect error")
	}
	if err := rdb.Close(); err != nil {
		log.Error().Err(err).Msg("redis close error")
	}

	log.Info().Msg("shutdown complete")
}

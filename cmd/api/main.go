package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/homeworkbot/panel-api/internal/api"
	"github.com/homeworkbot/panel-api/internal/core/ports"
	mongodb "github.com/homeworkbot/panel-api/internal/infrastructure/db/mongo"
	redisdb "github.com/homeworkbot/panel-api/internal/infrastructure/db/redis"
	"github.com/homeworkbot/panel-api/internal/infrastructure/telegram"
	"github.com/homeworkbot/panel-api/internal/pkg/config"
	"github.com/homeworkbot/panel-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

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
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	// Redis only backs the admin cache; the panel runs without it.
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, admin cache disabled")
		rdb = nil
	} else {
		defer rdb.Close()
	}

	// Without a bot token broadcasts are rejected and /file answers 502,
	// but every read endpoint keeps working.
	var sender ports.Sender
	if s, err := telegram.New(cfg.BotToken, log); err != nil {
		log.Warn().Err(err).Msg("telegram bot unavailable, delivery disabled")
	} else {
		sender = s
	}

	e := api.NewRouter(cfg, db, rdb, sender, log)

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("starting panel api")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// README: Entry point; loads config, wires services, starts the HTTP server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"voyago/internal/ai"
	"voyago/internal/config"
	httptransport "voyago/internal/http"
	"voyago/internal/http/handlers"
	"voyago/internal/infra"
	"voyago/internal/logger"
	"voyago/internal/modules/conversation"
	"voyago/internal/modules/trip"
	"voyago/internal/weather"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Log.Fatal(err)
	}
	if cfg.LogFile != "" {
		if err := logger.MirrorToFile(cfg.LogFile); err != nil {
			logger.Log.Fatalf("log file: %v", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		logger.Log.Fatalf("postgres init: %v", err)
	}
	defer dbPool.Close()

	redisClient := infra.NewRedis(cfg.Redis.Addr)
	defer redisClient.Close()

	gemini, err := ai.NewGeminiClient(ctx, cfg.AI.GeminiKey, cfg.AI.Model)
	if err != nil {
		logger.Log.Fatalf("gemini init: %v", err)
	}
	defer gemini.Close()

	forecastCache := weather.NewCache(redisClient, cfg.Weather.CacheTTL)
	weatherSvc := weather.NewService(cfg.Weather.APIKey, cfg.Weather.Units, forecastCache)

	tripStore := trip.NewStore(dbPool)
	tripSvc := trip.NewService(gemini, weatherSvc, tripStore)

	convSvc := conversation.NewService(tripSvc)
	sessions := conversation.NewSessions()

	handler := httptransport.NewRouter(
		handlers.NewChatHandler(sessions, convSvc),
		handlers.NewTripHandler(tripStore),
	)

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	logger.Log.WithField("addr", cfg.HTTP.Addr).Info("Voyago API listening")
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Log.Fatal(err)
	}
}

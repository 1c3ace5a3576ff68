// cmd/api-server/main.go
package main

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"askindia/internal/api"
	"askindia/internal/common/config"
	"askindia/internal/common/database"
	"askindia/internal/common/logger"
	"askindia/internal/common/observability"
	"askindia/internal/engine"
	"askindia/internal/population"
	"askindia/internal/ratelimit"
	"askindia/internal/sampling"
	"askindia/internal/survey"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting api server...",
		zap.String("app", cfg.App.Name),
		zap.String("environment", cfg.App.Environment),
	)

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	// --- Population store (lazy; warm it up front so the first request
	// does not pay the load) ---
	store := population.NewStore(cfg.Population.DataFile, log)
	pop := store.Load()
	zapLog.Info("Population ready",
		zap.Int("personas", len(pop.Personas)),
		zap.Int("states", len(pop.States)),
	)

	// --- Reply engine ---
	catalog := engine.NewCatalog(cfg.Engine.DefaultModel, cfg.Engine.APIKey != "")
	requester := engine.NewOpenAIRequester(cfg.Engine, log)
	if cfg.Engine.APIKey == "" {
		zapLog.Warn("No engine API key configured, ask requests will be rejected")
	}

	// --- Rate limiter ---
	// Redis problems degrade to the in-memory limiter rather than failing
	// boot; the limiter is protective, not load-bearing.
	window := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
	var limiter ratelimit.Limiter
	if cfg.RateLimit.Backend == "redis" {
		redisClient, err := database.NewRedis(cfg.Database.Redis)
		if err == nil {
			err = redisClient.Ping(context.Background())
		}
		if err != nil {
			zapLog.Warn("Redis unavailable, falling back to in-memory rate limiter", zap.Error(err))
			limiter = ratelimit.NewMemoryLimiter(cfg.RateLimit.MaxRequests, window)
		} else {
			defer redisClient.Close()
			limiter = ratelimit.NewRedisLimiter(redisClient.GetClient(), cfg.RateLimit.MaxRequests, window)
			zapLog.Info("Rate limiter using redis backend", zap.String("address", cfg.Database.Redis.Address))
		}
	} else {
		limiter = ratelimit.NewMemoryLimiter(cfg.RateLimit.MaxRequests, window)
	}

	// --- Pipeline ---
	sampler := sampling.New(rand.NewSource(time.Now().UnixNano()))
	orchestrator := survey.NewOrchestrator(requester, cfg.Survey.Concurrency, log)
	service := survey.NewService(store, sampler, orchestrator, catalog, log).WithRecorder(obs)

	router := api.NewRouter(service, limiter, log)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		zapLog.Info("HTTP server listening", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("http server failed", zap.Error(err))
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLog.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), config.GetDuration(cfg.Server.ShutdownTimeout))
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zapLog.Error("shutdown incomplete", zap.Error(err))
	}
	zapLog.Info("Server stopped")
}

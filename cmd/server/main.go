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

	"starmap-server/internal/events"
	"starmap-server/internal/galaxy"
	"starmap-server/internal/middleware"
	"starmap-server/internal/server"
	"starmap-server/internal/shared/config"
	"starmap-server/internal/shared/database"
	"starmap-server/internal/shared/logger"
	"starmap-server/internal/shared/redis"
	"starmap-server/internal/warp"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	if err := config.Init(); err != nil {
		return err
	}
	logger.Init()

	log := slog.With("component", "main")
	cfg := config.GlobalConfig

	db, err := database.Connect()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		return err
	}

	cache, err := redis.Connect()
	if err != nil {
		// The cache is optional; every system regenerates from the seed.
		log.Warn("Redis unavailable, continuing without system cache", "error", err)
		cache = nil
	}
	defer cache.Close()

	presets, err := galaxy.LoadPresets(cfg.Galaxy.PresetsPath, slog.Default())
	if err != nil {
		return err
	}

	hub := events.NewHub(slog.Default())
	go hub.Run()
	defer hub.Stop()

	galaxyRepo := galaxy.NewRepository(db, slog.Default())
	systemCache := galaxy.NewSystemCache(cache, cfg.Redis.SystemTTL, slog.Default())
	galaxyGen := galaxy.NewGenerator(slog.Default())
	galaxyService := galaxy.NewService(galaxyRepo, systemCache, galaxyGen, hub, presets, slog.Default())
	warpBuilder := warp.NewBuilder(slog.Default())

	routes := server.NewRoutes(db, cache, galaxyService, warpBuilder, hub, slog.Default())
	mux := routes.Setup()

	rateLimiter := middleware.NewRateLimiter(middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
		BurstSize:         cfg.RateLimit.BurstSize,
		Enabled:           cfg.RateLimit.Enabled,
		TrustProxy:        cfg.RateLimit.TrustProxy,
	})
	corsMiddleware := middleware.NewCORS()

	handler := corsMiddleware.Middleware(rateLimiter.Middleware(mux))

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("Server starting", "port", cfg.Server.Port, "environment", cfg.Server.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		log.Info("Shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/naai-app/naai-api/internal/auth"
	"github.com/naai-app/naai-api/internal/config"
	dbpkg "github.com/naai-app/naai-api/internal/db"
	"github.com/naai-app/naai-api/internal/logger"
	"github.com/naai-app/naai-api/internal/middleware"
	"github.com/naai-app/naai-api/internal/routes"
	"github.com/naai-app/naai-api/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log, cleanup := logger.New(cfg.LogLevel, cfg.LogJSON)
	defer cleanup()

	db := dbpkg.NewDB(cfg, log)

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
	}

	uploader := storage.NewUploader(cfg)
	if uploader == nil {
		log.Info("shop photo uploads disabled (no S3_BUCKET)")
	}

	tokens := auth.NewTokenService(cfg.JWTSecret)

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(ginzap.Ginzap(log, time.RFC3339, true))
	r.Use(ginzap.RecoveryWithZap(log, true))
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.Metrics())

	routes.RegisterRoutes(r, db, cfg, routes.Deps{
		Tokens:   tokens,
		Redis:    rdb,
		Uploader: uploader,
		Log:      log,
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("server running", zap.String("addr", cfg.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)

	// best-effort release of persistence resources
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	if rdb != nil {
		_ = rdb.Close()
	}

	log.Info("server stopped gracefully")
}

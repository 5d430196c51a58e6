package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/unigov-client/internal/handler"
	"github.com/noah-isme/unigov-client/internal/repository"
	"github.com/noah-isme/unigov-client/internal/service"
	"github.com/noah-isme/unigov-client/pkg/config"
	"github.com/noah-isme/unigov-client/pkg/logger"
	"github.com/noah-isme/unigov-client/pkg/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	store, err := repository.NewStore(bcrypt.DefaultCost)
	if err != nil {
		logr.Sugar().Fatalw("failed to seed fixtures", "error", err)
	}
	uploads, err := storage.NewLocalStorage(cfg.Mock.UploadDir)
	if err != nil {
		logr.Sugar().Fatalw("failed to prepare uploads", "error", err)
	}

	r := handler.NewRouter(handler.RouterConfig{
		Store:          store,
		Uploads:        uploads,
		Tokens:         service.NewTokenService(cfg.Mock.JWTSecret, cfg.Mock.JWTExpiration),
		Metrics:        service.NewMetricsService(),
		Logger:         logr,
		APIPrefix:      cfg.Mock.APIPrefix,
		Delay:          cfg.Mock.Delay,
		AllowedOrigins: cfg.Mock.AllowedOrigins,
	})

	addr := fmt.Sprintf(":%d", cfg.Mock.Port)
	logr.Sugar().Infow("mock backend starting", "addr", addr, "prefix", cfg.Mock.APIPrefix, "delay", cfg.Mock.Delay, "uploads", uploads.Dir())
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}

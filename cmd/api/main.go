package main

import (
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"marketboard/backend-go/internal/config"
	internalhttp "marketboard/backend-go/internal/http"
	"marketboard/backend-go/internal/services"
)

func main() {
	_ = godotenv.Load(
		".env",
		".env.local",
		"../.env",
		"../.env.local",
		"backend-go/.env",
		"backend-go/.env.local",
	)
	cfg := config.Load()

	logger := newLogger(cfg.Env)
	defer func() { _ = logger.Sync() }()

	cache := services.NewCache(cfg)
	lookup := services.NewLookupClient(cfg)
	market := services.NewMarketClient(cfg, logger)

	h := internalhttp.NewRouter(cfg, cache, lookup, market, logger)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("marketboard backend listening",
		zap.String("addr", srv.Addr),
		zap.String("home_region", cfg.HomeRegion))
	if err := srv.ListenAndServe(); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}

func newLogger(env string) *zap.Logger {
	if env == "dev" || env == "development" {
		l, _ := zap.NewDevelopment()
		return l
	}
	l, _ := zap.NewProduction()
	return l
}

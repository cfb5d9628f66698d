package http

import (
	"net/http"

	"go.uber.org/zap"

	"marketboard/backend-go/internal/config"
	"marketboard/backend-go/internal/handlers"
	"marketboard/backend-go/internal/services"
)

func NewRouter(cfg config.Config, cache services.Cache, lookup *services.LookupClient, market *services.MarketClient, logger *zap.Logger) http.Handler {
	api := handlers.New(cfg, cache, lookup, market, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/search", api.Search)
	mux.HandleFunc("/api/health", api.Health)

	h := http.Handler(mux)
	h = withRecovery(h, logger)
	h = withLogging(h, logger)
	h = withRateLimit(cfg.RateLimitPerMin)(h)
	h = withRequestID(h)
	h = withCORS(h)
	return h
}

package handlers

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"marketboard/backend-go/internal/config"
	"marketboard/backend-go/internal/models"
	"marketboard/backend-go/internal/services"
)

// maxPriceBound doubles as the max_price default: an unset upper bound
// behaves like "no ceiling".
const maxPriceBound = 999999999

type API struct {
	cfg    config.Config
	cache  services.Cache
	lookup *services.LookupClient
	market *services.MarketClient
	shaper *services.Shaper
	logger *zap.Logger
}

func New(cfg config.Config, cache services.Cache, lookup *services.LookupClient, market *services.MarketClient, logger *zap.Logger) *API {
	return &API{
		cfg:    cfg,
		cache:  cache,
		lookup: lookup,
		market: market,
		shaper: services.NewShaper(cfg),
		logger: logger,
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeJSONBytes writes a pre-marshaled body as-is so cache hits replay the
// stored response byte for byte.
func writeJSONBytes(w http.ResponseWriter, code int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(body)
}

func parseIntParam(v string, def int, min int, max int) int {
	if v == "" {
		return def
	}
	out, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	if out < min {
		return min
	}
	if out > max {
		return max
	}
	return out
}

// searchCacheKey is a deterministic composite of every normalized query
// field; equal inputs always map to the same key.
func searchCacheKey(q models.SearchQuery) string {
	seed := strings.Join([]string{
		strings.ToLower(q.Query),
		q.World,
		strconv.FormatBool(q.HQOnly),
		strconv.Itoa(q.MinPrice),
		strconv.Itoa(q.MaxPrice),
		strconv.Itoa(q.Page),
		strconv.Itoa(q.PerPage),
		q.Sort,
	}, "|")
	sum := sha1.Sum([]byte(seed))
	return fmt.Sprintf("search:v1:%s", hex.EncodeToString(sum[:8]))
}

func timeboxed(r *http.Request, d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), d)
}

func nowISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}

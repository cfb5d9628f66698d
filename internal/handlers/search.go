package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"marketboard/backend-go/internal/models"
)

// Search translates the simplified browser query into upstream calls and
// shapes the combined result. Identical queries within the TTL window are
// served from cache without touching either upstream.
func (a *API) Search(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	q := strings.TrimSpace(params.Get("q"))
	if q == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "query_required"})
		return
	}

	query := models.SearchQuery{
		Query:    q,
		World:    strings.TrimSpace(params.Get("world")),
		HQOnly:   params.Get("hq") == "true",
		MinPrice: parseIntParam(params.Get("min_price"), 0, 0, maxPriceBound),
		MaxPrice: parseIntParam(params.Get("max_price"), maxPriceBound, 0, maxPriceBound),
		Page:     parseIntParam(params.Get("page"), 1, 1, 10000),
		PerPage:  parseIntParam(params.Get("per_page"), 20, 1, 100),
		Sort:     normalizeSort(params.Get("sort")),
	}

	key := searchCacheKey(query)
	if a.cache != nil {
		if b, ok := a.cache.Get(r.Context(), key); ok {
			w.Header().Set("X-Cache", "HIT")
			writeJSONBytes(w, http.StatusOK, b)
			return
		}
	}

	ctx, cancel := timeboxed(r, a.cfg.RequestTimeout)
	defer cancel()

	item, err := a.lookup.Resolve(ctx, query.Query)
	if err != nil {
		a.writeError(w, err)
		return
	}

	snap, err := a.market.Fetch(ctx, query.World, item.ID, a.cfg.HistoryEntries)
	if err != nil {
		a.writeError(w, err)
		return
	}
	broad := a.market.FetchBroad(ctx, item.ID)

	result := a.shaper.Shape(query, item, snap, broad, time.Now())
	body, err := json.Marshal(result)
	if err != nil {
		a.logger.Error("marshal search result", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "internal"})
		return
	}
	if a.cache != nil {
		_ = a.cache.Set(r.Context(), key, body, a.cfg.CacheTTL)
	}
	w.Header().Set("X-Cache", "MISS")
	writeJSONBytes(w, http.StatusOK, body)
}

// normalizeSort only fills in the default. Unknown keys pass through and fall
// out as a sort no-op downstream.
func normalizeSort(v string) string {
	if v == "" {
		return models.SortPriceAsc
	}
	return v
}

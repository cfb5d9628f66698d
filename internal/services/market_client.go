package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"marketboard/backend-go/internal/config"
	"marketboard/backend-go/internal/models"
)

type UpstreamError struct {
	Service string
	Status  int
	Body    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: %d", e.Service, e.Status)
}

type MarketClient struct {
	baseURL      string
	hc           *http.Client
	homeRegion   string
	broadEntries int
	logger       *zap.Logger
}

func NewMarketClient(cfg config.Config, logger *zap.Logger) *MarketClient {
	return &MarketClient{
		baseURL: strings.TrimRight(cfg.MarketBaseURL, "/"),
		hc: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		homeRegion:   cfg.HomeRegion,
		broadEntries: cfg.BroadHistoryEntries,
		logger:       logger,
	}
}

// Fetch returns current listings, sale history bounded by entries, and the
// upstream average price. An empty scope falls back to the home region.
// Missing payload fields are zero values, not errors.
func (c *MarketClient) Fetch(ctx context.Context, scope string, itemID int, entries int) (models.MarketSnapshot, error) {
	if scope == "" {
		scope = c.homeRegion
	}
	path := fmt.Sprintf("%s/api/v2/%s/%d?entries=%d", c.baseURL, url.PathEscape(scope), itemID, entries)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, path, nil)
	if err != nil {
		return models.MarketSnapshot{}, err
	}
	res, err := c.hc.Do(req)
	if err != nil {
		return models.MarketSnapshot{}, err
	}
	defer res.Body.Close()
	if res.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
		return models.MarketSnapshot{}, &UpstreamError{Service: "market-data", Status: res.StatusCode, Body: string(body)}
	}

	var snap models.MarketSnapshot
	if err := json.NewDecoder(res.Body).Decode(&snap); err != nil {
		return models.MarketSnapshot{}, err
	}
	return snap, nil
}

// BroadHistory is the outcome of the best-effort home-region fetch: either a
// deep-history snapshot or the reason none is available.
type BroadHistory struct {
	Snapshot *models.MarketSnapshot
	Reason   string
}

// FetchBroad pulls the whole home region at deep history for the per-world
// and trend views. Failure is logged and reported as an empty result; it
// never fails the request that triggered it.
func (c *MarketClient) FetchBroad(ctx context.Context, itemID int) BroadHistory {
	snap, err := c.Fetch(ctx, c.homeRegion, itemID, c.broadEntries)
	if err != nil {
		c.logger.Warn("broad history fetch failed",
			zap.Int("item_id", itemID),
			zap.String("region", c.homeRegion),
			zap.Error(err))
		return BroadHistory{Reason: err.Error()}
	}
	return BroadHistory{Snapshot: &snap}
}

// Health reports reachability only; any HTTP response counts as alive.
func (c *MarketClient) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return err
	}
	res, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	res.Body.Close()
	return nil
}

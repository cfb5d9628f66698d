package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"marketboard/backend-go/internal/config"
	"marketboard/backend-go/internal/models"
)

// ErrItemNotFound signals that the lookup service matched nothing.
var ErrItemNotFound = errors.New("no matching item")

// LookupResult is one ranked candidate from the item-lookup service.
type LookupResult struct {
	ID   int    `json:"ID"`
	Name string `json:"Name"`
}

type lookupPayload struct {
	Results []LookupResult `json:"Results"`
}

// ResolutionStrategy picks the item to use out of the ranked candidates.
type ResolutionStrategy interface {
	Pick(results []LookupResult) (models.ResolvedItem, bool)
}

// SelectFirst takes the top-ranked candidate unconditionally. No local
// re-ranking happens; the lookup service's ordering is trusted as-is.
type SelectFirst struct{}

func (SelectFirst) Pick(results []LookupResult) (models.ResolvedItem, bool) {
	if len(results) == 0 {
		return models.ResolvedItem{}, false
	}
	return models.ResolvedItem{ID: results[0].ID, Name: results[0].Name}, true
}

type LookupClient struct {
	baseURL  string
	hc       *http.Client
	language string
	limit    int
	strategy ResolutionStrategy
}

func NewLookupClient(cfg config.Config) *LookupClient {
	return &LookupClient{
		baseURL: strings.TrimRight(cfg.LookupBaseURL, "/"),
		hc: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		language: cfg.LookupLanguage,
		limit:    cfg.LookupLimit,
		strategy: SelectFirst{},
	}
}

func (c *LookupClient) Resolve(ctx context.Context, query string) (models.ResolvedItem, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/search", nil)
	if err != nil {
		return models.ResolvedItem{}, err
	}
	q := req.URL.Query()
	q.Set("indexes", "Item")
	q.Set("string", query)
	q.Set("limit", strconv.Itoa(c.limit))
	q.Set("language", c.language)
	req.URL.RawQuery = q.Encode()

	res, err := c.hc.Do(req)
	if err != nil {
		return models.ResolvedItem{}, err
	}
	defer res.Body.Close()
	if res.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
		return models.ResolvedItem{}, &UpstreamError{Service: "item-lookup", Status: res.StatusCode, Body: string(body)}
	}

	var payload lookupPayload
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return models.ResolvedItem{}, err
	}
	item, ok := c.strategy.Pick(payload.Results)
	if !ok {
		return models.ResolvedItem{}, fmt.Errorf("%w: %q", ErrItemNotFound, query)
	}
	return item, nil
}

// Health reports reachability only; any HTTP response counts as alive.
func (c *LookupClient) Health(ctx context.Context) error {
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

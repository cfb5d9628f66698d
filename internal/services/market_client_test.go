package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"marketboard/backend-go/internal/config"
)

func testMarketConfig(baseURL string) config.Config {
	return config.Config{
		MarketBaseURL:       baseURL,
		HomeRegion:          "Gaia",
		BroadHistoryEntries: 1800,
		RequestTimeout:      2 * time.Second,
	}
}

func TestFetchBuildsScopedPath(t *testing.T) {
	var gotPath, gotEntries string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotEntries = r.URL.Query().Get("entries")
		_, _ = w.Write([]byte(`{
			"itemName":"Megapotion",
			"listings":[{"pricePerUnit":10,"quantity":3,"hq":true,"total":30,"sellerName":"Rowena","worldName":"Ultima","lastReviewTime":1700000000}],
			"recentHistory":[{"pricePerUnit":9,"quantity":1,"hq":false,"buyerName":"Cid","worldName":"Ifrit","timestamp":1699999999}],
			"currentAveragePrice":12.5
		}`))
	}))
	defer srv.Close()

	c := NewMarketClient(testMarketConfig(srv.URL), zap.NewNop())
	snap, err := c.Fetch(context.Background(), "Ultima", 23167, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/api/v2/Ultima/23167" {
		t.Fatalf("unexpected path: %s", gotPath)
	}
	if gotEntries != "10" {
		t.Fatalf("unexpected entries: %s", gotEntries)
	}
	if snap.ItemName != "Megapotion" || len(snap.Listings) != 1 || len(snap.SaleRecords) != 1 {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
	if snap.AveragePrice == nil || *snap.AveragePrice != 12.5 {
		t.Fatalf("expected average 12.5, got %v", snap.AveragePrice)
	}
}

func TestFetchEmptyScopeUsesHomeRegion(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewMarketClient(testMarketConfig(srv.URL), zap.NewNop())
	if _, err := c.Fetch(context.Background(), "", 100, 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/api/v2/Gaia/100" {
		t.Fatalf("expected home region scope, got %s", gotPath)
	}
}

func TestFetchMissingFieldsAreNotErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"itemName":"Megapotion"}`))
	}))
	defer srv.Close()

	c := NewMarketClient(testMarketConfig(srv.URL), zap.NewNop())
	snap, err := c.Fetch(context.Background(), "Gaia", 100, 10)
	if err != nil {
		t.Fatalf("absent data must not fail: %v", err)
	}
	if len(snap.Listings) != 0 || len(snap.SaleRecords) != 0 {
		t.Fatalf("expected empty slices, got %+v", snap)
	}
	if snap.AveragePrice != nil {
		t.Fatalf("expected nil average price, got %v", *snap.AveragePrice)
	}
}

func TestFetchNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewMarketClient(testMarketConfig(srv.URL), zap.NewNop())
	_, err := c.Fetch(context.Background(), "Gaia", 100, 10)
	var upErr *UpstreamError
	if !errors.As(err, &upErr) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if upErr.Status != http.StatusServiceUnavailable || upErr.Service != "market-data" {
		t.Fatalf("unexpected upstream error: %+v", upErr)
	}
}

func TestFetchBroadSwallowsFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewMarketClient(testMarketConfig(srv.URL), zap.NewNop())
	broad := c.FetchBroad(context.Background(), 100)
	if broad.Snapshot != nil {
		t.Fatal("expected no snapshot on failure")
	}
	if broad.Reason == "" {
		t.Fatal("expected a failure reason")
	}
}

func TestFetchBroadUsesDeepHistory(t *testing.T) {
	var gotEntries string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotEntries = r.URL.Query().Get("entries")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewMarketClient(testMarketConfig(srv.URL), zap.NewNop())
	broad := c.FetchBroad(context.Background(), 100)
	if broad.Snapshot == nil {
		t.Fatalf("expected snapshot, got reason %q", broad.Reason)
	}
	if gotEntries != "1800" {
		t.Fatalf("expected deep history entries, got %s", gotEntries)
	}
}

package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"marketboard/backend-go/internal/config"
)

func testLookupConfig(baseURL string) config.Config {
	return config.Config{
		LookupBaseURL:  baseURL,
		LookupLanguage: "en",
		LookupLimit:    10,
		RequestTimeout: 2 * time.Second,
	}
}

func TestResolvePicksFirstCandidate(t *testing.T) {
	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		gotQuery = map[string]string{
			"indexes":  q.Get("indexes"),
			"string":   q.Get("string"),
			"limit":    q.Get("limit"),
			"language": q.Get("language"),
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"Results":[{"ID":23167,"Name":"Megapotion"},{"ID":4551,"Name":"Mega-Potion of Strength"}]}`))
	}))
	defer srv.Close()

	c := NewLookupClient(testLookupConfig(srv.URL))
	item, err := c.Resolve(context.Background(), "Megapotion")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.ID != 23167 || item.Name != "Megapotion" {
		t.Fatalf("expected first candidate, got %+v", item)
	}
	if gotQuery["indexes"] != "Item" || gotQuery["string"] != "Megapotion" {
		t.Fatalf("unexpected lookup query: %v", gotQuery)
	}
	if gotQuery["limit"] != "10" || gotQuery["language"] != "en" {
		t.Fatalf("unexpected lookup scoping: %v", gotQuery)
	}
}

func TestResolveEmptyResultIsNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"Results":[]}`))
	}))
	defer srv.Close()

	c := NewLookupClient(testLookupConfig(srv.URL))
	_, err := c.Resolve(context.Background(), "doesnotexist")
	if !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestResolveUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewLookupClient(testLookupConfig(srv.URL))
	_, err := c.Resolve(context.Background(), "Megapotion")
	var upErr *UpstreamError
	if !errors.As(err, &upErr) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if upErr.Status != http.StatusInternalServerError || upErr.Service != "item-lookup" {
		t.Fatalf("unexpected upstream error: %+v", upErr)
	}
}

func TestSelectFirstEmpty(t *testing.T) {
	if _, ok := (SelectFirst{}).Pick(nil); ok {
		t.Fatal("expected no pick from empty candidates")
	}
}

package services

import (
	"sort"
	"time"

	"marketboard/backend-go/internal/config"
	"marketboard/backend-go/internal/models"
)

const (
	recentSaleLimit   = 10
	worldHistoryLimit = 10
)

// Shaper turns raw market snapshots into the response payload. It holds no
// request state; Shape is a pure function of its arguments.
type Shaper struct {
	homeWorlds  []string
	trendWindow time.Duration
}

func NewShaper(cfg config.Config) *Shaper {
	return &Shaper{
		homeWorlds:  config.WorldsFor(cfg.HomeRegion),
		trendWindow: cfg.TrendWindow,
	}
}

func (s *Shaper) Shape(q models.SearchQuery, item models.ResolvedItem, snap models.MarketSnapshot, broad BroadHistory, now time.Time) models.AggregatedResult {
	filtered := filterListings(snap.Listings, q)
	sortListings(filtered, q.Sort)
	page := paginate(filtered, q.Page, q.PerPage)

	// Cheapest is read off the paginated slice, so page 2's cheapest is that
	// page's first price, not the global minimum.
	var cheapest *int
	if len(page) > 0 {
		p := page[0].PricePerUnit
		cheapest = &p
	}

	recent := snap.SaleRecords
	if len(recent) > recentSaleLimit {
		recent = recent[:recentSaleLimit]
	}
	if recent == nil {
		recent = []models.SaleRecord{}
	}

	return models.AggregatedResult{
		TsISO:        now.UTC().Format(time.RFC3339),
		Query:        q.Query,
		World:        q.World,
		HQOnly:       q.HQOnly,
		MinPrice:     q.MinPrice,
		MaxPrice:     q.MaxPrice,
		Page:         q.Page,
		PerPage:      q.PerPage,
		Sort:         q.Sort,
		ItemID:       item.ID,
		ItemName:     item.Name,
		Total:        len(filtered),
		Listings:     page,
		RecentSales:  recent,
		WorldSales:   s.worldSales(broad.Snapshot),
		Trend:        s.trend(broad.Snapshot, now),
		Cheapest:     cheapest,
		AveragePrice: snap.AveragePrice,
	}
}

func filterListings(in []models.Listing, q models.SearchQuery) []models.Listing {
	out := make([]models.Listing, 0, len(in))
	for _, l := range in {
		if q.HQOnly && !l.HQ {
			continue
		}
		if l.PricePerUnit < q.MinPrice || l.PricePerUnit > q.MaxPrice {
			continue
		}
		out = append(out, l)
	}
	return out
}

// sortListings orders in place. An unrecognized key leaves the upstream
// order untouched.
func sortListings(items []models.Listing, key string) {
	switch key {
	case models.SortPriceAsc:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].PricePerUnit < items[j].PricePerUnit
		})
	case models.SortPriceDesc:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].PricePerUnit > items[j].PricePerUnit
		})
	case models.SortRecent:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].LastReviewTime > items[j].LastReviewTime
		})
	}
}

func paginate(items []models.Listing, page, perPage int) []models.Listing {
	total := len(items)
	start := (page - 1) * perPage
	if start > total {
		start = total
	}
	end := start + perPage
	if end > total {
		end = total
	}
	paged := []models.Listing{}
	if start < end {
		paged = items[start:end]
	}
	return paged
}

// worldSales groups the broad-region history by world, keeping at most ten
// records per home-region world. Upstream history arrives most-recent-first
// and the slice keeps that order.
func (s *Shaper) worldSales(broad *models.MarketSnapshot) map[string][]models.SaleRecord {
	out := map[string][]models.SaleRecord{}
	if broad == nil {
		return out
	}
	allowed := make(map[string]bool, len(s.homeWorlds))
	for _, w := range s.homeWorlds {
		allowed[w] = true
	}
	for _, rec := range broad.SaleRecords {
		if !allowed[rec.WorldName] {
			continue
		}
		if len(out[rec.WorldName]) >= worldHistoryLimit {
			continue
		}
		out[rec.WorldName] = append(out[rec.WorldName], rec)
	}
	return out
}

func (s *Shaper) trend(broad *models.MarketSnapshot, now time.Time) []models.SaleRecord {
	out := []models.SaleRecord{}
	if broad == nil {
		return out
	}
	cutoff := now.Add(-s.trendWindow).Unix()
	for _, rec := range broad.SaleRecords {
		if rec.Timestamp >= cutoff {
			out = append(out, rec)
		}
	}
	return out
}

package models

const (
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
	SortRecent    = "recent"
)

// SearchQuery is the normalized inbound query. Parsing defaults are applied
// before it is built, so Page and PerPage are always >= 1.
type SearchQuery struct {
	Query    string
	World    string
	HQOnly   bool
	MinPrice int
	MaxPrice int
	Page     int
	PerPage  int
	Sort     string
}

type ResolvedItem struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Listing fields pass through from the market-data service unchanged; the
// backend only filters, sorts and slices them.
type Listing struct {
	PricePerUnit   int    `json:"pricePerUnit"`
	Quantity       int    `json:"quantity"`
	HQ             bool   `json:"hq"`
	Total          int    `json:"total"`
	SellerName     string `json:"sellerName"`
	WorldName      string `json:"worldName"`
	LastReviewTime int64  `json:"lastReviewTime"`
}

type SaleRecord struct {
	PricePerUnit int    `json:"pricePerUnit"`
	Quantity     int    `json:"quantity"`
	HQ           bool   `json:"hq"`
	BuyerName    string `json:"buyerName"`
	WorldName    string `json:"worldName"`
	Timestamp    int64  `json:"timestamp"`
}

// MarketSnapshot mirrors the market-data service payload. Absent upstream
// fields decode to zero values; a missing average price stays nil.
type MarketSnapshot struct {
	ItemName     string       `json:"itemName"`
	Listings     []Listing    `json:"listings"`
	SaleRecords  []SaleRecord `json:"recentHistory"`
	AveragePrice *float64     `json:"currentAveragePrice"`
}

type AggregatedResult struct {
	TsISO        string                  `json:"tsISO"`
	Query        string                  `json:"query"`
	World        string                  `json:"world"`
	HQOnly       bool                    `json:"hq_only"`
	MinPrice     int                     `json:"min_price"`
	MaxPrice     int                     `json:"max_price"`
	Page         int                     `json:"page"`
	PerPage      int                     `json:"per_page"`
	Sort         string                  `json:"sort"`
	ItemID       int                     `json:"item_id"`
	ItemName     string                  `json:"item_name"`
	Total        int                     `json:"total"`
	Listings     []Listing               `json:"listings"`
	RecentSales  []SaleRecord            `json:"recent_sales"`
	WorldSales   map[string][]SaleRecord `json:"world_sales"`
	Trend        []SaleRecord            `json:"trend"`
	Cheapest     *int                    `json:"cheapest"`
	AveragePrice *float64                `json:"average_price"`
}

type DepStatus struct {
	Ok    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

type HealthResponse struct {
	Ok         bool                 `json:"ok"`
	TsISO      string               `json:"tsISO"`
	Service    string               `json:"service"`
	Version    string               `json:"version,omitempty"`
	DepsStatus map[string]DepStatus `json:"deps_status"`
}

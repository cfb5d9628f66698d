package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port                string
	Env                 string
	LookupBaseURL       string
	MarketBaseURL       string
	RedisURL            string
	HomeRegion          string
	LookupLanguage      string
	LookupLimit         int
	HistoryEntries      int
	BroadHistoryEntries int
	TrendWindow         time.Duration
	CacheTTL            time.Duration
	RequestTimeout      time.Duration
	RateLimitPerMin     int
	MemoryCacheSize     int
}

func Load() Config {
	return Config{
		Port:                getEnv("PORT", "8080"),
		Env:                 getEnv("APP_ENV", "production"),
		LookupBaseURL:       getEnv("ITEM_LOOKUP_BASE_URL", "https://xivapi.com"),
		MarketBaseURL:       getEnv("MARKET_DATA_BASE_URL", "https://universalis.app"),
		RedisURL:            getEnv("REDIS_URL", "redis://localhost:6379"),
		HomeRegion:          getEnv("HOME_REGION", "Gaia"),
		LookupLanguage:      getEnv("ITEM_LOOKUP_LANGUAGE", "en"),
		LookupLimit:         getEnvInt("ITEM_LOOKUP_LIMIT", 10),
		HistoryEntries:      getEnvInt("HISTORY_ENTRIES", 10),
		BroadHistoryEntries: getEnvInt("BROAD_HISTORY_ENTRIES", 1800),
		TrendWindow:         time.Duration(getEnvInt("TREND_WINDOW_DAYS", 90)) * 24 * time.Hour,
		CacheTTL:            getEnvDuration("CACHE_TTL_SEARCH", 60*time.Second),
		RequestTimeout:      getEnvDuration("UPSTREAM_TIMEOUT", 12*time.Second),
		RateLimitPerMin:     getEnvInt("RATE_LIMIT_PER_MIN", 120),
		MemoryCacheSize:     getEnvInt("MEMORY_CACHE_SIZE", 512),
	}
}

func getEnv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return time.Duration(i) * time.Second
}

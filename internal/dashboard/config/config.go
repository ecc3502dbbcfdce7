package config

import (
	"time"

	"golang-stock-sentiment/pkg/common"
	"golang-stock-sentiment/pkg/config"
	"golang-stock-sentiment/pkg/feed"
)

// Backend holds the location and limits of the sentiment backend.
type Backend struct {
	BaseURL             string        `mapstructure:"base_url"`
	StreamURL           string        `mapstructure:"stream_url"`
	RequestTimeout      time.Duration `mapstructure:"request_timeout"`
	HandshakeTimeout    time.Duration `mapstructure:"handshake_timeout"`
	MaxRequestPerMinute int           `mapstructure:"max_request_per_minute"`
}

// Feed holds subscription channel settings shared by all feed views.
type Feed struct {
	KeepaliveInterval time.Duration `mapstructure:"keepalive_interval"`
	RefreshMessage    string        `mapstructure:"refresh_message"`
	MaxItems          int           `mapstructure:"max_items"`
	NewsLimit         int           `mapstructure:"news_limit"`
}

// Comparison holds the market comparison card settings.
type Comparison struct {
	Tickers  []string      `mapstructure:"tickers"`
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

// Copilot holds trading copilot settings.
type Copilot struct {
	// HistoryTurns is how many earlier transcript turns accompany each new
	// user message. Zero sends only the new message.
	HistoryTurns int    `mapstructure:"history_turns"`
	JobStream    string `mapstructure:"job_stream"`
}

// Scheduler holds periodic refresh settings.
type Scheduler struct {
	AggregateRefreshCron string        `mapstructure:"aggregate_refresh_cron"`
	PollingInterval      time.Duration `mapstructure:"polling_interval"`
}

// Config holds the full configuration for the dashboard service.
type Config struct {
	App        config.App          `mapstructure:"app"`
	Logger     config.Logger       `mapstructure:"logger"`
	Redis      config.Redis        `mapstructure:"redis"`
	API        config.API          `mapstructure:"api"`
	Telegram   config.Telegram     `mapstructure:"telegram"`
	Backend    Backend             `mapstructure:"backend"`
	Feed       Feed                `mapstructure:"feed"`
	Comparison Comparison          `mapstructure:"comparison"`
	Copilot    Copilot             `mapstructure:"copilot"`
	Scheduler  Scheduler           `mapstructure:"scheduler"`
	Tickers    map[string][]string `mapstructure:"tickers"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"app.name":                       "sentiment-dashboard",
		"logger.level":                   "info",
		"logger.encoding":                "json",
		"api.port":                       8080,
		"redis.port":                     6379,
		"redis.pool_size":                10,
		"redis.stream_max_len":           1000,
		"backend.base_url":               "http://localhost:8000",
		"backend.stream_url":             "ws://localhost:8000",
		"backend.request_timeout":        "30s",
		"backend.handshake_timeout":      "10s",
		"backend.max_request_per_minute": 120,
		"feed.keepalive_interval":        "60s",
		"feed.refresh_message":           "Request update",
		"feed.max_items":                 500,
		"feed.news_limit":                100,
		"comparison.tickers":             []string{"TSLA", "NVDA", "AAPL"},
		"comparison.cache_ttl":           "5m",
		"copilot.job_stream":             common.RedisStreamCopilotJobCreated,
		"scheduler.polling_interval":     "5s",
	}
}

// Load loads the dashboard configuration from the given path.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := config.Load(path, &cfg, defaults()); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// KeywordTable returns the configured ticker alias table, or the default
// table when none is configured.
func (c *Config) KeywordTable() feed.KeywordTable {
	if len(c.Tickers) == 0 {
		return feed.DefaultKeywordTable()
	}
	return feed.KeywordTable(c.Tickers).Normalize()
}

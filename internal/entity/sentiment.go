package entity

import (
	"fmt"
	"time"
)

// SentimentPoint is one time bucket of aggregated mention counts.
type SentimentPoint struct {
	TimeUnit  string `json:"time_unit"`
	Positives int    `json:"positives"`
	Negatives int    `json:"negatives"`
	Neutrals  int    `json:"neutrals"`
}

// SentimentBreakdown is the count triple for a whole time window.
type SentimentBreakdown struct {
	Positives int `json:"positives"`
	Negatives int `json:"negatives"`
	Neutrals  int `json:"neutrals"`
}

func (b SentimentBreakdown) Total() int {
	return b.Positives + b.Negatives + b.Neutrals
}

// Granularity is the bucket width of the line chart aggregation.
type Granularity string

const (
	GranularityHourly  Granularity = "hourly"
	GranularityMinutes Granularity = "minutes"
)

func ParseGranularity(s string) (Granularity, error) {
	switch Granularity(s) {
	case "":
		return GranularityHourly, nil
	case GranularityHourly, GranularityMinutes:
		return Granularity(s), nil
	}
	return "", fmt.Errorf("unsupported granularity %q", s)
}

// TimeRange is the look-back window of the pie chart.
type TimeRange string

const DefaultTimeRange TimeRange = "1h"

var timeRanges = map[TimeRange]time.Duration{
	"30m": 30 * time.Minute,
	"1h":  time.Hour,
	"6h":  6 * time.Hour,
	"12h": 12 * time.Hour,
	"24h": 24 * time.Hour,
	"7d":  7 * 24 * time.Hour,
}

// Duration returns the window length. Unknown ranges fall back to one hour.
func (r TimeRange) Duration() time.Duration {
	if d, ok := timeRanges[r]; ok {
		return d
	}
	return time.Hour
}

// StartTime returns the window start relative to now, in UTC.
func (r TimeRange) StartTime(now time.Time) time.Time {
	return now.Add(-r.Duration()).UTC()
}

package dto

import (
	"time"

	"golang-stock-sentiment/internal/entity"
)

// CreateFeedRequest opens a live mention feed view.
type CreateFeedRequest struct {
	Kind              string   `json:"kind" example:"news"`
	Ticker            string   `json:"ticker" example:"NVDA"`
	AdditionalTickers []string `json:"additional_tickers"`
	Limit             int      `json:"limit" example:"100"`
}

// FeedResponse is the state of a feed view.
type FeedResponse struct {
	ID                string        `json:"id"`
	Kind              string        `json:"kind"`
	Ticker            string        `json:"ticker"`
	AdditionalTickers []string      `json:"additional_tickers,omitempty"`
	Keywords          []string      `json:"keywords"`
	State             string        `json:"state"`
	Loading           bool          `json:"loading"`
	Count             int           `json:"count"`
	Sources           []string      `json:"sources"`
	Items             []MentionItem `json:"items"`
	OpenedAt          time.Time     `json:"opened_at"`
}

// FeedFilter narrows the items returned for a feed view. Empty fields
// match everything.
type FeedFilter struct {
	Search    string `query:"search"`
	Sentiment string `query:"sentiment"`
	Source    string `query:"source"`
}

// MentionItem is a mention prepared for display.
type MentionItem struct {
	entity.Mention
	Published string `json:"published"`
}

// CreateSentimentRequest opens a sentiment chart view.
type CreateSentimentRequest struct {
	Kind        string `json:"kind" example:"line"`
	Ticker      string `json:"ticker" example:"NVDA"`
	Granularity string `json:"granularity" example:"hourly"`
	Range       string `json:"range" example:"1h"`
}

// SentimentPointItem is a sentiment bucket prepared for display.
type SentimentPointItem struct {
	entity.SentimentPoint
	Label string `json:"label"`
}

// SentimentResponse is the state of a sentiment chart view.
type SentimentResponse struct {
	ID          string                     `json:"id"`
	Kind        string                     `json:"kind"`
	Ticker      string                     `json:"ticker"`
	Keywords    string                     `json:"keywords"`
	Granularity string                     `json:"granularity,omitempty"`
	Range       string                     `json:"range,omitempty"`
	Loading     bool                       `json:"loading"`
	Error       string                     `json:"error,omitempty"`
	Points      []SentimentPointItem       `json:"points,omitempty"`
	Breakdown   *entity.SentimentBreakdown `json:"breakdown,omitempty"`
	FetchedAt   *time.Time                 `json:"fetched_at,omitempty"`
}

// CreateConversationRequest starts a copilot conversation.
type CreateConversationRequest struct {
	Ticker string `json:"ticker" example:"AAPL"`
}

// SendMessageRequest submits user text to a conversation.
type SendMessageRequest struct {
	Content string `json:"content" example:"buy 10 AAPL if it drops below 150"`
}

// SendMessageResponse is the outcome of one copilot round trip.
type SendMessageResponse struct {
	Outcome string         `json:"outcome"`
	Reply   entity.Message `json:"reply"`
	Job     *entity.Job    `json:"job,omitempty"`
}

// ConversationResponse is the state of a copilot conversation.
type ConversationResponse struct {
	ID               string           `json:"id"`
	Ticker           string           `json:"ticker"`
	State            string           `json:"state"`
	NeedsDetails     bool             `json:"needs_details"`
	InputPlaceholder string           `json:"input_placeholder"`
	Messages         []entity.Message `json:"messages"`
	Jobs             []entity.Job     `json:"jobs"`
}

// StockCard is one market comparison card.
type StockCard struct {
	entity.StockDetails
	MarketCapDisplay string `json:"market_cap_display"`
	EmployeesDisplay string `json:"employees_display"`
}

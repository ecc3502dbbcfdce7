package dto

import (
	"encoding/json"

	"golang-stock-sentiment/internal/entity"
)

// ChatTurn is one role-tagged message sent to the chat endpoint.
type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the body of POST /llm/chat/.
type ChatRequest struct {
	Messages []ChatTurn `json:"messages"`
}

// ChatEnvelope is the outer chat response. Response holds either a JSON
// encoded string or the reply object itself.
type ChatEnvelope struct {
	Response json.RawMessage `json:"response"`
}

// ChatReplyPayload is the copilot reply object inside the envelope.
type ChatReplyPayload struct {
	ID        string            `json:"id"`
	Specify   *bool             `json:"specify"`
	Message   string            `json:"message"`
	Action    entity.FlexString `json:"action"`
	Target    entity.FlexString `json:"target"`
	Condition entity.FlexString `json:"condition"`
	Quantity  entity.FlexString `json:"quantity"`
	TimeFrame entity.FlexString `json:"timeFrame"`
}

// StockDetailsEnvelope is the response of GET /tickers/stock_details/{ticker}.
type StockDetailsEnvelope struct {
	Results *entity.StockDetails `json:"results"`
}

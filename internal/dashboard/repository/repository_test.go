package repository

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"golang-stock-sentiment/internal/dashboard/config"
	"golang-stock-sentiment/internal/entity"
	"golang-stock-sentiment/pkg/feed"
	"golang-stock-sentiment/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *BackendClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewBackendClient(config.Backend{BaseURL: srv.URL, RequestTimeout: 5 * time.Second}, logger.NewNop())
}

func TestSentimentAggregation(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sentiments/sentiment_aggregation", r.URL.Path)
		assert.Equal(t, "nvidia,nvda", r.URL.Query().Get("keywords"))
		assert.Equal(t, "hourly", r.URL.Query().Get("aggregation_type"))
		_, _ = w.Write([]byte(`[{"time_unit":"2024-01-01T00:00:00Z","positives":5,"negatives":2,"neutrals":3}]`))
	})

	points, err := NewSentimentRepository(client).Aggregation(context.Background(), "nvidia,nvda", entity.GranularityHourly)
	require.NoError(t, err)
	assert.Equal(t, []entity.SentimentPoint{{TimeUnit: "2024-01-01T00:00:00Z", Positives: 5, Negatives: 2, Neutrals: 3}}, points)
}

func TestSentimentPieChart(t *testing.T) {
	start := time.Date(2024, 1, 1, 11, 0, 0, 0, time.UTC)
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sentiments/sentiment_pie_chart", r.URL.Path)
		assert.Equal(t, "minutes", r.URL.Query().Get("aggregation_type"))
		assert.Equal(t, "2024-01-01T11:00:00.000Z", r.URL.Query().Get("start_time"))
		_, _ = w.Write([]byte(`{"positives":1,"negatives":2,"neutrals":3}`))
	})

	got, err := NewSentimentRepository(client).PieChart(context.Background(), "xom", start)
	require.NoError(t, err)
	assert.Equal(t, 6, got.Total())
}

func TestBackendErrors(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("keywords") == "broken" {
			_, _ = w.Write([]byte(`{not json`))
			return
		}
		http.Error(w, "upstream down", http.StatusBadGateway)
	})
	repo := NewSentimentRepository(client)

	_, err := repo.Aggregation(context.Background(), "nvda", entity.GranularityHourly)
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadGateway, statusErr.StatusCode)

	_, err = repo.Aggregation(context.Background(), "broken", entity.GranularityHourly)
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestDecodeChatReply(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want entity.ChatReply
	}{
		{
			name: "clarification as object",
			raw:  `{"id":"specify_needed","specify":true,"message":"Which quantity?"}`,
			want: entity.NeedsClarification{Message: "Which quantity?"},
		},
		{
			name: "clarification as encoded string",
			raw:  `"{\"id\":\"specify_needed\",\"specify\":true,\"message\":\"Which quantity?\"}"`,
			want: entity.NeedsClarification{Message: "Which quantity?"},
		},
		{
			name: "complete",
			raw:  `{"specify":false,"action":"buy","target":"AAPL","condition":"price<150","quantity":"10","timeFrame":"1d"}`,
			want: entity.Complete{
				Message:     "Job created: BUY 10 AAPL when price<150 (1d)",
				Instruction: entity.Instruction{Action: "buy", Target: "AAPL", Condition: "price<150", Quantity: "10", TimeFrame: "1d"},
			},
		},
		{
			name: "complete with numeric quantity in code fence",
			raw:  "\"```json\\n{\\\"specify\\\":false,\\\"action\\\":\\\"sell\\\",\\\"target\\\":\\\"TSLA\\\",\\\"quantity\\\":5,\\\"message\\\":\\\"Done\\\"}\\n```\"",
			want: entity.Complete{
				Message:     "Done",
				Instruction: entity.Instruction{Action: "sell", Target: "TSLA", Quantity: "5"},
			},
		},
		{
			name: "no flag and no instruction",
			raw:  `{"message":"What would you like to trade?"}`,
			want: entity.NeedsClarification{Message: "What would you like to trade?"},
		},
		{
			name: "specify_needed id without flag",
			raw:  `{"id":"specify_needed","action":"buy","target":"AAPL"}`,
			want: entity.NeedsClarification{Message: defaultClarification},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DecodeChatReply(json.RawMessage(tc.raw))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDecodeChatReplyMalformed(t *testing.T) {
	for _, raw := range []string{``, `null`, `"not json"`, `[1,2]`} {
		_, err := DecodeChatReply(json.RawMessage(raw))
		assert.ErrorIs(t, err, ErrMalformedResponse, raw)
	}
}

func TestChatRepository(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/llm/chat/", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body struct {
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Len(t, body.Messages, 1)
		assert.Equal(t, "user", body.Messages[0].Role)

		_, _ = w.Write([]byte(`{"response":"{\"id\":\"specify_needed\",\"specify\":true,\"message\":\"Which quantity?\"}"}`))
	})

	reply, err := NewChatRepository(client, logger.NewNop()).Chat(context.Background(), []entity.Message{
		{Role: entity.RoleUser, Content: "buy apple"},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.NeedsClarification{Message: "Which quantity?"}, reply)
}

func TestStockDetailsCached(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		switch r.URL.Path {
		case "/tickers/stock_details/NVDA":
			_, _ = w.Write([]byte(`{"results":{"ticker":"NVDA","name":"NVIDIA Corp","market_cap":2.2e12,"total_employees":29600,"currency_name":"usd"}}`))
		case "/tickers/stock_details/ZZZZ":
			_, _ = w.Write([]byte(`{}`))
		default:
			http.NotFound(w, r)
		}
	})
	repo := NewStockDetailsRepository(client, logger.NewNop(), time.Minute)

	for i := 0; i < 3; i++ {
		details, err := repo.GetStockDetails(context.Background(), "nvda")
		require.NoError(t, err)
		assert.Equal(t, "NVIDIA Corp", details.Name)
	}
	assert.Equal(t, int32(1), calls.Load())

	_, err := repo.GetStockDetails(context.Background(), "ZZZZ")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.GetStockDetails(context.Background(), "MISSING")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.GetStockDetails(context.Background(), " ")
	assert.Error(t, err)
}

type captureDialer struct {
	mu   sync.Mutex
	urls []string
}

func (d *captureDialer) Dial(_ context.Context, rawURL string) (feed.Conn, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.urls = append(d.urls, rawURL)
	return newIdleConn(), nil
}

type idleConn struct {
	done chan struct{}
	once sync.Once
}

func newIdleConn() *idleConn { return &idleConn{done: make(chan struct{})} }

func (c *idleConn) ReadMessage() (int, []byte, error) {
	<-c.done
	return 0, nil, errors.New("closed")
}

func (c *idleConn) WriteMessage(int, []byte) error { return nil }

func (c *idleConn) Close() error {
	c.once.Do(func() { close(c.done) })
	return nil
}

func TestMentionStreamURLs(t *testing.T) {
	dialer := &captureDialer{}
	repo := NewMentionStreamRepository(dialer,
		config.Backend{StreamURL: "ws://backend:8000"},
		config.Feed{NewsLimit: 100, KeepaliveInterval: time.Minute},
		logger.NewNop())

	news, err := repo.OpenNews(context.Background(), []string{"NVDA", "AMD"}, 0)
	require.NoError(t, err)
	defer news.Close()

	reddit, err := repo.OpenReddit(context.Background(), []string{"Nvidia", "nvda"})
	require.NoError(t, err)
	defer reddit.Close()

	require.Len(t, dialer.urls, 2)
	newsURL, err := url.Parse(dialer.urls[0])
	require.NoError(t, err)
	assert.Equal(t, "/news/ws/ticker_news", newsURL.Path)
	assert.Equal(t, "NVDA,AMD", newsURL.Query().Get("tickers"))
	assert.Equal(t, "100", newsURL.Query().Get("limit"))

	redditURL, err := url.Parse(dialer.urls[1])
	require.NoError(t, err)
	assert.Equal(t, "/posts/ws/keyword_posts", redditURL.Path)
	assert.Equal(t, "nvidia,nvda", redditURL.Query().Get("keywords"))
}

package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexString(t *testing.T) {
	var v struct {
		A FlexString `json:"a"`
		B FlexString `json:"b"`
		C FlexString `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":"10","b":1704103200.5,"c":null}`), &v))
	assert.Equal(t, "10", v.A.String())
	assert.Equal(t, "1704103200.5", v.B.String())
	assert.Equal(t, "", v.C.String())

	assert.Error(t, json.Unmarshal([]byte(`{"a":true}`), &v))
}

func TestNewsArticleMention(t *testing.T) {
	var a NewsArticle
	require.NoError(t, json.Unmarshal([]byte(`{
		"id":"n1","ticker":["nvda","amd"],"title":"Chips rally","description":"<p>up</p>",
		"url":"https://example.com/n1","published_utc":"2024-01-01T10:00:00Z","source":"Reuters",
		"insights":{"NVDA":{"sentiment":"positive","reasoning":"beat"}}
	}`), &a))

	m := a.Mention()
	assert.Equal(t, "n1", a.RecordID())
	assert.Equal(t, MentionKindNews, m.Kind)
	assert.Equal(t, []string{"NVDA", "AMD"}, m.Subjects)
	assert.Equal(t, "positive", m.Sentiments["NVDA"].Sentiment)
	assert.Equal(t, "2024-01-01T10:00:00Z", m.PublishedAt)
}

func TestRedditPostMention(t *testing.T) {
	var p RedditPost
	require.NoError(t, json.Unmarshal([]byte(`{
		"_id":"r1","keyword":"Nvidia","title":"NVDA to the moon","url":"https://reddit.com/r1",
		"created_utc":1704103200,"subreddit":"wallstreetbets","sentiment_label":"positive","sentiment_score":0.91
	}`), &p))

	m := p.Mention()
	assert.Equal(t, "r1", p.RecordID())
	assert.Equal(t, "r/wallstreetbets", m.Source)
	assert.Equal(t, []string{"nvidia"}, m.Subjects)
	assert.Equal(t, "positive", m.Sentiments["nvidia"].Sentiment)
	assert.Equal(t, "1704103200", m.PublishedAt)
	assert.InDelta(t, 0.91, m.Score, 1e-9)
}

func TestTimeRange(t *testing.T) {
	now := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), TimeRange("7d").StartTime(now))
	assert.Equal(t, 30*time.Minute, TimeRange("30m").Duration())
	assert.Equal(t, time.Hour, TimeRange("2y").Duration())
}

func TestParseGranularity(t *testing.T) {
	g, err := ParseGranularity("")
	require.NoError(t, err)
	assert.Equal(t, GranularityHourly, g)

	g, err = ParseGranularity("minutes")
	require.NoError(t, err)
	assert.Equal(t, GranularityMinutes, g)

	_, err = ParseGranularity("weekly")
	assert.Error(t, err)
}

func TestInstructionSummary(t *testing.T) {
	i := Instruction{Action: "buy", Target: "AAPL", Condition: "price<150", Quantity: "10", TimeFrame: "1d"}
	assert.Equal(t, "BUY 10 AAPL when price<150 (1d)", i.Summary())
	assert.Equal(t, "SELL TSLA", Instruction{Action: "sell", Target: "TSLA"}.Summary())
}

func TestBreakdownTotal(t *testing.T) {
	assert.Equal(t, 10, SentimentBreakdown{Positives: 5, Negatives: 2, Neutrals: 3}.Total())
}

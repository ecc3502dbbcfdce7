package entity

import "strings"

// Insight is the backend's per-subject sentiment annotation.
type Insight struct {
	Sentiment string `json:"sentiment"`
	Reasoning string `json:"reasoning"`
}

// NewsArticle is one record of the ticker news stream.
type NewsArticle struct {
	ID           string             `json:"id"`
	Tickers      []string           `json:"ticker"`
	Title        string             `json:"title"`
	Description  string             `json:"description"`
	URL          string             `json:"url"`
	PublishedUTC FlexString         `json:"published_utc"`
	Source       string             `json:"source"`
	ImageURL     string             `json:"image_url"`
	Insights     map[string]Insight `json:"insights"`
}

func (a NewsArticle) RecordID() string { return a.ID }

// Mention normalizes the article into the shared mention shape.
func (a NewsArticle) Mention() Mention {
	return Mention{
		ID:          a.ID,
		Kind:        MentionKindNews,
		Subjects:    upperAll(a.Tickers),
		Title:       a.Title,
		Body:        a.Description,
		Source:      a.Source,
		URL:         a.URL,
		ImageURL:    a.ImageURL,
		PublishedAt: a.PublishedUTC.String(),
		Sentiments:  a.Insights,
	}
}

// RedditPost is one record of the keyword post stream.
type RedditPost struct {
	ID             string     `json:"_id"`
	Keyword        string     `json:"keyword"`
	Title          string     `json:"title"`
	URL            string     `json:"url"`
	CreatedUTC     FlexString `json:"created_utc"`
	Subreddit      string     `json:"subreddit"`
	SentimentLabel string     `json:"sentiment_label"`
	SentimentScore float64    `json:"sentiment_score"`
}

func (p RedditPost) RecordID() string { return p.ID }

// Mention normalizes the post into the shared mention shape. The post's
// sentiment is attributed to the keyword it matched.
func (p RedditPost) Mention() Mention {
	m := Mention{
		ID:          p.ID,
		Kind:        MentionKindReddit,
		Title:       p.Title,
		Source:      "r/" + p.Subreddit,
		URL:         p.URL,
		PublishedAt: p.CreatedUTC.String(),
		Score:       p.SentimentScore,
	}
	if p.Keyword != "" {
		m.Subjects = []string{strings.ToLower(p.Keyword)}
		if p.SentimentLabel != "" {
			m.Sentiments = map[string]Insight{
				strings.ToLower(p.Keyword): {Sentiment: p.SentimentLabel},
			}
		}
	}
	return m
}

type MentionKind string

const (
	MentionKindNews   MentionKind = "news"
	MentionKindReddit MentionKind = "reddit"
)

// Mention is a news article or social post tagged with stock subjects.
type Mention struct {
	ID          string             `json:"id"`
	Kind        MentionKind        `json:"kind"`
	Subjects    []string           `json:"subjects"`
	Title       string             `json:"title"`
	Body        string             `json:"body,omitempty"`
	Source      string             `json:"source"`
	URL         string             `json:"url,omitempty"`
	ImageURL    string             `json:"image_url,omitempty"`
	PublishedAt string             `json:"published_at"`
	Sentiments  map[string]Insight `json:"sentiments,omitempty"`
	Score       float64            `json:"score,omitempty"`
}

func upperAll(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToUpper(s)
	}
	return out
}

package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang-stock-sentiment/internal/entity"
	"golang-stock-sentiment/pkg/feed"
)

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

type idleDialer struct{}

func (idleDialer) Dial(context.Context, string) (feed.Conn, error) { return newIdleConn(), nil }

type openCall struct {
	kind     FeedKind
	subjects []string
	limit    int
}

type fakeStreamRepo struct {
	mu      sync.Mutex
	err     error
	calls   []openCall
	news    []*feed.Channel[entity.NewsArticle]
	reddits []*feed.Channel[entity.RedditPost]
}

func (r *fakeStreamRepo) OpenNews(ctx context.Context, tickers []string, limit int) (*feed.Channel[entity.NewsArticle], error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, openCall{kind: FeedKindNews, subjects: tickers, limit: limit})
	if r.err != nil {
		return nil, r.err
	}
	ch, err := feed.Open[entity.NewsArticle](ctx, idleDialer{}, feed.Options{URL: "ws://backend/news", Order: feed.MergePrepend}, nil)
	if err != nil {
		return nil, err
	}
	r.news = append(r.news, ch)
	return ch, nil
}

func (r *fakeStreamRepo) OpenReddit(ctx context.Context, keywords []string) (*feed.Channel[entity.RedditPost], error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, openCall{kind: FeedKindReddit, subjects: keywords})
	if r.err != nil {
		return nil, r.err
	}
	ch, err := feed.Open[entity.RedditPost](ctx, idleDialer{}, feed.Options{URL: "ws://backend/posts", Order: feed.MergeAppend}, nil)
	if err != nil {
		return nil, err
	}
	r.reddits = append(r.reddits, ch)
	return ch, nil
}

func (r *fakeStreamRepo) lastNews() *feed.Channel[entity.NewsArticle] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.news[len(r.news)-1]
}

func (r *fakeStreamRepo) lastReddit() *feed.Channel[entity.RedditPost] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.reddits[len(r.reddits)-1]
}

type fetchFunc func() ([]entity.SentimentPoint, *entity.SentimentBreakdown, error)

type fakeSentimentRepo struct {
	mu        sync.Mutex
	queue     []fetchFunc
	keywords  []string
	pieStarts []time.Time
}

func (r *fakeSentimentRepo) push(fn fetchFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.queue = append(r.queue, fn)
}

func (r *fakeSentimentRepo) next(keywords string) fetchFunc {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.keywords = append(r.keywords, keywords)
	if len(r.queue) == 0 {
		return func() ([]entity.SentimentPoint, *entity.SentimentBreakdown, error) {
			return nil, nil, errors.New("unexpected fetch")
		}
	}
	fn := r.queue[0]
	r.queue = r.queue[1:]
	return fn
}

func (r *fakeSentimentRepo) Aggregation(_ context.Context, keywords string, _ entity.Granularity) ([]entity.SentimentPoint, error) {
	points, _, err := r.next(keywords)()
	return points, err
}

func (r *fakeSentimentRepo) PieChart(_ context.Context, keywords string, start time.Time) (*entity.SentimentBreakdown, error) {
	r.mu.Lock()
	r.pieStarts = append(r.pieStarts, start)
	r.mu.Unlock()
	_, breakdown, err := r.next(keywords)()
	return breakdown, err
}

func (r *fakeSentimentRepo) fetches() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.keywords)
}

func points(values ...int) fetchFunc {
	return func() ([]entity.SentimentPoint, *entity.SentimentBreakdown, error) {
		out := make([]entity.SentimentPoint, len(values))
		for i, v := range values {
			out[i] = entity.SentimentPoint{TimeUnit: "2024-01-01T00:00:00Z", Positives: v}
		}
		return out, nil, nil
	}
}

func failing(err error) fetchFunc {
	return func() ([]entity.SentimentPoint, *entity.SentimentBreakdown, error) {
		return nil, nil, err
	}
}

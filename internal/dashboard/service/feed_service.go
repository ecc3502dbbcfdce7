package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang-stock-sentiment/internal/dashboard/dto"
	"golang-stock-sentiment/internal/dashboard/repository"
	"golang-stock-sentiment/internal/entity"
	"golang-stock-sentiment/pkg/feed"
	"golang-stock-sentiment/pkg/logger"
	"golang-stock-sentiment/pkg/utils"

	"github.com/google/uuid"
)

type FeedKind string

const (
	FeedKindNews   FeedKind = "news"
	FeedKindReddit FeedKind = "reddit"
)

// FeedService manages live mention feed views. Every view owns one
// subscription channel; nothing is shared between views.
type FeedService interface {
	CreateFeed(ctx context.Context, req *dto.CreateFeedRequest) (*dto.FeedResponse, error)
	GetFeed(ctx context.Context, id string, filter dto.FeedFilter) (*dto.FeedResponse, error)
	UpdateFeed(ctx context.Context, id string, req *dto.CreateFeedRequest) (*dto.FeedResponse, error)
	DeleteFeed(ctx context.Context, id string) error
	Shutdown()
}

// mentionChannel erases the record type of a feed.Channel.
type mentionChannel interface {
	Mentions() []entity.Mention
	State() feed.State
	Close() error
}

type newsChannel struct {
	*feed.Channel[entity.NewsArticle]
}

func (c newsChannel) Mentions() []entity.Mention {
	items := c.Items()
	out := make([]entity.Mention, len(items))
	for i, a := range items {
		out[i] = a.Mention()
	}
	return out
}

type redditChannel struct {
	*feed.Channel[entity.RedditPost]
}

func (c redditChannel) Mentions() []entity.Mention {
	items := c.Items()
	out := make([]entity.Mention, len(items))
	for i, p := range items {
		out[i] = p.Mention()
	}
	return out
}

type feedScope struct {
	kind              FeedKind
	ticker            string
	additionalTickers []string
	limit             int
}

type feedView struct {
	id string

	mu       sync.Mutex
	scope    feedScope
	keywords []string
	channel  mentionChannel
	openedAt time.Time
	deleted  bool
}

type feedService struct {
	streamRepo repository.MentionStreamRepository
	keywords   feed.KeywordTable
	logger     *logger.Logger
	now        func() time.Time

	mu    sync.RWMutex
	views map[string]*feedView
}

// NewFeedService creates a new feed service.
func NewFeedService(streamRepo repository.MentionStreamRepository, keywords feed.KeywordTable, log *logger.Logger) FeedService {
	return &feedService{
		streamRepo: streamRepo,
		keywords:   keywords,
		logger:     log,
		now:        time.Now,
		views:      make(map[string]*feedView),
	}
}

// CreateFeed opens a channel for the requested subject. A channel that
// cannot connect still yields a view, reported as stalled.
func (s *feedService) CreateFeed(ctx context.Context, req *dto.CreateFeedRequest) (*dto.FeedResponse, error) {
	scope, err := parseFeedScope(req)
	if err != nil {
		return nil, err
	}

	view := &feedView{id: uuid.NewString()}
	s.open(ctx, view, scope)

	s.mu.Lock()
	s.views[view.id] = view
	s.mu.Unlock()

	s.logger.Info("Feed view created",
		logger.StringField("feed_id", view.id),
		logger.StringField("kind", string(scope.kind)),
		logger.StringField("ticker", scope.ticker))
	return s.snapshot(view, dto.FeedFilter{}), nil
}

// GetFeed returns the view's items matching filter. Count and Sources
// describe the whole collection, not the filtered result.
func (s *feedService) GetFeed(_ context.Context, id string, filter dto.FeedFilter) (*dto.FeedResponse, error) {
	view, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	return s.snapshot(view, filter), nil
}

// UpdateFeed re-scopes a view: the old channel is closed and a new one is
// opened, even when only the limit changed.
func (s *feedService) UpdateFeed(ctx context.Context, id string, req *dto.CreateFeedRequest) (*dto.FeedResponse, error) {
	scope, err := parseFeedScope(req)
	if err != nil {
		return nil, err
	}
	view, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	view.mu.Lock()
	old := view.channel
	view.channel = nil
	view.mu.Unlock()
	if old != nil {
		_ = old.Close()
	}

	s.open(ctx, view, scope)
	s.logger.Info("Feed view re-scoped",
		logger.StringField("feed_id", id),
		logger.StringField("ticker", scope.ticker))
	return s.snapshot(view, dto.FeedFilter{}), nil
}

func (s *feedService) DeleteFeed(_ context.Context, id string) error {
	s.mu.Lock()
	view, ok := s.views[id]
	delete(s.views, id)
	s.mu.Unlock()
	if !ok {
		return fmt.Errorf("feed %s: %w", id, ErrViewNotFound)
	}

	view.mu.Lock()
	ch := view.channel
	view.channel = nil
	view.deleted = true
	view.mu.Unlock()
	if ch != nil {
		_ = ch.Close()
	}
	s.logger.Info("Feed view closed", logger.StringField("feed_id", id))
	return nil
}

// Shutdown closes every open channel.
func (s *feedService) Shutdown() {
	s.mu.Lock()
	views := s.views
	s.views = make(map[string]*feedView)
	s.mu.Unlock()

	var wg sync.WaitGroup
	for _, view := range views {
		view.mu.Lock()
		ch := view.channel
		view.channel = nil
		view.deleted = true
		view.mu.Unlock()
		if ch == nil {
			continue
		}
		wg.Add(1)
		utils.GoSafe(func() {
			defer wg.Done()
			_ = ch.Close()
		})
	}
	wg.Wait()
	s.logger.Info("Feed service stopped", logger.IntField("closed", len(views)))
}

// open dials a channel for scope and installs it on view. The channel
// outlives the request that created it.
func (s *feedService) open(ctx context.Context, view *feedView, scope feedScope) {
	chCtx := context.WithoutCancel(ctx)
	subjects := append([]string{scope.ticker}, scope.additionalTickers...)
	keywords := s.keywords.Keywords(subjects...)

	var (
		ch  mentionChannel
		err error
	)
	switch scope.kind {
	case FeedKindNews:
		var c *feed.Channel[entity.NewsArticle]
		c, err = s.streamRepo.OpenNews(chCtx, subjects, scope.limit)
		if err == nil {
			ch = newsChannel{c}
		}
	case FeedKindReddit:
		var c *feed.Channel[entity.RedditPost]
		c, err = s.streamRepo.OpenReddit(chCtx, keywords)
		if err == nil {
			ch = redditChannel{c}
		}
	}
	if err != nil {
		s.logger.Error("Failed to open feed channel",
			logger.ErrorField(err),
			logger.StringField("feed_id", view.id),
			logger.StringField("kind", string(scope.kind)))
	}

	view.mu.Lock()
	if view.deleted {
		view.mu.Unlock()
		if ch != nil {
			_ = ch.Close()
		}
		return
	}
	prev := view.channel
	view.scope = scope
	view.keywords = keywords
	view.channel = ch
	view.openedAt = s.now()
	view.mu.Unlock()

	// A concurrent re-scope may have installed a channel in the meantime.
	if prev != nil {
		_ = prev.Close()
	}
}

func (s *feedService) lookup(id string) (*feedView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	view, ok := s.views[id]
	if !ok {
		return nil, fmt.Errorf("feed %s: %w", id, ErrViewNotFound)
	}
	return view, nil
}

func (s *feedService) snapshot(view *feedView, filter dto.FeedFilter) *dto.FeedResponse {
	view.mu.Lock()
	scope := view.scope
	ch := view.channel
	resp := &dto.FeedResponse{
		ID:                view.id,
		Kind:              string(scope.kind),
		Ticker:            scope.ticker,
		AdditionalTickers: scope.additionalTickers,
		Keywords:          view.keywords,
		OpenedAt:          view.openedAt,
	}
	view.mu.Unlock()

	state := feed.StateStalled
	var mentions []entity.Mention
	if ch != nil {
		state = ch.State()
		mentions = ch.Mentions()
	}

	now := s.now()
	resp.State = state.String()
	resp.Loading = state == feed.StateConnecting
	resp.Count = len(mentions)
	resp.Sources = []string{}
	resp.Items = []dto.MentionItem{}
	seen := make(map[string]struct{})
	for _, m := range mentions {
		if _, ok := seen[m.Source]; !ok && m.Source != "" {
			seen[m.Source] = struct{}{}
			resp.Sources = append(resp.Sources, m.Source)
		}
		if !matchesFilter(m, filter) {
			continue
		}
		m.Body = utils.PlainText(m.Body)
		resp.Items = append(resp.Items, dto.MentionItem{
			Mention:   m,
			Published: utils.RelativeTime(m.PublishedAt, now),
		})
	}
	return resp
}

func matchesFilter(m entity.Mention, filter dto.FeedFilter) bool {
	if q := strings.ToLower(strings.TrimSpace(filter.Search)); q != "" {
		if !strings.Contains(strings.ToLower(m.Title), q) {
			return false
		}
	}
	if src := strings.TrimSpace(filter.Source); src != "" && src != "all" {
		if !strings.EqualFold(m.Source, src) && !strings.EqualFold(strings.TrimPrefix(m.Source, "r/"), src) {
			return false
		}
	}
	if want := strings.ToLower(strings.TrimSpace(filter.Sentiment)); want != "" && want != "all" {
		for _, insight := range m.Sentiments {
			if strings.ToLower(insight.Sentiment) == want {
				return true
			}
		}
		return false
	}
	return true
}

func parseFeedScope(req *dto.CreateFeedRequest) (feedScope, error) {
	ticker := strings.ToUpper(strings.TrimSpace(req.Ticker))
	if ticker == "" {
		return feedScope{}, ErrNoTicker
	}

	kind := FeedKind(strings.ToLower(req.Kind))
	switch kind {
	case "":
		kind = FeedKindNews
	case FeedKindNews, FeedKindReddit:
	default:
		return feedScope{}, fmt.Errorf("%w: unknown feed kind %q", ErrInvalidRequest, req.Kind)
	}
	if req.Limit < 0 {
		return feedScope{}, fmt.Errorf("%w: limit must not be negative", ErrInvalidRequest)
	}

	var additional []string
	for _, t := range req.AdditionalTickers {
		t = strings.ToUpper(strings.TrimSpace(t))
		if t != "" && t != ticker {
			additional = append(additional, t)
		}
	}

	return feedScope{
		kind:              kind,
		ticker:            ticker,
		additionalTickers: additional,
		limit:             req.Limit,
	}, nil
}

package repository

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"golang-stock-sentiment/internal/dashboard/config"
	"golang-stock-sentiment/internal/entity"
	"golang-stock-sentiment/pkg/common"
	"golang-stock-sentiment/pkg/feed"
	"golang-stock-sentiment/pkg/logger"
)

// MentionStreamRepository opens the backend's live mention streams.
type MentionStreamRepository interface {
	// OpenNews subscribes to articles for tickers, newest first, nudging the
	// server for updates on open and on every keepalive tick.
	OpenNews(ctx context.Context, tickers []string, limit int) (*feed.Channel[entity.NewsArticle], error)
	// OpenReddit subscribes to posts matching keywords, in arrival order.
	OpenReddit(ctx context.Context, keywords []string) (*feed.Channel[entity.RedditPost], error)
}

type mentionStreamRepository struct {
	dialer    feed.Dialer
	streamURL string
	cfg       config.Feed
	logger    *logger.Logger
}

// NewMentionStreamRepository creates a new instance of MentionStreamRepository.
func NewMentionStreamRepository(dialer feed.Dialer, backend config.Backend, cfg config.Feed, log *logger.Logger) MentionStreamRepository {
	return &mentionStreamRepository{
		dialer:    dialer,
		streamURL: backend.StreamURL,
		cfg:       cfg,
		logger:    log,
	}
}

func (r *mentionStreamRepository) OpenNews(ctx context.Context, tickers []string, limit int) (*feed.Channel[entity.NewsArticle], error) {
	if limit <= 0 {
		limit = r.cfg.NewsLimit
	}
	rawURL, err := feed.StreamURL(r.streamURL, common.EndpointNewsStream, url.Values{
		"tickers": {strings.Join(tickers, ",")},
		"limit":   {strconv.Itoa(limit)},
	})
	if err != nil {
		return nil, err
	}

	return feed.Open[entity.NewsArticle](ctx, r.dialer, feed.Options{
		URL:               rawURL,
		Order:             feed.MergePrepend,
		MaxItems:          r.cfg.MaxItems,
		KeepaliveInterval: r.cfg.KeepaliveInterval,
		RefreshMessage:    r.refreshMessage(),
		RefreshOnOpen:     true,
	}, r.logger.Named("news"))
}

func (r *mentionStreamRepository) OpenReddit(ctx context.Context, keywords []string) (*feed.Channel[entity.RedditPost], error) {
	rawURL, err := feed.StreamURL(r.streamURL, common.EndpointRedditStream, url.Values{
		"keywords": {strings.ToLower(strings.Join(keywords, ","))},
	})
	if err != nil {
		return nil, err
	}

	return feed.Open[entity.RedditPost](ctx, r.dialer, feed.Options{
		URL:      rawURL,
		Order:    feed.MergeAppend,
		MaxItems: r.cfg.MaxItems,
	}, r.logger.Named("reddit"))
}

func (r *mentionStreamRepository) refreshMessage() string {
	if r.cfg.RefreshMessage == "" {
		return common.FeedRefreshMessage
	}
	return r.cfg.RefreshMessage
}

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"golang-stock-sentiment/internal/dashboard/config"
	"golang-stock-sentiment/internal/dashboard/repository"
	"golang-stock-sentiment/internal/entity"
	"golang-stock-sentiment/pkg/feed"
	"golang-stock-sentiment/pkg/logger"

	"github.com/spf13/cobra"
)

var (
	tailKind   string
	tailTicker string
	tailLimit  int
)

var tailCmd = &cobra.Command{
	Use:   "tail",
	Short: "Follows one live mention stream and logs new records",
	Run:   runTail,
}

// mentionSource is what tail needs from a feed channel.
type mentionSource interface {
	Mentions() []entity.Mention
	State() feed.State
	Err() error
	Close() error
}

type newsSource struct{ *feed.Channel[entity.NewsArticle] }

func (s newsSource) Mentions() []entity.Mention {
	items := s.Items()
	out := make([]entity.Mention, len(items))
	for i, a := range items {
		out[i] = a.Mention()
	}
	return out
}

type redditSource struct{ *feed.Channel[entity.RedditPost] }

func (s redditSource) Mentions() []entity.Mention {
	items := s.Items()
	out := make([]entity.Mention, len(items))
	for i, p := range items {
		out[i] = p.Mention()
	}
	return out
}

func runTail(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	ticker := strings.ToUpper(strings.TrimSpace(tailTicker))
	streamRepo := repository.NewMentionStreamRepository(feed.NewWebsocketDialer(cfg.Backend.HandshakeTimeout), cfg.Backend, cfg.Feed, appLogger)

	var source mentionSource
	switch strings.ToLower(tailKind) {
	case "news":
		ch, err := streamRepo.OpenNews(ctx, []string{ticker}, tailLimit)
		if err != nil {
			appLogger.Fatal("Failed to open news stream", logger.ErrorField(err))
		}
		source = newsSource{ch}
	case "reddit":
		ch, err := streamRepo.OpenReddit(ctx, cfg.KeywordTable().Keywords(ticker))
		if err != nil {
			appLogger.Fatal("Failed to open reddit stream", logger.ErrorField(err))
		}
		source = redditSource{ch}
	default:
		appLogger.Fatal("Unknown feed kind", logger.StringField("kind", tailKind))
	}
	defer source.Close()

	seen := make(map[string]struct{})
	poll := time.NewTicker(time.Second)
	defer poll.Stop()

	for {
		select {
		case <-ctx.Done():
			appLogger.Info("Tail stopped", logger.IntField("records", len(seen)))
			return
		case <-poll.C:
			for _, m := range source.Mentions() {
				if _, ok := seen[m.ID]; ok {
					continue
				}
				seen[m.ID] = struct{}{}
				appLogger.Info(m.Title,
					logger.StringField("id", m.ID),
					logger.StringField("source", m.Source),
					logger.StringField("published", m.PublishedAt),
					logger.Field("subjects", m.Subjects))
			}
			if source.State() == feed.StateStalled {
				appLogger.Error("Stream stalled", logger.ErrorField(source.Err()))
				return
			}
		}
	}
}

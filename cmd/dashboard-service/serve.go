package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang-stock-sentiment/internal/dashboard/config"
	delivery "golang-stock-sentiment/internal/dashboard/delivery/http"
	_ "golang-stock-sentiment/internal/dashboard/docs"
	"golang-stock-sentiment/internal/dashboard/repository"
	"golang-stock-sentiment/internal/dashboard/service"
	"golang-stock-sentiment/pkg/feed"
	"golang-stock-sentiment/pkg/logger"
	"golang-stock-sentiment/pkg/redis"
	"golang-stock-sentiment/pkg/telegram"
	"golang-stock-sentiment/pkg/utils"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	swagger "github.com/swaggo/echo-swagger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the dashboard service",
	Run:   runServe,
}

func runServe(cmd *cobra.Command, args []string) {
	// Create a context that is canceled on interrupt signals
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

	appLogger.Info("Starting Dashboard Service",
		logger.Field("name", cfg.App.Name),
		logger.StringField("backend", cfg.Backend.BaseURL))

	keywords := cfg.KeywordTable()

	// Initialize repositories
	backendClient := repository.NewBackendClient(cfg.Backend, appLogger.Named("backend"))
	sentimentRepo := repository.NewSentimentRepository(backendClient)
	chatRepo := repository.NewChatRepository(backendClient, appLogger)
	stockRepo := repository.NewStockDetailsRepository(backendClient, appLogger, cfg.Comparison.CacheTTL)
	streamRepo := repository.NewMentionStreamRepository(feed.NewWebsocketDialer(cfg.Backend.HandshakeTimeout), cfg.Backend, cfg.Feed, appLogger)

	// Job sinks are optional
	var sinks []service.JobSink
	if cfg.Redis.Enabled {
		redisClient, err := redis.NewClient(redis.Config{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
		})
		if err != nil {
			appLogger.Fatal("Failed to initialize Redis", logger.ErrorField(err))
		}
		defer redisClient.Close()
		jobStreamRepo := repository.NewJobStreamRepository(redisClient.Client, cfg.Copilot.JobStream, cfg.Redis.StreamMaxLen, appLogger)
		sinks = append(sinks, service.NewStreamJobSink(jobStreamRepo))
	}
	if cfg.Telegram.BotToken != "" {
		notifier, err := telegram.NewClient(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
		if err != nil {
			appLogger.Warn("Telegram notifier disabled", logger.ErrorField(err))
		} else {
			sinks = append(sinks, service.NewTelegramJobSink(notifier))
		}
	}

	// Initialize services
	feedSvc := service.NewFeedService(streamRepo, keywords, appLogger)
	sentimentSvc := service.NewSentimentService(sentimentRepo, keywords, time.Local, appLogger)
	copilotSvc := service.NewCopilotService(chatRepo, cfg.Copilot.HistoryTurns, appLogger, sinks...)
	comparisonSvc := service.NewComparisonService(stockRepo, cfg.Comparison.Tickers, appLogger)

	if cfg.Scheduler.AggregateRefreshCron != "" {
		schedulerSvc, err := service.NewSchedulerService(sentimentSvc, cfg.Scheduler.AggregateRefreshCron, cfg.Scheduler.PollingInterval, appLogger)
		if err != nil {
			appLogger.Fatal("Invalid aggregate refresh schedule", logger.ErrorField(err))
		}
		utils.GoSafe(func() { schedulerSvc.Start(ctx) })
	}

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true

	apiV1 := e.Group("/api/v1")
	delivery.NewStockHandler(comparisonSvc, appLogger).RegisterRoutes(apiV1.Group("/stocks"))
	delivery.NewFeedHandler(feedSvc, appLogger).RegisterRoutes(apiV1.Group("/feeds"))
	delivery.NewSentimentHandler(sentimentSvc, appLogger).RegisterRoutes(apiV1.Group("/sentiments"))
	delivery.NewConversationHandler(copilotSvc, appLogger).RegisterRoutes(apiV1.Group("/conversations"))

	e.GET("/swagger/*", swagger.WrapHandler)

	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.API.Host, cfg.API.Port)
		appLogger.Info("HTTP server starting", logger.Field("address", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			appLogger.Error("HTTP server failed to start", logger.ErrorField(err))
			stop() // trigger shutdown
		}
	}()

	<-ctx.Done()

	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", logger.ErrorField(err))
	}
	feedSvc.Shutdown()

	appLogger.Info("Server exiting")
}

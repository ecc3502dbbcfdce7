package repository

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"golang-stock-sentiment/internal/dashboard/dto"
	"golang-stock-sentiment/internal/entity"
	"golang-stock-sentiment/pkg/common"
	"golang-stock-sentiment/pkg/logger"

	"github.com/patrickmn/go-cache"
)

// StockDetailsRepository fetches company details for comparison cards.
type StockDetailsRepository interface {
	GetStockDetails(ctx context.Context, ticker string) (*entity.StockDetails, error)
}

type stockDetailsRepository struct {
	client        *BackendClient
	logger        *logger.Logger
	inmemoryCache *cache.Cache
}

// NewStockDetailsRepository creates a StockDetailsRepository whose results
// are cached for ttl.
func NewStockDetailsRepository(client *BackendClient, log *logger.Logger, ttl time.Duration) StockDetailsRepository {
	return &stockDetailsRepository{
		client:        client,
		logger:        log,
		inmemoryCache: cache.New(ttl, 2*ttl),
	}
}

// GetStockDetails returns the details for ticker, from cache when fresh.
func (r *stockDetailsRepository) GetStockDetails(ctx context.Context, ticker string) (*entity.StockDetails, error) {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	if ticker == "" {
		return nil, fmt.Errorf("ticker is required")
	}

	if cached, found := r.inmemoryCache.Get(ticker); found {
		details := cached.(entity.StockDetails)
		return &details, nil
	}

	var envelope dto.StockDetailsEnvelope
	if err := r.client.getJSON(ctx, common.EndpointStockDetails+url.PathEscape(ticker), nil, &envelope); err != nil {
		return nil, fmt.Errorf("failed to get stock details for %s: %w", ticker, err)
	}
	if envelope.Results == nil {
		return nil, fmt.Errorf("failed to get stock details for %s: %w", ticker, ErrNotFound)
	}

	r.inmemoryCache.Set(ticker, *envelope.Results, cache.DefaultExpiration)
	r.logger.Debug("Cached stock details", logger.StringField("ticker", ticker))
	return envelope.Results, nil
}

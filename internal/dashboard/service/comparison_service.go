package service

import (
	"context"
	"fmt"
	"sync"

	"golang-stock-sentiment/internal/dashboard/dto"
	"golang-stock-sentiment/internal/dashboard/repository"
	"golang-stock-sentiment/pkg/logger"
	"golang-stock-sentiment/pkg/utils"
)

// ComparisonService builds the market comparison cards.
type ComparisonService interface {
	GetStockCards(ctx context.Context) ([]dto.StockCard, error)
}

type comparisonService struct {
	repo    repository.StockDetailsRepository
	tickers []string
	logger  *logger.Logger
}

// NewComparisonService creates a new comparison service for tickers.
func NewComparisonService(repo repository.StockDetailsRepository, tickers []string, log *logger.Logger) ComparisonService {
	return &comparisonService{
		repo:    repo,
		tickers: tickers,
		logger:  log,
	}
}

// GetStockCards fetches every configured ticker concurrently. The cards
// keep the configured order; if any ticker fails, no cards are returned.
func (s *comparisonService) GetStockCards(ctx context.Context) ([]dto.StockCard, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	cards := make([]dto.StockCard, len(s.tickers))
	errs := make([]error, len(s.tickers))

	var wg sync.WaitGroup
	for i, ticker := range s.tickers {
		wg.Add(1)
		utils.GoSafe(func() {
			defer wg.Done()
			details, err := s.repo.GetStockDetails(ctx, ticker)
			if err != nil {
				errs[i] = err
				cancel()
				return
			}
			cards[i] = dto.StockCard{
				StockDetails:     *details,
				MarketCapDisplay: utils.FormatMarketCap(details.MarketCap),
				EmployeesDisplay: utils.FormatThousands(details.TotalEmployees),
			}
		})
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			s.logger.Error("Failed to fetch stock details", logger.ErrorField(err), logger.StringField("ticker", s.tickers[i]))
			return nil, fmt.Errorf("failed to fetch stock data: %w", err)
		}
	}
	return cards, nil
}

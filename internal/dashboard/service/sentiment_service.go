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

const sentimentFetchError = "Failed to fetch sentiment data"

type ChartKind string

const (
	ChartKindLine ChartKind = "line"
	ChartKindPie  ChartKind = "pie"
)

// SentimentService manages sentiment chart views. Every parameter change
// triggers one full fetch that replaces the view's dataset.
type SentimentService interface {
	CreateView(ctx context.Context, req *dto.CreateSentimentRequest) (*dto.SentimentResponse, error)
	GetView(ctx context.Context, id string) (*dto.SentimentResponse, error)
	UpdateView(ctx context.Context, id string, req *dto.CreateSentimentRequest) (*dto.SentimentResponse, error)
	DeleteView(ctx context.Context, id string) error
	RefreshAll(ctx context.Context)
}

type chartParams struct {
	kind        ChartKind
	ticker      string
	granularity entity.Granularity
	timeRange   entity.TimeRange
}

type sentimentView struct {
	id string

	mu         sync.Mutex
	params     chartParams
	keywords   string
	generation uint64
	loading    bool
	errMsg     string
	points     []entity.SentimentPoint
	breakdown  *entity.SentimentBreakdown
	fetchedAt  *time.Time
}

type sentimentService struct {
	repo     repository.SentimentRepository
	keywords feed.KeywordTable
	logger   *logger.Logger
	location *time.Location
	now      func() time.Time

	mu    sync.RWMutex
	views map[string]*sentimentView
}

// NewSentimentService creates a new sentiment service. Bucket labels are
// formatted for display in loc.
func NewSentimentService(repo repository.SentimentRepository, keywords feed.KeywordTable, loc *time.Location, log *logger.Logger) SentimentService {
	if loc == nil {
		loc = time.UTC
	}
	return &sentimentService{
		repo:     repo,
		keywords: keywords,
		logger:   log,
		location: loc,
		now:      time.Now,
		views:    make(map[string]*sentimentView),
	}
}

func (s *sentimentService) CreateView(ctx context.Context, req *dto.CreateSentimentRequest) (*dto.SentimentResponse, error) {
	params, err := parseChartParams(req, chartParams{})
	if err != nil {
		return nil, err
	}

	view := &sentimentView{id: uuid.NewString()}
	s.mu.Lock()
	s.views[view.id] = view
	s.mu.Unlock()

	s.fetch(ctx, view, params)
	return s.snapshot(view), nil
}

func (s *sentimentService) GetView(_ context.Context, id string) (*dto.SentimentResponse, error) {
	view, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	return s.snapshot(view), nil
}

// UpdateView applies the changed parameters and refetches. Fields left
// empty in req keep their current value.
func (s *sentimentService) UpdateView(ctx context.Context, id string, req *dto.CreateSentimentRequest) (*dto.SentimentResponse, error) {
	view, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	view.mu.Lock()
	current := view.params
	view.mu.Unlock()

	params, err := parseChartParams(req, current)
	if err != nil {
		return nil, err
	}

	s.fetch(ctx, view, params)
	return s.snapshot(view), nil
}

func (s *sentimentService) DeleteView(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.views[id]; !ok {
		return fmt.Errorf("sentiment view %s: %w", id, ErrViewNotFound)
	}
	delete(s.views, id)
	return nil
}

// RefreshAll re-runs the current fetch of every view.
func (s *sentimentService) RefreshAll(ctx context.Context) {
	s.mu.RLock()
	views := make([]*sentimentView, 0, len(s.views))
	for _, v := range s.views {
		views = append(views, v)
	}
	s.mu.RUnlock()

	for _, view := range views {
		if ctx.Err() != nil {
			return
		}
		view.mu.Lock()
		params := view.params
		view.mu.Unlock()
		s.fetch(ctx, view, params)
	}
	s.logger.Debug("Sentiment views refreshed", logger.IntField("views", len(views)))
}

// fetch issues one request for params and replaces the dataset with the
// result. Each call takes a new generation; a response whose generation is
// no longer current is discarded so a slow request cannot overwrite a
// newer one.
func (s *sentimentService) fetch(ctx context.Context, view *sentimentView, params chartParams) {
	keywords := s.keywords.Query(params.ticker)

	view.mu.Lock()
	view.generation++
	generation := view.generation
	view.params = params
	view.keywords = keywords
	view.loading = true
	view.mu.Unlock()

	var (
		points    []entity.SentimentPoint
		breakdown *entity.SentimentBreakdown
		err       error
	)
	switch params.kind {
	case ChartKindPie:
		breakdown, err = s.repo.PieChart(ctx, keywords, params.timeRange.StartTime(s.now()))
	default:
		points, err = s.repo.Aggregation(ctx, keywords, params.granularity)
	}

	view.mu.Lock()
	defer view.mu.Unlock()
	if generation != view.generation {
		s.logger.Debug("Discarding stale sentiment response",
			logger.StringField("view_id", view.id),
			logger.Field("generation", generation),
			logger.Field("current", view.generation))
		return
	}

	view.loading = false
	view.points = nil
	view.breakdown = nil
	if err != nil {
		s.logger.Error("Failed to fetch sentiment data",
			logger.ErrorField(err),
			logger.StringField("view_id", view.id),
			logger.StringField("keywords", keywords))
		view.errMsg = sentimentFetchError
		return
	}

	view.errMsg = ""
	view.points = points
	view.breakdown = breakdown
	fetchedAt := s.now()
	view.fetchedAt = &fetchedAt
}

func (s *sentimentService) lookup(id string) (*sentimentView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	view, ok := s.views[id]
	if !ok {
		return nil, fmt.Errorf("sentiment view %s: %w", id, ErrViewNotFound)
	}
	return view, nil
}

func (s *sentimentService) snapshot(view *sentimentView) *dto.SentimentResponse {
	view.mu.Lock()
	defer view.mu.Unlock()

	resp := &dto.SentimentResponse{
		ID:        view.id,
		Kind:      string(view.params.kind),
		Ticker:    view.params.ticker,
		Keywords:  view.keywords,
		Loading:   view.loading,
		Error:     view.errMsg,
		FetchedAt: view.fetchedAt,
	}
	if view.params.kind == ChartKindPie {
		resp.Range = string(view.params.timeRange)
	} else {
		resp.Granularity = string(view.params.granularity)
	}
	if view.breakdown != nil {
		b := *view.breakdown
		resp.Breakdown = &b
	}
	if view.points != nil {
		resp.Points = make([]dto.SentimentPointItem, len(view.points))
		for i, p := range view.points {
			resp.Points[i] = dto.SentimentPointItem{
				SentimentPoint: p,
				Label:          utils.FormatBucket(p.TimeUnit, s.location),
			}
		}
	}
	return resp
}

// parseChartParams validates req, filling empty fields from base.
func parseChartParams(req *dto.CreateSentimentRequest, base chartParams) (chartParams, error) {
	params := base

	if t := strings.ToUpper(strings.TrimSpace(req.Ticker)); t != "" {
		params.ticker = t
	}
	if params.ticker == "" {
		return chartParams{}, ErrNoTicker
	}

	if req.Kind != "" {
		params.kind = ChartKind(strings.ToLower(req.Kind))
	}
	switch params.kind {
	case "":
		params.kind = ChartKindLine
	case ChartKindLine, ChartKindPie:
	default:
		return chartParams{}, fmt.Errorf("%w: unknown chart kind %q", ErrInvalidRequest, req.Kind)
	}

	if req.Granularity != "" || params.granularity == "" {
		g, err := entity.ParseGranularity(req.Granularity)
		if err != nil {
			return chartParams{}, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
		}
		params.granularity = g
	}

	if req.Range != "" {
		params.timeRange = entity.TimeRange(req.Range)
	}
	if params.timeRange == "" {
		params.timeRange = entity.DefaultTimeRange
	}
	return params, nil
}

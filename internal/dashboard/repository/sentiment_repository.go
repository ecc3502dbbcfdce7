package repository

import (
	"context"
	"net/url"
	"time"

	"golang-stock-sentiment/internal/entity"
	"golang-stock-sentiment/pkg/common"
)

// SentimentRepository fetches aggregated sentiment counts from the backend.
type SentimentRepository interface {
	Aggregation(ctx context.Context, keywords string, granularity entity.Granularity) ([]entity.SentimentPoint, error)
	PieChart(ctx context.Context, keywords string, startTime time.Time) (*entity.SentimentBreakdown, error)
}

type sentimentRepository struct {
	client *BackendClient
}

// NewSentimentRepository creates a new instance of SentimentRepository.
func NewSentimentRepository(client *BackendClient) SentimentRepository {
	return &sentimentRepository{client: client}
}

// Aggregation returns the time-bucketed counts for the line chart.
func (r *sentimentRepository) Aggregation(ctx context.Context, keywords string, granularity entity.Granularity) ([]entity.SentimentPoint, error) {
	query := url.Values{
		"keywords":         {keywords},
		"aggregation_type": {string(granularity)},
	}

	var points []entity.SentimentPoint
	if err := r.client.getJSON(ctx, common.EndpointSentimentAggregation, query, &points); err != nil {
		return nil, err
	}
	return points, nil
}

// PieChart returns the counts for the window starting at startTime.
func (r *sentimentRepository) PieChart(ctx context.Context, keywords string, startTime time.Time) (*entity.SentimentBreakdown, error) {
	query := url.Values{
		"keywords":         {keywords},
		"aggregation_type": {string(entity.GranularityMinutes)},
		"start_time":       {startTime.UTC().Format("2006-01-02T15:04:05.000Z")},
	}

	var breakdown entity.SentimentBreakdown
	if err := r.client.getJSON(ctx, common.EndpointSentimentPieChart, query, &breakdown); err != nil {
		return nil, err
	}
	return &breakdown, nil
}

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang-stock-sentiment/internal/dashboard/dto"
	"golang-stock-sentiment/internal/entity"
	"golang-stock-sentiment/pkg/feed"
	"golang-stock-sentiment/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSentimentService(repo *fakeSentimentRepo) *sentimentService {
	svc := NewSentimentService(repo, feed.DefaultKeywordTable(), time.UTC, logger.NewNop()).(*sentimentService)
	svc.now = func() time.Time { return testNow }
	return svc
}

func positives(resp *dto.SentimentResponse) []int {
	out := make([]int, len(resp.Points))
	for i, p := range resp.Points {
		out[i] = p.Positives
	}
	return out
}

func TestCreateLineView(t *testing.T) {
	repo := &fakeSentimentRepo{}
	repo.push(points(5, 7))
	svc := newTestSentimentService(repo)

	resp, err := svc.CreateView(context.Background(), &dto.CreateSentimentRequest{Ticker: "nvda"})
	require.NoError(t, err)
	assert.Equal(t, "line", resp.Kind)
	assert.Equal(t, "NVDA", resp.Ticker)
	assert.Equal(t, "nvidia,nvda", resp.Keywords)
	assert.Equal(t, "hourly", resp.Granularity)
	assert.False(t, resp.Loading)
	assert.Empty(t, resp.Error)
	assert.Equal(t, []int{5, 7}, positives(resp))
	assert.Equal(t, "Jan 1, 00:00", resp.Points[0].Label)
	require.NotNil(t, resp.FetchedAt)
	assert.Equal(t, testNow, *resp.FetchedAt)
}

func TestCreatePieView(t *testing.T) {
	repo := &fakeSentimentRepo{}
	repo.push(func() ([]entity.SentimentPoint, *entity.SentimentBreakdown, error) {
		return nil, &entity.SentimentBreakdown{Positives: 3, Negatives: 1, Neutrals: 1}, nil
	})
	repo.push(func() ([]entity.SentimentPoint, *entity.SentimentBreakdown, error) {
		return nil, &entity.SentimentBreakdown{Positives: 9}, nil
	})
	svc := newTestSentimentService(repo)

	resp, err := svc.CreateView(context.Background(), &dto.CreateSentimentRequest{Kind: "pie", Ticker: "XOM"})
	require.NoError(t, err)
	assert.Equal(t, "1h", resp.Range)
	assert.Equal(t, "xom", resp.Keywords)
	require.NotNil(t, resp.Breakdown)
	assert.Equal(t, 5, resp.Breakdown.Total())
	assert.Empty(t, resp.Points)

	resp, err = svc.UpdateView(context.Background(), resp.ID, &dto.CreateSentimentRequest{Range: "6h"})
	require.NoError(t, err)
	assert.Equal(t, "6h", resp.Range)
	assert.Equal(t, "pie", resp.Kind)
	assert.Equal(t, 9, resp.Breakdown.Positives)

	assert.Equal(t, []time.Time{testNow.Add(-time.Hour), testNow.Add(-6 * time.Hour)}, repo.pieStarts)
}

func TestSentimentViewValidation(t *testing.T) {
	svc := newTestSentimentService(&fakeSentimentRepo{})

	_, err := svc.CreateView(context.Background(), &dto.CreateSentimentRequest{})
	assert.ErrorIs(t, err, ErrNoTicker)

	_, err = svc.CreateView(context.Background(), &dto.CreateSentimentRequest{Ticker: "NVDA", Kind: "bar"})
	assert.ErrorIs(t, err, ErrInvalidRequest)

	_, err = svc.CreateView(context.Background(), &dto.CreateSentimentRequest{Ticker: "NVDA", Granularity: "weekly"})
	assert.ErrorIs(t, err, ErrInvalidRequest)

	_, err = svc.GetView(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrViewNotFound)
}

func TestFetchFailureClearsDataset(t *testing.T) {
	repo := &fakeSentimentRepo{}
	repo.push(points(1, 2, 3))
	repo.push(failing(errors.New("502 bad gateway")))
	repo.push(points(4))
	svc := newTestSentimentService(repo)

	resp, err := svc.CreateView(context.Background(), &dto.CreateSentimentRequest{Ticker: "TSLA"})
	require.NoError(t, err)
	require.Len(t, resp.Points, 3)

	resp, err = svc.UpdateView(context.Background(), resp.ID, &dto.CreateSentimentRequest{Granularity: "minutes"})
	require.NoError(t, err)
	assert.Equal(t, "Failed to fetch sentiment data", resp.Error)
	assert.Empty(t, resp.Points)
	assert.Equal(t, "minutes", resp.Granularity)

	resp, err = svc.UpdateView(context.Background(), resp.ID, &dto.CreateSentimentRequest{})
	require.NoError(t, err)
	assert.Empty(t, resp.Error)
	assert.Equal(t, []int{4}, positives(resp))
}

func TestStaleResponseIsDiscarded(t *testing.T) {
	repo := &fakeSentimentRepo{}
	repo.push(points(1))
	svc := newTestSentimentService(repo)

	resp, err := svc.CreateView(context.Background(), &dto.CreateSentimentRequest{Ticker: "NVDA"})
	require.NoError(t, err)

	started := make(chan struct{})
	release := make(chan struct{})
	repo.push(func() ([]entity.SentimentPoint, *entity.SentimentBreakdown, error) {
		close(started)
		<-release
		return []entity.SentimentPoint{{Positives: 100}}, nil, nil
	})
	repo.push(points(2))

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = svc.UpdateView(context.Background(), resp.ID, &dto.CreateSentimentRequest{Granularity: "minutes"})
	}()
	<-started

	latest, err := svc.UpdateView(context.Background(), resp.ID, &dto.CreateSentimentRequest{Granularity: "hourly"})
	require.NoError(t, err)
	assert.Equal(t, []int{2}, positives(latest))

	close(release)
	<-done

	final, err := svc.GetView(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, positives(final))
	assert.Equal(t, "hourly", final.Granularity)
	assert.False(t, final.Loading)
}

func TestRefreshAllRefetchesEveryView(t *testing.T) {
	repo := &fakeSentimentRepo{}
	repo.push(points(1))
	repo.push(points(1))
	svc := newTestSentimentService(repo)

	first, err := svc.CreateView(context.Background(), &dto.CreateSentimentRequest{Ticker: "NVDA"})
	require.NoError(t, err)
	_, err = svc.CreateView(context.Background(), &dto.CreateSentimentRequest{Ticker: "AAPL"})
	require.NoError(t, err)

	repo.push(points(8))
	repo.push(points(8))
	svc.RefreshAll(context.Background())
	assert.Equal(t, 4, repo.fetches())

	resp, err := svc.GetView(context.Background(), first.ID)
	require.NoError(t, err)
	assert.Equal(t, []int{8}, positives(resp))

	require.NoError(t, svc.DeleteView(context.Background(), first.ID))
	assert.ErrorIs(t, svc.DeleteView(context.Background(), first.ID), ErrViewNotFound)
}

package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang-stock-sentiment/internal/dashboard/config"
	"golang-stock-sentiment/pkg/logger"

	"golang.org/x/time/rate"
)

// BackendClient issues JSON requests to the sentiment backend's REST API.
// All requests share one rate limiter.
type BackendClient struct {
	client         *http.Client
	baseURL        string
	logger         *logger.Logger
	requestLimiter *rate.Limiter
}

// NewBackendClient creates a BackendClient from the backend configuration.
func NewBackendClient(cfg config.Backend, log *logger.Logger) *BackendClient {
	limiter := rate.NewLimiter(rate.Inf, 1)
	if cfg.MaxRequestPerMinute > 0 {
		perRequest := time.Minute / time.Duration(cfg.MaxRequestPerMinute)
		limiter = rate.NewLimiter(rate.Every(perRequest), cfg.MaxRequestPerMinute)
	}

	return &BackendClient{
		client: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		logger:         log,
		requestLimiter: limiter,
	}
}

func (c *BackendClient) getJSON(ctx context.Context, path string, query url.Values, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	return c.do(ctx, http.MethodGet, endpoint, nil, out)
}

func (c *BackendClient) postJSON(ctx context.Context, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}
	return c.do(ctx, http.MethodPost, c.baseURL+path, payload, out)
}

func (c *BackendClient) do(ctx context.Context, method, endpoint string, payload []byte, out interface{}) error {
	if err := c.requestLimiter.Wait(ctx); err != nil {
		return fmt.Errorf("failed to wait for request limit: %w", err)
	}

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to create http request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error("Failed to send request to backend", logger.ErrorField(err), logger.StringField("url", endpoint))
		return fmt.Errorf("failed to send request to backend: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.Error("Received non-OK response from backend",
			logger.IntField("status_code", resp.StatusCode),
			logger.StringField("url", endpoint))
		return &StatusError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Error("Failed to decode response body", logger.ErrorField(err), logger.StringField("url", endpoint))
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}

// Package datadog pkg/datadog/client.go
package datadog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/shahgahmed/llama-time/pkg/config"
	"github.com/shahgahmed/llama-time/pkg/models"
)

const (
	requestTimeout = 15 * time.Second

	// Vendor API allows bursts but sustained traffic is throttled
	// client-side so one dashboard render cannot exhaust the org quota.
	requestsPerSecond = 10
	requestBurst      = 20
)

// Client issues authenticated requests against the monitoring vendor
// REST API. Calls are never retried; a failed call surfaces once as an
// *APIError or transport error.
type Client struct {
	baseURL    string
	apiKey     string
	appKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     zerolog.Logger
}

// NewClient creates a vendor API client from the credential pair.
func NewClient(cfg config.DatadogConfig, logger zerolog.Logger) *Client {
	return &Client{
		baseURL: "https://api." + cfg.Site,
		apiKey:  cfg.APIKey,
		appKey:  cfg.AppKey,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), requestBurst),
		logger:  logger.With().Str("component", "datadog").Logger(),
	}
}

func (c *Client) do(ctx context.Context, method, path string, body, dst any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: %w", errRateLimited, err)
	}

	var reqBody io.Reader

	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}

		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("DD-API-KEY", c.apiKey)
	req.Header.Set("DD-APPLICATION-KEY", c.appKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("vendor request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read vendor response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn().
			Int("status", resp.StatusCode).
			Str("path", path).
			Msg("vendor API returned error")

		return &APIError{Status: resp.StatusCode, Body: string(respBody)}
	}

	if dst == nil {
		return nil
	}

	if err := json.Unmarshal(respBody, dst); err != nil {
		return fmt.Errorf("failed to decode vendor response: %w", err)
	}

	return nil
}

// GetMonitor fetches one monitor by id.
func (c *Client) GetMonitor(ctx context.Context, id int64) (*models.Monitor, error) {
	var monitor models.Monitor

	path := "/api/v1/monitor/" + strconv.FormatInt(id, 10)
	if err := c.do(ctx, http.MethodGet, path, nil, &monitor); err != nil {
		return nil, err
	}

	return &monitor, nil
}

// QueryMetrics runs a metric query over [from, to] Unix seconds.
func (c *Client) QueryMetrics(ctx context.Context, query string, from, to int64) (*MetricQueryResponse, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("from", strconv.FormatInt(from, 10))
	params.Set("to", strconv.FormatInt(to, 10))

	var resp MetricQueryResponse
	if err := c.do(ctx, http.MethodGet, "/api/v1/query?"+params.Encode(), nil, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

// SearchLogs searches logs matching query between the opaque from/to
// tokens, newest first, returning at most limit entries.
func (c *Client) SearchLogs(ctx context.Context, query, from, to string, limit int) (*LogSearchResponse, error) {
	body := logSearchRequest{
		Filter: logSearchFilter{
			Query: query,
			From:  from,
			To:    to,
		},
		Sort: "-timestamp",
		Page: logSearchPage{Limit: limit},
	}

	var resp LogSearchResponse
	if err := c.do(ctx, http.MethodPost, "/api/v2/logs/events/search", body, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

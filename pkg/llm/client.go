// Package llm pkg/llm/client.go
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/shahgahmed/llama-time/pkg/config"
)

const (
	requestTimeout = 60 * time.Second

	designTemperature = 0.7
	designMaxTokens   = 2000
)

// Client is a single-turn chat-completions client. It never retries;
// a failed call surfaces once as an *APIError or transport error.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates an LLM gateway client.
func NewClient(cfg config.LLMConfig, logger zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		logger: logger.With().Str("component", "llm").Logger(),
	}
}

// Complete sends a system+user prompt pair and returns the generated
// text. Used by the dashboard design engine.
func (c *Client) Complete(ctx context.Context, systemPrompt, userPrompt string) (*Completion, error) {
	temp := designTemperature
	maxTokens := designMaxTokens

	req := completionRequest{
		Model: c.model,
		Messages: []Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: &temp,
		MaxTokens:   &maxTokens,
	}

	return c.send(ctx, req)
}

// Chat sends a user message with an optional base64-encoded JPEG
// attachment and returns the model's reply.
func (c *Client) Chat(ctx context.Context, message, imageBase64 string) (*Completion, error) {
	var parts []Content

	if message != "" {
		parts = append(parts, Content{Type: "text", Text: message})
	}

	if imageBase64 != "" {
		parts = append(parts, Content{
			Type:     "image_url",
			ImageURL: &ImageURL{URL: "data:image/jpeg;base64," + imageBase64},
		})
	}

	req := completionRequest{
		Model: c.model,
		Messages: []Message{
			{Role: "user", Content: parts},
		},
	}

	return c.send(ctx, req)
}

func (c *Client) send(ctx context.Context, req completionRequest) (*Completion, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal completion request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build completion request: %w", err)
	}

	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("completion request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read completion response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn().
			Int("status", resp.StatusCode).
			Msg("LLM API returned error")

		return nil, &APIError{Status: resp.StatusCode, Body: string(respBody)}
	}

	var parsed completionResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode completion response: %w", err)
	}

	return &Completion{
		ID:      parsed.ID,
		Text:    strings.TrimSpace(parsed.CompletionMessage.Content.Text),
		Metrics: parsed.Metrics,
	}, nil
}

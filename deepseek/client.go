// Package deepseek talks to the DeepSeek chat-completion endpoint.
//
// Two request shapes share one endpoint: structured extraction of a todo
// list from a goal description, and free-form conversational planning. The
// client never mutates the task list; it returns records for the caller to
// insert.
package deepseek

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tmcli/tm/internal/logging"
	"go.uber.org/zap"
)

// Defaults for the DeepSeek endpoint.
const (
	DefaultBaseURL = "https://api.deepseek.com/v1"
	DefaultModel   = "deepseek-chat"
	DefaultTimeout = 2 * time.Minute
)

// Config configures a Client.
type Config struct {
	// APIKey is the bearer credential. Required before any request.
	APIKey string

	// BaseURL overrides the endpoint base. Defaults to DefaultBaseURL.
	BaseURL string

	// Model overrides the model name. Defaults to DefaultModel.
	Model string

	// Timeout bounds each request. Defaults to DefaultTimeout.
	Timeout time.Duration
}

// Client issues chat-completion requests.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

// NewClient creates a client, applying defaults for unset config fields.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		model:   cfg.Model,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// Configured reports whether the required credential is present.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// complete sends one chat-completion request and returns the reply content.
func (c *Client) complete(ctx context.Context, messages []Message, temperature float64, maxTokens int) (string, error) {
	if c.apiKey == "" {
		return "", ErrMissingAPIKey
	}

	reqBody := chatRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	started := time.Now()
	logging.Debug("deepseek request",
		zap.String("model", c.model),
		zap.Int("messages", len(messages)),
		zap.Int("max_tokens", maxTokens))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &RemoteError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", &ParseError{Reason: "malformed response body", Err: err}
	}
	if len(parsed.Choices) == 0 {
		return "", nil
	}

	content := parsed.Choices[0].Message.Content
	logging.Debug("deepseek response",
		zap.Duration("elapsed", time.Since(started)),
		zap.Int("content_len", len(content)))
	return content, nil
}

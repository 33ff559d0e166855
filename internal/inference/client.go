// Package inference talks to the hosted-model API used for both translation
// and grading. Every call is a single synchronous POST; there are no retries.
package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const DefaultEndpoint = "https://api.mentorpiece.org/v1/process-ai-request"

// maxErrorBody caps how much of a non-200 body ends up in the error text.
const maxErrorBody = 512

// Caller is the one capability both the translator and the judge build on.
type Caller interface {
	Call(ctx context.Context, model, prompt string) (string, error)
}

type Request struct {
	ModelName string `json:"model_name"`
	Prompt    string `json:"prompt"`
}

type Response struct {
	Response *string `json:"response"`
}

// Client is the HTTP Caller for the inference endpoint.
type Client struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

// NewClient creates a Client. A zero timeout leaves the http.Client default
// (no deadline) in place.
func NewClient(endpoint, apiKey string, timeout time.Duration) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{
		endpoint: endpoint,
		apiKey:   apiKey,
		client:   &http.Client{Timeout: timeout},
	}
}

func (c *Client) Endpoint() string {
	return c.endpoint
}

// Call posts {model_name, prompt} and returns the response field verbatim.
// Every failure is returned as a *CallError.
func (c *Client) Call(ctx context.Context, model, prompt string) (string, error) {
	start := time.Now()

	text, status, err := c.do(ctx, model, prompt)
	if err != nil {
		callErr := &CallError{Model: model, StatusCode: status, Err: err}
		slog.Error("inference call failed",
			"model", model,
			"status", status,
			"latency", time.Since(start),
			"error", err)
		return "", callErr
	}

	slog.Debug("inference call completed", "model", model, "latency", time.Since(start))
	return text, nil
}

func (c *Client) do(ctx context.Context, model, prompt string) (string, int, error) {
	jsonData, err := json.Marshal(Request{ModelName: model, Prompt: prompt})
	if err != nil {
		return "", 0, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", 0, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return "", 0, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		detail := strings.TrimSpace(string(body))
		if detail == "" {
			return "", resp.StatusCode, fmt.Errorf("API returned status %d", resp.StatusCode)
		}
		return "", resp.StatusCode, fmt.Errorf("API returned status %d: %s", resp.StatusCode, detail)
	}

	var apiResp Response
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return "", resp.StatusCode, fmt.Errorf("failed to decode response: %w", err)
	}

	// A missing or null response field is an empty answer, not a failure.
	if apiResp.Response == nil {
		return "", resp.StatusCode, nil
	}
	return *apiResp.Response, resp.StatusCode, nil
}

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
)

// Client calls an OpenAI-compatible chat completion endpoint.
//
// The validation layer treats whatever the model returns as untrusted input,
// so this client stays deliberately thin: it sends a prompt, returns the raw
// completion text, and leaves all interpretation to the caller.
type Client struct {
	baseURL      string
	serviceToken string
	model        string
	maxTokens    int
	httpClient   *http.Client
}

// NewClient constructs a Client from Config.
func NewClient(cfg *Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("llm: invalid config: %w", err)
	}

	return &Client{
		baseURL:      strings.TrimRight(cfg.Endpoint, "/"),
		serviceToken: cfg.ServiceToken,
		model:        cfg.Model,
		maxTokens:    cfg.MaxTokens,
		httpClient:   &http.Client{Timeout: time.Duration(cfg.HTTPTimeoutS) * time.Second},
	}, nil
}

// Complete sends a single-turn prompt and returns the raw completion text.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("llm: empty prompt")
	}

	reqBody := map[string]any{
		"model":      c.model,
		"max_tokens": c.maxTokens,
		"messages": []map[string]string{
			{"role": "user", "content": prompt},
		},
	}

	var parsed struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}

	url := fmt.Sprintf("%s/chat/completions", c.baseURL)
	if err := c.postJSON(ctx, url, reqBody, &parsed); err != nil {
		return "", err
	}

	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("llm: completion returned no choices")
	}

	return parsed.Choices[0].Message.Content, nil
}

func (c *Client) postJSON(ctx context.Context, url string, body any, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.serviceToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.serviceToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("http %d for %s: %s", resp.StatusCode, url, string(snippet))
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

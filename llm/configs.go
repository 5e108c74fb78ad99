package llm

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	// Inference endpoint and auth
	Endpoint     string // Base URL of the chat completion API
	ServiceToken string // Bearer token for the inference service
	Model        string // Chat model identifier
	MaxTokens    int    // Completion token cap (default 1024)
	HTTPTimeoutS int    // HTTP timeout seconds (default 60)
}

// NewConfig reads from environment variables.
func NewConfig() *Config {
	timeout := 60
	if v := os.Getenv("LLM_HTTP_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			timeout = n
		}
	}

	maxTokens := 1024
	if v := os.Getenv("LLM_MAX_TOKENS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			maxTokens = n
		}
	}

	model := os.Getenv("LLM_MODEL")
	if model == "" {
		model = "gpt-4o-mini"
	}

	return &Config{
		Endpoint:     os.Getenv("LLM_ENDPOINT"),
		ServiceToken: os.Getenv("LLM_SERVICE_TOKEN"),
		Model:        model,
		MaxTokens:    maxTokens,
		HTTPTimeoutS: timeout,
	}
}

// Validate ensures required fields are present.
func (c *Config) Validate() error {
	if c.Endpoint == "" {
		return fmt.Errorf("llm: missing LLM_ENDPOINT")
	}
	if c.ServiceToken == "" {
		return fmt.Errorf("llm: missing LLM_SERVICE_TOKEN")
	}
	return nil
}

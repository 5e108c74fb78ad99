package embedding

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
)

type inferenceProvider struct {
	baseURL      string
	serviceToken string
	model        string
	httpClient   *http.Client
}

func newInferenceProvider(cfg *Config) (*inferenceProvider, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("inference: missing EMBEDDING_ENDPOINT")
	}

	// Remove trailing slash if user added it.
	base := strings.TrimRight(cfg.Endpoint, "/")

	return &inferenceProvider{
		baseURL:      base,
		serviceToken: cfg.ServiceToken,
		model:        cfg.Model,
		httpClient:   &http.Client{Timeout: time.Duration(cfg.HTTPTimeoutS) * time.Second},
	}, nil
}

// Create generates embeddings for the given texts using the configured model.
// It uses the OpenAI-compatible /embeddings endpoint. The response data is
// re-ordered by index so the output always matches the input order.
func (p *inferenceProvider) Create(ctx context.Context, texts ...string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, fmt.Errorf("inference: no texts provided")
	}
	if p.model == "" {
		return nil, fmt.Errorf("inference: model is required")
	}

	reqBody := map[string]any{
		"model": p.model,
		"input": texts,
	}

	url := fmt.Sprintf("%s/embeddings", p.baseURL)

	var parsed struct {
		Data []struct {
			Index     int       `json:"index"`
			Embedding []float32 `json:"embedding"`
		} `json:"data"`
	}

	if err := p.postJSON(ctx, url, reqBody, &parsed); err != nil {
		return nil, err
	}

	if len(parsed.Data) != len(texts) {
		return nil, fmt.Errorf("inference: got %d embeddings for %d texts", len(parsed.Data), len(texts))
	}

	out := make([][]float32, len(texts))
	for _, d := range parsed.Data {
		if d.Index < 0 || d.Index >= len(texts) {
			return nil, fmt.Errorf("inference: embedding index %d out of range", d.Index)
		}
		out[d.Index] = d.Embedding
	}
	for i, v := range out {
		if v == nil {
			return nil, fmt.Errorf("inference: missing embedding for input %d", i)
		}
	}

	return out, nil
}

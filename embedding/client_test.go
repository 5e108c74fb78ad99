package embedding

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(endpoint string) *Config {
	return &Config{
		Endpoint:     endpoint,
		ServiceToken: "test-token",
		Model:        "test-model",
		Dimensions:   3,
		HTTPTimeoutS: 5,
		MaxBatchSize: 2,
	}
}

// embeddingServer fakes an OpenAI-compatible /embeddings endpoint returning
// a deterministic vector per input.
func embeddingServer(t *testing.T, hook func(r *http.Request)) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hook != nil {
			hook(r)
		}

		var req struct {
			Model string   `json:"model"`
			Input []string `json:"input"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		type datum struct {
			Index     int       `json:"index"`
			Embedding []float32 `json:"embedding"`
		}
		data := make([]datum, len(req.Input))
		for i := range req.Input {
			data[i] = datum{
				Index:     i,
				Embedding: []float32{float32(len(req.Input[i])), 0.5, 1.0},
			}
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"data": data})
	}))
}

func TestEmbedBatch_PreservesOrder(t *testing.T) {
	srv := embeddingServer(t, nil)
	defer srv.Close()

	client, err := NewClient(testConfig(srv.URL))
	require.NoError(t, err)

	texts := []string{"a", "bb", "ccc"}
	vectors, err := client.EmbedBatch(context.Background(), texts)
	require.NoError(t, err)
	require.Len(t, vectors, 3)

	// The fake encodes input length in the first component.
	for i, text := range texts {
		assert.Equal(t, float32(len(text)), vectors[i][0], "vector %d out of order", i)
	}
}

func TestEmbedBatch_SplitsOversizedInput(t *testing.T) {
	var requests int
	srv := embeddingServer(t, func(r *http.Request) { requests++ })
	defer srv.Close()

	client, err := NewClient(testConfig(srv.URL))
	require.NoError(t, err)

	// MaxBatchSize is 2, so 5 texts need 3 requests.
	vectors, err := client.EmbedBatch(context.Background(), []string{"a", "b", "c", "d", "e"})
	require.NoError(t, err)
	assert.Len(t, vectors, 5)
	assert.Equal(t, 3, requests)
}

func TestEmbedBatch_EmptyInput(t *testing.T) {
	client, err := NewClient(testConfig("http://unused"))
	require.NoError(t, err)

	vectors, err := client.EmbedBatch(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, vectors)
}

func TestEmbedBatch_SendsBearerToken(t *testing.T) {
	var auth string
	srv := embeddingServer(t, func(r *http.Request) {
		auth = r.Header.Get("Authorization")
	})
	defer srv.Close()

	client, err := NewClient(testConfig(srv.URL))
	require.NoError(t, err)

	_, err = client.EmbedBatch(context.Background(), []string{"x"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer test-token", auth)
}

func TestEmbedBatch_ProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"model overloaded"}`, http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client, err := NewClient(testConfig(srv.URL))
	require.NoError(t, err)

	_, err = client.EmbedBatch(context.Background(), []string{"x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestEmbedBatch_DimensionMismatch(t *testing.T) {
	srv := embeddingServer(t, nil)
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.Dimensions = 8 // fake server always returns 3
	client, err := NewClient(cfg)
	require.NoError(t, err)

	_, err = client.EmbedBatch(context.Background(), []string{"x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dimensions")
}

func TestEmbedBatch_CountMismatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{
				{"index": 0, "embedding": []float32{1, 2, 3}},
			},
		})
	}))
	defer srv.Close()

	client, err := NewClient(testConfig(srv.URL))
	require.NoError(t, err)

	_, err = client.EmbedBatch(context.Background(), []string{"a", "b"})
	require.Error(t, err)
}

func TestNewClient_InvalidConfig(t *testing.T) {
	_, err := NewClient(&Config{})
	require.Error(t, err)

	_, err = NewClient(&Config{Endpoint: "http://x"})
	require.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	cfg := testConfig("http://x")
	assert.NoError(t, cfg.Validate())

	cfg.Dimensions = 0
	assert.Error(t, cfg.Validate())
}

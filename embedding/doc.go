// Package embedding provides a client for computing text embeddings through
// an OpenAI-compatible inference service.
//
// The Client exposes an order-preserving batch API: EmbedBatch returns exactly
// one vector per input text, in input order, or an error. Oversized inputs are
// split into sequential sub-batches transparently; a failing sub-batch fails
// the whole call, so callers never see partial results.
//
// # Configuration
//
// Configuration is read from the environment:
//
//	EMBEDDING_ENDPOINT              base URL of the inference API (required)
//	EMBEDDING_SERVICE_TOKEN         bearer token (required)
//	EMBEDDING_MODEL                 model identifier (default text-embedding-3-small)
//	EMBEDDING_DIMENSIONS            vector size (default 1536)
//	EMBEDDING_MAX_BATCH_SIZE        texts per request (default 64)
//	EMBEDDING_HTTP_TIMEOUT_SECONDS  request timeout (default 30)
//
// # Basic Usage
//
//	client, err := embedding.NewClient(embedding.NewConfig())
//	if err != nil {
//	    panic(err)
//	}
//	vectors, err := client.EmbedBatch(ctx, []string{"first chunk", "second chunk"})
package embedding

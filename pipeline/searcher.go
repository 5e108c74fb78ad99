package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/hearthware/wellness-core/document"
	"github.com/hearthware/wellness-core/promptsafe"
	"github.com/hearthware/wellness-core/vectorindex"
)

const defaultTopK = 8

// SearchQuery is a household-scoped retrieval request.
type SearchQuery struct {
	HouseholdID string
	// Text is the raw user query. It is sanitized before embedding.
	Text string
	// DocumentType optionally restricts results to a single type.
	DocumentType document.Type
	// TopK caps the result count; zero means defaultTopK.
	TopK int
}

// Match is one retrieved chunk with its similarity score.
type Match struct {
	ID           string
	Score        float32
	Text         string
	DocumentType string
	SourceID     string
	Date         string
}

// Searcher answers similarity queries against the embedded corpus. Every
// search is hard-scoped to one household; there is no cross-household path.
type Searcher struct {
	embedder   Embedder
	index      vectorindex.Service
	collection string
}

func NewSearcher(embedder Embedder, index vectorindex.Service, collection string) *Searcher {
	return &Searcher{embedder: embedder, index: index, collection: collection}
}

// Search embeds the sanitized query text and returns the closest chunks
// belonging to the query's household.
func (s *Searcher) Search(ctx context.Context, q SearchQuery) ([]Match, error) {
	if q.HouseholdID == "" {
		return nil, fmt.Errorf("pipeline: search requires a household id")
	}

	text := promptsafe.Sanitize(q.Text)
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	vectors, err := s.embedder.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	if len(vectors) != 1 {
		return nil, fmt.Errorf("embed query: got %d vectors for one text", len(vectors))
	}

	filter := vectorindex.Filter{
		vectorindex.FieldHouseholdID: q.HouseholdID,
	}
	if q.DocumentType != "" {
		if _, err := document.ParseType(string(q.DocumentType)); err != nil {
			return nil, err
		}
		filter[vectorindex.FieldDocumentType] = string(q.DocumentType)
	}

	topK := q.TopK
	if topK <= 0 {
		topK = defaultTopK
	}

	results, err := s.index.Search(ctx, vectorindex.SearchRequest{
		CollectionName: s.collection,
		Vector:         vectors[0],
		TopK:           topK,
		Filter:         filter,
	})
	if err != nil {
		return nil, fmt.Errorf("search index: %w", err)
	}

	matches := make([]Match, 0, len(results))
	for _, r := range results {
		matches = append(matches, Match{
			ID:           r.ID,
			Score:        r.Score,
			Text:         payloadString(r.Payload, vectorindex.FieldText),
			DocumentType: payloadString(r.Payload, vectorindex.FieldDocumentType),
			SourceID:     payloadString(r.Payload, vectorindex.FieldSourceID),
			Date:         payloadString(r.Payload, vectorindex.FieldDate),
		})
	}
	return matches, nil
}

func payloadString(payload map[string]any, key string) string {
	if s, ok := payload[key].(string); ok {
		return s
	}
	return ""
}

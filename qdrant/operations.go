package qdrant

import (
	"context"
	"fmt"
	"slices"

	qdrant "github.com/qdrant/go-client/qdrant"

	"github.com/hearthware/wellness-core/vectorindex"
)

// InitializeCollection verifies if the given collection exists, and creates
// it with the requested vector dimensionality if missing.
//
// It's safe to call this multiple times — if the collection already exists,
// the function exits early after checking its dimensionality. This pattern
// simplifies startup logic and bulk backfills that bootstrap their own
// collections.
func (c *QdrantClient) InitializeCollection(ctx context.Context, name string, vectorSize uint64) error {
	if name == "" {
		return fmt.Errorf("collection name cannot be empty")
	}

	collections, err := c.api.ListCollections(ctx)
	if err != nil {
		return fmt.Errorf("qdrant: failed to list collections: %w", err)
	}

	if slices.Contains(collections, name) {
		existing, err := c.GetCollection(ctx, name)
		if err != nil {
			return err
		}
		if existing.VectorSize != 0 && uint64(existing.VectorSize) != vectorSize {
			return fmt.Errorf("qdrant: collection %q has vector size %d, expected %d",
				name, existing.VectorSize, vectorSize)
		}
		c.log.Debug("collection already exists", nil, map[string]interface{}{
			"collection": name,
		})
		return nil
	}

	c.log.Info("creating collection", nil, map[string]interface{}{
		"collection":  name,
		"vector_size": vectorSize,
	})

	req := &qdrant.CreateCollection{
		CollectionName: name,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     vectorSize,
			Distance: qdrant.Distance_Cosine,
		}),
	}

	if err := c.api.CreateCollection(ctx, req); err != nil {
		return fmt.Errorf("qdrant: failed to create collection %q: %w", name, err)
	}

	return nil
}

// UpsertPoint writes a single point with overwrite semantics.
// It reuses the UpsertPoints logic to ensure consistent handling
// of payload serialization and error management.
func (c *QdrantClient) UpsertPoint(ctx context.Context, collection string, point vectorindex.Point) error {
	return c.UpsertPoints(ctx, collection, []vectorindex.Point{point})
}

// UpsertPoints efficiently inserts multiple points in batches
// to reduce network overhead.
//
// This method is safe to call for large datasets — it automatically splits
// inserts into smaller chunks (defaultBatchSize) and performs multiple
// upserts sequentially, preserving slice order.
func (c *QdrantClient) UpsertPoints(ctx context.Context, collection string, points []vectorindex.Point) error {
	if len(points) == 0 {
		return nil
	}

	for start := 0; start < len(points); start += defaultBatchSize {
		end := min(start+defaultBatchSize, len(points))
		batch := points[start:end]

		if err := c.upsertBatch(ctx, collection, batch); err != nil {
			return fmt.Errorf("qdrant: batch upsert failed at [%d:%d]: %w", start, end, err)
		}
		c.log.Debug("upserted batch", nil, map[string]interface{}{
			"collection": collection,
			"from":       start,
			"to":         end,
		})
	}

	return nil
}

// upsertBatch sends a single Upsert request for a slice of points.
//
// Converts points into Qdrant PointStructs and triggers a blocking insert
// (Wait=true) to ensure data persistence before returning.
func (c *QdrantClient) upsertBatch(ctx context.Context, collection string, batch []vectorindex.Point) error {
	points := make([]*qdrant.PointStruct, 0, len(batch))
	for _, p := range batch {
		points = append(points, &qdrant.PointStruct{
			Id:      qdrant.NewID(p.ID),
			Vectors: qdrant.NewVectors(p.Vector...),
			Payload: qdrant.NewValueMap(buildPayload(p)),
		})
	}

	wait := true
	req := &qdrant.UpsertPoints{
		CollectionName: collection,
		Points:         points,
		Wait:           &wait,
	}

	if _, err := c.api.Upsert(ctx, req); err != nil {
		return fmt.Errorf("upsert failed: %w", err)
	}
	return nil
}

// DeleteByFilter removes every point whose payload matches all field/value
// pairs in the filter. Matching zero points is not an error.
//
// The delete waits for completion (Wait=true) so that a subsequent upsert for
// the same document never races with the removal of its prior points.
func (c *QdrantClient) DeleteByFilter(ctx context.Context, collection string, filter vectorindex.Filter) error {
	if len(filter) == 0 {
		return fmt.Errorf("qdrant: refusing to delete with an empty filter")
	}

	qf, err := buildFilter(filter)
	if err != nil {
		return err
	}

	wait := true
	req := &qdrant.DeletePoints{
		CollectionName: collection,
		Points: &qdrant.PointsSelector{
			PointsSelectorOneOf: &qdrant.PointsSelector_Filter{
				Filter: qf,
			},
		},
		Wait: &wait,
	}

	resp, err := c.api.Delete(ctx, req)
	if err != nil {
		return fmt.Errorf("qdrant: delete by filter failed: %w", err)
	}

	c.log.Debug("delete by filter completed", nil, map[string]interface{}{
		"status":     resp.Status.String(),
		"collection": collection,
	})
	return nil
}

// Search performs a similarity search, optionally constrained by a filter.
func (c *QdrantClient) Search(ctx context.Context, searchReq vectorindex.SearchRequest) ([]vectorindex.SearchResult, error) {
	if err := validateSearchInput(searchReq.CollectionName, searchReq.Vector, searchReq.TopK); err != nil {
		return nil, err
	}

	var qf *qdrant.Filter
	if len(searchReq.Filter) > 0 {
		var err error
		if qf, err = buildFilter(searchReq.Filter); err != nil {
			return nil, err
		}
	}

	limit := uint64(searchReq.TopK)
	req := &qdrant.QueryPoints{
		CollectionName: searchReq.CollectionName,
		Query:          qdrant.NewQuery(searchReq.Vector...),
		Limit:          &limit,
		WithPayload:    qdrant.NewWithPayload(true),
		Filter:         qf,
	}

	resp, err := c.api.Query(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("qdrant: search failed: %w", err)
	}

	results, err := parseSearchResults(resp)
	if err != nil {
		return nil, fmt.Errorf("qdrant: parse search results: %w", err)
	}

	return results, nil
}

// GetCollection retrieves detailed metadata about a specific collection.
//
// It returns a high-level, decoupled vectorindex.Collection struct so that
// the application layer remains independent of Qdrant's client library.
func (c *QdrantClient) GetCollection(ctx context.Context, name string) (*vectorindex.Collection, error) {
	if c.api == nil {
		return nil, fmt.Errorf("qdrant: client not initialized")
	}
	if name == "" {
		return nil, fmt.Errorf("collection name cannot be empty")
	}

	info, err := c.api.GetCollectionInfo(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("qdrant: failed to get collection %q: %w", name, err)
	}

	size, distance := extractVectorDetails(info)

	return &vectorindex.Collection{
		Name:       name,
		Status:     info.Status.String(),
		VectorSize: int(size),
		Distance:   distance,
		PointCount: derefUint64(info.PointsCount),
	}, nil
}

package qdrant

import (
	"fmt"
	"sort"

	qdrant "github.com/qdrant/go-client/qdrant"

	"github.com/hearthware/wellness-core/vectorindex"
)

// buildPayload merges a point's payload with its chunk text so that search
// results can return the matched text without a second lookup.
func buildPayload(p vectorindex.Point) map[string]any {
	payload := make(map[string]any, len(p.Payload)+1)
	for k, v := range p.Payload {
		payload[k] = v
	}
	if p.Text != "" {
		payload[vectorindex.FieldText] = p.Text
	}
	return payload
}

// buildFilter converts a vectorindex.Filter (conjunction of exact matches)
// into a native Qdrant filter with Must conditions.
func buildFilter(filter vectorindex.Filter) (*qdrant.Filter, error) {
	fields := make([]string, 0, len(filter))
	for field := range filter {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	conditions := make([]*qdrant.Condition, 0, len(filter))
	for _, field := range fields {
		value := filter[field]
		switch v := value.(type) {
		case string:
			conditions = append(conditions, qdrant.NewMatch(field, v))
		case bool:
			conditions = append(conditions, qdrant.NewMatchBool(field, v))
		case int:
			conditions = append(conditions, qdrant.NewMatchInt(field, int64(v)))
		case int64:
			conditions = append(conditions, qdrant.NewMatchInt(field, v))
		case float64:
			// JSON round-trips turn ints into float64
			conditions = append(conditions, qdrant.NewMatchInt(field, int64(v)))
		default:
			return nil, fmt.Errorf("qdrant: unsupported filter value type %T for field %q", value, field)
		}
	}

	return &qdrant.Filter{Must: conditions}, nil
}

// parseSearchResults converts the Qdrant response to vectorindex.SearchResult slices.
func parseSearchResults(resp []*qdrant.ScoredPoint) ([]vectorindex.SearchResult, error) {
	results := make([]vectorindex.SearchResult, 0, len(resp))
	for _, r := range resp {
		id, err := extractPointID(r.Id)
		if err != nil {
			return nil, err
		}

		results = append(results, vectorindex.SearchResult{
			ID:      id,
			Score:   r.Score,
			Payload: convertPayload(r.Payload),
		})
	}
	return results, nil
}

// extractPointID extracts a string ID from Qdrant's PointId type.
func extractPointID(id *qdrant.PointId) (string, error) {
	if id == nil {
		return "", fmt.Errorf("nil point ID")
	}
	switch v := id.PointIdOptions.(type) {
	case *qdrant.PointId_Num:
		return fmt.Sprintf("%d", v.Num), nil
	case *qdrant.PointId_Uuid:
		return v.Uuid, nil
	default:
		return "", fmt.Errorf("unexpected PointId type: %T", v)
	}
}

// convertPayload converts Qdrant's protobuf payload to a generic map.
func convertPayload(payload map[string]*qdrant.Value) map[string]any {
	if payload == nil {
		return nil
	}
	result := make(map[string]any, len(payload))
	for k, v := range payload {
		result[k] = extractValue(v)
	}
	return result
}

// extractValue recursively converts a Qdrant Value to a Go native type.
func extractValue(v *qdrant.Value) any {
	if v == nil {
		return nil
	}
	switch val := v.Kind.(type) {
	case *qdrant.Value_StringValue:
		return val.StringValue
	case *qdrant.Value_IntegerValue:
		return val.IntegerValue
	case *qdrant.Value_DoubleValue:
		return val.DoubleValue
	case *qdrant.Value_BoolValue:
		return val.BoolValue
	case *qdrant.Value_NullValue:
		return nil
	case *qdrant.Value_StructValue:
		if val.StructValue == nil {
			return nil
		}
		return convertPayload(val.StructValue.Fields)
	case *qdrant.Value_ListValue:
		if val.ListValue == nil {
			return nil
		}
		items := make([]any, len(val.ListValue.Values))
		for i, item := range val.ListValue.Values {
			items[i] = extractValue(item)
		}
		return items
	default:
		return nil
	}
}

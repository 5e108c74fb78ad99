package qdrant

import (
	"testing"

	qdrant "github.com/qdrant/go-client/qdrant"
	"google.golang.org/protobuf/proto"

	"github.com/hearthware/wellness-core/vectorindex"
)

func TestBuildPayload_MergesText(t *testing.T) {
	p := vectorindex.Point{
		ID:     "00000000-0000-0000-0000-000000000001",
		Vector: []float32{0.1, 0.2},
		Payload: map[string]any{
			vectorindex.FieldHouseholdID: "hh_1",
			vectorindex.FieldChunkIndex:  2,
		},
		Text: "Breakfast: oats with berries",
	}

	payload := buildPayload(p)

	if payload[vectorindex.FieldText] != "Breakfast: oats with berries" {
		t.Errorf("expected chunk text in payload, got %v", payload[vectorindex.FieldText])
	}
	if payload[vectorindex.FieldHouseholdID] != "hh_1" {
		t.Errorf("expected household_id preserved, got %v", payload[vectorindex.FieldHouseholdID])
	}
	if len(payload) != 3 {
		t.Errorf("expected 3 payload fields, got %d", len(payload))
	}
}

func TestBuildPayload_EmptyText(t *testing.T) {
	p := vectorindex.Point{
		ID:      "00000000-0000-0000-0000-000000000002",
		Payload: map[string]any{"a": "b"},
	}

	payload := buildPayload(p)

	if _, ok := payload[vectorindex.FieldText]; ok {
		t.Error("expected no text field for empty chunk text")
	}
}

func TestBuildPayload_DoesNotMutateInput(t *testing.T) {
	original := map[string]any{"a": "b"}
	p := vectorindex.Point{Payload: original, Text: "hello"}

	_ = buildPayload(p)

	if _, ok := original[vectorindex.FieldText]; ok {
		t.Error("buildPayload must not mutate the input payload")
	}
}

func TestBuildFilter_StringMatch(t *testing.T) {
	f, err := buildFilter(vectorindex.Filter{
		vectorindex.FieldDocumentType: "health_log",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(f.Must) != 1 {
		t.Fatalf("expected 1 Must condition, got %d", len(f.Must))
	}

	want := qdrant.NewMatch(vectorindex.FieldDocumentType, "health_log")
	if !proto.Equal(f.Must[0], want) {
		t.Errorf("expected condition %v, got %v", want, f.Must[0])
	}
}

func TestBuildFilter_MultipleConditionsSorted(t *testing.T) {
	f, err := buildFilter(vectorindex.Filter{
		vectorindex.FieldSourceID:     "doc_42",
		vectorindex.FieldDocumentType: "recipe",
		vectorindex.FieldChunkIndex:   3,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(f.Must) != 3 {
		t.Fatalf("expected 3 Must conditions, got %d", len(f.Must))
	}

	// Keys iterate in sorted order: chunk_index, document_type, source_id.
	keys := make([]string, 0, len(f.Must))
	for _, c := range f.Must {
		field := c.GetField()
		if field == nil {
			t.Fatal("expected field condition")
		}
		keys = append(keys, field.Key)
	}
	want := []string{
		vectorindex.FieldChunkIndex,
		vectorindex.FieldDocumentType,
		vectorindex.FieldSourceID,
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("condition %d: expected key %q, got %q", i, want[i], keys[i])
		}
	}
}

func TestBuildFilter_IntTypes(t *testing.T) {
	for _, value := range []any{int(7), int64(7), float64(7)} {
		f, err := buildFilter(vectorindex.Filter{"chunk_index": value})
		if err != nil {
			t.Fatalf("value %T: unexpected error: %v", value, err)
		}
		match := f.Must[0].GetField().GetMatch()
		if match == nil {
			t.Fatalf("value %T: expected match condition", value)
		}
		if match.GetInteger() != 7 {
			t.Errorf("value %T: expected integer match 7, got %d", value, match.GetInteger())
		}
	}
}

func TestBuildFilter_BoolMatch(t *testing.T) {
	f, err := buildFilter(vectorindex.Filter{"archived": false})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	match := f.Must[0].GetField().GetMatch()
	if match == nil {
		t.Fatal("expected match condition")
	}
	if match.GetBoolean() != false {
		t.Errorf("expected boolean match false, got %v", match.GetBoolean())
	}
}

func TestBuildFilter_UnsupportedType(t *testing.T) {
	_, err := buildFilter(vectorindex.Filter{"bad": []string{"a"}})
	if err == nil {
		t.Fatal("expected error for unsupported value type")
	}
}

func TestExtractPointID(t *testing.T) {
	id, err := extractPointID(&qdrant.PointId{
		PointIdOptions: &qdrant.PointId_Uuid{Uuid: "00000000-0000-0000-0000-000000000009"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "00000000-0000-0000-0000-000000000009" {
		t.Errorf("unexpected id %q", id)
	}

	id, err = extractPointID(&qdrant.PointId{
		PointIdOptions: &qdrant.PointId_Num{Num: 42},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "42" {
		t.Errorf("expected id \"42\", got %q", id)
	}

	if _, err := extractPointID(nil); err == nil {
		t.Error("expected error for nil point ID")
	}
}

func TestExtractValue(t *testing.T) {
	cases := []struct {
		name  string
		value *qdrant.Value
		want  any
	}{
		{"string", &qdrant.Value{Kind: &qdrant.Value_StringValue{StringValue: "hi"}}, "hi"},
		{"integer", &qdrant.Value{Kind: &qdrant.Value_IntegerValue{IntegerValue: 12}}, int64(12)},
		{"double", &qdrant.Value{Kind: &qdrant.Value_DoubleValue{DoubleValue: 1.5}}, 1.5},
		{"bool", &qdrant.Value{Kind: &qdrant.Value_BoolValue{BoolValue: true}}, true},
		{"null", &qdrant.Value{Kind: &qdrant.Value_NullValue{}}, nil},
		{"nil", nil, nil},
	}

	for _, tc := range cases {
		got := extractValue(tc.value)
		if got != tc.want {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestExtractValue_Nested(t *testing.T) {
	v := &qdrant.Value{Kind: &qdrant.Value_ListValue{ListValue: &qdrant.ListValue{
		Values: []*qdrant.Value{
			{Kind: &qdrant.Value_StringValue{StringValue: "a"}},
			{Kind: &qdrant.Value_IntegerValue{IntegerValue: 2}},
		},
	}}}

	got, ok := extractValue(v).([]any)
	if !ok {
		t.Fatalf("expected []any, got %T", extractValue(v))
	}
	if len(got) != 2 || got[0] != "a" || got[1] != int64(2) {
		t.Errorf("unexpected list contents: %v", got)
	}
}

func TestValidateSearchInput(t *testing.T) {
	if err := validateSearchInput("docs", []float32{0.1}, 5); err != nil {
		t.Errorf("valid input rejected: %v", err)
	}
	if err := validateSearchInput("", []float32{0.1}, 5); err == nil {
		t.Error("expected error for empty collection")
	}
	if err := validateSearchInput("docs", nil, 5); err == nil {
		t.Error("expected error for empty vector")
	}
	if err := validateSearchInput("docs", []float32{0.1}, 0); err == nil {
		t.Error("expected error for zero topK")
	}
}

package pipeline

import (
	"testing"

	"github.com/hearthware/wellness-core/document"
)

func TestDecodeTaskRoundTrip(t *testing.T) {
	task := EmbeddingTask{
		DocumentType: document.TypeHealthLog,
		SourceID:     "log-1",
		HouseholdID:  "house-1",
		UserID:       "user-1",
	}

	data, err := task.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	got, err := DecodeTask(data)
	if err != nil {
		t.Fatalf("DecodeTask: %v", err)
	}
	if got != task {
		t.Fatalf("round trip changed task: %+v", got)
	}
}

func TestDecodeTaskRejectsMalformed(t *testing.T) {
	cases := map[string]string{
		"not json":        `{"document_type": "recipe"`,
		"unknown type":    `{"document_type":"diary","source_id":"1","household_id":"h"}`,
		"no source":       `{"document_type":"recipe","household_id":"h"}`,
		"no household":    `{"document_type":"recipe","source_id":"1"}`,
		"empty object":    `{}`,
		"wrong top level": `["recipe"]`,
	}

	for name, payload := range cases {
		if _, err := DecodeTask([]byte(payload)); err == nil {
			t.Errorf("%s: decoded without error", name)
		}
	}
}

func TestTaskUserIDOmittedWhenEmpty(t *testing.T) {
	data, err := EmbeddingTask{
		DocumentType: document.TypeRecipe,
		SourceID:     "r-1",
		HouseholdID:  "house-1",
	}.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if string(data) != `{"document_type":"recipe","source_id":"r-1","household_id":"house-1"}` {
		t.Fatalf("unexpected encoding: %s", data)
	}
}

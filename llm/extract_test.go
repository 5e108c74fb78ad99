package llm

import (
	"encoding/json"
	"testing"
)

func TestExtractJSON_Fenced(t *testing.T) {
	completion := "Here is the result:\n```json\n{\"mood\": \"good\"}\n```\nLet me know if you need anything else."

	got, err := ExtractJSON(completion)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != `{"mood": "good"}` {
		t.Errorf("unexpected extraction: %q", got)
	}
}

func TestExtractJSON_FencedWithoutLanguage(t *testing.T) {
	got, err := ExtractJSON("```\n[1, 2, 3]\n```")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "[1, 2, 3]" {
		t.Errorf("unexpected extraction: %q", got)
	}
}

func TestExtractJSON_BareObjectWithSurroundingProse(t *testing.T) {
	completion := `Sure! The parsed log is {"sleep_hours": 7.5, "note": "ran {5k}"} as requested.`

	got, err := ExtractJSON(completion)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var parsed map[string]any
	if err := json.Unmarshal([]byte(got), &parsed); err != nil {
		t.Fatalf("extracted text is not valid JSON: %v", err)
	}
	if parsed["sleep_hours"] != 7.5 {
		t.Errorf("unexpected sleep_hours: %v", parsed["sleep_hours"])
	}
}

func TestExtractJSON_BracesInsideStrings(t *testing.T) {
	completion := `{"text": "a } inside a string", "n": 1}`

	got, err := ExtractJSON(completion)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != completion {
		t.Errorf("expected full object, got %q", got)
	}
}

func TestExtractJSON_EscapedQuotes(t *testing.T) {
	completion := `noise {"text": "she said \"hi\" {"} trailing`

	got, err := ExtractJSON(completion)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != `{"text": "she said \"hi\" {"}` {
		t.Errorf("unexpected extraction: %q", got)
	}
}

func TestExtractJSON_Array(t *testing.T) {
	got, err := ExtractJSON(`annotations: [{"day": "monday"}, {"day": "tuesday"}]`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != `[{"day": "monday"}, {"day": "tuesday"}]` {
		t.Errorf("unexpected extraction: %q", got)
	}
}

func TestExtractJSON_NoJSON(t *testing.T) {
	if _, err := ExtractJSON("I could not produce a structured answer."); err == nil {
		t.Error("expected error for completion without JSON")
	}
}

func TestExtractJSON_Empty(t *testing.T) {
	if _, err := ExtractJSON("   \n  "); err == nil {
		t.Error("expected error for empty completion")
	}
}

func TestExtractJSON_UnbalancedBraces(t *testing.T) {
	if _, err := ExtractJSON(`{"unterminated": true`); err == nil {
		t.Error("expected error for unbalanced JSON")
	}
}

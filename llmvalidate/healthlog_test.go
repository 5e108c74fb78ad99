package llmvalidate

import "testing"

func TestValidateHealthLogParse_HappyPath(t *testing.T) {
	raw := map[string]any{
		"mood":         "good",
		"sleep_hours":  7.5,
		"energy_level": 4.0,
		"note":         "morning run felt great",
		"confidence":   0.9,
	}

	got := ValidateHealthLogParse(raw)

	if got.Mood != "good" {
		t.Errorf("mood = %q", got.Mood)
	}
	if got.SleepHours != 7.5 {
		t.Errorf("sleep = %v", got.SleepHours)
	}
	if got.EnergyLevel != 4 {
		t.Errorf("energy = %d", got.EnergyLevel)
	}
	if got.Note != "morning run felt great" {
		t.Errorf("note = %q", got.Note)
	}
	if got.Confidence != 0.9 {
		t.Errorf("confidence = %v", got.Confidence)
	}
}

func TestValidateHealthLogParse_MoodDefaults(t *testing.T) {
	for _, mood := range []any{"furious", "", nil, 42, "GOOD rage"} {
		got := ValidateHealthLogParse(map[string]any{"mood": mood})
		if got.Mood != "neutral" {
			t.Errorf("mood %v: expected neutral, got %q", mood, got.Mood)
		}
	}

	// Case-insensitive acceptance of valid moods.
	if got := ValidateHealthLogParse(map[string]any{"mood": "  Good "}); got.Mood != "good" {
		t.Errorf("expected good, got %q", got.Mood)
	}
}

func TestValidateHealthLogParse_Clamps(t *testing.T) {
	got := ValidateHealthLogParse(map[string]any{
		"sleep_hours":  30.0,
		"confidence":   1.7,
		"energy_level": 9.0,
	})
	if got.SleepHours != 24 {
		t.Errorf("sleep clamp failed: %v", got.SleepHours)
	}
	if got.Confidence != 1.0 {
		t.Errorf("confidence clamp failed: %v", got.Confidence)
	}
	if got.EnergyLevel != 5 {
		t.Errorf("energy clamp failed: %d", got.EnergyLevel)
	}

	got = ValidateHealthLogParse(map[string]any{
		"sleep_hours": -2.0,
		"confidence":  -0.2,
	})
	if got.SleepHours != 0 {
		t.Errorf("negative sleep not clamped: %v", got.SleepHours)
	}
	if got.Confidence != 0 {
		t.Errorf("negative confidence not clamped: %v", got.Confidence)
	}
}

func TestValidateHealthLogParse_NumericStrings(t *testing.T) {
	got := ValidateHealthLogParse(map[string]any{"sleep_hours": "8", "confidence": "0.75"})
	if got.SleepHours != 8 {
		t.Errorf("string sleep not coerced: %v", got.SleepHours)
	}
	if got.Confidence != 0.75 {
		t.Errorf("string confidence not coerced: %v", got.Confidence)
	}
}

func TestValidateHealthLogParse_GibberishNote(t *testing.T) {
	got := ValidateHealthLogParse(map[string]any{"note": "asdf asdf legitimate note"})
	if got.Note != "legitimate note" {
		t.Errorf("note = %q", got.Note)
	}
}

func TestValidateHealthLogParse_NonObject(t *testing.T) {
	for _, raw := range []any{nil, "a string", []any{1, 2}, 7.0} {
		got := ValidateHealthLogParse(raw)
		if got.Mood != "neutral" || got.SleepHours != 0 || got.Note != "" {
			t.Errorf("non-object %v should yield defaults, got %+v", raw, got)
		}
	}
}

func TestValidateHealthLogParse_DroppedFieldsKeepRest(t *testing.T) {
	got := ValidateHealthLogParse(map[string]any{
		"mood":        "low",
		"sleep_hours": "not a number",
	})
	if got.Mood != "low" {
		t.Error("valid mood lost when another field was invalid")
	}
	if got.SleepHours != 0 {
		t.Errorf("unparseable sleep should default to 0, got %v", got.SleepHours)
	}
}

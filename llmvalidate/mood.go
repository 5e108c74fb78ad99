package llmvalidate

import "time"

// MoodAnnotation is one validated mood observation extracted from free text.
type MoodAnnotation struct {
	Date       string  `json:"date"`
	Mood       string  `json:"mood"`
	Note       string  `json:"note"`
	Confidence float64 `json:"confidence"`
}

// ValidateMoodAnnotations repairs a raw model response for the mood
// extraction use case. Both the wrapped {"annotations": [...]} shape and a
// bare list are accepted. Entries that are not objects or carry no usable
// signal are skipped individually; one bad entry never discards the batch.
func ValidateMoodAnnotations(raw any) []MoodAnnotation {
	items, ok := asList(raw)
	if !ok {
		m, isMap := asMap(raw)
		if !isMap {
			return nil
		}
		if items, ok = asList(m["annotations"]); !ok {
			return nil
		}
	}

	var out []MoodAnnotation
	for _, item := range items {
		if a, ok := parseAnnotation(item); ok {
			out = append(out, a)
		}
	}
	return out
}

func parseAnnotation(item any) (MoodAnnotation, bool) {
	m, ok := asMap(item)
	if !ok {
		return MoodAnnotation{}, false
	}

	a := MoodAnnotation{
		Date: normalizeDate(fieldString(m, "date", "day")),
		Mood: normalizeMood(fieldString(m, "mood")),
		Note: cleanText(fieldString(m, "note", "notes", "text")),
	}
	if v, ok := fieldFloat(m, "confidence"); ok {
		a.Confidence = clampFloat(v, 0, 1)
	}

	// An annotation with neither a date nor a note carries nothing worth
	// keeping; the mood alone is unanchored.
	if a.Date == "" && a.Note == "" {
		return MoodAnnotation{}, false
	}
	return a, true
}

// normalizeDate keeps ISO dates and drops everything else rather than
// guessing at ambiguous formats.
func normalizeDate(s string) string {
	if s == "" {
		return ""
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return ""
	}
	return s
}

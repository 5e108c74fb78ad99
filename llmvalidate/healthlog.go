package llmvalidate

import "strings"

// Moods the application understands. Anything else the model invents
// ("furious", "ecstatic") collapses to neutral.
var allowedMoods = map[string]bool{
	"excellent": true,
	"good":      true,
	"neutral":   true,
	"low":       true,
	"bad":       true,
}

// DefaultMood is the fallback for absent or unrecognized moods.
const DefaultMood = "neutral"

// HealthLogParse is the schema-complete result of parsing a free-text
// health-log sentence. Every field is safe to persist as-is.
type HealthLogParse struct {
	Mood        string  `json:"mood"`
	SleepHours  float64 `json:"sleep_hours"`
	EnergyLevel int     `json:"energy_level"`
	Note        string  `json:"note"`
	Confidence  float64 `json:"confidence"`
}

// ValidateHealthLogParse repairs a raw model response for the health-log
// parsing use case. Invalid fields are defaulted or clamped, never rejected:
// the caller always receives a complete structure.
func ValidateHealthLogParse(raw any) HealthLogParse {
	out := HealthLogParse{Mood: DefaultMood}

	m, ok := asMap(raw)
	if !ok {
		return out
	}

	out.Mood = normalizeMood(fieldString(m, "mood"))

	if v, ok := fieldFloat(m, "sleep_hours", "sleep"); ok {
		out.SleepHours = clampFloat(v, 0, 24)
	}

	if v, ok := fieldFloat(m, "energy_level", "energy"); ok {
		out.EnergyLevel = int(clampFloat(v, 1, 5))
	}

	out.Note = cleanText(fieldString(m, "note", "notes"))

	if v, ok := fieldFloat(m, "confidence"); ok {
		out.Confidence = clampFloat(v, 0, 1)
	}

	return out
}

func normalizeMood(mood string) string {
	mood = strings.ToLower(strings.TrimSpace(mood))
	if allowedMoods[mood] {
		return mood
	}
	return DefaultMood
}

package llmvalidate

import "strings"

// IntakeEntry is one person's reconciled nutrition intake.
type IntakeEntry struct {
	UserID     string  `json:"user_id"`
	Name       string  `json:"name"`
	Calories   float64 `json:"calories"`
	ProteinG   float64 `json:"protein_g"`
	CarbsG     float64 `json:"carbs_g"`
	FatG       float64 `json:"fat_g"`
	Confidence float64 `json:"confidence"`

	// Synthesized marks entries the validator created because the model
	// omitted that person entirely.
	Synthesized bool `json:"synthesized"`
}

// NutritionResult always contains the requesting user's entry first and,
// when a partner identity is in play, the partner's entry second. Callers
// never branch on missing data; an omitted side is a zero-valued entry.
type NutritionResult struct {
	Entries []IntakeEntry `json:"entries"`
}

// NutritionIdentity describes who the caller expects intake entries for.
type NutritionIdentity struct {
	UserID      string
	UserName    string
	PartnerID   string
	PartnerName string

	// PartnerHasLogs tells the validator whether a partner entry is
	// expected in the result. Without logs there is no intake to report,
	// so no partner entry is synthesized or included. Records matching
	// the partner's id or name are still recognized as the partner's and
	// never rewritten into the user's entry.
	PartnerHasLogs bool
}

// ValidateNutritionCalculation reconciles a raw model response against the
// known household identities.
//
// Each returned record is matched to a person using, in priority order:
// exact user id, exact partner id, partner name equality, fuzzy substring
// match against the user's name, and finally default assignment to the user.
// When multiple records land on the same person, the first wins and later
// ones are dropped. The fuzzy steps are a tie-break policy, not a
// correctness guarantee.
func ValidateNutritionCalculation(raw any, id NutritionIdentity) NutritionResult {
	partnerIdentified := id.PartnerID != "" || id.PartnerName != ""

	var userEntry, partnerEntry *IntakeEntry

	for _, item := range rawEntries(raw) {
		entry := parseIntake(item)
		if entry == nil {
			continue
		}

		if assignedToPartner(entry, id, partnerIdentified) {
			if partnerEntry == nil {
				entry.UserID = id.PartnerID
				entry.Name = id.PartnerName
				partnerEntry = entry
			}
			continue
		}

		if userEntry == nil {
			entry.UserID = id.UserID
			entry.Name = id.UserName
			userEntry = entry
		}
	}

	if userEntry == nil {
		userEntry = &IntakeEntry{UserID: id.UserID, Name: id.UserName, Synthesized: true}
	}

	// A partner entry appears in the result only for a partner with
	// logging history. Matching above is unconditional so that a partner's
	// record without history is excluded rather than attributed to the
	// user.
	result := NutritionResult{Entries: []IntakeEntry{*userEntry}}
	if partnerIdentified && id.PartnerHasLogs {
		if partnerEntry == nil {
			partnerEntry = &IntakeEntry{UserID: id.PartnerID, Name: id.PartnerName, Synthesized: true}
		}
		result.Entries = append(result.Entries, *partnerEntry)
	}

	return result
}

// assignedToPartner runs the reconciliation ladder. Steps 1 through 4 are
// definitive matches; step 5 is the default and maps to the user.
func assignedToPartner(entry *IntakeEntry, id NutritionIdentity, partnerIdentified bool) bool {
	// 1. Exact user id.
	if entry.UserID != "" && entry.UserID == id.UserID {
		return false
	}
	if !partnerIdentified {
		return false
	}
	// 2. Exact partner id.
	if entry.UserID != "" && entry.UserID == id.PartnerID {
		return true
	}
	// 3. Partner name equality.
	if entry.Name != "" && id.PartnerName != "" && strings.EqualFold(entry.Name, id.PartnerName) {
		return true
	}
	// 4. Fuzzy substring match against the user.
	if entry.Name != "" && id.UserName != "" && fuzzyNameMatch(entry.Name, id.UserName) {
		return false
	}
	// 5. Default to the user.
	return false
}

func fuzzyNameMatch(got, want string) bool {
	got = strings.ToLower(strings.TrimSpace(got))
	want = strings.ToLower(strings.TrimSpace(want))
	if got == "" || want == "" {
		return false
	}
	return strings.Contains(got, want) || strings.Contains(want, got)
}

// rawEntries digs the intake list out of whatever shape the model chose:
// a bare list, or an object wrapping one under a known key.
func rawEntries(raw any) []any {
	if list, ok := asList(raw); ok {
		return list
	}
	if m, ok := asMap(raw); ok {
		for _, key := range []string{"entries", "intakes", "results", "users"} {
			if list, ok := asList(m[key]); ok {
				return list
			}
		}
		// A single object is treated as a one-entry list.
		return []any{raw}
	}
	return nil
}

// parseIntake validates one record. Numeric fields are clamped to
// non-negative values; confidence to [0,1]. Returns nil for records that
// are not objects at all.
func parseIntake(item any) *IntakeEntry {
	m, ok := asMap(item)
	if !ok {
		return nil
	}

	entry := &IntakeEntry{
		UserID: fieldString(m, "user_id", "id"),
		Name:   cleanText(fieldString(m, "name", "user_name", "user")),
	}

	if v, ok := fieldFloat(m, "calories", "kcal"); ok {
		entry.Calories = clampFloat(v, 0, 100000)
	}
	if v, ok := fieldFloat(m, "protein_g", "protein"); ok {
		entry.ProteinG = clampFloat(v, 0, 10000)
	}
	if v, ok := fieldFloat(m, "carbs_g", "carbs"); ok {
		entry.CarbsG = clampFloat(v, 0, 10000)
	}
	if v, ok := fieldFloat(m, "fat_g", "fat"); ok {
		entry.FatG = clampFloat(v, 0, 10000)
	}
	if v, ok := fieldFloat(m, "confidence"); ok {
		entry.Confidence = clampFloat(v, 0, 1)
	}

	return entry
}

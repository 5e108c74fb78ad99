package chunk

import (
	"strings"

	"github.com/hearthware/wellness-core/document"
)

// maxLen is the per-chunk character budget, chosen well under the embedding
// provider's input limit so token expansion never overruns it.
const maxLen = 2000

// policyFor returns the chunk budget for a document type. Short fixed-shape
// records get the full budget, which in practice yields exactly one chunk;
// multi-section records share the same bound per section.
func policyFor(t document.Type) int {
	switch t {
	case document.TypeHealthLog, document.TypePantryItem, document.TypeGoal:
		return maxLen
	case document.TypeRecipe:
		return maxLen
	default:
		return maxLen
	}
}

// Split divides a formatted text into bounded chunks for one document type.
//
// Splitting is deterministic: paragraph boundaries first, then sentence
// boundaries, then a hard cut as the last resort. Empty or whitespace-only
// input yields nil, never a single empty chunk.
func Split(text string, t document.Type) []string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}

	budget := policyFor(t)
	if len([]rune(trimmed)) <= budget {
		return []string{trimmed}
	}

	var chunks []string
	for _, para := range splitParagraphs(trimmed) {
		chunks = append(chunks, packUnits(splitSentences(para), budget)...)
	}
	return chunks
}

// splitParagraphs splits on blank lines, discarding empty paragraphs.
func splitParagraphs(text string) []string {
	var out []string
	for _, p := range strings.Split(text, "\n\n") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// splitSentences splits a paragraph on sentence-final punctuation followed
// by a space, keeping the punctuation with its sentence.
func splitSentences(para string) []string {
	var out []string
	start := 0
	runes := []rune(para)
	for i := 0; i < len(runes); i++ {
		if (runes[i] == '.' || runes[i] == '!' || runes[i] == '?') &&
			i+1 < len(runes) && runes[i+1] == ' ' {
			s := strings.TrimSpace(string(runes[start : i+1]))
			if s != "" {
				out = append(out, s)
			}
			start = i + 1
		}
	}
	if tail := strings.TrimSpace(string(runes[start:])); tail != "" {
		out = append(out, tail)
	}
	return out
}

// packUnits greedily packs sentence units into chunks without exceeding the
// budget. A single unit longer than the budget is hard-cut at rune
// boundaries.
func packUnits(units []string, budget int) []string {
	var chunks []string
	var current strings.Builder
	currentLen := 0

	flush := func() {
		if currentLen > 0 {
			chunks = append(chunks, current.String())
			current.Reset()
			currentLen = 0
		}
	}

	for _, unit := range units {
		runes := []rune(unit)
		if len(runes) > budget {
			flush()
			for start := 0; start < len(runes); start += budget {
				end := start + budget
				if end > len(runes) {
					end = len(runes)
				}
				chunks = append(chunks, string(runes[start:end]))
			}
			continue
		}

		// +1 accounts for the joining space
		if currentLen > 0 && currentLen+1+len(runes) > budget {
			flush()
		}
		if currentLen > 0 {
			current.WriteByte(' ')
			currentLen++
		}
		current.WriteString(unit)
		currentLen += len(runes)
	}
	flush()

	return chunks
}

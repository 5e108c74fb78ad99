package promptsafe

import (
	"regexp"
	"strings"
)

// DefaultMaxLen caps sanitized text so a single pathological input cannot
// blow the prompt token budget.
const DefaultMaxLen = 1500

var (
	// Instruction-override and role-manipulation phrasings. Matched case
	// insensitively and removed outright.
	injectionPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bignore\s+(all\s+|any\s+)?(previous|prior|above|earlier)\s+(instructions?|prompts?|messages?|context)\b`),
		regexp.MustCompile(`(?i)\bdisregard\s+(all\s+|any\s+)?(previous|prior|above|earlier)\s+\w+`),
		regexp.MustCompile(`(?i)\bforget\s+(everything|all)\b.{0,40}`),
		regexp.MustCompile(`(?i)\byou\s+are\s+now\b`),
		regexp.MustCompile(`(?i)\bact\s+as\s+(?:a\s+|an\s+)?\w+`),
		regexp.MustCompile(`(?i)\bpretend\s+to\s+be\b`),
		regexp.MustCompile(`(?i)\bnew\s+instructions?\s*:`),
		regexp.MustCompile(`(?i)\b(system|assistant|user|developer)\s*:`),
	}

	// Special delimiter tokens used by chat templates.
	delimiterTokens = regexp.MustCompile(`<\|[^|]*\|>|\[/?INST\]|<<SYS>>|<</SYS>>|` + "```|###")

	scriptBlocks = regexp.MustCompile(`(?is)<script.*?(</script>|$)`)
	htmlTags     = regexp.MustCompile(`<[^>]*>`)

	runOnSpace = regexp.MustCompile(`\s+`)
)

// Sanitize cleans user-authored text before it is interpolated into an LLM
// prompt, using the default length cap. Pure function; empty input yields
// the empty string.
func Sanitize(input string) string {
	return SanitizeN(input, DefaultMaxLen)
}

// SanitizeN is Sanitize with an explicit length cap.
//
// This is a best-effort filter: it removes recognizable injection phrasings,
// chat-template delimiters, and markup, escapes quotes so the text cannot
// break out of its structural framing, collapses whitespace, and truncates.
// It does not make adversarial input safe, it makes it less convenient.
func SanitizeN(input string, maxLen int) string {
	if input == "" {
		return ""
	}

	s := scriptBlocks.ReplaceAllString(input, " ")
	s = htmlTags.ReplaceAllString(s, " ")
	s = delimiterTokens.ReplaceAllString(s, " ")

	// Removal can splice two halves of a pattern together, so repeat
	// until stable, bounded.
	for i := 0; i < 5; i++ {
		before := s
		for _, p := range injectionPatterns {
			s = p.ReplaceAllString(s, " ")
		}
		if s == before {
			break
		}
	}

	s = strings.ReplaceAll(s, `\`, ``)
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, `'`, `\'`)

	s = runOnSpace.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)

	if maxLen > 0 {
		runes := []rune(s)
		if len(runes) > maxLen {
			s = strings.TrimSpace(string(runes[:maxLen]))
			// Do not end mid escape sequence.
			s = strings.TrimRight(s, `\`)
		}
	}

	return s
}

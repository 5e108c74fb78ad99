package llm

import (
	"fmt"
	"regexp"
	"strings"
)

var fencedJSON = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")

// ExtractJSON pulls a JSON document out of a model completion.
//
// Models wrap JSON in markdown fences, prepend explanations, or append
// commentary. This helper tries, in order:
//  1. the first fenced code block (```json ... ``` or plain ```)
//  2. the substring from the first '{' or '[' to its matching close
//
// The returned string is not guaranteed to be valid JSON; callers must still
// unmarshal and validate it.
func ExtractJSON(completion string) (string, error) {
	trimmed := strings.TrimSpace(completion)
	if trimmed == "" {
		return "", fmt.Errorf("llm: empty completion")
	}

	if m := fencedJSON.FindStringSubmatch(trimmed); m != nil {
		candidate := strings.TrimSpace(m[1])
		if candidate != "" {
			return candidate, nil
		}
	}

	if candidate := sliceBalanced(trimmed); candidate != "" {
		return candidate, nil
	}

	return "", fmt.Errorf("llm: no JSON found in completion")
}

// sliceBalanced returns the substring from the first opening brace or bracket
// to its balanced close, ignoring braces inside JSON strings.
func sliceBalanced(s string) string {
	start := strings.IndexAny(s, "{[")
	if start < 0 {
		return ""
	}

	open := s[start]
	var close byte = '}'
	if open == '[' {
		close = ']'
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		ch := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}

		switch ch {
		case '"':
			inString = true
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}

	return ""
}

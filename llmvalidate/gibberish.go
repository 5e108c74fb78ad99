package llmvalidate

import (
	"strings"
	"unicode"
)

// Keyboard rows used to spot mashing: a token whose characters all live in
// one row and never alternate direction is almost never a word.
var keyboardRows = []string{
	"qwertyuiop",
	"asdfghjkl",
	"zxcvbnm",
}

// isGibberishToken applies word-level heuristics: keyboard mashing, a single
// character repeated 5+ times, and vowel-less tokens longer than 5 runes.
// Tokens with digits or punctuation are left alone since quantities and
// times ("7.5h", "10:30") are legitimate in wellness notes.
func isGibberishToken(token string) bool {
	runes := []rune(strings.ToLower(token))
	if len(runes) == 0 {
		return false
	}

	for _, r := range runes {
		if !unicode.IsLetter(r) {
			return false
		}
	}

	if repeatedRun(runes) >= 5 {
		return true
	}

	if len(runes) > 5 && !containsVowel(runes) {
		return true
	}

	if len(runes) >= 4 && isKeyboardMash(runes) {
		return true
	}

	return false
}

func repeatedRun(runes []rune) int {
	longest, run := 1, 1
	for i := 1; i < len(runes); i++ {
		if runes[i] == runes[i-1] {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 1
		}
	}
	return longest
}

func containsVowel(runes []rune) bool {
	for _, r := range runes {
		switch r {
		case 'a', 'e', 'i', 'o', 'u', 'y':
			return true
		}
	}
	return false
}

// isKeyboardMash reports whether all runes sit on a single keyboard row and
// walk it in one direction, the signature of dragging a finger across the
// keyboard ("asdf", "qwerty"). Real words that live on one row ("were")
// change direction and are kept.
func isKeyboardMash(runes []rune) bool {
	for _, row := range keyboardRows {
		if isRowWalk(runes, row) {
			return true
		}
	}
	return false
}

func isRowWalk(runes []rune, row string) bool {
	prev := -1
	direction := 0
	for _, r := range runes {
		idx := strings.IndexRune(row, r)
		if idx < 0 {
			return false
		}
		if prev >= 0 {
			diff := idx - prev
			if diff == 0 || diff > 2 || diff < -2 {
				return false
			}
			step := 1
			if diff < 0 {
				step = -1
			}
			if direction == 0 {
				direction = step
			} else if direction != step {
				return false
			}
		}
		prev = idx
	}
	return true
}

// cleanText drops gibberish tokens from free text, keeping the rest intact.
// The whole field is never rejected; a note that is all mash comes back
// empty.
func cleanText(text string) string {
	if text == "" {
		return ""
	}

	fields := strings.Fields(text)
	kept := fields[:0]
	for _, f := range fields {
		if !isGibberishToken(strings.Trim(f, ".,;:!?\"'")) {
			kept = append(kept, f)
		}
	}
	return strings.Join(kept, " ")
}

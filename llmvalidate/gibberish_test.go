package llmvalidate

import "testing"

func TestIsGibberishToken(t *testing.T) {
	gibberish := []string{
		"asdf",     // keyboard row walk
		"asdfg",    // longer walk
		"qwerty",   // top row walk
		"zxcvb",    // bottom row walk
		"aaaaa",    // single char repeated 5 times
		"bbbbbbbb", // longer repeat
		"bcdfgh",   // vowel-less, length > 5
	}
	for _, tok := range gibberish {
		if !isGibberishToken(tok) {
			t.Errorf("expected %q to be gibberish", tok)
		}
	}

	words := []string{
		"legitimate",
		"note",
		"were",   // one keyboard row, but direction changes
		"sleep",  // double letter, short run
		"hmm",    // vowel-less but short
		"xkcdq",  // vowel-less but length == 5
		"7.5h",   // contains non-letters, left alone
		"10:30",  // ditto
		"coffee", // double letter
	}
	for _, tok := range words {
		if isGibberishToken(tok) {
			t.Errorf("expected %q to pass", tok)
		}
	}
}

func TestCleanText(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"asdf asdf legitimate note", "legitimate note"},
		{"slept well, aaaaaah long day", "slept well, long day"},
		{"", ""},
		{"asdf qwerty", ""},
		{"ran 5k in 28:30 today", "ran 5k in 28:30 today"},
	}
	for _, tc := range cases {
		if got := cleanText(tc.in); got != tc.want {
			t.Errorf("cleanText(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

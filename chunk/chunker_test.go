package chunk

import (
	"strings"
	"testing"

	"github.com/hearthware/wellness-core/document"
)

func TestSplit_EmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\n\t "} {
		if got := Split(input, document.TypeHealthLog); got != nil {
			t.Errorf("Split(%q) = %v, want nil", input, got)
		}
	}
}

func TestSplit_ShortTextSingleChunk(t *testing.T) {
	text := "Health log for 2026-08-30. Mood: good. Sleep: 7.5 hours."

	chunks := Split(text, document.TypeHealthLog)
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	if chunks[0] != text {
		t.Errorf("short text must pass through unchanged, got %q", chunks[0])
	}
}

func TestSplit_TrimsWhitespace(t *testing.T) {
	chunks := Split("  Pantry item: Rolled oats.  \n", document.TypePantryItem)
	if len(chunks) != 1 || chunks[0] != "Pantry item: Rolled oats." {
		t.Errorf("unexpected chunks: %v", chunks)
	}
}

func TestSplit_Deterministic(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 200; i++ {
		b.WriteString("Step one is to prepare the base thoroughly before anything else happens. ")
	}
	text := b.String()

	first := Split(text, document.TypeRecipe)
	second := Split(text, document.TypeRecipe)

	if len(first) < 2 {
		t.Fatalf("expected multiple chunks for long text, got %d", len(first))
	}
	if len(first) != len(second) {
		t.Fatalf("chunk count not deterministic: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("chunk %d differs between runs", i)
		}
	}
}

func TestSplit_RespectsBudget(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 300; i++ {
		b.WriteString("A reasonably sized sentence that contributes to a very long instruction text. ")
	}

	for _, c := range Split(b.String(), document.TypeRecipe) {
		if n := len([]rune(c)); n > maxLen {
			t.Errorf("chunk exceeds budget: %d > %d", n, maxLen)
		}
		if strings.TrimSpace(c) == "" {
			t.Error("produced an empty chunk")
		}
	}
}

func TestSplit_SentenceBoundariesPreferred(t *testing.T) {
	// Two sentences that together exceed the budget must split at the
	// sentence boundary, not mid-sentence.
	first := strings.Repeat("a", maxLen-10) + "."
	second := "Short tail sentence."
	chunks := Split(first+" "+second, document.TypeGoal)

	if len(chunks) != 2 {
		t.Fatalf("expected 2 chunks, got %d", len(chunks))
	}
	if chunks[0] != first {
		t.Error("first chunk should end at the sentence boundary")
	}
	if chunks[1] != second {
		t.Errorf("unexpected second chunk: %q", chunks[1])
	}
}

func TestSplit_HardCutsOversizedSentence(t *testing.T) {
	text := strings.Repeat("x", maxLen*2+100)

	chunks := Split(text, document.TypeHealthLog)
	if len(chunks) != 3 {
		t.Fatalf("expected 3 chunks, got %d", len(chunks))
	}
	if len([]rune(chunks[0])) != maxLen || len([]rune(chunks[1])) != maxLen {
		t.Error("hard cut should fill the budget exactly")
	}
	if len([]rune(chunks[2])) != 100 {
		t.Errorf("unexpected tail length %d", len([]rune(chunks[2])))
	}
}

func TestSplit_ParagraphsSplitFirst(t *testing.T) {
	para := strings.Repeat("b", maxLen-5)
	text := para + "\n\n" + para

	chunks := Split(text, document.TypeRecipe)
	if len(chunks) != 2 {
		t.Fatalf("expected 2 chunks, got %d", len(chunks))
	}
	for i, c := range chunks {
		if c != para {
			t.Errorf("chunk %d should equal its paragraph", i)
		}
	}
}

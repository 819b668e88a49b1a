package text

import "testing"

func TestClean_LowercasesAndFilters(t *testing.T) {
	in := "Hello, World! It's 2024 (really)."
	got := Clean(in)
	want := "hello world! its 2024 really."
	if got != want {
		t.Errorf("Clean(%q) = %q, want %q", in, got, want)
	}
}

func TestClean_Idempotent(t *testing.T) {
	inputs := []string{
		"AI has revolutionized various industries.",
		"Mixed CASE with #symbols & [brackets]!",
		"",
		"already clean text with numbers 42.",
	}

	for _, in := range inputs {
		once := Clean(in)
		twice := Clean(once)
		if once != twice {
			t.Errorf("Clean not idempotent for %q: once=%q twice=%q", in, once, twice)
		}
	}
}

func TestClean_AlreadyCleanInputUnchanged(t *testing.T) {
	// Lowercase alphanumeric + sentence punctuation passes through untouched
	in := "ai has revolutionized various industries."
	if got := Clean(in); got != in {
		t.Errorf("Clean(%q) = %q, want unchanged", in, got)
	}
}

func TestSplitSentences(t *testing.T) {
	text := "First sentence here. Second one! Third one? Trailing fragment"
	got := SplitSentences(text)
	if len(got) != 4 {
		t.Fatalf("Expected 4 sentences, got %d: %v", len(got), got)
	}
	if got[0] != "First sentence here." {
		t.Errorf("Unexpected first sentence: %q", got[0])
	}
	if got[3] != "Trailing fragment" {
		t.Errorf("Expected trailing fragment kept, got %q", got[3])
	}
}

func TestSplitSentences_NoSplitInsideNumbers(t *testing.T) {
	text := "The value rose to 3.5 percent. That was unexpected."
	got := SplitSentences(text)
	if len(got) != 2 {
		t.Errorf("Expected 2 sentences, got %d: %v", len(got), got)
	}
}

func TestTokenize(t *testing.T) {
	got := Tokenize("The Quick, brown fox. Jumped!")
	want := []string{"the", "quick", "brown", "fox", "jumped"}
	if len(got) != len(want) {
		t.Fatalf("Tokenize returned %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Token %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestWordCount(t *testing.T) {
	if got := WordCount("one two  three\nfour"); got != 4 {
		t.Errorf("WordCount = %d, want 4", got)
	}
	if got := WordCount("   "); got != 0 {
		t.Errorf("WordCount of blank = %d, want 0", got)
	}
}

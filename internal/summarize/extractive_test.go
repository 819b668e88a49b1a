package summarize

import (
	"errors"
	"strings"
	"testing"
)

const longText = `Artificial intelligence has transformed modern software engineering. ` +
	`Machine learning models now power search engines and recommendation systems. ` +
	`Neural networks learn patterns from enormous training datasets. ` +
	`Deep learning has enabled breakthroughs in image recognition and language understanding. ` +
	`Researchers continue to improve model efficiency and accuracy. ` +
	`Training large models requires significant computational resources. ` +
	`Language models generate fluent text across many domains. ` +
	`The field moves quickly and new architectures appear every year. ` +
	`Practical deployments demand careful evaluation and monitoring. ` +
	`Summarization systems condense long documents into short digests.`

func TestExtractive_Summarize(t *testing.T) {
	s := NewExtractive(0.3, 3)

	summary, err := s.Summarize(longText)
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	if summary == "" {
		t.Fatal("Expected non-empty summary")
	}
	if len(summary) >= len(longText) {
		t.Errorf("Summary not shorter than input: %d >= %d", len(summary), len(longText))
	}

	// 10 sentences at ratio 0.3 keeps ceil(3) = 3 sentences
	kept := strings.Count(summary, ".")
	if kept != 3 {
		t.Errorf("Expected 3 sentences kept, got %d (%q)", kept, summary)
	}
}

func TestExtractive_Summarize_PreservesSourceOrder(t *testing.T) {
	s := NewExtractive(1.0, 3)

	summary, err := s.Summarize(longText)
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	// At ratio 1.0 all sentences are kept in original order
	if !strings.HasPrefix(summary, "Artificial intelligence") {
		t.Errorf("Expected summary to start with first sentence, got %q", summary[:40])
	}
	if !strings.HasSuffix(summary, "short digests.") {
		t.Errorf("Expected summary to end with last sentence")
	}
}

func TestExtractive_Summarize_TooShort(t *testing.T) {
	s := NewExtractive(0.3, 3)

	_, err := s.Summarize("AI has revolutionized various industries.")
	if !errors.Is(err, ErrTooFewSentences) {
		t.Errorf("Expected ErrTooFewSentences, got %v", err)
	}
}

func TestExtractive_WithFallback_ShortInput(t *testing.T) {
	s := NewExtractive(0.3, 3)

	in := "AI has revolutionized various industries."
	got := s.WithFallback(in, 500)
	// Shorter than the summarizable threshold: falls back to truncation,
	// and the input is shorter than 500 chars so it comes back whole
	if got != in {
		t.Errorf("WithFallback = %q, want %q", got, in)
	}
}

func TestExtractive_WithFallback_TruncatesLongUnsplittableInput(t *testing.T) {
	s := NewExtractive(0.3, 3)

	// One giant sentence: ranking refuses, truncation kicks in
	in := strings.Repeat("word ", 200) + "end"
	got := s.WithFallback(in, 500)
	if got == "" {
		t.Fatal("Expected non-empty fallback")
	}
	if len(got) != 500 {
		t.Errorf("Expected 500-char truncation, got %d chars", len(got))
	}
}

func TestExtractive_WithFallback_UsesRankingWhenPossible(t *testing.T) {
	s := NewExtractive(0.3, 3)

	ranked, err := s.Summarize(longText)
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	if got := s.WithFallback(longText, 500); got != ranked {
		t.Errorf("WithFallback = %q, want the ranked summary %q", got, ranked)
	}
}

func TestExtractive_WithFallback_TruncatesOnlyOnRefusal(t *testing.T) {
	s := NewExtractive(0.3, 3)

	// The refusal sentinel is the one condition that triggers truncation
	in := strings.Repeat("word ", 200) + "end"
	if _, err := s.Summarize(in); !errors.Is(err, ErrTooFewSentences) {
		t.Fatalf("Expected ErrTooFewSentences, got %v", err)
	}
	if got := s.WithFallback(in, 500); len(got) != 500 {
		t.Errorf("Expected 500-char truncation on refusal, got %d chars", len(got))
	}
}

func TestExtractive_WithFallback_NeverEmptyForNonEmptyInput(t *testing.T) {
	s := NewExtractive(0.3, 3)

	for _, in := range []string{"x", "short one.", longText, "!!! ???"} {
		if got := s.WithFallback(in, 500); got == "" {
			t.Errorf("WithFallback returned empty for %q", in)
		}
	}
}

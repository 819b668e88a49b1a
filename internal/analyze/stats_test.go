package analyze

import (
	"errors"
	"math"
	"testing"
)

func TestStats_EmptySummaryIsFullCompression(t *testing.T) {
	s, err := Stats("one two three four", "")
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if s.Compression != 100 {
		t.Errorf("Expected compression 100 for empty summary, got %v", s.Compression)
	}
}

func TestStats_IdenticalWordCountIsZeroCompression(t *testing.T) {
	s, err := Stats("ai has revolutionized various industries.", "ai has revolutionized various industries.")
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if s.Compression != 0 {
		t.Errorf("Expected compression 0, got %v", s.Compression)
	}
}

func TestStats_NegativeCompressionAllowed(t *testing.T) {
	s, err := Stats("short text", "this summary is somehow longer than the original")
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if s.Compression >= 0 {
		t.Errorf("Expected negative compression, got %v", s.Compression)
	}
}

func TestStats_EmptyOriginal(t *testing.T) {
	_, err := Stats("", "anything")
	if !errors.Is(err, ErrEmptyDocument) {
		t.Errorf("Expected ErrEmptyDocument, got %v", err)
	}

	_, err = Stats("   \n\t ", "anything")
	if !errors.Is(err, ErrEmptyDocument) {
		t.Errorf("Expected ErrEmptyDocument for whitespace-only input, got %v", err)
	}
}

func TestStats_ReadingTimes(t *testing.T) {
	s, err := Stats("word word word word", "word word")
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if math.Abs(s.OriginalMinutes-4.0/200) > 1e-9 {
		t.Errorf("Unexpected original reading time: %v", s.OriginalMinutes)
	}
	if math.Abs(s.SummaryMinutes-2.0/200) > 1e-9 {
		t.Errorf("Unexpected summary reading time: %v", s.SummaryMinutes)
	}
	if s.OriginalWords != 4 || s.SummaryWords != 2 {
		t.Errorf("Unexpected word counts: %d/%d", s.OriginalWords, s.SummaryWords)
	}
}

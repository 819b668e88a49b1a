package summarize

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/ovasilenko/textdigest/internal/text"
)

// ErrTooFewSentences is returned when the input does not contain enough
// sentences for ranking to be meaningful. Callers that need a summary
// regardless should use WithFallback.
var ErrTooFewSentences = errors.New("too few sentences for extractive summarization")

// Extractive is a frequency-ranking sentence summarizer: sentences are
// scored by the normalized frequencies of their non-stopword tokens and
// the top fraction is kept in source order.
type Extractive struct {
	ratio        float64
	minSentences int
}

// NewExtractive creates an extractive summarizer. ratio is the fraction of
// sentences to keep (0 < ratio <= 1); minSentences is the threshold below
// which Summarize refuses with ErrTooFewSentences.
func NewExtractive(ratio float64, minSentences int) *Extractive {
	if ratio <= 0 || ratio > 1 {
		ratio = 0.3
	}
	if minSentences <= 0 {
		minSentences = 3
	}
	return &Extractive{ratio: ratio, minSentences: minSentences}
}

// Summarize produces an extractive summary of the input text.
func (e *Extractive) Summarize(input string) (string, error) {
	sentences := text.SplitSentences(input)
	if len(sentences) < e.minSentences {
		return "", fmt.Errorf("%w: have %d, need %d", ErrTooFewSentences, len(sentences), e.minSentences)
	}

	freq := wordFrequencies(input)
	if len(freq) == 0 {
		return "", fmt.Errorf("%w: no scorable words", ErrTooFewSentences)
	}

	type ranked struct {
		index int
		score float64
	}

	scored := make([]ranked, 0, len(sentences))
	for i, sentence := range sentences {
		tokens := text.Tokenize(sentence)
		if len(tokens) == 0 {
			continue
		}
		var sum float64
		for _, tok := range tokens {
			sum += freq[tok]
		}
		// Normalize by length so long sentences do not dominate
		scored = append(scored, ranked{index: i, score: sum / float64(len(tokens))})
	}

	keep := int(math.Ceil(e.ratio * float64(len(sentences))))
	if keep < 1 {
		keep = 1
	}
	if keep > len(scored) {
		keep = len(scored)
	}

	// Pick the top-scoring sentences, then restore source order
	sort.Slice(scored, func(a, b int) bool { return scored[a].score > scored[b].score })
	top := scored[:keep]
	sort.Slice(top, func(a, b int) bool { return top[a].index < top[b].index })

	parts := make([]string, 0, len(top))
	for _, r := range top {
		parts = append(parts, sentences[r.index])
	}

	summary := strings.TrimSpace(strings.Join(parts, " "))
	if summary == "" {
		return "", fmt.Errorf("%w: ranking produced empty summary", ErrTooFewSentences)
	}
	return summary, nil
}

// WithFallback summarizes the input, falling back to plain truncation at
// fallbackChars when ranking is not possible. It never fails and never
// returns an empty string for non-empty input.
func (e *Extractive) WithFallback(input string, fallbackChars int) string {
	summary, err := e.Summarize(input)
	if err == nil && summary != "" {
		return summary
	}

	// Truncation is reserved for the summarizer's own refusal; any other
	// failure mode must not silently widen the fallback.
	if err != nil && !errors.Is(err, ErrTooFewSentences) {
		return input
	}

	if fallbackChars <= 0 {
		fallbackChars = 500
	}
	return truncate(input, fallbackChars)
}

// truncate returns the first n bytes of s without splitting a multi-byte
// rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := s[:n]
	for len(cut) > 0 && !utf8.ValidString(cut) {
		cut = cut[:len(cut)-1]
	}
	return cut
}

// wordFrequencies builds a max-normalized frequency table of non-stopword
// tokens.
func wordFrequencies(input string) map[string]float64 {
	counts := make(map[string]int)
	for _, tok := range text.Tokenize(input) {
		if text.IsStopword(tok) {
			continue
		}
		counts[tok]++
	}

	max := 0
	for _, c := range counts {
		if c > max {
			max = c
		}
	}
	if max == 0 {
		return nil
	}

	freq := make(map[string]float64, len(counts))
	for w, c := range counts {
		freq[w] = float64(c) / float64(max)
	}
	return freq
}

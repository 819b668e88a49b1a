package score

import (
	"strings"
	"unicode"

	"github.com/ovasilenko/textdigest/internal/model"
)

// ExactMatch reports whether the predicted answer equals the reference
// after normalization, as a 0-or-100 score.
func ExactMatch(predicted, reference string) float64 {
	if normalizeAnswer(predicted) == normalizeAnswer(reference) {
		return 100
	}
	return 0
}

// AnswerF1 computes the token-overlap F1 between predicted and reference
// answers after normalization, scaled to 0-100.
func AnswerF1(predicted, reference string) float64 {
	predTokens := strings.Fields(normalizeAnswer(predicted))
	refTokens := strings.Fields(normalizeAnswer(reference))

	if len(predTokens) == 0 || len(refTokens) == 0 {
		// Both empty counts as a match, either empty as a miss
		if len(predTokens) == len(refTokens) {
			return 100
		}
		return 0
	}

	refCounts := make(map[string]int, len(refTokens))
	for _, tok := range refTokens {
		refCounts[tok]++
	}

	common := 0
	for _, tok := range predTokens {
		if refCounts[tok] > 0 {
			refCounts[tok]--
			common++
		}
	}
	if common == 0 {
		return 0
	}

	precision := float64(common) / float64(len(predTokens))
	recall := float64(common) / float64(len(refTokens))
	return fMeasure(precision, recall) * 100
}

// Aggregate averages per-sample exact match and F1 across the evaluated
// samples. Each sample is compared against its single reference answer.
func Aggregate(samples []model.SampleResult) (exactMatch, f1 float64) {
	if len(samples) == 0 {
		return 0, 0
	}
	for _, s := range samples {
		exactMatch += ExactMatch(s.Predicted, s.Reference)
		f1 += AnswerF1(s.Predicted, s.Reference)
	}
	n := float64(len(samples))
	return exactMatch / n, f1 / n
}

// normalizeAnswer applies the standard QA benchmark normalization:
// lowercase, strip punctuation, drop English articles, collapse whitespace.
func normalizeAnswer(s string) string {
	s = strings.ToLower(s)
	s = strings.Map(func(r rune) rune {
		if unicode.IsPunct(r) {
			return -1
		}
		return r
	}, s)

	fields := strings.Fields(s)
	kept := fields[:0]
	for _, f := range fields {
		if f == "a" || f == "an" || f == "the" {
			continue
		}
		kept = append(kept, f)
	}
	return strings.Join(kept, " ")
}

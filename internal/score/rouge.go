package score

import (
	"strings"

	"github.com/kljensen/snowball"

	"github.com/ovasilenko/textdigest/internal/model"
	"github.com/ovasilenko/textdigest/internal/text"
)

// Rouge computes ROUGE-style overlap F-measures between a reference text
// and a candidate summary over stemmed lowercase tokens. Deterministic for
// fixed inputs.
type Rouge struct{}

// NewRouge creates a new ROUGE scorer
func NewRouge() *Rouge {
	return &Rouge{}
}

// Score computes rouge1, rouge2 and rougeL F-measures for the candidate
// against the reference.
func (r *Rouge) Score(reference, candidate string) model.ScoreSet {
	ref := stemTokens(reference)
	cand := stemTokens(candidate)

	return model.ScoreSet{
		"rouge1": ngramF(ref, cand, 1),
		"rouge2": ngramF(ref, cand, 2),
		"rougeL": lcsF(ref, cand),
	}
}

// stemTokens tokenizes and stems the text. Tokens the stemmer rejects are
// kept as-is.
func stemTokens(s string) []string {
	tokens := text.Tokenize(s)
	stemmed := make([]string, len(tokens))
	for i, tok := range tokens {
		stem, err := snowball.Stem(tok, "english", true)
		if err != nil || stem == "" {
			stemmed[i] = tok
			continue
		}
		stemmed[i] = stem
	}
	return stemmed
}

// ngramF computes the n-gram overlap F-measure.
func ngramF(ref, cand []string, n int) float64 {
	refGrams := ngramCounts(ref, n)
	candGrams := ngramCounts(cand, n)

	refTotal := 0
	for _, c := range refGrams {
		refTotal += c
	}
	candTotal := 0
	for _, c := range candGrams {
		candTotal += c
	}
	if refTotal == 0 || candTotal == 0 {
		return 0
	}

	overlap := 0
	for gram, c := range candGrams {
		if rc, ok := refGrams[gram]; ok {
			if rc < c {
				overlap += rc
			} else {
				overlap += c
			}
		}
	}

	precision := float64(overlap) / float64(candTotal)
	recall := float64(overlap) / float64(refTotal)
	return fMeasure(precision, recall)
}

// lcsF computes the longest-common-subsequence F-measure.
func lcsF(ref, cand []string) float64 {
	if len(ref) == 0 || len(cand) == 0 {
		return 0
	}

	lcs := lcsLength(ref, cand)
	precision := float64(lcs) / float64(len(cand))
	recall := float64(lcs) / float64(len(ref))
	return fMeasure(precision, recall)
}

// lcsLength computes LCS length with a rolling single-row DP table.
func lcsLength(a, b []string) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
			} else if prev[j] >= curr[j-1] {
				curr[j] = prev[j]
			} else {
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
		for j := range curr {
			curr[j] = 0
		}
	}
	return prev[len(b)]
}

func ngramCounts(tokens []string, n int) map[string]int {
	counts := make(map[string]int)
	for i := 0; i+n <= len(tokens); i++ {
		counts[strings.Join(tokens[i:i+n], " ")]++
	}
	return counts
}

func fMeasure(precision, recall float64) float64 {
	if precision+recall == 0 {
		return 0
	}
	return 2 * precision * recall / (precision + recall)
}

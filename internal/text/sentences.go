package text

import "strings"

// SplitSentences splits text into sentences on .!? terminators followed by
// whitespace (simple heuristic, good enough for cleaned prose). Trailing
// text without a terminator counts as a final sentence.
func SplitSentences(text string) []string {
	text = strings.ReplaceAll(text, "\n", " ")

	var sentences []string
	var current strings.Builder

	for i, r := range text {
		current.WriteRune(r)

		if r == '.' || r == '!' || r == '?' {
			// Look ahead to avoid splitting inside abbreviations or numbers
			if i+1 >= len(text) || text[i+1] == ' ' || text[i+1] == '\t' {
				if sentence := strings.TrimSpace(current.String()); sentence != "" {
					sentences = append(sentences, sentence)
				}
				current.Reset()
			}
		}
	}

	if sentence := strings.TrimSpace(current.String()); sentence != "" {
		sentences = append(sentences, sentence)
	}

	return sentences
}

// Tokenize lowercases the text and splits it into word tokens, dropping
// punctuation.
func Tokenize(text string) []string {
	cleaned := strings.Map(func(r rune) rune {
		if r == '.' || r == '!' || r == '?' || r == ',' || r == ';' || r == ':' {
			return ' '
		}
		return r
	}, Clean(text))

	return strings.Fields(cleaned)
}

// WordCount counts whitespace-separated words.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

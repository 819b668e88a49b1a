package text

// stopwords is a small English stopword list used when ranking sentences
// and building word-frequency charts.
var stopwords = map[string]bool{
	"a": true, "an": true, "the": true, "and": true, "or": true, "but": true,
	"if": true, "then": true, "else": true, "when": true, "while": true,
	"of": true, "in": true, "on": true, "at": true, "to": true, "for": true,
	"from": true, "by": true, "with": true, "about": true, "into": true,
	"over": true, "after": true, "under": true, "between": true,
	"is": true, "are": true, "was": true, "were": true, "be": true,
	"been": true, "being": true, "am": true, "do": true, "does": true,
	"did": true, "have": true, "has": true, "had": true, "will": true,
	"would": true, "can": true, "could": true, "should": true, "may": true,
	"might": true, "must": true, "shall": true,
	"i": true, "you": true, "he": true, "she": true, "it": true, "we": true,
	"they": true, "them": true, "their": true, "its": true, "his": true,
	"her": true, "our": true, "your": true, "my": true, "me": true,
	"this": true, "that": true, "these": true, "those": true, "there": true,
	"here": true, "not": true, "no": true, "nor": true, "so": true,
	"too": true, "very": true, "just": true, "than": true, "as": true,
	"such": true, "also": true, "both": true, "each": true, "more": true,
	"most": true, "other": true, "some": true, "any": true, "all": true,
	"what": true, "which": true, "who": true, "whom": true, "how": true,
	"where": true, "why": true,
}

// IsStopword reports whether the (lowercase) word is a common English
// stopword.
func IsStopword(word string) bool {
	return stopwords[word]
}

package analyze

import (
	"errors"

	"github.com/ovasilenko/textdigest/internal/model"
	"github.com/ovasilenko/textdigest/internal/text"
)

// ErrEmptyDocument is returned when the original document contains no
// words; compression is undefined in that case.
var ErrEmptyDocument = errors.New("empty original document")

// WordsPerMinute is the assumed reading speed for time estimates.
const WordsPerMinute = 200

// Stats computes word counts, compression percentage and reading times for
// a document and its summary. Compression can be negative when the summary
// is longer than the original; that is reported as-is.
func Stats(original, summary string) (*model.Stats, error) {
	originalWords := text.WordCount(original)
	if originalWords == 0 {
		return nil, ErrEmptyDocument
	}
	summaryWords := text.WordCount(summary)

	return &model.Stats{
		OriginalWords:   originalWords,
		SummaryWords:    summaryWords,
		Compression:     (1 - float64(summaryWords)/float64(originalWords)) * 100,
		OriginalMinutes: float64(originalWords) / WordsPerMinute,
		SummaryMinutes:  float64(summaryWords) / WordsPerMinute,
	}, nil
}

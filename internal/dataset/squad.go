package dataset

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ovasilenko/textdigest/internal/cache"
)

// Sample is one QA benchmark row: a question, its context paragraph and
// the reference answer. Datasets may list several acceptable answers per
// question; only the first is kept and compared, matching the original
// evaluation behavior.
type Sample struct {
	ID       string
	Question string
	Context  string
	Answer   string
}

// SquadLoader downloads and parses the SQuAD v1.1-format benchmark
// dataset, caching the raw JSON on disk between runs.
type SquadLoader struct {
	fetcher *Fetcher
	cache   cache.Cache
}

// NewSquadLoader creates a new dataset loader
func NewSquadLoader(fetcher *Fetcher, c cache.Cache) *SquadLoader {
	if c == nil {
		c = cache.Noop{}
	}
	return &SquadLoader{fetcher: fetcher, cache: c}
}

// SQuAD JSON structures

type squadFile struct {
	Data []squadArticle `json:"data"`
}

type squadArticle struct {
	Title      string           `json:"title"`
	Paragraphs []squadParagraph `json:"paragraphs"`
}

type squadParagraph struct {
	Context string     `json:"context"`
	QAs     []squadQA  `json:"qas"`
}

type squadQA struct {
	ID       string        `json:"id"`
	Question string        `json:"question"`
	Answers  []squadAnswer `json:"answers"`
}

type squadAnswer struct {
	Text        string `json:"text"`
	AnswerStart int    `json:"answer_start"`
}

// Load fetches the dataset from the URL (or the disk cache) and returns
// up to limit samples in file order. limit <= 0 returns all samples.
func (l *SquadLoader) Load(ctx context.Context, url string, limit int) ([]Sample, error) {
	raw, err := l.fetchRaw(ctx, url)
	if err != nil {
		return nil, err
	}

	samples, err := ParseSquad(raw, limit)
	if err != nil {
		return nil, fmt.Errorf("parse dataset %s: %w", url, err)
	}
	return samples, nil
}

func (l *SquadLoader) fetchRaw(ctx context.Context, url string) ([]byte, error) {
	key := cache.Key(url)
	if data, found := l.cache.Get(key); found {
		return data, nil
	}

	data, err := l.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("download dataset: %w", err)
	}

	_ = l.cache.Set(key, data, 0)
	return data, nil
}

// ParseSquad parses SQuAD-format JSON into flat samples. Questions
// without answers are skipped.
func ParseSquad(raw []byte, limit int) ([]Sample, error) {
	var file squadFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	if len(file.Data) == 0 {
		return nil, fmt.Errorf("dataset contains no articles")
	}

	var samples []Sample
	for _, article := range file.Data {
		for _, para := range article.Paragraphs {
			for _, qa := range para.QAs {
				if len(qa.Answers) == 0 {
					continue
				}
				samples = append(samples, Sample{
					ID:       qa.ID,
					Question: qa.Question,
					Context:  para.Context,
					// First reference answer only; alternates are discarded
					Answer: qa.Answers[0].Text,
				})
				if limit > 0 && len(samples) >= limit {
					return samples, nil
				}
			}
		}
	}

	if len(samples) == 0 {
		return nil, fmt.Errorf("dataset contains no answerable questions")
	}
	return samples, nil
}

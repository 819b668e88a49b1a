package dataset

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ovasilenko/textdigest/internal/model"
)

// Loader assembles the document table for the summarization pipeline from
// files, directories and URLs.
type Loader struct {
	fetcher *Fetcher
}

// NewLoader creates a document loader. fetcher may be nil when only local
// sources are used.
func NewLoader(fetcher *Fetcher) *Loader {
	return &Loader{fetcher: fetcher}
}

// Load reads each source into a Document. A source is an http(s) URL, a
// directory (all .txt files inside, non-recursive) or a single file.
func (l *Loader) Load(ctx context.Context, sources []string) ([]model.Document, error) {
	var docs []model.Document

	for _, source := range sources {
		switch {
		case strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://"):
			if l.fetcher == nil {
				return nil, fmt.Errorf("no fetcher configured for URL source %s", source)
			}
			text, err := l.fetcher.FetchText(ctx, source)
			if err != nil {
				return nil, fmt.Errorf("load %s: %w", source, err)
			}
			docs = append(docs, model.Document{Name: source, Text: text})

		default:
			info, err := os.Stat(source)
			if err != nil {
				return nil, fmt.Errorf("load %s: %w", source, err)
			}
			if info.IsDir() {
				dirDocs, err := l.loadDir(source)
				if err != nil {
					return nil, err
				}
				docs = append(docs, dirDocs...)
				continue
			}
			doc, err := loadFile(source)
			if err != nil {
				return nil, err
			}
			docs = append(docs, doc)
		}
	}

	if len(docs) == 0 {
		return nil, fmt.Errorf("no documents loaded from %d source(s)", len(sources))
	}
	return docs, nil
}

func (l *Loader) loadDir(dir string) ([]model.Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", dir, err)
	}

	var docs []model.Document
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}
		doc, err := loadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func loadFile(path string) (model.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Document{}, fmt.Errorf("read %s: %w", path, err)
	}
	return model.Document{
		Name: path,
		Text: strings.TrimSpace(string(data)),
	}, nil
}

// DemoDocuments returns the built-in sample table so the summarization
// pipeline can run without any input files.
func DemoDocuments() []model.Document {
	return []model.Document{
		{
			Name: "demo/ai",
			Text: "Artificial intelligence has transformed how organizations process information. " +
				"Machine learning models analyze patterns in large datasets and make predictions without explicit programming. " +
				"Natural language processing lets computers understand and generate human language with growing fluency. " +
				"Businesses apply these techniques to automate support, detect fraud and personalize recommendations. " +
				"Despite the progress, practitioners still wrestle with bias, interpretability and the cost of training large models. " +
				"Careful evaluation remains essential before deploying any model to production.",
		},
		{
			Name: "demo/climate",
			Text: "Global temperatures have risen steadily over the past century as greenhouse gas concentrations increased. " +
				"Scientists attribute most of the warming to the burning of fossil fuels for energy and transport. " +
				"Rising seas threaten coastal cities while droughts and wildfires strain agriculture and water supplies. " +
				"Governments have pledged emission cuts through international agreements, though implementation varies widely. " +
				"Renewable energy costs have fallen dramatically, making wind and solar competitive with coal in many regions. " +
				"Adaptation planning is now a routine part of infrastructure design in vulnerable areas.",
		},
		{
			// Shorter than the summarizable threshold: exercises the
			// truncation fallback end to end
			Name: "demo/short",
			Text: "AI has revolutionized various industries.",
		},
	}
}

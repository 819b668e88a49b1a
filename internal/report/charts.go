package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/ovasilenko/textdigest/internal/model"
	"github.com/ovasilenko/textdigest/internal/text"
)

// topWords caps the word-frequency bar chart; the word cloud shows more
const (
	topWords      = 20
	wordCloudSize = 100
)

// RenderSummaryCharts renders the summarization charts into dir:
// word_frequency.html (frequency bar chart + word cloud over all
// documents) and compression.html (per-document compression bar chart).
func RenderSummaryCharts(docs []model.Document, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create chart dir: %w", err)
	}

	if err := renderWordFrequency(docs, filepath.Join(dir, "word_frequency.html")); err != nil {
		return err
	}
	return renderCompression(docs, filepath.Join(dir, "compression.html"))
}

func renderWordFrequency(docs []model.Document, path string) error {
	counts := make(map[string]int)
	for _, doc := range docs {
		for _, tok := range text.Tokenize(doc.Text) {
			if text.IsStopword(tok) {
				continue
			}
			counts[tok]++
		}
	}

	type wordCount struct {
		word  string
		count int
	}
	sorted := make([]wordCount, 0, len(counts))
	for w, c := range counts {
		sorted = append(sorted, wordCount{w, c})
	}
	sort.Slice(sorted, func(a, b int) bool {
		if sorted[a].count != sorted[b].count {
			return sorted[a].count > sorted[b].count
		}
		return sorted[a].word < sorted[b].word
	})

	barN := topWords
	if barN > len(sorted) {
		barN = len(sorted)
	}
	labels := make([]string, 0, barN)
	barData := make([]opts.BarData, 0, barN)
	for _, wc := range sorted[:barN] {
		labels = append(labels, wc.word)
		barData = append(barData, opts.BarData{Value: wc.count})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Most frequent words"}),
	)
	bar.SetXAxis(labels).AddSeries("occurrences", barData)

	cloudN := wordCloudSize
	if cloudN > len(sorted) {
		cloudN = len(sorted)
	}
	cloudData := make([]opts.WordCloudData, 0, cloudN)
	for _, wc := range sorted[:cloudN] {
		cloudData = append(cloudData, opts.WordCloudData{Name: wc.word, Value: wc.count})
	}

	cloud := charts.NewWordCloud()
	cloud.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Word cloud"}),
	)
	// go-echarts exports this option setter as "WorldCloud"
	cloud.AddSeries("words", cloudData).SetSeriesOptions(
		charts.WithWorldCloudChartOpts(opts.WordCloudChart{
			SizeRange: []float32{14, 80},
		}),
	)

	page := components.NewPage()
	page.AddCharts(bar, cloud)

	return renderToFile(path, page.Render)
}

func renderCompression(docs []model.Document, path string) error {
	labels := make([]string, 0, len(docs))
	data := make([]opts.BarData, 0, len(docs))
	for _, doc := range docs {
		if doc.Stats == nil {
			continue
		}
		labels = append(labels, doc.Name)
		data = append(data, opts.BarData{Value: doc.Stats.Compression})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Compression per document (%)"}),
	)
	bar.SetXAxis(labels).AddSeries("compression", data)

	return renderToFile(path, bar.Render)
}

// RenderConfidenceChart renders the per-sample QA confidence bar chart.
func RenderConfidenceChart(samples []model.SampleResult, path string) error {
	labels := make([]string, 0, len(samples))
	data := make([]opts.BarData, 0, len(samples))
	for i, s := range samples {
		labels = append(labels, fmt.Sprintf("#%d", i+1))
		data = append(data, opts.BarData{Value: s.Confidence})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Answer confidence per sample (%)"}),
	)
	bar.SetXAxis(labels).AddSeries("confidence", data)

	return renderToFile(path, bar.Render)
}

func renderToFile(path string, render func(w io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := render(f); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}

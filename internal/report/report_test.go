package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/ovasilenko/textdigest/internal/model"
)

func sampleDocs() []model.Document {
	return []model.Document{
		{
			Name:        "doc-1",
			Text:        "machine learning systems summarize long documents. they do it well. results vary.",
			Extractive:  "machine learning systems summarize long documents.",
			Abstractive: "systems summarize documents",
			Scores:      model.ScoreSet{"rouge1": 0.8, "rouge2": 0.6, "rougeL": 0.75},
			Stats: &model.Stats{
				OriginalWords:   13,
				SummaryWords:    7,
				Compression:     46.2,
				OriginalMinutes: 0.065,
				SummaryMinutes:  0.035,
			},
		},
		{
			Name:       "doc-2",
			Text:       "ai has revolutionized various industries.",
			Extractive: "ai has revolutionized various industries.",
			Scores:     model.ScoreSet{"rouge1": 1, "rouge2": 1, "rougeL": 1},
			Stats:      &model.Stats{OriginalWords: 5, SummaryWords: 5, Compression: 0},
		},
	}
}

func TestRenderTable(t *testing.T) {
	var buf bytes.Buffer
	RenderTable(&buf, sampleDocs())

	out := buf.String()
	if !strings.Contains(out, "doc-1") || !strings.Contains(out, "doc-2") {
		t.Errorf("Expected document names in table:\n%s", out)
	}
	if !strings.Contains(out, "46.2%") {
		t.Errorf("Expected compression in table:\n%s", out)
	}
}

func TestRenderEvalReport(t *testing.T) {
	var buf bytes.Buffer
	RenderEvalReport(&buf, &model.EvalReport{
		Samples: []model.SampleResult{
			{Question: "Who won?", Reference: "Denver Broncos", Predicted: "Denver Broncos", Confidence: 97.3},
		},
		ExactMatch: 100,
		F1:         100,
	})

	out := buf.String()
	if !strings.Contains(out, "97.3%") {
		t.Errorf("Expected confidence in output:\n%s", out)
	}
	if !strings.Contains(out, "Exact Match: 100.00") {
		t.Errorf("Expected aggregate EM in output:\n%s", out)
	}
}

func TestWriteWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summaries.xlsx")
	if err := WriteWorkbook(sampleDocs(), path); err != nil {
		t.Fatalf("WriteWorkbook failed: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("Open written workbook: %v", err)
	}
	defer func() { _ = f.Close() }()

	got, err := f.GetCellValue("Summaries", "A2")
	if err != nil {
		t.Fatalf("GetCellValue failed: %v", err)
	}
	if got != "doc-1" {
		t.Errorf("Expected doc-1 in A2, got %q", got)
	}
}

func TestRenderSummaryCharts(t *testing.T) {
	dir := t.TempDir()
	if err := RenderSummaryCharts(sampleDocs(), dir); err != nil {
		t.Fatalf("RenderSummaryCharts failed: %v", err)
	}

	for _, name := range []string{"word_frequency.html", "compression.html"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("Expected chart file %s: %v", name, err)
		}
	}
}

func TestRenderConfidenceChart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "confidence.html")
	samples := []model.SampleResult{
		{Question: "q", Confidence: 80},
		{Question: "q2", Confidence: 55.5},
	}
	if err := RenderConfidenceChart(samples, path); err != nil {
		t.Fatalf("RenderConfidenceChart failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("Expected chart file: %v", err)
	}
}

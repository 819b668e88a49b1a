package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/ovasilenko/textdigest/internal/model"
)

// RenderTable prints the per-document result table to w, one row per
// document with truncated text columns.
func RenderTable(w io.Writer, docs []model.Document) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	defer func() { _ = tw.Flush() }()

	fmt.Fprintln(tw, "DOCUMENT\tORIGINAL\tEXTRACTIVE\tABSTRACTIVE\tROUGE-1\tROUGE-L\tCOMPRESSION")

	for _, doc := range docs {
		compression := "n/a"
		if doc.Stats != nil {
			compression = fmt.Sprintf("%.1f%%", doc.Stats.Compression)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%.3f\t%.3f\t%s\n",
			doc.Name,
			ellipsis(doc.Text, 40),
			ellipsis(doc.Extractive, 40),
			ellipsis(doc.Abstractive, 40),
			doc.Scores["rouge1"],
			doc.Scores["rougeL"],
			compression,
		)
	}
}

// RenderStats prints the full statistics block for each document.
func RenderStats(w io.Writer, docs []model.Document) {
	for _, doc := range docs {
		if doc.Stats == nil {
			continue
		}
		fmt.Fprintf(w, "%s: %d words -> %d words (%.1f%% compression), reading time %.1f min -> %.1f min\n",
			doc.Name,
			doc.Stats.OriginalWords,
			doc.Stats.SummaryWords,
			doc.Stats.Compression,
			doc.Stats.OriginalMinutes,
			doc.Stats.SummaryMinutes,
		)
	}
}

// RenderEvalReport prints per-sample QA results and the aggregate metrics.
func RenderEvalReport(w io.Writer, report *model.EvalReport) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "#\tQUESTION\tREFERENCE\tPREDICTED\tCONFIDENCE")
	for i, s := range report.Samples {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%.1f%%\n",
			i+1,
			ellipsis(s.Question, 50),
			ellipsis(s.Reference, 30),
			ellipsis(s.Predicted, 30),
			s.Confidence,
		)
	}
	_ = tw.Flush()

	fmt.Fprintf(w, "\nExact Match: %.2f\n", report.ExactMatch)
	fmt.Fprintf(w, "F1:          %.2f\n", report.F1)
}

// ellipsis truncates s to max runes, appending "..." when cut
func ellipsis(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

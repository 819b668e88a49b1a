package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ovasilenko/textdigest/internal/model"
)

const summarySheet = "Summaries"

// xlsx column layout, one row per document
var xlsxHeaders = []string{
	"Document",
	"Original Text",
	"Extractive Summary",
	"Abstractive Summary",
	"ROUGE-1",
	"ROUGE-2",
	"ROUGE-L",
	"Original Words",
	"Summary Words",
	"Compression %",
	"Original Reading Min",
	"Summary Reading Min",
}

// WriteWorkbook persists the per-document results as a spreadsheet at
// path (the summaries.xlsx output).
func WriteWorkbook(docs []model.Document, path string) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	for col, header := range xlsxHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("header cell: %w", err)
		}
		if err := f.SetCellValue(summarySheet, cell, header); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}

	for i, doc := range docs {
		row := i + 2
		values := []interface{}{
			doc.Name,
			doc.Text,
			doc.Extractive,
			doc.Abstractive,
			doc.Scores["rouge1"],
			doc.Scores["rouge2"],
			doc.Scores["rougeL"],
		}
		if doc.Stats != nil {
			values = append(values,
				doc.Stats.OriginalWords,
				doc.Stats.SummaryWords,
				doc.Stats.Compression,
				doc.Stats.OriginalMinutes,
				doc.Stats.SummaryMinutes,
			)
		}

		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return fmt.Errorf("data cell: %w", err)
			}
			if err := f.SetCellValue(summarySheet, cell, value); err != nil {
				return fmt.Errorf("write row %d: %w", row, err)
			}
		}
	}

	// Wide columns for the text-bearing fields
	if err := f.SetColWidth(summarySheet, "B", "D", 60); err != nil {
		return fmt.Errorf("set column width: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

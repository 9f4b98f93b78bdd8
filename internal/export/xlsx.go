package export

import (
	"context"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// XLSXWriter implements SheetWriter by producing an Excel workbook.
type XLSXWriter struct {
	out   io.Writer
	sheet string
}

// NewXLSXWriter creates a writer emitting a workbook with one sheet to out.
func NewXLSXWriter(out io.Writer, sheet string) *XLSXWriter {
	return &XLSXWriter{out: out, sheet: sheet}
}

func (w *XLSXWriter) Write(_ context.Context, header []string, rows [][]any) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), w.sheet); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	if err := f.SetSheetRow(w.sheet, "A1", &header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("addressing row %d: %w", i+2, err)
		}
		if err := f.SetSheetRow(w.sheet, cell, &r); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}

	if err := f.SetPanes(w.sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("freezing header: %w", err)
	}

	if err := f.Write(w.out); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

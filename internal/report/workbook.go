package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// workbook is a single-sheet excelize file addressed by 1-based column/row numbers.
type workbook struct {
	*excelize.File
	sheet string
}

func newWorkbook(sheet string) (*workbook, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(defaultSheet, sheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("naming sheet %q: %w", sheet, err)
	}
	return &workbook{File: f, sheet: sheet}, nil
}

// row writes values starting at column A. A non-zero style is applied to every written cell.
func (w *workbook) row(row, style int, values ...any) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}

		if err := w.SetCellValue(w.sheet, cell, v); err != nil {
			return fmt.Errorf("writing cell %s: %w", cell, err)
		}

		if style == 0 {
			continue
		}
		if err := w.SetCellStyle(w.sheet, cell, cell, style); err != nil {
			return fmt.Errorf("styling cell %s: %w", cell, err)
		}
	}
	return nil
}

func (w *workbook) style(col, row, style int) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return w.SetCellStyle(w.sheet, cell, cell, style)
}

func (w *workbook) width(col int, width float64) error {
	name, err := excelize.ColumnNumberToName(col)
	if err != nil {
		return err
	}
	return w.SetColWidth(w.sheet, name, name, width)
}

func (w *workbook) freezeHeader() error {
	return w.SetPanes(w.sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

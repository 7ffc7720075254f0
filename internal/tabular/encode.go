package tabular

import (
	"io"

	"github.com/xuri/excelize/v2"
)

// Sheet is one sheet of a workbook to encode: a header row, data rows and
// optional per-column widths (zero keeps the default width).
type Sheet struct {
	Name   string
	Header []string
	Rows   [][]interface{}
	Widths []float64
}

// EncodeWorkbook writes the sheets as an xlsx workbook. The first sheet
// replaces the default "Sheet1".
func EncodeWorkbook(w io.Writer, sheets []Sheet) error {
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	for i, sheet := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet.Name); err != nil {
				return err
			}
		} else {
			if _, err := f.NewSheet(sheet.Name); err != nil {
				return err
			}
		}

		header := make([]interface{}, len(sheet.Header))
		for j, h := range sheet.Header {
			header[j] = h
		}
		if err := f.SetSheetRow(sheet.Name, "A1", &header); err != nil {
			return err
		}

		for j, row := range sheet.Rows {
			cell, err := excelize.CoordinatesToCellName(1, j+2)
			if err != nil {
				return err
			}
			if err := f.SetSheetRow(sheet.Name, cell, &row); err != nil {
				return err
			}
		}

		for j, width := range sheet.Widths {
			if width <= 0 {
				continue
			}
			col, err := excelize.ColumnNumberToName(j + 1)
			if err != nil {
				return err
			}
			if err := f.SetColWidth(sheet.Name, col, col, width); err != nil {
				return err
			}
		}
	}

	return f.Write(w)
}

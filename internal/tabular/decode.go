// Package tabular reads and writes the spreadsheet workbooks the freight
// service ingests and exports.
package tabular

import (
	"errors"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrEmptyWorkbook is returned when the workbook has no sheets or the
// first sheet has no header row.
var ErrEmptyWorkbook = errors.New("tabular: workbook has no data")

// NormalizeHeader lowers a header cell to the canonical column form:
// lower-case, with every run of non-alphanumeric characters collapsed to a
// single underscore. "Valor Frete " and "valor_frete" normalize equal.
func NormalizeHeader(header string) string {
	var b strings.Builder
	lastUnderscore := true // trims leading separators
	for _, r := range strings.ToLower(strings.TrimSpace(header)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastUnderscore = false
		default:
			if !lastUnderscore {
				b.WriteByte('_')
				lastUnderscore = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "_")
}

// DecodeWorkbook reads the first sheet of an xlsx workbook. The first row
// is the header; every following row becomes a map from normalized header
// to cell text, with missing trailing cells as "".
func DecodeWorkbook(r io.Reader) ([]map[string]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyWorkbook
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrEmptyWorkbook
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = NormalizeHeader(h)
	}

	records := make([]map[string]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		record := make(map[string]string, len(headers))
		for i, header := range headers {
			if header == "" {
				continue
			}
			value := ""
			if i < len(row) {
				value = strings.TrimSpace(row[i])
			}
			record[header] = value
		}
		records = append(records, record)
	}
	return records, nil
}

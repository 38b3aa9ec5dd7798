package excel

import (
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ErrInvalidWorkbook marks request-level parse failures: unreadable files,
// empty worksheets, or a header row without the expected columns.
var ErrInvalidWorkbook = errors.New("invalid workbook")

// Column labels matched exactly against the header row, case- and
// spacing-sensitive.
const (
	headerDate     = "Date"
	headerInTime   = "In-Time"
	headerOutTime  = "Out-Time"
	headerEmployee = "Employee Name"
)

// Row carries the four loose cells of one time-clock record.
type Row struct {
	Date    Cell
	InTime  Cell
	OutTime Cell
	Name    Cell
}

// ParseWorkbook reads the first worksheet of an xlsx stream into loose rows.
// Raw cell values are requested so date and time cells surface as their
// serial numbers instead of display strings.
func ParseWorkbook(r io.Reader) ([]Row, error) {
	file, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWorkbook, err)
	}
	defer func() { _ = file.Close() }()

	sheetName := file.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("%w: no worksheet found", ErrInvalidWorkbook)
	}

	rows, err := file.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWorkbook, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: worksheet is empty", ErrInvalidWorkbook)
	}

	columns := map[string]int{}
	for idx, header := range rows[0] {
		columns[header] = idx
	}
	for _, required := range []string{headerDate, headerInTime, headerOutTime, headerEmployee} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("%w: missing column %q", ErrInvalidWorkbook, required)
		}
	}

	records := make([]Row, 0, len(rows)-1)
	for _, raw := range rows[1:] {
		records = append(records, Row{
			Date:    CellFromRaw(cellAt(raw, columns[headerDate])),
			InTime:  CellFromRaw(cellAt(raw, columns[headerInTime])),
			OutTime: CellFromRaw(cellAt(raw, columns[headerOutTime])),
			Name:    CellFromRaw(cellAt(raw, columns[headerEmployee])),
		})
	}
	return records, nil
}

// Trailing empty cells are dropped by the reader, so index defensively.
func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

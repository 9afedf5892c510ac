// Package sheet reads the catalog source spreadsheet into ordered rows keyed
// by header name. Both .xlsx workbooks and .csv exports are supported.
package sheet

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrUnsupportedFormat is returned for source files that are neither .xlsx nor .csv
var ErrUnsupportedFormat = errors.New("unsupported spreadsheet format")

// Row is one data row of the sheet, keyed by column header. Cells that are
// absent or blank are not present in the map.
type Row map[string]string

// Get returns the trimmed cell value for a column, or "" when absent.
func (r Row) Get(column string) string {
	return strings.TrimSpace(r[column])
}

// ReadFile reads all data rows of the spreadsheet at path. For workbooks the
// named sheet is used, or the first sheet when sheetName is empty.
func ReadFile(path, sheetName string) ([]Row, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return readWorkbook(path, sheetName)
	case ".csv":
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open spreadsheet: %w", err)
		}
		defer file.Close()
		return ReadCSV(file)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

func readWorkbook(path, sheetName string) ([]Row, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	if sheetName == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook %s has no sheets", path)
		}
		sheetName = sheets[0]
	}

	// Raw values keep numbers unformatted ("1234567" rather than "1,234,567")
	// and dates as serial numbers.
	records, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheetName, err)
	}
	return toRows(records), nil
}

// ReadCSV reads rows from a CSV stream whose first record is the header.
func ReadCSV(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}
	return toRows(records), nil
}

// toRows maps records onto the header row. Fully blank rows are skipped and
// columns with an empty header are ignored.
func toRows(records [][]string) []Row {
	if len(records) == 0 {
		return []Row{}
	}

	header := make([]string, len(records[0]))
	for i, name := range records[0] {
		header[i] = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
	}

	rows := make([]Row, 0, len(records)-1)
	for _, record := range records[1:] {
		row := Row{}
		for i, value := range record {
			if i >= len(header) || header[i] == "" {
				continue
			}
			if strings.TrimSpace(value) == "" {
				continue
			}
			row[header[i]] = value
		}
		if len(row) == 0 {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}

package ingest

import (
	"errors"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

var ErrNoData = errors.New("ingest: workbook has no data rows")

// ReadWorkbook parses the first sheet of an XLSX upload into records keyed by
// the header row. Trailing blank headers are dropped; rows shorter than the
// header are padded with empty strings so every record carries every column.
func ReadWorkbook(r io.Reader) ([]map[string]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, ErrNoData
	}

	headers := normalizeHeaders(rows[0])
	if len(headers) == 0 {
		return nil, ErrNoData
	}

	return RecordsFromRows(headers, rows[1:]), nil
}

// RecordsFromRows maps raw cell rows onto the given headers. Rows that are
// entirely blank are skipped.
func RecordsFromRows(headers []string, rows [][]string) []map[string]string {
	records := make([]map[string]string, 0, len(rows))
	for _, row := range rows {
		if blankRow(row) {
			continue
		}
		record := make(map[string]string, len(headers))
		for i, header := range headers {
			if header == "" {
				continue
			}
			if i < len(row) {
				record[header] = strings.TrimSpace(row[i])
			} else {
				record[header] = ""
			}
		}
		records = append(records, record)
	}
	return records
}

func normalizeHeaders(raw []string) []string {
	headers := make([]string, len(raw))
	for i, h := range raw {
		headers[i] = strings.TrimSpace(h)
	}
	// Drop trailing blanks so a formatting artifact column does not survive.
	for len(headers) > 0 && headers[len(headers)-1] == "" {
		headers = headers[:len(headers)-1]
	}
	return headers
}

func blankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

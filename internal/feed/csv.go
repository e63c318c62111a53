package feed

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"
)

// ErrEmptyTable is returned when a feed body holds no usable header row.
// An empty body aborts the cycle rather than wiping previously published
// series.
var ErrEmptyTable = errors.New("feed table is empty")

// DecodeTable parses comma-separated feed text into a header and data
// rows. A single malformed row is dropped, never fatal; rows may have
// ragged widths, missing cells read as empty downstream.
func DecodeTable(text string) (header []string, rows [][]string, err error) {
	r := csv.NewReader(strings.NewReader(text))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	r.LazyQuotes = true

	for {
		record, readErr := r.Read()
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			// Malformed row: drop and keep reading.
			continue
		}
		if header == nil {
			record[0] = strings.TrimPrefix(record[0], "\uFEFF")
			header = record
			continue
		}
		rows = append(rows, record)
	}

	if header == nil {
		return nil, nil, ErrEmptyTable
	}
	return header, rows, nil
}

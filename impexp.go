package wealth

import (
	"encoding/csv"
	"fmt"
	"io"
)

// this file contains the tabular-file boundary of the import pipeline.
// The parser is deliberately lenient: bank exports are rarely clean CSV.

// ParseCSV reads a CSV-like file with a header row and returns the header
// list plus one Row per data record, keyed by header. Records shorter than
// the header leave the missing cells absent, which downstream stages treat
// like unmapped columns.
func ParseCSV(r io.Reader) (headers []string, rows []Row, err error) {
	cr := csv.NewReader(r)
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("cannot parse tabular file: %w", err)
	}
	if len(records) == 0 {
		return nil, nil, nil
	}

	headers = records[0]
	rows = make([]Row, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make(Row, len(headers))
		for i, h := range headers {
			if i < len(rec) {
				row[h] = rec[i]
			}
		}
		rows = append(rows, row)
	}
	return headers, rows, nil
}

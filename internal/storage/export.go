package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/DyadicSolutions/StateSpaceGridLib/internal/measure"
)

var ErrBadReport = errors.New("storage: malformed report table")

const labelColumn = "label"

// WriteCSV flattens a report into a table, one row per report row.
// precision < 0 writes the shortest exact representation.
func WriteCSV(w io.Writer, report measure.Report, precision int) error {
	cw := csv.NewWriter(w)

	header := append([]string{labelColumn}, measure.FieldNames...)
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, row := range report.Rows {
		record := []string{row.Label}
		for _, f := range row.Measures.Fields() {
			record = append(record, strconv.FormatFloat(f.Value, 'f', precision, 64))
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// ReadCSV parses a table written by WriteCSV.
func ReadCSV(r io.Reader) (measure.Report, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return measure.Report{}, err
	}
	if len(records) < 2 {
		return measure.Report{}, fmt.Errorf("%w: no rows", ErrBadReport)
	}

	header := records[0]
	if len(header) == 0 || header[0] != labelColumn {
		return measure.Report{}, fmt.Errorf("%w: first column must be %q", ErrBadReport, labelColumn)
	}

	var report measure.Report
	for i, record := range records[1:] {
		if len(record) != len(header) {
			return measure.Report{}, fmt.Errorf("%w: row %d has %d columns, want %d", ErrBadReport, i+1, len(record), len(header))
		}
		fields := make([]measure.Field, 0, len(header)-1)
		for j := 1; j < len(header); j++ {
			v, err := strconv.ParseFloat(record[j], 64)
			if err != nil {
				return measure.Report{}, fmt.Errorf("%w: row %d column %s: %v", ErrBadReport, i+1, header[j], err)
			}
			fields = append(fields, measure.Field{Name: header[j], Value: v})
		}
		m, err := measure.FromFields(fields)
		if err != nil {
			return measure.Report{}, fmt.Errorf("%w: %v", ErrBadReport, err)
		}
		report.Rows = append(report.Rows, measure.Row{Label: record[0], Measures: m})
	}
	return report, nil
}

func WriteJSON(w io.Writer, report measure.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

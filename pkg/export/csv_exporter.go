package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// Field is a labelled value printed outside the table body, such as the
// student a report belongs to or the marks total.
type Field struct {
	Label string
	Value string
}

// Dataset is one report: who it is about, the participation table and the
// totals that close it.
type Dataset struct {
	Subject []Field
	Headers []string
	Rows    []map[string]string
	Totals  []Field
}

// CSVExporter writes a report as a spreadsheet friendly CSV file.
type CSVExporter struct{}

// NewCSVExporter builds a CSV exporter.
func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

// Render writes the subject block as label/value records, then the table, then
// the totals as label/value records.
func (e *CSVExporter) Render(data Dataset) ([]byte, error) {
	if len(data.Headers) == 0 {
		return nil, fmt.Errorf("csv requires at least one header")
	}
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	if err := writeFields(w, data.Subject); err != nil {
		return nil, fmt.Errorf("write csv subject: %w", err)
	}
	if err := w.Write(data.Headers); err != nil {
		return nil, fmt.Errorf("write csv headers: %w", err)
	}
	for _, row := range data.Rows {
		record := make([]string, len(data.Headers))
		for i, header := range data.Headers {
			record[i] = row[header]
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	if err := writeFields(w, data.Totals); err != nil {
		return nil, fmt.Errorf("write csv totals: %w", err)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

func writeFields(w *csv.Writer, fields []Field) error {
	for _, f := range fields {
		if err := w.Write([]string{f.Label, f.Value}); err != nil {
			return err
		}
	}
	return nil
}

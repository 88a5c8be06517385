package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

const pageWidth = 190.0

// PDFExporter renders datasets into a single-table PDF report.
type PDFExporter struct{}

// NewPDFExporter constructs a PDF exporter.
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{}
}

// Render creates a PDF document with a title, the subject block, the table and
// the totals.
// Column widths follow the longest value of each column.
func (e *PDFExporter) Render(data Dataset, title string) ([]byte, error) {
	if len(data.Headers) == 0 {
		return nil, fmt.Errorf("pdf requires at least one header")
	}
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 15, 10)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	if title != "" {
		pdf.SetFont("Arial", "B", 14)
		pdf.CellFormat(0, 10, tr(title), "", 1, "C", false, 0, "")
	}
	pdf.SetFont("Arial", "", 10)
	for _, f := range data.Subject {
		pdf.CellFormat(0, 6, tr(f.Label+": "+f.Value), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	widths := columnWidths(data)
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for i, header := range data.Headers {
		pdf.CellFormat(widths[i], 8, tr(header), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, row := range data.Rows {
		for i, header := range data.Headers {
			pdf.CellFormat(widths[i], 7, tr(row[header]), "1", 0, "", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if len(data.Totals) > 0 {
		pdf.Ln(2)
		pdf.SetFont("Arial", "B", 10)
		for _, f := range data.Totals {
			pdf.CellFormat(0, 6, tr(f.Label+": "+f.Value), "", 1, "R", false, 0, "")
		}
	}

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func columnWidths(data Dataset) []float64 {
	weights := make([]float64, len(data.Headers))
	total := 0.0
	for i, header := range data.Headers {
		longest := len(header)
		for _, row := range data.Rows {
			if n := len(row[header]); n > longest {
				longest = n
			}
		}
		if longest < 4 {
			longest = 4
		}
		weights[i] = float64(longest)
		total += weights[i]
	}
	for i := range weights {
		weights[i] = weights[i] / total * pageWidth
	}
	return weights
}

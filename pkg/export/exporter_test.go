package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDataset() Dataset {
	return Dataset{
		Headers: []string{"Activity", "Award", "Marks"},
		Rows: []map[string]string{
			{"Activity": "Code Quest 2024", "Award": "1st Place", "Marks": "10"},
			{"Activity": "Hackathon, Weekend", "Award": "Participation", "Marks": "2"},
		},
		Subject: []Field{{Label: "Student", Value: "Asha"}, {Label: "PIN", Value: "21A51A0501"}},
		Totals:  []Field{{Label: "Total marks", Value: "12"}},
	}
}

func TestCSVExporterRender(t *testing.T) {
	out, err := NewCSVExporter().Render(sampleDataset())
	require.NoError(t, err)

	r := csv.NewReader(bytes.NewReader(out))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 6)
	assert.Equal(t, []string{"Student", "Asha"}, records[0])
	assert.Equal(t, []string{"PIN", "21A51A0501"}, records[1])
	assert.Equal(t, []string{"Activity", "Award", "Marks"}, records[2])
	assert.Equal(t, "Hackathon, Weekend", records[4][0])
	assert.Equal(t, []string{"Total marks", "12"}, records[5])
}

func TestCSVExporterRequiresHeaders(t *testing.T) {
	_, err := NewCSVExporter().Render(Dataset{})
	assert.Error(t, err)
}

func TestPDFExporterRender(t *testing.T) {
	out, err := NewPDFExporter().Render(sampleDataset(), "Performance report")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestColumnWidthsFillPage(t *testing.T) {
	widths := columnWidths(sampleDataset())
	sum := 0.0
	for _, w := range widths {
		sum += w
	}
	assert.InDelta(t, pageWidth, sum, 0.001)
	assert.Greater(t, widths[0], widths[2])
}

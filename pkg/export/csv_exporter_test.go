package export

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVExporterRender(t *testing.T) {
	exporter := NewCSVExporter()
	data := Dataset{
		Headers: []string{"ID", "EMAIL", "SUBJECT"},
		Rows: []map[string]string{
			{"ID": "1", "EMAIL": "a@b.edu", "SUBJECT": "Math"},
			{"ID": "2", "EMAIL": "a@b.edu"},
		},
	}

	out, err := exporter.Render(data)
	require.NoError(t, err)
	assert.Equal(t, "ID,EMAIL,SUBJECT\n1,a@b.edu,Math\n2,a@b.edu,\n", string(out))
}

func TestCSVExporterRequiresHeaders(t *testing.T) {
	exporter := NewCSVExporter()
	_, err := exporter.Render(Dataset{})
	assert.Error(t, err)
}

func TestFilename(t *testing.T) {
	ts := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	assert.Equal(t, "results_20260314_092653.csv", Filename("results", ts))
}

func TestIDCardExporterRequiresUniqueID(t *testing.T) {
	exporter := NewIDCardExporter()
	_, err := exporter.Render(IDCard{FullName: "Asha"})
	assert.Error(t, err)
}

func TestIDCardExporterRender(t *testing.T) {
	exporter := NewIDCardExporter()
	out, err := exporter.Render(IDCard{
		CollegeName:  "College of Engineering",
		UniqueID:     "COE-1A2B3C",
		FullName:     "Asha",
		RollNo:       "20230001",
		Department:   "CSE",
		AcademicYear: "2025-26",
	})
	require.NoError(t, err)
	assert.True(t, len(out) > 0)
	assert.Equal(t, "%PDF", string(out[:4]))
}

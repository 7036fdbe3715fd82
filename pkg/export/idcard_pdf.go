package export

import (
	"bytes"
	"fmt"
	"os"

	"github.com/jung-kurt/gofpdf"
)

// IDCard holds the fields printed on an approved identity card.
type IDCard struct {
	CollegeName  string
	UniqueID     string
	FullName     string
	RollNo       string
	Department   string
	AcademicYear string
	Phone        string
	PhotoPath    string
}

// IDCardExporter renders approved applications into a printable card PDF.
type IDCardExporter struct{}

// NewIDCardExporter constructs an ID card exporter.
func NewIDCardExporter() *IDCardExporter {
	return &IDCardExporter{}
}

// Render creates a single-page PDF laid out as an identity card.
func (e *IDCardExporter) Render(card IDCard) ([]byte, error) {
	if card.UniqueID == "" {
		return nil, fmt.Errorf("card requires a unique id")
	}

	pdf := gofpdf.New("L", "mm", "A6", "")
	pdf.SetMargins(8, 8, 8)
	pdf.AddPage()

	pdf.SetFillColor(25, 55, 109)
	pdf.Rect(0, 0, 148, 16, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(0, 10, card.CollegeName, "", 1, "C", false, 0, "")
	pdf.Ln(6)

	if card.PhotoPath != "" {
		if _, err := os.Stat(card.PhotoPath); err == nil {
			pdf.ImageOptions(card.PhotoPath, 112, 22, 26, 32, false, gofpdf.ImageOptions{}, 0, "")
		}
	}

	pdf.SetTextColor(0, 0, 0)
	rows := []struct {
		label string
		value string
	}{
		{"ID No", card.UniqueID},
		{"Name", card.FullName},
		{"Roll No", card.RollNo},
		{"Department", card.Department},
		{"Year", card.AcademicYear},
		{"Phone", card.Phone},
	}
	for _, row := range rows {
		pdf.SetFont("Arial", "B", 9)
		pdf.CellFormat(26, 6, row.label, "", 0, "", false, 0, "")
		pdf.SetFont("Arial", "", 9)
		pdf.CellFormat(72, 6, row.value, "", 1, "", false, 0, "")
	}

	pdf.SetY(-14)
	pdf.SetFont("Arial", "I", 7)
	pdf.CellFormat(0, 5, "Valid only with the college seal and signature.", "", 1, "C", false, 0, "")

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render id card pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// Package extract pulls plain text out of uploaded knowledge-base files.
package extract

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
)

// Text extracts the textual content of the file at path. PDF files are read
// page by page and concatenated; anything else is treated as UTF-8 text.
func Text(path string) (string, error) {
	if strings.HasSuffix(strings.ToLower(path), ".pdf") {
		return pdfText(path)
	}
	return plainText(path)
}

func pdfText(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close() //nolint:errcheck

	var sb strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("extract pdf page %d: %w", i, err)
		}
		sb.WriteString(text)
	}
	return sb.String(), nil
}

func plainText(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}
	if !utf8.Valid(raw) {
		return "", fmt.Errorf("file is not valid UTF-8 text")
	}
	return string(raw), nil
}

package ingest

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestParseCSVNormalizesHeaders(t *testing.T) {
	body := " roll_no ,Subject,MARKS,total_marks\n20230001,Math,88,100\n"
	table, err := Parse(strings.NewReader(body), "marks.csv")
	require.NoError(t, err)

	assert.Equal(t, []string{"ROLL_NO", "SUBJECT", "MARKS", "TOTAL_MARKS"}, table.Headers)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "20230001", table.Rows[0]["ROLL_NO"])
	assert.True(t, table.HasColumns("ROLL_NO", "SUBJECT", "MARKS", "TOTAL_MARKS"))
	assert.False(t, table.HasColumns("SEMESTER"))
}

func TestParseCSVRaggedRows(t *testing.T) {
	body := "ROLL_NO,SUBJECT,MARKS\n20230001,Math\n"
	table, err := Parse(strings.NewReader(body), "marks.csv")
	require.NoError(t, err)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "", table.Rows[0]["MARKS"])
}

func TestParseCSVEmpty(t *testing.T) {
	_, err := Parse(strings.NewReader(""), "marks.csv")
	assert.Error(t, err)
}

func TestParseXLSX(t *testing.T) {
	book := excelize.NewFile()
	sheet := book.GetSheetName(0)
	require.NoError(t, book.SetSheetRow(sheet, "A1", &[]interface{}{"ROLL_NO", "SUBJECT", "MARKS", "TOTAL_MARKS"}))
	require.NoError(t, book.SetSheetRow(sheet, "A2", &[]interface{}{"20230001", "Math", 88, 100}))

	var buf bytes.Buffer
	require.NoError(t, book.Write(&buf))

	table, err := Parse(&buf, "marks.xlsx")
	require.NoError(t, err)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "Math", table.Rows[0]["SUBJECT"])
	assert.Equal(t, "88", table.Rows[0]["MARKS"])
}

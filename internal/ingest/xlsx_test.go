package ingest

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"
)

func createStatementXLSX(t *testing.T, rows [][]string) string {
	t.Helper()
	f := xlsx.NewFile()
	sheet, err := f.AddSheet("financials")
	require.NoError(t, err)
	for _, rowData := range rows {
		row := sheet.AddRow()
		for _, cellData := range rowData {
			cell := row.AddCell()
			cell.SetString(cellData)
		}
	}
	path := filepath.Join(t.TempDir(), "statement.xlsx")
	require.NoError(t, f.Save(path))
	return path
}

func TestReadXLSXRecord(t *testing.T) {
	path := createStatementXLSX(t, [][]string{
		{"section", "field", "value"},
		{"meta", "nature", "standalone"},
		{"pnl", "netRevenue", "60,000,000"},
		{"pnl", "profitBeforeInterestAndTaxAndDepreciationAndAmortization", "500000"},
		{"bs", "longTermBorrowings", "100"},
		{"bs", "shortTermBorrowings", "50"},
		{"bs", "interestExpenses", "10"},
	})

	rec, err := ReadXLSXRecord(path)
	require.NoError(t, err)
	require.Len(t, rec.Financials, 1)

	entry := rec.Financials[0]
	assert.Equal(t, "STANDALONE", entry.Nature)
	require.NotNil(t, entry.LineItems.PNL)
	require.NotNil(t, entry.LineItems.BS)
	assert.Equal(t, 60_000_000.0, entry.LineItems.PNL.NetRevenue)
	assert.Equal(t, 500_000.0, entry.LineItems.PNL.PBITDA)
	assert.Equal(t, 100.0, entry.LineItems.BS.LongTermBorrowings)
	assert.Equal(t, 50.0, entry.LineItems.BS.ShortTermBorrowings)
	assert.Equal(t, 10.0, entry.LineItems.BS.InterestExpenses)
}

func TestReadXLSXRecordSectionPresence(t *testing.T) {
	// A pnl row makes the pnl section present even when the field is unknown;
	// bs stays absent when no bs rows exist.
	path := createStatementXLSX(t, [][]string{
		{"meta", "nature", "STANDALONE"},
		{"pnl", "someFutureField", "42"},
	})

	rec, err := ReadXLSXRecord(path)
	require.NoError(t, err)

	entry := rec.Financials[0]
	assert.NotNil(t, entry.LineItems.PNL)
	assert.Nil(t, entry.LineItems.BS)
	assert.Equal(t, 0.0, entry.LineItems.PNL.NetRevenue)
}

func TestReadXLSXRecordBadNumber(t *testing.T) {
	path := createStatementXLSX(t, [][]string{
		{"pnl", "netRevenue", "sixty million"},
	})

	_, err := ReadXLSXRecord(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad number")
}

func TestReadXLSXRecordEmpty(t *testing.T) {
	path := createStatementXLSX(t, [][]string{
		{"section", "field", "value"},
	})

	_, err := ReadXLSXRecord(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no statement rows")
}

func TestParseXLSXRecordFromBytes(t *testing.T) {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet("financials")
	require.NoError(t, err)
	for _, rowData := range [][]string{
		{"meta", "nature", "STANDALONE"},
		{"pnl", "netRevenue", "100"},
		{"bs", "longTermBorrowings", "10"},
	} {
		row := sheet.AddRow()
		for _, cellData := range rowData {
			row.AddCell().SetString(cellData)
		}
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	rec, err := ParseXLSXRecord(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, rec.Financials, 1)
	assert.Equal(t, 100.0, rec.Financials[0].LineItems.PNL.NetRevenue)
	assert.Equal(t, 10.0, rec.Financials[0].LineItems.BS.LongTermBorrowings)
}

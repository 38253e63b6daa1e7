package ingest

import (
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/probe-group/finflags/internal/model"
)

// XLSX statement layout: one entry per workbook, first sheet, rows of
// section | field | value. The meta section carries the entry nature;
// pnl and bs rows carry numeric line items. Unknown fields are ignored.

// ReadXLSXRecord reads a statement workbook from disk.
func ReadXLSXRecord(path string) (*model.FinancialRecord, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "ingest: open xlsx")
	}
	return recordFromWorkbook(f)
}

// ParseXLSXRecord reads a statement workbook from an uploaded byte slice.
func ParseXLSXRecord(data []byte) (*model.FinancialRecord, error) {
	f, err := xlsx.OpenBinary(data)
	if err != nil {
		return nil, eris.Wrap(err, "ingest: open xlsx")
	}
	return recordFromWorkbook(f)
}

func recordFromWorkbook(f *xlsx.File) (*model.FinancialRecord, error) {
	if len(f.Sheets) == 0 {
		return nil, eris.New("ingest: xlsx has no sheets")
	}
	sheet := f.Sheets[0]

	var entry model.FinancialEntry
	rows := 0

	for i, row := range sheet.Rows {
		cells := make([]string, len(row.Cells))
		for j, cell := range row.Cells {
			cells[j] = strings.TrimSpace(cell.String())
		}
		if len(cells) < 2 || cells[0] == "" {
			continue
		}
		// Skip a header row if present.
		if i == 0 && strings.EqualFold(cells[0], "section") {
			continue
		}

		section, field := strings.ToLower(cells[0]), cells[1]
		value := ""
		if len(cells) > 2 {
			value = cells[2]
		}

		if err := applyRow(&entry, section, field, value); err != nil {
			return nil, eris.Wrap(err, "ingest: xlsx row")
		}
		rows++
	}

	if rows == 0 {
		return nil, eris.New("ingest: xlsx has no statement rows")
	}

	return &model.FinancialRecord{Financials: []model.FinancialEntry{entry}}, nil
}

func applyRow(entry *model.FinancialEntry, section, field, value string) error {
	switch section {
	case "meta":
		if strings.EqualFold(field, "nature") {
			entry.Nature = strings.ToUpper(value)
		}
		return nil

	case "pnl":
		if entry.LineItems.PNL == nil {
			entry.LineItems.PNL = &model.PNL{}
		}
		n, err := parseAmount(field, value)
		if err != nil {
			return err
		}
		switch field {
		case "netRevenue":
			entry.LineItems.PNL.NetRevenue = n
		case "profitBeforeInterestAndTaxAndDepreciationAndAmortization":
			entry.LineItems.PNL.PBITDA = n
		}
		return nil

	case "bs":
		if entry.LineItems.BS == nil {
			entry.LineItems.BS = &model.BS{}
		}
		n, err := parseAmount(field, value)
		if err != nil {
			return err
		}
		switch field {
		case "longTermBorrowings":
			entry.LineItems.BS.LongTermBorrowings = n
		case "shortTermBorrowings":
			entry.LineItems.BS.ShortTermBorrowings = n
		case "interestExpenses":
			entry.LineItems.BS.InterestExpenses = n
		}
		return nil
	}

	// Unknown sections are ignored, same as unknown fields.
	return nil
}

func parseAmount(field, value string) (float64, error) {
	if value == "" {
		return 0, nil
	}
	n, err := strconv.ParseFloat(strings.ReplaceAll(value, ",", ""), 64)
	if err != nil {
		return 0, eris.Errorf("field %q: bad number %q", field, value)
	}
	return n, nil
}

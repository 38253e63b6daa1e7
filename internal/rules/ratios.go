package rules

import "github.com/probe-group/finflags/internal/model"

// TotalRevenue returns pnl.netRevenue for the entry at index i, or 0 when the
// entry, its line items, or the pnl section is missing. No distinction is kept
// between a missing field and a missing section.
func TotalRevenue(rec *model.FinancialRecord, i int) float64 {
	entry := rec.Entry(i)
	if entry == nil || entry.LineItems.PNL == nil {
		return 0
	}
	return entry.LineItems.PNL.NetRevenue
}

// BorrowingToRevenueRatio returns total borrowings (long-term plus short-term)
// divided by TotalRevenue for the entry at index i. When the balance sheet
// section is missing, or revenue is exactly zero, it returns 0 rather than
// dividing by zero.
func BorrowingToRevenueRatio(rec *model.FinancialRecord, i int) float64 {
	entry := rec.Entry(i)
	if entry == nil || entry.LineItems.BS == nil {
		return 0
	}

	bs := entry.LineItems.BS
	borrowings := bs.LongTermBorrowings + bs.ShortTermBorrowings

	revenue := TotalRevenue(rec, i)
	if revenue == 0 {
		return 0
	}
	return borrowings / revenue
}

// ISCR returns the interest service coverage ratio for the entry at index i:
// (pbitda + 1) / (interestExpenses + 1). The +1 offsets are fixed constants
// keeping the denominator nonzero when interest expense is 0. Returns 0 when
// either the pnl or the bs section is missing; fields inside present sections
// default to 0.
func ISCR(rec *model.FinancialRecord, i int) float64 {
	entry := rec.Entry(i)
	if entry == nil || entry.LineItems.PNL == nil || entry.LineItems.BS == nil {
		return 0
	}

	pbitda := entry.LineItems.PNL.PBITDA
	interest := entry.LineItems.BS.InterestExpenses

	return (pbitda + 1) / (interest + 1)
}

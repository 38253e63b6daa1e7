package model

// FinancialRecord is the top-level input to rule evaluation: one company's
// filings as uploaded, ordered most recent first.
type FinancialRecord struct {
	Financials []FinancialEntry `json:"financials"`
}

// FinancialEntry is a single filing. Nature distinguishes standalone entity
// figures ("STANDALONE") from consolidated group figures.
type FinancialEntry struct {
	Nature    string    `json:"nature"`
	LineItems LineItems `json:"lineItems"`
}

// LineItems groups the statement sections of an entry. Sections are pointers:
// an absent section is not the same as a section with zero values, and the
// ISCR and borrowing calculations depend on that distinction.
type LineItems struct {
	PNL *PNL `json:"pnl,omitempty"`
	BS  *BS  `json:"bs,omitempty"`
}

// PNL holds the profit-and-loss fields used by the rules.
// Absent fields decode to zero.
type PNL struct {
	NetRevenue float64 `json:"netRevenue"`
	PBITDA     float64 `json:"profitBeforeInterestAndTaxAndDepreciationAndAmortization"`
}

// BS holds the balance-sheet fields used by the rules.
type BS struct {
	LongTermBorrowings  float64 `json:"longTermBorrowings"`
	ShortTermBorrowings float64 `json:"shortTermBorrowings"`
	InterestExpenses    float64 `json:"interestExpenses"`
}

// Entry returns the entry at index i, or nil when i is out of range.
// Out-of-range access is a lookup failure, which the rule layer collapses
// to zero-valued ratios.
func (r *FinancialRecord) Entry(i int) *FinancialEntry {
	if r == nil || i < 0 || i >= len(r.Financials) {
		return nil
	}
	return &r.Financials[i]
}

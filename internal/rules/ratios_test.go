package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/probe-group/finflags/internal/model"
)

func recordWith(pnl *model.PNL, bs *model.BS) *model.FinancialRecord {
	return &model.FinancialRecord{
		Financials: []model.FinancialEntry{
			{Nature: "STANDALONE", LineItems: model.LineItems{PNL: pnl, BS: bs}},
		},
	}
}

func TestTotalRevenue(t *testing.T) {
	tests := []struct {
		name string
		rec  *model.FinancialRecord
		idx  int
		want float64
	}{
		{"present", recordWith(&model.PNL{NetRevenue: 1234.5}, nil), 0, 1234.5},
		{"field zero-valued", recordWith(&model.PNL{}, nil), 0, 0},
		{"pnl section missing", recordWith(nil, &model.BS{}), 0, 0},
		{"no line items", recordWith(nil, nil), 0, 0},
		{"index out of range", recordWith(&model.PNL{NetRevenue: 100}, nil), 3, 0},
		{"empty record", &model.FinancialRecord{}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TotalRevenue(tt.rec, tt.idx))
		})
	}
}

func TestBorrowingToRevenueRatio(t *testing.T) {
	tests := []struct {
		name string
		rec  *model.FinancialRecord
		want float64
	}{
		{
			"sums long and short term",
			recordWith(&model.PNL{NetRevenue: 100}, &model.BS{LongTermBorrowings: 10, ShortTermBorrowings: 15}),
			0.25,
		},
		{
			"revenue exactly zero",
			recordWith(&model.PNL{NetRevenue: 0}, &model.BS{LongTermBorrowings: 10}),
			0,
		},
		{
			"revenue missing entirely",
			recordWith(nil, &model.BS{LongTermBorrowings: 10}),
			0,
		},
		{
			"bs section missing",
			recordWith(&model.PNL{NetRevenue: 100}, nil),
			0,
		},
		{
			"borrowings default to zero",
			recordWith(&model.PNL{NetRevenue: 100}, &model.BS{}),
			0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, BorrowingToRevenueRatio(tt.rec, 0), 1e-9)
		})
	}
}

func TestISCR(t *testing.T) {
	tests := []struct {
		name string
		rec  *model.FinancialRecord
		want float64
	}{
		{
			"pbitda 3 interest 1",
			recordWith(&model.PNL{PBITDA: 3}, &model.BS{InterestExpenses: 1}),
			2.0,
		},
		{
			"pbitda 0 interest 1",
			recordWith(&model.PNL{PBITDA: 0}, &model.BS{InterestExpenses: 1}),
			0.5,
		},
		{
			"zero interest uses +1 offset",
			recordWith(&model.PNL{PBITDA: 4}, &model.BS{}),
			5.0,
		},
		{
			"negative pbitda",
			recordWith(&model.PNL{PBITDA: -3}, &model.BS{InterestExpenses: 1}),
			-1.0,
		},
		{"pnl missing", recordWith(nil, &model.BS{InterestExpenses: 1}), 0},
		{"bs missing", recordWith(&model.PNL{PBITDA: 3}, nil), 0},
		{"both missing", recordWith(nil, nil), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ISCR(tt.rec, 0), 1e-9)
		})
	}
}

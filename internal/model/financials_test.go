package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFinancialRecordDecode(t *testing.T) {
	raw := `{
		"financials": [
			{
				"nature": "STANDALONE",
				"lineItems": {
					"pnl": {
						"netRevenue": 60000000,
						"profitBeforeInterestAndTaxAndDepreciationAndAmortization": 500000
					},
					"bs": {
						"longTermBorrowings": 100,
						"shortTermBorrowings": 50,
						"interestExpenses": 10
					}
				}
			},
			{
				"nature": "CONSOLIDATED",
				"lineItems": {}
			}
		]
	}`

	var rec FinancialRecord
	require.NoError(t, json.Unmarshal([]byte(raw), &rec))
	require.Len(t, rec.Financials, 2)

	first := rec.Financials[0]
	assert.Equal(t, "STANDALONE", first.Nature)
	require.NotNil(t, first.LineItems.PNL)
	require.NotNil(t, first.LineItems.BS)
	assert.Equal(t, 60_000_000.0, first.LineItems.PNL.NetRevenue)
	assert.Equal(t, 500_000.0, first.LineItems.PNL.PBITDA)
	assert.Equal(t, 150.0, first.LineItems.BS.LongTermBorrowings+first.LineItems.BS.ShortTermBorrowings)

	// Missing sections stay nil, distinguishable from zero-valued ones.
	second := rec.Financials[1]
	assert.Nil(t, second.LineItems.PNL)
	assert.Nil(t, second.LineItems.BS)
}

func TestEntryBounds(t *testing.T) {
	rec := &FinancialRecord{Financials: []FinancialEntry{{Nature: "STANDALONE"}}}

	assert.NotNil(t, rec.Entry(0))
	assert.Nil(t, rec.Entry(1))
	assert.Nil(t, rec.Entry(-1))
	assert.Nil(t, (*FinancialRecord)(nil).Entry(0))
	assert.Nil(t, (&FinancialRecord{}).Entry(0))
}

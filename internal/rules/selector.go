package rules

import "github.com/probe-group/finflags/internal/model"

// natureStandalone marks a filing for a single legal entity, as opposed to
// consolidated group figures.
const natureStandalone = "STANDALONE"

// LatestStandaloneIndex returns the index of the first entry in the record's
// financials whose nature is STANDALONE. When no entry matches, including when
// the financials are empty or absent, it returns 0; the downstream accessors
// treat an out-of-range index as missing data.
func LatestStandaloneIndex(rec *model.FinancialRecord) int {
	if rec == nil {
		return 0
	}
	for i, entry := range rec.Financials {
		if entry.Nature == natureStandalone {
			return i
		}
	}
	return 0
}

// Package ingest turns uploaded statement files into financial records.
// It owns the boundary validation the rule layer deliberately omits: a
// document that parses but carries no financial entries is rejected here,
// so the evaluator itself stays total.
package ingest

import (
	"encoding/json"
	"io"

	"github.com/rotisserie/eris"

	"github.com/probe-group/finflags/internal/model"
)

// document is the accepted upload envelope. The original feed wraps the
// record under a "data" key; bare records are accepted too.
type document struct {
	Data       *model.FinancialRecord `json:"data"`
	Financials []model.FinancialEntry `json:"financials"`
}

// DecodeRecord decodes a JSON statement document from r. It accepts either
// {"data": {record}} or a bare record, and rejects documents with no
// financial entries.
func DecodeRecord(r io.Reader) (*model.FinancialRecord, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, eris.Wrap(err, "ingest: decode record")
	}

	rec := &model.FinancialRecord{Financials: doc.Financials}
	if doc.Data != nil {
		rec = doc.Data
	}

	if len(rec.Financials) == 0 {
		return nil, eris.New("ingest: record has no financial entries")
	}
	return rec, nil
}

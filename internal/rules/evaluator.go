package rules

import (
	"go.uber.org/zap"

	"github.com/probe-group/finflags/internal/model"
)

// Evaluator runs the fixed rule set against financial records.
type Evaluator struct {
	cfg Config
}

// New creates an Evaluator with the given thresholds.
func New(cfg Config) *Evaluator {
	return &Evaluator{cfg: cfg}
}

// Evaluate selects the latest standalone entry and classifies the three
// ratios against it. Every call recomputes from scratch; there is no cached
// or retained state, so evaluating the same record twice yields identical
// results.
func (e *Evaluator) Evaluate(rec *model.FinancialRecord) model.Evaluation {
	i := LatestStandaloneIndex(rec)

	revenue := TotalRevenue(rec, i)
	borrowing := BorrowingToRevenueRatio(rec, i)
	iscr := ISCR(rec, i)

	result := model.Evaluation{
		Flags: map[string]model.Flag{
			model.FlagNameTotalRevenue:       e.revenueFlag(revenue),
			model.FlagNameBorrowingToRevenue: e.borrowingFlag(borrowing),
			model.FlagNameISCR:               e.iscrFlag(iscr),
		},
	}

	zap.L().Debug("rules: record evaluated",
		zap.Int("entry_index", i),
		zap.Float64("total_revenue", revenue),
		zap.Float64("borrowing_ratio", borrowing),
		zap.Float64("iscr", iscr),
		zap.Stringer("revenue_flag", result.Flags[model.FlagNameTotalRevenue]),
		zap.Stringer("borrowing_flag", result.Flags[model.FlagNameBorrowingToRevenue]),
		zap.Stringer("iscr_flag", result.Flags[model.FlagNameISCR]),
	)

	return result
}

// revenueFlag is GREEN when revenue meets the floor, RED otherwise.
// The boundary is inclusive on the GREEN side.
func (e *Evaluator) revenueFlag(revenue float64) model.Flag {
	if revenue >= e.cfg.RevenueFloor {
		return model.FlagGreen
	}
	return model.FlagRed
}

// borrowingFlag is GREEN at or below the ceiling, AMBER above it. Excess
// leverage is a caution, not an outright rejection, so RED is never produced.
func (e *Evaluator) borrowingFlag(ratio float64) model.Flag {
	if ratio <= e.cfg.BorrowingRatioCeiling {
		return model.FlagGreen
	}
	return model.FlagAmber
}

// iscrFlag is GREEN when coverage meets the floor, RED otherwise. AMBER is
// never produced. The comparison is total over the reals: negative PBITDA
// simply lands below the floor.
func (e *Evaluator) iscrFlag(iscr float64) model.Flag {
	if iscr >= e.cfg.ISCRFloor {
		return model.FlagGreen
	}
	return model.FlagRed
}

// Package rules computes categorical risk flags from a company's financial
// record. All derivations are pure functions of the record and the selected
// entry index; missing data collapses to zero-valued ratios rather than errors.
package rules

import (
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
)

// Config holds the classification thresholds. The defaults are the shipped
// rule set; Config exists so tests and deployments can pin them explicitly,
// not as a mechanism for defining new rules.
type Config struct {
	// RevenueFloor is the minimum net revenue (in the record's currency
	// unit) for a GREEN revenue flag. Inclusive.
	RevenueFloor float64 `yaml:"revenue_floor" mapstructure:"revenue_floor"`

	// BorrowingRatioCeiling is the maximum borrowing-to-revenue ratio for a
	// GREEN leverage flag. Inclusive; above it the flag is AMBER, never RED.
	BorrowingRatioCeiling float64 `yaml:"borrowing_ratio_ceiling" mapstructure:"borrowing_ratio_ceiling"`

	// ISCRFloor is the minimum interest service coverage ratio for a GREEN
	// coverage flag. Inclusive.
	ISCRFloor float64 `yaml:"iscr_floor" mapstructure:"iscr_floor"`
}

// DefaultConfig returns the shipped thresholds: revenue floor of 50 million
// (5 crore in lakh units), leverage ceiling 0.25, ISCR floor 2.
func DefaultConfig() Config {
	return Config{
		RevenueFloor:          50_000_000,
		BorrowingRatioCeiling: 0.25,
		ISCRFloor:             2,
	}
}

// ValidateConfig checks that a Config is internally consistent.
func ValidateConfig(c Config) error {
	var errs []string

	if c.RevenueFloor < 0 {
		errs = append(errs, fmt.Sprintf("revenue_floor must be >= 0, got %.2f", c.RevenueFloor))
	}
	if c.BorrowingRatioCeiling < 0 {
		errs = append(errs, fmt.Sprintf("borrowing_ratio_ceiling must be >= 0, got %.4f", c.BorrowingRatioCeiling))
	}
	if c.ISCRFloor <= 0 {
		errs = append(errs, fmt.Sprintf("iscr_floor must be > 0, got %.2f", c.ISCRFloor))
	}

	if len(errs) > 0 {
		return eris.Errorf("rules: config validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

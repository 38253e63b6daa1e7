package model

// Flag is a categorical risk indicator attached to a single rule outcome.
// The integer codes are part of the wire contract and must not change.
type Flag int

const (
	FlagRed   Flag = 0
	FlagGreen Flag = 1
	FlagAmber Flag = 2

	// FlagMediumRisk and FlagWhite are display-only members of the enum.
	// No classifier produces them; WHITE marks fields with missing source
	// data in downstream views.
	FlagMediumRisk Flag = 3
	FlagWhite      Flag = 4
)

// String returns the display name for the flag.
func (f Flag) String() string {
	switch f {
	case FlagRed:
		return "RED"
	case FlagGreen:
		return "GREEN"
	case FlagAmber:
		return "AMBER"
	case FlagMediumRisk:
		return "MEDIUM_RISK"
	case FlagWhite:
		return "WHITE"
	}
	return "UNKNOWN"
}

// Valid reports whether f is one of the defined flag values.
func (f Flag) Valid() bool {
	return f >= FlagRed && f <= FlagWhite
}

// Flag names used as keys in an Evaluation's flag map.
const (
	FlagNameTotalRevenue       = "TOTAL_REVENUE_5CR_FLAG"
	FlagNameBorrowingToRevenue = "BORROWING_TO_REVENUE_FLAG"
	FlagNameISCR               = "ISCR_FLAG"
)

// Evaluation is the result of running the rule set against one record.
// Flags maps flag name to the computed value; JSON keeps the integer codes.
type Evaluation struct {
	Flags map[string]Flag `json:"flags"`
}

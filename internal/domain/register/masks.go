package register

import "math"

// Report-section predicates over processed rows.

// VarianceAbove reports whether the given dollar variance is material.
func VarianceAbove(v, threshold float64) bool {
	return math.Abs(v) > threshold
}

func FLSAFlagged(row *Row) bool {
	return row.FLSACheck == flagCheck
}

func MinWageFlagged(row *Row) bool {
	return row.MinimumWage == flagCheck && row.REGHours > 0
}

func NonActiveFlagged(row *Row) bool {
	return row.NonActive == flagCheck
}

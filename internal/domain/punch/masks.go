package punch

// Row predicates for anomaly flags and report sections. These operate on
// fully reconstructed rows; nil lookup values read as "not applicable" and
// fail the predicate.

func waived(row *Row) bool {
	return row.WaiverOnFile != nil && *row.WaiverOnFile == "Yes"
}

func sameDateAsPrev(row *Row) bool {
	return row.PrevDate != nil && row.Date.Equal(*row.PrevDate)
}

// ShortBreakMask flags a genuine break under 30 minutes within a shift of 5
// hours or more. First punches and midnight continuations are not breaks.
func ShortBreakMask(row *Row) bool {
	return row.BreakTime != nil && *row.BreakTime < 30 &&
		row.HoursWorkedShift >= 5 && row.IsBreak
}

// DidNotBreakAllMask flags the first punch of a shift whose stapled punch
// length exceeds 5 hours without a meal break, unless the shift is 6 hours
// or less and a waiver is on file. Used for the anomalies table.
func DidNotBreakAllMask(row *Row) bool {
	return row.FirstPunchOfShift && row.NewPunch &&
		row.PunchLength > 5 &&
		!(row.HoursWorkedShift <= 6 && waived(row))
}

// DidNotBreakWindowMask is the report variant restricted to shifts in the
// 5-to-6-hour waiver window.
func DidNotBreakWindowMask(row *Row) bool {
	return DidNotBreakAllMask(row) &&
		row.HoursWorkedShift > 5 && row.HoursWorkedShift <= 6
}

// SplitShiftMask flags a same-day gap between 60 and 800 minutes where the
// split-shift pay fell short of the minimum-wage figure.
func SplitShiftMask(row *Row) bool {
	if row.BreakTime == nil || row.SplitPaid == nil || row.SplitAtMinWage == nil {
		return false
	}
	return *row.BreakTime > 60 && *row.BreakTime < 800 &&
		*row.SplitPaid < *row.SplitAtMinWage &&
		sameDateAsPrev(row)
}

// ZeroVarianceByPunch reports rows with no worked or paid OT/DT at all; these
// are dropped from the hour-variance sections.
func ZeroVarianceByPunch(row *ByPunchRow) bool {
	return row.TotalOTHoursPayPeriod == 0 && paidOrZero(row.OTHoursPaid) == 0 &&
		row.TotalDTHoursPayPeriod == 0 && paidOrZero(row.DTHoursPaid) == 0
}

// ConsecutiveDayMask keeps rows that accrued consecutive-day overtime.
func ConsecutiveDayMask(row *ByPunchRow) bool {
	return row.HoursInConsecutiveDays > 0
}

func paidOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

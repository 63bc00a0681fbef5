package register

import (
	"fmt"
	"strconv"
	"strings"

	"payguard/internal/domain/rules"
)

// Salary test applied to exempt employees: a Regular Rate Paid below this
// with FLSA Code "E" is flagged for review.
const exemptSalaryTest = 100.0

const flagCheck = "CHECK"

// Process enriches the register rows with the legally-due amounts for each
// premium category and the compliance flags, resolving per-location parameter
// overrides against the global defaults. Columns are derived in order because
// later columns reference earlier ones. Variances follow the due-minus-paid
// convention: positive means underpayment.
func Process(rows []Row, globals rules.Globals, locations rules.LocationConfig) *Table {
	globals = globals.Normalize()

	for i := range rows {
		row := &rows[i]

		row.IDX = MakeIDX(row.CompanyCode, row.FileNumber)

		row.BaseRate = rules.SafeDiv(row.RegularEarningsTotal, row.REGHours)

		additional := row.BellmanSvcCharge + row.RestaurantSvcCharge +
			row.AutoGratuityEarnings + row.CommissionEarnings + row.BonusEarnings
		if additional > 0 {
			row.NonDiscEarnings = "YES"
		} else {
			row.NonDiscEarnings = ""
		}
		row.TotalNonDiscWage = row.MiscAdjustFLSAEarnings + additional

		allHours := row.REGHours + row.OTHours + row.DTHours
		row.NonDiscRegularRate = rules.SafeDiv(row.TotalNonDiscWage, allHours)
		row.NonDiscOTPremium = row.NonDiscRegularRate * 0.5

		// Federal regular-rate blending: straight time-and-a-half plus half
		// the non-discretionary regular rate.
		row.OTRateStraight = row.BaseRate * 1.5
		row.OTRate = row.OTRateStraight + row.NonDiscOTPremium
		row.OTWorked = row.OTHours
		row.OTEarningsDue = row.OTRate * row.OTWorked
		row.ActualPayCheck = row.OvertimeEarningsTotal
		row.Variance = row.OTEarningsDue - row.ActualPayCheck

		row.DoubleTimeRate = 2 * (row.BaseRate + row.NonDiscOTPremium)
		row.DoubleTimeHours = row.DTHours
		row.DoubleTimeDue = row.DoubleTimeHours * row.DoubleTimeRate
		row.ActualPayCheckDble = row.DoubleTimeEarnings
		row.VarianceDble = rules.RoundHalfEven(row.DoubleTimeDue-row.ActualPayCheckDble, 2)

		row.RROP = row.BaseRate + rules.SafeDiv(row.TotalNonDiscWage, allHours)
		row.BreakCreditDue = row.RROP * row.BreakCreditHours
		row.ActualPayBreakCred = row.BreakCreditEarnings
		row.VarianceBreakCred = rules.RoundHalfEven(row.BreakCreditDue-row.ActualPayBreakCred, 2)
		row.BreakCreditPerHour = rules.Ratio(row.BreakCreditDue, row.BreakCreditHours, 2)

		row.RestCreditDue = row.RROP * row.RestCreditHours
		row.ActualPayRestCred = row.RestCreditEarnings
		row.VarianceRestCred = rules.RoundHalfEven(row.RestCreditDue-row.ActualPayRestCred, 2)
		row.RestCreditPerHour = rules.Ratio(row.RestCreditDue, row.RestCreditHours, 2)

		row.SickCreditHours = row.SickHours
		if row.FLSACode == "E" {
			// Exempt daily-rate convention: salary over a 10-day, 8-hour
			// period.
			row.RROPSick = row.RegularRatePaid / (10 * 8)
		} else {
			row.RROPSick = row.RROP
		}
		row.SickCreditDue = row.SickCreditHours * row.RROPSick
		row.SickPaid = row.SickEarnings
		row.VarianceSick = rules.RoundHalfEven(row.SickCreditDue-row.SickPaid, 2)
		row.SickCreditPerHour = rules.Ratio(row.SickCreditDue, row.SickCreditHours, 2)

		row.MinWage = locations.Resolve(row.CompanyCode, rules.ParamMinWage, globals.MinWage)
		row.StateMinWage = locations.Resolve(row.CompanyCode, rules.ParamStateMinWage, globals.StateMinWage)
		row.PayPeriodsPerYear = locations.Resolve(row.CompanyCode, rules.ParamPayPeriodsPerYear, globals.PayPeriodsPerYear)
		row.MinWage40 = row.StateMinWage * 40 * 52 * 2 / row.PayPeriodsPerYear

		row.FLSACheck = ""
		if row.RegularRatePaid < exemptSalaryTest && row.FLSACode == "E" {
			row.FLSACheck = flagCheck
		}

		row.MinimumWage = minimumWageFlag(row)

		row.NonActive = ""
		if row.REGHours > 0 && (row.PositionStatus == "Terminated" || row.PositionStatus == "Leave") {
			row.NonActive = flagCheck
		}
	}

	return NewTable(rows)
}

func minimumWageFlag(row *Row) string {
	switch {
	case row.PositionStatus == "Leave":
		return ""
	case row.FLSACode == "N" && rules.RoundHalfEven(row.BaseRate, 2) >= row.MinWage:
		return ""
	case row.FLSACode == "E" && row.RegularRatePaid+row.SickEarnings+row.VacationEarnings >= row.MinWage40:
		return ""
	default:
		return flagCheck
	}
}

// MakeIDX builds the join key: company code, a literal zero, and the file
// number zero-padded to six digits.
func MakeIDX(companyCode, fileNumber string) string {
	trimmed := strings.TrimSpace(fileNumber)
	if n, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return fmt.Sprintf("%s0%06d", strings.TrimSpace(companyCode), int(n))
	}
	for len(trimmed) < 6 {
		trimmed = "0" + trimmed
	}
	return strings.TrimSpace(companyCode) + "0" + trimmed
}

package results

import "payguard/internal/domain/register"

// Register-side report sections: dollar variances per premium category and
// the three compliance-flag checks. Column subsets mirror the reviewer-facing
// report layout.

func overtimePay(rows []register.Row) []map[string]any {
	out := make([]map[string]any, 0)
	for i := range rows {
		row := &rows[i]
		if !register.VarianceAbove(row.Variance, varianceFloor) || len(out) == sectionMaxRows {
			continue
		}
		out = append(out, map[string]any{
			"Payroll Name":        row.PayrollName,
			"IDX":                 row.IDX,
			"1.5 OT Earnings Due": row.OTEarningsDue,
			"Actual Pay Check":    row.ActualPayCheck,
			"Variance":            row.Variance,
		})
	}
	return out
}

func doubleTimePay(rows []register.Row) []map[string]any {
	out := make([]map[string]any, 0)
	for i := range rows {
		row := &rows[i]
		if !register.VarianceAbove(row.VarianceDble, varianceFloor) || len(out) == sectionMaxRows {
			continue
		}
		out = append(out, map[string]any{
			"Payroll Name":          row.PayrollName,
			"IDX":                   row.IDX,
			"Double Time Due":       row.DoubleTimeDue,
			"Actual Pay Check Dble": row.ActualPayCheckDble,
			"Variance Dble":         row.VarianceDble,
		})
	}
	return out
}

func breakCreditPay(rows []register.Row) []map[string]any {
	out := make([]map[string]any, 0)
	for i := range rows {
		row := &rows[i]
		if !register.VarianceAbove(row.VarianceBreakCred, varianceFloor) || len(out) == sectionMaxRows {
			continue
		}
		out = append(out, map[string]any{
			"Payroll Name":       row.PayrollName,
			"IDX":                row.IDX,
			"Break Credit Hours": row.BreakCreditHours,
			"Break Credit Due":   row.BreakCreditDue,
			"Actual Pay BrkCrd":  row.ActualPayBreakCred,
			"Variance BrkCrd":    row.VarianceBreakCred,
			"Break Credit Due / Break Credit Hours": row.BreakCreditPerHour,
			"Regular Rate Paid":                     row.RegularRatePaid,
		})
	}
	return out
}

func restCreditPay(rows []register.Row) []map[string]any {
	out := make([]map[string]any, 0)
	for i := range rows {
		row := &rows[i]
		if !register.VarianceAbove(row.VarianceRestCred, varianceFloor) || len(out) == sectionMaxRows {
			continue
		}
		out = append(out, map[string]any{
			"Payroll Name":       row.PayrollName,
			"IDX":                row.IDX,
			"Rest Credit Hours":  row.RestCreditHours,
			"Rest Credit Due":    row.RestCreditDue,
			"Actual Pay RestCrd": row.ActualPayRestCred,
			"Variance RestCrd":   row.VarianceRestCred,
			"Rest Credit Due / Rest Credit Hours": row.RestCreditPerHour,
			"Regular Rate Paid":                   row.RegularRatePaid,
		})
	}
	return out
}

func sickCreditPay(rows []register.Row) []map[string]any {
	out := make([]map[string]any, 0)
	for i := range rows {
		row := &rows[i]
		if !register.VarianceAbove(row.VarianceSick, varianceFloor) || len(out) == sectionMaxRows {
			continue
		}
		out = append(out, map[string]any{
			"Payroll Name":      row.PayrollName,
			"IDX":               row.IDX,
			"Sick Credit Hours": row.SickCreditHours,
			"Sick Credit Due":   row.SickCreditDue,
			"Sick Paid":         row.SickPaid,
			"Variance Sick":     row.VarianceSick,
			"Sick Credit Due / Sick Credit Hours": row.SickCreditPerHour,
			"Regular Rate Paid":                   row.RegularRatePaid,
		})
	}
	return out
}

func flsaCheck(rows []register.Row) []map[string]any {
	out := make([]map[string]any, 0)
	for i := range rows {
		row := &rows[i]
		if !register.FLSAFlagged(row) || len(out) == sectionMaxRows {
			continue
		}
		out = append(out, map[string]any{
			"Payroll Name":      row.PayrollName,
			"IDX":               row.IDX,
			"Position Status":   row.PositionStatus,
			"FLSA Code":         row.FLSACode,
			"Regular Rate Paid": row.RegularRatePaid,
		})
	}
	return out
}

func minimumWageCheck(rows []register.Row) []map[string]any {
	out := make([]map[string]any, 0)
	for i := range rows {
		row := &rows[i]
		if !register.MinWageFlagged(row) || len(out) == sectionMaxRows {
			continue
		}
		out = append(out, map[string]any{
			"Payroll Name":        row.PayrollName,
			"IDX":                 row.IDX,
			"Position Status":     row.PositionStatus,
			"FLSA Code":           row.FLSACode,
			"REG":                 row.REGHours,
			"Base Rate":           row.BaseRate,
			"Regular Rate Paid":   row.RegularRatePaid,
			"S_Sick Pay_Earnings": row.SickEarnings,
			"V_Vacation_Earnings": row.VacationEarnings,
		})
	}
	return out
}

func nonActiveCheck(rows []register.Row) []map[string]any {
	out := make([]map[string]any, 0)
	for i := range rows {
		row := &rows[i]
		if !register.NonActiveFlagged(row) || len(out) == sectionMaxRows {
			continue
		}
		out = append(out, map[string]any{
			"Payroll Name":          row.PayrollName,
			"IDX":                   row.IDX,
			"Position Status":       row.PositionStatus,
			"Job Title Description": row.JobTitle,
			"HIREDATE":              row.HireDate,
			"V_Vacation_Hours":      row.VacationHours,
			"Termination Date":      row.TerminationDate,
			"REG":                   row.REGHours,
		})
	}
	return out
}

package results

import (
	"sort"

	"payguard/internal/domain/punch"
	"payguard/internal/domain/register"
	"payguard/internal/domain/waiver"
)

// Each report section is capped to keep response payloads bounded; the full
// tables are returned alongside for serialization.
const sectionMaxRows = 200

// Variance magnitudes below a cent (or a hundredth of an hour) are rounding
// noise, not findings.
const varianceFloor = 0.01

// Timings carries per-stage wall time in milliseconds for the summary block.
type Timings struct {
	TAProcessMS     float64 `json:"ta_process_time_ms"`
	WFNProcessMS    float64 `json:"wfn_process_time_ms"`
	WaiverProcessMS float64 `json:"waiver_process_time_ms"`
}

// Summary mirrors the response summary block: row counts per table plus
// stage timings.
type Summary struct {
	Rows   map[string]int `json:"rows"`
	Timing Timings        `json:"timing"`
}

// Report packages the named report sections.
type Report struct {
	Success  bool                        `json:"success"`
	Summary  Summary                     `json:"summary"`
	Sections map[string][]map[string]any `json:"sections"`
}

// Assemble builds the named report sections from the four processed tables.
// Sections are filtered projections; nothing here recomputes compliance
// logic.
func Assemble(rows []punch.Row, bypunch []punch.ByPunchRow, anomalies []punch.AnomalyRow, wfn *register.Table, roster *waiver.Roster, stapled int, timings Timings) *Report {
	report := &Report{
		Success: true,
		Summary: Summary{
			Rows: map[string]int{
				"ta_rows":        len(rows),
				"anomalies_rows": len(anomalies),
				"bypunch_rows":   len(bypunch),
				"stapled_rows":   stapled,
				"wfn_rows":       len(wfn.Rows),
				"waiver_rows":    len(roster.Entries),
			},
			Timing: timings,
		},
		Sections: make(map[string][]map[string]any),
	}

	report.Sections["break_credit_summary"] = breakCreditSummary(anomalies)
	report.Sections["ot_hour_variance"] = otHourVariance(bypunch)
	report.Sections["dt_hour_variance"] = dtHourVariance(bypunch)
	report.Sections["split_shift"] = splitShift(rows)
	report.Sections["did_not_break"] = didNotBreak(rows)
	report.Sections["consecutive_days"] = consecutiveDays(bypunch)
	report.Sections["overtime_pay"] = overtimePay(wfn.Rows)
	report.Sections["double_time_pay"] = doubleTimePay(wfn.Rows)
	report.Sections["break_credit_pay"] = breakCreditPay(wfn.Rows)
	report.Sections["rest_credit_pay"] = restCreditPay(wfn.Rows)
	report.Sections["sick_credit_pay"] = sickCreditPay(wfn.Rows)
	report.Sections["flsa_check"] = flsaCheck(wfn.Rows)
	report.Sections["minimum_wage_check"] = minimumWageCheck(wfn.Rows)
	report.Sections["non_active_check"] = nonActiveCheck(wfn.Rows)

	return report
}

func breakCreditSummary(anomalies []punch.AnomalyRow) []map[string]any {
	sorted := make([]punch.AnomalyRow, len(anomalies))
	copy(sorted, anomalies)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].PaidBreakCredit > sorted[j].PaidBreakCredit
	})

	out := make([]map[string]any, 0, len(sorted))
	for i := range sorted {
		if len(out) == sectionMaxRows {
			break
		}
		row := &sorted[i]
		out = append(out, map[string]any{
			"ID":                      row.ID,
			"Employee":                row.Employee,
			"Paid Break Credit (hrs)": row.PaidBreakCredit,
			"Due Break Credit (hrs)":  row.DueBreakCredit,
			"Variance":                row.Variance,
			"Short Break":             row.ShortBreak,
			"Did Not Break":           row.DidNotBreak,
			"Over Twelve":             row.OverTwelve,
		})
	}
	return out
}

func otHourVariance(bypunch []punch.ByPunchRow) []map[string]any {
	out := make([]map[string]any, 0)
	seen := make(map[string]bool)
	for i := range bypunch {
		row := &bypunch[i]
		if seen[row.ID] || len(out) == sectionMaxRows {
			continue
		}
		seen[row.ID] = true
		if punch.ZeroVarianceByPunch(row) || row.OTVariance == nil || abs(*row.OTVariance) < varianceFloor {
			continue
		}
		out = append(out, map[string]any{
			"Employee":                  row.Employee,
			"ID":                        row.ID,
			"Total OT Hours Pay Period": row.TotalOTHoursPayPeriod,
			"OT Hours Paid":             row.OTHoursPaid,
			"OT Variance (hrs)":         row.OTVariance,
		})
	}
	return out
}

func dtHourVariance(bypunch []punch.ByPunchRow) []map[string]any {
	out := make([]map[string]any, 0)
	seen := make(map[string]bool)
	for i := range bypunch {
		row := &bypunch[i]
		if seen[row.ID] || len(out) == sectionMaxRows {
			continue
		}
		seen[row.ID] = true
		if punch.ZeroVarianceByPunch(row) || row.DTVariance == nil || abs(*row.DTVariance) < varianceFloor {
			continue
		}
		out = append(out, map[string]any{
			"Employee":                  row.Employee,
			"ID":                        row.ID,
			"Total DT Hours Pay Period": row.TotalDTHoursPayPeriod,
			"DT Hours Paid":             row.DTHoursPaid,
			"DT Variance (hrs)":         row.DTVariance,
		})
	}
	return out
}

func splitShift(rows []punch.Row) []map[string]any {
	out := make([]map[string]any, 0)
	for i := range rows {
		row := &rows[i]
		if !punch.SplitShiftMask(row) || len(out) == sectionMaxRows {
			continue
		}
		out = append(out, map[string]any{
			"Employee":              row.Employee,
			"ID":                    row.ID,
			"Prev Out Punch":        row.PrevOutPunch,
			"In Punch":              row.InPunch,
			"Break Time (min)":      row.BreakTime,
			"Regular Rate Paid":     row.RegularRatePaid,
			"Split Paid ($)":        row.SplitPaid,
			"Split at Min Wage ($)": row.SplitAtMinWage,
			"Split Shift Due ($)":   row.SplitShiftDue,
		})
	}
	return out
}

// didNotBreak reports only shifts inside the 5-to-6-hour waiver window; the
// anomalies rollup counts the unrestricted flag.
func didNotBreak(rows []punch.Row) []map[string]any {
	out := make([]map[string]any, 0)
	for i := range rows {
		row := &rows[i]
		if !punch.DidNotBreakWindowMask(row) || len(out) == sectionMaxRows {
			continue
		}
		out = append(out, map[string]any{
			"Employee":           row.Employee,
			"ID":                 row.ID,
			"In Punch":           row.InPunch,
			"Out Punch":          row.OutPunch,
			"Punch Length (hrs)": row.PunchLength,
			"Hours Worked Shift": row.HoursWorkedShift,
			"Waiver on File?":    row.WaiverOnFile,
		})
	}
	return out
}

func consecutiveDays(bypunch []punch.ByPunchRow) []map[string]any {
	out := make([]map[string]any, 0)
	for i := range bypunch {
		row := &bypunch[i]
		if !punch.ConsecutiveDayMask(row) || len(out) == sectionMaxRows {
			continue
		}
		out = append(out, map[string]any{
			"Employee":                  row.Employee,
			"ID":                        row.ID,
			"In Punch":                  row.InPunch,
			"Hours in Consecutive Days": row.HoursInConsecutiveDays,
			"Totaled Amount":            row.Hours,
			"First day of Streak":       row.FirstDayOfStreak,
		})
	}
	return out
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

package register

import (
	"strconv"
	"strings"
)

// ParseRecords converts raw header-keyed cells from a register workbook into
// typed rows. Money and hour cells tolerate currency symbols and thousands
// separators; anything unparseable reads as zero, matching how the export
// leaves blanks for employees without that earning.
func ParseRecords(records []map[string]string) []Row {
	rows := make([]Row, 0, len(records))
	for _, record := range records {
		rows = append(rows, Row{
			CompanyCode:     record["CO."],
			FileNumber:      record["FILE#"],
			PayrollName:     record["Payroll Name"],
			JobTitle:        record["Job Title Description"],
			FLSACode:        record["FLSA Code"],
			PositionStatus:  record["Position Status"],
			HireDate:        record["HIREDATE"],
			TerminationDate: record["Termination Date"],

			RegularRatePaid: cellFloat(record["Regular Rate Paid"]),
			REGHours:        cellFloat(record["REG"]),
			OTHours:         cellFloat(record["OT"]),
			DTHours:         cellFloat(record["DBLTIME HRS"]),
			SickHours:       cellFloat(record["S_Sick Pay_Hours"]),
			VacationHours:   cellFloat(record["V_Vacation_Hours"]),

			RegularEarningsTotal:  cellFloat(record["Regular Earnings Total"]),
			OvertimeEarningsTotal: cellFloat(record["Overtime Earnings Total"]),
			DoubleTimeEarnings:    cellFloat(record["D_Double Time_Additional Earnings"]),
			SickEarnings:          cellFloat(record["S_Sick Pay_Earnings"]),
			VacationEarnings:      cellFloat(record["V_Vacation_Earnings"]),

			MiscAdjustFLSAEarnings: cellFloat(record["A_MISC ADJUST_flsa earnings"]),
			CommissionEarnings:     cellFloat(record["C_Ee Commission_Additional Earnings"]),
			AutoGratuityEarnings:   cellFloat(record["E_Auto Gratuities_Additional Earnings"]),
			RestaurantSvcCharge:    cellFloat(record["X_RESTR SVC CHG_Additional Earnings"]),
			BellmanSvcCharge:       cellFloat(record["Y_BELLMANSVCCHG_Additional Earnings"]),
			BonusEarnings:          cellFloat(record["B_Bonus_Additional Earnings"]),

			BreakCreditEarnings: cellFloat(record["J_Break Credits_Additional Earnings"]),
			BreakCreditHours:    cellFloat(record["J_Break Credits_Additional Hours"]),
			RestCreditEarnings:  cellFloat(record["RC_Rest Credit_Earnings"]),
			RestCreditHours:     cellFloat(record["RC - Rest Credit Hours"]),
		})
	}
	return rows
}

func cellFloat(raw string) float64 {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.ReplaceAll(cleaned, "$", "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	if cleaned == "" {
		return 0
	}
	negative := false
	if strings.HasPrefix(cleaned, "(") && strings.HasSuffix(cleaned, ")") {
		negative = true
		cleaned = cleaned[1 : len(cleaned)-1]
	}
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	if negative {
		return -value
	}
	return value
}

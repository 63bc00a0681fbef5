package punch

// CreateAnomalies marks the per-row break-credit flags and rolls them up per
// employee into a due-versus-paid variance. Over-twelve credits count once
// per employee-day. Employees with no flags and no paid break credit are
// dropped; for the rest, the due hours are the flag total and the variance is
// due minus paid, positive meaning underpayment.
func CreateAnomalies(rows []Row) []AnomalyRow {
	seenDay := make(map[dayKey]bool)
	for i := range rows {
		row := &rows[i]
		row.ShortBreak = boolToInt(ShortBreakMask(row))
		row.DidNotBreak = boolToInt(DidNotBreakAllMask(row))

		dk := dayKey{row.ID, row.Date}
		row.OverTwelve = 0
		if !seenDay[dk] {
			seenDay[dk] = true
			row.OverTwelve = boolToInt(row.TwelveHourCredit)
		}
	}

	var order []string
	agg := make(map[string]*AnomalyRow)
	for i := range rows {
		row := &rows[i]
		entry, ok := agg[row.ID]
		if !ok {
			entry = &AnomalyRow{
				ID:              row.ID,
				Employee:        row.Employee,
				PaidBreakCredit: paidOrZero(row.PaidBreakCredit),
			}
			agg[row.ID] = entry
			order = append(order, row.ID)
		}
		entry.ShortBreak += row.ShortBreak
		entry.DidNotBreak += row.DidNotBreak
		entry.OverTwelve += row.OverTwelve
	}

	out := make([]AnomalyRow, 0, len(order))
	for _, id := range order {
		entry := agg[id]
		if entry.ShortBreak == 0 && entry.DidNotBreak == 0 &&
			entry.OverTwelve == 0 && entry.PaidBreakCredit == 0 {
			continue
		}
		entry.DueBreakCredit = float64(entry.ShortBreak + entry.DidNotBreak + entry.OverTwelve)
		entry.Variance = entry.DueBreakCredit - entry.PaidBreakCredit
		out = append(out, *entry)
	}
	return out
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

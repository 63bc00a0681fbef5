package punch

import (
	"math"
	"sort"
	"time"

	"payguard/internal/domain/register"
	"payguard/internal/domain/rules"
)

type weekKey struct {
	id   string
	week int
}

type weekDayKey struct {
	id   string
	week int
	date time.Time
}

// CreateByPunch reduces the reconstructed punch table to one row per punch
// and layers on the daily, weekly, and pay-period overtime aggregation. Caps
// resolve per location, falling back to the globals. Daily OT accrual is
// capped at the double-time threshold so hours past it are not counted twice,
// and net weekly OT excludes hours already captured as daily OT or DT.
func CreateByPunch(rows []Row, globals rules.Globals, locations rules.LocationConfig, firstDate time.Time) []ByPunchRow {
	out := make([]ByPunchRow, len(rows))

	dayHours := make(map[dayKey]float64)
	weekHours := make(map[weekKey]float64)
	periodHours := make(map[string]float64)
	for i := range rows {
		row := &rows[i]
		week := rules.WeekIndex(row.Date, firstDate)
		dayHours[dayKey{row.ID, row.Date}] += row.Hours
		weekHours[weekKey{row.ID, week}] += row.Hours
		periodHours[row.ID] += row.Hours

		out[i] = ByPunchRow{
			Employee: row.Employee,
			ID:       row.ID,
			Location: row.Location,
			Date:     row.Date,
			Hours:    row.Hours,
			InPunch:  row.InPunch,
			OutPunch: row.OutPunch,
			WorkWeek: week,
		}
	}

	for i := range out {
		row := &out[i]
		row.WorkdayHours = dayHours[dayKey{row.ID, row.Date}]
		row.WeekHours = weekHours[weekKey{row.ID, row.WorkWeek}]
		row.TotalHoursPayPeriod = periodHours[row.ID]

		row.OTDayMax = locations.Resolve(row.Location, rules.ParamOTDayMax, globals.OTDayMax)
		row.OTWeekMax = locations.Resolve(row.Location, rules.ParamOTWeekMax, globals.OTWeekMax)
		row.DTDayMax = locations.Resolve(row.Location, rules.ParamDTDayMax, globals.DTDayMax)

		row.WorkdayOTHours = math.Max(math.Min(row.WorkdayHours, row.DTDayMax)-row.OTDayMax, 0)
		row.WorkdayDTHours = math.Max(row.WorkdayHours-row.DTDayMax, 0)
	}

	// Per-week daily sums count each workday once even though the table has
	// one row per punch.
	sumOT := make(map[weekKey]float64)
	sumDT := make(map[weekKey]float64)
	seenDay := make(map[weekDayKey]bool)
	for i := range out {
		row := &out[i]
		dk := weekDayKey{row.ID, row.WorkWeek, row.Date}
		if seenDay[dk] {
			continue
		}
		seenDay[dk] = true
		wk := weekKey{row.ID, row.WorkWeek}
		sumOT[wk] += row.WorkdayOTHours
		sumDT[wk] += row.WorkdayDTHours
	}

	weekOTTotal := make(map[weekKey]float64)
	weekDTTotal := make(map[weekKey]float64)
	for i := range out {
		row := &out[i]
		wk := weekKey{row.ID, row.WorkWeek}
		row.SumWorkdayOTHours = sumOT[wk]
		row.SumWorkdayDTHours = sumDT[wk]

		row.WeekOTHoursGross = math.Max(0, row.WeekHours-row.OTWeekMax)
		row.WeekOTHoursNet = rules.RoundHalfEven(
			math.Max(0, row.WeekOTHoursGross-row.SumWorkdayOTHours-row.SumWorkdayDTHours), 6)

		row.TotalOTHoursWeek = row.SumWorkdayOTHours + row.WeekOTHoursNet
		row.TotalDTHoursWeek = row.SumWorkdayDTHours
		weekOTTotal[wk] = row.TotalOTHoursWeek
		weekDTTotal[wk] = row.TotalDTHoursWeek
	}

	periodOT := make(map[string]float64)
	periodDT := make(map[string]float64)
	for wk, total := range weekOTTotal {
		periodOT[wk.id] += total
	}
	for wk, total := range weekDTTotal {
		periodDT[wk.id] += total
	}
	for i := range out {
		row := &out[i]
		row.TotalOTHoursPayPeriod = rules.RoundHalfEven(periodOT[row.ID], 4)
		row.TotalDTHoursPayPeriod = rules.RoundHalfEven(periodDT[row.ID], 4)
	}

	return out
}

// AddConsecutiveDayHours computes the consecutive-day (7th-day-style)
// overtime rollup. The per-location threshold is inclusive, so the window is
// threshold+1 days. Within each employee the rows are scanned in date order;
// a gap other than one day breaks the streak, and the rolling hour sum only
// counts once the streak reaches the window.
func AddConsecutiveDayHours(rows []ByPunchRow, globals rules.Globals, locations rules.LocationConfig) []ByPunchRow {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].ID != rows[j].ID {
			return rows[i].ID < rows[j].ID
		}
		return rows[i].Date.Before(rows[j].Date)
	})

	groupStart := 0
	for i := 0; i <= len(rows); i++ {
		if i < len(rows) {
			rows[i].ConsecDaysBeforeOT = locations.Resolve(rows[i].Location, rules.ParamConsecDaysBeforeOT, globals.ConsecDaysBeforeOT)
		}
		if i == len(rows) || (i > groupStart && rows[i].ID != rows[groupStart].ID) {
			consecutiveForEmployee(rows[groupStart:i])
			groupStart = i
		}
	}
	return rows
}

func consecutiveForEmployee(rows []ByPunchRow) {
	if len(rows) == 0 {
		return
	}
	window := int(rows[0].ConsecDaysBeforeOT) + 1

	streak := 1
	rolling := 0.0
	for i := range rows {
		row := &rows[i]
		if i == 0 {
			streak = 1
		} else if daysBetween(rows[i-1].Date, row.Date) == 1 {
			streak++
		} else {
			streak = 1
		}

		if i >= window-1 {
			rolling = 0
			for j := i - window + 1; j <= i; j++ {
				rolling += rows[j].Hours
			}
			if streak >= window {
				row.HoursInConsecutiveDays = rules.RoundHalfEven(rolling, 4)
			}
		}

		anchor := row.Date.AddDate(0, 0, -(window - 1))
		row.FirstDayOfStreak = &anchor
	}
}

func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}

// AddPaidOTDT joins the OT and double-time hours actually paid from the
// register and derives the hour variances (worked minus paid). Employees
// missing from the register keep nil paid and nil variance.
func AddPaidOTDT(rows []ByPunchRow, wfn *register.Table) {
	for i := range rows {
		row := &rows[i]
		reg := wfn.ByIDX(row.ID)
		if reg == nil {
			continue
		}
		row.OTHoursPaid = floatPtr(reg.OTHours)
		row.DTHoursPaid = floatPtr(reg.DTHours)

		otVar := rules.RoundHalfEven(row.TotalOTHoursPayPeriod-reg.OTHours, 4)
		dtVar := rules.RoundHalfEven(row.TotalDTHoursPayPeriod-reg.DTHours, 4)
		row.OTVariance = &otVar
		row.DTVariance = &dtVar
	}
}

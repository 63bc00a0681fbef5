package punch

import (
	"time"

	"payguard/internal/domain/rules"
)

// Breaks of this many minutes or more separate shifts rather than punches
// within a shift.
const shiftBreakMinutes = 60

type dayKey struct {
	id   string
	date time.Time
}

type shiftKey struct {
	id    string
	shift int
}

// AddTotalHoursWorkday totals punch hours per employee per workday and
// repeats the total on every member row.
func AddTotalHoursWorkday(rows []Row) {
	totals := make(map[dayKey]float64)
	for i := range rows {
		totals[dayKey{rows[i].ID, rows[i].Date}] += rows[i].Hours
	}
	for i := range rows {
		rows[i].TotalWorkedHoursWorkday = totals[dayKey{rows[i].ID, rows[i].Date}]
	}
}

// AddTimeHelpers populates the previous/next punch columns within each
// employee group. Rows must already be sorted by ID and In Punch.
func AddTimeHelpers(rows []Row) {
	for i := range rows {
		if i > 0 && rows[i-1].ID == rows[i].ID {
			prev := &rows[i-1]
			rows[i].PrevInPunch = timePtr(prev.InPunch)
			rows[i].PrevOutPunch = timePtr(prev.OutPunch)
			rows[i].PrevDate = timePtr(prev.Date)
			rows[i].PrevHours = floatPtr(prev.Hours)
		}
		if i+1 < len(rows) && rows[i+1].ID == rows[i].ID {
			next := &rows[i+1]
			rows[i].NextInPunch = timePtr(next.InPunch)
			rows[i].NextOutPunch = timePtr(next.OutPunch)
			rows[i].NextDate = timePtr(next.Date)
			rows[i].NextHours = floatPtr(next.Hours)
		}
	}
}

// AddBreakTime derives the minutes between a punch and the employee's
// previous punch. The first punch for an employee has no break time, which
// downstream reads as "first punch of a shift", not as a zero-length break.
func AddBreakTime(rows []Row) {
	for i := range rows {
		if rows[i].PrevOutPunch != nil {
			minutes := rows[i].InPunch.Sub(*rows[i].PrevOutPunch).Minutes()
			rows[i].BreakTime = &minutes
		}
		if rows[i].NextInPunch != nil {
			minutes := rows[i].NextInPunch.Sub(rows[i].OutPunch).Minutes()
			rows[i].NextBreakTime = &minutes
		}
	}
}

// AddShifts groups punches into shifts: a punch starts a new shift when its
// break time reaches the shift threshold or when it is the employee's first
// punch. Shift numbers increase per employee, and each row carries its
// shift's total hours.
func AddShifts(rows []Row) {
	counters := make(map[string]int)
	shiftHours := make(map[shiftKey]float64)

	for i := range rows {
		row := &rows[i]
		row.NewShift = row.BreakTime == nil || *row.BreakTime >= shiftBreakMinutes
		if row.NewShift {
			counters[row.ID]++
		}
		row.ShiftNumber = counters[row.ID]
		shiftHours[shiftKey{row.ID, row.ShiftNumber}] += row.Hours
	}

	for i := range rows {
		rows[i].HoursWorkedShift = rules.RoundHalfEven(shiftHours[shiftKey{rows[i].ID, rows[i].ShiftNumber}], 4)
	}
}

// AddTwelveHourCheck flags shifts owed a 12-hour rest credit. The credit is
// due when the shift worked 12 hours or more and either had fewer than two
// qualifying breaks, or had exactly two but the second break started more
// than 10 hours into the shift. A late second break does not satisfy the
// 12-hour rest requirement.
func AddTwelveHourCheck(rows []Row) {
	starts := make(map[shiftKey]time.Time)
	seen := make(map[shiftKey]bool)
	breakCounts := make(map[shiftKey]int)
	firstBreakOut := make(map[shiftKey]time.Time)

	for i := range rows {
		row := &rows[i]
		key := shiftKey{row.ID, row.ShiftNumber}

		row.FirstPunchOfShift = !seen[key]
		if row.FirstPunchOfShift {
			starts[key] = row.InPunch
			seen[key] = true
		}

		row.IsBreak = row.BreakTime != nil && *row.BreakTime > 0 && !row.FirstPunchOfShift
		if row.IsBreak {
			breakCounts[key]++
			if breakCounts[key] == 1 {
				// The first break row's Out Punch is when the second break
				// begins.
				firstBreakOut[key] = row.OutPunch
			}
		}
	}

	for i := range rows {
		row := &rows[i]
		key := shiftKey{row.ID, row.ShiftNumber}
		row.ShiftStart = starts[key]
		row.BreakCount = breakCounts[key]

		if row.BreakCount == 2 {
			start := firstBreakOut[key]
			row.SecondBreakStart = timePtr(start)
			hours := start.Sub(row.ShiftStart).Hours()
			row.HoursToSecondBreak = &hours
		}

		switch {
		case row.HoursWorkedShift >= 12 && row.BreakCount < 2:
			row.TwelveHourCredit = true
		case row.HoursWorkedShift >= 12 && row.BreakCount >= 2 &&
			row.HoursToSecondBreak != nil && *row.HoursToSecondBreak > 10:
			row.TwelveHourCredit = true
		}
	}
}

// AddPunchLength staples rows within a shift into logical punches: a new
// logical punch begins at the first row of a shift or after any positive
// break. Each row carries the total hours of its logical punch, used to size
// qualifying spans for the missed-break test.
func AddPunchLength(rows []Row) {
	type punchKey struct {
		id     string
		shift  int
		number int
	}

	counters := make(map[shiftKey]int)
	started := make(map[shiftKey]bool)
	lengths := make(map[punchKey]float64)
	keys := make([]punchKey, len(rows))

	for i := range rows {
		row := &rows[i]
		sk := shiftKey{row.ID, row.ShiftNumber}
		row.NewPunch = !started[sk] || (row.BreakTime != nil && *row.BreakTime > 0)
		started[sk] = true
		if row.NewPunch {
			counters[sk]++
		}
		row.PunchNumberInShift = counters[sk]

		key := punchKey{row.ID, row.ShiftNumber, row.PunchNumberInShift}
		lengths[key] += row.Hours
		keys[i] = key
	}

	for i := range rows {
		rows[i].PunchLength = rules.RoundHalfEven(lengths[keys[i]], 4)
	}
}

func timePtr(t time.Time) *time.Time { return &t }

func floatPtr(f float64) *float64 { return &f }

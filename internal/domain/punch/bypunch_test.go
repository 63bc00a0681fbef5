package punch

import (
	"testing"
	"time"

	"payguard/internal/domain/register"
	"payguard/internal/domain/rules"
)

func TestDailyOvertimeAndDoubleTime(t *testing.T) {
	day := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	records := []map[string]string{
		record("ABC123", "Smith, Pat", day.Add(6*time.Hour), day.Add(20*time.Hour), 14),
	}

	result := runPipeline(t, records, Params{}, nil, nil)
	row := &result.ByPunch[0]

	// Daily OT accrues between the 8-hour and 12-hour marks; hours past 12
	// are double time, never counted in both buckets.
	if row.WorkdayOTHours != 4 {
		t.Fatalf("WorkdayOTHours = %v, want 4", row.WorkdayOTHours)
	}
	if row.WorkdayDTHours != 2 {
		t.Fatalf("WorkdayDTHours = %v, want 2", row.WorkdayDTHours)
	}
	if row.TotalOTHoursPayPeriod != 4 || row.TotalDTHoursPayPeriod != 2 {
		t.Fatalf("period totals = %v/%v, want 4/2", row.TotalOTHoursPayPeriod, row.TotalDTHoursPayPeriod)
	}
}

func TestWeeklyOvertimeNoDoubleDip(t *testing.T) {
	day := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	var records []map[string]string
	for d := 0; d < 5; d++ {
		in := day.AddDate(0, 0, d).Add(8 * time.Hour)
		records = append(records, record("ABC123", "Smith, Pat", in, in.Add(10*time.Hour), 10))
	}

	result := runPipeline(t, records, Params{}, nil, nil)
	row := &result.ByPunch[0]

	if row.WeekHours != 50 {
		t.Fatalf("WeekHours = %v, want 50", row.WeekHours)
	}
	if row.SumWorkdayOTHours != 10 {
		t.Fatalf("SumWorkdayOTHours = %v, want 10", row.SumWorkdayOTHours)
	}
	if row.WeekOTHoursGross != 10 {
		t.Fatalf("WeekOTHoursGross = %v, want 10", row.WeekOTHoursGross)
	}
	// All ten weekly OT hours were already captured as daily OT.
	if row.WeekOTHoursNet != 0 {
		t.Fatalf("WeekOTHoursNet = %v, want 0", row.WeekOTHoursNet)
	}
	if row.TotalOTHoursPayPeriod != 10 {
		t.Fatalf("TotalOTHoursPayPeriod = %v, want 10", row.TotalOTHoursPayPeriod)
	}
}

func TestLocationOvertimeOverride(t *testing.T) {
	day := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	records := []map[string]string{
		record("ABC123", "Smith, Pat", day.Add(8*time.Hour), day.Add(18*time.Hour), 10),
		record("XYZ456", "Lee, Sam", day.Add(8*time.Hour), day.Add(18*time.Hour), 10),
	}
	locations := rules.LocationConfig{
		"ABC": {rules.ParamOTDayMax: 10},
	}

	result := runPipeline(t, records, Params{Locations: locations}, nil, nil)

	byID := map[string]*ByPunchRow{}
	for i := range result.ByPunch {
		byID[result.ByPunch[i].ID] = &result.ByPunch[i]
	}

	abc := byID["ABC123"]
	if abc.OTDayMax != 10 {
		t.Fatalf("ABC OTDayMax = %v, want the override 10", abc.OTDayMax)
	}
	if abc.WorkdayOTHours != 0 {
		t.Fatalf("10-hour day under a 10-hour cap accrued OT: %v", abc.WorkdayOTHours)
	}

	xyz := byID["XYZ456"]
	if xyz.OTDayMax != 8 {
		t.Fatalf("XYZ OTDayMax = %v, want the global 8", xyz.OTDayMax)
	}
	if xyz.WorkdayOTHours != 2 {
		t.Fatalf("10-hour day under the global cap = %v OT, want 2", xyz.WorkdayOTHours)
	}
}

func TestConsecutiveDayRollup(t *testing.T) {
	day := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	var records []map[string]string
	for d := 0; d < 7; d++ {
		in := day.AddDate(0, 0, d).Add(9 * time.Hour)
		records = append(records, record("ABC123", "Smith, Pat", in, in.Add(8*time.Hour), 8))
	}

	result := runPipeline(t, records, Params{}, nil, nil)

	var sixth, seventh *ByPunchRow
	for i := range result.ByPunch {
		row := &result.ByPunch[i]
		if row.Date.Equal(day.AddDate(0, 0, 5)) {
			sixth = row
		}
		if row.Date.Equal(day.AddDate(0, 0, 6)) {
			seventh = row
		}
	}

	if sixth == nil || seventh == nil {
		t.Fatal("missing expected bypunch rows")
	}
	if sixth.HoursInConsecutiveDays != 0 {
		t.Fatalf("six straight days must not accrue yet, got %v", sixth.HoursInConsecutiveDays)
	}
	if seventh.HoursInConsecutiveDays != 56 {
		t.Fatalf("seventh straight day rollup = %v, want 56", seventh.HoursInConsecutiveDays)
	}
	if seventh.FirstDayOfStreak == nil || !seventh.FirstDayOfStreak.Equal(day) {
		t.Fatalf("first day of streak = %v, want %v", seventh.FirstDayOfStreak, day)
	}
}

func TestConsecutiveDayGapResets(t *testing.T) {
	day := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	var records []map[string]string
	for d := 0; d < 8; d++ {
		if d == 3 {
			continue
		}
		in := day.AddDate(0, 0, d).Add(9 * time.Hour)
		records = append(records, record("ABC123", "Smith, Pat", in, in.Add(8*time.Hour), 8))
	}

	result := runPipeline(t, records, Params{}, nil, nil)
	for i := range result.ByPunch {
		if result.ByPunch[i].HoursInConsecutiveDays != 0 {
			t.Fatalf("streak broken by a day off must not accrue: %+v", result.ByPunch[i])
		}
	}
}

func TestPaidOvertimeVariance(t *testing.T) {
	day := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	records := []map[string]string{
		record("ABC123", "Smith, Pat", day.Add(8*time.Hour), day.Add(18*time.Hour), 10),
		record("ZZZ999", "Kim, Alex", day.Add(8*time.Hour), day.Add(16*time.Hour), 8),
	}
	wfn := register.NewTable([]register.Row{{IDX: "ABC123", OTHours: 1.5, DTHours: 0}})

	result := runPipeline(t, records, Params{}, nil, wfn)

	for i := range result.ByPunch {
		row := &result.ByPunch[i]
		switch row.ID {
		case "ABC123":
			if row.OTHoursPaid == nil || *row.OTHoursPaid != 1.5 {
				t.Fatalf("OTHoursPaid = %v, want 1.5", row.OTHoursPaid)
			}
			if row.OTVariance == nil || *row.OTVariance != 0.5 {
				t.Fatalf("OTVariance = %v, want 0.5 (2 worked minus 1.5 paid)", row.OTVariance)
			}
		case "ZZZ999":
			if row.OTHoursPaid != nil || row.OTVariance != nil {
				t.Fatalf("employee absent from the register must stay nil: %+v", row)
			}
		}
	}
}

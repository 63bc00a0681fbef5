package punch

import (
	"errors"
	"strconv"
	"testing"
	"time"

	"payguard/internal/domain/register"
	"payguard/internal/domain/waiver"
)

func record(id, employee string, in, out time.Time, hours float64) map[string]string {
	return map[string]string{
		"ID":             id,
		"Employee":       employee,
		"In Punch":       in.Format("2006-01-02 15:04:05"),
		"Out Punch":      out.Format("2006-01-02 15:04:05"),
		"Totaled Amount": strconv.FormatFloat(hours, 'f', -1, 64),
	}
}

func runPipeline(t *testing.T, records []map[string]string, params Params, roster *waiver.Roster, wfn *register.Table) *Result {
	t.Helper()
	if roster == nil {
		roster = waiver.Normalize(nil)
	}
	if wfn == nil {
		wfn = register.NewTable(nil)
	}
	result, err := Process(records, "", params, roster, wfn)
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	return result
}

func TestProcessMissingColumns(t *testing.T) {
	records := []map[string]string{
		{"ID": "ABC123", "Employee": "Smith, Pat", "In Punch": "2024-07-01 09:00:00"},
	}
	_, err := Process(records, "", Params{}, waiver.Normalize(nil), register.NewTable(nil))

	var schemaErr *SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected SchemaError, got %v", err)
	}
	if len(schemaErr.Missing) != 2 {
		t.Fatalf("missing = %v, want Out Punch and Totaled Amount", schemaErr.Missing)
	}
}

func TestProcessStandardWeekNoOvertime(t *testing.T) {
	day := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	var records []map[string]string
	for d := 0; d < 5; d++ {
		in := day.AddDate(0, 0, d).Add(9 * time.Hour)
		records = append(records, record("ABC123", "Smith, Pat", in, in.Add(8*time.Hour), 8))
	}

	result := runPipeline(t, records, Params{}, nil, nil)
	if len(result.ByPunch) != 5 {
		t.Fatalf("expected 5 bypunch rows, got %d", len(result.ByPunch))
	}

	row := &result.ByPunch[0]
	if row.WorkWeek != 1 {
		t.Fatalf("WorkWeek = %d, want 1", row.WorkWeek)
	}
	if row.TotalHoursPayPeriod != 40 {
		t.Fatalf("TotalHoursPayPeriod = %v, want 40", row.TotalHoursPayPeriod)
	}
	if row.TotalOTHoursPayPeriod != 0 || row.TotalDTHoursPayPeriod != 0 {
		t.Fatalf("standard week accrued OT/DT: %v/%v", row.TotalOTHoursPayPeriod, row.TotalDTHoursPayPeriod)
	}
}

func TestProcessAnomalyVariance(t *testing.T) {
	day := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	records := []map[string]string{
		// 8 hours straight through with no break: one missed-break flag due.
		record("ABC123", "Smith, Pat", day.Add(9*time.Hour), day.Add(17*time.Hour), 8),
		// 4-hour shift: no flags, not in the register, so excluded entirely.
		record("ABC124", "Lee, Sam", day.Add(9*time.Hour), day.Add(13*time.Hour), 4),
	}
	wfn := register.NewTable([]register.Row{{IDX: "ABC123", BreakCreditHours: 0.5}})

	result := runPipeline(t, records, Params{}, nil, wfn)
	if len(result.Anomalies) != 1 {
		t.Fatalf("expected 1 anomaly row, got %d", len(result.Anomalies))
	}

	anomaly := result.Anomalies[0]
	if anomaly.ID != "ABC123" {
		t.Fatalf("anomaly for wrong employee: %s", anomaly.ID)
	}
	if anomaly.DidNotBreak != 1 || anomaly.DueBreakCredit != 1 {
		t.Fatalf("flags = %+v, want one missed break due", anomaly)
	}
	if anomaly.Variance != 0.5 {
		t.Fatalf("Variance = %v, want 0.5 (due minus paid)", anomaly.Variance)
	}
}

func TestProcessSplitShift(t *testing.T) {
	day := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	records := []map[string]string{
		record("ABC123", "Smith, Pat", day.Add(8*time.Hour), day.Add(11*time.Hour), 3),
		record("ABC123", "Smith, Pat", day.Add(13*time.Hour), day.Add(16*time.Hour), 3),
	}
	wfn := register.NewTable([]register.Row{{IDX: "ABC123", RegularRatePaid: 10}})

	result := runPipeline(t, records, Params{}, nil, wfn)

	var split *Row
	for i := range result.Rows {
		if SplitShiftMask(&result.Rows[i]) {
			split = &result.Rows[i]
		}
	}
	if split == nil {
		t.Fatal("expected a split-shift row")
	}
	if *split.SplitPaid != 60 {
		t.Fatalf("SplitPaid = %v, want 60", *split.SplitPaid)
	}
	if *split.SplitAtMinWage != 120.75 {
		t.Fatalf("SplitAtMinWage = %v, want 17.25 x 7", *split.SplitAtMinWage)
	}
	if *split.SplitShiftDue != 60.75 {
		t.Fatalf("SplitShiftDue = %v, want 60.75", *split.SplitShiftDue)
	}
}

func TestProcessWaiverGating(t *testing.T) {
	day := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	roster := waiver.Normalize([]waiver.Record{
		{Name: "ABC Lee, Sam", Check: "x"},
	})

	records := []map[string]string{
		// Exactly 6 hours, waived: inside the waiver window.
		record("ABC125", "Lee, Sam", day.Add(9*time.Hour), day.Add(15*time.Hour), 6),
		// Exactly 6 hours, no waiver on file.
		record("ABC126", "Kim, Alex", day.Add(9*time.Hour), day.Add(15*time.Hour), 6),
	}

	result := runPipeline(t, records, Params{}, roster, nil)
	flags := map[string]int{}
	for _, row := range result.Rows {
		flags[row.ID] += row.DidNotBreak
	}
	if flags["ABC125"] != 0 {
		t.Fatalf("waived 6-hour shift flagged: %d", flags["ABC125"])
	}
	if flags["ABC126"] != 1 {
		t.Fatalf("unwaived 6-hour shift not flagged: %d", flags["ABC126"])
	}

	// Past 6 hours the waiver no longer excuses the missed break.
	records = []map[string]string{
		record("ABC125", "Lee, Sam", day.Add(9*time.Hour), day.Add(15*time.Hour+36*time.Second), 6.01),
	}
	result = runPipeline(t, records, Params{}, roster, nil)
	if result.Rows[0].DidNotBreak != 1 {
		t.Fatal("6.01-hour waived shift must still flag")
	}
}

func TestProcessStapleCount(t *testing.T) {
	day := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	records := []map[string]string{
		record("ABC123", "Smith, Pat", day.Add(15*time.Hour), day.Add(24*time.Hour), 9),
		record("ABC123", "Smith, Pat", day.Add(24*time.Hour), day.Add(27*time.Hour), 3),
	}

	result := runPipeline(t, records, Params{}, nil, nil)
	if result.Stapled != 1 {
		t.Fatalf("Stapled = %d, want 1", result.Stapled)
	}
	if len(result.Rows) != 1 {
		t.Fatalf("expected 1 surviving row, got %d", len(result.Rows))
	}
	if result.Rows[0].Hours != 12 {
		t.Fatalf("stapled hours = %v, want 12", result.Rows[0].Hours)
	}
}

package punch

import (
	"time"

	"payguard/internal/domain/register"
	"payguard/internal/domain/rules"
	"payguard/internal/domain/waiver"
	"payguard/internal/platform/clientcfg"
)

// Params are the invocation-wide inputs of the punch pipeline.
type Params struct {
	Globals   rules.Globals
	Locations rules.LocationConfig
	FirstDate time.Time
}

// Result carries the three tables the pipeline produces.
type Result struct {
	Rows      []Row
	ByPunch   []ByPunchRow
	Anomalies []AnomalyRow
	Stapled   int
}

// Process runs the punch reconstruction and compliance pipeline over raw
// records for one client's pay period. Each stage fully materializes its
// output before the next begins; later stages aggregate over the whole
// table. The only fatal condition is a missing required column after client
// normalization; every lookup miss degrades to nil in the dependent columns.
func Process(records []map[string]string, clientID string, params Params, roster *waiver.Roster, wfn *register.Table) (*Result, error) {
	params.Globals = params.Globals.Normalize()

	records = NormalizeClientData(records, clientcfg.Lookup(clientID))
	if err := ValidateColumns(records); err != nil {
		return nil, err
	}

	rows, err := ParseRows(records)
	if err != nil {
		return nil, err
	}

	before := len(rows)
	rows = SortAndStaple(rows)
	stapled := before - len(rows)

	// Week numbering anchors on the earliest workday when the caller does not
	// pin the pay period start.
	if params.FirstDate.IsZero() {
		for i := range rows {
			if params.FirstDate.IsZero() || rows[i].Date.Before(params.FirstDate) {
				params.FirstDate = rows[i].Date
			}
		}
	}

	AddTotalHoursWorkday(rows)
	AddTimeHelpers(rows)
	AddPaidBreakCredit(rows, wfn)
	AddWaiverCheck(rows, roster)
	AddBreakTime(rows)
	AddShifts(rows)
	AddTwelveHourCheck(rows)
	AddSplitShift(rows, wfn, params.Globals.MinWage)

	bypunch := CreateByPunch(rows, params.Globals, params.Locations, params.FirstDate)
	bypunch = AddConsecutiveDayHours(bypunch, params.Globals, params.Locations)
	AddPaidOTDT(bypunch, wfn)

	AddPunchLength(rows)
	anomalies := CreateAnomalies(rows)

	return &Result{
		Rows:      rows,
		ByPunch:   bypunch,
		Anomalies: anomalies,
		Stapled:   stapled,
	}, nil
}

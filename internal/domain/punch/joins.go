package punch

import (
	"payguard/internal/domain/register"
	"payguard/internal/domain/waiver"
)

// AddPaidBreakCredit pulls the paid break-credit hours from the register by
// punch ID against the register IDX. Employees absent from the register get
// nil, which downstream treats as nothing paid.
func AddPaidBreakCredit(rows []Row, wfn *register.Table) {
	for i := range rows {
		if reg := wfn.ByIDX(rows[i].ID); reg != nil {
			rows[i].PaidBreakCredit = floatPtr(reg.BreakCreditHours)
		}
	}
}

// AddWaiverCheck derives the location code from the punch ID, builds the
// composite roster key, and joins the waiver status. Names not on the roster
// get nil: no waiver on file.
func AddWaiverCheck(rows []Row, roster *waiver.Roster) {
	for i := range rows {
		row := &rows[i]
		if len(row.ID) >= 3 {
			row.Location = row.ID[:3]
		} else {
			row.Location = row.ID
		}
		row.WaiverLookup = row.Location + " " + row.Employee
		if value, ok := roster.Lookup(row.WaiverLookup); ok {
			row.WaiverOnFile = &value
		}
	}
}

// AddSplitShift computes the split-shift premium comparison. Split Paid is
// the straight rate over the current and previous punch hours; the minimum
// wage figure adds one hour for the reporting-time premium. Rows without a
// previous punch or without a register rate stay nil.
func AddSplitShift(rows []Row, wfn *register.Table, minWage float64) {
	for i := range rows {
		row := &rows[i]
		if reg := wfn.ByIDX(row.ID); reg != nil {
			row.RegularRatePaid = floatPtr(reg.RegularRatePaid)
		}
		if row.PrevHours == nil {
			continue
		}

		atMinWage := minWage * (1 + row.Hours + *row.PrevHours)
		row.SplitAtMinWage = &atMinWage

		if row.RegularRatePaid != nil {
			paid := *row.RegularRatePaid * (row.Hours + *row.PrevHours)
			row.SplitPaid = &paid
			due := atMinWage - paid
			row.SplitShiftDue = &due
		}
	}
}

package punch

import "time"

// Row is one clock-in/clock-out pair for an employee, enriched by the
// pipeline stages. Pointer fields depend on a neighbor row or an external
// lookup; nil means "no previous punch" or "not on file", which downstream
// predicates treat as not applicable rather than zero.
type Row struct {
	ID       string    `json:"ID"`
	Employee string    `json:"Employee"`
	InPunch  time.Time `json:"In Punch"`
	OutPunch time.Time `json:"Out Punch"`
	Hours    float64   `json:"Totaled Amount"`
	Date     time.Time `json:"Date"`
	Flag     string    `json:"Flag,omitempty"`

	TotalWorkedHoursWorkday float64 `json:"Total Worked Hours Workday"`

	PrevInPunch  *time.Time `json:"Prev In Punch,omitempty"`
	PrevOutPunch *time.Time `json:"Prev Out Punch,omitempty"`
	NextInPunch  *time.Time `json:"Next In Punch,omitempty"`
	NextOutPunch *time.Time `json:"Next Out Punch,omitempty"`
	PrevDate     *time.Time `json:"Prev Date,omitempty"`
	NextDate     *time.Time `json:"Next Date,omitempty"`
	PrevHours    *float64   `json:"Prev Punch Length (hrs),omitempty"`
	NextHours    *float64   `json:"Next Punch Length (hrs),omitempty"`

	PaidBreakCredit *float64 `json:"Paid Break Credit (hrs)"`
	Location        string   `json:"Location"`
	WaiverLookup    string   `json:"Waiver Lookup"`
	WaiverOnFile    *string  `json:"Waiver on File?"`

	BreakTime     *float64 `json:"Break Time (min)"`
	NextBreakTime *float64 `json:"Next Break Time (min)"`

	NewShift         bool    `json:"New Shift?"`
	ShiftNumber      int     `json:"Shift Number"`
	HoursWorkedShift float64 `json:"Hours Worked Shift"`

	ShiftStart         time.Time  `json:"Shift Start"`
	FirstPunchOfShift  bool       `json:"First Punch of Shift?"`
	IsBreak            bool       `json:"Is Break?"`
	BreakCount         int        `json:"Break Count"`
	SecondBreakStart   *time.Time `json:"2nd Break Start,omitempty"`
	HoursToSecondBreak *float64   `json:"Hours to 2nd Break,omitempty"`
	TwelveHourCredit   bool       `json:"12hr Credit Due"`

	RegularRatePaid *float64 `json:"Regular Rate Paid"`
	SplitPaid       *float64 `json:"Split Paid ($)"`
	SplitAtMinWage  *float64 `json:"Split at Min Wage ($)"`
	SplitShiftDue   *float64 `json:"Split Shift Due ($)"`

	NewPunch           bool    `json:"Is New Punch?"`
	PunchNumberInShift int     `json:"Punch Number in Shift"`
	PunchLength        float64 `json:"Punch Length (hrs)"`

	ShortBreak  int `json:"Short Break"`
	DidNotBreak int `json:"Did Not Break"`
	OverTwelve  int `json:"Over Twelve"`
}

// ByPunchRow is one punch in the OT/DT aggregation table. Group totals are
// repeated on every row sharing the group key, so the table serializes flat.
type ByPunchRow struct {
	Employee string    `json:"Employee"`
	ID       string    `json:"ID"`
	Location string    `json:"Location"`
	Date     time.Time `json:"Date"`
	Hours    float64   `json:"Totaled Amount"`
	InPunch  time.Time `json:"In Punch"`
	OutPunch time.Time `json:"Out Punch"`

	WorkdayHours        float64 `json:"Workday Hours"`
	WorkWeek            int     `json:"Work Week"`
	WeekHours           float64 `json:"Week Hours"`
	TotalHoursPayPeriod float64 `json:"Total Hours Pay Period"`

	OTDayMax  float64 `json:"OT Day Max"`
	OTWeekMax float64 `json:"OT Week Max"`
	DTDayMax  float64 `json:"DT Day Max"`

	WorkdayOTHours    float64 `json:"Workday OT Hours"`
	SumWorkdayOTHours float64 `json:"Sum of Workday OT Hours"`
	WorkdayDTHours    float64 `json:"Workday DT Hours"`
	SumWorkdayDTHours float64 `json:"Sum of Workday DT Hours"`

	WeekOTHoursGross float64 `json:"Week OT Hours Gross"`
	WeekOTHoursNet   float64 `json:"Week OT Hours Net"`
	TotalOTHoursWeek float64 `json:"Total OT Hours Week"`
	TotalDTHoursWeek float64 `json:"Total DT Hours Week"`

	TotalOTHoursPayPeriod float64 `json:"Total OT Hours Pay Period"`
	TotalDTHoursPayPeriod float64 `json:"Total DT Hours Pay Period"`

	ConsecDaysBeforeOT     float64    `json:"Number of Consec Days Before OT"`
	HoursInConsecutiveDays float64    `json:"Hours in Consecutive Days"`
	FirstDayOfStreak       *time.Time `json:"First day of Streak,omitempty"`

	OTHoursPaid *float64 `json:"OT Hours Paid"`
	DTHoursPaid *float64 `json:"DT Hours Paid"`
	OTVariance  *float64 `json:"OT Variance (hrs)"`
	DTVariance  *float64 `json:"DT Variance (hrs)"`
}

// AnomalyRow is the per-employee break-credit rollup.
type AnomalyRow struct {
	ID              string  `json:"ID"`
	Employee        string  `json:"Employee"`
	PaidBreakCredit float64 `json:"Paid Break Credit (hrs)"`
	ShortBreak      int     `json:"Short Break"`
	DidNotBreak     int     `json:"Did Not Break"`
	OverTwelve      int     `json:"Over Twelve"`
	DueBreakCredit  float64 `json:"Due Break Credit (hrs)"`
	Variance        float64 `json:"Variance"`
}

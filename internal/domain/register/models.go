package register

// Row is one payroll-register line: one employee for one pay period, as
// exported by the payroll system, plus the columns the rate engine derives.
// The register is read once per invocation and used as a read-only lookup
// source by the punch pipeline.
type Row struct {
	CompanyCode    string `json:"CO."`
	FileNumber     string `json:"FILE#"`
	PayrollName    string `json:"Payroll Name"`
	JobTitle       string `json:"Job Title Description"`
	FLSACode       string `json:"FLSA Code"`
	PositionStatus string `json:"Position Status"`
	HireDate       string `json:"HIREDATE"`
	TerminationDate string `json:"Termination Date"`

	RegularRatePaid float64 `json:"Regular Rate Paid"`
	REGHours        float64 `json:"REG"`
	OTHours         float64 `json:"OT"`
	DTHours         float64 `json:"DBLTIME HRS"`
	SickHours       float64 `json:"S_Sick Pay_Hours"`
	VacationHours   float64 `json:"V_Vacation_Hours"`

	RegularEarningsTotal  float64 `json:"Regular Earnings Total"`
	OvertimeEarningsTotal float64 `json:"Overtime Earnings Total"`
	DoubleTimeEarnings    float64 `json:"D_Double Time_Additional Earnings"`
	SickEarnings          float64 `json:"S_Sick Pay_Earnings"`
	VacationEarnings      float64 `json:"V_Vacation_Earnings"`

	MiscAdjustFLSAEarnings float64 `json:"A_MISC ADJUST_flsa earnings"`
	CommissionEarnings     float64 `json:"C_Ee Commission_Additional Earnings"`
	AutoGratuityEarnings   float64 `json:"E_Auto Gratuities_Additional Earnings"`
	RestaurantSvcCharge    float64 `json:"X_RESTR SVC CHG_Additional Earnings"`
	BellmanSvcCharge       float64 `json:"Y_BELLMANSVCCHG_Additional Earnings"`
	BonusEarnings          float64 `json:"B_Bonus_Additional Earnings"`

	BreakCreditEarnings float64 `json:"J_Break Credits_Additional Earnings"`
	BreakCreditHours    float64 `json:"J_Break Credits_Additional Hours"`
	RestCreditEarnings  float64 `json:"RC_Rest Credit_Earnings"`
	RestCreditHours     float64 `json:"RC - Rest Credit Hours"`

	// Derived columns. IDX is the join key used by the punch pipeline.
	IDX string `json:"IDX"`

	BaseRate           float64 `json:"Base Rate"`
	NonDiscEarnings    string  `json:"Non-Disc Earnings"`
	TotalNonDiscWage   float64 `json:"Total Non Discretionary Wage"`
	NonDiscRegularRate float64 `json:"Regular Rate of Pay for Non Discretionary Wages"`
	NonDiscOTPremium   float64 `json:"OT for Non Discretionary Income"`

	OTRateStraight float64 `json:"1.5x OT rate based on straight hourly rate"`
	OTRate         float64 `json:"1.5x OT Rate"`
	OTWorked       float64 `json:"1.5 OT Worked"`
	OTEarningsDue  float64 `json:"1.5 OT Earnings Due"`
	ActualPayCheck float64 `json:"Actual Pay Check"`
	Variance       float64 `json:"Variance"`

	DoubleTimeRate     float64 `json:"Double Time Rate"`
	DoubleTimeHours    float64 `json:"Double Time Hours"`
	DoubleTimeDue      float64 `json:"Double Time Due"`
	ActualPayCheckDble float64 `json:"Actual Pay Check Dble"`
	VarianceDble       float64 `json:"Variance Dble"`

	RROP                float64  `json:"RROP"`
	BreakCreditDue      float64  `json:"Break Credit Due"`
	ActualPayBreakCred  float64  `json:"Actual Pay BrkCrd"`
	VarianceBreakCred   float64  `json:"Variance BrkCrd"`
	BreakCreditPerHour  *float64 `json:"Break Credit Due / Break Credit Hours"`
	RestCreditDue       float64  `json:"Rest Credit Due"`
	ActualPayRestCred   float64  `json:"Actual Pay RestCrd"`
	VarianceRestCred    float64  `json:"Variance RestCrd"`
	RestCreditPerHour   *float64 `json:"Rest Credit Due / Rest Credit Hours"`
	SickCreditHours     float64  `json:"Sick Credit Hours"`
	RROPSick            float64  `json:"RROP Sick"`
	SickCreditDue       float64  `json:"Sick Credit Due"`
	SickPaid            float64  `json:"Sick Paid"`
	VarianceSick        float64  `json:"Variance Sick"`
	SickCreditPerHour   *float64 `json:"Sick Credit Due / Sick Credit Hours"`

	MinWage           float64 `json:"Min Wage"`
	StateMinWage      float64 `json:"Cal Min Wage"`
	PayPeriodsPerYear float64 `json:"Pay Periods per Year"`
	MinWage40         float64 `json:"Min Wage 40"`

	FLSACheck   string `json:"FLSA Check"`
	MinimumWage string `json:"Minimum Wage"`
	NonActive   string `json:"Non-Active"`
}

// Table wraps processed register rows with an IDX index for the punch
// pipeline's lookups. The index is built once per invocation and borrowed
// read-only by the join steps.
type Table struct {
	Rows  []Row
	byIDX map[string]*Row
}

func NewTable(rows []Row) *Table {
	t := &Table{Rows: rows, byIDX: make(map[string]*Row, len(rows))}
	for i := range t.Rows {
		t.byIDX[t.Rows[i].IDX] = &t.Rows[i]
	}
	return t
}

// ByIDX returns the register row for the given punch ID, or nil when the
// employee is absent from the register.
func (t *Table) ByIDX(id string) *Row {
	if t == nil {
		return nil
	}
	return t.byIDX[id]
}

package rules

import (
	"math"
	"time"
)

// Global fallbacks applied when the caller does not pass parameters and no
// location override exists.
const (
	DefaultMinWage            = 17.25
	DefaultStateMinWage       = 16.50
	DefaultPayPeriodsPerYear  = 26
	DefaultOTDayMax           = 8.0
	DefaultOTWeekMax          = 40.0
	DefaultDTDayMax           = 12.0
	DefaultConsecDaysBeforeOT = 6
)

// Override parameter names accepted in a location config entry.
const (
	ParamMinWage            = "min_wage"
	ParamStateMinWage       = "state_min_wage"
	ParamPayPeriodsPerYear  = "pay_periods_per_year"
	ParamOTDayMax           = "ot_day_max"
	ParamOTWeekMax          = "ot_week_max"
	ParamDTDayMax           = "dt_day_max"
	ParamConsecDaysBeforeOT = "number_of_consec_days_before_ot"
)

// Globals carries the pay-period-wide compliance parameters for one
// invocation. Zero values are replaced by the defaults via Normalize.
type Globals struct {
	MinWage            float64 `json:"minWage"`
	StateMinWage       float64 `json:"stateMinWage"`
	PayPeriodsPerYear  float64 `json:"payPeriodsPerYear"`
	OTDayMax           float64 `json:"otDayMax"`
	OTWeekMax          float64 `json:"otWeekMax"`
	DTDayMax           float64 `json:"dtDayMax"`
	ConsecDaysBeforeOT float64 `json:"consecDaysBeforeOT"`
}

// Normalize fills unset parameters with the global defaults.
func (g Globals) Normalize() Globals {
	if g.MinWage == 0 {
		g.MinWage = DefaultMinWage
	}
	if g.StateMinWage == 0 {
		g.StateMinWage = DefaultStateMinWage
	}
	if g.PayPeriodsPerYear == 0 {
		g.PayPeriodsPerYear = DefaultPayPeriodsPerYear
	}
	if g.OTDayMax == 0 {
		g.OTDayMax = DefaultOTDayMax
	}
	if g.OTWeekMax == 0 {
		g.OTWeekMax = DefaultOTWeekMax
	}
	if g.DTDayMax == 0 {
		g.DTDayMax = DefaultDTDayMax
	}
	if g.ConsecDaysBeforeOT == 0 {
		g.ConsecDaysBeforeOT = DefaultConsecDaysBeforeOT
	}
	return g
}

// LocationConfig maps a location code to its parameter overrides. A missing
// location or missing parameter falls back to the global value, never to zero.
type LocationConfig map[string]map[string]float64

func (c LocationConfig) Resolve(location, param string, global float64) float64 {
	overrides, ok := c[location]
	if !ok {
		return global
	}
	value, ok := overrides[param]
	if !ok {
		return global
	}
	return value
}

// RoundHalfEven rounds to the given number of decimal places with ties going
// to the even neighbor, matching the rounding the register export was
// reconciled against.
func RoundHalfEven(v float64, places int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	pow := math.Pow(10, float64(places))
	return math.RoundToEven(v*pow) / pow
}

// SafeDiv returns num/den, or 0 when the denominator is zero. Due amounts are
// computed through this so variances are always defined.
func SafeDiv(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

// Ratio returns num/den as a nullable display value: nil when the denominator
// is zero.
func Ratio(num, den float64, places int) *float64 {
	if den == 0 {
		return nil
	}
	r := RoundHalfEven(num/den, places)
	return &r
}

// WeekIndex returns the 1-based work-week index of date relative to the pay
// period start. The division floors, so dates before the anchor land in week
// zero or below instead of colliding with the first real week.
func WeekIndex(date, firstDate time.Time) int {
	days := int(math.Floor(date.Sub(firstDate).Hours() / 24))
	return int(math.Floor(float64(days)/7)) + 1
}

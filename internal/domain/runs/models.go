package runs

import (
	"time"

	"payguard/internal/domain/punch"
	"payguard/internal/domain/register"
	"payguard/internal/domain/results"
	"payguard/internal/domain/rules"
	"payguard/internal/domain/waiver"
)

const (
	StatusQueued    = "queued"
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Run is the persisted record of one processed pay period.
type Run struct {
	ID          string     `json:"id"`
	ClientID    string     `json:"client_id"`
	Status      string     `json:"status"`
	Error       string     `json:"error,omitempty"`
	TARows      int        `json:"ta_rows"`
	ByPunchRows int        `json:"bypunch_rows"`
	AnomalyRows int        `json:"anomaly_rows"`
	WFNRows     int        `json:"wfn_rows"`
	CreatedAt   time.Time  `json:"created_at"`
	FinishedAt  *time.Time `json:"finished_at,omitempty"`
}

// Request is one client's pay period: the three input tables plus optional
// parameter overrides. Omitted parameters fall back to server defaults.
type Request struct {
	ClientID  string                `json:"client_id"`
	TA        []map[string]string   `json:"ta"`
	WFN       []register.Row        `json:"wfn"`
	Waiver    []waiver.Record       `json:"waiver"`
	Params    *rules.Globals        `json:"params,omitempty"`
	Locations rules.LocationConfig  `json:"location_params,omitempty"`
	FirstDate string                `json:"first_date,omitempty"`
}

// Outcome bundles the run record, the report, and the four output tables.
// The tables serialize under their stable column names.
type Outcome struct {
	Run       Run                `json:"run"`
	Report    *results.Report    `json:"report"`
	Rows      []punch.Row        `json:"ta"`
	ByPunch   []punch.ByPunchRow `json:"bypunch"`
	Anomalies []punch.AnomalyRow `json:"anomalies"`
	WFN       []register.Row     `json:"wfn"`
}

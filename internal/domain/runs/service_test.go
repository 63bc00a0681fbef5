package runs

import (
	"context"
	"errors"
	"testing"

	"payguard/internal/domain/register"
	"payguard/internal/domain/rules"
	"payguard/internal/platform/jobs"
)

func newTestService() *Service {
	return NewService(nil, jobs.New(nil), nil, rules.Globals{})
}

func taRecords() []map[string]string {
	return []map[string]string{{
		"ID":             "ABC123",
		"Employee":       "Smith, Pat",
		"In Punch":       "2024-07-01 09:00:00",
		"Out Punch":      "2024-07-01 17:00:00",
		"Totaled Amount": "8",
	}}
}

func TestProcessSyncValidation(t *testing.T) {
	svc := newTestService()

	_, _, err := svc.ProcessSync(context.Background(), Request{TA: taRecords()})
	if !errors.Is(err, ErrMissingClientID) {
		t.Fatalf("expected ErrMissingClientID, got %v", err)
	}

	_, _, err = svc.ProcessSync(context.Background(), Request{ClientID: "demo_client"})
	if !errors.Is(err, ErrNoPunchData) {
		t.Fatalf("expected ErrNoPunchData, got %v", err)
	}

	_, _, err = svc.ProcessSync(context.Background(), Request{
		ClientID:  "demo_client",
		TA:        taRecords(),
		FirstDate: "07/01/2024",
	})
	if !errors.Is(err, ErrBadFirstDate) {
		t.Fatalf("expected ErrBadFirstDate, got %v", err)
	}
}

func TestProcessSyncWithoutDatabase(t *testing.T) {
	svc := newTestService()

	outcome, result, err := svc.ProcessSync(context.Background(), Request{
		ClientID: "demo_client",
		TA:       taRecords(),
	})
	if err != nil {
		t.Fatalf("process: %v", err)
	}

	if outcome.Run.Status != StatusCompleted {
		t.Fatalf("run status = %s, want completed", outcome.Run.Status)
	}
	if outcome.Run.TARows != 1 {
		t.Fatalf("TARows = %d, want 1", outcome.Run.TARows)
	}
	if outcome.Report == nil || !outcome.Report.Success {
		t.Fatal("report missing or unsuccessful")
	}
	if result == nil || len(result.ByPunch) != 1 {
		t.Fatalf("unexpected pipeline result: %+v", result)
	}
}

func TestProcessSyncReturnsOutputTables(t *testing.T) {
	svc := newTestService()

	outcome, result, err := svc.ProcessSync(context.Background(), Request{
		ClientID: "demo_client",
		TA:       taRecords(),
		WFN: []register.Row{{
			CompanyCode:          "ABC",
			FileNumber:           "123",
			PayrollName:          "Smith, Pat",
			REGHours:             40,
			RegularEarningsTotal: 800,
			OTHours:              1.5,
		}},
	})
	if err != nil {
		t.Fatalf("process: %v", err)
	}

	if len(outcome.Rows) != len(result.Rows) || len(outcome.Rows) != 1 {
		t.Fatalf("ta table rows = %d, want 1", len(outcome.Rows))
	}
	if len(outcome.ByPunch) != 1 || len(outcome.Anomalies) != 0 {
		t.Fatalf("bypunch = %d, anomalies = %d", len(outcome.ByPunch), len(outcome.Anomalies))
	}
	if len(outcome.WFN) != 1 || outcome.WFN[0].IDX == "" {
		t.Fatalf("wfn table not enriched: %+v", outcome.WFN)
	}
	if outcome.Rows[0].Employee != "Smith, Pat" || outcome.ByPunch[0].ID != "ABC123" {
		t.Fatalf("table rows = %+v / %+v", outcome.Rows[0], outcome.ByPunch[0])
	}
}

func TestProcessSyncSchemaFailure(t *testing.T) {
	svc := newTestService()

	_, _, err := svc.ProcessSync(context.Background(), Request{
		ClientID: "demo_client",
		TA:       []map[string]string{{"ID": "ABC123"}},
	})
	if err == nil {
		t.Fatal("expected schema error for punch data missing columns")
	}
}

func TestStartAsyncQueues(t *testing.T) {
	svc := newTestService()

	run, err := svc.StartAsync(context.Background(), Request{
		ClientID: "demo_client",
		TA:       taRecords(),
	})
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if run.Status != StatusQueued {
		t.Fatalf("run status = %s, want queued", run.Status)
	}
	if run.ID == "" {
		t.Fatal("run must get an id")
	}
}

func TestGetRunWithoutDatabase(t *testing.T) {
	svc := newTestService()
	if _, err := svc.GetRun(context.Background(), "anything"); !errors.Is(err, ErrRunNotFound) {
		t.Fatalf("expected ErrRunNotFound, got %v", err)
	}
}

package runs

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"payguard/internal/domain/punch"
	"payguard/internal/domain/register"
	"payguard/internal/domain/results"
	"payguard/internal/domain/rules"
	"payguard/internal/domain/waiver"
	"payguard/internal/platform/jobs"
	"payguard/internal/platform/metrics"
)

// Service runs pay-period processing. Persistence is best effort: a database
// outage downgrades to a warning and the caller still gets the report.
type Service struct {
	store    *Store
	jobs     *jobs.Service
	metrics  *metrics.Collector
	defaults rules.Globals
}

func NewService(store *Store, jobSvc *jobs.Service, collector *metrics.Collector, defaults rules.Globals) *Service {
	return &Service{store: store, jobs: jobSvc, metrics: collector, defaults: defaults}
}

// ProcessSync executes a run inline and returns the full report.
func (s *Service) ProcessSync(ctx context.Context, req Request) (*Outcome, *punch.Result, error) {
	run, err := s.newRun(req)
	if err != nil {
		return nil, nil, err
	}
	if s.store != nil {
		if err := s.store.CreateRun(ctx, run); err != nil {
			slog.Warn("run insert failed, continuing without persistence", "runId", run.ID, "err", err)
		}
	}
	return s.execute(ctx, run, req)
}

// StartAsync queues a run and returns immediately with its queued record.
func (s *Service) StartAsync(ctx context.Context, req Request) (*Run, error) {
	run, err := s.newRun(req)
	if err != nil {
		return nil, err
	}
	if s.store != nil {
		if err := s.store.CreateRun(ctx, run); err != nil {
			slog.Warn("run insert failed, continuing without persistence", "runId", run.ID, "err", err)
		}
	}

	queued := s.jobs.Enqueue(jobs.JobProcessRun, req.ClientID, func(jobCtx context.Context) (any, error) {
		outcome, _, err := s.execute(jobCtx, run, req)
		if err != nil {
			return map[string]any{"runId": run.ID}, err
		}
		return map[string]any{"runId": run.ID, "rows": outcome.Run.TARows}, nil
	})
	if !queued {
		return nil, ErrQueueFull
	}
	return &run, nil
}

func (s *Service) GetRun(ctx context.Context, runID string) (*Run, error) {
	if s.store == nil {
		return nil, ErrRunNotFound
	}
	return s.store.GetRun(ctx, runID)
}

func (s *Service) GetRunReport(ctx context.Context, runID string) (*results.Report, error) {
	if s.store == nil {
		return nil, ErrRunNotFound
	}
	return s.store.GetRunReport(ctx, runID)
}

func (s *Service) ListRuns(ctx context.Context, clientID string, limit int) ([]Run, error) {
	if s.store == nil {
		return nil, nil
	}
	return s.store.ListRuns(ctx, clientID, limit)
}

func (s *Service) newRun(req Request) (Run, error) {
	if strings.TrimSpace(req.ClientID) == "" {
		return Run{}, ErrMissingClientID
	}
	if len(req.TA) == 0 {
		return Run{}, ErrNoPunchData
	}
	if req.FirstDate != "" {
		if _, err := time.Parse("2006-01-02", req.FirstDate); err != nil {
			return Run{}, ErrBadFirstDate
		}
	}
	return Run{
		ID:        uuid.NewString(),
		ClientID:  req.ClientID,
		Status:    StatusQueued,
		CreatedAt: time.Now().UTC(),
	}, nil
}

func (s *Service) execute(ctx context.Context, run Run, req Request) (*Outcome, *punch.Result, error) {
	if s.store != nil {
		if err := s.store.MarkRunning(ctx, run.ID); err != nil {
			slog.Warn("run status update failed", "runId", run.ID, "err", err)
		}
	}

	globals := s.defaults
	if req.Params != nil {
		globals = *req.Params
	}
	globals = globals.Normalize()

	var firstDate time.Time
	if req.FirstDate != "" {
		firstDate, _ = time.Parse("2006-01-02", req.FirstDate)
	}

	waiverStart := time.Now()
	roster := waiver.Normalize(req.Waiver)
	waiverMS := msSince(waiverStart)

	wfnStart := time.Now()
	wfn := register.Process(req.WFN, globals, req.Locations)
	wfnMS := msSince(wfnStart)

	taStart := time.Now()
	result, err := punch.Process(req.TA, req.ClientID, punch.Params{
		Globals:   globals,
		Locations: req.Locations,
		FirstDate: firstDate,
	}, roster, wfn)
	taMS := msSince(taStart)

	if err != nil {
		run.Status = StatusFailed
		run.Error = err.Error()
		s.finishRun(ctx, run, nil)
		if s.metrics != nil {
			s.metrics.RecordRun(0, true)
		}
		return nil, nil, err
	}

	report := results.Assemble(result.Rows, result.ByPunch, result.Anomalies, wfn, roster, result.Stapled, results.Timings{
		TAProcessMS:     taMS,
		WFNProcessMS:    wfnMS,
		WaiverProcessMS: waiverMS,
	})

	run.Status = StatusCompleted
	run.TARows = len(result.Rows)
	run.ByPunchRows = len(result.ByPunch)
	run.AnomalyRows = len(result.Anomalies)
	run.WFNRows = len(wfn.Rows)

	s.finishRun(ctx, run, report)
	if s.store != nil {
		if err := s.store.UpsertPunchRows(ctx, req.ClientID, result.Rows); err != nil {
			slog.Warn("punch row upsert failed", "runId", run.ID, "err", err)
		}
	}
	if s.metrics != nil {
		s.metrics.RecordRun(len(result.Rows), false)
	}

	slog.Info("run completed",
		"runId", run.ID,
		"clientId", run.ClientID,
		"taRows", run.TARows,
		"bypunchRows", run.ByPunchRows,
		"anomalyRows", run.AnomalyRows,
		"stapled", result.Stapled,
	)

	return &Outcome{
		Run:       run,
		Report:    report,
		Rows:      result.Rows,
		ByPunch:   result.ByPunch,
		Anomalies: result.Anomalies,
		WFN:       wfn.Rows,
	}, result, nil
}

func (s *Service) finishRun(ctx context.Context, run Run, report *results.Report) {
	if s.store == nil {
		return
	}
	now := time.Now().UTC()
	run.FinishedAt = &now
	if err := s.store.CompleteRun(ctx, run, report); err != nil {
		slog.Warn("run completion update failed", "runId", run.ID, "err", err)
	}
}

func msSince(start time.Time) float64 {
	return float64(time.Since(start).Microseconds()) / 1000.0
}

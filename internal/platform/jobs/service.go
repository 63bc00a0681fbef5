package jobs

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
)

const JobProcessRun = "process_run"

// Service is a single-worker background queue. Pay-period processing is CPU
// bound and touches the whole punch table for a client, so one job at a time
// is deliberate.
type Service struct {
	DB    *pgxpool.Pool
	queue chan job
}

type job struct {
	Type     string
	ClientID string
	Run      func(context.Context) (any, error)
}

func New(db *pgxpool.Pool) *Service {
	return &Service{
		DB:    db,
		queue: make(chan job, 32),
	}
}

func (s *Service) Start(ctx context.Context) {
	go s.worker(ctx)
}

func (s *Service) Enqueue(jobType, clientID string, run func(context.Context) (any, error)) bool {
	select {
	case s.queue <- job{Type: jobType, ClientID: clientID, Run: run}:
		return true
	default:
		slog.Warn("job queue full", "jobType", jobType, "clientId", clientID)
		return false
	}
}

func (s *Service) RunNow(ctx context.Context, jobType, clientID string, run func(context.Context) (any, error)) (any, error) {
	return s.runJob(ctx, job{Type: jobType, ClientID: clientID, Run: run})
}

func (s *Service) worker(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case j := <-s.queue:
			if _, err := s.runJob(ctx, j); err != nil {
				slog.Warn("job run failed", "jobType", j.Type, "clientId", j.ClientID, "err", err)
			}
		}
	}
}

func (s *Service) runJob(ctx context.Context, j job) (any, error) {
	var journalID int64
	if s.DB != nil {
		if err := s.DB.QueryRow(ctx, `
      INSERT INTO job_runs (job_type, client_id, status)
      VALUES ($1,$2,$3)
      RETURNING id
    `, j.Type, j.ClientID, "running").Scan(&journalID); err != nil {
			slog.Warn("job run insert failed", "err", err)
		}
	}

	detail, err := j.Run(ctx)
	status := "completed"
	if err != nil {
		status = "failed"
	}
	detailJSON, marshalErr := json.Marshal(detail)
	if marshalErr != nil {
		slog.Warn("job detail marshal failed", "err", marshalErr)
		detailJSON = []byte("{}")
	}
	if s.DB != nil && journalID != 0 {
		if _, updErr := s.DB.Exec(ctx, `
      UPDATE job_runs
      SET status = $1, detail = $2, finished_at = now()
      WHERE id = $3
    `, status, detailJSON, journalID); updErr != nil {
			slog.Warn("job run update failed", "err", updErr)
		}
	}
	return detail, err
}

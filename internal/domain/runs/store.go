package runs

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"

	"payguard/internal/domain/punch"
	"payguard/internal/domain/results"
	"payguard/internal/platform/querier"
)

type Store struct {
	DB querier.Querier
}

func NewStore(db querier.Querier) *Store {
	return &Store{DB: db}
}

func (s *Store) CreateRun(ctx context.Context, run Run) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO runs (id, client_id, status)
    VALUES ($1,$2,$3)
  `, run.ID, run.ClientID, run.Status)
	return err
}

func (s *Store) MarkRunning(ctx context.Context, runID string) error {
	_, err := s.DB.Exec(ctx, `UPDATE runs SET status = $1 WHERE id = $2`, StatusRunning, runID)
	return err
}

func (s *Store) CompleteRun(ctx context.Context, run Run, report *results.Report) error {
	reportJSON, err := json.Marshal(report)
	if err != nil {
		return err
	}
	_, err = s.DB.Exec(ctx, `
    UPDATE runs
    SET status = $1, error = $2,
        ta_rows = $3, bypunch_rows = $4, anomaly_rows = $5, wfn_rows = $6,
        report = $7, finished_at = now()
    WHERE id = $8
  `, run.Status, run.Error, run.TARows, run.ByPunchRows, run.AnomalyRows, run.WFNRows, reportJSON, run.ID)
	return err
}

func (s *Store) GetRun(ctx context.Context, runID string) (*Run, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT id, client_id, status, error,
           ta_rows, bypunch_rows, anomaly_rows, wfn_rows,
           created_at, finished_at
    FROM runs
    WHERE id = $1
  `, runID)

	var run Run
	err := row.Scan(
		&run.ID, &run.ClientID, &run.Status, &run.Error,
		&run.TARows, &run.ByPunchRows, &run.AnomalyRows, &run.WFNRows,
		&run.CreatedAt, &run.FinishedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrRunNotFound
	}
	if err != nil {
		return nil, err
	}
	return &run, nil
}

func (s *Store) GetRunReport(ctx context.Context, runID string) (*results.Report, error) {
	var reportJSON []byte
	err := s.DB.QueryRow(ctx, `SELECT report FROM runs WHERE id = $1`, runID).Scan(&reportJSON)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrRunNotFound
	}
	if err != nil {
		return nil, err
	}
	if len(reportJSON) == 0 {
		return nil, nil
	}
	var report results.Report
	if err := json.Unmarshal(reportJSON, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

func (s *Store) ListRuns(ctx context.Context, clientID string, limit int) ([]Run, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	rows, err := s.DB.Query(ctx, `
    SELECT id, client_id, status, error,
           ta_rows, bypunch_rows, anomaly_rows, wfn_rows,
           created_at, finished_at
    FROM runs
    WHERE ($1 = '' OR client_id = $1)
    ORDER BY created_at DESC
    LIMIT $2
  `, clientID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var run Run
		if err := rows.Scan(
			&run.ID, &run.ClientID, &run.Status, &run.Error,
			&run.TARows, &run.ByPunchRows, &run.AnomalyRows, &run.WFNRows,
			&run.CreatedAt, &run.FinishedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, run)
	}
	return out, rows.Err()
}

// UpsertPunchRows journals the reconstructed punch rows keyed by employee and
// in punch, so reprocessing the same period replaces rather than duplicates.
func (s *Store) UpsertPunchRows(ctx context.Context, clientID string, rows []punch.Row) error {
	for i := range rows {
		row := &rows[i]
		payload, err := json.Marshal(row)
		if err != nil {
			return err
		}
		if _, err := s.DB.Exec(ctx, `
      INSERT INTO punch_rows (client_id, employee_id, in_punch, out_punch, payload)
      VALUES ($1,$2,$3,$4,$5)
      ON CONFLICT (client_id, employee_id, in_punch)
      DO UPDATE SET out_punch = EXCLUDED.out_punch,
                    payload = EXCLUDED.payload,
                    last_updated = now()
    `, clientID, row.ID, row.InPunch, row.OutPunch, payload); err != nil {
			return err
		}
	}
	return nil
}

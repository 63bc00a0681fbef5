package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Migrations are applied in order and journaled in schema_migrations so each
// version runs once.
var migrations = []struct {
	version string
	sql     string
}{
	{
		version: "001_runs",
		sql: `
CREATE TABLE IF NOT EXISTS runs (
  id UUID PRIMARY KEY,
  client_id TEXT NOT NULL,
  status TEXT NOT NULL,
  error TEXT NOT NULL DEFAULT '',
  ta_rows INT NOT NULL DEFAULT 0,
  bypunch_rows INT NOT NULL DEFAULT 0,
  anomaly_rows INT NOT NULL DEFAULT 0,
  wfn_rows INT NOT NULL DEFAULT 0,
  report JSONB,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  finished_at TIMESTAMPTZ
);
CREATE INDEX IF NOT EXISTS idx_runs_client ON runs (client_id, created_at DESC);`,
	},
	{
		version: "002_punch_rows",
		sql: `
CREATE TABLE IF NOT EXISTS punch_rows (
  client_id TEXT NOT NULL,
  employee_id TEXT NOT NULL,
  in_punch TIMESTAMPTZ NOT NULL,
  out_punch TIMESTAMPTZ NOT NULL,
  payload JSONB NOT NULL,
  last_updated TIMESTAMPTZ NOT NULL DEFAULT now(),
  PRIMARY KEY (client_id, employee_id, in_punch)
);
CREATE INDEX IF NOT EXISTS idx_punch_rows_in_punch ON punch_rows (in_punch);`,
	},
	{
		version: "003_job_runs",
		sql: `
CREATE TABLE IF NOT EXISTS job_runs (
  id BIGSERIAL PRIMARY KEY,
  job_type TEXT NOT NULL,
  client_id TEXT NOT NULL,
  status TEXT NOT NULL,
  detail JSONB,
  started_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  finished_at TIMESTAMPTZ
);`,
	},
}

func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if err := ensureMigrationsTable(ctx, pool); err != nil {
		return err
	}

	for _, migration := range migrations {
		applied, err := migrationApplied(ctx, pool, migration.version)
		if err != nil {
			return err
		}
		if applied {
			continue
		}

		tx, err := pool.BeginTx(ctx, pgx.TxOptions{})
		if err != nil {
			return err
		}

		if _, err := tx.Exec(ctx, migration.sql); err != nil {
			_ = tx.Rollback(ctx)
			return fmt.Errorf("migration %s failed: %w", migration.version, err)
		}

		if _, err := tx.Exec(ctx, "INSERT INTO schema_migrations (version) VALUES ($1)", migration.version); err != nil {
			_ = tx.Rollback(ctx)
			return err
		}

		if err := tx.Commit(ctx); err != nil {
			return err
		}
	}

	return nil
}

func ensureMigrationsTable(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, "CREATE TABLE IF NOT EXISTS schema_migrations (version TEXT PRIMARY KEY, applied_at TIMESTAMPTZ NOT NULL DEFAULT now())")
	return err
}

func migrationApplied(ctx context.Context, pool *pgxpool.Pool, version string) (bool, error) {
	var count int
	err := pool.QueryRow(ctx, "SELECT COUNT(1) FROM schema_migrations WHERE version = $1", version).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

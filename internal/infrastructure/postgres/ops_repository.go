package postgres

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/codevote/codevote/internal/domain/ops"
)

// OpsRepository implements ops.Repository. The scheduler state lives in a
// single row with id 1.
type OpsRepository struct {
	q querier
}

func NewOpsRepository(q querier) *OpsRepository {
	return &OpsRepository{q: q}
}

func (r *OpsRepository) GetState(ctx context.Context) (*ops.SchedulerState, error) {
	row := r.q.QueryRow(ctx, `
		SELECT next_run_at, uptime_started_at, active_jobs FROM scheduler_state WHERE id=1
	`)
	var s ops.SchedulerState
	var nextRunAt *time.Time
	var activeJobs json.RawMessage
	err := row.Scan(&nextRunAt, &s.UptimeStartedAt, &activeJobs)
	if err == pgx.ErrNoRows {
		row = r.q.QueryRow(ctx, `
			INSERT INTO scheduler_state (id, uptime_started_at, active_jobs)
			VALUES (1, NOW(), '[]')
			ON CONFLICT (id) DO NOTHING
			RETURNING next_run_at, uptime_started_at, active_jobs
		`)
		err = row.Scan(&nextRunAt, &s.UptimeStartedAt, &activeJobs)
	}
	if err != nil {
		return nil, err
	}
	if nextRunAt != nil {
		s.NextRunAt = *nextRunAt
	}
	s.ActiveJobs = activeJobs
	return &s, nil
}

func (r *OpsRepository) SetNextRun(ctx context.Context, nextRunAt time.Time) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO scheduler_state (id, next_run_at, uptime_started_at, active_jobs)
		VALUES (1, $1, NOW(), '[]')
		ON CONFLICT (id) DO UPDATE SET next_run_at=EXCLUDED.next_run_at
	`, nextRunAt)
	return err
}

func (r *OpsRepository) SetActiveJobs(ctx context.Context, jobs []byte) error {
	if len(jobs) == 0 {
		jobs = []byte("[]")
	}
	_, err := r.q.Exec(ctx, `
		INSERT INTO scheduler_state (id, uptime_started_at, active_jobs)
		VALUES (1, NOW(), $1)
		ON CONFLICT (id) DO UPDATE SET active_jobs=EXCLUDED.active_jobs
	`, jobs)
	return err
}

func (r *OpsRepository) AddLog(ctx context.Context, entry *ops.LogEntry) error {
	row := r.q.QueryRow(ctx, `
		INSERT INTO logs (created_at, level, message, context)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, entry.CreatedAt, entry.Level, entry.Message, entry.Context)
	return row.Scan(&entry.ID)
}

func (r *OpsRepository) ListRecentLogs(ctx context.Context, limit int) ([]*ops.LogEntry, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, created_at, level, message, context
		FROM logs ORDER BY id DESC LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	entries, err := scanLogs(rows)
	if err != nil {
		return nil, err
	}
	// Newest N rows, presented oldest first.
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries, nil
}

func (r *OpsRepository) ListAllLogs(ctx context.Context, limit int) ([]*ops.LogEntry, error) {
	query := `SELECT id, created_at, level, message, context FROM logs ORDER BY id ASC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return scanLogs(rows)
}

func scanLogs(rows pgx.Rows) ([]*ops.LogEntry, error) {
	defer rows.Close()
	var entries []*ops.LogEntry
	for rows.Next() {
		var e ops.LogEntry
		var logCtx json.RawMessage
		if err := rows.Scan(&e.ID, &e.CreatedAt, &e.Level, &e.Message, &logCtx); err != nil {
			return nil, err
		}
		e.Context = logCtx
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}

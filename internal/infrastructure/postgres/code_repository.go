package postgres

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5"

	"github.com/codevote/codevote/internal/domain/code"
)

// CodeRepository implements code.Repository.
type CodeRepository struct {
	q querier
}

func NewCodeRepository(q querier) *CodeRepository {
	return &CodeRepository{q: q}
}

func (r *CodeRepository) Append(ctx context.Context, l *code.Line) error {
	row := r.q.QueryRow(ctx, `
		INSERT INTO code_lines (chat_id, poll_id, epoch, line_number, text, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, l.ChatID, l.PollID, l.Epoch, l.LineNumber, l.Text, l.CreatedAt)
	return row.Scan(&l.ID)
}

func (r *CodeRepository) NextLineNumber(ctx context.Context, chatID int64, epoch int) (int, error) {
	row := r.q.QueryRow(ctx, `
		SELECT COALESCE(MAX(line_number), 0) + 1
		FROM code_lines WHERE chat_id=$1 AND epoch=$2
	`, chatID, epoch)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *CodeRepository) GetByPoll(ctx context.Context, pollID int64) (*code.Line, error) {
	row := r.q.QueryRow(ctx, `
		SELECT id, chat_id, poll_id, epoch, line_number, text, created_at
		FROM code_lines WHERE poll_id=$1
	`, pollID)
	var l code.Line
	if err := row.Scan(&l.ID, &l.ChatID, &l.PollID, &l.Epoch, &l.LineNumber, &l.Text, &l.CreatedAt); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &l, nil
}

func (r *CodeRepository) ListByEpoch(ctx context.Context, chatID int64, epoch int) ([]*code.Line, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, chat_id, poll_id, epoch, line_number, text, created_at
		FROM code_lines WHERE chat_id=$1 AND epoch=$2
		ORDER BY line_number ASC
	`, chatID, epoch)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var lines []*code.Line
	for rows.Next() {
		var l code.Line
		if err := rows.Scan(&l.ID, &l.ChatID, &l.PollID, &l.Epoch, &l.LineNumber, &l.Text, &l.CreatedAt); err != nil {
			return nil, err
		}
		lines = append(lines, &l)
	}
	return lines, rows.Err()
}

func (r *CodeRepository) DeleteAllForChat(ctx context.Context, chatID int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM code_lines WHERE chat_id=$1`, chatID)
	return err
}

// SnapshotRepository implements code.SnapshotRepository.
type SnapshotRepository struct {
	q querier
}

func NewSnapshotRepository(q querier) *SnapshotRepository {
	return &SnapshotRepository{q: q}
}

func (r *SnapshotRepository) Save(ctx context.Context, s *code.Snapshot) error {
	row := r.q.QueryRow(ctx, `
		INSERT INTO completed_snapshots (chat_id, epoch, text, created_at, oracle_request, oracle_response)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, s.ChatID, s.Epoch, s.Text, s.CreatedAt, s.OracleRequest, s.OracleResponse)
	return row.Scan(&s.ID)
}

func (r *SnapshotRepository) GetLatestForChat(ctx context.Context, chatID int64) (*code.Snapshot, error) {
	row := r.q.QueryRow(ctx, `
		SELECT id, chat_id, epoch, text, created_at, oracle_request, oracle_response
		FROM completed_snapshots WHERE chat_id=$1
		ORDER BY created_at DESC, id DESC LIMIT 1
	`, chatID)
	var s code.Snapshot
	var oracleReq, oracleResp json.RawMessage
	if err := row.Scan(&s.ID, &s.ChatID, &s.Epoch, &s.Text, &s.CreatedAt, &oracleReq, &oracleResp); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	s.OracleRequest = oracleReq
	s.OracleResponse = oracleResp
	return &s, nil
}

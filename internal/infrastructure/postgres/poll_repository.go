package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/codevote/codevote/internal/domain/poll"
)

// PollRepository implements poll.Repository.
type PollRepository struct {
	q querier
}

func NewPollRepository(q querier) *PollRepository {
	return &PollRepository{q: q}
}

const pollColumns = `id, chat_id, transport_poll_id, transport_message_id, status, epoch, created_at, closed_at, timeout_at, oracle_request, oracle_response`

func (r *PollRepository) Create(ctx context.Context, p *poll.Poll, optionTexts []string) error {
	row := r.q.QueryRow(ctx, `
		INSERT INTO polls (chat_id, transport_poll_id, transport_message_id, status, epoch, created_at, timeout_at, oracle_request, oracle_response)
		VALUES ($1, NULLIF($2,''), $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`, p.ChatID, p.TransportPollID, p.TransportMessageID, p.Status, p.Epoch, p.CreatedAt, p.TimeoutAt, p.OracleRequest, p.OracleResponse)
	if err := row.Scan(&p.ID); err != nil {
		return err
	}
	for i, text := range optionTexts {
		if _, err := r.q.Exec(ctx, `
			INSERT INTO poll_options (poll_id, option_index, text, vote_count)
			VALUES ($1, $2, $3, 0)
		`, p.ID, i, text); err != nil {
			return fmt.Errorf("insert option %d: %w", i, err)
		}
	}
	return nil
}

func (r *PollRepository) GetByID(ctx context.Context, pollID int64) (*poll.Poll, error) {
	row := r.q.QueryRow(ctx, `SELECT `+pollColumns+` FROM polls WHERE id=$1`, pollID)
	return scanPoll(row)
}

func (r *PollRepository) GetByTransportID(ctx context.Context, transportPollID string) (*poll.Poll, error) {
	row := r.q.QueryRow(ctx, `SELECT `+pollColumns+` FROM polls WHERE transport_poll_id=$1`, transportPollID)
	return scanPoll(row)
}

func (r *PollRepository) GetActiveForChat(ctx context.Context, chatID int64) (*poll.Poll, error) {
	row := r.q.QueryRow(ctx, `
		SELECT `+pollColumns+` FROM polls
		WHERE chat_id=$1 AND status=$2
		ORDER BY id DESC LIMIT 1
	`, chatID, poll.StatusActive)
	return scanPoll(row)
}

func (r *PollRepository) BindTransportIDs(ctx context.Context, pollID int64, transportPollID string, messageID int64) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE polls SET transport_poll_id=NULLIF($1,''), transport_message_id=$2 WHERE id=$3
	`, transportPollID, messageID, pollID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("poll %d: %w", pollID, poll.ErrNotFound)
	}
	return nil
}

func (r *PollRepository) UpdateStatus(ctx context.Context, pollID int64, status poll.Status, closedAt *time.Time) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE polls SET status=$1, closed_at=COALESCE($2, closed_at) WHERE id=$3
	`, status, closedAt, pollID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("poll %d: %w", pollID, poll.ErrNotFound)
	}
	return nil
}

func (r *PollRepository) ListOptions(ctx context.Context, pollID int64) ([]poll.Option, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, poll_id, option_index, text, vote_count
		FROM poll_options WHERE poll_id=$1 ORDER BY option_index ASC
	`, pollID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var opts []poll.Option
	for rows.Next() {
		var o poll.Option
		if err := rows.Scan(&o.ID, &o.PollID, &o.Index, &o.Text, &o.VoteCount); err != nil {
			return nil, err
		}
		opts = append(opts, o)
	}
	return opts, rows.Err()
}

func (r *PollRepository) GetOption(ctx context.Context, pollID int64, index int) (*poll.Option, error) {
	row := r.q.QueryRow(ctx, `
		SELECT id, poll_id, option_index, text, vote_count
		FROM poll_options WHERE poll_id=$1 AND option_index=$2
	`, pollID, index)
	var o poll.Option
	if err := row.Scan(&o.ID, &o.PollID, &o.Index, &o.Text, &o.VoteCount); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

func (r *PollRepository) UpsertVote(ctx context.Context, v *poll.Vote) error {
	// Anonymous ballots carry no voter identity to collide on, so each one
	// is a fresh row. Identified ballots hit the partial unique index on
	// (poll_id, voter_id) and overwrite in place.
	if v.VoterID == nil {
		row := r.q.QueryRow(ctx, `
			INSERT INTO poll_votes (poll_id, voter_id, option_index, answered_at)
			VALUES ($1, NULL, $2, $3)
			RETURNING id
		`, v.PollID, v.OptionIndex, v.AnsweredAt)
		return row.Scan(&v.ID)
	}
	row := r.q.QueryRow(ctx, `
		INSERT INTO poll_votes (poll_id, voter_id, option_index, answered_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (poll_id, voter_id) WHERE voter_id IS NOT NULL
		DO UPDATE SET option_index=EXCLUDED.option_index, answered_at=EXCLUDED.answered_at
		RETURNING id
	`, v.PollID, *v.VoterID, v.OptionIndex, v.AnsweredAt)
	return row.Scan(&v.ID)
}

func (r *PollRepository) CountVotesByOption(ctx context.Context, pollID int64) (map[int]int, error) {
	rows, err := r.q.Query(ctx, `
		SELECT option_index, COUNT(*) FROM poll_votes WHERE poll_id=$1 GROUP BY option_index
	`, pollID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	counts := make(map[int]int)
	for rows.Next() {
		var index, count int
		if err := rows.Scan(&index, &count); err != nil {
			return nil, err
		}
		counts[index] = count
	}
	return counts, rows.Err()
}

func (r *PollRepository) RefreshVoteCounts(ctx context.Context, pollID int64) error {
	_, err := r.q.Exec(ctx, `
		UPDATE poll_options o
		SET vote_count = (
			SELECT COUNT(*) FROM poll_votes v
			WHERE v.poll_id = o.poll_id AND v.option_index = o.option_index
		)
		WHERE o.poll_id = $1
	`, pollID)
	return err
}

func (r *PollRepository) ListTimedOut(ctx context.Context, now time.Time, limit int) ([]*poll.Poll, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+pollColumns+` FROM polls
		WHERE status=$1 AND timeout_at IS NOT NULL AND timeout_at < $2
		ORDER BY timeout_at ASC
		LIMIT $3
	`, poll.StatusActive, now, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var polls []*poll.Poll
	for rows.Next() {
		p, err := scanPoll(rows)
		if err != nil {
			return nil, err
		}
		polls = append(polls, p)
	}
	return polls, rows.Err()
}

func scanPoll(row pgx.Row) (*poll.Poll, error) {
	var p poll.Poll
	var transportPollID sql.NullString
	var oracleReq, oracleResp json.RawMessage
	if err := row.Scan(&p.ID, &p.ChatID, &transportPollID, &p.TransportMessageID, &p.Status, &p.Epoch, &p.CreatedAt, &p.ClosedAt, &p.TimeoutAt, &oracleReq, &oracleResp); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	p.TransportPollID = transportPollID.String
	p.OracleRequest = oracleReq
	p.OracleResponse = oracleResp
	return &p, nil
}

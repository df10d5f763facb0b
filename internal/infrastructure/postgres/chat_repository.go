package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/codevote/codevote/internal/domain/chat"
)

// ChatRepository implements chat.Repository.
type ChatRepository struct {
	q querier
}

func NewChatRepository(q querier) *ChatRepository {
	return &ChatRepository{q: q}
}

func (r *ChatRepository) GetOrCreate(ctx context.Context, chatID int64) (*chat.Chat, error) {
	_, err := r.q.Exec(ctx, `
		INSERT INTO chats (id, history_epoch, is_active, created_at, updated_at)
		VALUES ($1, 1, TRUE, NOW(), NOW())
		ON CONFLICT (id) DO NOTHING
	`, chatID)
	if err != nil {
		return nil, err
	}
	return r.Get(ctx, chatID)
}

func (r *ChatRepository) Get(ctx context.Context, chatID int64) (*chat.Chat, error) {
	row := r.q.QueryRow(ctx, `
		SELECT id, history_epoch, active_poll_id, admin_ids, is_active, created_at, updated_at
		FROM chats WHERE id=$1
	`, chatID)
	return scanChat(row)
}

func (r *ChatRepository) SetActivePoll(ctx context.Context, chatID int64, pollID *int64) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE chats SET active_poll_id=$1, updated_at=NOW() WHERE id=$2
	`, pollID, chatID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("chat %d: %w", chatID, chat.ErrNotFound)
	}
	return nil
}

func (r *ChatRepository) AdvanceEpoch(ctx context.Context, chatID int64) (*chat.Chat, error) {
	row := r.q.QueryRow(ctx, `
		UPDATE chats SET history_epoch=history_epoch+1, active_poll_id=NULL, updated_at=NOW()
		WHERE id=$1
		RETURNING id, history_epoch, active_poll_id, admin_ids, is_active, created_at, updated_at
	`, chatID)
	c, err := scanChat(row)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("chat %d: %w", chatID, chat.ErrNotFound)
	}
	return c, nil
}

func (r *ChatRepository) SetAdminIDs(ctx context.Context, chatID int64, adminIDs []int64) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE chats SET admin_ids=$1, updated_at=NOW() WHERE id=$2
	`, adminIDs, chatID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("chat %d: %w", chatID, chat.ErrNotFound)
	}
	return nil
}

func scanChat(row pgx.Row) (*chat.Chat, error) {
	var c chat.Chat
	var adminIDs []int64
	if err := row.Scan(&c.ID, &c.HistoryEpoch, &c.ActivePollID, &adminIDs, &c.IsActive, &c.CreatedAt, &c.UpdatedAt); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	c.AdminIDs = adminIDs
	return &c, nil
}

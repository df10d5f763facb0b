package code

//go:generate go run go.uber.org/mock/mockgen -destination=mocks/mock_repository.go -package=mocks . Repository,SnapshotRepository

import (
	"context"
)

// Repository defines code line persistence.
type Repository interface {
	// Append inserts the line and sets l.ID. The caller owns line numbering.
	Append(ctx context.Context, l *Line) error
	// NextLineNumber computes 1 + max(line_number) within (chat, epoch),
	// defaulting to 1 when the epoch has no lines yet. The epoch-scoped max
	// is what keeps old epochs' numbering independent after resets.
	NextLineNumber(ctx context.Context, chatID int64, epoch int) (int, error)
	// GetByPoll returns the line a poll produced, or nil. A poll produces at
	// most one line; an existing row is the idempotency witness for repeated
	// close events.
	GetByPoll(ctx context.Context, pollID int64) (*Line, error)
	// ListByEpoch returns a chat's lines for one epoch, ordered by line
	// number ascending.
	ListByEpoch(ctx context.Context, chatID int64, epoch int) ([]*Line, error)
	// DeleteAllForChat bulk-deletes every line of a chat, all epochs.
	// Administrative escape hatch only.
	DeleteAllForChat(ctx context.Context, chatID int64) error
}

// SnapshotRepository defines completed-program snapshot persistence.
type SnapshotRepository interface {
	Save(ctx context.Context, s *Snapshot) error
	// GetLatestForChat returns the most recent snapshot by creation time,
	// across all epochs, or nil.
	GetLatestForChat(ctx context.Context, chatID int64) (*Snapshot, error)
}

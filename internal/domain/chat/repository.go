package chat

//go:generate go run go.uber.org/mock/mockgen -destination=mocks/mock_repository.go -package=mocks . Repository

import (
	"context"
)

// Repository defines chat persistence.
type Repository interface {
	// GetOrCreate returns the chat with the given id, creating it in its
	// initial state if it does not exist yet.
	GetOrCreate(ctx context.Context, chatID int64) (*Chat, error)
	// Get returns the chat or nil when it does not exist.
	Get(ctx context.Context, chatID int64) (*Chat, error)
	// SetActivePoll points the chat at its latest poll. A nil pollID clears
	// the reference.
	SetActivePoll(ctx context.Context, chatID int64, pollID *int64) error
	// AdvanceEpoch increments the chat's history epoch by one and clears the
	// active poll reference, returning the updated record. Old epochs keep
	// their rows untouched.
	AdvanceEpoch(ctx context.Context, chatID int64) (*Chat, error)
	// SetAdminIDs replaces the chat's admin set.
	SetAdminIDs(ctx context.Context, chatID int64, adminIDs []int64) error
}

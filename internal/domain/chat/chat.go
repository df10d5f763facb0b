package chat

import (
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when a referenced chat does not exist.
	ErrNotFound = errors.New("chat not found")
	// ErrActivePoll is returned when a new round is requested while the
	// chat's current poll is still open.
	ErrActivePoll = errors.New("chat already has an active poll")
)

// Chat is the per-conversation record: which history epoch is current and
// which poll, if any, is the latest one opened in it.
//
// HistoryEpoch partitions everything downstream of the chat. Polls and code
// lines are stamped with the epoch that was current when they were created
// and keep that stamp forever; a reset only moves this pointer forward.
type Chat struct {
	ID           int64     `json:"id"`
	HistoryEpoch int       `json:"historyEpoch"`
	ActivePollID *int64    `json:"activePollId,omitempty"`
	AdminIDs     []int64   `json:"adminIds,omitempty"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// New returns a chat record in its initial state: epoch 1, no poll.
func New(id int64, now time.Time) *Chat {
	return &Chat{
		ID:           id,
		HistoryEpoch: 1,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// IsAdmin reports whether the given user id is in the chat's admin set.
func (c *Chat) IsAdmin(userID int64) bool {
	for _, id := range c.AdminIDs {
		if id == userID {
			return true
		}
	}
	return false
}
